package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/brand-styleguide/internal/config"
	"github.com/jonathan/brand-styleguide/internal/observability"
	"github.com/jonathan/brand-styleguide/internal/quality"
	"github.com/jonathan/brand-styleguide/internal/repair"
	"github.com/jonathan/brand-styleguide/internal/types"
)

var validateDocCmd = &cobra.Command{
	Use:   "validate-doc",
	Short: "Score an assembled styleguide document",
	Long: `Validates a styleguide HTML document for tag balance, section count, class namespaces,
brand presence and visual completeness, and writes the QualityReport. With --repair the
bounded auto-repair loop runs first and the repaired document is written back out.`,
	RunE: runValidateDoc,
}

var (
	validateDocInput      string
	validateDocTokens     string
	validateDocAnalysis   string
	validateDocPrefix     string
	validateDocBrandName  string
	validateDocPrimary    string
	validateDocExpected   int
	validateDocThreshold  int
	validateDocRepair     bool
	validateDocMaxRepairs int
	validateDocRepairOut  string
	validateDocOutput     string
	validateDocVerbose    bool
)

func init() {
	f := validateDocCmd.Flags()
	f.StringVarP(&validateDocInput, "in", "i", "", "Path to styleguide HTML document (required)")
	f.StringVar(&validateDocTokens, "tokens", "", "DesignTokenSet JSON supplying the prefix and primary color")
	f.StringVar(&validateDocAnalysis, "analysis", "", "BrandAnalysis JSON supplying the brand name and primary color")
	f.StringVar(&validateDocPrefix, "prefix", "", "Token class prefix (overrides --tokens)")
	f.StringVar(&validateDocBrandName, "brand-name", "", "Brand name expected in the document")
	f.StringVar(&validateDocPrimary, "primary", "", "Primary color hex expected in the document")
	f.IntVar(&validateDocExpected, "expected-sections", 0, "Expected section count (defaults to the catalog size)")
	f.IntVar(&validateDocThreshold, "threshold", config.DefaultQualityThreshold, "Minimum passing score")
	f.BoolVar(&validateDocRepair, "repair", false, "Run the auto-repair loop before reporting")
	f.IntVar(&validateDocMaxRepairs, "max-repair-attempts", config.DefaultMaxRepairAttempts, "Repair attempts when --repair is set")
	f.StringVar(&validateDocRepairOut, "repaired-out", "", "Where to write the repaired document (defaults to --in)")
	f.StringVarP(&validateDocOutput, "out", "o", "", "Path to output QualityReport JSON file (required)")
	f.BoolVarP(&validateDocVerbose, "verbose", "v", false, "Print the report")

	if err := validateDocCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := validateDocCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
	rootCmd.AddCommand(validateDocCmd)
}

// validateDocOptions gathers what validate-doc needs from its flags
type validateDocOptions struct {
	Input        string
	TokensPath   string
	AnalysisPath string
	Quality      quality.Options
	Threshold    int
	Repair       bool
	MaxRepairs   int
	RepairedOut  string
	ReportOut    string
	Verbose      bool
}

func runValidateDoc(_ *cobra.Command, _ []string) error {
	report, err := validateDocument(validateDocOptions{
		Input:        validateDocInput,
		TokensPath:   validateDocTokens,
		AnalysisPath: validateDocAnalysis,
		Quality: quality.Options{
			Prefix:           validateDocPrefix,
			BrandName:        validateDocBrandName,
			PrimaryColor:     validateDocPrimary,
			ExpectedSections: validateDocExpected,
		},
		Threshold:   validateDocThreshold,
		Repair:      validateDocRepair,
		MaxRepairs:  validateDocMaxRepairs,
		RepairedOut: validateDocRepairOut,
		ReportOut:   validateDocOutput,
		Verbose:     validateDocVerbose,
	})
	if err != nil {
		return err
	}

	if validateDocVerbose {
		observability.NewPrinter(os.Stdout).PrintQualityReport(report)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Quality score: %d/100 (%d issue(s))\n", report.Score, len(report.Issues))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", validateDocOutput)

	if report.Score < validateDocThreshold {
		return fmt.Errorf("quality score %d is below threshold %d", report.Score, validateDocThreshold)
	}
	return nil
}

// validateDocument scores (and optionally repairs) a document and writes the report
func validateDocument(o validateDocOptions) (*types.QualityReport, error) {
	content, err := os.ReadFile(o.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("document not found: %s", o.Input)
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	qopts := o.Quality
	if o.TokensPath != "" {
		var ts types.DesignTokenSet
		if err := readJSON(o.TokensPath, &ts); err != nil {
			return nil, err
		}
		if qopts.Prefix == "" {
			qopts.Prefix = ts.Prefix
		}
		if qopts.PrimaryColor == "" {
			qopts.PrimaryColor = ts.Colors.Primary["400"]
		}
	}
	if o.AnalysisPath != "" {
		var analysis types.BrandAnalysis
		if err := readJSON(o.AnalysisPath, &analysis); err != nil {
			return nil, err
		}
		if qopts.BrandName == "" {
			qopts.BrandName = analysis.BrandName
		}
		if qopts.PrimaryColor == "" {
			qopts.PrimaryColor = analysis.Colors.Primary
		}
	}
	if qopts.Prefix == "" {
		return nil, fmt.Errorf("a class prefix is required: pass --prefix or --tokens")
	}

	var report *types.QualityReport
	if o.Repair {
		result := repair.RunRepairLoop(string(content), repair.Options{
			Quality:     qopts,
			MaxAttempts: o.MaxRepairs,
			Threshold:   o.Threshold,
			Verbose:     o.Verbose,
		})
		report = result.Report
		target := o.RepairedOut
		if target == "" {
			target = o.Input
		}
		if len(result.Patches) > 0 {
			if err := writeFile(target, []byte(result.Document)); err != nil {
				return nil, err
			}
		}
	} else {
		report = quality.Validate(string(content), qopts)
	}

	if err := writeJSON(o.ReportOut, report, ""); err != nil {
		return nil, err
	}
	return report, nil
}
