package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/brand-styleguide/internal/brand"
	"github.com/jonathan/brand-styleguide/internal/extraction"
	"github.com/jonathan/brand-styleguide/internal/fetch"
	"github.com/jonathan/brand-styleguide/internal/observability"
	"github.com/jonathan/brand-styleguide/internal/schemas"
	"github.com/jonathan/brand-styleguide/internal/types"
)

var analyzeBrandCmd = &cobra.Command{
	Use:   "analyze-brand",
	Short: "Extract brand signals and write a BrandAnalysis JSON file",
	Long: `Fetches a brand site (or reads saved markup), scans its CSS for colors, fonts, sizes,
spacing, radii and shadows, and writes the normalized BrandAnalysis.`,
	RunE: runAnalyzeBrand,
}

var (
	analyzeURL         string
	analyzeHTMLFile    string
	analyzeDomain      string
	analyzePersonality string
	analyzeRawOut      string
	analyzeOutput      string
	analyzeUseBrowser  bool
	analyzeVerbose     bool
)

func init() {
	analyzeBrandCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "Brand site URL (mutually exclusive with --html-file)")
	analyzeBrandCmd.Flags().StringVar(&analyzeHTMLFile, "html-file", "", "Saved page markup and CSS to read instead of fetching")
	analyzeBrandCmd.Flags().StringVarP(&analyzeDomain, "domain", "d", "", "Domain to report (defaults to the URL host)")
	analyzeBrandCmd.Flags().StringVarP(&analyzePersonality, "personality", "p", "", "Path to a personality override JSON file")
	analyzeBrandCmd.Flags().StringVar(&analyzeRawOut, "raw-out", "", "Also write the raw extraction JSON to this path")
	analyzeBrandCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output BrandAnalysis JSON file (required)")
	analyzeBrandCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render script-built sites in headless Chrome")
	analyzeBrandCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := analyzeBrandCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
	rootCmd.AddCommand(analyzeBrandCmd)
}

func runAnalyzeBrand(_ *cobra.Command, _ []string) error {
	personality, err := loadPersonality(analyzePersonality)
	if err != nil {
		return err
	}

	src, err := loadSource(context.Background(), analyzeURL, analyzeHTMLFile, &fetch.SiteOptions{
		UseBrowser: analyzeUseBrowser,
		Verbose:    analyzeVerbose,
	})
	if err != nil {
		return err
	}

	raw, analysis, err := analyzeSource(src, analyzeDomain, personality, analyzeVerbose)
	if err != nil {
		return err
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintExtraction(raw)
		printer.PrintBrandAnalysis(analysis)
	}

	if analyzeRawOut != "" {
		if err := writeJSON(analyzeRawOut, raw, ""); err != nil {
			return err
		}
	}
	if err := writeJSON(analyzeOutput, analysis, schemas.BrandAnalysisSchema); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Analyzed %s: primary %s, confidence %.2f\n", analysis.BrandName, analysis.Colors.Primary, analysis.Confidence)
	if analysis.Confidence < brand.LowConfidenceThreshold {
		_, _ = fmt.Fprintf(os.Stdout, "Low confidence: few signals were found, defaults fill the gaps\n")
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutput)
	return nil
}

// analyzeSource extracts signals from src and normalizes them
func analyzeSource(src *source, domain string, personality *types.PersonalityOverride, verbose bool) (*types.RawExtraction, *types.BrandAnalysis, error) {
	if domain == "" {
		domain = src.Domain
	}
	raw := extraction.Extract(src.Raw, extraction.Options{
		Domain:  domain,
		Title:   src.Title,
		Pages:   src.Pages,
		Verbose: verbose,
	})
	analysis, err := brand.Analyze(raw, brand.Input{
		Domain:      domain,
		Method:      src.Method,
		Personality: personality,
		Verbose:     verbose,
	})
	if err != nil {
		return raw, nil, fmt.Errorf("brand analysis failed: %w", err)
	}
	return raw, analysis, nil
}
