package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/brand-styleguide/internal/observability"
	"github.com/jonathan/brand-styleguide/internal/schemas"
	"github.com/jonathan/brand-styleguide/internal/tokens"
	"github.com/jonathan/brand-styleguide/internal/types"
)

var buildTokensCmd = &cobra.Command{
	Use:   "build-tokens",
	Short: "Build a design token set from a BrandAnalysis",
	Long: `Reads a BrandAnalysis JSON file and writes the DesignTokenSet: color scales, typography,
spacing, radius, shadow, transition, container and z-index tokens under a generated prefix.`,
	RunE: runBuildTokens,
}

var (
	buildTokensInput   string
	buildTokensOutput  string
	buildTokensCSS     string
	buildTokensFlat    string
	buildTokensVerbose bool
)

func init() {
	buildTokensCmd.Flags().StringVarP(&buildTokensInput, "in", "i", "", "Path to BrandAnalysis JSON file (required)")
	buildTokensCmd.Flags().StringVarP(&buildTokensOutput, "out", "o", "", "Path to output DesignTokenSet JSON file (required)")
	buildTokensCmd.Flags().StringVar(&buildTokensCSS, "css", "", "Also write the tokens as CSS custom properties to this path")
	buildTokensCmd.Flags().StringVar(&buildTokensFlat, "flat", "", "Also write the flattened color/font map to this path")
	buildTokensCmd.Flags().BoolVarP(&buildTokensVerbose, "verbose", "v", false, "Print the token summary")

	if err := buildTokensCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := buildTokensCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
	rootCmd.AddCommand(buildTokensCmd)
}

func runBuildTokens(_ *cobra.Command, _ []string) error {
	ts, err := buildTokensFile(buildTokensInput, buildTokensOutput, buildTokensCSS, buildTokensFlat)
	if err != nil {
		return err
	}
	if buildTokensVerbose {
		observability.NewPrinter(os.Stdout).PrintTokens(ts)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Built tokens with prefix %q\n", ts.Prefix)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", buildTokensOutput)
	return nil
}

// buildTokensFile reads an analysis, builds tokens and writes every requested form
func buildTokensFile(in, out, cssOut, flatOut string) (*types.DesignTokenSet, error) {
	if _, err := os.Stat(in); os.IsNotExist(err) {
		return nil, fmt.Errorf("analysis file not found: %s", in)
	}
	var analysis types.BrandAnalysis
	if err := readJSON(in, &analysis); err != nil {
		return nil, err
	}
	if err := schemas.ValidateAnalysis(&analysis); err != nil {
		return nil, fmt.Errorf("invalid brand analysis: %w", err)
	}

	ts := tokens.Build(&analysis)
	if err := schemas.ValidateTokens(ts); err != nil {
		return nil, fmt.Errorf("built tokens failed validation: %w", err)
	}
	if err := writeJSON(out, ts, ""); err != nil {
		return nil, err
	}
	if cssOut != "" {
		if err := writeFile(cssOut, []byte(tokens.ToCSSVariables(ts))); err != nil {
			return nil, err
		}
	}
	if flatOut != "" {
		if err := writeJSON(flatOut, tokens.Flatten(ts), ""); err != nil {
			return nil, err
		}
	}
	return ts, nil
}
