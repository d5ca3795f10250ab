// Package main provides the styleguide_agent CLI and HTTP server entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "styleguide_agent",
	Short: "Brand styleguide generator",
	Long: `styleguide_agent reads a brand's website, extracts its colors, fonts, spacing and shapes,
synthesizes a design token set and assembles a self-contained HTML styleguide.`,
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
