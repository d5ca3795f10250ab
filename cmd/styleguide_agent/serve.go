package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/brand-styleguide/internal/config"
	"github.com/jonathan/brand-styleguide/internal/server"
)

var (
	servePort       int
	serveUseBrowser bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that generates, stores and serves styleguides.

Requires DATABASE_URL. REDIS_URL enables the fetch cache and GEMINI_API_KEY enables AI sections.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Allow headless Chrome rendering for script-built sites")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Log pipeline progress for every request")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	env := config.FromEnv()
	if env.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:              servePort,
		DatabaseURL:       env.DatabaseURL,
		RedisURL:          env.RedisURL,
		APIKey:            env.APIKey,
		UseBrowser:        serveUseBrowser,
		MaxRepairAttempts: config.DefaultMaxRepairAttempts,
		QualityThreshold:  config.DefaultQualityThreshold,
		Verbose:           serveVerbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}
