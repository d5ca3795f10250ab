package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/brand-styleguide/internal/config"
	"github.com/jonathan/brand-styleguide/internal/db"
	"github.com/jonathan/brand-styleguide/internal/fetch"
	"github.com/jonathan/brand-styleguide/internal/llm"
	"github.com/jonathan/brand-styleguide/internal/observability"
	"github.com/jonathan/brand-styleguide/internal/pipeline"
	"github.com/jonathan/brand-styleguide/internal/tokens"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full styleguide pipeline end-to-end",
	Long: `Orchestrates the whole generation: collect -> extract -> analyze -> tokens -> sections -> assemble -> repair -> store.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.
AI-filled sections need GEMINI_API_KEY; without it they are skipped and reported as missing.
The result is stored when DATABASE_URL (or --db-url) is set.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath       string
	genURL              string
	genHTMLFile         string
	genDomain           string
	genOut              string
	genArtifactOut      string
	genTokensCSS        string
	genPersonality      string
	genInferPersonality bool
	genMaxRepair        int
	genThreshold        int
	genUseBrowser       bool
	genVerbose          bool
	genAPIKey           string
	genDatabaseURL      string
	genRedisURL         string
)

func init() {
	f := generateCmd.Flags()
	// Config file flag (processed first)
	f.StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	f.StringVarP(&genURL, "url", "u", "", "Brand site URL (mutually exclusive with --html-file)")
	f.StringVar(&genHTMLFile, "html-file", "", "Saved page markup and CSS to read instead of fetching")
	f.StringVarP(&genDomain, "domain", "d", "", "Domain to report (defaults to the URL host)")
	f.StringVarP(&genOut, "out", "o", "", "Path for the styleguide HTML document (default "+config.DefaultOutput+")")
	f.StringVar(&genArtifactOut, "artifact", "", "Also write the styleguide artifact JSON to this path")
	f.StringVar(&genTokensCSS, "tokens-css", "", "Also write the tokens as CSS custom properties to this path")
	f.StringVarP(&genPersonality, "personality", "p", "", "Path to a personality override JSON file")
	f.BoolVar(&genInferPersonality, "infer-personality", false, "Ask the LLM to rate the brand voice when no override is given")
	f.IntVar(&genMaxRepair, "max-repair-attempts", 0, "Maximum auto-repair attempts")
	f.IntVar(&genThreshold, "quality-threshold", 0, "Score at which repair stops")
	f.BoolVar(&genUseBrowser, "use-browser", false, "Render script-built sites in headless Chrome (requires Chrome)")
	f.BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")
	f.StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	f.StringVar(&genDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	f.StringVar(&genRedisURL, "redis-url", "", "Redis URL for the fetch cache (optional, defaults to REDIS_URL env var)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if genConfigPath != "" {
		loaded, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
		if genVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (only flags explicitly set)
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = genURL
	}
	if flags.Changed("html-file") {
		cfg.HTMLFile = genHTMLFile
	}
	if flags.Changed("domain") {
		cfg.Domain = genDomain
	}
	if flags.Changed("out") {
		cfg.Out = genOut
	}
	if flags.Changed("max-repair-attempts") {
		cfg.MaxRepairAttempts = genMaxRepair
	}
	if flags.Changed("quality-threshold") {
		cfg.QualityThreshold = genThreshold
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = genUseBrowser
	}
	if flags.Changed("verbose") {
		cfg.Verbose = genVerbose
	}
	if flags.Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = genDatabaseURL
	}
	if flags.Changed("redis-url") {
		cfg.RedisURL = genRedisURL
	}
	if flags.Changed("personality") {
		p, err := loadPersonality(genPersonality)
		if err != nil {
			return err
		}
		cfg.Personality = p
	}

	// Step 3: Fill the rest from the environment and defaults
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.URL == "" && cfg.HTMLFile == "" {
		return fmt.Errorf("either --url or --html-file must be provided (via flag or config)")
	}

	opts := pipeline.Options{
		URL:               fetch.NormalizeURL(cfg.URL),
		Domain:            cfg.Domain,
		Site:              &fetch.SiteOptions{UseBrowser: cfg.UseBrowser},
		Personality:       cfg.Personality,
		InferPersonality:  genInferPersonality,
		MaxRepairAttempts: cfg.MaxRepairAttempts,
		QualityThreshold:  cfg.QualityThreshold,
		Verbose:           cfg.Verbose,
	}
	if cfg.Verbose {
		opts.Printer = observability.NewPrinter(os.Stdout)
	}

	// Step 4: Optional collaborators
	if cfg.RedisURL != "" && cfg.HTMLFile == "" {
		cache, err := fetch.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("[CACHE] Redis unavailable, fetching without cache: %v", err)
		} else {
			defer func() { _ = cache.Close() }()
			opts.Site.Cache = cache
		}
	}
	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.ConfigFromEnv(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		opts.LLM = client
	} else {
		_, _ = fmt.Fprintln(os.Stdout, "No GEMINI_API_KEY set: AI sections will be skipped")
	}
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		opts.Store = database
	}

	// Step 5: Run
	var out *pipeline.Output
	var err error
	if cfg.HTMLFile != "" {
		content, rerr := os.ReadFile(cfg.HTMLFile)
		if rerr != nil {
			return fmt.Errorf("failed to read html file: %w", rerr)
		}
		out, err = pipeline.Generate(ctx, string(content), opts)
	} else {
		out, err = pipeline.Run(ctx, opts)
	}
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	return writeGenerateOutputs(out, cfg.Out, genArtifactOut, genTokensCSS)
}

// writeGenerateOutputs writes the document and any requested side outputs
func writeGenerateOutputs(out *pipeline.Output, docPath, artifactPath, cssPath string) error {
	if err := writeFile(docPath, []byte(out.Document)); err != nil {
		return err
	}
	if artifactPath != "" {
		if err := writeJSON(artifactPath, out.Artifact, ""); err != nil {
			return err
		}
	}
	if cssPath != "" {
		if err := writeFile(cssPath, []byte(tokens.ToCSSVariables(out.Tokens))); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "\nStyleguide for %s: quality %d/100 after %d repair attempt(s)\n",
		out.Analysis.BrandName, out.Report.Score, out.Repair.Attempts)
	for _, issue := range out.Report.Issues {
		_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", issue)
	}
	if out.StoredID != uuid.Nil {
		_, _ = fmt.Fprintf(os.Stdout, "Stored as %s\n", out.StoredID)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", docPath)
	return nil
}
