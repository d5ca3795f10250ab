// Package pipeline orchestrates styleguide generation: collect, extract,
// analyze, build tokens, render sections, assemble, repair and store.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/brand-styleguide/internal/assemble"
	"github.com/jonathan/brand-styleguide/internal/brand"
	"github.com/jonathan/brand-styleguide/internal/db"
	"github.com/jonathan/brand-styleguide/internal/extraction"
	"github.com/jonathan/brand-styleguide/internal/fetch"
	"github.com/jonathan/brand-styleguide/internal/llm"
	"github.com/jonathan/brand-styleguide/internal/observability"
	"github.com/jonathan/brand-styleguide/internal/quality"
	"github.com/jonathan/brand-styleguide/internal/repair"
	"github.com/jonathan/brand-styleguide/internal/schemas"
	"github.com/jonathan/brand-styleguide/internal/sections"
	"github.com/jonathan/brand-styleguide/internal/tokens"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// Stage names used in progress events and metrics
const (
	StageCollect  = "collect"
	StageExtract  = "extract"
	StageAnalyze  = "analyze"
	StageTokens   = "tokens"
	StageSections = "sections"
	StageAssemble = "assemble"
	StageRepair   = "repair"
	StageStore    = "store"
)

const totalSteps = 8

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Step    int    `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Store persists finished styleguides. *db.DB implements it.
type Store interface {
	SaveStyleguide(ctx context.Context, in *db.StyleguideInput) (uuid.UUID, error)
}

// Options holds configuration for a pipeline run
type Options struct {
	URL    string
	Domain string
	// Site tunes page collection; its Verbose follows Options.Verbose
	Site *fetch.SiteOptions

	Personality *types.PersonalityOverride
	// LLM fills the AI sections and, when InferPersonality is set and no
	// Personality is given, rates the brand voice. Nil skips both.
	LLM              llm.Client
	InferPersonality bool
	Registry         *sections.Registry

	MaxRepairAttempts int
	QualityThreshold  int

	Store   Store
	Metrics *observability.Metrics
	Printer *observability.Printer
	Verbose bool

	OnProgress ProgressCallback
	// Quiet suppresses the Step n/N progress lines
	Quiet bool
	Now   func() time.Time
}

// Output is everything a run produced
type Output struct {
	RunID      uuid.UUID
	Site       *fetch.Site
	Extraction *types.RawExtraction
	Analysis   *types.BrandAnalysis
	Tokens     *types.DesignTokenSet
	Sections   []types.RenderedSection
	Document   string
	Report     *types.QualityReport
	Repair     *repair.Result
	Artifact   *types.StyleguideArtifact
	StoredID   uuid.UUID
}

// runner carries per-run state shared by the stages
type runner struct {
	opts  *Options
	runID uuid.UUID
}

func (r *runner) step(n int, stage, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !r.opts.Quiet {
		fmt.Printf("Step %d/%d: %s\n", n, totalSteps, msg)
	}
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(ProgressEvent{Stage: stage, Step: n, Message: msg, RunID: r.runID.String()})
	}
}

func (r *runner) timed(stage string, fn func()) {
	start := time.Now()
	fn()
	r.opts.Metrics.ObserveStage(stage, time.Since(start))
}

// Run fetches opts.URL with its linked stylesheets and generates a styleguide from them.
func Run(ctx context.Context, opts Options) (*Output, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("a URL is required")
	}
	r := &runner{opts: &opts, runID: uuid.New()}

	siteOpts := fetch.SiteOptions{}
	if opts.Site != nil {
		siteOpts = *opts.Site
	}
	siteOpts.Verbose = opts.Verbose

	r.step(1, StageCollect, "Collecting %s and its stylesheets...", opts.URL)
	var site *fetch.Site
	var err error
	r.timed(StageCollect, func() {
		site, err = fetch.CollectSite(ctx, opts.URL, &siteOpts)
	})
	if err != nil {
		opts.Metrics.ObserveFailure("fetch")
		return nil, fmt.Errorf("failed to collect site: %w", err)
	}
	for _, s := range site.Stylesheets {
		opts.Metrics.ObserveStylesheet(s.Err == "")
	}
	if opts.Domain == "" {
		opts.Domain = site.Domain
	}
	if opts.Verbose {
		log.Printf("[PIPELINE] Collected %s", site)
	}

	out, err := r.generate(ctx, site.Raw, source{
		title:  site.Title,
		method: site.Method,
		pages:  site.Pages,
		url:    site.URL,
	})
	if out != nil {
		out.Site = site
	}
	return out, err
}

// Generate runs every stage after collection over already-assembled raw text
// (page markup plus stylesheet bodies).
func Generate(ctx context.Context, raw string, opts Options) (*Output, error) {
	r := &runner{opts: &opts, runID: uuid.New()}
	r.step(1, StageCollect, "Using %d bytes of supplied page text", len(raw))
	var pages []string
	if opts.URL != "" {
		pages = []string{opts.URL}
	}
	return r.generate(ctx, raw, source{url: opts.URL, pages: pages})
}

type source struct {
	title  string
	method string
	url    string
	pages  []string
}

func (r *runner) generate(ctx context.Context, raw string, src source) (*Output, error) {
	opts := r.opts
	out := &Output{RunID: r.runID}
	domain := opts.Domain
	if domain == "" {
		domain = brand.HostOf(src.url)
	}

	r.step(2, StageExtract, "Extracting brand signals...")
	r.timed(StageExtract, func() {
		out.Extraction = extraction.Extract(raw, extraction.Options{
			Domain:  domain,
			Title:   src.title,
			Pages:   src.pages,
			Verbose: opts.Verbose,
		})
	})
	if opts.Verbose && opts.Printer != nil {
		opts.Printer.PrintExtraction(out.Extraction)
	}

	r.step(3, StageAnalyze, "Analyzing brand...")
	var err error
	r.timed(StageAnalyze, func() {
		out.Analysis, err = brand.Analyze(out.Extraction, brand.Input{
			Domain:      domain,
			Method:      src.method,
			Personality: opts.Personality,
			Verbose:     opts.Verbose,
		})
	})
	if err != nil {
		var insufficient *brand.InsufficientInputError
		if errors.As(err, &insufficient) {
			opts.Metrics.ObserveFailure("insufficient_input")
		} else {
			opts.Metrics.ObserveFailure("analyze")
		}
		return nil, fmt.Errorf("failed to analyze brand: %w", err)
	}
	if opts.Personality == nil && opts.InferPersonality && opts.LLM != nil {
		r.inferPersonality(ctx, raw, out.Analysis)
	}
	if opts.Verbose && opts.Printer != nil {
		opts.Printer.PrintBrandAnalysis(out.Analysis)
	}

	r.step(4, StageTokens, "Building design tokens...")
	r.timed(StageTokens, func() {
		out.Tokens = tokens.Build(out.Analysis)
	})
	if err := schemas.ValidateTokens(out.Tokens); err != nil {
		opts.Metrics.ObserveFailure("tokens")
		return nil, fmt.Errorf("token set failed validation: %w", err)
	}
	if opts.Verbose && opts.Printer != nil {
		opts.Printer.PrintTokens(out.Tokens)
	}

	registry := opts.Registry
	if registry == nil {
		registry = sections.DefaultRegistry()
	}
	r.step(5, StageSections, "Rendering %d template sections...", registry.Len())
	r.timed(StageSections, func() {
		out.Sections = registry.GenerateTemplateSections(out.Tokens, out.Analysis)
		if opts.LLM != nil {
			filler := sections.NewAIFiller(opts.LLM)
			filler.Verbose = opts.Verbose
			out.Sections = append(out.Sections, filler.Fill(ctx, out.Tokens, out.Analysis)...)
		} else if opts.Verbose {
			log.Printf("[PIPELINE] No LLM client; AI sections skipped")
		}
	})

	r.step(6, StageAssemble, "Assembling document from %d sections...", len(out.Sections))
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	generatedAt := now().UTC()
	r.timed(StageAssemble, func() {
		out.Document = assemble.Document(out.Sections, out.Tokens, out.Analysis, assemble.Meta{
			GeneratedAt:      generatedAt,
			Version:          types.ArtifactVersion,
			RunID:            r.runID.String(),
			ExtractionMethod: out.Analysis.ExtractionMethod,
			Confidence:       out.Analysis.Confidence,
		})
	})

	r.step(7, StageRepair, "Validating and repairing...")
	r.timed(StageRepair, func() {
		out.Repair = repair.RunRepairLoop(out.Document, repair.Options{
			Quality: quality.Options{
				Prefix:           out.Tokens.Prefix,
				BrandName:        out.Analysis.BrandName,
				PrimaryColor:     out.Analysis.Colors.Primary,
				ExpectedSections: len(sections.Catalog()),
			},
			MaxAttempts: opts.MaxRepairAttempts,
			Threshold:   opts.QualityThreshold,
			Verbose:     opts.Verbose,
		})
	})
	out.Document = out.Repair.Document
	out.Report = out.Repair.Report
	if opts.Verbose && opts.Printer != nil {
		opts.Printer.PrintRepair(out.Repair.Attempts, out.Repair.ScoreHistory, out.Repair.Patches)
		opts.Printer.PrintQualityReport(out.Report)
	}

	out.Artifact = &types.StyleguideArtifact{
		DesignTokens:   out.Tokens,
		BrandAnalysis:  out.Analysis,
		HTMLStorageKey: db.HTMLStorageKey(r.runID),
		GeneratedAt:    generatedAt,
		Version:        types.ArtifactVersion,
	}

	if opts.Store != nil {
		r.step(8, StageStore, "Storing styleguide...")
		r.timed(StageStore, func() {
			out.StoredID, err = opts.Store.SaveStyleguide(ctx, &db.StyleguideInput{
				ID:        r.runID,
				Domain:    domain,
				SourceURL: src.url,
				Artifact:  out.Artifact,
				Report:    out.Report,
				Document:  out.Document,
			})
		})
		if err != nil {
			opts.Metrics.ObserveFailure("store")
			return out, fmt.Errorf("failed to store styleguide: %w", err)
		}
	} else {
		r.step(8, StageStore, "No store configured, skipping persistence")
	}

	opts.Metrics.ObserveRun(out.Report.Score, out.Repair.Attempts, out.Analysis.Confidence)
	return out, nil
}

func (r *runner) inferPersonality(ctx context.Context, raw string, analysis *types.BrandAnalysis) {
	text, err := fetch.VisibleText(raw)
	if err != nil || text == "" {
		return
	}
	p, err := llm.InferPersonality(ctx, r.opts.LLM, analysis.BrandName, text)
	if err != nil {
		log.Printf("[PIPELINE] Personality inference failed, keeping defaults: %v", err)
		return
	}
	if err := brand.ApplyPersonality(analysis, p); err != nil {
		log.Printf("[PIPELINE] Inferred personality rejected: %v", err)
	}
}

// WriteDocument writes the assembled document to path
func WriteDocument(path string, out *Output) error {
	if out == nil {
		return fmt.Errorf("no output to write")
	}
	if err := os.WriteFile(path, []byte(out.Document), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
