package sections

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/brand-styleguide/internal/llm"
	"github.com/jonathan/brand-styleguide/internal/prompts"
	"github.com/jonathan/brand-styleguide/internal/tokens"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// AIFiller asks an LLM for the catalog sections that no template generator
// covers. Each strategy is one batch request.
type AIFiller struct {
	client  llm.Client
	tier    llm.ModelTier
	Verbose bool
}

// NewAIFiller creates a filler backed by client
func NewAIFiller(client llm.Client) *AIFiller {
	return &AIFiller{client: client, tier: llm.TierStandard}
}

type aiSection struct {
	Anchor    string `json:"anchor"`
	Rationale string `json:"rationale"`
	HTML      string `json:"html"`
	CSS       string `json:"css"`
	Tip       string `json:"tip"`
}

type aiBatch struct {
	Sections []aiSection `json:"sections"`
}

var unsafeCSSRe = regexp.MustCompile(`(?i)<|@import|url\s*\(|expression\s*\(`)

// Fill runs every AI batch concurrently. A failed batch is logged and its
// sections are left out; the quality report picks up the gap.
func (f *AIFiller) Fill(ctx context.Context, ts *types.DesignTokenSet, analysis *types.BrandAnalysis) []types.RenderedSection {
	if f == nil || f.client == nil {
		return nil
	}
	results := make([][]types.RenderedSection, len(AIStrategies))

	g, gctx := errgroup.WithContext(ctx)
	for i, strategy := range AIStrategies {
		g.Go(func() error {
			secs, err := f.FillBatch(gctx, strategy, ts, analysis)
			if err != nil {
				log.Printf("[SECTIONS] %s batch failed: %v", strategy, err)
				return nil
			}
			results[i] = secs
			return nil
		})
	}
	_ = g.Wait()

	var out []types.RenderedSection
	for _, secs := range results {
		out = append(out, secs...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FillBatch requests one strategy's sections and wraps whatever comes back
func (f *AIFiller) FillBatch(ctx context.Context, strategy Strategy, ts *types.DesignTokenSet, analysis *types.BrandAnalysis) ([]types.RenderedSection, error) {
	entries := EntriesFor(strategy)
	if len(entries) == 0 {
		return nil, nil
	}

	raw, err := f.client.GenerateJSON(ctx, buildBatchPrompt(strategy, entries, ts, analysis), f.tier)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s sections: %w", strategy, err)
	}

	var batch aiBatch
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &batch); err != nil {
		return nil, fmt.Errorf("failed to parse %s sections: %w", strategy, err)
	}

	byAnchor := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byAnchor[e.Anchor] = e
	}
	policy := fragmentPolicy(ts.Prefix)

	var out []types.RenderedSection
	for _, s := range batch.Sections {
		e, ok := byAnchor[s.Anchor]
		if !ok {
			continue
		}
		delete(byAnchor, s.Anchor)

		css := s.CSS
		if unsafeCSSRe.MatchString(css) {
			css = ""
		}
		out = append(out, Wrap(e, ts.Prefix, s.Rationale, css, policy.Sanitize(s.HTML), s.Tip, ""))
	}
	if f.Verbose {
		log.Printf("[SECTIONS] %s batch returned %d of %d sections", strategy, len(out), len(entries))
	}
	return out, nil
}

// fragmentPolicy allows ordinary markup, inline styles and classes carrying the token prefix
func fragmentPolicy(prefix string) *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("button", "details", "summary", "nav", "article", "figure", "figcaption")
	classRe := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-[a-z0-9-]+(\s+` + regexp.QuoteMeta(prefix) + `-[a-z0-9-]+)*$`)
	p.AllowAttrs("class").Matching(classRe).Globally()
	p.AllowStyles(
		"color", "background", "background-color", "border", "border-color", "border-radius",
		"padding", "margin", "gap", "display", "flex-wrap", "align-items", "justify-content",
		"font-family", "font-size", "font-weight", "line-height", "text-align", "width", "max-width", "box-shadow",
	).Globally()
	return p
}

func buildBatchPrompt(strategy Strategy, entries []Entry, ts *types.DesignTokenSet, analysis *types.BrandAnalysis) string {
	var sb strings.Builder

	sb.WriteString(prompts.Format(prompts.MustGet(prompts.Styleguide, prompts.KeySectionBatchIntro), map[string]string{
		"BrandName": brandName(analysis),
		"Domain":    domainOf(analysis),
	}))
	sb.WriteString("\n")
	if analysis != nil {
		p := analysis.Personality
		fmt.Fprintf(&sb, "Personality: formality %d/5, energy %d/5, warmth %d/5, tone %q\n", p.Formality, p.Energy, p.Warmth, p.Tone)
		if analysis.Industry != "" {
			fmt.Fprintf(&sb, "Industry: %s\n", analysis.Industry)
		}
	}
	sb.WriteString("\nDesign tokens:\n")
	flat := tokens.Flatten(ts)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "- %s: %s\n", k, flat[k])
	}

	fmt.Fprintf(&sb, "\nWrite these %s sections:\n", strategy)
	for _, e := range entries {
		fmt.Fprintf(&sb, "- anchor %q: %s\n", e.Anchor, e.Title)
	}

	sb.WriteString("\nReturn ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(`{"sections": [{"anchor": string, "rationale": string, "html": string, "css": string, "tip": string}]}`)
	sb.WriteString("\n\n")
	sb.WriteString(prompts.Format(prompts.MustGet(prompts.Styleguide, prompts.KeySectionBatchRules), map[string]string{"Prefix": ts.Prefix}))
	sb.WriteString("\n")
	return sb.String()
}

func domainOf(a *types.BrandAnalysis) string {
	if a == nil {
		return ""
	}
	return a.Domain
}
