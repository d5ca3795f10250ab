// Package observability provides boxed summaries for verbose CLI mode and
// Prometheus metrics for the pipeline and HTTP server.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if r := []rune(line); len(r) > boxWidth-4 {
			line = string(r[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtraction outputs the signal counts of a raw extraction and its top colors.
func (p *Printer) PrintExtraction(raw *types.RawExtraction) {
	if raw == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Domain:   %s\n", raw.Domain)
	if raw.Title != "" {
		fmt.Fprintf(&sb, "Title:    %s\n", raw.Title)
	}
	fmt.Fprintf(&sb, "Text:     %d chars, %d signals\n\n", raw.RawTextLength, raw.SignalCount())
	fmt.Fprintf(&sb, "Colors %d · Fonts %d · Sizes %d\n", len(raw.Colors), len(raw.Fonts), len(raw.Sizes))
	fmt.Fprintf(&sb, "Spacing %d · Radii %d · Shadows %d\n", len(raw.Spacing), len(raw.Radii), len(raw.Shadows))

	if len(raw.Colors) > 0 {
		sb.WriteString("\nTop colors:\n")
		count := min(len(raw.Colors), maxItemsToShow)
		for i := 0; i < count; i++ {
			c := raw.Colors[i]
			fmt.Fprintf(&sb, "  %d. %s  %s ×%d\n", i+1, c.Hex, c.Property, c.Count)
		}
		if len(raw.Colors) > maxItemsToShow {
			fmt.Fprintf(&sb, "  ... and %d more\n", len(raw.Colors)-maxItemsToShow)
		}
	}

	p.printBox("RAW EXTRACTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBrandAnalysis outputs the brand colors, fonts, shape anchors and confidence.
func (p *Printer) PrintBrandAnalysis(a *types.BrandAnalysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Brand:      %s\n", a.BrandName)
	fmt.Fprintf(&sb, "Confidence: %.2f (%s)\n\n", a.Confidence, a.ExtractionMethod)

	fmt.Fprintf(&sb, "Primary:    %s\n", a.Colors.Primary)
	if a.Colors.Secondary != "" {
		fmt.Fprintf(&sb, "Secondary:  %s\n", a.Colors.Secondary)
	}
	if a.Colors.Accent != "" {
		fmt.Fprintf(&sb, "Accent:     %s\n", a.Colors.Accent)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Heading:    %s (%s)\n", a.Typography.Heading.Family, a.Typography.Heading.Fallback)
	if a.Typography.Body.Family != a.Typography.Heading.Family {
		fmt.Fprintf(&sb, "Body:       %s (%s)\n", a.Typography.Body.Family, a.Typography.Body.Fallback)
	}
	fmt.Fprintf(&sb, "Section:    %s · Card %s\n", a.Spacing.SectionPadding, a.Spacing.CardPadding)
	fmt.Fprintf(&sb, "Radius:     button %s · card %s\n", a.Shapes.ButtonRadius, a.Shapes.CardRadius)

	pers := a.Personality
	fmt.Fprintf(&sb, "\nPersonality: F%d E%d W%d", pers.Formality, pers.Energy, pers.Warmth)
	if pers.Tone != "" {
		fmt.Fprintf(&sb, ", %s", pers.Tone)
	}

	p.printBox("BRAND ANALYSIS", sb.String())
}

// PrintTokens outputs the prefix, key scale steps and font stacks of a token set.
func (p *Printer) PrintTokens(ts *types.DesignTokenSet) {
	if ts == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Prefix:   %s-\n\n", ts.Prefix)
	scales := []struct {
		name  string
		scale types.ColorScale
	}{
		{"primary", ts.Colors.Primary},
		{"secondary", ts.Colors.Secondary},
		{"accent", ts.Colors.Accent},
		{"gray", ts.Colors.Gray},
	}
	for _, s := range scales {
		if s.scale == nil {
			continue
		}
		fmt.Fprintf(&sb, "%-9s 100 %s · 500 %s · 900 %s\n", s.name, s.scale["100"], s.scale["500"], s.scale["900"])
	}
	sem := ts.Colors.Semantic
	fmt.Fprintf(&sb, "semantic  ok %s · err %s · warn %s\n\n", sem.Success, sem.Error, sem.Warning)

	fmt.Fprintf(&sb, "Heading:  %s\n", ts.Typography.HeadingFont)
	fmt.Fprintf(&sb, "Body:     %s\n", ts.Typography.BodyFont)
	fmt.Fprintf(&sb, "Space md: %s · Radius md: %s", ts.Spacing["md"], ts.Radius["md"])

	p.printBox("DESIGN TOKENS", sb.String())
}

// PrintQualityReport outputs the score and issues of a quality report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintQualityReport(r *types.QualityReport) {
	if r == nil {
		return
	}
	if len(r.Issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ QUALITY %d/100, NO ISSUES", r.Score))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Score:    %d/100\n", r.Score)
	fmt.Fprintf(&sb, "Sections: %d of %d\n", r.Structural.SectionCount.Found, r.Structural.SectionCount.Expected)
	fmt.Fprintf(&sb, "Classes:  %d unique\n\n", r.Content.UniqueClasses)
	for i, issue := range r.Issues {
		fmt.Fprintf(&sb, "⚠ %s", issue)
		if i < len(r.Issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("QUALITY REPORT", sb.String())
}

// PrintRepair outputs the score history and patches of a repair run.
func (p *Printer) PrintRepair(attempts int, history []int, patches []string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Attempts: %d\n", attempts)
	scores := make([]string, len(history))
	for i, s := range history {
		scores[i] = fmt.Sprint(s)
	}
	fmt.Fprintf(&sb, "Scores:   %s", strings.Join(scores, " → "))
	if len(patches) > 0 {
		fmt.Fprintf(&sb, "\nPatches:  %s", strings.Join(patches, ", "))
	}
	p.printBox("AUTO-REPAIR", sb.String())
}
