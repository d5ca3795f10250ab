// Package assemble concatenates rendered sections into one self-contained styleguide document.
package assemble

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/brand-styleguide/internal/tokens"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// IconFontURL is the icon-font stylesheet linked from every document
const IconFontURL = "https://fonts.googleapis.com/css2?family=Material+Symbols+Outlined"

// Meta is the generation metadata printed in the document footer
type Meta struct {
	GeneratedAt      time.Time
	Version          string
	RunID            string
	ExtractionMethod string
	Confidence       float64
}

// CategoryLabels are the navigation group headings
var CategoryLabels = map[types.SectionCategory]string{
	types.CategoryFoundation: "Foundation",
	types.CategoryExtension:  "Components",
	types.CategorySiteWide:   "Site-wide",
	types.CategoryReference:  "Reference",
}

// Document renders sections, sorted by id, inside the document shell.
// Brand name and domain are escaped; section fragments are written as-is.
func Document(sections []types.RenderedSection, ts *types.DesignTokenSet, analysis *types.BrandAnalysis, meta Meta) string {
	sorted := append([]types.RenderedSection(nil), sections...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	if ts == nil {
		ts = tokens.Build(analysis)
	}

	name, domain := "Brand", ""
	if analysis != nil {
		if analysis.BrandName != "" {
			name = analysis.BrandName
		}
		domain = analysis.Domain
	}
	if meta.ExtractionMethod == "" && analysis != nil {
		meta.ExtractionMethod = analysis.ExtractionMethod
		meta.Confidence = analysis.Confidence
	}
	if meta.GeneratedAt.IsZero() {
		meta.GeneratedAt = time.Now().UTC()
	}
	if meta.Version == "" {
		meta.Version = types.ArtifactVersion
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s Styleguide</title>\n", html.EscapeString(name))
	if ts.Typography.GoogleFonts != "" {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", html.EscapeString(ts.Typography.GoogleFonts))
	}
	fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", IconFontURL)
	fmt.Fprintf(&b, "<style>\n%s</style>\n", chromeCSS(ts))
	b.WriteString("</head>\n<body class=\"sg-body\">\n")

	writeHeader(&b, name, domain, len(sorted), colorCount(ts))
	writeNav(&b, sorted)

	b.WriteString("<main class=\"sg-main\">\n")
	for _, s := range sorted {
		b.WriteString(s.HTML)
		if !strings.HasSuffix(s.HTML, "\n") {
			b.WriteString("\n")
		}
	}
	b.WriteString("</main>\n")

	writeFooter(&b, name, meta)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeHeader(b *strings.Builder, name, domain string, sectionCount, colors int) {
	b.WriteString("<header class=\"sg-header\">\n")
	fmt.Fprintf(b, "<h1 class=\"sg-brand\">%s</h1>\n", html.EscapeString(name))
	fmt.Fprintf(b, "<p class=\"sg-meta\"><span class=\"sg-domain\">%s</span> · %d sections · %d colors</p>\n",
		html.EscapeString(domain), sectionCount, colors)
	b.WriteString("</header>\n")
}

func writeNav(b *strings.Builder, sections []types.RenderedSection) {
	b.WriteString("<nav class=\"sg-nav\">\n")
	var current types.SectionCategory
	for i, s := range sections {
		if i == 0 || s.Category != current {
			if i > 0 {
				b.WriteString("<span class=\"sg-nav-separator\" aria-hidden=\"true\"></span>\n")
			}
			current = s.Category
			label := CategoryLabels[s.Category]
			if label == "" {
				label = string(s.Category)
			}
			fmt.Fprintf(b, "<span class=\"sg-nav-group\">%s</span>\n", html.EscapeString(label))
		}
		fmt.Fprintf(b, "<a class=\"sg-nav-link\" href=\"#%s\">%02d %s</a>\n", s.Anchor, s.ID, html.EscapeString(s.Title))
	}
	b.WriteString("</nav>\n")
}

func writeFooter(b *strings.Builder, name string, meta Meta) {
	b.WriteString("<footer class=\"sg-footer\">\n")
	fmt.Fprintf(b, "<p>%s styleguide · generated %s · version %s</p>\n",
		html.EscapeString(name), meta.GeneratedAt.UTC().Format(time.RFC3339), html.EscapeString(meta.Version))
	if meta.ExtractionMethod != "" {
		fmt.Fprintf(b, "<p>Extraction: %s · confidence %.2f</p>\n", html.EscapeString(meta.ExtractionMethod), meta.Confidence)
	}
	if meta.RunID != "" {
		fmt.Fprintf(b, "<p class=\"sg-run-id\">Run %s</p>\n", html.EscapeString(meta.RunID))
	}
	b.WriteString("</footer>\n")
}

// colorCount is the number of distinct color values in the token set
func colorCount(ts *types.DesignTokenSet) int {
	seen := make(map[string]bool)
	for _, s := range []types.ColorScale{ts.Colors.Primary, ts.Colors.Secondary, ts.Colors.Accent, ts.Colors.Gray} {
		for _, hex := range s {
			seen[strings.ToUpper(hex)] = true
		}
	}
	sem := ts.Colors.Semantic
	for _, hex := range []string{sem.Success, sem.Error, sem.Warning, sem.Info, sem.Fixed} {
		if hex != "" {
			seen[strings.ToUpper(hex)] = true
		}
	}
	return len(seen)
}
