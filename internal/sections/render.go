package sections

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/colors"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// Fixed chrome namespace and the markup markers the validator and repair loop key on
const (
	ChromePrefix = "sg-"
	SectionClass = "sg-section"
	DemoClass    = "sg-demo"
	PendingClass = "sg-pending"
)

// block is what a template generator contributes to its section
type block struct {
	Rationale string
	CSS       string
	Demo      string
	Tip       string
	Warning   string
}

var classSelectorRe = regexp.MustCompile(`\.([a-z][a-z0-9]*-[a-zA-Z0-9_-]+)`)

// render wraps a block in the standard section markup for catalog id
func render(id int, ts *types.DesignTokenSet, b block) types.RenderedSection {
	e, _ := EntryByID(id)
	return Wrap(e, ts.Prefix, b.Rationale, b.CSS, b.Demo, b.Tip, b.Warning)
}

// Wrap builds a section element around a demo fragment and the CSS that
// defines its classes. Only classes carrying the token prefix are reported.
func Wrap(e Entry, prefix, rationale, css, demo, tip, warning string) types.RenderedSection {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<section id=\"%s\" class=\"%s\" data-section=\"%d\" data-category=\"%s\">\n", e.Anchor, SectionClass, e.ID, e.Category)
	fmt.Fprintf(&sb, "<header class=\"sg-section-header\"><span class=\"sg-section-number\">%02d</span><h2 class=\"sg-section-title\">%s</h2></header>\n", e.ID, html.EscapeString(e.Title))
	if rationale != "" {
		fmt.Fprintf(&sb, "<p class=\"sg-rationale\">%s</p>\n", html.EscapeString(rationale))
	}
	css = strings.TrimSpace(css)
	if css != "" {
		fmt.Fprintf(&sb, "<style>\n%s\n</style>\n", css)
	}
	if strings.TrimSpace(demo) != "" {
		fmt.Fprintf(&sb, "<div class=\"%s\">\n%s\n</div>\n", DemoClass, demo)
	}
	if css != "" {
		fmt.Fprintf(&sb, "<pre class=\"sg-code\"><code>%s</code></pre>\n", html.EscapeString(css))
	}
	if tip != "" {
		fmt.Fprintf(&sb, "<p class=\"sg-tip\"><strong>Tip:</strong> %s</p>\n", html.EscapeString(tip))
	}
	if warning != "" {
		fmt.Fprintf(&sb, "<p class=\"sg-warning\"><strong>Warning:</strong> %s</p>\n", html.EscapeString(warning))
	}
	sb.WriteString("</section>\n")

	return types.RenderedSection{
		ID:         e.ID,
		Anchor:     e.Anchor,
		Title:      e.Title,
		Category:   e.Category,
		HTML:       sb.String(),
		ClassNames: definedClasses(css, prefix),
	}
}

// definedClasses lists the prefixed class selectors in css, first-seen order
func definedClasses(css, prefix string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range classSelectorRe.FindAllStringSubmatch(css, -1) {
		name := m[1]
		if !strings.HasPrefix(name, prefix+"-") || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// c joins prefixed class names: c(ts, "btn", "btn-primary") -> "bmdt-btn bmdt-btn-primary"
func c(ts *types.DesignTokenSet, names ...string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = ts.Prefix + "-" + n
	}
	return strings.Join(parts, " ")
}

// onColor picks the lightest or darkest gray, whichever reads better on bg
func onColor(ts *types.DesignTokenSet, bg string) string {
	light, dark := ts.Colors.Gray["50"], ts.Colors.Gray["900"]
	if colors.ContrastRatio(light, bg) >= colors.ContrastRatio(dark, bg) {
		return light
	}
	return dark
}

func brandName(a *types.BrandAnalysis) string {
	if a == nil || a.BrandName == "" {
		return "Brand"
	}
	return a.BrandName
}

func esc(s string) string {
	return html.EscapeString(s)
}

type namedScale struct {
	Name  string
	Scale types.ColorScale
}

// namedScales returns the color scales present in ts, primary first
func namedScales(ts *types.DesignTokenSet) []namedScale {
	all := []namedScale{
		{"primary", ts.Colors.Primary},
		{"secondary", ts.Colors.Secondary},
		{"accent", ts.Colors.Accent},
		{"gray", ts.Colors.Gray},
	}
	out := all[:0]
	for _, s := range all {
		if s.Scale != nil {
			out = append(out, s)
		}
	}
	return out
}

// brandColor returns step 400 of the secondary or accent scale, falling back to primary
func brandColor(ts *types.DesignTokenSet, name string) string {
	switch name {
	case "secondary":
		if ts.Colors.Secondary != nil {
			return ts.Colors.Secondary["400"]
		}
	case "accent":
		if ts.Colors.Accent != nil {
			return ts.Colors.Accent["400"]
		}
	}
	return ts.Colors.Primary["400"]
}
