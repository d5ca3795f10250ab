// Package quality scores an assembled styleguide document. The report is
// always derived from scratch from the document text.
package quality

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/sections"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// Penalties subtracted from a starting score of 100
const (
	MaxScore               = 100
	PenaltyTagImbalance    = 15
	PenaltyPerMissing      = 2
	MaxSectionPenalty      = 20
	PenaltyEmptySections   = 10
	PenaltyForeignPrefix   = 5
	PenaltyBrandName       = 5
	PenaltyPrimaryColor    = 10
	PenaltyFewClasses      = 10
	PenaltyMissingVisual   = 5
	MaxEmptySections       = 5
	MinUniqueClasses       = 20
	minHeadingLevels       = 4
	maxReportedForeignSets = 5
)

// Options carries what the validator needs to know about the generation run
type Options struct {
	Prefix       string
	BrandName    string
	PrimaryColor string
	// ExpectedSections defaults to the catalog size
	ExpectedSections int
	// AllowedClassPrefixes are extra namespaces besides the token prefix and sg-
	AllowedClassPrefixes []string
}

// DefaultAllowedClassPrefixes covers the icon-font stylesheet
var DefaultAllowedClassPrefixes = []string{sections.IconFontClass}

var (
	swatchRe = regexp.MustCompile(`class="[^"]*-swatch`)
	buttonRe = regexp.MustCompile(`<button\b|class="[^"]*-btn\b`)
	cardRe   = regexp.MustCompile(`class="[^"]*-card\b`)
	navRe    = regexp.MustCompile(`(?s)<nav\b.*?href="#`)
)

// Validate scores doc. Defects become issue strings, never errors.
func Validate(doc string, opts Options) *types.QualityReport {
	if opts.ExpectedSections <= 0 {
		opts.ExpectedSections = len(sections.Catalog())
	}
	if opts.AllowedClassPrefixes == nil {
		opts.AllowedClassPrefixes = DefaultAllowedClassPrefixes
	}

	r := &types.QualityReport{Score: MaxScore}
	penalize := func(points int, issue string) {
		r.Score -= points
		r.Issues = append(r.Issues, issue)
	}

	// Structural
	open, closed := CountTags(doc)
	r.Structural.TagBalance = types.TagBalance{Open: open, Close: closed, Balanced: open == closed}
	if open != closed {
		penalize(PenaltyTagImbalance, fmt.Sprintf("Unbalanced tags: %d opening vs %d closing", open, closed))
	}

	spans := Sections(doc)
	r.Structural.SectionCount = types.SectionCount{Found: len(spans), Expected: opts.ExpectedSections}
	if missing := opts.ExpectedSections - len(spans); missing > 0 {
		penalize(min(MaxSectionPenalty, PenaltyPerMissing*missing),
			fmt.Sprintf("Missing sections: found %d of %d", len(spans), opts.ExpectedSections))
	}

	r.Structural.FileSizeBytes = len(doc)
	r.Structural.LineCount = strings.Count(doc, "\n") + 1
	r.Structural.EmptySections = []string{}
	for _, s := range spans {
		if s.Empty {
			r.Structural.EmptySections = append(r.Structural.EmptySections, s.ID)
		}
	}
	if n := len(r.Structural.EmptySections); n > MaxEmptySections {
		penalize(PenaltyEmptySections, fmt.Sprintf("Too many empty sections: %d (%s)", n, strings.Join(r.Structural.EmptySections, ", ")))
	}

	// Content
	unique, foreign := classifyClasses(Classes(doc), opts)
	r.Content.UniqueClasses = unique
	r.Content.PrefixConsistent = len(foreign) == 0
	if len(foreign) > 0 {
		penalize(PenaltyForeignPrefix, "Foreign class prefixes found: "+strings.Join(foreign, ", "))
	}

	r.Content.BrandNamePresent = opts.BrandName == "" ||
		strings.Contains(doc, opts.BrandName) || strings.Contains(doc, html.EscapeString(opts.BrandName))
	if !r.Content.BrandNamePresent {
		penalize(PenaltyBrandName, fmt.Sprintf("Brand name %q not found in document", opts.BrandName))
	}

	r.Content.PrimaryColorPresent = opts.PrimaryColor == "" ||
		strings.Contains(strings.ToUpper(doc), strings.ToUpper(opts.PrimaryColor))
	if !r.Content.PrimaryColorPresent {
		penalize(PenaltyPrimaryColor, fmt.Sprintf("Primary color %s not used in document", opts.PrimaryColor))
	}

	if unique < MinUniqueClasses {
		penalize(PenaltyFewClasses, fmt.Sprintf("Only %d unique %s- classes, expected at least %d", unique, opts.Prefix, MinUniqueClasses))
	}

	// Visual
	r.Visual = types.VisualChecks{
		ColorSwatches:       swatchRe.MatchString(doc),
		Buttons:             buttonRe.MatchString(doc),
		Cards:               cardRe.MatchString(doc),
		TypographyHierarchy: headingLevels(doc) >= minHeadingLevels,
		CodeBlocks:          strings.Contains(doc, "<pre") && strings.Contains(doc, "<code"),
		NavigationLinks:     navRe.MatchString(doc),
	}
	visual := []struct {
		ok    bool
		issue string
	}{
		{r.Visual.ColorSwatches, "No color swatches found"},
		{r.Visual.CodeBlocks, "No code blocks found"},
		{r.Visual.NavigationLinks, "No navigation links found"},
		{r.Visual.TypographyHierarchy, "Typography hierarchy incomplete"},
	}
	for _, v := range visual {
		if !v.ok {
			penalize(PenaltyMissingVisual, v.issue)
		}
	}

	if r.Score < 0 {
		r.Score = 0
	}
	if r.Issues == nil {
		r.Issues = []string{}
	}
	return r
}

// classifyClasses counts unique prefixed classes and lists the namespaces of classes
// that belong to neither the token prefix, the chrome nor an allowed namespace.
func classifyClasses(classes []string, opts Options) (unique int, foreign []string) {
	seenForeign := make(map[string]bool)
	for _, cls := range classes {
		switch {
		case opts.Prefix != "" && strings.HasPrefix(cls, opts.Prefix+"-"):
			unique++
		case strings.HasPrefix(cls, sections.ChromePrefix):
		case hasAnyPrefix(cls, opts.AllowedClassPrefixes):
		default:
			ns := cls
			if i := strings.Index(cls, "-"); i > 0 {
				ns = cls[:i+1]
			}
			if !seenForeign[ns] && len(foreign) < maxReportedForeignSets {
				seenForeign[ns] = true
				foreign = append(foreign, ns)
			}
		}
	}
	return unique, foreign
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func headingLevels(doc string) int {
	levels := make(map[string]bool)
	for _, m := range headingRe.FindAllStringSubmatch(doc, -1) {
		levels[m[1]] = true
	}
	return len(levels)
}
