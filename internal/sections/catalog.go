// Package sections holds the fixed styleguide section catalog, the generator
// registry, and the deterministic template generators.
package sections

import "github.com/jonathan/brand-styleguide/internal/types"

// Strategy says how a catalog section is produced
type Strategy string

const (
	// StrategyTemplate sections are rendered by a registered pure generator
	StrategyTemplate Strategy = "template"
	// StrategyAIContent sections hold marketing copy blocks
	StrategyAIContent Strategy = "ai-content"
	// StrategyAIPatterns sections hold interactive component patterns
	StrategyAIPatterns Strategy = "ai-patterns"
	// StrategyAIBrand sections hold brand voice and usage guidance
	StrategyAIBrand Strategy = "ai-brand"
)

// AIStrategies lists the external generation batches in request order
var AIStrategies = []Strategy{StrategyAIContent, StrategyAIPatterns, StrategyAIBrand}

// Entry is one numbered catalog section
type Entry struct {
	ID       int
	Anchor   string
	Title    string
	Category types.SectionCategory
	Strategy Strategy
}

var catalog = []Entry{
	{1, "brand-overview", "Brand Overview", types.CategoryFoundation, StrategyTemplate},
	{2, "color-palette", "Color Palette", types.CategoryFoundation, StrategyTemplate},
	{3, "color-scales", "Color Scales", types.CategoryFoundation, StrategyTemplate},
	{4, "semantic-colors", "Semantic Colors", types.CategoryFoundation, StrategyTemplate},
	{5, "neutral-grays", "Neutral Grays", types.CategoryFoundation, StrategyTemplate},
	{6, "typography", "Typography", types.CategoryFoundation, StrategyTemplate},
	{7, "type-scale", "Type Scale", types.CategoryFoundation, StrategyTemplate},
	{8, "spacing", "Spacing Scale", types.CategoryFoundation, StrategyTemplate},
	{9, "border-radius", "Border Radius", types.CategoryFoundation, StrategyTemplate},
	{10, "shadows", "Shadows & Elevation", types.CategoryFoundation, StrategyTemplate},
	{11, "color-contrast", "Color Contrast", types.CategoryFoundation, StrategyTemplate},
	{12, "brand-voice", "Brand Voice", types.CategoryFoundation, StrategyAIBrand},

	{13, "buttons", "Buttons", types.CategoryExtension, StrategyTemplate},
	{14, "button-states", "Button States", types.CategoryExtension, StrategyTemplate},
	{15, "links", "Links", types.CategoryExtension, StrategyTemplate},
	{16, "form-inputs", "Form Inputs", types.CategoryExtension, StrategyTemplate},
	{17, "form-validation", "Form Validation", types.CategoryExtension, StrategyTemplate},
	{18, "cards", "Cards", types.CategoryExtension, StrategyTemplate},
	{19, "badges", "Badges & Tags", types.CategoryExtension, StrategyTemplate},
	{20, "alerts", "Alerts", types.CategoryExtension, StrategyTemplate},
	{21, "tables", "Tables", types.CategoryExtension, StrategyTemplate},
	{22, "lists", "Lists", types.CategoryExtension, StrategyTemplate},
	{23, "tabs", "Tabs", types.CategoryExtension, StrategyAIPatterns},
	{24, "accordion", "Accordion", types.CategoryExtension, StrategyAIPatterns},
	{25, "modal", "Modal Dialog", types.CategoryExtension, StrategyAIPatterns},
	{26, "tooltips", "Tooltips", types.CategoryExtension, StrategyAIPatterns},
	{27, "progress", "Progress Indicators", types.CategoryExtension, StrategyTemplate},
	{28, "avatars", "Avatars", types.CategoryExtension, StrategyTemplate},
	{29, "iconography", "Iconography", types.CategoryExtension, StrategyTemplate},
	{30, "pagination", "Pagination", types.CategoryExtension, StrategyAIPatterns},

	{31, "navigation", "Navigation Bar", types.CategorySiteWide, StrategyTemplate},
	{32, "hero", "Hero Section", types.CategorySiteWide, StrategyTemplate},
	{33, "feature-grid", "Feature Grid", types.CategorySiteWide, StrategyTemplate},
	{34, "testimonials", "Testimonials", types.CategorySiteWide, StrategyAIContent},
	{35, "pricing", "Pricing Table", types.CategorySiteWide, StrategyAIContent},
	{36, "call-to-action", "Call to Action", types.CategorySiteWide, StrategyTemplate},
	{37, "site-footer", "Site Footer", types.CategorySiteWide, StrategyTemplate},
	{38, "contact", "Contact Block", types.CategorySiteWide, StrategyAIContent},
	{39, "faq", "FAQ", types.CategorySiteWide, StrategyAIContent},
	{40, "article-cards", "Article Cards", types.CategorySiteWide, StrategyAIContent},

	{41, "css-variables", "CSS Variables", types.CategoryReference, StrategyTemplate},
	{42, "utility-classes", "Utility Classes", types.CategoryReference, StrategyTemplate},
	{43, "breakpoints", "Breakpoints & Containers", types.CategoryReference, StrategyTemplate},
	{44, "z-index", "Z-Index Scale", types.CategoryReference, StrategyTemplate},
	{45, "motion", "Motion & Transitions", types.CategoryReference, StrategyTemplate},
	{46, "accessibility", "Accessibility", types.CategoryReference, StrategyTemplate},
	{47, "dos-and-donts", "Do's and Don'ts", types.CategoryReference, StrategyAIBrand},
	{48, "imagery", "Imagery Guidelines", types.CategoryReference, StrategyAIBrand},
}

// Catalog returns a copy of the section catalog in id order
func Catalog() []Entry {
	return append([]Entry(nil), catalog...)
}

// EntryByID looks up a catalog entry
func EntryByID(id int) (Entry, bool) {
	if id < 1 || id > len(catalog) {
		return Entry{}, false
	}
	return catalog[id-1], true
}

// EntriesFor returns the catalog entries produced by one strategy
func EntriesFor(s Strategy) []Entry {
	var out []Entry
	for _, e := range catalog {
		if e.Strategy == s {
			out = append(out, e)
		}
	}
	return out
}
