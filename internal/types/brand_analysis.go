// Package types provides type definitions for structured data used throughout the brand-styleguide system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FontSpec describes one font role
type FontSpec struct {
	Family   string `json:"family"`
	Fallback string `json:"fallback"`
	Weights  []int  `json:"weights"`
}

// BrandColors holds the picked brand colors plus the full ranked extraction list
type BrandColors struct {
	Primary   string        `json:"primary"`
	Secondary string        `json:"secondary,omitempty"`
	Accent    string        `json:"accent,omitempty"`
	Ranked    []ColorSignal `json:"ranked"`
}

// BrandTypography holds the heading/body fonts and the 8-level size map
type BrandTypography struct {
	Heading       FontSpec          `json:"heading"`
	Body          FontSpec          `json:"body"`
	Sizes         map[string]string `json:"sizes"`
	LineHeights   map[string]string `json:"line_heights"`
	LetterSpacing map[string]string `json:"letter_spacing"`
}

// BrandSpacing holds the spacing anchors computed from extracted magnitudes
type BrandSpacing struct {
	SectionPadding string   `json:"section_padding"`
	CardPadding    string   `json:"card_padding"`
	ContainerWidth string   `json:"container_width"`
	Gaps           []string `json:"gaps"`
}

// BrandShapes holds radius anchors and the three shadow strings
type BrandShapes struct {
	ButtonRadius string `json:"button_radius"`
	CardRadius   string `json:"card_radius"`
	ImageRadius  string `json:"image_radius"`
	InputRadius  string `json:"input_radius"`
	ShadowSmall  string `json:"shadow_small"`
	ShadowMedium string `json:"shadow_medium"`
	ShadowLarge  string `json:"shadow_large"`
}

// Personality is the brand voice record. It is defaulted by the analyzer and
// may be replaced by an external enrichment step through PersonalityOverride.
type Personality struct {
	Formality int    `json:"formality"`
	Energy    int    `json:"energy"`
	Warmth    int    `json:"warmth"`
	Tone      string `json:"tone"`
}

// Extraction methods
const (
	ExtractionMethodRegex   = "regex"
	ExtractionMethodBrowser = "browser"
)

// BrandAnalysis is the canonical, normalized description of a brand.
// Colors.Primary is always set and Confidence stays within [0,1].
type BrandAnalysis struct {
	BrandName        string          `json:"brand_name"`
	Domain           string          `json:"domain"`
	Tagline          string          `json:"tagline,omitempty"`
	Industry         string          `json:"industry,omitempty"`
	Colors           BrandColors     `json:"colors"`
	Typography       BrandTypography `json:"typography"`
	Spacing          BrandSpacing    `json:"spacing"`
	Shapes           BrandShapes     `json:"shapes"`
	Personality      Personality     `json:"personality"`
	ExtractionMethod string          `json:"extraction_method"`
	Confidence       float64         `json:"confidence"`
	PagesAnalyzed    []string        `json:"pages_analyzed"`
}
