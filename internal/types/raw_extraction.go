package types

// ColorSignal is one ranked color found in the scanned text
type ColorSignal struct {
	Hex      string `json:"hex"`
	Property string `json:"property"`
	Count    int    `json:"count"`
}

// FontSignal is one font family with the weights declared for it
type FontSignal struct {
	Family  string `json:"family"`
	Weights []int  `json:"weights"`
	Origin  string `json:"origin"` // font-face, font-family, web-font-url
}

// Font origins
const (
	FontOriginFontFace   = "font-face"
	FontOriginDeclared   = "font-family"
	FontOriginWebFontURL = "web-font-url"
)

// SizeSignal binds a font-size value to the element it was declared on
type SizeSignal struct {
	Element string `json:"element"`
	Size    string `json:"size"`
}

// RawExtraction is the result of scanning one domain's text.
// It is produced once by the extractor and only read afterwards.
type RawExtraction struct {
	Domain         string        `json:"domain"`
	Title          string        `json:"title,omitempty"`
	Description    string        `json:"description,omitempty"`
	Colors         []ColorSignal `json:"colors"`
	Fonts          []FontSignal  `json:"fonts"`
	Sizes          []SizeSignal  `json:"sizes"`
	Spacing        []string      `json:"spacing"`
	Radii          []string      `json:"radii"`
	Shadows        []string      `json:"shadows"`
	WebFontURLs    []string      `json:"web_font_urls"`
	PagesAnalyzed  []string      `json:"pages_analyzed"`
	RawTextLength  int           `json:"raw_text_length"`
	LetterSpacings []SizeSignal  `json:"letter_spacings,omitempty"`
}

// SignalCount returns the number of distinct signals in the extraction
func (r *RawExtraction) SignalCount() int {
	if r == nil {
		return 0
	}
	return len(r.Colors) + len(r.Fonts) + len(r.Sizes) + len(r.Spacing) + len(r.Radii) + len(r.Shadows) + len(r.WebFontURLs)
}
