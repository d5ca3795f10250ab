// Package extraction scans sanitized page text for brand signals: colors,
// fonts, type sizes, spacing, radii and shadows.
package extraction

// Weights are additive color scores per context. Their relative order
// (Variable > Button > Background > Plain) is what the ranking relies on.
type Weights struct {
	Plain      int
	Background int
	Button     int
	Variable   int
}

// DefaultWeights returns the standard context weights
func DefaultWeights() Weights {
	return Weights{
		Plain:      1,
		Background: 3,
		Button:     5,
		Variable:   10,
	}
}

// ButtonSelectorPatterns mark rule blocks styling calls to action
var ButtonSelectorPatterns = []string{
	".btn",
	".button",
	".cta",
	"button",
	".offerte",
	".submit",
	".action",
	"input[type=submit]",
	`input[type="submit"]`,
	"input[type='submit']",
	".wp-block-button",
}

// BrandVariableTokens mark CSS custom properties that carry brand colors
var BrandVariableTokens = []string{
	"color",
	"primary",
	"secondary",
	"accent",
	"brand",
	"bg",
	"text",
	"heading",
	"link",
	"btn",
}

// GenericFontFamilies are font-family keywords that never name a brand font
var GenericFontFamilies = []string{
	"serif",
	"sans-serif",
	"monospace",
	"cursive",
	"fantasy",
	"system-ui",
	"inherit",
	"initial",
	"unset",
	"revert",
	"ui-sans-serif",
	"ui-serif",
	"ui-monospace",
	"-apple-system",
	"blinkmacsystemfont",
	"segoe ui",
	"helvetica neue",
	"arial",
	"helvetica",
	"emoji",
	"apple color emoji",
	"segoe ui emoji",
	"segoe ui symbol",
	"noto color emoji",
}

// FontWeightSuffixes map font file/family suffixes to numeric weights.
// Longer suffixes are listed first so "semibold" wins over "bold".
var FontWeightSuffixes = []struct {
	Suffix string
	Weight int
}{
	{"extralight", 200},
	{"ultralight", 200},
	{"extrabold", 800},
	{"ultrabold", 800},
	{"semibold", 600},
	{"demibold", 600},
	{"regular", 400},
	{"medium", 500},
	{"normal", 400},
	{"light", 300},
	{"black", 900},
	{"heavy", 900},
	{"thin", 100},
	{"bold", 700},
	{"book", 400},
}

// FontStyleSuffixes are stripped from family names without implying a weight
var FontStyleSuffixes = []string{
	"condensed",
	"expanded",
	"extended",
	"narrow",
	"italic",
	"oblique",
	"variable",
	"vf",
	"webfont",
}

// TypographySelectors bind font-size declarations to a canonical element
var TypographySelectors = []string{"h1", "h2", "h3", "h4", "h5", "h6", "p", "body", "small", "lead"}

// WebFontHosts are font services whose stylesheet URLs name families in the query
var WebFontHosts = []string{
	"fonts.googleapis.com",
	"fonts.bunny.net",
	"api.fontshare.com",
}
