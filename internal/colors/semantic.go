package colors

import "github.com/jonathan/brand-styleguide/internal/types"

// DefaultPrimary is used whenever no usable brand color was extracted
const DefaultPrimary = "#3B82F6"

// Semantic role colors and their collision-avoiding alternates
const (
	SuccessGreen = "#22C55E"
	SuccessTeal  = "#14B8A6"
	ErrorRed     = "#EF4444"
	ErrorRose    = "#E11D48"
	WarningAmber = "#F59E0B"
	InfoBlue     = "#3B82F6"
	InfoIndigo   = "#6366F1"
	// FixedWhatsApp is the one externally fixed brand color used by contact widgets
	FixedWhatsApp = "#25D366"
)

// hueBand is an inclusive hue interval
type hueBand struct {
	from, to float64
}

func (b hueBand) contains(h float64) bool {
	return h >= b.from && h <= b.to
}

var (
	greenBand = []hueBand{{80, 160}}
	redBand   = []hueBand{{0, 20}, {340, 360}}
	blueBand  = []hueBand{{200, 260}}
)

func inBands(h float64, bands []hueBand) bool {
	for _, b := range bands {
		if b.contains(h) {
			return true
		}
	}
	return false
}

// GenerateSemanticColors returns success/error/warning/info colors that stay
// distinguishable from the seed hue.
func GenerateSemanticColors(seed string) types.SemanticColors {
	c := HexToHSL(seed)
	sc := types.SemanticColors{
		Success: SuccessGreen,
		Error:   ErrorRed,
		Warning: WarningAmber,
		Info:    InfoBlue,
		Fixed:   FixedWhatsApp,
	}
	// Achromatic seeds have no meaningful hue to collide with.
	if c.S < minScaleSaturation {
		return sc
	}
	if inBands(c.H, greenBand) {
		sc.Success = SuccessTeal
	}
	if inBands(c.H, redBand) {
		sc.Error = ErrorRose
	}
	if inBands(c.H, blueBand) {
		sc.Info = InfoIndigo
	}
	return sc
}
