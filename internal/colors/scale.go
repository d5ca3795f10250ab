package colors

import (
	"math"
	"regexp"

	"github.com/jonathan/brand-styleguide/internal/types"
)

// minScaleSaturation floors the desaturated light steps
const minScaleSaturation = 5.0

type lightStep struct {
	step      string
	satFactor float64
	lightness float64
}

type darkStep struct {
	step       string
	satFactor  float64
	lightScale float64
}

var lightSteps = []lightStep{
	{"50", 0.30, 97},
	{"100", 0.45, 93},
	{"200", 0.60, 85},
	{"300", 0.80, 72},
}

var sixDigitHexRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var darkSteps = []darkStep{
	{"500", 1.05, 0.85},
	{"600", 1.10, 0.72},
	{"700", 1.15, 0.55},
	{"800", 1.20, 0.38},
	{"900", 1.25, 0.22},
}

// GenerateColorScale builds a 10-step scale around seed. Step 400 is seed
// itself when it is a 6-digit hex, the normalized form otherwise; lightness
// never increases from 50 to 900.
func GenerateColorScale(seed string) types.ColorScale {
	norm, ok := NormalizeHex(seed)
	if !ok {
		norm = DefaultPrimary
	}
	step400 := norm
	if sixDigitHexRe.MatchString(seed) {
		step400 = seed
	}
	base := HexToHSL(norm)
	scale := make(types.ColorScale, len(types.ScaleSteps))

	for _, ls := range lightSteps {
		sat := math.Max(base.S*ls.satFactor, minScaleSaturation)
		if base.S < minScaleSaturation {
			sat = base.S
		}
		// A very light seed must not end up lighter than its own tints.
		l := math.Max(ls.lightness, base.L)
		scale[ls.step] = HSLToHex(HSL{H: base.H, S: sat, L: l})
	}

	scale["400"] = step400

	for _, ds := range darkSteps {
		sat := math.Min(base.S*ds.satFactor, 100)
		scale[ds.step] = HSLToHex(HSL{H: base.H, S: sat, L: base.L * ds.lightScale})
	}

	enforceMonotonic(scale)
	return scale
}

// enforceMonotonic removes inversions introduced by 8-bit rounding, working
// outward from the fixed 400 step.
func enforceMonotonic(scale types.ColorScale) {
	steps := types.ScaleSteps
	anchor := 4
	for i := anchor; i > 0; i-- {
		lighter, darker := steps[i-1], steps[i]
		if HexToHSL(scale[lighter]).L < HexToHSL(scale[darker]).L {
			scale[lighter] = scale[darker]
		}
	}
	for i := anchor; i < len(steps)-1; i++ {
		lighter, darker := steps[i], steps[i+1]
		if HexToHSL(scale[darker]).L > HexToHSL(scale[lighter]).L {
			scale[darker] = scale[lighter]
		}
	}
}

// Gray tint parameters
const (
	grayTintSaturation = 3.0
	maxGraySaturation  = 5.0
	warmTintHue        = 30.0
	coolTintHue        = 220.0
)

var grayLightness = []float64{98, 95, 89, 80, 65, 50, 38, 27, 17, 10}

// GrayTint classifies the seed hue into a warm, cool or neutral gray tint.
// The returned saturation is zero for neutral grays.
func GrayTint(seed string) (hue float64, saturation float64) {
	h := HexToHSL(seed).H
	switch {
	case h <= 60 || h >= 300:
		return warmTintHue, grayTintSaturation
	case h >= 180 && h <= 270:
		return coolTintHue, grayTintSaturation
	default:
		return 0, 0
	}
}

// GenerateGrayScale builds a 10-step gray scale carrying a faint warm or cool
// tint derived from seed. Every step reads at or below 5% saturation.
func GenerateGrayScale(seed string) types.ColorScale {
	hue, sat := GrayTint(seed)
	scale := make(types.ColorScale, len(types.ScaleSteps))
	for i, step := range types.ScaleSteps {
		hex := HSLToHex(HSL{H: hue, S: sat, L: grayLightness[i]})
		// Rounding near the extremes of lightness inflates measured saturation.
		if HexToHSL(hex).S > maxGraySaturation {
			hex = HSLToHex(HSL{H: 0, S: 0, L: grayLightness[i]})
		}
		scale[step] = hex
	}
	return scale
}
