package tokens

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/brand"
	"github.com/jonathan/brand-styleguide/internal/colors"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// Radius classification bounds in px
const (
	sharpRadiusMax   = 3
	roundedRadiusMin = 12
	minSpacingBase   = 4
	coloredShadowSat = 30
)

// RadiusStyle names one of the three radius tables
type RadiusStyle string

const (
	RadiusSharp    RadiusStyle = "sharp"
	RadiusBalanced RadiusStyle = "balanced"
	RadiusRounded  RadiusStyle = "rounded"
)

// RadiusTables holds the fixed 6-step radius scale for each style
var RadiusTables = map[RadiusStyle]map[string]string{
	RadiusSharp:    {"none": "0", "sm": "2px", "md": "3px", "lg": "4px", "xl": "6px", "full": "9999px"},
	RadiusBalanced: {"none": "0", "sm": "4px", "md": "8px", "lg": "12px", "xl": "16px", "full": "9999px"},
	RadiusRounded:  {"none": "0", "sm": "8px", "md": "12px", "lg": "16px", "xl": "24px", "full": "9999px"},
}

// SpacingMultipliers scale the base unit into the 8 named spacing steps
var SpacingMultipliers = []float64{1, 2, 4, 6, 8, 12, 16, 24}

// DefaultTypeScale is the 10-level size table extracted sizes are merged over
var DefaultTypeScale = map[string]types.TypeSize{
	"display": {Size: "4rem", LineHeight: "1.1", Weight: 800, LetterSpacing: "-0.02em"},
	"h1":      {Size: "3rem", LineHeight: "1.15", Weight: 700, LetterSpacing: "-0.02em"},
	"h2":      {Size: "2.25rem", LineHeight: "1.2", Weight: 700, LetterSpacing: "-0.01em"},
	"h3":      {Size: "1.875rem", LineHeight: "1.25", Weight: 600, LetterSpacing: "-0.01em"},
	"h4":      {Size: "1.5rem", LineHeight: "1.3", Weight: 600, LetterSpacing: "0"},
	"h5":      {Size: "1.25rem", LineHeight: "1.4", Weight: 600, LetterSpacing: "0"},
	"h6":      {Size: "1.125rem", LineHeight: "1.4", Weight: 600, LetterSpacing: "0"},
	"body-lg": {Size: "1.125rem", LineHeight: "1.7", Weight: 400, LetterSpacing: "0"},
	"body":    {Size: "1rem", LineHeight: "1.6", Weight: 400, LetterSpacing: "0"},
	"small":   {Size: "0.875rem", LineHeight: "1.5", Weight: 400, LetterSpacing: "0.01em"},
}

var fixedShadows = map[string]string{
	"none":  "none",
	"sm":    "0 1px 2px rgba(0, 0, 0, 0.06), 0 1px 3px rgba(0, 0, 0, 0.10)",
	"md":    "0 4px 6px -1px rgba(0, 0, 0, 0.10), 0 2px 4px -2px rgba(0, 0, 0, 0.06)",
	"lg":    "0 10px 15px -3px rgba(0, 0, 0, 0.10), 0 4px 6px -4px rgba(0, 0, 0, 0.05)",
	"xl":    "0 20px 25px -5px rgba(0, 0, 0, 0.10), 0 8px 10px -6px rgba(0, 0, 0, 0.04)",
	"error": "0 0 0 3px rgba(239, 68, 68, 0.25)",
}

var (
	transitions = map[string]string{"fast": "150ms ease", "base": "250ms ease", "slow": "400ms ease"}
	containers  = map[string]string{"sm": "640px", "md": "768px", "lg": "1024px", "xl": "1280px", "2xl": "1536px"}
	zIndex      = map[string]int{"base": 0, "dropdown": 100, "sticky": 200, "overlay": 300, "modal": 400, "toast": 500}
)

var fallbackStacks = map[string]string{
	"sans-serif": "system-ui, -apple-system, 'Segoe UI', sans-serif",
	"serif":      "Georgia, 'Times New Roman', serif",
	"monospace":  "ui-monospace, SFMono-Regular, Menlo, monospace",
}

// Build is a deterministic transform of a brand analysis into a token set
func Build(analysis *types.BrandAnalysis) *types.DesignTokenSet {
	if analysis == nil {
		analysis = &types.BrandAnalysis{}
	}
	primary := analysis.Colors.Primary
	if _, ok := colors.NormalizeHex(primary); !ok {
		primary = colors.DefaultPrimary
	}

	ts := &types.DesignTokenSet{
		Prefix: GeneratePrefix(analysis.BrandName),
		Colors: types.TokenColors{
			Primary:  colors.GenerateColorScale(primary),
			Gray:     colors.GenerateGrayScale(primary),
			Semantic: colors.GenerateSemanticColors(primary),
		},
		Typography:  buildTypography(analysis.Typography),
		Spacing:     BuildSpacing(analysis.Spacing.SectionPadding),
		Radius:      copyStrings(RadiusTables[ClassifyRadius(analysis.Shapes.ButtonRadius)]),
		Shadows:     buildShadows(primary),
		Transitions: copyStrings(transitions),
		Containers:  copyStrings(containers),
		ZIndex:      make(map[string]int, len(zIndex)),
	}
	if _, ok := colors.NormalizeHex(analysis.Colors.Secondary); ok {
		ts.Colors.Secondary = colors.GenerateColorScale(analysis.Colors.Secondary)
	}
	if _, ok := colors.NormalizeHex(analysis.Colors.Accent); ok {
		ts.Colors.Accent = colors.GenerateColorScale(analysis.Colors.Accent)
	}
	for k, v := range zIndex {
		ts.ZIndex[k] = v
	}
	return ts
}

// ClassifyRadius maps a button radius onto one of the three radius tables
func ClassifyRadius(buttonRadius string) RadiusStyle {
	px, ok := brand.ParsePixels(buttonRadius)
	if !ok {
		return RadiusBalanced
	}
	switch {
	case px <= sharpRadiusMax:
		return RadiusSharp
	case px >= roundedRadiusMin:
		return RadiusRounded
	default:
		return RadiusBalanced
	}
}

// BuildSpacing scales a base unit of sectionPadding/16 (at least 4px)
// across the 8 named spacing steps.
func BuildSpacing(sectionPadding string) map[string]string {
	base := minSpacingBase * 1.0
	if px, ok := brand.ParsePixels(sectionPadding); ok {
		base = math.Max(px/16, minSpacingBase)
	}
	out := make(map[string]string, len(types.SpacingSteps))
	for i, step := range types.SpacingSteps {
		out[step] = strconv.Itoa(int(math.Round(base*SpacingMultipliers[i]))) + "px"
	}
	return out
}

func buildShadows(primary string) map[string]string {
	hsl := colors.HexToHSL(primary)
	sat := math.Min(hsl.S, coloredShadowSat)
	h := math.Round(hsl.H)

	out := copyStrings(fixedShadows)
	out["colored"] = fmt.Sprintf("0 4px 14px hsla(%.0f, %.0f%%, 40%%, 0.25)", h, sat)
	out["colored-lg"] = fmt.Sprintf("0 12px 32px hsla(%.0f, %.0f%%, 35%%, 0.30)", h, sat)
	return out
}

func buildTypography(bt types.BrandTypography) types.TokenTypography {
	heading := bt.Heading
	if heading.Family == "" {
		heading = types.FontSpec{Family: brand.DefaultFontFamily, Fallback: "sans-serif", Weights: []int{400, 700}}
	}
	body := bt.Body
	if body.Family == "" {
		body = heading
	}

	tt := types.TokenTypography{
		HeadingFont: FontStack(heading),
		BodyFont:    FontStack(body),
		GoogleFonts: GoogleFontsURL(heading, body),
		Sizes:       make(map[string]types.TypeSize, len(DefaultTypeScale)),
	}
	for level, def := range DefaultTypeScale {
		size := def
		if v := bt.Sizes[level]; v != "" {
			size.Size = v
		}
		if v := bt.LetterSpacing[level]; v != "" {
			size.LetterSpacing = v
		}
		tt.Sizes[level] = size
	}
	return tt
}

// FontStack renders a font-family value with a generic fallback stack
func FontStack(f types.FontSpec) string {
	stack, ok := fallbackStacks[f.Fallback]
	if !ok {
		stack = fallbackStacks["sans-serif"]
	}
	return fmt.Sprintf("'%s', %s", f.Family, stack)
}

// GoogleFontsURL builds a css2 stylesheet URL covering every distinct family
func GoogleFontsURL(fonts ...types.FontSpec) string {
	seen := make(map[string]bool)
	params := make([]string, 0, len(fonts))
	for _, f := range fonts {
		if f.Family == "" || seen[strings.ToLower(f.Family)] {
			continue
		}
		seen[strings.ToLower(f.Family)] = true

		weights := append([]int(nil), f.Weights...)
		if len(weights) == 0 {
			weights = []int{400, 700}
		}
		sort.Ints(weights)
		ws := make([]string, 0, len(weights))
		for _, w := range weights {
			ws = append(ws, strconv.Itoa(w))
		}
		family := strings.ReplaceAll(url.QueryEscape(f.Family), "%20", "+")
		params = append(params, "family="+family+":wght@"+strings.Join(ws, ";"))
	}
	if len(params) == 0 {
		return ""
	}
	return "https://fonts.googleapis.com/css2?" + strings.Join(params, "&") + "&display=swap"
}

func copyStrings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
