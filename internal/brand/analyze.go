package brand

import (
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/colors"
	"github.com/jonathan/brand-styleguide/internal/types"
)

const (
	// MinTextLength is the shortest raw text the analyzer accepts without any signals
	MinTextLength = 200
	// SubstantialTextLength earns the raw-text confidence bonus
	SubstantialTextLength = 5000
	// LowConfidenceThreshold marks an analysis as advisory-only
	LowConfidenceThreshold = 0.5
	// baseConfidence is where every analysis starts
	baseConfidence = 0.3
)

// Default spacing, shape and typography values used when a signal is missing
const (
	DefaultSectionPadding = "80px"
	DefaultCardPadding    = "24px"
	DefaultContainerWidth = "1200px"
	DefaultRadius         = "8px"
	DefaultShadowSmall    = "0 1px 3px rgba(0, 0, 0, 0.08)"
	DefaultShadowMedium   = "0 4px 12px rgba(0, 0, 0, 0.10)"
	DefaultShadowLarge    = "0 12px 32px rgba(0, 0, 0, 0.14)"
	DefaultFontFamily     = "Inter"
)

// Input carries analysis context that is not part of the raw extraction
type Input struct {
	Domain      string
	Method      string
	Personality *types.PersonalityOverride
	Verbose     bool
}

var serifHints = []string{"serif", "playfair", "merriweather", "georgia", "garamond", "lora", "times", "baskerville", "caslon", "bodoni", "crimson", "libre"}

// sizeLevels maps extracted element tags onto the analysis size map
var sizeLevels = map[string]string{
	"h1": "h1", "h2": "h2", "h3": "h3", "h4": "h4", "h5": "h5", "h6": "h6",
	"p": "body", "body": "body", "small": "small",
}

// Analyze combines a raw extraction into a BrandAnalysis
func Analyze(raw *types.RawExtraction, in Input) (*types.BrandAnalysis, error) {
	domain := in.Domain
	if domain == "" && raw != nil {
		domain = raw.Domain
	}
	if raw == nil || (raw.RawTextLength < MinTextLength && raw.SignalCount() == 0) {
		length := 0
		if raw != nil {
			length = raw.RawTextLength
		}
		return nil, &InsufficientInputError{Domain: domain, Length: length}
	}

	method := in.Method
	if method == "" {
		method = types.ExtractionMethodRegex
	}

	analysis := &types.BrandAnalysis{
		BrandName:        DeriveBrandName(raw.Title, domain),
		Domain:           HostOf(domain),
		Tagline:          PlainText(raw.Description),
		Colors:           pickColors(raw.Colors),
		Typography:       analyzeTypography(raw),
		Spacing:          analyzeSpacing(raw.Spacing),
		Shapes:           analyzeShapes(raw.Radii, raw.Shadows),
		Personality:      DefaultPersonality(),
		ExtractionMethod: method,
		Confidence:       Confidence(raw),
		PagesAnalyzed:    append([]string(nil), raw.PagesAnalyzed...),
	}
	if analysis.BrandName == "" {
		analysis.BrandName = "Brand"
	}

	if in.Personality != nil {
		if err := ApplyPersonality(analysis, in.Personality); err != nil {
			log.Printf("[BRAND] ignoring invalid personality override: %v", err)
		}
	}

	if analysis.Confidence < LowConfidenceThreshold {
		log.Printf("[BRAND] low confidence %.2f for %s: sparse signals, defaults will fill the gaps", analysis.Confidence, analysis.Domain)
	} else if in.Verbose {
		log.Printf("[BRAND] %s analyzed with confidence %.2f", analysis.BrandName, analysis.Confidence)
	}

	return analysis, nil
}

// Confidence scores signal coverage: 0.3 plus fixed increments per signal category, capped at 1
func Confidence(raw *types.RawExtraction) float64 {
	if raw == nil {
		return 0
	}
	c := baseConfidence
	if len(raw.Colors) >= 3 {
		c += 0.15
	}
	if len(raw.Fonts) >= 1 {
		c += 0.15
	}
	if len(raw.Sizes) >= 3 {
		c += 0.10
	}
	if len(raw.WebFontURLs) >= 1 {
		c += 0.10
	}
	if len(raw.Radii) > 0 {
		c += 0.05
	}
	if len(raw.Shadows) > 0 {
		c += 0.05
	}
	if raw.RawTextLength >= SubstantialTextLength {
		c += 0.10
	}
	return math.Min(1.0, math.Round(c*100)/100)
}

// DefaultPersonality is the neutral personality used until an override arrives
func DefaultPersonality() types.Personality {
	return types.Personality{Formality: 3, Energy: 3, Warmth: 3, Tone: "professional"}
}

func pickColors(ranked []types.ColorSignal) types.BrandColors {
	bc := types.BrandColors{
		Primary: colors.DefaultPrimary,
		Ranked:  append([]types.ColorSignal(nil), ranked...),
	}
	if len(ranked) > 0 {
		bc.Primary = ranked[0].Hex
	}
	if len(ranked) > 1 {
		bc.Secondary = ranked[1].Hex
	}
	if len(ranked) > 2 {
		bc.Accent = ranked[2].Hex
	}
	return bc
}

func analyzeTypography(raw *types.RawExtraction) types.BrandTypography {
	t := types.BrandTypography{
		Sizes: make(map[string]string),
		LineHeights: map[string]string{
			"heading": "1.2",
			"body":    "1.6",
		},
		LetterSpacing: make(map[string]string),
	}

	heading, body := assignFonts(raw.Fonts)
	t.Heading = heading
	t.Body = body

	for _, s := range raw.Sizes {
		level, ok := sizeLevels[s.Element]
		if !ok {
			continue
		}
		if _, exists := t.Sizes[level]; !exists {
			t.Sizes[level] = s.Size
		}
	}
	for _, s := range raw.LetterSpacings {
		level, ok := sizeLevels[s.Element]
		if !ok {
			continue
		}
		if _, exists := t.LetterSpacing[level]; !exists {
			t.LetterSpacing[level] = s.Size
		}
	}
	return t
}

// assignFonts picks the heavier of the two top-ranked fonts as heading.
// Ties and single-font sites use one family for both roles.
func assignFonts(fonts []types.FontSignal) (heading, body types.FontSpec) {
	switch len(fonts) {
	case 0:
		def := fontSpec(types.FontSignal{Family: DefaultFontFamily, Weights: []int{400, 700}})
		return def, def
	case 1:
		spec := fontSpec(fonts[0])
		return spec, spec
	}

	a, b := fonts[0], fonts[1]
	wa, wb := maxWeight(a.Weights), maxWeight(b.Weights)
	switch {
	case wa > wb:
		return fontSpec(a), fontSpec(b)
	case wb > wa:
		return fontSpec(b), fontSpec(a)
	default:
		spec := fontSpec(a)
		return spec, spec
	}
}

func fontSpec(f types.FontSignal) types.FontSpec {
	return types.FontSpec{
		Family:   f.Family,
		Fallback: FallbackFor(f.Family),
		Weights:  append([]int(nil), f.Weights...),
	}
}

// FallbackFor guesses the generic family that best matches a font name
func FallbackFor(family string) string {
	lower := strings.ToLower(family)
	if strings.Contains(lower, "sans") {
		return "sans-serif"
	}
	if strings.Contains(lower, "mono") || strings.Contains(lower, "code") {
		return "monospace"
	}
	for _, hint := range serifHints {
		if strings.Contains(lower, hint) {
			return "serif"
		}
	}
	return "sans-serif"
}

func maxWeight(ws []int) int {
	m := 0
	for _, w := range ws {
		if w > m {
			m = w
		}
	}
	return m
}

func analyzeSpacing(values []string) types.BrandSpacing {
	px := toPixels(values)

	sp := types.BrandSpacing{
		SectionPadding: DefaultSectionPadding,
		CardPadding:    DefaultCardPadding,
		ContainerWidth: DefaultContainerWidth,
	}
	if m, ok := median(filter(px, func(v float64) bool { return v >= 40 })); ok {
		sp.SectionPadding = formatPx(m)
	}
	if m, ok := median(filter(px, func(v float64) bool { return v >= 16 && v <= 32 })); ok {
		sp.CardPadding = formatPx(m)
	}

	gaps := filter(px, func(v float64) bool { return v >= 4 && v <= 48 })
	sort.Float64s(gaps)
	seen := make(map[string]bool)
	for _, g := range gaps {
		s := formatPx(g)
		if seen[s] {
			continue
		}
		seen[s] = true
		sp.Gaps = append(sp.Gaps, s)
		if len(sp.Gaps) == 6 {
			break
		}
	}
	return sp
}

func analyzeShapes(radii, shadows []string) types.BrandShapes {
	sh := types.BrandShapes{
		ButtonRadius: DefaultRadius,
		CardRadius:   DefaultRadius,
		ImageRadius:  DefaultRadius,
		InputRadius:  DefaultRadius,
		ShadowSmall:  DefaultShadowSmall,
		ShadowMedium: DefaultShadowMedium,
		ShadowLarge:  DefaultShadowLarge,
	}

	// Percentages and pill values describe avatars and tags, not the shape language.
	var usable []string
	for _, r := range radii {
		if !strings.HasSuffix(r, "%") {
			usable = append(usable, r)
		}
	}
	px := filter(toPixels(usable), func(v float64) bool { return v > 0 && v < 50 })
	if m, ok := median(px); ok {
		sh.ButtonRadius = formatPx(m)
		sh.InputRadius = formatPx(m)
		sort.Float64s(px)
		upper := px[(len(px)*3)/4]
		sh.CardRadius = formatPx(math.Max(upper, m))
		sh.ImageRadius = sh.CardRadius
	}

	slots := []*string{&sh.ShadowSmall, &sh.ShadowMedium, &sh.ShadowLarge}
	for i, s := range shadows {
		if i >= len(slots) {
			break
		}
		*slots[i] = s
	}
	return sh
}

// toPixels converts px/rem/em magnitudes to pixels, assuming a 16px root
func toPixels(values []string) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if px, ok := ParsePixels(v); ok {
			out = append(out, px)
		}
	}
	return out
}

// ParsePixels converts a single px/rem/em magnitude to pixels
func ParsePixels(v string) (float64, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	mult := 1.0
	switch {
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "rem"):
		v = strings.TrimSuffix(v, "rem")
		mult = 16
	case strings.HasSuffix(v, "em"):
		v = strings.TrimSuffix(v, "em")
		mult = 16
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f * mult, true
}

func filter(vs []float64, keep func(float64) bool) []float64 {
	var out []float64
	for _, v := range vs {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func median(vs []float64) (float64, bool) {
	if len(vs) == 0 {
		return 0, false
	}
	sorted := append([]float64(nil), vs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}

func formatPx(v float64) string {
	return strconv.Itoa(int(math.Round(v))) + "px"
}
