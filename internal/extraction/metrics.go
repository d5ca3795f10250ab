package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/types"
)

var (
	fontSizeRe      = regexp.MustCompile(`(?i)font-size\s*:\s*([0-9.]+(?:px|rem|em))`)
	letterSpacingRe = regexp.MustCompile(`(?i)letter-spacing\s*:\s*(-?[0-9.]+(?:px|rem|em))`)
	spacingDeclRe   = regexp.MustCompile(`(?i)(?:^|[;{\s])(?:padding|margin|gap|row-gap|column-gap)(?:-(?:top|right|bottom|left|block|inline))?\s*:\s*([^;}]+)`)
	radiusDeclRe    = regexp.MustCompile(`(?i)border(?:-(?:top|bottom)-(?:left|right))?-radius\s*:\s*([^;}]+)`)
	shadowDeclRe    = regexp.MustCompile(`(?i)box-shadow\s*:\s*([^;}]+)`)
	magnitudeRe     = regexp.MustCompile(`(?i)([0-9]*\.?[0-9]+)(px|rem|em)\b`)
	percentRe       = regexp.MustCompile(`\b([0-9]+)%`)
	selectorTagRe   = regexp.MustCompile(`(?i)(?:^|[\s,>+~])\.?(` + strings.Join(TypographySelectors, "|") + `)\b`)
)

// orderedSet keeps distinct strings in first-seen order
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(v string) {
	v = strings.TrimSpace(v)
	if v == "" || s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}

// ExtractSizes returns (element, font-size) pairs for heading, paragraph and body selectors
func ExtractSizes(text string) []types.SizeSignal {
	return extractBoundValues(text, fontSizeRe)
}

// ExtractLetterSpacing returns (element, letter-spacing) pairs for typography selectors
func ExtractLetterSpacing(text string) []types.SizeSignal {
	return extractBoundValues(text, letterSpacingRe)
}

func extractBoundValues(text string, valueRe *regexp.Regexp) []types.SizeSignal {
	seen := make(map[string]bool)
	var out []types.SizeSignal
	for _, m := range ruleBlockRe.FindAllStringSubmatch(text, -1) {
		vm := valueRe.FindStringSubmatch(m[2])
		if vm == nil {
			continue
		}
		selector := cleanSelector(m[1])
		for _, tm := range selectorTagRe.FindAllStringSubmatch(selector, -1) {
			tag := strings.ToLower(tm[1])
			key := tag + "=" + vm[1]
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, types.SizeSignal{Element: tag, Size: vm[1]})
		}
	}
	return out
}

// ExtractSpacing returns distinct padding/margin/gap magnitudes
func ExtractSpacing(text string) []string {
	set := newOrderedSet()
	for _, m := range spacingDeclRe.FindAllStringSubmatch(text, -1) {
		for _, mm := range magnitudeRe.FindAllString(m[1], -1) {
			if isZeroMagnitude(mm) {
				continue
			}
			set.add(strings.ToLower(mm))
		}
	}
	return set.items
}

// ExtractRadii returns distinct border-radius magnitudes, including percentages
func ExtractRadii(text string) []string {
	set := newOrderedSet()
	for _, m := range radiusDeclRe.FindAllStringSubmatch(text, -1) {
		for _, mm := range magnitudeRe.FindAllString(m[1], -1) {
			if isZeroMagnitude(mm) {
				continue
			}
			set.add(strings.ToLower(mm))
		}
		for _, pm := range percentRe.FindAllString(m[1], -1) {
			set.add(pm)
		}
	}
	return set.items
}

// ExtractShadows returns distinct box-shadow values other than none and variable references
func ExtractShadows(text string) []string {
	set := newOrderedSet()
	for _, m := range shadowDeclRe.FindAllStringSubmatch(text, -1) {
		v := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[1]), "!important"))
		lower := strings.ToLower(v)
		if lower == "none" || lower == "inherit" || lower == "initial" || strings.HasPrefix(lower, "var(") {
			continue
		}
		set.add(v)
	}
	return set.items
}

func isZeroMagnitude(v string) bool {
	m := magnitudeRe.FindStringSubmatch(v)
	if m == nil {
		return true
	}
	return strings.Trim(m[1], "0.") == ""
}
