package extraction

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/brand-styleguide/internal/types"
)

var (
	fontFaceRe      = regexp.MustCompile(`(?is)@font-face\s*\{([^}]*)\}`)
	fontFamilyRe    = regexp.MustCompile(`(?i)font-family\s*:\s*([^;}]+)`)
	fontWeightRe    = regexp.MustCompile(`(?i)font-weight\s*:\s*([a-z0-9 ]+)`)
	webFontURLRe    = regexp.MustCompile(`(?i)(?:https?:)?//(?:fonts\.googleapis\.com|fonts\.bunny\.net|api\.fontshare\.com)/[^\s"'()<>]+`)
	wordBoundaryRe  = regexp.MustCompile(`[-_\s]+`)
	weightNumericRe = regexp.MustCompile(`\d{3}`)
)

type fontTally struct {
	family  string
	weights map[int]bool
	origin  string
	count   int
	order   int
}

type fontAccumulator struct {
	byKey map[string]*fontTally
	next  int
}

func newFontAccumulator() *fontAccumulator {
	return &fontAccumulator{byKey: make(map[string]*fontTally)}
}

func (a *fontAccumulator) add(family string, weight int, origin string, score int) {
	if family == "" || isGenericFont(family) {
		return
	}
	key := strings.ToLower(family)
	t, ok := a.byKey[key]
	if !ok {
		t = &fontTally{family: family, weights: make(map[int]bool), origin: origin, order: a.next}
		a.byKey[key] = t
		a.next++
	}
	if weight > 0 {
		t.weights[weight] = true
	}
	t.count += score
}

func (a *fontAccumulator) ranked() []types.FontSignal {
	tallies := make([]*fontTally, 0, len(a.byKey))
	for _, t := range a.byKey {
		tallies = append(tallies, t)
	}
	sort.SliceStable(tallies, func(i, j int) bool {
		if tallies[i].count != tallies[j].count {
			return tallies[i].count > tallies[j].count
		}
		return tallies[i].order < tallies[j].order
	})
	out := make([]types.FontSignal, 0, len(tallies))
	for _, t := range tallies {
		weights := make([]int, 0, len(t.weights))
		for w := range t.weights {
			weights = append(weights, w)
		}
		sort.Ints(weights)
		if len(weights) == 0 {
			weights = []int{400}
		}
		out = append(out, types.FontSignal{Family: t.family, Weights: weights, Origin: t.origin})
	}
	return out
}

// ExtractFonts returns font families found in self-hosted @font-face blocks,
// font-family declarations and web-font service URLs. Variants of one family
// are merged before ranking.
func ExtractFonts(text string) []types.FontSignal {
	acc := newFontAccumulator()

	// Self-hosted font faces are the strongest signal: someone shipped the files.
	for _, m := range fontFaceRe.FindAllStringSubmatch(text, -1) {
		block := m[1]
		fm := fontFamilyRe.FindStringSubmatch(block)
		if fm == nil {
			continue
		}
		rawName := firstFamily(fm[1])
		family, suffixWeight := NormalizeFontFamily(rawName)
		weight := suffixWeight
		if weight == 0 {
			if wm := fontWeightRe.FindStringSubmatch(block); wm != nil {
				weight = parseWeight(wm[1])
			}
		}
		if weight == 0 {
			weight = 400
		}
		acc.add(family, weight, types.FontOriginFontFace, 3)
	}

	for _, fam := range ExtractWebFontFamilies(text) {
		for _, w := range fam.Weights {
			acc.add(fam.Family, w, types.FontOriginWebFontURL, 2)
		}
	}

	// Declarations outside @font-face, with any weight declared in the same rule.
	withoutFaces := fontFaceRe.ReplaceAllString(text, "")
	for _, m := range ruleBlockRe.FindAllStringSubmatch(withoutFaces, -1) {
		body := m[2]
		fm := fontFamilyRe.FindStringSubmatch(body)
		if fm == nil {
			continue
		}
		rawName := firstFamily(fm[1])
		if rawName == "" {
			continue
		}
		family, suffixWeight := NormalizeFontFamily(rawName)
		weight := suffixWeight
		if wm := fontWeightRe.FindStringSubmatch(body); wm != nil {
			if w := parseWeight(wm[1]); w > 0 {
				weight = w
			}
		}
		acc.add(family, weight, types.FontOriginDeclared, 1)
	}

	return acc.ranked()
}

// ExtractWebFontURLs returns distinct web-font service stylesheet URLs in order
func ExtractWebFontURLs(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, raw := range webFontURLRe.FindAllString(text, -1) {
		u := strings.ReplaceAll(raw, "&amp;", "&")
		if strings.HasPrefix(u, "//") {
			u = "https:" + u
		}
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}

// ExtractWebFontFamilies parses family names and weights from web-font URLs.
// Both css ("Open+Sans:400,700|Lato") and css2 ("Open+Sans:wght@400;700") forms are understood.
func ExtractWebFontFamilies(text string) []types.FontSignal {
	var out []types.FontSignal
	for _, raw := range ExtractWebFontURLs(text) {
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		for _, param := range familyParams(u.RawQuery) {
			for _, spec := range strings.Split(param, "|") {
				if fs, ok := parseFamilySpec(spec); ok {
					out = append(out, fs)
				}
			}
		}
	}
	return out
}

// familyParams reads "family" values by hand: css2 URLs use ';' inside values,
// which url.ParseQuery rejects.
func familyParams(rawQuery string) []string {
	var out []string
	for _, pair := range strings.Split(rawQuery, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key != "family" {
			continue
		}
		if unescaped, err := url.QueryUnescape(value); err == nil {
			value = unescaped
		}
		out = append(out, value)
	}
	return out
}

func parseFamilySpec(spec string) (types.FontSignal, bool) {
	name, axes, _ := strings.Cut(spec, ":")
	name = strings.TrimSpace(strings.ReplaceAll(name, "+", " "))
	if name == "" {
		return types.FontSignal{}, false
	}
	fs := types.FontSignal{Family: name, Origin: types.FontOriginWebFontURL}
	seen := make(map[int]bool)
	if _, values, ok := strings.Cut(axes, "@"); ok {
		// css2: tuples separated by ';', the weight is the last element of each tuple
		for _, tuple := range strings.Split(values, ";") {
			parts := strings.Split(tuple, ",")
			if w := parseWeight(parts[len(parts)-1]); w > 0 && !seen[w] {
				seen[w] = true
				fs.Weights = append(fs.Weights, w)
			}
		}
	} else if axes != "" {
		for _, v := range strings.Split(axes, ",") {
			if w := parseWeight(v); w > 0 && !seen[w] {
				seen[w] = true
				fs.Weights = append(fs.Weights, w)
			}
		}
	}
	if len(fs.Weights) == 0 {
		fs.Weights = []int{400}
	}
	sort.Ints(fs.Weights)
	return fs, true
}

// NormalizeFontFamily strips weight and style suffixes from a font family
// name, splits camelCase/hyphen/underscore words and title-cases them.
// The weight implied by a stripped suffix is returned, or 0.
//
//	outfit-bold        -> "Outfit", 700
//	OpenSans-Regular   -> "Open Sans", 400
//	Montserrat-SemiBold -> "Montserrat", 600
func NormalizeFontFamily(name string) (string, int) {
	name = strings.Trim(strings.TrimSpace(name), `"'`)
	if name == "" {
		return "", 0
	}

	words := splitWords(name)
	weight := 0
	// Strip trailing suffix words, possibly several ("Bold", "Italic").
	for len(words) > 1 {
		last := strings.ToLower(words[len(words)-1])
		if w, ok := weightSuffix(last); ok {
			if weight == 0 {
				weight = w
			}
			words = words[:len(words)-1]
			continue
		}
		if isStyleSuffix(last) {
			words = words[:len(words)-1]
			continue
		}
		// Combined suffixes like "BoldItalic" split into "Bold" "Italic" already;
		// "semibolditalic" in lowercase names needs prefix matching.
		if w, ok := compoundSuffix(last); ok {
			if weight == 0 {
				weight = w
			}
			words = words[:len(words)-1]
			continue
		}
		break
	}

	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " "), weight
}

// splitWords splits on hyphens, underscores, spaces and lower-to-upper camelCase transitions
func splitWords(name string) []string {
	var words []string
	for _, chunk := range wordBoundaryRe.Split(name, -1) {
		if chunk == "" {
			continue
		}
		runes := []rune(chunk)
		start := 0
		for i := 1; i < len(runes); i++ {
			if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
				words = append(words, string(runes[start:i]))
				start = i
			}
		}
		words = append(words, string(runes[start:]))
	}
	// Re-join split weight words such as "Semi" "Bold" or "Extra" "Light".
	merged := make([]string, 0, len(words))
	for i := 0; i < len(words); i++ {
		if i+1 < len(words) {
			pair := strings.ToLower(words[i] + words[i+1])
			if _, ok := weightSuffix(pair); ok && isWeightPrefix(words[i]) {
				merged = append(merged, words[i]+words[i+1])
				i++
				continue
			}
		}
		merged = append(merged, words[i])
	}
	return merged
}

func isWeightPrefix(word string) bool {
	switch strings.ToLower(word) {
	case "semi", "demi", "extra", "ultra":
		return true
	}
	return false
}

func weightSuffix(word string) (int, bool) {
	for _, s := range FontWeightSuffixes {
		if word == s.Suffix {
			return s.Weight, true
		}
	}
	if weightNumericRe.MatchString(word) && len(word) == 3 {
		if w, err := strconv.Atoi(word); err == nil && w >= 100 && w <= 900 && w%100 == 0 {
			return w, true
		}
	}
	return 0, false
}

func isStyleSuffix(word string) bool {
	for _, s := range FontStyleSuffixes {
		if word == s {
			return true
		}
	}
	return false
}

// compoundSuffix handles lowercase fused suffixes such as "bolditalic"
func compoundSuffix(word string) (int, bool) {
	for _, s := range FontWeightSuffixes {
		if strings.HasPrefix(word, s.Suffix) && isStyleSuffix(strings.TrimPrefix(word, s.Suffix)) {
			return s.Weight, true
		}
	}
	return 0, false
}

func titleWord(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	// Only the first letter is raised so acronyms like "IBM" survive.
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// firstFamily returns the first non-generic family in a font-family value list
func firstFamily(value string) string {
	value = strings.TrimSuffix(strings.TrimSpace(value), "!important")
	for _, part := range strings.Split(value, ",") {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		if name == "" || strings.HasPrefix(strings.ToLower(name), "var(") {
			continue
		}
		if isGenericFont(name) {
			continue
		}
		return name
	}
	return ""
}

func isGenericFont(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, g := range GenericFontFamilies {
		if lower == g {
			return true
		}
	}
	return false
}

func parseWeight(v string) int {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "normal", "regular":
		return 400
	case "bold":
		return 700
	}
	if m := weightNumericRe.FindString(v); m != "" {
		if w, err := strconv.Atoi(m); err == nil && w >= 100 && w <= 900 {
			return w
		}
	}
	return 0
}
