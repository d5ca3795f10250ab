package extraction

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/colors"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// Color contexts recorded on each signal, strongest last
const (
	PropertyText       = "text"
	PropertyBackground = "background"
	PropertyButton     = "button"
	PropertyVariable   = "variable"
)

var (
	hexColorRe   = regexp.MustCompile(`(^|[^&\w])#([0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{3,4})\b`)
	rgbColorRe   = regexp.MustCompile(`(?i)rgba?\(\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})`)
	backgroundRe = regexp.MustCompile(`(?i)background(?:-color)?\s*:\s*([^;}"]+)`)
	ruleBlockRe  = regexp.MustCompile(`([^{}]+)\{([^{}]*)\}`)
	customPropRe = regexp.MustCompile(`(?i)--([\w-]+)\s*:\s*([^;}]+)`)
)

type colorTally struct {
	hex      string
	count    int
	order    int
	property string
	rank     int
}

var propertyRank = map[string]int{
	PropertyText:       0,
	PropertyBackground: 1,
	PropertyButton:     2,
	PropertyVariable:   3,
}

type colorAccumulator struct {
	byHex map[string]*colorTally
	next  int
}

func newColorAccumulator() *colorAccumulator {
	return &colorAccumulator{byHex: make(map[string]*colorTally)}
}

func (a *colorAccumulator) add(hex string, weight int, property string) {
	t, ok := a.byHex[hex]
	if !ok {
		t = &colorTally{hex: hex, order: a.next, property: property, rank: propertyRank[property]}
		a.byHex[hex] = t
		a.next++
	}
	t.count += weight
	if r := propertyRank[property]; r > t.rank {
		t.rank = r
		t.property = property
	}
}

func (a *colorAccumulator) ranked() []types.ColorSignal {
	tallies := make([]*colorTally, 0, len(a.byHex))
	for _, t := range a.byHex {
		tallies = append(tallies, t)
	}
	sort.SliceStable(tallies, func(i, j int) bool {
		if tallies[i].count != tallies[j].count {
			return tallies[i].count > tallies[j].count
		}
		return tallies[i].order < tallies[j].order
	})
	out := make([]types.ColorSignal, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, types.ColorSignal{Hex: t.hex, Property: t.property, Count: t.count})
	}
	return out
}

// ExtractColors ranks brand color candidates with the default weights
func ExtractColors(text string) []types.ColorSignal {
	return ExtractColorsWithWeights(text, DefaultWeights())
}

// ExtractColorsWithWeights runs the four weighted passes over text and
// returns colors ranked by accumulated weight, ties in first-seen order.
// Near-black, near-white and near-gray colors are dropped.
func ExtractColorsWithWeights(text string, w Weights) []types.ColorSignal {
	acc := newColorAccumulator()
	addAll := func(fragment string, weight int, property string) {
		for _, hex := range FindColors(fragment) {
			if colors.IsNeutral(hex) {
				continue
			}
			acc.add(hex, weight, property)
		}
	}

	// Pass 1: every occurrence
	addAll(text, w.Plain, PropertyText)

	// Pass 2: background declarations
	for _, m := range backgroundRe.FindAllStringSubmatch(text, -1) {
		addAll(m[1], w.Background, PropertyBackground)
	}

	// Pass 3: rule blocks styling buttons and calls to action
	for _, m := range ruleBlockRe.FindAllStringSubmatch(text, -1) {
		if IsButtonSelector(m[1]) {
			addAll(m[2], w.Button, PropertyButton)
		}
	}

	// Pass 4: brand custom properties
	for _, m := range customPropRe.FindAllStringSubmatch(text, -1) {
		if IsBrandVariable(m[1]) {
			addAll(m[2], w.Variable, PropertyVariable)
		}
	}

	return acc.ranked()
}

// FindColors returns every hex and rgb()/rgba() color in fragment, normalized,
// in order of appearance.
func FindColors(fragment string) []string {
	type hit struct {
		pos int
		hex string
	}
	var hits []hit
	for _, idx := range hexColorRe.FindAllStringSubmatchIndex(fragment, -1) {
		if !inValueContext(fragment, idx[4]-1, idx[5]) {
			continue
		}
		raw := fragment[idx[4]:idx[5]]
		if hex, ok := colors.NormalizeHex(raw); ok {
			hits = append(hits, hit{pos: idx[4], hex: hex})
		}
	}
	for _, idx := range rgbColorRe.FindAllStringSubmatchIndex(fragment, -1) {
		r, _ := strconv.Atoi(fragment[idx[2]:idx[3]])
		g, _ := strconv.Atoi(fragment[idx[4]:idx[5]])
		b, _ := strconv.Atoi(fragment[idx[6]:idx[7]])
		if r > 255 || g > 255 || b > 255 {
			continue
		}
		hits = append(hits, hit{pos: idx[0], hex: colors.RGBToHex(r, g, b)})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.hex
	}
	return out
}

// fragmentLinkPrefixes precede a "#" that starts a link target, not a color
var fragmentLinkPrefixes = []string{"href=", "src=", "action=", "url(", "/"}

// inValueContext rejects hex-looking ID selectors such as "#cafe {" and
// fragment links such as href="#bad". hash is the index of '#', end is one
// past the last hex digit.
func inValueContext(fragment string, hash, end int) bool {
	before := strings.ToLower(strings.TrimRight(fragment[:hash], `"' `))
	for _, p := range fragmentLinkPrefixes {
		if strings.HasSuffix(before, p) {
			return false
		}
	}
	// An ID selector runs into '{' before any character that ends a value.
	if i := strings.IndexAny(fragment[end:], "{;}\"'<\n"); i >= 0 && fragment[end+i] == '{' {
		return false
	}
	return true
}

// cleanSelector trims markup that precedes the first rule of an inline style block
func cleanSelector(selector string) string {
	if i := strings.LastIndex(selector, "<"); i >= 0 {
		if j := strings.Index(selector[i:], ">"); j >= 0 {
			selector = selector[i+j+1:]
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(selector), " "))
}

// IsButtonSelector reports whether a selector list targets a button or CTA
func IsButtonSelector(selector string) bool {
	sel := cleanSelector(selector)
	for _, p := range ButtonSelectorPatterns {
		if strings.Contains(sel, p) {
			return true
		}
	}
	return false
}

// IsBrandVariable reports whether a custom property name carries a brand color
func IsBrandVariable(name string) bool {
	name = strings.ToLower(name)
	for _, token := range BrandVariableTokens {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}

// describeColor is used in verbose logs
func describeColor(c types.ColorSignal) string {
	return fmt.Sprintf("%s (%s, %d)", c.Hex, c.Property, c.Count)
}
