package quality

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/sections"
)

var (
	openTagRe    = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9]*)\b[^>]*>`)
	closeTagRe   = regexp.MustCompile(`</([a-zA-Z][a-zA-Z0-9]*)\s*>`)
	rawTextRe    = regexp.MustCompile(`(?is)<(style|script)\b[^>]*>.*?</(?:style|script)\s*>`)
	commentRe    = regexp.MustCompile(`(?s)<!--.*?-->`)
	classAttrRe  = regexp.MustCompile(`\bclass="([^"]*)"`)
	headingRe    = regexp.MustCompile(`(?i)<h([1-6])\b`)
	sectionOpen  = regexp.MustCompile(`<section\b[^>]*\bclass="` + sections.SectionClass + `"[^>]*>`)
	sectionIDRe  = regexp.MustCompile(`\bid="([^"]*)"`)
	demoMarkerRe = regexp.MustCompile(`class="(?:[^"]*\s)?` + sections.DemoClass + `(?:\s[^"]*)?"`)
)

// VoidElements never take a closing tag
var VoidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

// stripRawText blanks style/script bodies and comments so their text cannot look like tags
func stripRawText(doc string) string {
	doc = commentRe.ReplaceAllString(doc, "")
	return rawTextRe.ReplaceAllStringFunc(doc, func(m string) string {
		name := strings.ToLower(rawTextRe.FindStringSubmatch(m)[1])
		return "<" + name + "></" + name + ">"
	})
}

// TagCounts counts opening and closing tags per element name, ignoring void
// and self-closing elements.
func TagCounts(doc string) (open, closed map[string]int) {
	doc = stripRawText(doc)
	open = make(map[string]int)
	closed = make(map[string]int)
	for _, m := range openTagRe.FindAllStringSubmatch(doc, -1) {
		name := strings.ToLower(m[1])
		if VoidElements[name] || strings.HasSuffix(m[0], "/>") {
			continue
		}
		open[name]++
	}
	for _, m := range closeTagRe.FindAllStringSubmatch(doc, -1) {
		closed[strings.ToLower(m[1])]++
	}
	return open, closed
}

// CountTags totals TagCounts
func CountTags(doc string) (open, closed int) {
	o, c := TagCounts(doc)
	for _, n := range o {
		open += n
	}
	for _, n := range c {
		closed += n
	}
	return open, closed
}

// Unclosed returns, per element, how many more opening than closing tags there are
func Unclosed(doc string) map[string]int {
	open, closed := TagCounts(doc)
	out := make(map[string]int)
	for name, n := range open {
		if d := n - closed[name]; d > 0 {
			out[name] = d
		}
	}
	return out
}

// SectionSpan locates one section element in a document
type SectionSpan struct {
	ID    string
	Start int
	// End is the index of the section's closing tag, or -1 when there is none
	End   int
	Empty bool
}

// Sections finds every styleguide section. A section is empty when it has
// no demo block between its opening tag and the next closing boundary.
func Sections(doc string) []SectionSpan {
	locs := sectionOpen.FindAllStringIndex(doc, -1)
	spans := make([]SectionSpan, 0, len(locs))
	for i, loc := range locs {
		span := SectionSpan{Start: loc[0], End: -1}
		if m := sectionIDRe.FindStringSubmatch(doc[loc[0]:loc[1]]); m != nil {
			span.ID = m[1]
		}

		limit := len(doc)
		if i+1 < len(locs) {
			limit = locs[i+1][0]
		}
		body := doc[loc[1]:limit]
		if end := strings.Index(body, "</section>"); end >= 0 {
			span.End = loc[1] + end
			body = body[:end]
		}
		span.Empty = !demoMarkerRe.MatchString(body)
		spans = append(spans, span)
	}
	return spans
}

// Classes returns the distinct class tokens used in class attributes, sorted
func Classes(doc string) []string {
	seen := make(map[string]bool)
	for _, m := range classAttrRe.FindAllStringSubmatch(stripRawText(doc), -1) {
		for _, cls := range strings.Fields(m[1]) {
			seen[cls] = true
		}
	}
	out := make([]string, 0, len(seen))
	for cls := range seen {
		out = append(out, cls)
	}
	sort.Strings(out)
	return out
}
