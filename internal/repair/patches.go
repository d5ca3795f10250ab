package repair

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/quality"
	"github.com/jonathan/brand-styleguide/internal/sections"
)

// EmptySectionGapThreshold bounds how far a section's closing tag may sit from
// its opening tag for the placeholder patch to apply. Larger sections are
// assumed to use an unexpected structure and are left alone.
const EmptySectionGapThreshold = 1500

// Patch names recorded in a Result
const (
	PatchTagBalance    = "tag-balance"
	PatchEmptySections = "empty-sections"
)

// Placeholder is injected into sections that have no demonstration content
var Placeholder = fmt.Sprintf(`<div class="%s %s">Content pending</div>`, sections.DemoClass, sections.PendingClass)

// closingBoundaries are tried in order when appending missing closing tags
var closingBoundaries = []string{"</body>", "</html>"}

// balanceTags appends the missing closing tags immediately before the
// document's closing boundary. It reports false when nothing is unclosed.
func balanceTags(doc string) (string, bool) {
	unclosed := quality.Unclosed(doc)
	// body and html are closed by the boundary itself
	for _, name := range []string{"body", "html"} {
		if strings.Contains(doc, "</"+name+">") {
			delete(unclosed, name)
		}
	}
	if len(unclosed) == 0 {
		return doc, false
	}

	names := make([]string, 0, len(unclosed))
	for name := range unclosed {
		names = append(names, name)
	}
	sort.Strings(names)

	var closing strings.Builder
	for _, name := range names {
		for i := 0; i < unclosed[name]; i++ {
			closing.WriteString("</" + name + ">")
		}
	}
	closing.WriteString("\n")

	at := len(doc)
	for _, boundary := range closingBoundaries {
		if i := strings.LastIndex(doc, boundary); i >= 0 {
			at = i
			break
		}
	}
	return doc[:at] + closing.String() + doc[at:], true
}

// fillEmptySections injects the placeholder into every empty section whose
// closing tag lies within EmptySectionGapThreshold of its opening tag.
func fillEmptySections(doc string) (string, int) {
	spans := quality.Sections(doc)
	// Work backwards so earlier offsets stay valid.
	patched := 0
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		if !s.Empty || s.End < 0 || s.End-s.Start >= EmptySectionGapThreshold {
			continue
		}
		doc = doc[:s.End] + Placeholder + "\n" + doc[s.End:]
		patched++
	}
	return doc, patched
}
