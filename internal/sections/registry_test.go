package sections

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-styleguide/internal/tokens"
	"github.com/jonathan/brand-styleguide/internal/types"
)

func testAnalysis() *types.BrandAnalysis {
	return &types.BrandAnalysis{
		BrandName: "B&M Dak-Totaal",
		Domain:    "bm-dak.nl",
		Tagline:   "Roofing <done> right",
		Colors: types.BrandColors{
			Primary:   "#E85D04",
			Secondary: "#1D3557",
		},
		Typography: types.BrandTypography{
			Heading: types.FontSpec{Family: "Outfit", Fallback: "sans-serif", Weights: []int{700}},
			Body:    types.FontSpec{Family: "Open Sans", Fallback: "sans-serif", Weights: []int{400}},
		},
		Spacing:     types.BrandSpacing{SectionPadding: "80px"},
		Shapes:      types.BrandShapes{ButtonRadius: "6px"},
		Personality: types.Personality{Formality: 3, Energy: 3, Warmth: 3, Tone: "professional"},
	}
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 48)

	anchors := make(map[string]bool)
	valid := map[types.SectionCategory]bool{
		types.CategoryFoundation: true,
		types.CategoryExtension:  true,
		types.CategorySiteWide:   true,
		types.CategoryReference:  true,
	}
	for i, e := range cat {
		assert.Equal(t, i+1, e.ID, "ids are sequential")
		assert.False(t, anchors[e.Anchor], "duplicate anchor %s", e.Anchor)
		anchors[e.Anchor] = true
		assert.True(t, valid[e.Category], "unknown category for %d", e.ID)
		assert.NotEmpty(t, e.Title)
	}

	// Mutating the copy leaves the catalog alone
	cat[0].Title = "changed"
	e, ok := EntryByID(1)
	require.True(t, ok)
	assert.Equal(t, "Brand Overview", e.Title)

	_, ok = EntryByID(0)
	assert.False(t, ok)
	_, ok = EntryByID(49)
	assert.False(t, ok)
}

func TestDefaultRegistry_CoversEveryTemplateEntry(t *testing.T) {
	r := DefaultRegistry()
	templates := EntriesFor(StrategyTemplate)
	assert.Equal(t, len(templates), r.Len())
	for _, e := range templates {
		_, ok := r.Lookup(e.ID)
		assert.True(t, ok, "no generator for template section %d", e.ID)
	}

	total := len(templates)
	for _, s := range AIStrategies {
		total += len(EntriesFor(s))
	}
	assert.Equal(t, 48, total)
}

func TestGenerateTemplateSections_SkipsUnregistered(t *testing.T) {
	ts := tokens.Build(testAnalysis())
	r := NewRegistry()
	r.Register(7, typeScale)
	r.Register(2, colorPalette)
	r.Register(99, brandOverview)

	out := r.GenerateTemplateSections(ts, testAnalysis())
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[0].ID)
	assert.Equal(t, 7, out[1].ID)
	assert.Equal(t, []int{2, 7, 99}, r.IDs())
}

func TestGenerateTemplateSections_Output(t *testing.T) {
	a := testAnalysis()
	ts := tokens.Build(a)
	out := DefaultRegistry().GenerateTemplateSections(ts, a)
	require.Len(t, out, len(EntriesFor(StrategyTemplate)))

	allowed := tokenColors(ts)
	hexRe := regexp.MustCompile(`#[0-9A-Fa-f]{6}\b`)

	for i, s := range out {
		if i > 0 {
			assert.Greater(t, s.ID, out[i-1].ID, "sections are in id order")
		}
		e, _ := EntryByID(s.ID)
		assert.Equal(t, e.Anchor, s.Anchor)
		assert.Equal(t, e.Category, s.Category)

		assert.True(t, strings.HasPrefix(s.HTML, `<section id="`+s.Anchor+`" class="sg-section"`), "section %d", s.ID)
		assert.True(t, strings.HasSuffix(s.HTML, "</section>\n"))
		assert.Contains(t, s.HTML, `class="sg-demo"`, "section %d has a demo", s.ID)
		assert.NotEmpty(t, s.ClassNames, "section %d defines classes", s.ID)
		for _, cls := range s.ClassNames {
			assert.True(t, strings.HasPrefix(cls, ts.Prefix+"-"), "class %s", cls)
		}

		for _, hex := range hexRe.FindAllString(s.HTML, -1) {
			assert.True(t, allowed[strings.ToUpper(hex)], "section %d uses %s which is not a token value", s.ID, hex)
		}

		open, closed := countTags(s.HTML)
		assert.Equal(t, open, closed, "section %d tag balance", s.ID)
	}
}

func TestGenerators_EscapeBrandText(t *testing.T) {
	a := testAnalysis()
	ts := tokens.Build(a)

	overview := brandOverview(ts, a)
	assert.Contains(t, overview.HTML, "B&amp;M Dak-Totaal")
	assert.Contains(t, overview.HTML, "Roofing &lt;done&gt; right")
	assert.NotContains(t, overview.HTML, "<done>")
}

func TestColorPalette_WarnsWithoutSecondary(t *testing.T) {
	a := testAnalysis()
	a.Colors.Secondary = ""
	ts := tokens.Build(a)

	assert.Contains(t, colorPalette(ts, a).HTML, "sg-warning")
	assert.NotContains(t, colorPalette(tokens.Build(testAnalysis()), testAnalysis()).HTML, "sg-warning")
}

func TestWrap_OmitsEmptyParts(t *testing.T) {
	e, _ := EntryByID(23)
	s := Wrap(e, "bmdt", "", "", "", "", "")

	assert.NotContains(t, s.HTML, "sg-demo")
	assert.NotContains(t, s.HTML, "<style>")
	assert.NotContains(t, s.HTML, "sg-code")
	assert.Empty(t, s.ClassNames)
	assert.Contains(t, s.HTML, `data-section="23"`)
}

func TestDefinedClasses(t *testing.T) {
	css := ".ab-btn { x: 1 }\n.ab-btn:hover { }\n.ab-card .ab-card-body { }\n.other-x { }\n.5rem"
	assert.Equal(t, []string{"ab-btn", "ab-card", "ab-card-body"}, definedClasses(css, "ab"))
}

func tokenColors(ts *types.DesignTokenSet) map[string]bool {
	out := make(map[string]bool)
	for _, s := range []types.ColorScale{ts.Colors.Primary, ts.Colors.Secondary, ts.Colors.Accent, ts.Colors.Gray} {
		for _, hex := range s {
			out[strings.ToUpper(hex)] = true
		}
	}
	sem := ts.Colors.Semantic
	for _, hex := range []string{sem.Success, sem.Error, sem.Warning, sem.Info, sem.Fixed} {
		out[strings.ToUpper(hex)] = true
	}
	return out
}

var (
	openTagRe  = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9]*)\b[^>]*>`)
	closeTagRe = regexp.MustCompile(`</([a-zA-Z][a-zA-Z0-9]*)\s*>`)
	voidTags   = map[string]bool{"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true}
)

func countTags(doc string) (open, closed int) {
	for _, m := range openTagRe.FindAllStringSubmatch(doc, -1) {
		if !voidTags[strings.ToLower(m[1])] && !strings.HasSuffix(m[0], "/>") {
			open++
		}
	}
	return open, len(closeTagRe.FindAllString(doc, -1))
}
