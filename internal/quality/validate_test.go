package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-styleguide/internal/assemble"
	"github.com/jonathan/brand-styleguide/internal/sections"
	"github.com/jonathan/brand-styleguide/internal/tokens"
	"github.com/jonathan/brand-styleguide/internal/types"
)

func testAnalysis() *types.BrandAnalysis {
	return &types.BrandAnalysis{
		BrandName: "B&M Dak-Totaal",
		Domain:    "bm-dak.nl",
		Colors:    types.BrandColors{Primary: "#E85D04", Secondary: "#1D3557"},
		Typography: types.BrandTypography{
			Heading: types.FontSpec{Family: "Outfit", Fallback: "sans-serif", Weights: []int{700}},
			Body:    types.FontSpec{Family: "Open Sans", Fallback: "sans-serif", Weights: []int{400}},
		},
		Spacing: types.BrandSpacing{SectionPadding: "80px"},
		Shapes:  types.BrandShapes{ButtonRadius: "6px"},
	}
}

func buildDocument(t *testing.T, r *sections.Registry) (string, Options) {
	t.Helper()
	a := testAnalysis()
	ts := tokens.Build(a)
	secs := r.GenerateTemplateSections(ts, a)
	doc := assemble.Document(secs, ts, a, assemble.Meta{})
	return doc, Options{Prefix: ts.Prefix, BrandName: a.BrandName, PrimaryColor: a.Colors.Primary}
}

func TestValidate_AssembledDocument(t *testing.T) {
	r := sections.DefaultRegistry()
	doc, opts := buildDocument(t, r)
	report := Validate(doc, opts)

	n := r.Len()
	assert.Equal(t, n, report.Structural.SectionCount.Found)
	assert.Equal(t, 48, report.Structural.SectionCount.Expected)
	assert.True(t, report.Structural.TagBalance.Balanced, "issues: %v", report.Issues)
	assert.Empty(t, report.Structural.EmptySections)

	assert.True(t, report.Content.PrefixConsistent, "issues: %v", report.Issues)
	assert.True(t, report.Content.BrandNamePresent)
	assert.True(t, report.Content.PrimaryColorPresent)
	assert.GreaterOrEqual(t, report.Content.UniqueClasses, MinUniqueClasses)

	assert.Equal(t, types.VisualChecks{
		ColorSwatches: true, Buttons: true, Cards: true,
		TypographyHierarchy: true, CodeBlocks: true, NavigationLinks: true,
	}, report.Visual)

	missing := 48 - n
	assert.Equal(t, MaxScore-min(MaxSectionPenalty, PenaltyPerMissing*missing), report.Score)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "Missing sections")
}

func TestValidate_SectionCountMatchesRegistered(t *testing.T) {
	r := sections.NewRegistry()
	full := sections.DefaultRegistry()
	for _, id := range []int{2, 6, 7, 13} {
		g, ok := full.Lookup(id)
		require.True(t, ok)
		r.Register(id, g)
	}
	doc, opts := buildDocument(t, r)
	report := Validate(doc, opts)

	assert.Equal(t, 4, report.Structural.SectionCount.Found)
	assert.Equal(t, MaxSectionPenalty, MaxScore-report.Score-penaltiesExceptSections(report))
}

func TestValidate_TagImbalancePenalty(t *testing.T) {
	doc, opts := buildDocument(t, sections.DefaultRegistry())
	before := Validate(doc, opts)

	broken := strings.Replace(doc, `<div class="sg-demo">`, `<div class="sg-demo"><div>`, 1)
	after := Validate(broken, opts)

	assert.False(t, after.Structural.TagBalance.Balanced)
	assert.Equal(t, after.Structural.TagBalance.Open, after.Structural.TagBalance.Close+1)
	assert.Equal(t, before.Score-PenaltyTagImbalance, after.Score)
}

func TestValidate_Penalties(t *testing.T) {
	tests := []struct {
		name    string
		clean   string
		broken  string
		opts    Options
		penalty int
		issue   string
	}{
		{
			name:    "foreign prefix",
			clean:   `<div class="ab-x"></div>`,
			broken:  `<div class="ab-x wp-block"></div>`,
			opts:    Options{Prefix: "ab"},
			penalty: PenaltyForeignPrefix,
			issue:   "Foreign class prefixes found: wp-",
		},
		{
			name:    "brand name missing",
			clean:   `<p>Acme</p>`,
			broken:  `<p>nothing</p>`,
			opts:    Options{BrandName: "Acme"},
			penalty: PenaltyBrandName,
			issue:   `Brand name "Acme" not found`,
		},
		{
			name:    "primary color missing",
			clean:   `<p style="color:#e85d04">x</p>`,
			broken:  `<p style="color:#000000">x</p>`,
			opts:    Options{PrimaryColor: "#E85D04"},
			penalty: PenaltyPrimaryColor,
			issue:   "Primary color #E85D04 not used",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Validate(tt.clean, tt.opts)
			got := Validate(tt.broken, tt.opts)
			assert.Equal(t, base.Score-tt.penalty, got.Score)
			found := false
			for _, issue := range got.Issues {
				if strings.Contains(issue, tt.issue) {
					found = true
				}
			}
			assert.True(t, found, "issues: %v", got.Issues)
		})
	}
}

func TestValidate_EmptySections(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 6; i++ {
		sb.WriteString(`<section id="s` + string(rune('a'+i)) + `" class="sg-section"><h2>t</h2></section>`)
	}
	sb.WriteString(`<section id="full" class="sg-section"><div class="sg-demo">x</div></section>`)

	report := Validate(sb.String(), Options{ExpectedSections: 7})
	assert.Equal(t, []string{"sa", "sb", "sc", "sd", "se", "sf"}, report.Structural.EmptySections)
	assert.Equal(t, 7, report.Structural.SectionCount.Found)

	five := Validate(strings.Replace(sb.String(), `<h2>t</h2>`, `<div class="sg-demo sg-pending">p</div>`, 1), Options{ExpectedSections: 7})
	assert.Len(t, five.Structural.EmptySections, 5)
	assert.Equal(t, report.Score+PenaltyEmptySections, five.Score)
}

func TestValidate_WorstCaseStaysNonNegative(t *testing.T) {
	doc := `<div class="wp-x">` + strings.Repeat(`<section id="s" class="sg-section"></section>`, 6)
	report := Validate(doc, Options{Prefix: "ab", BrandName: "Acme", PrimaryColor: "#123456"})

	assert.Equal(t, MaxScore-95, report.Score)
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.Len(t, report.Issues, 11)
}

func TestCountTags(t *testing.T) {
	doc := `<!DOCTYPE html><html><head><meta charset="utf-8"><style>a > b { x: 1 } .x:before { content: "<div>" }</style></head>
<body><!-- <div> --><br><img src="x"/><p>hi</p><input type="text"></body></html>`
	open, closed := CountTags(doc)
	assert.Equal(t, 5, open)
	assert.Equal(t, 5, closed)
}

func TestUnclosed(t *testing.T) {
	assert.Equal(t, map[string]int{"div": 2, "span": 1}, Unclosed(`<div><div><span><p></p>`))
	assert.Empty(t, Unclosed(`<p></p></div>`))
}

func TestSections(t *testing.T) {
	doc := `<section id="a" class="sg-section"><div class="sg-demo">x</div></section><section id="b" class="sg-section"><p>y</p>`
	spans := Sections(doc)
	require.Len(t, spans, 2)
	assert.Equal(t, "a", spans[0].ID)
	assert.False(t, spans[0].Empty)
	assert.Greater(t, spans[0].End, spans[0].Start)
	assert.Equal(t, "b", spans[1].ID)
	assert.True(t, spans[1].Empty)
	assert.Equal(t, -1, spans[1].End)
}

func penaltiesExceptSections(r *types.QualityReport) int {
	total := 0
	for _, issue := range r.Issues {
		switch {
		case strings.HasPrefix(issue, "Missing sections"):
		case strings.HasPrefix(issue, "Unbalanced tags"):
			total += PenaltyTagImbalance
		case strings.HasPrefix(issue, "Only "):
			total += PenaltyFewClasses
		case strings.HasPrefix(issue, "Foreign"):
			total += PenaltyForeignPrefix
		default:
			total += PenaltyMissingVisual
		}
	}
	return total
}
