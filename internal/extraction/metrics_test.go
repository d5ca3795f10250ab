package extraction

import (
	"testing"

	"github.com/jonathan/brand-styleguide/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractSizes(t *testing.T) {
	css := `
		h1 { font-size: 48px; }
		.hero h2, h3 { font-size: 2rem; }
		p { font-size: 16px; line-height: 1.6; }
		.card { font-size: 14px; }
		h1 { font-size: 48px; }
	`
	sizes := ExtractSizes(css)
	assert.Equal(t, []types.SizeSignal{
		{Element: "h1", Size: "48px"},
		{Element: "h2", Size: "2rem"},
		{Element: "h3", Size: "2rem"},
		{Element: "p", Size: "16px"},
	}, sizes)
}

func TestExtractSpacing(t *testing.T) {
	css := `.section { padding: 80px 0; } .card { padding: 24px; margin-bottom: 1.5rem; gap: 16px; } .x { margin: 0; padding: .5rem }`
	assert.Equal(t, []string{"80px", "24px", "1.5rem", "16px", ".5rem"}, ExtractSpacing(css))
}

func TestExtractRadii(t *testing.T) {
	css := `.btn { border-radius: 6px; } .avatar { border-radius: 50%; } .pill { border-radius: 9999px; } .card { border-top-left-radius: 12px; } .flat { border-radius: 0 }`
	assert.Equal(t, []string{"6px", "50%", "9999px", "12px"}, ExtractRadii(css))
}

func TestExtractShadows(t *testing.T) {
	css := `.card { box-shadow: 0 4px 12px rgba(0,0,0,.1); } .x { box-shadow: none; } .y { box-shadow: var(--shadow); } .z { box-shadow: 0 4px 12px rgba(0,0,0,.1) }`
	assert.Equal(t, []string{"0 4px 12px rgba(0,0,0,.1)"}, ExtractShadows(css))
}

func TestExtract_Malformed(t *testing.T) {
	raw := `h1 { font-size: ; color: #; } }}} {{ @font-face { font-family: ; } background-color: rgb(999, 0, 0)`
	res := Extract(raw, Options{Domain: "broken.example"})
	assert.Empty(t, res.Colors)
	assert.Empty(t, res.Fonts)
	assert.Empty(t, res.Sizes)
	assert.Equal(t, "broken.example", res.Domain)
}

func TestExtract_FullPage(t *testing.T) {
	raw := `<html><head><title>Acme Roofing | Quality roofs</title>
	<meta name="description" content="Roofs that last.">
	<script>var tracking = "#FF00FF";</script>
	<style id="cookieyes">.cky-btn { background: #1863DC; }</style>
	<style>
	:root { --brand-primary: #D62828; }
	.btn { background-color: #D62828; border-radius: 4px; }
	h1 { font-size: 52px; font-family: "Outfit", sans-serif; font-weight: 700; }
	body { font-family: Inter, sans-serif; }
	.section { padding: 96px 0; }
	.card { box-shadow: 0 2px 8px rgba(0,0,0,.08); }
	</style></head><body><h1>Acme</h1></body></html>`

	res := Extract(raw, Options{Domain: "acme.example", Pages: []string{"https://acme.example/"}})
	assert.Equal(t, "Acme Roofing | Quality roofs", res.Title)
	assert.Equal(t, "Roofs that last.", res.Description)
	if assert.NotEmpty(t, res.Colors) {
		assert.Equal(t, "#D62828", res.Colors[0].Hex)
	}
	for _, c := range res.Colors {
		assert.NotEqual(t, "#FF00FF", c.Hex)
		assert.NotEqual(t, "#1863DC", c.Hex)
	}
	assert.Len(t, res.Fonts, 2)
	assert.Contains(t, res.Spacing, "96px")
	assert.Equal(t, []string{"4px"}, res.Radii)
	assert.Len(t, res.Shadows, 1)
	assert.Equal(t, []string{"https://acme.example/"}, res.PagesAnalyzed)
	assert.Equal(t, len(raw), res.RawTextLength)
}
