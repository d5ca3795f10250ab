package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Clean(""))
}

func TestClean_RemovesScripts(t *testing.T) {
	raw := `<p>keep</p><script type="text/javascript">var c = "#ff0000";</script><noscript><img src="x"></noscript>`
	out := Clean(raw)
	assert.Contains(t, out, "<p>keep</p>")
	assert.NotContains(t, out, "#ff0000")
	assert.NotContains(t, out, "noscript")
}

func TestClean_RemovesSVGAndComments(t *testing.T) {
	raw := `<svg viewBox="0 0 10 10"><path fill="#00ff00"/></svg><!-- color: #123456 --><div>x</div>`
	out := Clean(raw)
	assert.NotContains(t, out, "#00ff00")
	assert.NotContains(t, out, "#123456")
	assert.Contains(t, out, "<div>x</div>")
}

func TestClean_RemovesDataAttributes(t *testing.T) {
	raw := `<div data-color="#abcdef" data-x='1' class="hero">x</div>`
	out := Clean(raw)
	assert.NotContains(t, out, "#abcdef")
	assert.Contains(t, out, `class="hero"`)
}

func TestClean_RemovesPluginStyleBlocks(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		remove bool
	}{
		{name: "cookie consent id", raw: `<style id="cookieyes-css">.cky{color:#1863dc}</style>`, remove: true},
		{name: "platform preset", raw: `<style id='global-styles-inline-css'>body{--wp--preset--color--vivid-red:#cf2e2e}</style>`, remove: true},
		{name: "social widget class", raw: `<style class="joinchat-style">.x{color:#25d366}</style>`, remove: true},
		{name: "brand styles kept", raw: `<style id="theme-main">.btn{background:#e63946}</style>`, remove: false},
		{name: "bare style kept", raw: `<style>.btn{background:#e63946}</style>`, remove: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Clean(tt.raw)
			if tt.remove {
				assert.Empty(t, out)
			} else {
				assert.Equal(t, tt.raw, out)
			}
		})
	}
}

func TestClean_PlainCSSUntouched(t *testing.T) {
	css := `.btn { background-color: #E63946; } h1 { font-family: "Outfit", sans-serif; }`
	assert.Equal(t, css, Clean(css))
}

func TestClean_RemovesCSSComments(t *testing.T) {
	css := "/* legacy theme: #ff0000 */.btn { color: #E63946; /* was #00ff00\n */ }"
	got := Clean(css)
	assert.Equal(t, ".btn { color: #E63946;  }", got)
	assert.NotContains(t, got, "#ff0000")
}
