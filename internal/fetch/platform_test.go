package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name string
		html string
		want Platform
	}{
		{"wordpress assets", `<link rel="stylesheet" href="/wp-content/themes/acme/style.css">`, PlatformWordPress},
		{"wordpress generator", `<meta name="generator" content="WordPress 6.5">`, PlatformWordPress},
		{"shopify", `<script src="https://cdn.shopify.com/s/files/theme.js"></script>`, PlatformShopify},
		{"wix", `<img src="https://static.wixstatic.com/media/logo.png">`, PlatformWix},
		{"squarespace", `<div class="sqs-block html-block">`, PlatformSquarespace},
		{"webflow", `<html data-wf-page="abc123">`, PlatformWebflow},
		{"plain", `<html><body><h1>Acme</h1></body></html>`, PlatformUnknown},
		{"empty", ``, PlatformUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPlatform(tt.html))
		})
	}
}

func TestPlatform_RendersClientSide(t *testing.T) {
	assert.True(t, PlatformWix.RendersClientSide())
	assert.True(t, PlatformSquarespace.RendersClientSide())
	assert.False(t, PlatformWordPress.RendersClientSide())
	assert.False(t, PlatformUnknown.RendersClientSide())
}
