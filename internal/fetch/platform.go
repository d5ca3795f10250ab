package fetch

import "strings"

// Platform is the site builder a brand page was published with.
type Platform string

// Known site builders.
const (
	PlatformWordPress   Platform = "wordpress"
	PlatformShopify     Platform = "shopify"
	PlatformWix         Platform = "wix"
	PlatformSquarespace Platform = "squarespace"
	PlatformWebflow     Platform = "webflow"
	PlatformUnknown     Platform = "unknown"
)

var platformMarkers = []struct {
	platform Platform
	markers  []string
}{
	{PlatformWix, []string{"static.wixstatic.com", "wix-warmup-data", "x-wix-"}},
	{PlatformSquarespace, []string{"static1.squarespace.com", "squarespace-cdn.com", "sqs-block"}},
	{PlatformShopify, []string{"cdn.shopify.com", "shopify-section", "shopify.theme"}},
	{PlatformWebflow, []string{"data-wf-page", "webflow.js", "website-files.com"}},
	{PlatformWordPress, []string{"/wp-content/", "/wp-includes/", `name="generator" content="wordpress`}},
}

// DetectPlatform identifies the site builder from page markup.
func DetectPlatform(html string) Platform {
	lower := strings.ToLower(html)
	for _, p := range platformMarkers {
		for _, m := range p.markers {
			if strings.Contains(lower, m) {
				return p.platform
			}
		}
	}
	return PlatformUnknown
}

// RendersClientSide reports whether the builder assembles most of its
// styling in the browser, so only a headless render sees the real CSS.
func (p Platform) RendersClientSide() bool {
	return p == PlatformWix || p == PlatformSquarespace
}
