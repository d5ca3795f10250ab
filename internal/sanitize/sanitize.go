// Package sanitize strips non-signal markup from raw page text before brand signal extraction.
package sanitize

import (
	"regexp"
	"strings"
)

// PluginStyleMarkers are id/class substrings identifying third-party plugin
// style blocks whose colors say nothing about the brand.
var PluginStyleMarkers = []string{
	// cookie consent
	"cookie", "cmplz", "cookieyes", "cky-", "borlabs", "onetrust", "ot-sdk", "gdpr", "consent",
	// platform presets
	"wp-block-library", "global-styles", "wp-emoji", "classic-theme-styles", "core-block-supports",
	"elementor-frontend", "woocommerce-inline", "litespeed",
	// social widgets
	"whatsapp", "wa-chat", "joinchat", "facebook", "fb-root", "twitter-widget", "instagram-feed", "sbi_", "addtoany",
}

var (
	scriptBlockRe  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	noscriptRe     = regexp.MustCompile(`(?is)<noscript\b[^>]*>.*?</noscript\s*>`)
	svgBlockRe     = regexp.MustCompile(`(?is)<svg\b[^>]*>.*?</svg\s*>`)
	commentRe      = regexp.MustCompile(`(?s)<!--.*?-->`)
	cssCommentRe   = regexp.MustCompile(`(?s)/\*.*?\*/`)
	dataAttrRe     = regexp.MustCompile(`(?i)\sdata-[a-z0-9_.:-]+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	styleBlockRe   = regexp.MustCompile(`(?is)<style\b([^>]*)>.*?</style\s*>`)
	styleIDClassRe = regexp.MustCompile(`(?i)\b(?:id|class)\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
)

// Clean removes script blocks, inline SVG, HTML and CSS comments, data
// attributes and plugin style blocks, in that order. It never fails; empty
// input yields "".
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	text := scriptBlockRe.ReplaceAllString(raw, "")
	text = noscriptRe.ReplaceAllString(text, "")
	text = svgBlockRe.ReplaceAllString(text, "")
	text = commentRe.ReplaceAllString(text, "")
	text = cssCommentRe.ReplaceAllString(text, "")
	text = dataAttrRe.ReplaceAllString(text, "")
	text = RemovePluginStyles(text)
	return text
}

// RemovePluginStyles drops <style> blocks whose id or class matches a plugin marker
func RemovePluginStyles(text string) string {
	return styleBlockRe.ReplaceAllStringFunc(text, func(block string) string {
		m := styleBlockRe.FindStringSubmatch(block)
		if len(m) < 2 {
			return block
		}
		if IsPluginStyle(m[1]) {
			return ""
		}
		return block
	})
}

// IsPluginStyle reports whether the attributes of a style tag mark it as a plugin block
func IsPluginStyle(attrs string) bool {
	for _, m := range styleIDClassRe.FindAllStringSubmatch(attrs, -1) {
		value := strings.ToLower(strings.Trim(m[1], `"'`))
		for _, marker := range PluginStyleMarkers {
			if strings.Contains(value, marker) {
				return true
			}
		}
	}
	return false
}
