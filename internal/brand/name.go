package brand

import (
	"html"
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// Brand name length bounds for a title segment to be trusted
const (
	minNameLength = 2
	maxNameLength = 60
)

var (
	titleSeparatorRe = regexp.MustCompile(`\s*(?:\||–|—|\s-\s)\s*`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
	strictPolicy     = bluemonday.StrictPolicy()
)

// PlainText strips any markup from s and collapses whitespace
func PlainText(s string) string {
	s = html.UnescapeString(strictPolicy.Sanitize(s))
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// DeriveBrandName takes the first segment of a title split on "|", en-dash,
// em-dash or a spaced hyphen. When that segment is not 2-60 characters the
// name is derived from the domain instead.
func DeriveBrandName(title, domain string) string {
	title = PlainText(title)
	if title != "" {
		first := strings.TrimSpace(titleSeparatorRe.Split(title, 2)[0])
		if n := utf8.RuneCountInString(first); n >= minNameLength && n <= maxNameLength {
			return first
		}
	}
	return NameFromDomain(domain)
}

// NameFromDomain strips scheme, "www." and the TLD, then title-cases the rest
//
//	https://www.acme-roofing.co.uk/about -> "Acme Roofing"
func NameFromDomain(domain string) string {
	host := HostOf(domain)
	if host == "" {
		return ""
	}
	host = strings.TrimPrefix(host, "www.")
	labels := strings.Split(host, ".")
	name := labels[0]
	if len(labels) == 1 {
		name = host
	}
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// HostOf returns the lowercase host of a URL or bare domain
func HostOf(domain string) string {
	d := strings.TrimSpace(domain)
	if d == "" {
		return ""
	}
	if !strings.Contains(d, "://") {
		d = "https://" + d
	}
	u, err := url.Parse(d)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
