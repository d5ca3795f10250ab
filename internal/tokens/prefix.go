// Package tokens builds a DesignTokenSet from a BrandAnalysis.
package tokens

import (
	"strings"
	"unicode"
)

// DefaultPrefix is used when no usable prefix can be derived from the brand name
const DefaultPrefix = "br"

// StopWords are dropped before building a prefix from a brand name
var StopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "of": true, "for": true,
	"de": true, "het": true, "een": true, "en": true, "van": true, "der": true, "die": true, "das": true, "und": true,
	"le": true, "la": true, "les": true, "et": true,
	"inc": true, "llc": true, "ltd": true, "limited": true, "corp": true, "co": true, "company": true,
	"group": true, "gmbh": true, "bv": true, "nv": true, "ag": true, "sa": true, "plc": true,
}

// GeneratePrefix derives a short lowercase CSS-identifier-safe prefix.
//
//	"B&M Dak-Totaal"  -> "bmdt"
//	"Resultaatmakers" -> "res"
func GeneratePrefix(brandName string) string {
	words := significantWords(brandName)

	var prefix string
	switch {
	case len(words) >= 2:
		var b strings.Builder
		for i, w := range words {
			if i == 4 {
				break
			}
			b.WriteByte(w[0])
		}
		prefix = b.String()
	case len(words) == 1:
		n := 3
		if len(words[0]) <= 4 {
			n = 2
		}
		prefix = head(words[0], n)
	}

	if validPrefix(prefix) {
		return prefix
	}
	if fallback := head(strings.Join(words, ""), 2); validPrefix(fallback) {
		return fallback
	}
	return DefaultPrefix
}

// significantWords splits on anything that is not an ASCII letter or digit,
// lowercases, and drops stop words unless nothing else remains.
func significantWords(name string) []string {
	all := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	var kept []string
	for _, w := range all {
		if !StopWords[w] {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return all
	}
	return kept
}

func head(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func validPrefix(p string) bool {
	if len(p) < 2 || len(p) > 4 {
		return false
	}
	if !unicode.IsLetter(rune(p[0])) {
		return false
	}
	// sg- is reserved for document chrome
	return p != "sg"
}
