package extraction

import (
	"log"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/sanitize"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// Options describes where the scanned text came from
type Options struct {
	Domain  string
	Title   string
	Pages   []string
	Weights *Weights
	Verbose bool
}

// Extract sanitizes raw page text and scans it for every signal category.
// Malformed CSS never fails extraction; it only yields fewer signals.
func Extract(raw string, opts Options) *types.RawExtraction {
	weights := DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}

	title := opts.Title
	description := ""
	if strings.Contains(raw, "<") {
		if info, err := ProbePage(raw); err == nil {
			if title == "" {
				title = info.BestTitle()
			}
			description = info.Description
		}
	}

	text := sanitize.Clean(raw)

	result := &types.RawExtraction{
		Domain:         opts.Domain,
		Title:          title,
		Description:    description,
		Colors:         ExtractColorsWithWeights(text, weights),
		Fonts:          ExtractFonts(text),
		Sizes:          ExtractSizes(text),
		LetterSpacings: ExtractLetterSpacing(text),
		Spacing:        ExtractSpacing(text),
		Radii:          ExtractRadii(text),
		Shadows:        ExtractShadows(text),
		WebFontURLs:    ExtractWebFontURLs(raw),
		PagesAnalyzed:  append([]string(nil), opts.Pages...),
		RawTextLength:  len(raw),
	}

	if opts.Verbose {
		log.Printf("[EXTRACT] %s: %d colors, %d fonts, %d sizes, %d spacing, %d radii, %d shadows",
			opts.Domain, len(result.Colors), len(result.Fonts), len(result.Sizes),
			len(result.Spacing), len(result.Radii), len(result.Shadows))
		for i, c := range result.Colors {
			if i >= 5 {
				break
			}
			log.Printf("[EXTRACT]   color #%d: %s", i+1, describeColor(c))
		}
	}

	return result
}
