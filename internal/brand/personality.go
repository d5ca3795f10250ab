package brand

import (
	"fmt"

	"github.com/jonathan/brand-styleguide/internal/types"
)

// ApplyPersonality merges an external personality override into analysis.
// Only personality, industry and tagline fields change; extracted numeric
// signals are never touched.
func ApplyPersonality(analysis *types.BrandAnalysis, override *types.PersonalityOverride) error {
	if analysis == nil || override == nil {
		return nil
	}
	if err := override.Validate(); err != nil {
		return fmt.Errorf("invalid personality override: %w", err)
	}
	if override.Formality != nil {
		analysis.Personality.Formality = *override.Formality
	}
	if override.Energy != nil {
		analysis.Personality.Energy = *override.Energy
	}
	if override.Warmth != nil {
		analysis.Personality.Warmth = *override.Warmth
	}
	if override.Tone != nil {
		analysis.Personality.Tone = PlainText(*override.Tone)
	}
	if override.Industry != nil {
		analysis.Industry = PlainText(*override.Industry)
	}
	if override.Tagline != nil {
		analysis.Tagline = PlainText(*override.Tagline)
	}
	return nil
}
