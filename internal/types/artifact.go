package types

import "time"

// ArtifactVersion is the version stamped on persisted styleguide artifacts
const ArtifactVersion = "1.0.0"

// StyleguideArtifact is the persisted record layout consumed by the surrounding application
type StyleguideArtifact struct {
	DesignTokens   *DesignTokenSet `json:"designTokens"`
	BrandAnalysis  *BrandAnalysis  `json:"brandAnalysis"`
	HTMLStorageKey string          `json:"htmlStorageKey"`
	GeneratedAt    time.Time       `json:"generatedAt"`
	Version        string          `json:"version"`
}
