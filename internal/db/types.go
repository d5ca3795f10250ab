package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// ErrStyleguideNotFound is returned by DeleteStyleguide for an unknown ID
var ErrStyleguideNotFound = errors.New("styleguide not found")

// DefaultListLimit caps ListStyleguides when no limit is given
const DefaultListLimit = 50

// MaxListLimit is the largest page ListStyleguides returns
const MaxListLimit = 200

// StyleguideInput is everything persisted for one generated styleguide
type StyleguideInput struct {
	ID        uuid.UUID
	Domain    string
	SourceURL string
	Artifact  *types.StyleguideArtifact
	Report    *types.QualityReport
	Document  string
}

// Styleguide is a stored styleguide without its document text
type Styleguide struct {
	ID        uuid.UUID                `json:"id"`
	Domain    string                   `json:"domain"`
	SourceURL string                   `json:"source_url,omitempty"`
	Artifact  types.StyleguideArtifact `json:"artifact"`
	Report    *types.QualityReport     `json:"quality_report,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
}

// StyleguideSummary is the listing view
type StyleguideSummary struct {
	ID           uuid.UUID `json:"id"`
	Domain       string    `json:"domain"`
	QualityScore int       `json:"quality_score"`
	Version      string    `json:"version"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// StyleguideFilters holds optional filters for listing styleguides
type StyleguideFilters struct {
	Domain string
	Limit  int
}

// HTMLStorageKey is the key under which a styleguide's document is stored
func HTMLStorageKey(id uuid.UUID) string {
	return fmt.Sprintf("styleguides/%s.html", id)
}
