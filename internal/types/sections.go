package types

// SectionCategory groups sections in the navigation
type SectionCategory string

// Section categories
const (
	CategoryFoundation SectionCategory = "foundation"
	CategoryExtension  SectionCategory = "extension"
	CategorySiteWide   SectionCategory = "site-wide"
	CategoryReference  SectionCategory = "reference"
)

// RenderedSection is one generated fragment of the styleguide document.
// Sections are replaced wholesale on regeneration, never edited.
type RenderedSection struct {
	ID         int             `json:"id"`
	Anchor     string          `json:"anchor"`
	Title      string          `json:"title"`
	Category   SectionCategory `json:"category"`
	HTML       string          `json:"html"`
	ClassNames []string        `json:"class_names"`
}
