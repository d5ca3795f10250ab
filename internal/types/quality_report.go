package types

// TagBalance counts opening and closing container tags
type TagBalance struct {
	Open     int  `json:"open"`
	Close    int  `json:"close"`
	Balanced bool `json:"balanced"`
}

// SectionCount compares sections found in a document against the expected count
type SectionCount struct {
	Found    int `json:"found"`
	Expected int `json:"expected"`
}

// StructuralChecks are document well-formedness checks
type StructuralChecks struct {
	TagBalance    TagBalance   `json:"tag_balance"`
	SectionCount  SectionCount `json:"section_count"`
	FileSizeBytes int          `json:"file_size_bytes"`
	LineCount     int          `json:"line_count"`
	EmptySections []string     `json:"empty_sections"`
}

// ContentChecks are brand/token consistency checks
type ContentChecks struct {
	UniqueClasses       int  `json:"unique_classes"`
	PrefixConsistent    bool `json:"prefix_consistent"`
	BrandNamePresent    bool `json:"brand_name_present"`
	PrimaryColorPresent bool `json:"primary_color_present"`
}

// VisualChecks are presence checks for demonstration content
type VisualChecks struct {
	ColorSwatches       bool `json:"color_swatches"`
	Buttons             bool `json:"buttons"`
	Cards               bool `json:"cards"`
	TypographyHierarchy bool `json:"typography_hierarchy"`
	CodeBlocks          bool `json:"code_blocks"`
	NavigationLinks     bool `json:"navigation_links"`
}

// QualityReport is derived from scratch from a document's text
type QualityReport struct {
	Structural StructuralChecks `json:"structural"`
	Content    ContentChecks    `json:"content"`
	Visual     VisualChecks     `json:"visual"`
	Score      int              `json:"score"`
	Issues     []string         `json:"issues"`
}
