package types

// ColorScale maps scale steps ("50".."900") to hex colors
type ColorScale map[string]string

// ScaleSteps lists the color scale steps in lightest-to-darkest order
var ScaleSteps = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// SemanticColors holds role colors chosen to stay distinct from the brand hue
type SemanticColors struct {
	Success string `json:"success"`
	Error   string `json:"error"`
	Warning string `json:"warning"`
	Info    string `json:"info"`
	Fixed   string `json:"fixed"`
}

// TokenColors holds the generated color scales. Secondary and Accent are nil
// when the brand analysis has no such color.
type TokenColors struct {
	Primary   ColorScale     `json:"primary"`
	Secondary ColorScale     `json:"secondary,omitempty"`
	Accent    ColorScale     `json:"accent,omitempty"`
	Gray      ColorScale     `json:"gray"`
	Semantic  SemanticColors `json:"semantic"`
}

// TypeSize is one level of the typography scale
type TypeSize struct {
	Size          string `json:"size"`
	LineHeight    string `json:"line_height"`
	Weight        int    `json:"weight"`
	LetterSpacing string `json:"letter_spacing"`
}

// TokenTypography holds font stacks, the web-font URL and the size table
type TokenTypography struct {
	HeadingFont string              `json:"heading_font"`
	BodyFont    string              `json:"body_font"`
	GoogleFonts string              `json:"google_fonts_url,omitempty"`
	Sizes       map[string]TypeSize `json:"sizes"`
}

// DesignTokenSet is the synthesized design-token output
type DesignTokenSet struct {
	Prefix      string            `json:"prefix"`
	Colors      TokenColors       `json:"colors"`
	Typography  TokenTypography   `json:"typography"`
	Spacing     map[string]string `json:"spacing"`
	Radius      map[string]string `json:"radius"`
	Shadows     map[string]string `json:"shadows"`
	Transitions map[string]string `json:"transitions"`
	Containers  map[string]string `json:"containers"`
	ZIndex      map[string]int    `json:"z_index"`
}

// Token step names in order
var (
	TypeLevels      = []string{"display", "h1", "h2", "h3", "h4", "h5", "h6", "body-lg", "body", "small"}
	SpacingSteps    = []string{"xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl"}
	RadiusSteps     = []string{"none", "sm", "md", "lg", "xl", "full"}
	ShadowNames     = []string{"none", "sm", "md", "lg", "xl", "colored", "colored-lg", "error"}
	TransitionNames = []string{"fast", "base", "slow"}
	ContainerNames  = []string{"sm", "md", "lg", "xl", "2xl"}
	ZIndexNames     = []string{"base", "dropdown", "sticky", "overlay", "modal", "toast"}
)
