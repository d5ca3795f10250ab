package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-styleguide/internal/colors"
	"github.com/jonathan/brand-styleguide/internal/types"
)

func sampleAnalysis() *types.BrandAnalysis {
	return &types.BrandAnalysis{
		BrandName: "B&M Dak-Totaal",
		Domain:    "bm-dak.nl",
		Colors: types.BrandColors{
			Primary:   "#E85D04",
			Secondary: "#1D3557",
			Accent:    "#2A9D8F",
		},
		Typography: types.BrandTypography{
			Heading:       types.FontSpec{Family: "Playfair Display", Fallback: "serif", Weights: []int{700}},
			Body:          types.FontSpec{Family: "Open Sans", Fallback: "sans-serif", Weights: []int{600, 400}},
			Sizes:         map[string]string{"h1": "3.5rem", "body": "17px"},
			LetterSpacing: map[string]string{"h1": "-0.03em"},
		},
		Spacing: types.BrandSpacing{SectionPadding: "96px"},
		Shapes:  types.BrandShapes{ButtonRadius: "14px"},
	}
}

func minimalAnalysis() *types.BrandAnalysis {
	return &types.BrandAnalysis{
		BrandName: "Resultaatmakers",
		Colors:    types.BrandColors{Primary: "#6EB544"},
	}
}

func TestBuild_FullAnalysis(t *testing.T) {
	ts := Build(sampleAnalysis())

	assert.Equal(t, "bmdt", ts.Prefix)
	assert.Equal(t, "#E85D04", ts.Colors.Primary["400"])
	require.NotNil(t, ts.Colors.Secondary)
	assert.Equal(t, "#1D3557", ts.Colors.Secondary["400"])
	require.NotNil(t, ts.Colors.Accent)
	assert.Equal(t, "#2A9D8F", ts.Colors.Accent["400"])
	assert.Len(t, ts.Colors.Gray, 10)

	assert.Len(t, ts.Spacing, len(types.SpacingSteps))
	assert.Len(t, ts.Radius, len(types.RadiusSteps))
	assert.Len(t, ts.Shadows, len(types.ShadowNames))
	assert.Len(t, ts.Transitions, len(types.TransitionNames))
	assert.Len(t, ts.Containers, len(types.ContainerNames))
	assert.Len(t, ts.ZIndex, len(types.ZIndexNames))
	assert.Len(t, ts.Typography.Sizes, len(types.TypeLevels))

	assert.Equal(t, RadiusTables[RadiusRounded]["md"], ts.Radius["md"])
}

func TestBuild_OmitsAbsentScales(t *testing.T) {
	ts := Build(minimalAnalysis())

	assert.Equal(t, "res", ts.Prefix)
	assert.Nil(t, ts.Colors.Secondary)
	assert.Nil(t, ts.Colors.Accent)
	assert.Equal(t, colors.SuccessTeal, ts.Colors.Semantic.Success)
}

func TestBuild_NilAnalysisUsesDefaults(t *testing.T) {
	ts := Build(nil)
	assert.Equal(t, DefaultPrefix, ts.Prefix)
	assert.Equal(t, colors.DefaultPrimary, ts.Colors.Primary["400"])
	assert.Contains(t, ts.Typography.HeadingFont, "Inter")
}

func TestBuild_Typography(t *testing.T) {
	tt := Build(sampleAnalysis()).Typography

	assert.Equal(t, "'Playfair Display', Georgia, 'Times New Roman', serif", tt.HeadingFont)
	assert.True(t, strings.HasPrefix(tt.BodyFont, "'Open Sans', "))

	assert.Equal(t, "3.5rem", tt.Sizes["h1"].Size)
	assert.Equal(t, "-0.03em", tt.Sizes["h1"].LetterSpacing)
	assert.Equal(t, DefaultTypeScale["h1"].Weight, tt.Sizes["h1"].Weight)
	assert.Equal(t, DefaultTypeScale["h1"].LineHeight, tt.Sizes["h1"].LineHeight)
	assert.Equal(t, "17px", tt.Sizes["body"].Size)
	assert.Equal(t, DefaultTypeScale["h2"], tt.Sizes["h2"])

	assert.Equal(t,
		"https://fonts.googleapis.com/css2?family=Playfair+Display:wght@700&family=Open+Sans:wght@400;600&display=swap",
		tt.GoogleFonts)
}

func TestClassifyRadius(t *testing.T) {
	tests := []struct {
		in   string
		want RadiusStyle
	}{
		{"0", RadiusBalanced},
		{"0px", RadiusSharp},
		{"3px", RadiusSharp},
		{"4px", RadiusBalanced},
		{"11px", RadiusBalanced},
		{"12px", RadiusRounded},
		{"1rem", RadiusRounded},
		{"", RadiusBalanced},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRadius(tt.in))
		})
	}
}

func TestBuildSpacing(t *testing.T) {
	t.Run("anchored to section padding", func(t *testing.T) {
		sp := BuildSpacing("96px")
		assert.Equal(t, "6px", sp["xs"])
		assert.Equal(t, "12px", sp["sm"])
		assert.Equal(t, "144px", sp["4xl"])
	})

	t.Run("base unit floored at four", func(t *testing.T) {
		sp := BuildSpacing("32px")
		assert.Equal(t, "4px", sp["xs"])
		assert.Equal(t, "96px", sp["4xl"])
	})

	t.Run("unparseable padding uses the floor", func(t *testing.T) {
		assert.Equal(t, "4px", BuildSpacing("auto")["xs"])
	})
}

func TestBuildShadows_ColoredUsesBrandHue(t *testing.T) {
	sh := Build(&types.BrandAnalysis{Colors: types.BrandColors{Primary: "#FF0000"}}).Shadows

	assert.Equal(t, "0 4px 14px hsla(0, 30%, 40%, 0.25)", sh["colored"])
	assert.Contains(t, sh["colored-lg"], "hsla(0, 30%")
	assert.Equal(t, "none", sh["none"])
	assert.Contains(t, sh["error"], "239, 68, 68")
}

func TestGoogleFontsURL(t *testing.T) {
	same := types.FontSpec{Family: "Inter"}
	assert.Equal(t,
		"https://fonts.googleapis.com/css2?family=Inter:wght@400;700&display=swap",
		GoogleFontsURL(same, same))
	assert.Empty(t, GoogleFontsURL())
}
