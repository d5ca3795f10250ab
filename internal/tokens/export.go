package tokens

import (
	"fmt"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/types"
)

// ToCSSVariables renders the token set as a :root block of custom properties
// named --{prefix}-{group}-{step}.
func ToCSSVariables(ts *types.DesignTokenSet) string {
	if ts == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(":root {\n")
	decl := func(name, value string) {
		fmt.Fprintf(&b, "  --%s-%s: %s;\n", ts.Prefix, name, value)
	}

	scales := []struct {
		name  string
		scale types.ColorScale
	}{
		{"primary", ts.Colors.Primary},
		{"secondary", ts.Colors.Secondary},
		{"accent", ts.Colors.Accent},
		{"gray", ts.Colors.Gray},
	}
	for _, s := range scales {
		if s.scale == nil {
			continue
		}
		for _, step := range types.ScaleSteps {
			decl(s.name+"-"+step, s.scale[step])
		}
	}
	sem := ts.Colors.Semantic
	decl("success", sem.Success)
	decl("error", sem.Error)
	decl("warning", sem.Warning)
	decl("info", sem.Info)
	decl("fixed", sem.Fixed)

	decl("font-heading", ts.Typography.HeadingFont)
	decl("font-body", ts.Typography.BodyFont)
	for _, level := range types.TypeLevels {
		size, ok := ts.Typography.Sizes[level]
		if !ok {
			continue
		}
		decl("text-"+level, size.Size)
		decl("leading-"+level, size.LineHeight)
		decl("weight-"+level, fmt.Sprint(size.Weight))
		decl("tracking-"+level, size.LetterSpacing)
	}

	ordered := func(group string, names []string, values map[string]string) {
		for _, n := range names {
			if v, ok := values[n]; ok {
				decl(group+"-"+n, v)
			}
		}
	}
	ordered("space", types.SpacingSteps, ts.Spacing)
	ordered("radius", types.RadiusSteps, ts.Radius)
	ordered("shadow", types.ShadowNames, ts.Shadows)
	ordered("transition", types.TransitionNames, ts.Transitions)
	ordered("container", types.ContainerNames, ts.Containers)
	for _, n := range types.ZIndexNames {
		if v, ok := ts.ZIndex[n]; ok {
			decl("z-"+n, fmt.Sprint(v))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// Flatten reduces the token set to the small color/font map used by simple renderers.
// Secondary and accent fall back to primary when the brand has none.
func Flatten(ts *types.DesignTokenSet) map[string]string {
	if ts == nil {
		return nil
	}
	primary := ts.Colors.Primary["400"]
	out := map[string]string{
		"primary":      primary,
		"secondary":    primary,
		"accent":       primary,
		"background":   ts.Colors.Gray["50"],
		"text":         ts.Colors.Gray["900"],
		"heading_font": ts.Typography.HeadingFont,
		"body_font":    ts.Typography.BodyFont,
	}
	if ts.Colors.Secondary != nil {
		out["secondary"] = ts.Colors.Secondary["400"]
	}
	if ts.Colors.Accent != nil {
		out["accent"] = ts.Colors.Accent["400"]
	}
	return out
}
