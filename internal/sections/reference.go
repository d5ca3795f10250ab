package sections

import (
	"fmt"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/tokens"
	"github.com/jonathan/brand-styleguide/internal/types"
)

func cssVariables(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := tokens.ToCSSVariables(ts) + fmt.Sprintf(`.%[1]s-var-table { width: 100%%; border-collapse: collapse; font-family: %[2]s; font-size: %[3]s; }
.%[1]s-var-table td { padding: %[4]s; border-bottom: 1px solid %[5]s; }
.%[1]s-var-chip { display: inline-block; width: 24px; height: 24px; border-radius: %[6]s; vertical-align: middle; }`,
		ts.Prefix, ts.Typography.BodyFont, ts.Typography.Sizes["small"].Size, ts.Spacing["xs"],
		ts.Colors.Gray["200"], ts.Radius["sm"])

	var demo strings.Builder
	fmt.Fprintf(&demo, "<table class=\"%s\">\n", c(ts, "var-table"))
	for _, s := range namedScales(ts) {
		for _, step := range []string{"100", "400", "700"} {
			fmt.Fprintf(&demo, "<tr><td><span class=\"%s\" style=\"background:var(--%s-%s-%s)\"></span></td><td><code>--%s-%s-%s</code></td><td>%s</td></tr>\n",
				c(ts, "var-chip"), ts.Prefix, s.Name, step, ts.Prefix, s.Name, step, s.Scale[step])
		}
	}
	demo.WriteString("</table>")

	return render(41, ts, block{
		Rationale: "Every token as a CSS custom property under the brand prefix. Paste the :root block into any stylesheet.",
		CSS:       css,
		Demo:      demo.String(),
		Tip:       "Reference variables instead of hex values so a palette change is a one-line edit.",
	})
}

func utilityClasses(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	var css strings.Builder
	for _, step := range types.SpacingSteps {
		fmt.Fprintf(&css, ".%s-p-%s { padding: %s; }\n", ts.Prefix, step, ts.Spacing[step])
		fmt.Fprintf(&css, ".%s-gap-%s { gap: %s; }\n", ts.Prefix, step, ts.Spacing[step])
	}
	for _, s := range namedScales(ts) {
		hex := s.Scale["400"]
		fmt.Fprintf(&css, ".%s-text-%s { color: %s; }\n", ts.Prefix, s.Name, hex)
		fmt.Fprintf(&css, ".%s-bg-%s { background-color: %s; }\n", ts.Prefix, s.Name, hex)
	}
	for _, step := range types.RadiusSteps {
		fmt.Fprintf(&css, ".%s-rounded-%s { border-radius: %s; }\n", ts.Prefix, step, ts.Radius[step])
	}
	for _, name := range []string{"sm", "md", "lg"} {
		fmt.Fprintf(&css, ".%s-elevate-%s { box-shadow: %s; }\n", ts.Prefix, name, ts.Shadows[name])
	}

	bg := ts.Colors.Primary["400"]
	demo := fmt.Sprintf(`<div class="%s" style="display:flex;flex-wrap:wrap">
<div class="%s" style="color:%s">bg-primary p-md rounded-md</div>
<div class="%s">p-lg rounded-lg elevate-md</div>
<div class="%s">text-primary p-sm</div>
</div>`,
		c(ts, "gap-md"),
		c(ts, "bg-primary", "p-md", "rounded-md"), onColor(ts, bg),
		c(ts, "p-lg", "rounded-lg", "elevate-md"),
		c(ts, "text-primary", "p-sm"))

	return render(42, ts, block{
		Rationale: "Single-purpose classes for spacing, color, radius and elevation, generated straight from the token scales.",
		CSS:       css.String(),
		Demo:      demo,
	})
}

func breakpoints(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	var css strings.Builder
	fmt.Fprintf(&css, ".%s-container { width: 100%%; margin: 0 auto; padding: 0 %s; }\n", ts.Prefix, ts.Spacing["md"])
	for _, name := range types.ContainerNames {
		fmt.Fprintf(&css, "@media (min-width: %s) { .%s-container { max-width: %s; } }\n", ts.Containers[name], ts.Prefix, ts.Containers[name])
	}
	fmt.Fprintf(&css, ".%s-bp-bar { height: 24px; margin-bottom: %s; border-radius: %s; background: %s; font-family: %s; font-size: %s; padding-left: %s; }\n",
		ts.Prefix, ts.Spacing["xs"], ts.Radius["sm"], ts.Colors.Primary["100"], ts.Typography.BodyFont,
		ts.Typography.Sizes["small"].Size, ts.Spacing["xs"])

	var demo strings.Builder
	for i, name := range types.ContainerNames {
		width := 40 + i*15
		fmt.Fprintf(&demo, "<div class=\"%s\" style=\"width:%d%%;color:%s\">%s: %s</div>\n",
			c(ts, "bp-bar"), width, onColor(ts, ts.Colors.Primary["100"]), name, ts.Containers[name])
	}

	return render(43, ts, block{
		Rationale: "Container widths double as breakpoints, so layouts snap at the same points the content column grows.",
		CSS:       css.String(),
		Demo:      demo.String(),
	})
}

func zIndexScale(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-layers { position: relative; height: 220px; }
.%[1]s-layer { position: absolute; width: 180px; padding: %[2]s; border-radius: %[3]s; box-shadow: %[4]s; font-family: %[5]s; font-size: %[6]s; }`,
		ts.Prefix, ts.Spacing["sm"], ts.Radius["md"], ts.Shadows["md"], ts.Typography.BodyFont, ts.Typography.Sizes["small"].Size)

	var demo strings.Builder
	fmt.Fprintf(&demo, "<div class=\"%s\">\n", c(ts, "layers"))
	for i, name := range types.ZIndexNames {
		bg := ts.Colors.Primary[types.ScaleSteps[i+1]]
		fmt.Fprintf(&demo, "<div class=\"%s\" style=\"left:%dpx;top:%dpx;z-index:%d;background:%s;color:%s\">%s (%d)</div>\n",
			c(ts, "layer"), i*48, i*28, ts.ZIndex[name], bg, onColor(ts, bg), name, ts.ZIndex[name])
	}
	demo.WriteString("</div>")

	return render(44, ts, block{
		Rationale: "Named stacking tiers in steps of one hundred, leaving room for local adjustments inside each tier.",
		CSS:       css,
		Demo:      demo.String(),
		Warning:   "Do not invent z-index values outside these tiers.",
	})
}

func motion(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	var css strings.Builder
	fmt.Fprintf(&css, ".%s-motion-box { display: inline-block; margin-right: %s; padding: %s; border-radius: %s; background: %s; color: %s; font-family: %s; }\n",
		ts.Prefix, ts.Spacing["md"], ts.Spacing["md"], ts.Radius["md"], ts.Colors.Primary["400"],
		onColor(ts, ts.Colors.Primary["400"]), ts.Typography.BodyFont)
	for _, name := range types.TransitionNames {
		fmt.Fprintf(&css, ".%s-motion-%s { transition: transform %s; }\n.%s-motion-%s:hover { transform: translateY(-4px); }\n",
			ts.Prefix, name, ts.Transitions[name], ts.Prefix, name)
	}
	fmt.Fprintf(&css, "@media (prefers-reduced-motion: reduce) { .%s-motion-box { transition: none; } }\n", ts.Prefix)

	var demo strings.Builder
	for _, name := range types.TransitionNames {
		fmt.Fprintf(&demo, "<div class=\"%s\">%s: %s</div>\n", c(ts, "motion-box", "motion-"+name), name, ts.Transitions[name])
	}

	return render(45, ts, block{
		Rationale: "Three durations cover every interaction: fast for hover, base for reveals and slow for page-level changes.",
		CSS:       css.String(),
		Demo:      demo.String(),
		Tip:       "Hover the boxes to compare durations.",
	})
}

func accessibility(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	primary := ts.Colors.Primary["400"]
	css := fmt.Sprintf(`.%[1]s-skip-link { position: absolute; left: -9999px; padding: %[2]s %[3]s; background: %[4]s; color: %[5]s; border-radius: %[6]s; }
.%[1]s-skip-link:focus { position: static; }
.%[1]s-focus-ring:focus-visible { outline: 3px solid %[7]s; outline-offset: 2px; }
.%[1]s-sr-only { position: absolute; width: 1px; height: 1px; overflow: hidden; clip: rect(0, 0, 0, 0); white-space: nowrap; }`,
		ts.Prefix, ts.Spacing["xs"], ts.Spacing["sm"], primary, onColor(ts, primary), ts.Radius["sm"], ts.Colors.Primary["200"])

	demo := fmt.Sprintf(`<a class="%s" href="#accessibility">Skip to content</a>
<button class="%s">Tab to me</button>
<p style="font-family:%s">Icon buttons carry hidden labels: <button class="%s"><span class="%s">search</span><span class="%s">Search</span></button></p>`,
		c(ts, "skip-link"), c(ts, "btn", "btn-outline", "focus-ring"), ts.Typography.BodyFont,
		c(ts, "btn", "btn-ghost", "focus-ring"), IconFontClass, c(ts, "sr-only"))

	return render(46, ts, block{
		Rationale: "Focus rings, skip links and screen-reader labels built from the same tokens as everything else.",
		CSS:       css,
		Demo:      demo,
		Warning:   "Check every new color pairing against the contrast table before shipping.",
	})
}
