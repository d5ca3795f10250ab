package sections

import (
	"fmt"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/colors"
	"github.com/jonathan/brand-styleguide/internal/types"
)

func brandOverview(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	primary := ts.Colors.Primary["400"]
	fg := onColor(ts, primary)
	tagline := "Design tokens and component patterns extracted from the live site."
	if a != nil && a.Tagline != "" {
		tagline = a.Tagline
	}
	css := fmt.Sprintf(`.%[1]s-overview { display: grid; gap: %[2]s; padding: %[3]s; border-radius: %[4]s; }
.%[1]s-overview-name { font-family: %[5]s; font-size: %[6]s; margin: 0; }
.%[1]s-overview-tagline { font-family: %[7]s; font-size: %[8]s; margin: 0; }`,
		ts.Prefix, ts.Spacing["sm"], ts.Spacing["xl"], ts.Radius["lg"],
		ts.Typography.HeadingFont, ts.Typography.Sizes["h1"].Size,
		ts.Typography.BodyFont, ts.Typography.Sizes["body-lg"].Size)

	demo := fmt.Sprintf(`<div class="%s" style="background:%s;color:%s">
<p class="%s" style="font-weight:%d">%s</p>
<p class="%s">%s</p>
</div>`,
		c(ts, "overview"), primary, fg,
		c(ts, "overview-name"), ts.Typography.Sizes["h1"].Weight, esc(brandName(a)),
		c(ts, "overview-tagline"), esc(tagline))

	return render(1, ts, block{
		Rationale: "The brand at a glance: name, primary color and the heading and body typefaces working together.",
		CSS:       css,
		Demo:      demo,
		Tip:       "Use this block as the cover of any brand handoff so the primary color and type pairing are seen first.",
	})
}

func colorPalette(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-palette { display: flex; flex-wrap: wrap; gap: %[2]s; }
.%[1]s-swatch { width: 160px; border-radius: %[3]s; overflow: hidden; box-shadow: %[4]s; }
.%[1]s-swatch-chip { height: 96px; }
.%[1]s-swatch-label { padding: %[5]s; font-family: %[6]s; font-size: %[7]s; }`,
		ts.Prefix, ts.Spacing["md"], ts.Radius["md"], ts.Shadows["sm"],
		ts.Spacing["sm"], ts.Typography.BodyFont, ts.Typography.Sizes["small"].Size)

	var demo strings.Builder
	fmt.Fprintf(&demo, "<div class=\"%s\">\n", c(ts, "palette"))
	for _, s := range namedScales(ts) {
		hex := s.Scale["400"]
		if s.Name == "gray" {
			hex = s.Scale["700"]
		}
		fmt.Fprintf(&demo, `<div class="%s"><div class="%s" style="background:%s"></div><div class="%s"><strong>%s</strong><br>%s</div></div>
`, c(ts, "swatch"), c(ts, "swatch-chip"), hex, c(ts, "swatch-label"), s.Name, hex)
	}
	demo.WriteString("</div>")

	warning := ""
	if ts.Colors.Secondary == nil {
		warning = "No secondary color was found on the site. Lean on the gray scale for supporting surfaces instead of inventing one."
	}
	return render(2, ts, block{
		Rationale: "Core brand colors ranked by how strongly the site uses them: backgrounds, buttons and CSS variables weigh more than incidental text.",
		CSS:       css,
		Demo:      demo.String(),
		Warning:   warning,
	})
}

func colorScales(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-scale { display: grid; grid-template-columns: repeat(10, 1fr); border-radius: %[2]s; overflow: hidden; margin-bottom: %[3]s; }
.%[1]s-scale-step { padding: %[4]s %[5]s; font-family: %[6]s; font-size: %[7]s; }`,
		ts.Prefix, ts.Radius["md"], ts.Spacing["md"], ts.Spacing["md"], ts.Spacing["xs"],
		ts.Typography.BodyFont, ts.Typography.Sizes["small"].Size)

	var demo strings.Builder
	for _, s := range namedScales(ts) {
		if s.Name == "gray" {
			continue
		}
		fmt.Fprintf(&demo, "<div class=\"%s\" title=\"%s\">\n", c(ts, "scale"), s.Name)
		for _, step := range types.ScaleSteps {
			hex := s.Scale[step]
			fmt.Fprintf(&demo, "<div class=\"%s\" style=\"background:%s;color:%s\">%s<br>%s</div>\n",
				c(ts, "scale-step"), hex, onColor(ts, hex), step, hex)
		}
		demo.WriteString("</div>\n")
	}

	return render(3, ts, block{
		Rationale: "Each brand color expands into ten steps. Step 400 is the exact extracted color; lighter steps lose saturation and darker steps gain it.",
		CSS:       css,
		Demo:      demo.String(),
		Tip:       "Use 50 to 100 for tinted backgrounds, 400 for primary actions and 700 to 900 for text on light tints.",
	})
}

func semanticColors(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	sem := ts.Colors.Semantic
	roles := []struct{ name, hex string }{
		{"success", sem.Success},
		{"error", sem.Error},
		{"warning", sem.Warning},
		{"info", sem.Info},
	}
	css := fmt.Sprintf(`.%[1]s-semantic { display: grid; grid-template-columns: repeat(4, 1fr); gap: %[2]s; }
.%[1]s-semantic-item { padding: %[3]s; border-radius: %[4]s; font-family: %[5]s; }`,
		ts.Prefix, ts.Spacing["md"], ts.Spacing["md"], ts.Radius["md"], ts.Typography.BodyFont)

	var demo strings.Builder
	fmt.Fprintf(&demo, "<div class=\"%s\">\n", c(ts, "semantic"))
	for _, r := range roles {
		fmt.Fprintf(&demo, "<div class=\"%s\" style=\"background:%s;color:%s\"><strong>%s</strong><br>%s</div>\n",
			c(ts, "semantic-item"), r.hex, onColor(ts, r.hex), r.name, r.hex)
	}
	demo.WriteString("</div>")

	return render(4, ts, block{
		Rationale: "Status colors stay clear of the brand hue so a success message never looks like a brand accent.",
		CSS:       css,
		Demo:      demo.String(),
		Warning:   "Never use the error color for decoration. Users learn to read it as a failure signal.",
	})
}

func neutralGrays(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-gray-row { display: flex; border-radius: %[2]s; overflow: hidden; }
.%[1]s-gray-step { flex: 1; padding: %[3]s %[4]s; font-family: %[5]s; font-size: %[6]s; }`,
		ts.Prefix, ts.Radius["md"], ts.Spacing["lg"], ts.Spacing["xs"],
		ts.Typography.BodyFont, ts.Typography.Sizes["small"].Size)

	var demo strings.Builder
	fmt.Fprintf(&demo, "<div class=\"%s\">\n", c(ts, "gray-row"))
	for _, step := range types.ScaleSteps {
		hex := ts.Colors.Gray[step]
		fmt.Fprintf(&demo, "<div class=\"%s\" style=\"background:%s;color:%s\">%s</div>\n",
			c(ts, "gray-step"), hex, onColor(ts, hex), step)
	}
	demo.WriteString("</div>")

	return render(5, ts, block{
		Rationale: "Grays carry a faint tint of the brand hue so neutral surfaces feel related to the palette without reading as color.",
		CSS:       css,
		Demo:      demo.String(),
	})
}

func typography(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	ty := ts.Typography
	css := fmt.Sprintf(`.%[1]s-font-pair { display: grid; grid-template-columns: 1fr 1fr; gap: %[2]s; }
.%[1]s-font-heading { font-family: %[3]s; }
.%[1]s-font-body { font-family: %[4]s; }
.%[1]s-font-sample { font-size: %[5]s; margin: 0 0 %[6]s; }`,
		ts.Prefix, ts.Spacing["xl"], ty.HeadingFont, ty.BodyFont, ty.Sizes["h2"].Size, ts.Spacing["sm"])

	demo := fmt.Sprintf(`<div class="%s">
<div class="%s"><p class="%s">Aa Bb Cc</p><p>Heading: %s</p></div>
<div class="%s"><p class="%s">Aa Bb Cc</p><p>Body: %s</p></div>
</div>`,
		c(ts, "font-pair"),
		c(ts, "font-heading"), c(ts, "font-sample"), esc(ty.HeadingFont),
		c(ts, "font-body"), c(ts, "font-sample"), esc(ty.BodyFont))

	tip := "Load both families from the web-font stylesheet linked in the document head."
	if ty.GoogleFonts == "" {
		tip = "No web-font stylesheet was found; the fallback stacks render with system fonts."
	}
	return render(6, ts, block{
		Rationale: "Heading and body typefaces as the site declares them, with fallback stacks for when web fonts fail to load.",
		CSS:       css,
		Demo:      demo,
		Tip:       tip,
	})
}

func typeScale(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	ty := ts.Typography
	var css strings.Builder
	var demo strings.Builder
	for _, level := range types.TypeLevels {
		s := ty.Sizes[level]
		font := ty.BodyFont
		if level == "display" || strings.HasPrefix(level, "h") {
			font = ty.HeadingFont
		}
		fmt.Fprintf(&css, ".%s-type-%s { font-family: %s; font-size: %s; line-height: %s; font-weight: %d; letter-spacing: %s; margin: 0 0 %s; }\n",
			ts.Prefix, level, font, s.Size, s.LineHeight, s.Weight, s.LetterSpacing, ts.Spacing["sm"])

		tag := "p"
		if strings.HasPrefix(level, "h") {
			tag = level
		}
		fmt.Fprintf(&demo, "<%s class=\"%s\">%s %s / %s</%s>\n", tag, c(ts, "type-"+level), level, s.Size, s.LineHeight, tag)
	}

	return render(7, ts, block{
		Rationale: "Ten levels from display to small. Sizes come from the site where it declares them; weights and line heights stay on a tuned default ramp.",
		CSS:       css.String(),
		Demo:      demo.String(),
		Tip:       "Skip at most one level between adjacent headings to keep the hierarchy readable.",
	})
}

func spacingScale(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-space-row { display: flex; align-items: center; gap: %[2]s; margin-bottom: %[3]s; font-family: %[4]s; }
.%[1]s-space-bar { height: 16px; background: %[5]s; border-radius: %[6]s; }`,
		ts.Prefix, ts.Spacing["md"], ts.Spacing["xs"], ts.Typography.BodyFont,
		ts.Colors.Primary["300"], ts.Radius["sm"])

	var demo strings.Builder
	for _, step := range types.SpacingSteps {
		v := ts.Spacing[step]
		fmt.Fprintf(&demo, "<div class=\"%s\"><code>%s</code><div class=\"%s\" style=\"width:%s\"></div><span>%s</span></div>\n",
			c(ts, "space-row"), step, c(ts, "space-bar"), v, v)
	}

	return render(8, ts, block{
		Rationale: "Every spacing step is a multiple of one base unit derived from the site's own section padding.",
		CSS:       css,
		Demo:      demo.String(),
	})
}

func borderRadius(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-radius-grid { display: flex; flex-wrap: wrap; gap: %[2]s; }
.%[1]s-radius-box { width: 96px; height: 96px; display: flex; align-items: flex-end; padding: %[3]s; font-family: %[4]s; font-size: %[5]s; }`,
		ts.Prefix, ts.Spacing["md"], ts.Spacing["xs"], ts.Typography.BodyFont, ts.Typography.Sizes["small"].Size)

	bg := ts.Colors.Primary["100"]
	var demo strings.Builder
	fmt.Fprintf(&demo, "<div class=\"%s\">\n", c(ts, "radius-grid"))
	for _, step := range types.RadiusSteps {
		fmt.Fprintf(&demo, "<div class=\"%s\" style=\"border-radius:%s;background:%s;color:%s\">%s</div>\n",
			c(ts, "radius-box"), ts.Radius[step], bg, onColor(ts, bg), step)
	}
	demo.WriteString("</div>")

	return render(9, ts, block{
		Rationale: "Corner rounding follows the site's button radius: sharp, balanced or rounded.",
		CSS:       css,
		Demo:      demo.String(),
		Tip:       "Pair md with buttons and inputs, lg with cards, and full only with pills and avatars.",
	})
}

func shadows(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-shadow-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: %[2]s; }
.%[1]s-shadow-card { padding: %[3]s; border-radius: %[4]s; background: %[5]s; font-family: %[6]s; }`,
		ts.Prefix, ts.Spacing["lg"], ts.Spacing["lg"], ts.Radius["md"], ts.Colors.Gray["50"], ts.Typography.BodyFont)

	var demo strings.Builder
	fmt.Fprintf(&demo, "<div class=\"%s\">\n", c(ts, "shadow-grid"))
	for _, name := range types.ShadowNames {
		fmt.Fprintf(&demo, "<div class=\"%s\" style=\"box-shadow:%s\">%s</div>\n", c(ts, "shadow-card"), ts.Shadows[name], name)
	}
	demo.WriteString("</div>")

	return render(10, ts, block{
		Rationale: "Elevation steps for layered surfaces, plus brand-tinted shadows for primary actions and a focus ring for errors.",
		CSS:       css,
		Demo:      demo.String(),
	})
}

func colorContrast(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-contrast-table { width: 100%%; border-collapse: collapse; font-family: %[2]s; }
.%[1]s-contrast-table td { padding: %[3]s; border-bottom: 1px solid %[4]s; }
.%[1]s-contrast-pass { color: %[5]s; font-weight: 600; }
.%[1]s-contrast-fail { color: %[6]s; font-weight: 600; }`,
		ts.Prefix, ts.Typography.BodyFont, ts.Spacing["sm"], ts.Colors.Gray["200"],
		ts.Colors.Semantic.Success, ts.Colors.Semantic.Error)

	pairs := []struct{ label, fg, bg string }{
		{"Primary on light", ts.Colors.Primary["400"], ts.Colors.Gray["50"]},
		{"Primary 700 on light", ts.Colors.Primary["700"], ts.Colors.Gray["50"]},
		{"Light on primary", ts.Colors.Gray["50"], ts.Colors.Primary["400"]},
		{"Body text on light", ts.Colors.Gray["900"], ts.Colors.Gray["50"]},
		{"Muted text on light", ts.Colors.Gray["500"], ts.Colors.Gray["50"]},
	}

	var demo strings.Builder
	failures := 0
	fmt.Fprintf(&demo, "<table class=\"%s\">\n", c(ts, "contrast-table"))
	for _, p := range pairs {
		ratio := colors.ContrastRatio(p.fg, p.bg)
		verdict, cls := "AA", "contrast-pass"
		if ratio < 4.5 {
			verdict, cls = "Large text only", "contrast-fail"
			failures++
		}
		fmt.Fprintf(&demo, "<tr><td style=\"background:%s;color:%s\">%s</td><td>%.2f:1</td><td class=\"%s\">%s</td></tr>\n",
			p.bg, p.fg, p.label, ratio, c(ts, cls), verdict)
	}
	demo.WriteString("</table>")

	warning := ""
	if failures > 0 {
		warning = fmt.Sprintf("%d pairing(s) fall below the 4.5:1 ratio for body text. Use them for large headings or decoration only.", failures)
	}
	return render(11, ts, block{
		Rationale: "Contrast ratios for the pairings the site relies on most, checked against the WCAG AA threshold.",
		CSS:       css,
		Demo:      demo.String(),
		Warning:   warning,
	})
}
