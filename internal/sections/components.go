package sections

import (
	"fmt"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/types"
)

// IconFontClass is the class the icon-font stylesheet styles
const IconFontClass = "material-symbols-outlined"

func buttons(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	primary := ts.Colors.Primary["400"]
	secondary := brandColor(ts, "secondary")
	css := fmt.Sprintf(`.%[1]s-btn { display: inline-flex; align-items: center; gap: %[2]s; padding: %[3]s %[4]s; border: 2px solid transparent; border-radius: %[5]s; font-family: %[6]s; font-weight: 600; cursor: pointer; transition: all %[7]s; }
.%[1]s-btn-primary { background: %[8]s; color: %[9]s; box-shadow: %[10]s; }
.%[1]s-btn-secondary { background: %[11]s; color: %[12]s; }
.%[1]s-btn-outline { background: transparent; color: %[8]s; border-color: %[8]s; }
.%[1]s-btn-ghost { background: transparent; color: %[13]s; }
.%[1]s-btn-sm { padding: %[14]s %[3]s; font-size: %[15]s; }
.%[1]s-btn-lg { padding: %[4]s %[16]s; font-size: %[17]s; }`,
		ts.Prefix, ts.Spacing["xs"], ts.Spacing["sm"], ts.Spacing["lg"], ts.Radius["md"],
		ts.Typography.BodyFont, ts.Transitions["fast"],
		primary, onColor(ts, primary), ts.Shadows["colored"],
		secondary, onColor(ts, secondary), ts.Colors.Primary["700"],
		ts.Spacing["xs"], ts.Typography.Sizes["small"].Size,
		ts.Spacing["xl"], ts.Typography.Sizes["body-lg"].Size)

	demo := fmt.Sprintf(`<div style="display:flex;flex-wrap:wrap;gap:%s;align-items:center">
<button class="%s">Primary action</button>
<button class="%s">Secondary</button>
<button class="%s">Outline</button>
<button class="%s">Ghost</button>
<button class="%s">Small</button>
<button class="%s">Large</button>
</div>`,
		ts.Spacing["md"],
		c(ts, "btn", "btn-primary"), c(ts, "btn", "btn-secondary"), c(ts, "btn", "btn-outline"),
		c(ts, "btn", "btn-ghost"), c(ts, "btn", "btn-primary", "btn-sm"), c(ts, "btn", "btn-primary", "btn-lg"))

	return render(13, ts, block{
		Rationale: "Button variants built from the primary scale. One primary action per view; secondary and outline variants support it.",
		CSS:       css,
		Demo:      demo,
		Tip:       "Keep button labels to a verb plus an object, for example \"Request a quote\".",
	})
}

func buttonStates(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	p := ts.Colors.Primary
	css := fmt.Sprintf(`.%[1]s-state { padding: %[2]s %[3]s; border: 0; border-radius: %[4]s; font-family: %[5]s; font-weight: 600; color: %[6]s; }
.%[1]s-state-default { background: %[7]s; }
.%[1]s-state-hover { background: %[8]s; }
.%[1]s-state-active { background: %[9]s; }
.%[1]s-state-focus { background: %[7]s; outline: 3px solid %[10]s; outline-offset: 2px; }
.%[1]s-state-disabled { background: %[11]s; color: %[12]s; cursor: not-allowed; }`,
		ts.Prefix, ts.Spacing["sm"], ts.Spacing["lg"], ts.Radius["md"], ts.Typography.BodyFont,
		onColor(ts, p["400"]), p["400"], p["500"], p["600"], p["200"],
		ts.Colors.Gray["200"], ts.Colors.Gray["500"])

	var demo strings.Builder
	fmt.Fprintf(&demo, "<div style=\"display:flex;flex-wrap:wrap;gap:%s\">\n", ts.Spacing["md"])
	for _, state := range []string{"default", "hover", "active", "focus", "disabled"} {
		fmt.Fprintf(&demo, "<button class=\"%s\">%s</button>\n", c(ts, "state", "state-"+state), state)
	}
	demo.WriteString("</div>")

	return render(14, ts, block{
		Rationale: "Interactive states step down the primary scale so hover and press feedback stays on-brand.",
		CSS:       css,
		Demo:      demo.String(),
		Warning:   "Never remove the focus outline without a visible replacement.",
	})
}

func links(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-link { color: %[2]s; text-decoration: underline; text-underline-offset: 3px; transition: color %[3]s; }
.%[1]s-link:hover { color: %[4]s; }
.%[1]s-link-muted { color: %[5]s; text-decoration: none; }`,
		ts.Prefix, ts.Colors.Primary["600"], ts.Transitions["fast"], ts.Colors.Primary["800"], ts.Colors.Gray["600"])

	demo := fmt.Sprintf(`<p style="font-family:%s">Read our <a class="%s" href="#links">service overview</a> or browse the <a class="%s" href="#links">archive</a>.</p>`,
		ts.Typography.BodyFont, c(ts, "link"), c(ts, "link-muted"))

	return render(15, ts, block{
		Rationale: "Inline links use a darker primary step so they pass contrast on light backgrounds.",
		CSS:       css,
		Demo:      demo,
	})
}

func formInputs(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-field { display: grid; gap: %[2]s; margin-bottom: %[3]s; font-family: %[4]s; }
.%[1]s-label { font-weight: 600; font-size: %[5]s; color: %[6]s; }
.%[1]s-input { padding: %[7]s %[8]s; border: 1px solid %[9]s; border-radius: %[10]s; font-family: %[4]s; font-size: %[11]s; }
.%[1]s-input:focus { outline: none; border-color: %[12]s; box-shadow: 0 0 0 3px %[13]s; }`,
		ts.Prefix, ts.Spacing["xs"], ts.Spacing["md"], ts.Typography.BodyFont,
		ts.Typography.Sizes["small"].Size, ts.Colors.Gray["800"],
		ts.Spacing["sm"], ts.Spacing["md"], ts.Colors.Gray["300"], ts.Radius["md"],
		ts.Typography.Sizes["body"].Size, ts.Colors.Primary["400"], ts.Colors.Primary["100"])

	demo := fmt.Sprintf(`<form style="max-width:%s" onsubmit="return false">
<div class="%[2]s"><label class="%[3]s" for="sg-name">Name</label><input class="%[4]s" id="sg-name" type="text" placeholder="Jane Doe"></div>
<div class="%[2]s"><label class="%[3]s" for="sg-email">Email</label><input class="%[4]s" id="sg-email" type="email" placeholder="jane@example.com"></div>
<div class="%[2]s"><label class="%[3]s" for="sg-msg">Message</label><textarea class="%[4]s" id="sg-msg" rows="3"></textarea></div>
</form>`,
		ts.Containers["sm"], c(ts, "field"), c(ts, "label"), c(ts, "input"))

	return render(16, ts, block{
		Rationale: "Inputs share the button radius and use the primary color only for focus.",
		CSS:       css,
		Demo:      demo,
		Tip:       "Always pair an input with a visible label. Placeholders disappear as soon as the user types.",
	})
}

func formValidation(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	sem := ts.Colors.Semantic
	css := fmt.Sprintf(`.%[1]s-input-error { border-color: %[2]s; box-shadow: %[3]s; }
.%[1]s-input-success { border-color: %[4]s; }
.%[1]s-help { font-size: %[5]s; margin: 0; }
.%[1]s-help-error { color: %[2]s; }
.%[1]s-help-success { color: %[4]s; }`,
		ts.Prefix, sem.Error, ts.Shadows["error"], sem.Success, ts.Typography.Sizes["small"].Size)

	demo := fmt.Sprintf(`<div class="%[1]s"><label class="%[2]s" for="sg-phone">Phone</label><input class="%[3]s" id="sg-phone" type="tel" value="12-34"><p class="%[4]s">Enter a full phone number.</p></div>
<div class="%[1]s"><label class="%[2]s" for="sg-zip">Postcode</label><input class="%[5]s" id="sg-zip" type="text" value="1234 AB"><p class="%[6]s">Looks good.</p></div>`,
		c(ts, "field"), c(ts, "label"), c(ts, "input", "input-error"), c(ts, "help", "help-error"),
		c(ts, "input", "input-success"), c(ts, "help", "help-success"))

	return render(17, ts, block{
		Rationale: "Validation feedback uses the semantic colors, never the brand color, so errors are unmistakable.",
		CSS:       css,
		Demo:      demo,
		Warning:   "Color alone must not carry the message. Always include helper text.",
	})
}

func cards(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-card-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: %[2]s; }
.%[1]s-card { background: %[3]s; border-radius: %[4]s; box-shadow: %[5]s; overflow: hidden; font-family: %[6]s; transition: box-shadow %[7]s; }
.%[1]s-card:hover { box-shadow: %[8]s; }
.%[1]s-card-media { height: 120px; background: linear-gradient(135deg, %[9]s, %[10]s); }
.%[1]s-card-body { padding: %[11]s; }
.%[1]s-card-title { font-family: %[12]s; font-size: %[13]s; margin: 0 0 %[14]s; }`,
		ts.Prefix, ts.Spacing["lg"], ts.Colors.Gray["50"], ts.Radius["lg"], ts.Shadows["md"],
		ts.Typography.BodyFont, ts.Transitions["base"], ts.Shadows["lg"],
		ts.Colors.Primary["200"], ts.Colors.Primary["500"], ts.Spacing["lg"],
		ts.Typography.HeadingFont, ts.Typography.Sizes["h5"].Size, ts.Spacing["xs"])

	var demo strings.Builder
	fmt.Fprintf(&demo, "<div class=\"%s\">\n", c(ts, "card-grid"))
	for _, title := range []string{"Service", "Project", "Insight"} {
		fmt.Fprintf(&demo, `<article class="%s"><div class="%s"></div><div class="%s"><p class="%s">%s</p><p>Supporting copy in the body face, two lines at most.</p><a class="%s" href="#cards">Learn more</a></div></article>
`, c(ts, "card"), c(ts, "card-media"), c(ts, "card-body"), c(ts, "card-title"), title, c(ts, "link"))
	}
	demo.WriteString("</div>")

	return render(18, ts, block{
		Rationale: "Cards group one idea each: media, a short title, supporting copy and a single link.",
		CSS:       css,
		Demo:      demo.String(),
	})
}

func badges(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	sem := ts.Colors.Semantic
	css := fmt.Sprintf(`.%[1]s-badge { display: inline-block; padding: 2px %[2]s; border-radius: %[3]s; font-family: %[4]s; font-size: %[5]s; font-weight: 600; }
.%[1]s-badge-primary { background: %[6]s; color: %[7]s; }
.%[1]s-badge-success { background: %[8]s; color: %[9]s; }
.%[1]s-badge-warning { background: %[10]s; color: %[11]s; }
.%[1]s-badge-neutral { background: %[12]s; color: %[13]s; }`,
		ts.Prefix, ts.Spacing["sm"], ts.Radius["full"], ts.Typography.BodyFont, ts.Typography.Sizes["small"].Size,
		ts.Colors.Primary["100"], ts.Colors.Primary["800"],
		sem.Success, onColor(ts, sem.Success), sem.Warning, onColor(ts, sem.Warning),
		ts.Colors.Gray["100"], ts.Colors.Gray["700"])

	demo := fmt.Sprintf(`<div style="display:flex;gap:%s">
<span class="%s">New</span>
<span class="%s">Available</span>
<span class="%s">Limited</span>
<span class="%s">Archived</span>
</div>`, ts.Spacing["sm"],
		c(ts, "badge", "badge-primary"), c(ts, "badge", "badge-success"),
		c(ts, "badge", "badge-warning"), c(ts, "badge", "badge-neutral"))

	return render(19, ts, block{
		Rationale: "Badges label status and category in one or two words.",
		CSS:       css,
		Demo:      demo,
	})
}

func alerts(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	sem := ts.Colors.Semantic
	css := fmt.Sprintf(`.%[1]s-alert { padding: %[2]s %[3]s; border-left: 4px solid; border-radius: %[4]s; margin-bottom: %[5]s; font-family: %[6]s; background: %[7]s; }
.%[1]s-alert-info { border-color: %[8]s; }
.%[1]s-alert-success { border-color: %[9]s; }
.%[1]s-alert-warning { border-color: %[10]s; }
.%[1]s-alert-error { border-color: %[11]s; }`,
		ts.Prefix, ts.Spacing["sm"], ts.Spacing["md"], ts.Radius["sm"], ts.Spacing["sm"],
		ts.Typography.BodyFont, ts.Colors.Gray["50"], sem.Info, sem.Success, sem.Warning, sem.Error)

	var demo strings.Builder
	for _, kind := range []struct{ name, text string }{
		{"info", "Your quote request has been received."},
		{"success", "Appointment confirmed for Monday."},
		{"warning", "Some fields still need attention."},
		{"error", "We could not send your message. Try again."},
	} {
		fmt.Fprintf(&demo, "<div class=\"%s\" role=\"alert\"><strong>%s:</strong> %s</div>\n",
			c(ts, "alert", "alert-"+kind.name), strings.ToUpper(kind.name[:1])+kind.name[1:], kind.text)
	}

	return render(20, ts, block{
		Rationale: "Alerts keep a neutral surface and signal severity through the border color and the leading word.",
		CSS:       css,
		Demo:      demo.String(),
	})
}

func tables(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-table { width: 100%%; border-collapse: collapse; font-family: %[2]s; }
.%[1]s-table th { text-align: left; padding: %[3]s; background: %[4]s; color: %[5]s; }
.%[1]s-table td { padding: %[3]s; border-bottom: 1px solid %[6]s; }
.%[1]s-table-striped tr:nth-child(even) td { background: %[7]s; }`,
		ts.Prefix, ts.Typography.BodyFont, ts.Spacing["sm"], ts.Colors.Primary["50"], ts.Colors.Primary["800"],
		ts.Colors.Gray["200"], ts.Colors.Gray["50"])

	demo := fmt.Sprintf(`<table class="%s">
<thead><tr><th>Package</th><th>Turnaround</th><th>Price</th></tr></thead>
<tbody>
<tr><td>Basic</td><td>5 days</td><td>€ 450</td></tr>
<tr><td>Standard</td><td>3 days</td><td>€ 750</td></tr>
<tr><td>Premium</td><td>1 day</td><td>€ 1,200</td></tr>
</tbody>
</table>`, c(ts, "table", "table-striped"))

	return render(21, ts, block{
		Rationale: "Tables use a tinted header from the primary scale and quiet row dividers.",
		CSS:       css,
		Demo:      demo,
	})
}

func lists(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-list { list-style: none; padding: 0; margin: 0; font-family: %[2]s; }
.%[1]s-list li { padding: %[3]s 0 %[3]s %[4]s; position: relative; }
.%[1]s-list li::before { content: ""; position: absolute; left: 0; top: 50%%; width: 8px; height: 8px; border-radius: %[5]s; background: %[6]s; transform: translateY(-50%%); }
.%[1]s-list-numbered { padding-left: %[4]s; font-family: %[2]s; }`,
		ts.Prefix, ts.Typography.BodyFont, ts.Spacing["xs"], ts.Spacing["lg"], ts.Radius["full"], ts.Colors.Primary["400"])

	demo := fmt.Sprintf(`<ul class="%s"><li>Free inspection on site</li><li>Fixed price, no surprises</li><li>Ten year guarantee</li></ul>
<ol class="%s"><li>Request a quote</li><li>Plan the visit</li><li>Enjoy the result</li></ol>`,
		c(ts, "list"), c(ts, "list-numbered"))

	return render(22, ts, block{
		Rationale: "Bulleted lists use a brand-colored dot; numbered lists keep the default counters for steps.",
		CSS:       css,
		Demo:      demo,
	})
}

func progress(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-progress { height: 8px; border-radius: %[2]s; background: %[3]s; overflow: hidden; margin-bottom: %[4]s; }
.%[1]s-progress-bar { height: 100%%; background: %[5]s; transition: width %[6]s; }
.%[1]s-steps { display: flex; gap: %[4]s; font-family: %[7]s; }
.%[1]s-step { padding: %[8]s %[4]s; border-radius: %[2]s; background: %[3]s; }
.%[1]s-step-current { background: %[5]s; color: %[9]s; }`,
		ts.Prefix, ts.Radius["full"], ts.Colors.Gray["200"], ts.Spacing["sm"], ts.Colors.Primary["400"],
		ts.Transitions["slow"], ts.Typography.BodyFont, ts.Spacing["xs"], onColor(ts, ts.Colors.Primary["400"]))

	demo := fmt.Sprintf(`<div class="%s"><div class="%s" style="width:35%%"></div></div>
<div class="%s"><div class="%s" style="width:70%%"></div></div>
<div class="%s"><span class="%s">1 Details</span><span class="%s">2 Planning</span><span class="%s">3 Confirm</span></div>`,
		c(ts, "progress"), c(ts, "progress-bar"), c(ts, "progress"), c(ts, "progress-bar"),
		c(ts, "steps"), c(ts, "step"), c(ts, "step", "step-current"), c(ts, "step"))

	return render(27, ts, block{
		Rationale: "Progress bars and step indicators show where the user is in a multi-step flow.",
		CSS:       css,
		Demo:      demo,
	})
}

func avatars(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-avatar { display: inline-flex; align-items: center; justify-content: center; width: 48px; height: 48px; border-radius: %[2]s; font-family: %[3]s; font-weight: 700; }
.%[1]s-avatar-sm { width: 32px; height: 32px; font-size: %[4]s; }
.%[1]s-avatar-lg { width: 64px; height: 64px; font-size: %[5]s; }`,
		ts.Prefix, ts.Radius["full"], ts.Typography.HeadingFont, ts.Typography.Sizes["small"].Size, ts.Typography.Sizes["h5"].Size)

	var demo strings.Builder
	fmt.Fprintf(&demo, "<div style=\"display:flex;gap:%s;align-items:center\">\n", ts.Spacing["sm"])
	for i, av := range []struct{ size, initials string }{{"avatar-sm", "AB"}, {"avatar", "CD"}, {"avatar-lg", "EF"}} {
		bg := ts.Colors.Primary[types.ScaleSteps[3+i*2]]
		cls := c(ts, "avatar")
		if av.size != "avatar" {
			cls = c(ts, "avatar", av.size)
		}
		fmt.Fprintf(&demo, "<span class=\"%s\" style=\"background:%s;color:%s\">%s</span>\n", cls, bg, onColor(ts, bg), av.initials)
	}
	demo.WriteString("</div>")

	return render(28, ts, block{
		Rationale: "Initials on a primary tint stand in for portraits until real photos are available.",
		CSS:       css,
		Demo:      demo.String(),
	})
}

func iconography(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-icon-grid { display: flex; flex-wrap: wrap; gap: %[2]s; }
.%[1]s-icon { display: inline-flex; align-items: center; justify-content: center; width: 56px; height: 56px; border-radius: %[3]s; background: %[4]s; color: %[5]s; }`,
		ts.Prefix, ts.Spacing["md"], ts.Radius["md"], ts.Colors.Primary["50"], ts.Colors.Primary["600"])

	var demo strings.Builder
	fmt.Fprintf(&demo, "<div class=\"%s\">\n", c(ts, "icon-grid"))
	for _, name := range []string{"home", "call", "mail", "schedule", "check_circle", "star"} {
		fmt.Fprintf(&demo, "<span class=\"%s\"><span class=\"%s\">%s</span></span>\n", c(ts, "icon"), IconFontClass, name)
	}
	demo.WriteString("</div>")

	return render(29, ts, block{
		Rationale: "Outlined icons in a soft primary container. One icon style across the whole site.",
		CSS:       css,
		Demo:      demo.String(),
		Tip:       "Icons support labels; they do not replace them.",
	})
}
