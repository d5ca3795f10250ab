package sections

import (
	"fmt"
	"strings"

	"github.com/jonathan/brand-styleguide/internal/types"
)

func navigation(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	primary := ts.Colors.Primary["400"]
	css := fmt.Sprintf(`.%[1]s-navbar { display: flex; align-items: center; justify-content: space-between; padding: %[2]s %[3]s; background: %[4]s; box-shadow: %[5]s; border-radius: %[6]s; font-family: %[7]s; }
.%[1]s-navbar-brand { font-family: %[8]s; font-weight: 700; color: %[9]s; text-decoration: none; }
.%[1]s-navbar-links { display: flex; gap: %[3]s; list-style: none; margin: 0; padding: 0; }
.%[1]s-navbar-link { color: %[10]s; text-decoration: none; }
.%[1]s-navbar-link-active { color: %[9]s; font-weight: 600; }`,
		ts.Prefix, ts.Spacing["sm"], ts.Spacing["lg"], ts.Colors.Gray["50"], ts.Shadows["sm"], ts.Radius["md"],
		ts.Typography.BodyFont, ts.Typography.HeadingFont, primary, ts.Colors.Gray["700"])

	demo := fmt.Sprintf(`<nav class="%[1]s">
<a class="%[2]s" href="#navigation">%[3]s</a>
<ul class="%[4]s">
<li><a class="%[5]s" href="#navigation">Home</a></li>
<li><a class="%[6]s" href="#navigation">Services</a></li>
<li><a class="%[6]s" href="#navigation">Projects</a></li>
<li><a class="%[6]s" href="#navigation">Contact</a></li>
</ul>
<a class="%[7]s" href="#navigation">Get a quote</a>
</nav>`,
		c(ts, "navbar"), c(ts, "navbar-brand"), esc(brandName(a)), c(ts, "navbar-links"),
		c(ts, "navbar-link", "navbar-link-active"), c(ts, "navbar-link"), c(ts, "btn", "btn-primary", "btn-sm"))

	return render(31, ts, block{
		Rationale: "A light top bar: brand name left, four to six links, and one primary action on the right.",
		CSS:       css,
		Demo:      demo,
	})
}

func hero(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	p := ts.Colors.Primary
	fg := onColor(ts, p["700"])
	headline := "Built for " + brandName(a)
	if a != nil && a.Tagline != "" {
		headline = a.Tagline
	}
	css := fmt.Sprintf(`.%[1]s-hero { padding: %[2]s %[3]s; border-radius: %[4]s; background: linear-gradient(135deg, %[5]s, %[6]s); color: %[7]s; }
.%[1]s-hero-title { font-family: %[8]s; font-size: %[9]s; line-height: %[10]s; margin: 0 0 %[11]s; }
.%[1]s-hero-lead { font-family: %[12]s; font-size: %[13]s; max-width: 40em; margin: 0 0 %[3]s; }`,
		ts.Prefix, ts.Spacing["3xl"], ts.Spacing["xl"], ts.Radius["lg"], p["700"], p["500"], fg,
		ts.Typography.HeadingFont, ts.Typography.Sizes["display"].Size, ts.Typography.Sizes["display"].LineHeight,
		ts.Spacing["md"], ts.Typography.BodyFont, ts.Typography.Sizes["body-lg"].Size)

	demo := fmt.Sprintf(`<div class="%s">
<p class="%s">%s</p>
<p class="%s">A short supporting sentence that explains the offer in plain words.</p>
<a class="%s" href="#hero">Start today</a>
</div>`,
		c(ts, "hero"), c(ts, "hero-title"), esc(headline), c(ts, "hero-lead"), c(ts, "btn", "btn-secondary", "btn-lg"))

	return render(32, ts, block{
		Rationale: "The hero pairs a dark primary gradient with the display size and a single call to action.",
		CSS:       css,
		Demo:      demo,
		Tip:       "Keep the headline under ten words.",
	})
}

func featureGrid(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	css := fmt.Sprintf(`.%[1]s-features { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: %[2]s; }
.%[1]s-feature { padding: %[3]s; border-radius: %[4]s; background: %[5]s; font-family: %[6]s; }
.%[1]s-feature-title { font-family: %[7]s; font-size: %[8]s; margin: %[9]s 0; }`,
		ts.Prefix, ts.Spacing["lg"], ts.Spacing["lg"], ts.Radius["lg"], ts.Colors.Primary["50"],
		ts.Typography.BodyFont, ts.Typography.HeadingFont, ts.Typography.Sizes["h6"].Size, ts.Spacing["sm"])

	var demo strings.Builder
	fmt.Fprintf(&demo, "<div class=\"%s\">\n", c(ts, "features"))
	for _, f := range []struct{ icon, title string }{
		{"verified", "Certified work"},
		{"bolt", "Fast turnaround"},
		{"support_agent", "Personal contact"},
	} {
		fmt.Fprintf(&demo, "<div class=\"%s\"><span class=\"%s\"><span class=\"%s\">%s</span></span><p class=\"%s\">%s</p><p>One sentence on why this matters to the customer.</p></div>\n",
			c(ts, "feature"), c(ts, "icon"), IconFontClass, f.icon, c(ts, "feature-title"), f.title)
	}
	demo.WriteString("</div>")

	return render(33, ts, block{
		Rationale: "Three or four benefits, each with an icon, a short title and a single supporting sentence.",
		CSS:       css,
		Demo:      demo.String(),
	})
}

func callToAction(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	bg := brandColor(ts, "accent")
	css := fmt.Sprintf(`.%[1]s-cta { display: flex; flex-wrap: wrap; align-items: center; justify-content: space-between; gap: %[2]s; padding: %[3]s; border-radius: %[4]s; background: %[5]s; color: %[6]s; font-family: %[7]s; }
.%[1]s-cta-title { font-family: %[8]s; font-size: %[9]s; margin: 0; }`,
		ts.Prefix, ts.Spacing["md"], ts.Spacing["xl"], ts.Radius["lg"], bg, onColor(ts, bg),
		ts.Typography.BodyFont, ts.Typography.HeadingFont, ts.Typography.Sizes["h3"].Size)

	demo := fmt.Sprintf(`<div class="%s"><p class="%s">Ready to get started with %s?</p><a class="%s" href="#call-to-action">Contact us</a></div>`,
		c(ts, "cta"), c(ts, "cta-title"), esc(brandName(a)), c(ts, "btn", "btn-primary", "btn-lg"))

	return render(36, ts, block{
		Rationale: "A closing banner that repeats the primary action on an accent surface.",
		CSS:       css,
		Demo:      demo,
	})
}

func siteFooter(ts *types.DesignTokenSet, a *types.BrandAnalysis) types.RenderedSection {
	bg := ts.Colors.Gray["900"]
	css := fmt.Sprintf(`.%[1]s-site-footer { display: grid; grid-template-columns: 2fr 1fr 1fr; gap: %[2]s; padding: %[3]s; border-radius: %[4]s; background: %[5]s; color: %[6]s; font-family: %[7]s; font-size: %[8]s; }
.%[1]s-site-footer-heading { font-family: %[9]s; font-weight: 700; margin: 0 0 %[10]s; }
.%[1]s-site-footer-link { color: %[11]s; text-decoration: none; display: block; }`,
		ts.Prefix, ts.Spacing["lg"], ts.Spacing["xl"], ts.Radius["md"], bg, ts.Colors.Gray["200"],
		ts.Typography.BodyFont, ts.Typography.Sizes["small"].Size, ts.Typography.HeadingFont,
		ts.Spacing["sm"], ts.Colors.Gray["300"])

	domain := ""
	if a != nil {
		domain = a.Domain
	}
	demo := fmt.Sprintf(`<footer class="%[1]s">
<div><p class="%[2]s">%[3]s</p><p>%[4]s</p></div>
<div><p class="%[2]s">Company</p><a class="%[5]s" href="#site-footer">About</a><a class="%[5]s" href="#site-footer">Careers</a></div>
<div><p class="%[2]s">Help</p><a class="%[5]s" href="#site-footer">Contact</a><a class="%[5]s" href="#site-footer">Privacy</a></div>
</footer>`,
		c(ts, "site-footer"), c(ts, "site-footer-heading"), esc(brandName(a)), esc(domain), c(ts, "site-footer-link"))

	return render(37, ts, block{
		Rationale: "A dark footer on the deepest gray with compact link columns.",
		CSS:       css,
		Demo:      demo,
	})
}
