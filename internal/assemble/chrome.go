package assemble

import (
	"fmt"

	"github.com/jonathan/brand-styleguide/internal/types"
)

// chromeCSS is the page layout in the sg- namespace. Component styles live
// inside each section.
func chromeCSS(ts *types.DesignTokenSet) string {
	gray := ts.Colors.Gray
	return fmt.Sprintf(`*, *::before, *::after { box-sizing: border-box; }
.sg-body { margin: 0; background: %[1]s; color: %[2]s; font-family: %[3]s; line-height: 1.6; }
.sg-header { padding: 48px 32px 24px; border-bottom: 4px solid %[4]s; }
.sg-brand { font-family: %[5]s; font-size: 2.5rem; margin: 0; }
.sg-meta { margin: 8px 0 0; color: %[6]s; }
.sg-nav { position: sticky; top: 0; z-index: 200; display: flex; flex-wrap: wrap; align-items: center; gap: 4px 12px; padding: 12px 32px; background: %[1]s; border-bottom: 1px solid %[7]s; font-size: 0.8125rem; }
.sg-nav-group { font-weight: 700; text-transform: uppercase; letter-spacing: 0.06em; color: %[4]s; }
.sg-nav-separator { width: 1px; height: 16px; background: %[7]s; }
.sg-nav-link { color: %[6]s; text-decoration: none; }
.sg-nav-link:hover { color: %[2]s; }
.sg-main { max-width: 1200px; margin: 0 auto; padding: 32px; }
.sg-section { padding: 48px 0; border-bottom: 1px solid %[7]s; }
.sg-section-header { display: flex; align-items: baseline; gap: 12px; }
.sg-section-number { font-family: ui-monospace, monospace; color: %[4]s; }
.sg-section-title { font-family: %[5]s; margin: 0 0 8px; }
.sg-rationale { color: %[6]s; max-width: 48em; }
.sg-demo { margin: 24px 0; padding: 24px; border: 1px solid %[7]s; border-radius: 8px; background: %[8]s; }
.sg-pending { color: %[6]s; font-style: italic; }
.sg-code { overflow-x: auto; padding: 16px; border-radius: 8px; background: %[9]s; color: %[8]s; font-size: 0.8125rem; }
.sg-tip { border-left: 3px solid %[4]s; padding-left: 12px; }
.sg-warning { border-left: 3px solid %[10]s; padding-left: 12px; }
.sg-footer { padding: 32px; color: %[6]s; font-size: 0.875rem; border-top: 1px solid %[7]s; }
`, gray["50"], gray["900"], ts.Typography.BodyFont, ts.Colors.Primary["400"], ts.Typography.HeadingFont,
		gray["600"], gray["200"], gray["100"], gray["800"], ts.Colors.Semantic.Warning)
}
