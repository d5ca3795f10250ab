package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the visible text length below which a plain HTTP
// fetch is assumed to have missed a script-built page.
const MinContentLength = 500

// DefaultBrowserTimeout bounds a single headless render.
const DefaultBrowserTimeout = 30 * time.Second

// collectSheetsJS reads every CSSOM rule the page ended up with, including
// rules injected at runtime. Cross-origin sheets throw on cssRules and are skipped.
const collectSheetsJS = `Array.from(document.styleSheets).map(function (s) {
  try { return Array.from(s.cssRules).map(function (r) { return r.cssText; }).join("\n"); }
  catch (e) { return ""; }
}).filter(Boolean).join("\n")`

// Rendered is a page as seen after scripts ran.
type Rendered struct {
	HTML string
	CSS  string
}

// ShouldUseBrowser reports whether the visible text is too short to trust.
func ShouldUseBrowser(visibleText string) bool {
	return len(strings.TrimSpace(visibleText)) < MinContentLength
}

// WithBrowser renders a page in headless Chrome and returns the final
// markup plus the text of every readable stylesheet in the CSSOM.
// Requires Chrome/Chromium on the host.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (*Rendered, error) {
	if timeout <= 0 {
		timeout = DefaultBrowserTimeout
	}
	if verbose {
		log.Printf("[BROWSER] Rendering %s", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(DefaultUserAgent),
			chromedp.WindowSize(1440, 900),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	out := &Rendered{}
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &out.HTML),
		chromedp.Evaluate(collectSheetsJS, &out.CSS),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered %d bytes of markup, %d bytes of CSSOM", len(out.HTML), len(out.CSS))
	}
	return out, nil
}
