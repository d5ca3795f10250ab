package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonathan/brand-styleguide/internal/brand"
	"github.com/jonathan/brand-styleguide/internal/extraction"
	"github.com/jonathan/brand-styleguide/internal/sanitize"
	"github.com/jonathan/brand-styleguide/internal/types"
	"golang.org/x/sync/errgroup"
)

// MaxStylesheets is the number of linked stylesheets fetched per page.
const MaxStylesheets = 5

// RenderFunc renders a page in a browser. WithBrowser is the default.
type RenderFunc func(ctx context.Context, url string, timeout time.Duration, verbose bool) (*Rendered, error)

// SiteOptions configures CollectSite.
type SiteOptions struct {
	Fetch *Options
	// UseBrowser allows a headless render when the HTTP page looks script-built.
	UseBrowser     bool
	BrowserTimeout time.Duration
	Render         RenderFunc
	MaxStylesheets int
	Cache          Cache
	CacheTTL       time.Duration
	Verbose        bool
}

// Stylesheet is one linked sheet and how its fetch went.
type Stylesheet struct {
	URL   string
	Bytes int
	Err   string
}

// Site is everything the extractor needs from one brand URL.
type Site struct {
	URL         string
	Domain      string
	Title       string
	Platform    Platform
	Method      string
	HTML        string
	Raw         string
	Pages       []string
	Stylesheets []Stylesheet
}

// CollectSite fetches a page and up to MaxStylesheets of its linked
// stylesheets and concatenates them into one raw text. Only a failed page
// fetch is an error; failed stylesheets are logged and left out.
func CollectSite(ctx context.Context, pageURL string, opts *SiteOptions) (*Site, error) {
	if opts == nil {
		opts = &SiteOptions{}
	}
	if opts.Fetch == nil {
		opts.Fetch = DefaultOptions()
	}
	if opts.Render == nil {
		opts.Render = WithBrowser
	}
	limit := opts.MaxStylesheets
	if limit <= 0 || limit > MaxStylesheets {
		limit = MaxStylesheets
	}

	pageURL = NormalizeURL(pageURL)
	site := &Site{
		URL:    pageURL,
		Domain: brand.HostOf(pageURL),
		Method: types.ExtractionMethodRegex,
		Pages:  []string{pageURL},
	}

	html, err := opts.get(ctx, pageURL)
	if err != nil {
		if !opts.UseBrowser {
			return nil, err
		}
		log.Printf("[FETCH] HTTP fetch of %s failed, trying browser: %v", pageURL, err)
	}

	site.Platform = DetectPlatform(html)
	var runtimeCSS string
	if opts.UseBrowser && (html == "" || site.Platform.RendersClientSide() || looksEmpty(html)) {
		rendered, rerr := opts.Render(ctx, pageURL, opts.BrowserTimeout, opts.Verbose)
		switch {
		case rerr == nil:
			html = rendered.HTML
			runtimeCSS = rendered.CSS
			site.Method = types.ExtractionMethodBrowser
			if site.Platform == PlatformUnknown {
				site.Platform = DetectPlatform(html)
			}
		case html == "":
			return nil, &Error{URL: pageURL, Message: "page could not be fetched or rendered", Cause: rerr}
		default:
			log.Printf("[FETCH] Browser render of %s failed, keeping HTTP body: %v", pageURL, rerr)
		}
	}
	site.HTML = html

	info, err := extraction.ProbePage(html)
	if err != nil {
		return nil, &Error{URL: pageURL, Message: "unparseable page", Cause: err}
	}
	site.Title = info.BestTitle()

	sheetURLs := stylesheetTargets(pageURL, info.StylesheetURLs, limit)
	bodies := make([]string, len(sheetURLs))
	site.Stylesheets = make([]Stylesheet, len(sheetURLs))

	var g errgroup.Group
	for i, u := range sheetURLs {
		g.Go(func() error {
			body, ferr := opts.get(ctx, u)
			site.Stylesheets[i] = Stylesheet{URL: u, Bytes: len(body)}
			if ferr != nil {
				site.Stylesheets[i].Err = ferr.Error()
				log.Printf("[FETCH] Skipping stylesheet %s: %v", u, ferr)
				return nil
			}
			bodies[i] = body
			return nil
		})
	}
	_ = g.Wait()

	var raw strings.Builder
	raw.WriteString(html)
	for _, body := range bodies {
		if strings.TrimSpace(body) == "" {
			continue
		}
		raw.WriteString("\n<style>\n")
		raw.WriteString(body)
		raw.WriteString("\n</style>")
	}
	if strings.TrimSpace(runtimeCSS) != "" {
		raw.WriteString("\n<style>\n")
		raw.WriteString(runtimeCSS)
		raw.WriteString("\n</style>")
	}
	site.Raw = raw.String()

	if opts.Verbose {
		ok := 0
		for _, s := range site.Stylesheets {
			if s.Err == "" {
				ok++
			}
		}
		log.Printf("[FETCH] %s: %d bytes markup, %d/%d stylesheets, method=%s, platform=%s",
			site.Domain, len(html), ok, len(site.Stylesheets), site.Method, site.Platform)
	}
	return site, nil
}

// get fetches a body through the cache when one is configured.
// Cache errors degrade to a plain fetch.
func (o *SiteOptions) get(ctx context.Context, u string) (string, error) {
	if o.Cache != nil {
		if body, ok, err := o.Cache.Get(ctx, u); err == nil && ok {
			return body, nil
		} else if err != nil && o.Verbose {
			log.Printf("[FETCH] cache read failed for %s: %v", u, err)
		}
	}
	res, err := URL(ctx, u, o.Fetch)
	if err != nil {
		return "", err
	}
	if o.Cache != nil {
		if err := o.Cache.Set(ctx, u, res.HTML, o.CacheTTL); err != nil && o.Verbose {
			log.Printf("[FETCH] cache write failed for %s: %v", u, err)
		}
	}
	return res.HTML, nil
}

// stylesheetTargets resolves hrefs, drops plugin sheets and keeps the first n.
func stylesheetTargets(base string, hrefs []string, n int) []string {
	var out []string
	seen := make(map[string]bool)
	for _, href := range hrefs {
		abs := Resolve(base, href)
		if abs == "" || seen[abs] || isPluginSheet(abs) {
			continue
		}
		seen[abs] = true
		out = append(out, abs)
		if len(out) == n {
			break
		}
	}
	return out
}

func isPluginSheet(u string) bool {
	lower := strings.ToLower(u)
	for _, marker := range sanitize.PluginStyleMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func looksEmpty(html string) bool {
	text, err := VisibleText(html)
	if err != nil {
		return true
	}
	return ShouldUseBrowser(text)
}

// String summarizes the collection for logs.
func (s *Site) String() string {
	return fmt.Sprintf("%s (%s, %d stylesheets)", s.Domain, s.Method, len(s.Stylesheets))
}
