package extraction

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageInfo is what a markup probe can tell about a page without scanning CSS
type PageInfo struct {
	Title          string
	SiteName       string
	Description    string
	InlineStyles   []string
	StylesheetURLs []string
	FontURLs       []string
}

// ProbePage parses HTML and collects the title, site name, description,
// inline <style> bodies and linked stylesheet URLs.
func ProbePage(html string) (*PageInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{Message: "failed to parse HTML", Cause: err}
	}

	info := &PageInfo{
		Title: strings.TrimSpace(doc.Find("head title").First().Text()),
	}
	if info.Title == "" {
		info.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if v, ok := doc.Find(`meta[property="og:site_name"]`).First().Attr("content"); ok {
		info.SiteName = strings.TrimSpace(v)
	}
	if v, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		info.Description = strings.TrimSpace(v)
	} else if v, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
		info.Description = strings.TrimSpace(v)
	}

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		if css := strings.TrimSpace(s.Text()); css != "" {
			info.InlineStyles = append(info.InlineStyles, css)
		}
	})

	seen := make(map[string]bool)
	doc.Find("link[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		rel := strings.ToLower(s.AttrOr("rel", ""))
		as := strings.ToLower(s.AttrOr("as", ""))
		if href == "" || seen[href] {
			return
		}
		isSheet := strings.Contains(rel, "stylesheet") || (strings.Contains(rel, "preload") && as == "style")
		if !isSheet {
			return
		}
		seen[href] = true
		if isWebFontURL(href) {
			info.FontURLs = append(info.FontURLs, href)
			return
		}
		info.StylesheetURLs = append(info.StylesheetURLs, href)
	})

	return info, nil
}

// BestTitle prefers the declared site name over the document title
func (p *PageInfo) BestTitle() string {
	if p == nil {
		return ""
	}
	if p.SiteName != "" {
		return p.SiteName
	}
	return p.Title
}

func isWebFontURL(href string) bool {
	lower := strings.ToLower(href)
	for _, host := range WebFontHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}
