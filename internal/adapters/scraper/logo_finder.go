package scraper

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/luxehub/luxehub/internal/domain"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// LogoFinder discovers a better logo for a brand by scraping its homepage.
// Resolution failures never surface: the finder walks the documented
// fallback chain and always answers with a usable lookup URL.
type LogoFinder struct {
	client *http.Client
}

func NewLogoFinder() *LogoFinder {
	return &LogoFinder{client: &http.Client{Timeout: 10 * time.Second}}
}

// Resolve returns the best logo URL it can for the brand: a scraped
// og:image or touch icon, else the favicon service keyed by domain, else a
// generated placeholder keyed by name.
func (f *LogoFinder) Resolve(ctx context.Context, b domain.Brand) string {
	if scraped := f.scrape(ctx, b.URL); scraped != "" {
		return scraped
	}
	if u, err := url.Parse(b.URL); err == nil && u.Hostname() != "" {
		return "https://www.google.com/s2/favicons?sz=128&domain=" + u.Hostname()
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(b.Name)
}

func (f *LogoFinder) scrape(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("url", pageURL).Msg("logo scrape fetch failed")
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	base := resp.Request.URL
	if v, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok {
		if abs := absolutize(base, v); abs != "" {
			return abs
		}
	}
	for _, sel := range []string{`link[rel="apple-touch-icon"]`, `link[rel="icon"]`, `link[rel="shortcut icon"]`} {
		if v, ok := doc.Find(sel).Attr("href"); ok {
			if abs := absolutize(base, v); abs != "" {
				return abs
			}
		}
	}
	return ""
}

func absolutize(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		if ref.IsAbs() {
			return ref.String()
		}
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}
