package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/aidaily/ai-daily/internal/domain"
	"github.com/aidaily/ai-daily/internal/sources"
)

// headlineSelectors are tried in order against a source's search page.
// Search pages are not a stable API, so this stays best-effort.
var headlineSelectors = []string{
	"article h2 a",
	"article h3 a",
	"h2 a",
	"h3 a",
}

// SearchFetcher scrapes a source's search-result page when no feed is
// available or the feed came back empty.
type SearchFetcher struct {
	client *http.Client
	now    func() time.Time
}

func NewSearchFetcher(client *http.Client) *SearchFetcher {
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	return &SearchFetcher{client: client, now: time.Now}
}

func (f *SearchFetcher) Name() string {
	return "search"
}

func (f *SearchFetcher) Fetch(ctx context.Context, src sources.Source) ([]domain.Article, error) {
	if src.SearchURL == "" {
		return nil, nil
	}

	doc, err := f.fetchDocument(ctx, src.SearchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape %s: %w", src.Name, err)
	}

	now := f.now()
	seen := map[string]struct{}{}
	articles := make([]domain.Article, 0, MaxPerSource)

	for _, selector := range headlineSelectors {
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			title := strings.Join(strings.Fields(sel.Text()), " ")
			href, ok := sel.Attr("href")
			if title == "" || !ok {
				return true
			}

			link := resolveLink(src.URL, href)
			if link == "" {
				return true
			}
			if _, dup := seen[link]; dup {
				return true
			}
			seen[link] = struct{}{}

			articles = append(articles, domain.Article{
				Title:       title,
				Summary:     "",
				URL:         link,
				Source:      src.Name,
				PublishedAt: now,
				Tags:        nil,
				Category:    src.Category,
			})
			return len(articles) < MaxPerSource
		})
		if len(articles) > 0 {
			break
		}
	}

	return articles, nil
}

func (f *SearchFetcher) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search page returned %s", resp.Status)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

func resolveLink(base, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if u.IsAbs() {
		return u.String()
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return b.ResolveReference(u).String()
}
