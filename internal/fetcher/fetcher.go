package fetcher

import (
	"context"
	"net/http"
	"time"

	"github.com/aidaily/ai-daily/internal/domain"
	"github.com/aidaily/ai-daily/internal/sources"
)

const (
	// DefaultTimeout bounds one source fetch end to end.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent identifies the crawler to upstream sites.
	DefaultUserAgent = "Mozilla/5.0 (compatible; AI-Daily-Bot/1.0)"

	// MaxPerSource caps how many candidates one source may contribute
	// to a single run.
	MaxPerSource = 3

	// MaxArticleAge drops stale feed items before they ever reach the
	// scorer.
	MaxArticleAge = 7 * 24 * time.Hour
)

// Fetcher produces candidate articles for one registry source. A failing
// source returns an error; callers treat that as zero articles and move on.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, src sources.Source) ([]domain.Article, error)
}

// NewHTTPClient returns the client shared by the network-backed fetchers.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Chain tries each fetcher in order and returns the first non-empty
// result. The original system preferred RSS and fell back to scraping
// the source's search page.
type Chain struct {
	fetchers []Fetcher
}

func NewChain(fetchers ...Fetcher) *Chain {
	return &Chain{fetchers: fetchers}
}

func (c *Chain) Name() string {
	return "chain"
}

func (c *Chain) Fetch(ctx context.Context, src sources.Source) ([]domain.Article, error) {
	var lastErr error
	for _, f := range c.fetchers {
		articles, err := f.Fetch(ctx, src)
		if err != nil {
			lastErr = err
			continue
		}
		if len(articles) > 0 {
			return articles, nil
		}
	}
	return nil, lastErr
}
