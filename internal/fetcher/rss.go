package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aidaily/ai-daily/internal/domain"
	"github.com/aidaily/ai-daily/internal/sources"
	"github.com/mmcdole/gofeed"
)

// RSSFetcher pulls candidates from a source's feed URL.
type RSSFetcher struct {
	parser *gofeed.Parser
	now    func() time.Time
}

func NewRSSFetcher(client *http.Client) *RSSFetcher {
	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = DefaultUserAgent
	return &RSSFetcher{
		parser: parser,
		now:    time.Now,
	}
}

func (f *RSSFetcher) Name() string {
	return "rss"
}

func (f *RSSFetcher) Fetch(ctx context.Context, src sources.Source) ([]domain.Article, error) {
	if src.RSSURL == "" {
		return nil, nil
	}

	feed, err := f.parser.ParseURLWithContext(src.RSSURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", src.Name, err)
	}

	now := f.now()
	articles := make([]domain.Article, 0, MaxPerSource)
	for _, item := range feed.Items {
		if len(articles) >= MaxPerSource {
			break
		}

		publishedAt := now
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
			if now.Sub(publishedAt) > MaxArticleAge {
				continue
			}
		}

		article := domain.Article{
			Title:       cleanText(item.Title),
			Summary:     cleanText(item.Description),
			URL:         item.Link,
			Source:      src.Name,
			PublishedAt: publishedAt,
			Tags:        itemTags(item),
			Category:    src.Category,
		}
		if article.Title == "" || article.URL == "" {
			continue
		}
		if item.Image != nil {
			article.CoverImage = item.Image.URL
		}

		articles = append(articles, article)
	}

	return articles, nil
}

func itemTags(item *gofeed.Item) []string {
	tags := make([]string, 0, len(item.Categories))
	for _, c := range item.Categories {
		c = strings.TrimSpace(c)
		if c != "" {
			tags = append(tags, c)
		}
	}
	return tags
}

// cleanText strips markup and collapses whitespace in feed text.
func cleanText(text string) string {
	var b strings.Builder
	inTag := false
	for _, r := range text {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
