package pipeline

import (
	"sort"
	"time"

	"github.com/aidaily/ai-daily/internal/domain"
)

const (
	// MaxItems bounds how many entries one brief carries.
	MaxItems = 8

	// DefaultHeadline is used when no headline generator supplied one.
	DefaultHeadline = "AI领域每日新闻头条"
)

// Assemble packages scored articles into the brief for date. The sort
// is stable: equal importance preserves the incoming recency order.
// An empty candidate list still yields a valid brief.
func Assemble(date string, scored []domain.ScoredArticle, headline string, now time.Time) domain.Brief {
	if headline == "" {
		headline = DefaultHeadline
	}

	ranked := make([]domain.ScoredArticle, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance > ranked[j].Importance
	})

	if len(ranked) > MaxItems {
		ranked = ranked[:MaxItems]
	}

	items := make([]domain.BriefItem, 0, len(ranked))
	for _, sa := range ranked {
		items = append(items, domain.BriefItem{
			Title:      sa.Title,
			Type:       MapCategory(sa.Category),
			Summary:    sa.Summary,
			Importance: sa.Importance,
			Tags:       sa.Tags,
			Sources:    []domain.SourceRef{{Name: sa.Source, URL: sa.URL}},
			CoverImage: sa.CoverImage,
			Time:       sa.PublishedAt,
		})
	}

	return domain.Brief{
		Date:        date,
		Headline:    headline,
		GeneratedAt: now,
		Items:       items,
	}
}
