package pipeline

import (
	"sort"

	"github.com/aidaily/ai-daily/internal/domain"
)

// Dedup collapses articles sharing a (title, source) identity and
// returns the survivors sorted by descending publish time.
//
// When the same identity appears more than once the most recent
// occurrence wins; the reference kept insertion order, most-recent-wins
// is the deliberate choice here.
func Dedup(articles []domain.Article) []domain.Article {
	byIdentity := make(map[string]int, len(articles))
	unique := make([]domain.Article, 0, len(articles))

	for _, article := range articles {
		key := article.Identity()
		if idx, seen := byIdentity[key]; seen {
			if article.PublishedAt.After(unique[idx].PublishedAt) {
				unique[idx] = article
			}
			continue
		}
		byIdentity[key] = len(unique)
		unique = append(unique, article)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].PublishedAt.After(unique[j].PublishedAt)
	})

	return unique
}
