package domain

import (
	"time"
)

// Article is a candidate news item produced by a fetcher, before scoring.
type Article struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	CoverImage  string    `json:"coverImage,omitempty"`
	Tags        []string  `json:"tags"`
	Category    Category  `json:"category"`
}

// Identity returns the deduplication key. Two articles with the same
// title from the same source are the same story.
func (a Article) Identity() string {
	return a.Title + "\x00" + a.Source
}

// ScoredArticle carries the importance assigned by the scorer. It only
// exists between scoring and assembly, never persisted on its own.
type ScoredArticle struct {
	Article
	Importance int `json:"importance"`
}
