package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/aidaily/ai-daily/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assembleNow = time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC)

func scored(title string, importance int, publishedAt time.Time) domain.ScoredArticle {
	return domain.ScoredArticle{
		Article: domain.Article{
			Title:       title,
			Source:      "src",
			URL:         "https://example.com/" + title,
			PublishedAt: publishedAt,
			Category:    domain.CategoryTechnology,
		},
		Importance: importance,
	}
}

func TestAssemble_EmptyInputStillValid(t *testing.T) {
	brief := Assemble("2025-08-15", nil, "", assembleNow)

	assert.Equal(t, "2025-08-15", brief.Date)
	assert.Equal(t, DefaultHeadline, brief.Headline)
	require.NotNil(t, brief.Items)
	assert.Empty(t, brief.Items)
}

func TestAssemble_Truncation(t *testing.T) {
	for _, n := range []int{0, 1, MaxItems, MaxItems + 1, 3 * MaxItems} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			in := make([]domain.ScoredArticle, 0, n)
			for i := 0; i < n; i++ {
				in = append(in, scored(fmt.Sprintf("t%d", i), 3, assembleNow))
			}

			brief := Assemble("2025-08-15", in, "", assembleNow)

			want := n
			if want > MaxItems {
				want = MaxItems
			}
			assert.Len(t, brief.Items, want)
		})
	}
}

func TestAssemble_TotalOrder(t *testing.T) {
	// Input arrives in recency order, the way Dedup leaves it.
	in := []domain.ScoredArticle{
		scored("recent low", 2, assembleNow),
		scored("recent high", 5, assembleNow.Add(-1*time.Hour)),
		scored("older high", 5, assembleNow.Add(-5*time.Hour)),
		scored("older mid", 3, assembleNow.Add(-10*time.Hour)),
	}

	brief := Assemble("2025-08-15", in, "", assembleNow)
	require.Len(t, brief.Items, 4)

	for i := 1; i < len(brief.Items); i++ {
		prev, cur := brief.Items[i-1], brief.Items[i]
		assert.GreaterOrEqual(t, prev.Importance, cur.Importance)
		if prev.Importance == cur.Importance {
			assert.False(t, cur.Time.After(prev.Time),
				"equal importance must keep recency order")
		}
	}
	assert.Equal(t, "recent high", brief.Items[0].Title)
	assert.Equal(t, "older high", brief.Items[1].Title)
}

func TestAssemble_SuppliedHeadlineWins(t *testing.T) {
	brief := Assemble("2025-08-15", nil, "Quiet day in AI", assembleNow)
	assert.Equal(t, "Quiet day in AI", brief.Headline)
}

func TestAssemble_ItemCarriesSourceRef(t *testing.T) {
	sa := scored("story", 4, assembleNow)
	sa.Source = "TechCrunch"
	sa.URL = "https://techcrunch.com/story"
	sa.Tags = []string{"AI"}

	brief := Assemble("2025-08-15", []domain.ScoredArticle{sa}, "", assembleNow)
	require.Len(t, brief.Items, 1)

	item := brief.Items[0]
	require.Len(t, item.Sources, 1)
	assert.Equal(t, "TechCrunch", item.Sources[0].Name)
	assert.Equal(t, "https://techcrunch.com/story", item.Sources[0].URL)
	assert.Equal(t, []string{"AI"}, item.Tags)
	assert.Equal(t, domain.CategoryTechnology, item.Type)
}

func TestAssemble_UnknownCategoryMapped(t *testing.T) {
	sa := scored("story", 4, assembleNow)
	sa.Category = "Mystery"

	brief := Assemble("2025-08-15", []domain.ScoredArticle{sa}, "", assembleNow)
	require.Len(t, brief.Items, 1)
	assert.Equal(t, domain.CategoryTechnology, brief.Items[0].Type)
}
