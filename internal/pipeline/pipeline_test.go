package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aidaily/ai-daily/internal/apperr"
	"github.com/aidaily/ai-daily/internal/domain"
	"github.com/aidaily/ai-daily/internal/pipeline"
	"github.com/aidaily/ai-daily/internal/sources"
	"github.com/aidaily/ai-daily/internal/storage"
	"github.com/aidaily/ai-daily/internal/storage/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

var runNow = time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC)

// stubFetcher serves a fixed article list per source name and fails
// sources listed in failing.
type stubFetcher struct {
	articles map[string][]domain.Article
	failing  map[string]bool
}

func (f *stubFetcher) Name() string { return "stub" }

func (f *stubFetcher) Fetch(_ context.Context, src sources.Source) ([]domain.Article, error) {
	if f.failing[src.Name] {
		return nil, errors.New("connection refused")
	}
	return f.articles[src.Name], nil
}

func testRegistry() *sources.Registry {
	return sources.NewRegistry([]sources.Source{
		{Name: "TechCrunch", URL: "https://techcrunch.com", Category: domain.CategoryTechnology, Priority: 10},
		{Name: "36氪", URL: "https://36kr.com", Category: domain.CategoryTechnology, Priority: 9},
		{Name: "Broken Feed", URL: "https://broken.example", Category: domain.CategoryBusiness, Priority: 1},
	})
}

func newPipeline(t *testing.T, fetch *stubFetcher) (*pipeline.Pipeline, *storage.BriefStore) {
	t.Helper()
	briefs := storage.NewBriefStore(inmem.NewKV()).WithClock(func() time.Time { return runNow })
	p := pipeline.New(testRegistry(), fetch, briefs,
		pipeline.WithClock(func() time.Time { return runNow }),
		pipeline.WithFetchPacing(rate.Inf, 1))
	return p, briefs
}

func TestGenerate_WorkedScenario(t *testing.T) {
	// A and B share an identity; C is older but carries the CJK and
	// domestic-source signals.
	fetch := &stubFetcher{
		articles: map[string][]domain.Article{
			"TechCrunch": {
				{Title: "OpenAI releases X", Source: "TechCrunch", URL: "https://techcrunch.com/x", Summary: "first copy", PublishedAt: runNow},
				{Title: "OpenAI releases X", Source: "TechCrunch", URL: "https://techcrunch.com/x2", Summary: "duplicate copy", PublishedAt: runNow},
			},
			"36氪": {
				{Title: "百度发布Y", Source: "36氪", URL: "https://36kr.com/y", PublishedAt: runNow.Add(-48 * time.Hour)},
			},
		},
	}
	p, _ := newPipeline(t, fetch)

	brief, err := p.Generate(context.Background(), "2025-08-15", false)
	require.NoError(t, err)
	require.Len(t, brief.Items, 2)

	var openai, baidu domain.BriefItem
	for _, item := range brief.Items {
		switch item.Title {
		case "OpenAI releases X":
			openai = item
		case "百度发布Y":
			baidu = item
		}
	}
	require.NotEmpty(t, openai.Title, "deduped OpenAI story must survive")
	require.NotEmpty(t, baidu.Title, "stale domestic story must survive")

	assert.Greater(t, openai.Importance, baidu.Importance,
		"recency must rank the fresh story above the stale one")
	assert.Equal(t, openai.Title, brief.Items[0].Title)
}

func TestGenerate_ToleratesSourceFailure(t *testing.T) {
	fetch := &stubFetcher{
		articles: map[string][]domain.Article{
			"TechCrunch": {
				{Title: "survivor", Source: "TechCrunch", URL: "https://techcrunch.com/s", PublishedAt: runNow},
			},
		},
		failing: map[string]bool{"Broken Feed": true, "36氪": true},
	}
	p, _ := newPipeline(t, fetch)

	brief, err := p.Generate(context.Background(), "2025-08-15", false)
	require.NoError(t, err)
	require.Len(t, brief.Items, 1)
	assert.Equal(t, "survivor", brief.Items[0].Title)
}

func TestGenerate_AllSourcesFailingStillValidBrief(t *testing.T) {
	fetch := &stubFetcher{
		failing: map[string]bool{"TechCrunch": true, "36氪": true, "Broken Feed": true},
	}
	p, _ := newPipeline(t, fetch)

	brief, err := p.Generate(context.Background(), "2025-08-15", false)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-15", brief.Date)
	assert.Equal(t, pipeline.DefaultHeadline, brief.Headline)
	assert.Empty(t, brief.Items)
}

func TestGenerate_SkipsWhenAlreadyGenerated(t *testing.T) {
	fetch := &stubFetcher{
		articles: map[string][]domain.Article{
			"TechCrunch": {
				{Title: "first run", Source: "TechCrunch", URL: "https://techcrunch.com/1", PublishedAt: runNow},
			},
		},
	}
	p, _ := newPipeline(t, fetch)

	first, err := p.Generate(context.Background(), "2025-08-15", false)
	require.NoError(t, err)

	fetch.articles["TechCrunch"] = []domain.Article{
		{Title: "second run", Source: "TechCrunch", URL: "https://techcrunch.com/2", PublishedAt: runNow},
	}

	again, err := p.Generate(context.Background(), "2025-08-15", false)
	require.NoError(t, err)
	assert.Equal(t, first, again, "force=false must return the stored brief")

	forced, err := p.Generate(context.Background(), "2025-08-15", true)
	require.NoError(t, err)
	require.Len(t, forced.Items, 1)
	assert.Equal(t, "second run", forced.Items[0].Title)
}

func TestGenerate_PersistsRoundTrip(t *testing.T) {
	fetch := &stubFetcher{
		articles: map[string][]domain.Article{
			"TechCrunch": {
				{Title: "persisted", Source: "TechCrunch", URL: "https://techcrunch.com/p", Tags: []string{"AI"}, PublishedAt: runNow},
			},
		},
	}
	p, briefs := newPipeline(t, fetch)

	generated, err := p.Generate(context.Background(), "2025-08-15", false)
	require.NoError(t, err)

	loaded, err := briefs.Get(context.Background(), "2025-08-15")
	require.NoError(t, err)
	assert.Equal(t, generated, loaded)

	latest, err := briefs.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, generated, latest)

	dates, err := briefs.Dates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-08-15"}, dates)
}

type failingHeadline struct{}

func (failingHeadline) Headline(context.Context, string, []domain.ScoredArticle) (string, error) {
	return "", fmt.Errorf("model output was not json")
}

func TestGenerate_HeadlineFailureSurfaces(t *testing.T) {
	fetch := &stubFetcher{}
	briefs := storage.NewBriefStore(inmem.NewKV())
	p := pipeline.New(testRegistry(), fetch, briefs,
		pipeline.WithClock(func() time.Time { return runNow }),
		pipeline.WithFetchPacing(rate.Inf, 1),
		pipeline.WithHeadlineGenerator(failingHeadline{}))

	_, err := p.Generate(context.Background(), "2025-08-15", false)
	require.Error(t, err)

	var ue *apperr.UpstreamError
	assert.True(t, errors.As(err, &ue), "headline failure must surface as an upstream error")

	_, getErr := briefs.Get(context.Background(), "2025-08-15")
	assert.ErrorIs(t, getErr, storage.ErrNotFound, "nothing may be persisted on failure")
}
