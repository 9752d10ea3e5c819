package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aidaily/ai-daily/internal/apperr"
	"github.com/aidaily/ai-daily/internal/domain"
	"github.com/aidaily/ai-daily/internal/fetcher"
	"github.com/aidaily/ai-daily/internal/sources"
	"github.com/aidaily/ai-daily/internal/storage"
	"golang.org/x/time/rate"
)

// sourceRate paces outbound fetches: one source per second, the fixed
// politeness delay the original crawler used between requests.
const sourceRate = rate.Limit(1)

// HeadlineGenerator supplies a brief headline from the assembled items,
// typically an upstream LLM. Optional; a nil generator means the static
// default headline.
type HeadlineGenerator interface {
	Headline(ctx context.Context, date string, items []domain.ScoredArticle) (string, error)
}

// Pipeline runs one full fetch, dedup, score, assemble, persist
// sequence per invocation. One HTTP request or one scheduled trigger
// equals one run; runs share no state outside the store.
type Pipeline struct {
	registry *sources.Registry
	fetch    fetcher.Fetcher
	briefs   *storage.BriefStore
	headline HeadlineGenerator
	limiter  *rate.Limiter
	now      func() time.Time
}

type Option func(*Pipeline)

// WithHeadlineGenerator plugs an external headline source in.
func WithHeadlineGenerator(gen HeadlineGenerator) Option {
	return func(p *Pipeline) {
		p.headline = gen
	}
}

// WithClock fixes the evaluation time. Tests only.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// WithFetchPacing overrides the outbound fetch rate.
func WithFetchPacing(limit rate.Limit, burst int) Option {
	return func(p *Pipeline) {
		p.limiter = rate.NewLimiter(limit, burst)
	}
}

func New(registry *sources.Registry, fetch fetcher.Fetcher, briefs *storage.BriefStore, opts ...Option) *Pipeline {
	p := &Pipeline{
		registry: registry,
		fetch:    fetch,
		briefs:   briefs,
		limiter:  rate.NewLimiter(sourceRate, 1),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate produces and persists the brief for date. With force unset
// an already-generated date is returned as-is; force reruns the whole
// sequence and overwrites, last write wins.
func (p *Pipeline) Generate(ctx context.Context, date string, force bool) (domain.Brief, error) {
	if !force {
		existing, err := p.briefs.Get(ctx, date)
		if err == nil {
			slog.Info("Brief already generated, skipping", "date", date)
			return existing, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return domain.Brief{}, err
		}
	}

	now := p.now()

	candidates := p.fetchAll(ctx)
	slog.Info("Fetched candidate articles", "count", len(candidates), "date", date)

	unique := Dedup(candidates)

	scored := make([]domain.ScoredArticle, 0, len(unique))
	for _, article := range unique {
		scored = append(scored, domain.ScoredArticle{
			Article:    article,
			Importance: Score(article, now),
		})
	}

	headline, err := p.generateHeadline(ctx, date, scored)
	if err != nil {
		return domain.Brief{}, err
	}

	brief := Assemble(date, scored, headline, now)

	if err := p.briefs.Save(ctx, brief); err != nil {
		return domain.Brief{}, err
	}

	slog.Info("Brief generated", "date", date, "items", len(brief.Items))
	return brief, nil
}

// fetchAll queries every registry source concurrently and collects
// whatever arrived. A failing source logs a warning and contributes
// nothing; the run never aborts on a per-source failure.
func (p *Pipeline) fetchAll(ctx context.Context) []domain.Article {
	srcs := p.registry.All()

	type result struct {
		source   string
		articles []domain.Article
		err      error
	}
	results := make(chan result, len(srcs))

	for _, src := range srcs {
		go func(src sources.Source) {
			if err := p.limiter.Wait(ctx); err != nil {
				results <- result{source: src.Name, err: err}
				return
			}
			articles, err := p.fetch.Fetch(ctx, src)
			results <- result{source: src.Name, articles: articles, err: err}
		}(src)
	}

	var all []domain.Article
	for range srcs {
		r := <-results
		if r.err != nil {
			slog.Warn("Source fetch failed, skipping", "source", r.source, "error", r.err)
			continue
		}
		all = append(all, r.articles...)
	}
	return all
}

func (p *Pipeline) generateHeadline(ctx context.Context, date string, scored []domain.ScoredArticle) (string, error) {
	if p.headline == nil {
		return "", nil
	}
	headline, err := p.headline.Headline(ctx, date, scored)
	if err != nil {
		return "", apperr.NewUpstream("headline generation failed", err)
	}
	return headline, nil
}
