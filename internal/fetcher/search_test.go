package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aidaily/ai-daily/internal/domain"
	"github.com/aidaily/ai-daily/internal/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPage = `<!doctype html>
<html><body>
<article><h2><a href="/news/alpha">  Alpha   headline </a></h2></article>
<article><h2><a href="/news/alpha">Alpha duplicate</a></h2></article>
<article><h2><a href="https://other.example.org/beta">Beta headline</a></h2></article>
<article><h2><a href="/news/gamma">Gamma headline</a></h2></article>
<article><h2><a href="/news/delta">Delta never fits</a></h2></article>
<h3><a href="/fallback">Fallback selector, never reached</a></h3>
</body></html>`

func TestSearchFetcher_ScrapesHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, searchPage)
	}))
	defer srv.Close()

	f := NewSearchFetcher(srv.Client())
	src := sources.Source{
		Name:      "Example",
		URL:       "https://example.com",
		SearchURL: srv.URL + "/search?q=AI",
		Category:  domain.CategoryIndustry,
	}

	got, err := f.Fetch(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, got, MaxPerSource)

	assert.Equal(t, "Alpha headline", got[0].Title)
	assert.Equal(t, "https://example.com/news/alpha", got[0].URL)
	assert.Equal(t, domain.CategoryIndustry, got[0].Category)

	// Absolute links pass through untouched, duplicates collapse.
	assert.Equal(t, "https://other.example.org/beta", got[1].URL)
	assert.Equal(t, "https://example.com/news/gamma", got[2].URL)
}

func TestSearchFetcher_NoSearchURL(t *testing.T) {
	f := NewSearchFetcher(nil)
	got, err := f.Fetch(context.Background(), sources.Source{Name: "X", URL: "https://example.com"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchFetcher_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewSearchFetcher(srv.Client())
	_, err := f.Fetch(context.Background(), sources.Source{Name: "X", URL: "https://example.com", SearchURL: srv.URL})
	assert.Error(t, err)
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		base string
		href string
		want string
	}{
		{base: "https://example.com", href: "/a/b", want: "https://example.com/a/b"},
		{base: "https://example.com/sub/", href: "c", want: "https://example.com/sub/c"},
		{base: "https://example.com", href: "https://cdn.example.org/x", want: "https://cdn.example.org/x"},
		{base: "://bad", href: "/a", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveLink(tt.base, tt.href), "base %q href %q", tt.base, tt.href)
	}
}
