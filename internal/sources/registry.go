package sources

import (
	"fmt"
	"io"
	"sort"

	"github.com/aidaily/ai-daily/internal/domain"
	"gopkg.in/yaml.v3"
)

// Source is one catalog entry the fetchers draw candidates from.
// The registry is read-only at runtime.
type Source struct {
	Name        string          `yaml:"name" json:"name"`
	URL         string          `yaml:"url" json:"url"`
	Category    domain.Category `yaml:"category" json:"category"`
	SearchURL   string          `yaml:"searchUrl" json:"searchUrl"`
	RSSURL      string          `yaml:"rssUrl,omitempty" json:"rssUrl,omitempty"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Language    string          `yaml:"language" json:"language"`
	Region      string          `yaml:"region" json:"region"`
	Priority    int             `yaml:"priority" json:"priority"`
}

// Registry holds the source catalog, sorted by descending priority.
type Registry struct {
	sources []Source
}

// NewRegistry builds a registry over the given entries. Entries missing
// a name or URL are dropped.
func NewRegistry(entries []Source) *Registry {
	valid := make([]Source, 0, len(entries))
	for _, s := range entries {
		if s.Name == "" || s.URL == "" {
			continue
		}
		valid = append(valid, s)
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Priority > valid[j].Priority
	})
	return &Registry{sources: valid}
}

// Default returns the built-in catalog.
func Default() *Registry {
	return NewRegistry(defaultSources)
}

// LoadYAML reads a registry override from r. The file holds a plain
// list of source entries.
func LoadYAML(r io.Reader) (*Registry, error) {
	var entries []Source
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode sources file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("sources file contains no entries")
	}
	return NewRegistry(entries), nil
}

// All returns every source, highest priority first.
func (r *Registry) All() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// ByCategory returns sources with the given category label.
func (r *Registry) ByCategory(category domain.Category) []Source {
	var out []Source
	for _, s := range r.sources {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// ByRegion returns sources in the given region.
func (r *Registry) ByRegion(region string) []Source {
	var out []Source
	for _, s := range r.sources {
		if s.Region == region {
			out = append(out, s)
		}
	}
	return out
}

// ByMinPriority returns sources with priority >= min.
func (r *Registry) ByMinPriority(min int) []Source {
	var out []Source
	for _, s := range r.sources {
		if s.Priority >= min {
			out = append(out, s)
		}
	}
	return out
}

// Lookup returns the source with the given name.
func (r *Registry) Lookup(name string) (Source, bool) {
	for _, s := range r.sources {
		if s.Name == name {
			return s, true
		}
	}
	return Source{}, false
}

// Homepage returns the homepage URL for a source name, or empty when
// the source is unknown. Used to repair dead article links.
func (r *Registry) Homepage(name string) string {
	if s, ok := r.Lookup(name); ok {
		return s.URL
	}
	return ""
}
