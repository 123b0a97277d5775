// Package crawler holds the source-adapter registry and the quality
// predicates items must pass on their way into the pipeline.
package crawler

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
)

const (
	minTitleRunes   = 5
	minContentRunes = 50
)

// Registry keeps a mapping from source names to their adapters,
// preserving registration order for deterministic merges.
type Registry struct {
	order    []domain.Source
	adapters map[domain.Source]ports.SourceAdapter
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: map[domain.Source]ports.SourceAdapter{}}
}

// Register adds or replaces an adapter.
func (r *Registry) Register(adapter ports.SourceAdapter) {
	if r.adapters == nil {
		r.adapters = map[domain.Source]ports.SourceAdapter{}
	}
	source := adapter.Source()
	if _, ok := r.adapters[source]; !ok {
		r.order = append(r.order, source)
	}
	r.adapters[source] = adapter
}

// Resolve returns an adapter by source or an error if it is absent.
func (r *Registry) Resolve(source domain.Source) (ports.SourceAdapter, error) {
	if adapter, ok := r.adapters[source]; ok {
		return adapter, nil
	}
	return nil, fmt.Errorf("source %s is not registered", source)
}

// All returns every adapter in registration order.
func (r *Registry) All() []ports.SourceAdapter {
	adapters := make([]ports.SourceAdapter, 0, len(r.order))
	for _, source := range r.order {
		adapters = append(adapters, r.adapters[source])
	}
	return adapters
}

// ValidCandidate is the cheap pre-fetch predicate: a usable title and
// a syntactically valid absolute URL.
func ValidCandidate(c domain.Candidate) bool {
	title := strings.TrimSpace(c.Title)
	if utf8.RuneCountInString(title) < minTitleRunes {
		return false
	}
	parsed, err := url.Parse(c.URL)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// ValidArticle is the post-fetch predicate: enough body text to be
// worth classifying.
func ValidArticle(a *domain.Article) bool {
	if a == nil {
		return false
	}
	if !ValidCandidate(domain.Candidate{Title: a.Title, URL: a.URL}) {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(a.Content)) >= minContentRunes
}
