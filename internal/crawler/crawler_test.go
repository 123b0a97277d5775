package crawler

import (
	"context"
	"strings"
	"testing"

	"NewsPulse/internal/domain"
)

type noopAdapter struct{ source domain.Source }

func (a *noopAdapter) Source() domain.Source { return a.source }

func (a *noopAdapter) Search(context.Context, domain.Company, int) ([]domain.Candidate, error) {
	return nil, nil
}

func (a *noopAdapter) FetchDetail(context.Context, string) (*domain.Article, error) {
	return nil, nil
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(&noopAdapter{source: domain.SourceNaver})
	r.Register(&noopAdapter{source: domain.SourceDaum})
	r.Register(&noopAdapter{source: domain.SourceGoogle})
	// re-registering must not duplicate or reorder
	r.Register(&noopAdapter{source: domain.SourceDaum})

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("registry holds %d adapters, want 3", len(all))
	}
	want := []domain.Source{domain.SourceNaver, domain.SourceDaum, domain.SourceGoogle}
	for i, adapter := range all {
		if adapter.Source() != want[i] {
			t.Fatalf("adapter[%d] = %s, want %s", i, adapter.Source(), want[i])
		}
	}

	if _, err := r.Resolve(domain.SourceNaver); err != nil {
		t.Fatalf("resolve naver: %v", err)
	}
	if _, err := r.Resolve(domain.SourcePressRelease); err == nil {
		t.Fatal("resolving an unregistered source should fail")
	}
}

func TestValidCandidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		c    domain.Candidate
		want bool
	}{
		{"ok", domain.Candidate{Title: "삼성전자 실적 발표", URL: "https://news.example.com/1"}, true},
		{"short title", domain.Candidate{Title: "짧다", URL: "https://news.example.com/1"}, false},
		{"blank title", domain.Candidate{Title: "   ", URL: "https://news.example.com/1"}, false},
		{"relative url", domain.Candidate{Title: "삼성전자 실적 발표", URL: "/article/1"}, false},
		{"bad scheme", domain.Candidate{Title: "삼성전자 실적 발표", URL: "ftp://example.com/1"}, false},
	}
	for _, tc := range cases {
		if got := ValidCandidate(tc.c); got != tc.want {
			t.Fatalf("%s: ValidCandidate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestValidArticleRequiresBody(t *testing.T) {
	t.Parallel()

	a := &domain.Article{
		Title:   "삼성전자 실적 발표",
		URL:     "https://news.example.com/1",
		Content: "본문이 너무 짧음",
	}
	if ValidArticle(a) {
		t.Fatal("short body should fail the detail predicate")
	}

	a.Content = strings.Repeat("충분히 긴 본문 내용입니다. ", 10)
	if !ValidArticle(a) {
		t.Fatal("long body should pass the detail predicate")
	}
	if ValidArticle(nil) {
		t.Fatal("nil article should fail")
	}
}
