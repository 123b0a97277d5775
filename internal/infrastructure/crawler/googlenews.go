package crawler

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
	"NewsPulse/internal/textproc"
)

const googleNewsRSSURL = "https://news.google.com/rss/search"

// GoogleNewsAdapter reads the Google News RSS search feed. RSS spares
// us the consent-wall HTML the portal serves to crawlers.
type GoogleNewsAdapter struct {
	fetcher  *Fetcher
	baseURL  string
	parser   *gofeed.Parser
	maxItems int
	now      func() time.Time
}

var _ ports.SourceAdapter = (*GoogleNewsAdapter)(nil)

func NewGoogleNewsAdapter(fetcher *Fetcher, baseURL string, maxItems int) *GoogleNewsAdapter {
	if baseURL == "" {
		baseURL = googleNewsRSSURL
	}
	return &GoogleNewsAdapter{
		fetcher:  fetcher,
		baseURL:  baseURL,
		parser:   gofeed.NewParser(),
		maxItems: maxItems,
		now:      time.Now,
	}
}

func (a *GoogleNewsAdapter) Source() domain.Source { return domain.SourceGoogle }

func (a *GoogleNewsAdapter) Search(ctx context.Context, company domain.Company, windowDays int) ([]domain.Candidate, error) {
	feedURL, err := a.feedURL(company.Name, windowDays)
	if err != nil {
		return nil, err
	}

	raw, err := a.fetcher.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	feed, err := a.parser.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, domain.Errorf(domain.KindParse, "parse feed %s: %v", feedURL, err)
	}

	cutoff := a.now().AddDate(0, 0, -windowDays)
	var candidates []domain.Candidate
	for _, item := range feed.Items {
		if len(candidates) >= a.maxItems {
			break
		}

		candidate := domain.Candidate{
			Title:   textproc.Clean(item.Title),
			URL:     item.Link,
			Summary: textproc.Clean(item.Description),
		}
		if item.PublishedParsed != nil {
			t := *item.PublishedParsed
			if t.Before(cutoff) {
				continue
			}
			candidate.PublishedAt = &t
		}
		if len(item.Authors) > 0 {
			candidate.Author = item.Authors[0].Name
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// FetchDetail fetches the linked publisher page. Markup varies per
// publisher, so extraction relies on readability alone.
func (a *GoogleNewsAdapter) FetchDetail(ctx context.Context, articleURL string) (*domain.Article, error) {
	raw, err := a.fetcher.Get(ctx, articleURL)
	if err != nil {
		return nil, err
	}

	title, content := readable(raw, articleURL)

	return &domain.Article{
		Title:       title,
		Content:     content,
		URL:         articleURL,
		Source:      domain.SourceGoogle,
		CollectedAt: a.now(),
	}, nil
}

func (a *GoogleNewsAdapter) feedURL(query string, windowDays int) (string, error) {
	parsed, err := url.Parse(a.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid feed url %s: %w", a.baseURL, err)
	}

	values := parsed.Query()
	values.Set("q", fmt.Sprintf("%s when:%dd", query, windowDays))
	values.Set("hl", "ko")
	values.Set("gl", "KR")
	values.Set("ceid", "KR:ko")
	parsed.RawQuery = values.Encode()
	return parsed.String(), nil
}
