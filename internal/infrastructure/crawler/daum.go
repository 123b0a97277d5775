package crawler

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
	"NewsPulse/internal/textproc"
)

const daumSearchURL = "https://search.daum.net/search"

// DaumAdapter crawls Daum news search result pages and article pages.
type DaumAdapter struct {
	fetcher     *Fetcher
	baseURL     string
	searchPages int
	maxItems    int
	now         func() time.Time
}

var _ ports.SourceAdapter = (*DaumAdapter)(nil)

func NewDaumAdapter(fetcher *Fetcher, baseURL string, searchPages, maxItems int) *DaumAdapter {
	if baseURL == "" {
		baseURL = daumSearchURL
	}
	return &DaumAdapter{
		fetcher:     fetcher,
		baseURL:     baseURL,
		searchPages: searchPages,
		maxItems:    maxItems,
		now:         time.Now,
	}
}

func (a *DaumAdapter) Source() domain.Source { return domain.SourceDaum }

func (a *DaumAdapter) Search(ctx context.Context, company domain.Company, windowDays int) ([]domain.Candidate, error) {
	cutoff := a.now().AddDate(0, 0, -windowDays)
	var candidates []domain.Candidate

	for page := 1; page <= a.searchPages && len(candidates) < a.maxItems; page++ {
		pageURL, err := a.searchPageURL(company.Name, page)
		if err != nil {
			return nil, err
		}

		doc, err := a.fetcher.Document(ctx, pageURL)
		if err != nil {
			return candidates, err
		}

		found := a.extractCandidates(doc, cutoff)
		if len(found) == 0 {
			break
		}
		candidates = append(candidates, found...)
	}

	if len(candidates) > a.maxItems {
		candidates = candidates[:a.maxItems]
	}
	return candidates, nil
}

func (a *DaumAdapter) extractCandidates(doc *goquery.Document, cutoff time.Time) []domain.Candidate {
	var found []domain.Candidate

	doc.Find("ul.list_news li, div.c-item-doc").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a.tit_main, strong.tit-g a").First()
		href, _ := link.Attr("href")
		if href == "" {
			return
		}

		candidate := domain.Candidate{
			Title:   textproc.Clean(link.Text()),
			URL:     absoluteURL(a.baseURL, href),
			Summary: textproc.Clean(item.Find("p.conts_desc, p.desc").First().Text()),
			Author:  textproc.Clean(item.Find("span.txt_info, a.txt_info").First().Text()),
		}

		if dateText := item.Find("span.gem-subinfo, span.date").First().Text(); dateText != "" {
			candidate.PublishedAt = ParseDate(dateText, a.now())
		}
		if candidate.PublishedAt != nil && candidate.PublishedAt.Before(cutoff) {
			return
		}

		found = append(found, candidate)
	})

	return found
}

func (a *DaumAdapter) FetchDetail(ctx context.Context, articleURL string) (*domain.Article, error) {
	raw, err := a.fetcher.Get(ctx, articleURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, domain.Errorf(domain.KindParse, "parse %s: %v", articleURL, err)
	}

	title := firstText(doc, []string{
		"h3.tit_view",
		"h1.tit_view",
		".head_view .tit_view",
	})
	content := joinParagraphs(doc, []string{
		"div.article_view section p",
		"#harmonyContainer p",
		"div.news_view p",
	})
	if content == "" {
		content = readableBody(raw, articleURL)
	}

	author := firstText(doc, []string{
		"span.info_view span.txt_info",
		".head_view .info_view .txt_info",
	})

	publishedAt := ParseDate(firstText(doc, []string{
		"span.num_date",
		"span.info_view span.num_date",
	}), a.now())

	return &domain.Article{
		Title:       title,
		Content:     content,
		URL:         articleURL,
		Source:      domain.SourceDaum,
		Author:      author,
		PublishedAt: publishedAt,
		CollectedAt: a.now(),
	}, nil
}

// joinParagraphs concatenates paragraph nodes; Daum splits body text
// into many short <p> elements.
func joinParagraphs(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		var buf bytes.Buffer
		doc.Find(selector).Each(func(_ int, p *goquery.Selection) {
			if text := textproc.Clean(p.Text()); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		})
		if buf.Len() > 0 {
			return textproc.Clean(buf.String())
		}
	}
	return ""
}

func (a *DaumAdapter) searchPageURL(query string, page int) (string, error) {
	parsed, err := url.Parse(a.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid search url %s: %w", a.baseURL, err)
	}

	values := parsed.Query()
	values.Set("w", "news")
	values.Set("q", query)
	values.Set("p", strconv.Itoa(page))
	parsed.RawQuery = values.Encode()
	return parsed.String(), nil
}
