package crawler

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
	"NewsPulse/internal/textproc"
)

const (
	naverSearchURL = "https://search.naver.com/search.naver"
	naverPageSize  = 10
)

// NaverAdapter crawls Naver news search result pages and article pages.
type NaverAdapter struct {
	fetcher     *Fetcher
	baseURL     string
	searchPages int
	maxItems    int
	now         func() time.Time
}

var _ ports.SourceAdapter = (*NaverAdapter)(nil)

// NewNaverAdapter wires the shared fetcher. baseURL overrides the
// portal endpoint in tests; empty means production.
func NewNaverAdapter(fetcher *Fetcher, baseURL string, searchPages, maxItems int) *NaverAdapter {
	if baseURL == "" {
		baseURL = naverSearchURL
	}
	return &NaverAdapter{
		fetcher:     fetcher,
		baseURL:     baseURL,
		searchPages: searchPages,
		maxItems:    maxItems,
		now:         time.Now,
	}
}

func (a *NaverAdapter) Source() domain.Source { return domain.SourceNaver }

// Search walks paginated results for the company name. Items older
// than the window (when a date is present) are dropped here so detail
// fetches are not wasted on them.
func (a *NaverAdapter) Search(ctx context.Context, company domain.Company, windowDays int) ([]domain.Candidate, error) {
	cutoff := a.now().AddDate(0, 0, -windowDays)
	var candidates []domain.Candidate

	for page := 0; page < a.searchPages && len(candidates) < a.maxItems; page++ {
		pageURL, err := a.searchPageURL(company.Name, page)
		if err != nil {
			return nil, err
		}

		doc, err := a.fetcher.Document(ctx, pageURL)
		if err != nil {
			return candidates, err
		}

		found := a.extractCandidates(doc, cutoff, windowDays)
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

func (a *NaverAdapter) extractCandidates(doc *goquery.Document, cutoff time.Time, windowDays int) []domain.Candidate {
	var found []domain.Candidate

	doc.Find("ul.list_news li.bx").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a.news_tit").First()
		href, _ := link.Attr("href")
		if href == "" {
			return
		}

		title, ok := link.Attr("title")
		if !ok || title == "" {
			title = link.Text()
		}

		candidate := domain.Candidate{
			Title:   textproc.Clean(title),
			URL:     href,
			Summary: textproc.Clean(item.Find("div.news_dsc").First().Text()),
			Author:  textproc.Clean(item.Find("a.info.press").First().Text()),
		}

		if dateText := item.Find("div.info_group span.info").Last().Text(); dateText != "" {
			candidate.PublishedAt = ParseDate(dateText, a.now())
		}
		if candidate.PublishedAt != nil && candidate.PublishedAt.Before(cutoff) {
			return
		}

		found = append(found, candidate)
	})

	return found
}

// FetchDetail resolves an article page into a full item. Selector
// chains cover the current and the legacy Naver news markup; the
// readability pass backs them up.
func (a *NaverAdapter) FetchDetail(ctx context.Context, articleURL string) (*domain.Article, error) {
	raw, err := a.fetcher.Get(ctx, articleURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, domain.Errorf(domain.KindParse, "parse %s: %v", articleURL, err)
	}

	title := firstText(doc, []string{
		"#title_area span",
		".media_end_head_headline",
		"h2#articleTitle",
		"h3.tit_view",
	})
	content := firstText(doc, []string{
		"#dic_area",
		"#newsct_article",
		"#articleBodyContents",
		"#articeBody",
	})
	if content == "" {
		content = readableBody(raw, articleURL)
	}

	author := firstText(doc, []string{
		"em.media_end_head_journalist_name",
		".byline span",
		".journalist_name",
	})

	var publishedAt *time.Time
	if stamp := firstAttr(doc, []string{"span.media_end_head_info_datestamp_time"}, "data-date-time"); stamp != "" {
		publishedAt = ParseDate(stamp, a.now())
	}
	if publishedAt == nil {
		publishedAt = ParseDate(firstText(doc, []string{
			"span.media_end_head_info_datestamp_time",
			"span.t11",
		}), a.now())
	}

	return &domain.Article{
		Title:       title,
		Content:     content,
		URL:         articleURL,
		Source:      domain.SourceNaver,
		Author:      author,
		PublishedAt: publishedAt,
		CollectedAt: a.now(),
	}, nil
}

func (a *NaverAdapter) searchPageURL(query string, page int) (string, error) {
	parsed, err := url.Parse(a.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid search url %s: %w", a.baseURL, err)
	}

	values := parsed.Query()
	values.Set("where", "news")
	values.Set("query", query)
	values.Set("start", fmt.Sprintf("%d", page*naverPageSize+1))
	parsed.RawQuery = values.Encode()
	return parsed.String(), nil
}
