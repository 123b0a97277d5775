// Package crawler implements the portal source adapters: Naver and
// Daum HTML search, Google News RSS, and the shared polite fetcher.
package crawler

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"NewsPulse/internal/domain"
)

// Fetcher is the shared HTTP front for all adapters of one source: a
// fixed inter-request delay enforced by a rate limiter, plus random
// jitter, plus a per-request timeout carried by the client.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	jitter    time.Duration
	userAgent string
}

// NewFetcher builds a fetcher. delay is the minimum spacing between
// requests; up to jitter is added randomly on top.
func NewFetcher(client *http.Client, delay, jitter time.Duration, userAgent string) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if delay > 0 {
		limiter = rate.NewLimiter(rate.Every(delay), 1)
	}
	return &Fetcher{client: client, limiter: limiter, jitter: jitter, userAgent: userAgent}
}

// Get fetches one page. A non-200 response or transport failure is a
// fetch error; the caller decides whether to skip or abort.
func (f *Fetcher) Get(ctx context.Context, pageURL string) ([]byte, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, domain.Errorf(domain.KindFetch, "build request %s: %v", pageURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, domain.Errorf(domain.KindFetch, "request %s: %v", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.Errorf(domain.KindFetch, "%s returned %s", pageURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Errorf(domain.KindFetch, "read %s: %v", pageURL, err)
	}
	return body, nil
}

// Document fetches and parses one HTML page.
func (f *Fetcher) Document(ctx context.Context, pageURL string) (*goquery.Document, error) {
	body, err := f.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, domain.Errorf(domain.KindParse, "parse %s: %v", pageURL, err)
	}
	return doc, nil
}

// wait blocks for the politeness delay plus jitter, honoring ctx.
func (f *Fetcher) wait(ctx context.Context) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return domain.WrapError(domain.KindFetch, err)
	}
	if f.jitter <= 0 {
		return nil
	}

	timer := time.NewTimer(rand.N(f.jitter))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return domain.WrapError(domain.KindFetch, ctx.Err())
	case <-timer.C:
		return nil
	}
}
