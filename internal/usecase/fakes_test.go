package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"NewsPulse/internal/config"
	"NewsPulse/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCrawlerConfig() config.CrawlerConfig {
	return config.CrawlerConfig{
		MaxConcurrentSources: 3,
		MaxConcurrentDetails: 5,
		MaxArticlesPerSource: 100,
		WindowDays:           7,
		BatchSize:            100,
	}
}

func testCompany() domain.Company {
	return domain.Company{ID: 1, Name: "삼성전자", Active: true}
}

// fakeAdapter serves canned candidates and details.
type fakeAdapter struct {
	source    domain.Source
	urls      []string
	searchErr error
	block     chan struct{} // when set, Search waits until closed
}

func (a *fakeAdapter) Source() domain.Source { return a.source }

func (a *fakeAdapter) Search(ctx context.Context, _ domain.Company, _ int) ([]domain.Candidate, error) {
	if a.block != nil {
		select {
		case <-a.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if a.searchErr != nil {
		return nil, a.searchErr
	}

	candidates := make([]domain.Candidate, 0, len(a.urls))
	for _, url := range a.urls {
		candidates = append(candidates, domain.Candidate{
			Title: "기사 제목 " + url,
			URL:   url,
		})
	}
	return candidates, nil
}

func (a *fakeAdapter) FetchDetail(_ context.Context, url string) (*domain.Article, error) {
	return &domain.Article{
		Title:       "기사 제목 " + url,
		Content:     strings.Repeat("본문 내용이 충분히 길어야 저장됩니다. ", 5),
		URL:         url,
		Source:      a.source,
		CollectedAt: time.Now(),
	}, nil
}

// fakeArticleRepo is an in-memory ArticleRepository. When failSaveOn
// is zero a non-nil saveErr fails every SaveBatch; otherwise only that
// 1-based call fails.
type fakeArticleRepo struct {
	mu         sync.Mutex
	articles   map[string]domain.Article
	nextID     int64
	saves      int
	failSaveOn int
	saveErr    error
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[string]domain.Article{}}
}

func (r *fakeArticleRepo) ExistingURLs(_ context.Context, urls []string) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing := map[string]bool{}
	for _, url := range urls {
		if _, ok := r.articles[url]; ok {
			existing[url] = true
		}
	}
	return existing, nil
}

func (r *fakeArticleRepo) SaveBatch(_ context.Context, articles []domain.Article) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil && (r.failSaveOn == 0 || r.saves == r.failSaveOn) {
		return 0, r.saveErr
	}
	saved := 0
	for _, article := range articles {
		if _, ok := r.articles[article.URL]; ok {
			continue
		}
		r.nextID++
		article.ID = r.nextID
		r.articles[article.URL] = article
		saved++
	}
	return saved, nil
}

func (r *fakeArticleRepo) PendingClassification(_ context.Context, limit int) ([]domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pending []domain.Article
	for _, article := range r.articles {
		if !article.Classified() && len(pending) < limit {
			pending = append(pending, article)
		}
	}
	return pending, nil
}

func (r *fakeArticleRepo) UpdateClassification(_ context.Context, article domain.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for url, stored := range r.articles {
		if stored.ID == article.ID {
			r.articles[url] = article
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeArticleRepo) ClassifiedBetween(_ context.Context, from, to time.Time) ([]domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Article
	for _, article := range r.articles {
		at := article.CollectedAt
		if article.PublishedAt != nil {
			at = *article.PublishedAt
		}
		if article.Classified() && !at.Before(from) && at.Before(to) {
			out = append(out, article)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) ClassifiedForStakeholder(ctx context.Context, companyID int64, stakeholder domain.Stakeholder, from, to time.Time) ([]domain.Article, error) {
	all, _ := r.ClassifiedBetween(ctx, from, to)
	var out []domain.Article
	for _, article := range all {
		if article.CompanyID == companyID && article.Stakeholder != nil && *article.Stakeholder == stakeholder {
			out = append(out, article)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) CountAll(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.articles), nil
}

func (r *fakeArticleRepo) CountClassified(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, article := range r.articles {
		if article.Classified() {
			n++
		}
	}
	return n, nil
}

// fakeJobRepo is an in-memory JobRepository. A non-nil createErr fails
// the failCreateOn-th (1-based) Create call.
type fakeJobRepo struct {
	mu           sync.Mutex
	jobs         map[int64]domain.CrawlJob
	nextID       int64
	creates      int
	failCreateOn int
	createErr    error
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[int64]domain.CrawlJob{}}
}

func (r *fakeJobRepo) Create(_ context.Context, job *domain.CrawlJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.createErr != nil && r.creates == r.failCreateOn {
		return r.createErr
	}
	r.nextID++
	job.ID = r.nextID
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *domain.CrawlJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return domain.ErrNotFound
	}
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) Since(_ context.Context, since time.Time) ([]domain.CrawlJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.CrawlJob
	for _, job := range r.jobs {
		if !job.StartTime.Before(since) {
			out = append(out, job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) DeleteBefore(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, job := range r.jobs {
		if job.StartTime.Before(cutoff) {
			delete(r.jobs, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeJobRepo) bySource(source domain.Source) (domain.CrawlJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, job := range r.jobs {
		if job.Source == source {
			return job, nil
		}
	}
	return domain.CrawlJob{}, fmt.Errorf("no job for source %s", source)
}

// fakeTrendRepo is an in-memory TrendRepository.
type fakeTrendRepo struct {
	mu      sync.Mutex
	buckets map[string]domain.TrendBucket
	upserts int
	nextID  int64
}

func newFakeTrendRepo() *fakeTrendRepo {
	return &fakeTrendRepo{buckets: map[string]domain.TrendBucket{}}
}

func trendKey(companyID int64, stakeholder domain.Stakeholder, date time.Time) string {
	return fmt.Sprintf("%d/%s/%s", companyID, stakeholder, date.Format("2006-01-02"))
}

func (r *fakeTrendRepo) Upsert(_ context.Context, bucket *domain.TrendBucket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	key := trendKey(bucket.CompanyID, bucket.Stakeholder, bucket.Date)
	if existing, ok := r.buckets[key]; ok {
		bucket.ID = existing.ID
	} else {
		r.nextID++
		bucket.ID = r.nextID
	}
	r.buckets[key] = *bucket
	return nil
}

func (r *fakeTrendRepo) Window(_ context.Context, companyID int64, stakeholder domain.Stakeholder, from, to time.Time) ([]domain.TrendBucket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.TrendBucket
	for _, bucket := range r.buckets {
		if bucket.CompanyID == companyID && bucket.Stakeholder == stakeholder &&
			!bucket.Date.Before(from) && bucket.Date.Before(to) {
			out = append(out, bucket)
		}
	}
	return out, nil
}

// fakeCompanyRepo is an in-memory CompanyRepository.
type fakeCompanyRepo struct {
	companies []domain.Company
}

func (r *fakeCompanyRepo) Active(context.Context) ([]domain.Company, error) {
	var out []domain.Company
	for _, c := range r.companies {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) ByID(_ context.Context, id int64) (domain.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Company{}, domain.ErrNotFound
}

func (r *fakeCompanyRepo) ByName(_ context.Context, name string) (domain.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return domain.Company{}, domain.ErrNotFound
}
