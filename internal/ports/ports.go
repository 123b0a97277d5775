package ports

import (
	"context"
	"time"

	"NewsPulse/internal/domain"
)

// SourceAdapter pulls candidate articles and full content from one
// external news source.
type SourceAdapter interface {
	Source() domain.Source
	// Search returns cheap candidates (title/url/summary) for a company
	// within the lookback window.
	Search(ctx context.Context, company domain.Company, windowDays int) ([]domain.Candidate, error)
	// FetchDetail resolves one candidate URL into a full article, or
	// nil when the page cannot be parsed into a valid item.
	FetchDetail(ctx context.Context, url string) (*domain.Article, error)
}

// ArticleRepository persists collected articles and their classification.
type ArticleRepository interface {
	// ExistingURLs returns the subset of urls already stored.
	ExistingURLs(ctx context.Context, urls []string) (map[string]bool, error)
	// SaveBatch inserts articles inside one transaction, skipping URLs
	// that already exist. Returns the number actually inserted.
	SaveBatch(ctx context.Context, articles []domain.Article) (int, error)
	// PendingClassification lists articles whose sentiment is still unset.
	PendingClassification(ctx context.Context, limit int) ([]domain.Article, error)
	// UpdateClassification stores sentiment, stakeholder and merged keywords.
	UpdateClassification(ctx context.Context, article domain.Article) error
	// ClassifiedBetween lists classified articles published inside the window.
	ClassifiedBetween(ctx context.Context, from, to time.Time) ([]domain.Article, error)
	// ClassifiedForStakeholder narrows the window to one company and stakeholder.
	ClassifiedForStakeholder(ctx context.Context, companyID int64, stakeholder domain.Stakeholder, from, to time.Time) ([]domain.Article, error)
	// CountAll and CountClassified feed the analysis statistics report.
	CountAll(ctx context.Context) (int, error)
	CountClassified(ctx context.Context) (int, error)
}

// JobRepository tracks crawl job lifecycle rows.
type JobRepository interface {
	Create(ctx context.Context, job *domain.CrawlJob) error
	Update(ctx context.Context, job *domain.CrawlJob) error
	// Since lists jobs started after the given instant, newest first.
	Since(ctx context.Context, since time.Time) ([]domain.CrawlJob, error)
	// DeleteBefore prunes old job rows and reports how many were removed.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// TrendRepository stores daily aggregates keyed by (company, stakeholder, date).
type TrendRepository interface {
	// Upsert writes the bucket, replacing any existing row for its key.
	Upsert(ctx context.Context, bucket *domain.TrendBucket) error
	// Window lists buckets for one key ordered by date ascending.
	Window(ctx context.Context, companyID int64, stakeholder domain.Stakeholder, from, to time.Time) ([]domain.TrendBucket, error)
}

// CompanyRepository reads tracked companies.
type CompanyRepository interface {
	Active(ctx context.Context) ([]domain.Company, error)
	ByID(ctx context.Context, id int64) (domain.Company, error)
	ByName(ctx context.Context, name string) (domain.Company, error)
}

// Inference invokes the pretrained text-classification model. The
// implementation is opaque: a label plus the probability of that label.
type Inference interface {
	ClassifyText(ctx context.Context, text string) (label string, score float64, err error)
}

// Scheduler controls when the pipeline executes; an in-process stand-in
// for the external task substrate.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
