// Package usecase wires the domain workflows: crawling, classification,
// aggregation and insight reporting.
package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"NewsPulse/internal/config"
	"NewsPulse/internal/crawler"
	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
	"NewsPulse/internal/textproc"
)

const (
	summaryMaxRunes  = 200
	fallbackKeywords = 10
)

// SourceResult reports one adapter's part of a crawl run.
type SourceResult struct {
	Source    domain.Source
	Found     int
	Processed int
	Saved     int
	Error     string
}

// RunSummary is the caller-visible outcome of one crawl run. Success
// is false only when every source failed to produce a usable result.
type RunSummary struct {
	CompanyID   int64
	CompanyName string
	Sources     []SourceResult
	TotalFound  int
	TotalUnique int
	TotalSaved  int
	Success     bool
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Progress reports crawl-all advancement after each company settles.
type Progress func(done, total int, company domain.Company, summary RunSummary)

// Orchestrator fans search-and-fetch work out across the registered
// source adapters and funnels the merged result into storage.
type Orchestrator struct {
	registry  *crawler.Registry
	articles  ports.ArticleRepository
	jobs      ports.JobRepository
	companies ports.CompanyRepository
	cfg       config.CrawlerConfig
	log       *slog.Logger

	mu       sync.Mutex
	inflight map[int64]bool
}

func NewOrchestrator(registry *crawler.Registry, articles ports.ArticleRepository, jobs ports.JobRepository, companies ports.CompanyRepository, cfg config.CrawlerConfig, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		registry:  registry,
		articles:  articles,
		jobs:      jobs,
		companies: companies,
		cfg:       cfg,
		log:       log,
		inflight:  map[int64]bool{},
	}
}

// sourceOutcome is one adapter task's result slot. Slots are written
// only by their own task and read only after the group joins.
type sourceOutcome struct {
	articles  []domain.Article
	found     int
	processed int
	err       error
}

// Crawl runs one company through every registered source. A second
// concurrent call for the same company is rejected with
// domain.ErrCrawlInProgress instead of racing the first.
func (o *Orchestrator) Crawl(ctx context.Context, company domain.Company, windowDays int) (RunSummary, error) {
	if !o.acquire(company.ID) {
		return RunSummary{}, domain.ErrCrawlInProgress
	}
	defer o.release(company.ID)

	if windowDays <= 0 {
		windowDays = o.cfg.WindowDays
	}

	summary := RunSummary{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		StartedAt:   time.Now(),
	}

	adapters := o.registry.All()
	jobs := make([]*domain.CrawlJob, len(adapters))
	for i, adapter := range adapters {
		job := &domain.CrawlJob{
			CompanyID: company.ID,
			Source:    adapter.Source(),
			Status:    domain.JobPending,
			StartTime: time.Now(),
		}
		if err := job.Transition(domain.JobRunning); err != nil {
			o.abortJobs(ctx, jobs[:i], err.Error())
			return RunSummary{}, err
		}
		if err := o.jobs.Create(ctx, job); err != nil {
			o.abortJobs(ctx, jobs[:i], "run aborted: "+err.Error())
			return RunSummary{}, err
		}
		jobs[i] = job
	}

	// Fan out, one slot per adapter. Tasks never push an error into the
	// group: a failing source must not cancel its siblings.
	outcomes := make([]sourceOutcome, len(adapters))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.MaxConcurrentSources)
	for i, adapter := range adapters {
		g.Go(func() error {
			outcomes[i] = o.fetchSource(gctx, adapter, company, windowDays)
			return nil
		})
	}
	_ = g.Wait()

	// Join-then-merge: first-seen-wins dedup across all sources in
	// registration order.
	merged, perSourceKept := mergeOutcomes(adapters, outcomes)
	summary.TotalUnique = len(merged)

	savedURLs, persistErr := o.persist(ctx, merged)
	summary.TotalSaved = len(savedURLs)

	anySuccess := false
	for i, adapter := range adapters {
		out := outcomes[i]
		result := SourceResult{
			Source:    adapter.Source(),
			Found:     out.found,
			Processed: out.processed,
		}

		if out.err != nil {
			result.Error = out.err.Error()
			if err := jobs[i].Fail(out.err.Error()); err != nil {
				o.log.Error("job transition failed", "source", adapter.Source(), "error", err)
			}
		} else {
			anySuccess = true
			for _, url := range perSourceKept[adapter.Source()] {
				if savedURLs[url] {
					result.Saved++
				}
			}
			if err := jobs[i].Complete(out.found, out.processed, result.Saved); err != nil {
				o.log.Error("job transition failed", "source", adapter.Source(), "error", err)
			}
		}

		if err := o.jobs.Update(ctx, jobs[i]); err != nil {
			o.log.Error("job update failed", "source", adapter.Source(), "error", err)
		}

		summary.Sources = append(summary.Sources, result)
		summary.TotalFound += out.found
	}

	summary.Success = anySuccess
	summary.FinishedAt = time.Now()

	o.log.Info("crawl finished",
		"company", company.Name,
		"found", summary.TotalFound,
		"unique", summary.TotalUnique,
		"saved", summary.TotalSaved,
		"success", summary.Success)

	if persistErr != nil {
		o.log.Warn("crawl persisted partially", "company", company.Name, "error", persistErr)
	}
	return summary, nil
}

// CrawlAll runs every active company sequentially with a politeness
// pause in between. Per-company failures are recorded, not propagated.
func (o *Orchestrator) CrawlAll(ctx context.Context, windowDays int, progress Progress) ([]RunSummary, error) {
	companies, err := o.companies.Active(ctx)
	if err != nil {
		return nil, err
	}

	pause := time.Duration(o.cfg.CompanyPauseSeconds * float64(time.Second))
	summaries := make([]RunSummary, 0, len(companies))

	for i, company := range companies {
		if i > 0 && pause > 0 {
			if err := sleepCtx(ctx, pause); err != nil {
				return summaries, err
			}
		}

		summary, err := o.Crawl(ctx, company, windowDays)
		if err != nil {
			o.log.Error("crawl failed", "company", company.Name, "error", err)
			summary = RunSummary{CompanyID: company.ID, CompanyName: company.Name}
		}
		summaries = append(summaries, summary)

		if progress != nil {
			progress(i+1, len(companies), company, summary)
		}
	}

	return summaries, nil
}

// fetchSource runs one adapter end to end: search, validate, bounded
// detail fan-out, validate again.
func (o *Orchestrator) fetchSource(ctx context.Context, adapter ports.SourceAdapter, company domain.Company, windowDays int) sourceOutcome {
	candidates, err := adapter.Search(ctx, company, windowDays)
	if err != nil {
		return sourceOutcome{err: err}
	}

	valid := candidates[:0]
	for _, c := range candidates {
		if crawler.ValidCandidate(c) {
			valid = append(valid, c)
		}
	}
	if len(valid) > o.cfg.MaxArticlesPerSource {
		valid = valid[:o.cfg.MaxArticlesPerSource]
	}

	out := sourceOutcome{found: len(valid)}

	fetched := make([]*domain.Article, len(valid))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.MaxConcurrentDetails)
	for i, candidate := range valid {
		g.Go(func() error {
			article, err := adapter.FetchDetail(gctx, candidate.URL)
			if err != nil {
				// Per-item fetch/parse failures skip the item only.
				o.log.Debug("detail fetch skipped",
					"source", adapter.Source(), "url", candidate.URL, "error", err)
				return nil
			}
			fetched[i] = article
			return nil
		})
	}
	_ = g.Wait()

	for i, article := range fetched {
		if !crawler.ValidArticle(article) {
			continue
		}
		o.enrich(article, valid[i], company)
		out.articles = append(out.articles, *article)
		out.processed++
	}

	return out
}

// enrich fills the fields search knows better than the article page,
// plus the heuristic summary and keywords.
func (o *Orchestrator) enrich(article *domain.Article, candidate domain.Candidate, company domain.Company) {
	article.CompanyID = company.ID
	if article.Title == "" {
		article.Title = candidate.Title
	}
	if article.Author == "" {
		article.Author = candidate.Author
	}
	if article.PublishedAt == nil {
		article.PublishedAt = candidate.PublishedAt
	}
	if article.Summary == "" {
		article.Summary = textproc.Summarize(article.Content, summaryMaxRunes)
	}
	if article.Summary == "" {
		article.Summary = candidate.Summary
	}
	if len(article.Keywords) == 0 {
		article.Keywords = textproc.Keywords(article.FullText(), fallbackKeywords)
	}
}

// mergeOutcomes deduplicates by canonical URL with first-seen-wins
// semantics across all sources, in adapter registration order. It also
// reports which URLs each source contributed after dedup.
func mergeOutcomes(adapters []ports.SourceAdapter, outcomes []sourceOutcome) ([]domain.Article, map[domain.Source][]string) {
	var merged []domain.Article
	seen := map[string]bool{}
	kept := map[domain.Source][]string{}

	for i, adapter := range adapters {
		for _, article := range outcomes[i].articles {
			if seen[article.URL] {
				continue
			}
			seen[article.URL] = true
			merged = append(merged, article)
			kept[adapter.Source()] = append(kept[adapter.Source()], article.URL)
		}
	}

	return merged, kept
}

// persist writes the merged set in fixed-size batches. A failing batch
// is dropped and logged; prior batches stay committed.
func (o *Orchestrator) persist(ctx context.Context, merged []domain.Article) (map[string]bool, error) {
	saved := map[string]bool{}
	if len(merged) == 0 {
		return saved, nil
	}

	urls := make([]string, len(merged))
	for i, article := range merged {
		urls[i] = article.URL
	}
	existing, err := o.articles.ExistingURLs(ctx, urls)
	if err != nil {
		return saved, err
	}

	fresh := merged[:0]
	for _, article := range merged {
		if !existing[article.URL] {
			fresh = append(fresh, article)
		}
	}

	batchSize := o.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = len(fresh)
	}

	var firstErr error
	for start := 0; start < len(fresh); start += batchSize {
		end := min(start+batchSize, len(fresh))
		batch := fresh[start:end]

		if _, err := o.articles.SaveBatch(ctx, batch); err != nil {
			o.log.Error("batch persist failed", "size", len(batch), "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		for _, article := range batch {
			saved[article.URL] = true
		}
	}

	return saved, firstErr
}

// abortJobs fails jobs already created for a run that cannot proceed,
// so none is left observed as running after Crawl returns.
func (o *Orchestrator) abortJobs(ctx context.Context, jobs []*domain.CrawlJob, message string) {
	for _, job := range jobs {
		if err := job.Fail(message); err != nil {
			o.log.Error("job transition failed", "source", job.Source, "error", err)
			continue
		}
		if err := o.jobs.Update(ctx, job); err != nil {
			o.log.Error("job update failed", "source", job.Source, "error", err)
		}
	}
}

func (o *Orchestrator) acquire(companyID int64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inflight[companyID] {
		return false
	}
	o.inflight[companyID] = true
	return true
}

func (o *Orchestrator) release(companyID int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inflight, companyID)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
