// Package app wires configuration, infrastructure and use cases into
// one runnable application.
package app

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"NewsPulse/internal/classify"
	"NewsPulse/internal/config"
	"NewsPulse/internal/crawler"
	crawlinfra "NewsPulse/internal/infrastructure/crawler"
	"NewsPulse/internal/infrastructure/ml"
	"NewsPulse/internal/infrastructure/scheduler"
	"NewsPulse/internal/infrastructure/storage"
	"NewsPulse/internal/insight"
	"NewsPulse/internal/logging"
	"NewsPulse/internal/ports"
	"NewsPulse/internal/usecase"
)

// classifySweepLimit bounds one daily classification sweep.
const classifySweepLimit = 1000

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg config.Config
	log *slog.Logger

	Orchestrator *usecase.Orchestrator
	Classifier   *usecase.Classifier
	Aggregator   *usecase.Aggregator
	Insights     *usecase.Insights

	pipeline  *usecase.Pipeline
	scheduler *usecase.Scheduler
}

// New builds the application on an open database handle.
func New(cfg config.Config, db *sql.DB, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	articles := storage.NewArticleRepository(db)
	jobs := storage.NewJobRepository(db)
	trends := storage.NewTrendRepository(db)
	companies := storage.NewCompanyRepository(db)

	lexicon := loadLexicon(cfg.Classifier, baseLogger)

	var inference ports.Inference
	if cfg.ML.InferenceURL != "" {
		inference = ml.NewClient(cfg.ML.InferenceURL, cfg.ML.APIKey)
	}

	registry := buildRegistry(cfg.Crawler)

	orchestrator := usecase.NewOrchestrator(registry, articles, jobs, companies,
		cfg.Crawler, logging.ForComponent(baseLogger, "orchestrator"))

	classifier := usecase.NewClassifier(articles,
		classify.NewSentimentClassifier(lexicon, inference,
			cfg.Classifier.ConfidenceThreshold, cfg.Classifier.MaxKeywords,
			logging.ForComponent(baseLogger, "sentiment")),
		classify.NewStakeholderClassifier(lexicon, cfg.Classifier.MaxKeywords),
		cfg.Classifier, logging.ForComponent(baseLogger, "classifier"))

	aggregator := usecase.NewAggregator(articles, trends,
		logging.ForComponent(baseLogger, "aggregator"))

	insights := usecase.NewInsights(articles, trends, companies,
		insight.NewBuilder(lexicon))

	pipeline := usecase.NewPipeline(orchestrator, classifier, aggregator,
		cfg.Crawler.WindowDays, classifySweepLimit,
		logging.ForComponent(baseLogger, "pipeline"))

	driver := scheduler.NewCronScheduler(cfg.Scheduler.CronExpression, cfg.Scheduler.Location())

	return &Application{
		cfg:          cfg,
		log:          baseLogger,
		Orchestrator: orchestrator,
		Classifier:   classifier,
		Aggregator:   aggregator,
		Insights:     insights,
		pipeline:     pipeline,
		scheduler:    usecase.NewScheduler(driver, pipeline),
	}
}

// RunOnce performs a single daily cycle immediately.
func (a *Application) RunOnce(ctx context.Context) error {
	now := time.Now().In(a.cfg.Scheduler.Location())
	return a.pipeline.ProcessDay(ctx, now)
}

// Start launches the recurring schedule; Stop tears it down.
func (a *Application) Start(ctx context.Context) error {
	return a.scheduler.Start(ctx)
}

func (a *Application) Stop(ctx context.Context) error {
	return a.scheduler.Stop(ctx)
}

func buildRegistry(cfg config.CrawlerConfig) *crawler.Registry {
	client := &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}
	delay := time.Duration(cfg.DelaySeconds * float64(time.Second))
	jitter := time.Duration(cfg.JitterSeconds * float64(time.Second))

	// One fetcher per source keeps the politeness budget per portal.
	registry := crawler.NewRegistry()
	registry.Register(crawlinfra.NewNaverAdapter(
		crawlinfra.NewFetcher(client, delay, jitter, cfg.UserAgent),
		"", cfg.SearchPages, cfg.MaxArticlesPerSource))
	registry.Register(crawlinfra.NewDaumAdapter(
		crawlinfra.NewFetcher(client, delay, jitter, cfg.UserAgent),
		"", cfg.SearchPages, cfg.MaxArticlesPerSource))
	registry.Register(crawlinfra.NewGoogleNewsAdapter(
		crawlinfra.NewFetcher(client, delay, jitter, cfg.UserAgent),
		"", cfg.MaxArticlesPerSource))
	return registry
}

func loadLexicon(cfg config.ClassifierConfig, log *slog.Logger) *classify.Lexicon {
	if cfg.LexiconPath == "" {
		return classify.DefaultLexicon()
	}
	lexicon, err := classify.LoadLexicon(cfg.LexiconPath)
	if err != nil {
		log.Warn("lexicon load failed, using defaults", "path", cfg.LexiconPath, "error", err)
		return classify.DefaultLexicon()
	}
	return lexicon
}
