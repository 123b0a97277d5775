package usecase

import (
	"context"
	"log/slog"
	"time"
)

// jobRetention bounds how long finished crawl job rows are kept.
const jobRetention = 30 * 24 * time.Hour

// Pipeline chains the daily workflow: crawl every active company,
// classify the backlog, aggregate the day's trends.
type Pipeline struct {
	orchestrator *Orchestrator
	classifier   *Classifier
	aggregator   *Aggregator
	windowDays   int
	sweepLimit   int
	log          *slog.Logger
}

func NewPipeline(orchestrator *Orchestrator, classifier *Classifier, aggregator *Aggregator, windowDays, sweepLimit int, log *slog.Logger) *Pipeline {
	return &Pipeline{
		orchestrator: orchestrator,
		classifier:   classifier,
		aggregator:   aggregator,
		windowDays:   windowDays,
		sweepLimit:   sweepLimit,
		log:          log,
	}
}

// ProcessDay runs one full daily cycle. Stage failures are logged and
// the remaining stages still run: a crawl hiccup must not block
// classification of yesterday's backlog.
func (p *Pipeline) ProcessDay(ctx context.Context, day time.Time) error {
	if _, err := p.orchestrator.CrawlAll(ctx, p.windowDays, nil); err != nil {
		p.log.Error("crawl stage failed", "error", err)
	}

	if _, err := p.classifier.ClassifyPending(ctx, p.sweepLimit); err != nil {
		p.log.Error("classify stage failed", "error", err)
	}

	if _, err := p.aggregator.AggregateDay(ctx, day); err != nil {
		p.log.Error("aggregate stage failed", "error", err)
		return err
	}

	if _, err := p.orchestrator.PruneJobs(ctx, day.Add(-jobRetention)); err != nil {
		p.log.Warn("job pruning failed", "error", err)
	}

	return ctx.Err()
}
