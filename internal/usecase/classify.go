package usecase

import (
	"context"
	"log/slog"
	"time"

	"NewsPulse/internal/classify"
	"NewsPulse/internal/config"
	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
	"NewsPulse/internal/textproc"
)

// ClassifyOutcome reports one classify-pending sweep.
type ClassifyOutcome struct {
	Processed int
	Failed    int
}

// ClassifyStats is the coverage report over the whole article store.
type ClassifyStats struct {
	Total      int
	Classified int
	Pending    int
	Ratio      float64
}

// Classifier runs the sentiment and stakeholder stages over stored
// articles. Classification itself never fails an item; only the
// persistence of a result can.
type Classifier struct {
	articles    ports.ArticleRepository
	sentiment   *classify.SentimentClassifier
	stakeholder *classify.StakeholderClassifier
	cfg         config.ClassifierConfig
	log         *slog.Logger
}

func NewClassifier(articles ports.ArticleRepository, sentiment *classify.SentimentClassifier, stakeholder *classify.StakeholderClassifier, cfg config.ClassifierConfig, log *slog.Logger) *Classifier {
	return &Classifier{
		articles:    articles,
		sentiment:   sentiment,
		stakeholder: stakeholder,
		cfg:         cfg,
		log:         log,
	}
}

// Classify evaluates one article without persisting anything.
func (c *Classifier) Classify(ctx context.Context, article domain.Article) (domain.SentimentResult, domain.StakeholderResult) {
	text := article.FullText()
	return c.sentiment.Classify(ctx, text), c.stakeholder.Classify(text)
}

// ClassifyPending sweeps unclassified articles in fixed-size chunks
// with a pause in between. Work is idempotent and re-entrant: an
// aborted sweep leaves its articles unclassified for the next one.
func (c *Classifier) ClassifyPending(ctx context.Context, limit int) (ClassifyOutcome, error) {
	pending, err := c.articles.PendingClassification(ctx, limit)
	if err != nil {
		return ClassifyOutcome{}, err
	}
	if len(pending) == 0 {
		return ClassifyOutcome{}, nil
	}

	chunkSize := c.cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = len(pending)
	}
	pause := time.Duration(c.cfg.ChunkPauseMillis) * time.Millisecond

	var outcome ClassifyOutcome
	for start := 0; start < len(pending); start += chunkSize {
		if start > 0 && pause > 0 {
			if err := sleepCtx(ctx, pause); err != nil {
				return outcome, err
			}
		}

		end := min(start+chunkSize, len(pending))
		for _, article := range pending[start:end] {
			if err := c.classifyOne(ctx, article); err != nil {
				c.log.Error("classification update failed", "article", article.ID, "error", err)
				outcome.Failed++
				continue
			}
			outcome.Processed++
		}
	}

	c.log.Info("classification sweep finished",
		"processed", outcome.Processed, "failed", outcome.Failed)
	return outcome, nil
}

func (c *Classifier) classifyOne(ctx context.Context, article domain.Article) error {
	sentiment, stakeholder := c.Classify(ctx, article)

	article.Sentiment = &sentiment.Sentiment
	article.SentimentConfidence = &sentiment.Confidence
	article.Stakeholder = &stakeholder.Stakeholder
	article.Keywords = textproc.MergeKeywords(article.Keywords, sentiment.Keywords, c.cfg.MaxKeywords)
	if article.Summary == "" {
		article.Summary = textproc.Summarize(article.Content, summaryMaxRunes)
	}

	return c.articles.UpdateClassification(ctx, article)
}

// Stats reports classification coverage.
func (c *Classifier) Stats(ctx context.Context) (ClassifyStats, error) {
	total, err := c.articles.CountAll(ctx)
	if err != nil {
		return ClassifyStats{}, err
	}
	classified, err := c.articles.CountClassified(ctx)
	if err != nil {
		return ClassifyStats{}, err
	}

	stats := ClassifyStats{
		Total:      total,
		Classified: classified,
		Pending:    total - classified,
	}
	if total > 0 {
		stats.Ratio = float64(classified) / float64(total)
	}
	return stats, nil
}
