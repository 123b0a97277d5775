package usecase

import (
	"context"
	"log/slog"
	"math"
	"time"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
	"NewsPulse/internal/textproc"
)

const trendTopKeywords = 10

// AggregateSummary reports one daily aggregation run.
type AggregateSummary struct {
	Date           time.Time
	TotalArticles  int
	BucketsWritten int
}

// Aggregator recomputes daily trend buckets from classified articles.
type Aggregator struct {
	articles ports.ArticleRepository
	trends   ports.TrendRepository
	log      *slog.Logger
}

func NewAggregator(articles ports.ArticleRepository, trends ports.TrendRepository, log *slog.Logger) *Aggregator {
	return &Aggregator{articles: articles, trends: trends, log: log}
}

// AggregateDay recomputes every (company, stakeholder) bucket for one
// day and upserts them in place. Re-running for the same day yields
// identical buckets, never duplicates.
func (a *Aggregator) AggregateDay(ctx context.Context, date time.Time) (AggregateSummary, error) {
	day := domain.Day(date)
	from, to := day, day.AddDate(0, 0, 1)

	articles, err := a.articles.ClassifiedBetween(ctx, from, to)
	if err != nil {
		return AggregateSummary{}, err
	}

	summary := AggregateSummary{Date: day, TotalArticles: len(articles)}
	if len(articles) == 0 {
		return summary, nil
	}

	type key struct {
		companyID   int64
		stakeholder domain.Stakeholder
	}
	groups := map[key][]domain.Article{}
	var order []key
	for _, article := range articles {
		if article.Stakeholder == nil {
			continue
		}
		k := key{article.CompanyID, *article.Stakeholder}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], article)
	}

	for _, k := range order {
		bucket := buildBucket(k.companyID, k.stakeholder, day, groups[k])
		if err := a.trends.Upsert(ctx, bucket); err != nil {
			return summary, err
		}
		summary.BucketsWritten++
	}

	a.log.Info("daily aggregation finished",
		"date", day.Format("2006-01-02"),
		"articles", summary.TotalArticles,
		"buckets", summary.BucketsWritten)
	return summary, nil
}

func buildBucket(companyID int64, stakeholder domain.Stakeholder, day time.Time, articles []domain.Article) *domain.TrendBucket {
	bucket := &domain.TrendBucket{
		CompanyID:     companyID,
		Stakeholder:   stakeholder,
		Date:          day,
		TotalArticles: len(articles),
	}

	scores := make([]float64, 0, len(articles))
	keywordCounts := map[string]int{}
	for _, article := range articles {
		score := article.Sentiment.Numeric()
		scores = append(scores, score)
		switch {
		case score > 0:
			bucket.PositiveCount++
		case score < 0:
			bucket.NegativeCount++
		default:
			bucket.NeutralCount++
		}
		for _, word := range article.Keywords {
			keywordCounts[word]++
		}
	}

	bucket.AvgSentiment = mean(scores)
	bucket.Volatility = populationStdDev(scores, bucket.AvgSentiment)
	bucket.TopKeywords = textproc.TopCounted(keywordCounts, trendTopKeywords)

	return bucket
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationStdDev divides by N, not N-1: a day's articles are the
// whole population, not a sample.
func populationStdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
