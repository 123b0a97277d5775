package usecase

import (
	"context"
	"time"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/insight"
	"NewsPulse/internal/ports"
)

// Insights serves on-demand stakeholder reports.
type Insights struct {
	articles  ports.ArticleRepository
	trends    ports.TrendRepository
	companies ports.CompanyRepository
	builder   *insight.Builder
	now       func() time.Time
}

func NewInsights(articles ports.ArticleRepository, trends ports.TrendRepository, companies ports.CompanyRepository, builder *insight.Builder) *Insights {
	return &Insights{
		articles:  articles,
		trends:    trends,
		companies: companies,
		builder:   builder,
		now:       time.Now,
	}
}

// GetInsight builds the report for one (company, stakeholder) lookback
// window. The trend delta compares the window's live articles against
// the prior period's aggregated buckets.
func (s *Insights) GetInsight(ctx context.Context, companyID int64, stakeholder domain.Stakeholder, windowDays int) (domain.StakeholderInsight, error) {
	if _, err := s.companies.ByID(ctx, companyID); err != nil {
		return domain.StakeholderInsight{}, err
	}

	now := s.now()
	from := now.AddDate(0, 0, -windowDays)

	articles, err := s.articles.ClassifiedForStakeholder(ctx, companyID, stakeholder, from, now)
	if err != nil {
		return domain.StakeholderInsight{}, err
	}

	delta, err := s.trendDelta(ctx, companyID, stakeholder, from, windowDays, articles)
	if err != nil {
		return domain.StakeholderInsight{}, err
	}

	return s.builder.Build(now, insight.Window{
		Stakeholder: stakeholder,
		Articles:    articles,
		TrendDelta:  delta,
	}), nil
}

// trendDelta is current mean sentiment minus the prior period's
// bucket-weighted mean; zero when either side has no data.
func (s *Insights) trendDelta(ctx context.Context, companyID int64, stakeholder domain.Stakeholder, from time.Time, windowDays int, current []domain.Article) (float64, error) {
	priorFrom := from.AddDate(0, 0, -windowDays)
	buckets, err := s.trends.Window(ctx, companyID, stakeholder, priorFrom, from)
	if err != nil {
		return 0, err
	}

	priorSum, priorN := 0.0, 0
	for _, bucket := range buckets {
		priorSum += bucket.AvgSentiment * float64(bucket.TotalArticles)
		priorN += bucket.TotalArticles
	}

	currentSum, currentN := 0.0, 0
	for _, article := range current {
		if article.Sentiment == nil {
			continue
		}
		currentSum += article.Sentiment.Numeric()
		currentN++
	}

	if priorN == 0 || currentN == 0 {
		return 0, nil
	}
	return currentSum/float64(currentN) - priorSum/float64(priorN), nil
}
