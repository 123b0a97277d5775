package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"NewsPulse/internal/domain"
)

func classifiedArticle(id int64, url string, day time.Time, sentiment domain.Sentiment, stakeholder domain.Stakeholder, keywords ...string) domain.Article {
	conf := 0.8
	published := day.Add(10 * time.Hour)
	return domain.Article{
		ID:                  id,
		CompanyID:           1,
		Title:               "기사 제목 " + url,
		URL:                 url,
		Source:              domain.SourceNaver,
		PublishedAt:         &published,
		CollectedAt:         published,
		Keywords:            keywords,
		Sentiment:           &sentiment,
		SentimentConfidence: &conf,
		Stakeholder:         &stakeholder,
	}
}

func TestAggregateDayBuildsBuckets(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	repo := newFakeArticleRepo()
	repo.articles = map[string]domain.Article{
		"u1": classifiedArticle(1, "u1", day, domain.VeryPositive, domain.StakeholderInvestor, "실적", "배당"),
		"u2": classifiedArticle(2, "u2", day, domain.Negative, domain.StakeholderInvestor, "실적"),
		"u3": classifiedArticle(3, "u3", day, domain.Neutral, domain.StakeholderInvestor),
		"u4": classifiedArticle(4, "u4", day, domain.Positive, domain.StakeholderCustomer, "품질"),
		// outside the day, must be ignored
		"u5": classifiedArticle(5, "u5", day.AddDate(0, 0, 1), domain.Positive, domain.StakeholderInvestor),
	}

	trends := newFakeTrendRepo()
	aggregator := NewAggregator(repo, trends, testLogger())

	summary, err := aggregator.AggregateDay(context.Background(), day.Add(13*time.Hour))
	if err != nil {
		t.Fatalf("AggregateDay error: %v", err)
	}

	if summary.TotalArticles != 4 {
		t.Fatalf("TotalArticles = %d, want 4", summary.TotalArticles)
	}
	if summary.BucketsWritten != 2 {
		t.Fatalf("BucketsWritten = %d, want 2", summary.BucketsWritten)
	}

	investor := trends.buckets[trendKey(1, domain.StakeholderInvestor, day)]
	if investor.TotalArticles != 3 {
		t.Fatalf("investor TotalArticles = %d, want 3", investor.TotalArticles)
	}
	if investor.PositiveCount != 1 || investor.NegativeCount != 1 || investor.NeutralCount != 1 {
		t.Fatalf("investor counts = %d/%d/%d, want 1/1/1",
			investor.PositiveCount, investor.NegativeCount, investor.NeutralCount)
	}

	// scores 2, -1, 0: mean 1/3, population std-dev sqrt(14/9)
	wantMean := 1.0 / 3.0
	if math.Abs(investor.AvgSentiment-wantMean) > 1e-9 {
		t.Fatalf("investor AvgSentiment = %f, want %f", investor.AvgSentiment, wantMean)
	}
	wantVol := math.Sqrt(14.0 / 9.0)
	if math.Abs(investor.Volatility-wantVol) > 1e-9 {
		t.Fatalf("investor Volatility = %f, want %f", investor.Volatility, wantVol)
	}

	if len(investor.TopKeywords) == 0 || investor.TopKeywords[0] != "실적" {
		t.Fatalf("investor TopKeywords = %v, want 실적 first", investor.TopKeywords)
	}
}

func TestAggregateDayIsIdempotent(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	repo := newFakeArticleRepo()
	repo.articles = map[string]domain.Article{
		"u1": classifiedArticle(1, "u1", day, domain.Positive, domain.StakeholderInvestor, "실적"),
		"u2": classifiedArticle(2, "u2", day, domain.Negative, domain.StakeholderInvestor),
	}

	trends := newFakeTrendRepo()
	aggregator := NewAggregator(repo, trends, testLogger())

	first, err := aggregator.AggregateDay(context.Background(), day)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	snapshot := trends.buckets[trendKey(1, domain.StakeholderInvestor, day)]

	second, err := aggregator.AggregateDay(context.Background(), day)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if first.BucketsWritten != second.BucketsWritten {
		t.Fatalf("bucket counts differ: %d vs %d", first.BucketsWritten, second.BucketsWritten)
	}
	if len(trends.buckets) != 1 {
		t.Fatalf("stored buckets = %d, want exactly 1 per key", len(trends.buckets))
	}

	again := trends.buckets[trendKey(1, domain.StakeholderInvestor, day)]
	if again.ID != snapshot.ID {
		t.Fatalf("bucket id changed on re-run: %d -> %d", snapshot.ID, again.ID)
	}
	if again.AvgSentiment != snapshot.AvgSentiment || again.Volatility != snapshot.Volatility ||
		again.TotalArticles != snapshot.TotalArticles {
		t.Fatal("bucket values changed on unchanged input")
	}
}
