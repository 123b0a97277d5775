package domain

import "time"

// TrendBucket is the per-day aggregate for one (company, stakeholder)
// pair. The triple key is unique; aggregation upserts in place.
type TrendBucket struct {
	ID          int64
	CompanyID   int64
	Stakeholder Stakeholder
	Date        time.Time

	TotalArticles int
	PositiveCount int
	NegativeCount int
	NeutralCount  int

	// AvgSentiment is on the -2..2 scale; Volatility is the population
	// standard deviation of the per-article numeric scores.
	AvgSentiment float64
	Volatility   float64

	TopKeywords []string

	CreatedAt time.Time
}

// Day normalizes a timestamp to its UTC day boundary, the bucket key.
func Day(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
