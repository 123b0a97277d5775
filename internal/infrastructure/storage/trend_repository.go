package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
)

// TrendRepository stores daily aggregates keyed by
// (company, stakeholder, date). Keyword rankings are encoded as JSON;
// the ordering carries meaning, unlike a plain array column.
type TrendRepository struct {
	db *sql.DB
}

var _ ports.TrendRepository = (*TrendRepository)(nil)

func NewTrendRepository(db *sql.DB) *TrendRepository {
	return &TrendRepository{db: db}
}

// Upsert writes the bucket, replacing any existing row for its key so
// re-running a day's aggregation stays idempotent.
func (r *TrendRepository) Upsert(ctx context.Context, bucket *domain.TrendBucket) error {
	keywords, err := json.Marshal(bucket.TopKeywords)
	if err != nil {
		return fmt.Errorf("encode keywords: %w", err)
	}

	const query = `INSERT INTO trend_buckets
		(company_id, stakeholder, date, total_articles, positive_count, negative_count,
		 neutral_count, avg_sentiment, volatility, top_keywords)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id, stakeholder, date) DO UPDATE
		SET total_articles = EXCLUDED.total_articles,
		    positive_count = EXCLUDED.positive_count,
		    negative_count = EXCLUDED.negative_count,
		    neutral_count  = EXCLUDED.neutral_count,
		    avg_sentiment  = EXCLUDED.avg_sentiment,
		    volatility     = EXCLUDED.volatility,
		    top_keywords   = EXCLUDED.top_keywords
		RETURNING id`

	err = r.db.QueryRowContext(ctx, query,
		bucket.CompanyID, string(bucket.Stakeholder), bucket.Date,
		bucket.TotalArticles, bucket.PositiveCount, bucket.NegativeCount,
		bucket.NeutralCount, bucket.AvgSentiment, bucket.Volatility, keywords,
	).Scan(&bucket.ID)
	if err != nil {
		return domain.Errorf(domain.KindPersistence, "upsert trend bucket: %v", err)
	}
	return nil
}

// Window lists buckets for one key ordered by date ascending.
func (r *TrendRepository) Window(ctx context.Context, companyID int64, stakeholder domain.Stakeholder, from, to time.Time) ([]domain.TrendBucket, error) {
	query, args, err := psql.
		Select("id, company_id, stakeholder, date, total_articles, positive_count, negative_count, neutral_count, avg_sentiment, volatility, top_keywords, created_at").
		From("trend_buckets").
		Where(sq.Eq{"company_id": companyID, "stakeholder": stakeholder}).
		Where(sq.GtOrEq{"date": from}).
		Where(sq.Lt{"date": to}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trend query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query trends: %w", err)
	}
	defer rows.Close()

	var buckets []domain.TrendBucket
	for rows.Next() {
		var (
			bucket      domain.TrendBucket
			stakeholder string
			keywords    []byte
		)
		if err := rows.Scan(&bucket.ID, &bucket.CompanyID, &stakeholder, &bucket.Date,
			&bucket.TotalArticles, &bucket.PositiveCount, &bucket.NegativeCount,
			&bucket.NeutralCount, &bucket.AvgSentiment, &bucket.Volatility,
			&keywords, &bucket.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan trend bucket: %w", err)
		}
		bucket.Stakeholder = domain.Stakeholder(stakeholder)
		if len(keywords) > 0 {
			if err := json.Unmarshal(keywords, &bucket.TopKeywords); err != nil {
				return nil, fmt.Errorf("decode keywords: %w", err)
			}
		}
		buckets = append(buckets, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return buckets, nil
}
