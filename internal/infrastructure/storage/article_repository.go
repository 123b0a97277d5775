package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
)

// ArticleRepository persists collected articles and their classification.
type ArticleRepository struct {
	db *sql.DB
}

var _ ports.ArticleRepository = (*ArticleRepository)(nil)

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

const articleColumns = `id, company_id, title, content, url, source, author,
	published_at, collected_at, keywords, summary,
	sentiment, sentiment_confidence, stakeholder`

// ExistingURLs returns the subset of urls already stored.
func (r *ArticleRepository) ExistingURLs(ctx context.Context, urls []string) (map[string]bool, error) {
	if len(urls) == 0 {
		return map[string]bool{}, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT url FROM articles WHERE url = ANY($1)`, pq.StringArray(urls))
	if err != nil {
		return nil, fmt.Errorf("query existing urls: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("scan url: %w", err)
		}
		existing[url] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return existing, nil
}

// SaveBatch inserts articles inside one transaction. URLs that already
// exist are skipped by the conflict clause, never overwritten.
func (r *ArticleRepository) SaveBatch(ctx context.Context, articles []domain.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, domain.Errorf(domain.KindPersistence, "begin tx: %v", err)
	}

	const insert = `INSERT INTO articles
		(company_id, title, content, url, source, author, published_at, collected_at, keywords, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (url) DO NOTHING`

	saved := 0
	for _, a := range articles {
		res, err := tx.ExecContext(ctx, insert,
			a.CompanyID, a.Title, a.Content, a.URL, string(a.Source), a.Author,
			a.PublishedAt, a.CollectedAt, pq.StringArray(a.Keywords), a.Summary)
		if err != nil {
			_ = tx.Rollback()
			return 0, domain.Errorf(domain.KindPersistence, "insert article %s: %v", a.URL, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			saved += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, domain.Errorf(domain.KindPersistence, "commit batch: %v", err)
	}
	return saved, nil
}

// PendingClassification lists articles whose sentiment is still unset,
// oldest first so backlogs drain in arrival order.
func (r *ArticleRepository) PendingClassification(ctx context.Context, limit int) ([]domain.Article, error) {
	query, args, err := psql.
		Select(articleColumns).
		From("articles").
		Where(sq.Eq{"sentiment": nil}).
		OrderBy("collected_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending query: %w", err)
	}
	return r.queryArticles(ctx, query, args...)
}

// UpdateClassification stores sentiment, stakeholder and merged keywords.
func (r *ArticleRepository) UpdateClassification(ctx context.Context, article domain.Article) error {
	query, args, err := psql.
		Update("articles").
		Set("sentiment", article.Sentiment).
		Set("sentiment_confidence", article.SentimentConfidence).
		Set("stakeholder", article.Stakeholder).
		Set("keywords", pq.StringArray(article.Keywords)).
		Set("summary", article.Summary).
		Where(sq.Eq{"id": article.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Errorf(domain.KindPersistence, "update classification %d: %v", article.ID, err)
	}
	return nil
}

// ClassifiedBetween lists classified articles published inside the
// window. Articles without a published date fall back to collection time.
func (r *ArticleRepository) ClassifiedBetween(ctx context.Context, from, to time.Time) ([]domain.Article, error) {
	query, args, err := psql.
		Select(articleColumns).
		From("articles").
		Where(sq.NotEq{"sentiment": nil}).
		Where(sq.GtOrEq{"COALESCE(published_at, collected_at)": from}).
		Where(sq.Lt{"COALESCE(published_at, collected_at)": to}).
		OrderBy("COALESCE(published_at, collected_at) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build window query: %w", err)
	}
	return r.queryArticles(ctx, query, args...)
}

// ClassifiedForStakeholder narrows the window to one company and stakeholder.
func (r *ArticleRepository) ClassifiedForStakeholder(ctx context.Context, companyID int64, stakeholder domain.Stakeholder, from, to time.Time) ([]domain.Article, error) {
	query, args, err := psql.
		Select(articleColumns).
		From("articles").
		Where(sq.Eq{"company_id": companyID, "stakeholder": stakeholder}).
		Where(sq.NotEq{"sentiment": nil}).
		Where(sq.GtOrEq{"COALESCE(published_at, collected_at)": from}).
		Where(sq.Lt{"COALESCE(published_at, collected_at)": to}).
		OrderBy("COALESCE(published_at, collected_at) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stakeholder query: %w", err)
	}
	return r.queryArticles(ctx, query, args...)
}

func (r *ArticleRepository) CountAll(ctx context.Context) (int, error) {
	return r.count(ctx, psql.Select("COUNT(*)").From("articles"))
}

func (r *ArticleRepository) CountClassified(ctx context.Context) (int, error) {
	return r.count(ctx, psql.Select("COUNT(*)").From("articles").Where(sq.NotEq{"sentiment": nil}))
}

func (r *ArticleRepository) count(ctx context.Context, builder sq.SelectBuilder) (int, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

func (r *ArticleRepository) queryArticles(ctx context.Context, query string, args ...any) ([]domain.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return articles, nil
}

func scanArticle(rows *sql.Rows) (domain.Article, error) {
	var (
		a           domain.Article
		source      string
		publishedAt sql.NullTime
		keywords    pq.StringArray
		sentiment   sql.NullString
		confidence  sql.NullFloat64
		stakeholder sql.NullString
	)

	err := rows.Scan(&a.ID, &a.CompanyID, &a.Title, &a.Content, &a.URL, &source,
		&a.Author, &publishedAt, &a.CollectedAt, &keywords, &a.Summary,
		&sentiment, &confidence, &stakeholder)
	if err != nil {
		return domain.Article{}, fmt.Errorf("scan article: %w", err)
	}

	a.Source = domain.Source(source)
	a.Keywords = keywords
	if publishedAt.Valid {
		t := publishedAt.Time
		a.PublishedAt = &t
	}
	if sentiment.Valid {
		s := domain.Sentiment(sentiment.String)
		a.Sentiment = &s
	}
	if confidence.Valid {
		c := confidence.Float64
		a.SentimentConfidence = &c
	}
	if stakeholder.Valid {
		s := domain.Stakeholder(stakeholder.String)
		a.Stakeholder = &s
	}

	return a, nil
}
