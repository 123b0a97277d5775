// Package storage implements the Postgres repositories behind the
// persistence ports. Row encoding lives here: keyword lists travel as
// text[] columns, trend keyword rankings as JSON.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
)

// psql builds queries with Postgres placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT NOT NULL UNIQUE,
			stock_code  TEXT NOT NULL DEFAULT '',
			industry    TEXT NOT NULL DEFAULT '',
			active      BOOLEAN NOT NULL DEFAULT TRUE,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS articles (
			id                   BIGSERIAL PRIMARY KEY,
			company_id           BIGINT NOT NULL REFERENCES companies(id),
			title                TEXT NOT NULL,
			content              TEXT NOT NULL DEFAULT '',
			url                  TEXT NOT NULL UNIQUE,
			source               TEXT NOT NULL,
			author               TEXT NOT NULL DEFAULT '',
			published_at         TIMESTAMPTZ,
			collected_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			keywords             TEXT[] NOT NULL DEFAULT '{}',
			summary              TEXT NOT NULL DEFAULT '',
			sentiment            TEXT,
			sentiment_confidence DOUBLE PRECISION,
			stakeholder          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_pending
			ON articles (collected_at) WHERE sentiment IS NULL`,
		`CREATE TABLE IF NOT EXISTS crawl_jobs (
			id            BIGSERIAL PRIMARY KEY,
			company_id    BIGINT NOT NULL REFERENCES companies(id),
			source        TEXT NOT NULL,
			status        TEXT NOT NULL,
			start_time    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			end_time      TIMESTAMPTZ,
			found         INTEGER NOT NULL DEFAULT 0,
			processed     INTEGER NOT NULL DEFAULT 0,
			saved         INTEGER NOT NULL DEFAULT 0,
			error_message TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS trend_buckets (
			id             BIGSERIAL PRIMARY KEY,
			company_id     BIGINT NOT NULL REFERENCES companies(id),
			stakeholder    TEXT NOT NULL,
			date           DATE NOT NULL,
			total_articles INTEGER NOT NULL DEFAULT 0,
			positive_count INTEGER NOT NULL DEFAULT 0,
			negative_count INTEGER NOT NULL DEFAULT 0,
			neutral_count  INTEGER NOT NULL DEFAULT 0,
			avg_sentiment  DOUBLE PRECISION NOT NULL DEFAULT 0,
			volatility     DOUBLE PRECISION NOT NULL DEFAULT 0,
			top_keywords   JSONB NOT NULL DEFAULT '[]',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (company_id, stakeholder, date)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
