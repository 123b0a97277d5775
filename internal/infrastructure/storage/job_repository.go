package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
)

// JobRepository tracks crawl job lifecycle rows.
type JobRepository struct {
	db *sql.DB
}

var _ ports.JobRepository = (*JobRepository)(nil)

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.CrawlJob) error {
	const query = `INSERT INTO crawl_jobs
		(company_id, source, status, start_time, end_time, found, processed, saved, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		job.CompanyID, string(job.Source), string(job.Status), job.StartTime,
		job.EndTime, job.Found, job.Processed, job.Saved, job.ErrorMessage,
	).Scan(&job.ID)
	if err != nil {
		return domain.Errorf(domain.KindPersistence, "create job: %v", err)
	}
	return nil
}

func (r *JobRepository) Update(ctx context.Context, job *domain.CrawlJob) error {
	query, args, err := psql.
		Update("crawl_jobs").
		Set("status", string(job.Status)).
		Set("end_time", job.EndTime).
		Set("found", job.Found).
		Set("processed", job.Processed).
		Set("saved", job.Saved).
		Set("error_message", job.ErrorMessage).
		Where(sq.Eq{"id": job.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build job update: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Errorf(domain.KindPersistence, "update job %d: %v", job.ID, err)
	}
	return nil
}

// Since lists jobs started after the given instant, newest first.
func (r *JobRepository) Since(ctx context.Context, since time.Time) ([]domain.CrawlJob, error) {
	query, args, err := psql.
		Select("id, company_id, source, status, start_time, end_time, found, processed, saved, error_message").
		From("crawl_jobs").
		Where(sq.GtOrEq{"start_time": since}).
		OrderBy("start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build jobs query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.CrawlJob
	for rows.Next() {
		var (
			job     domain.CrawlJob
			source  string
			status  string
			endTime sql.NullTime
		)
		if err := rows.Scan(&job.ID, &job.CompanyID, &source, &status, &job.StartTime,
			&endTime, &job.Found, &job.Processed, &job.Saved, &job.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		job.Source = domain.Source(source)
		job.Status = domain.JobStatus(status)
		if endTime.Valid {
			t := endTime.Time
			job.EndTime = &t
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return jobs, nil
}

// DeleteBefore prunes old job rows and reports how many were removed.
func (r *JobRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int, error) {
	query, args, err := psql.
		Delete("crawl_jobs").
		Where(sq.Lt{"start_time": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build jobs delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, domain.Errorf(domain.KindPersistence, "delete jobs: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}
