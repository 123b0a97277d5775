package usecase

import (
	"context"
	"time"

	"NewsPulse/internal/domain"
)

// CrawlStatus summarizes recent job activity.
type CrawlStatus struct {
	Jobs      []domain.CrawlJob
	Running   int
	Completed int
	Failed    int
}

// Status reports jobs started after the given instant.
func (o *Orchestrator) Status(ctx context.Context, since time.Time) (CrawlStatus, error) {
	jobs, err := o.jobs.Since(ctx, since)
	if err != nil {
		return CrawlStatus{}, err
	}

	status := CrawlStatus{Jobs: jobs}
	for _, job := range jobs {
		switch job.Status {
		case domain.JobRunning:
			status.Running++
		case domain.JobCompleted:
			status.Completed++
		case domain.JobFailed:
			status.Failed++
		}
	}
	return status, nil
}

// PruneJobs removes job rows older than the cutoff.
func (o *Orchestrator) PruneJobs(ctx context.Context, cutoff time.Time) (int, error) {
	return o.jobs.DeleteBefore(ctx, cutoff)
}
