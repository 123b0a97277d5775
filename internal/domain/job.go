package domain

import (
	"fmt"
	"time"
)

// JobStatus tracks the lifecycle of one source fetch attempt.
// Allowed transitions: pending -> running -> completed | failed.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Terminal reports whether the status is final.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// CrawlJob is one tracked unit of work: one source fetching news for
// one company during one orchestration run.
type CrawlJob struct {
	ID        int64
	CompanyID int64
	Source    Source
	Status    JobStatus
	StartTime time.Time
	EndTime   *time.Time

	Found     int
	Processed int
	Saved     int

	ErrorMessage string
}

// Transition moves the job to the next status, enforcing the state
// machine. Terminal states are immutable.
func (j *CrawlJob) Transition(next JobStatus) error {
	allowed := map[JobStatus][]JobStatus{
		JobPending: {JobRunning},
		JobRunning: {JobCompleted, JobFailed},
	}

	for _, candidate := range allowed[j.Status] {
		if candidate == next {
			j.Status = next
			if next.Terminal() {
				now := time.Now()
				j.EndTime = &now
			}
			return nil
		}
	}

	return &JobStateError{From: j.Status, To: next}
}

// Complete marks the job done with its counters.
func (j *CrawlJob) Complete(found, processed, saved int) error {
	if err := j.Transition(JobCompleted); err != nil {
		return err
	}
	j.Found = found
	j.Processed = processed
	j.Saved = saved
	return nil
}

// Fail marks the job failed with the captured error message.
func (j *CrawlJob) Fail(message string) error {
	if err := j.Transition(JobFailed); err != nil {
		return err
	}
	if message == "" {
		message = "unknown error"
	}
	j.ErrorMessage = message
	return nil
}

// JobStateError signals an illegal job transition. Defensive only; it
// should never fire in correct operation.
type JobStateError struct {
	From JobStatus
	To   JobStatus
}

func (e *JobStateError) Error() string {
	return fmt.Sprintf("illegal crawl job transition %s -> %s", e.From, e.To)
}
