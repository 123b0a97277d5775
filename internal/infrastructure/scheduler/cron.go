package scheduler

import (
	"context"
	"strconv"
	"strings"
	"time"

	"NewsPulse/internal/ports"
)

// CronScheduler runs the daily job at the wall-clock time given by a
// "M H * * *" cron expression, evaluated in the configured location.
// Anything fancier than a fixed daily time falls back to a 24h ticker.
type CronScheduler struct {
	spec     string
	location *time.Location
	stop     chan struct{}
}

var _ ports.Scheduler = (*CronScheduler)(nil)

// NewCronScheduler builds a scheduler configured via cron expression string.
func NewCronScheduler(spec string, location *time.Location) *CronScheduler {
	if location == nil {
		location = time.Local
	}
	return &CronScheduler{spec: spec, location: location}
}

// Start begins scheduling; the first run happens at the next matching time.
func (c *CronScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	if c.stop != nil {
		return nil
	}

	c.stop = make(chan struct{})
	go func() {
		for {
			timer := time.NewTimer(time.Until(c.next(time.Now())))
			select {
			case t := <-timer.C:
				job(t)
			case <-ctx.Done():
				timer.Stop()
				return
			case <-c.stop:
				timer.Stop()
				return
			}
		}
	}()

	return nil
}

// Stop halts the scheduling goroutine.
func (c *CronScheduler) Stop(ctx context.Context) error {
	if c.stop == nil {
		return nil
	}
	close(c.stop)
	c.stop = nil
	return nil
}

// next computes the coming trigger after now.
func (c *CronScheduler) next(now time.Time) time.Time {
	minute, hour, ok := parseDailySpec(c.spec)
	if !ok {
		return now.Add(24 * time.Hour)
	}

	local := now.In(c.location)
	candidate := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, c.location)
	if !candidate.After(local) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

// parseDailySpec accepts "M H * * *" with numeric minute and hour.
func parseDailySpec(spec string) (minute, hour int, ok bool) {
	fields := strings.Fields(spec)
	if len(fields) != 5 || fields[2] != "*" || fields[3] != "*" || fields[4] != "*" {
		return 0, 0, false
	}

	minute, err := strconv.Atoi(fields[0])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	hour, err = strconv.Atoi(fields[1])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	return minute, hour, true
}
