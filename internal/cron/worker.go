package cron

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hocs-app/hocs/internal/alerting"
	"github.com/hocs-app/hocs/internal/metrics"
	"github.com/hocs-app/hocs/internal/storage"
)

const (
	sweepJobName = "sweep_sessions"
	sweepLockKey = int64(42)
)

// RunSweeper runs the session expiry sweeper until the context is cancelled.
// The interval setting can be integer seconds or a cron expression; a DB
// setting named sweep_interval_seconds overrides the environment. In a
// multi-instance deployment a Postgres advisory lock ensures only one worker
// executes each sweep.
func RunSweeper(ctx context.Context, st storage.Storage, alerts *alerting.Service) error {
	intervalSetting := "300"
	if raw := os.Getenv("HOCS_SWEEP_INTERVAL"); raw != "" {
		intervalSetting = raw
	}
	if val, err := st.GetSetting(ctx, "sweep_interval_seconds"); err == nil && val != "" {
		intervalSetting = val
	}

	// Control loop ticker (check config and run time)
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	getNextRun := func(setting string, lastRun time.Time) time.Time {
		if v, err := strconv.Atoi(setting); err == nil && v > 0 {
			return lastRun.Add(time.Duration(v) * time.Second)
		}
		if sched, err := cron.ParseStandard(setting); err == nil {
			return sched.Next(lastRun)
		}
		// Fallback to default 5m
		return lastRun.Add(5 * time.Minute)
	}

	// If starting fresh, run immediately, then schedule next
	nextRun := time.Now()

	log.Printf("cron worker starting, initial setting=%q", intervalSetting)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// 1. Check for config update
			if val, err := st.GetSetting(ctx, "sweep_interval_seconds"); err == nil && val != "" {
				if val != intervalSetting {
					log.Printf("cron: interval updated from %q to %q", intervalSetting, val)
					intervalSetting = val
					nextRun = getNextRun(intervalSetting, time.Now())
				}
			}

			// 2. Check if it's time to run
			if time.Now().Before(nextRun) {
				continue
			}

			started := time.Now()

			ok, err := st.AcquireAdvisoryLock(ctx, sweepLockKey)
			if err != nil {
				log.Printf("cron: acquire advisory lock failed: %v", err)
				metrics.UpdateJobMetrics(sweepJobName, started, err)
				nextRun = getNextRun(intervalSetting, time.Now())
				continue
			}
			if !ok {
				// Another worker is running this job.
				log.Printf("cron: advisory lock held by another worker, skipping run")
				nextRun = getNextRun(intervalSetting, time.Now())
				continue
			}

			var removed int64
			var runErr error
			func() {
				defer func() {
					if _, err := st.ReleaseAdvisoryLock(ctx, sweepLockKey); err != nil {
						log.Printf("cron: release advisory lock failed: %v", err)
					}
				}()
				removed, runErr = st.DeleteExpiredSessions(ctx, time.Now())
			}()

			metrics.UpdateJobMetrics(sweepJobName, started, runErr)
			if removed > 0 {
				metrics.SessionsExpiredTotal.Add(float64(removed))
			}
			dur := time.Since(started)
			errMsg := ""
			success := runErr == nil
			if runErr != nil {
				errMsg = runErr.Error()
			}
			if err := st.UpdateScheduledJob(ctx, sweepJobName, started, dur, success, errMsg); err != nil {
				log.Printf("cron: update scheduled_jobs failed: %v", err)
			}

			if runErr != nil {
				log.Printf("cron: job %s completed with error: %v (duration=%s)", sweepJobName, runErr, dur)
				if alerts != nil {
					alerts.JobFailed(ctx, sweepJobName, runErr)
				}
			} else {
				log.Printf("cron: job %s removed %d expired sessions (duration=%s)", sweepJobName, removed, dur)
			}

			nextRun = getNextRun(intervalSetting, time.Now())
		}
	}
}
