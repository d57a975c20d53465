package scheduler

import (
	"context"
	"log"
	"time"
)

// Daemon re-evaluates the schedule on a fixed interval and appends executed
// tasks to the orchestration log.
type Daemon struct {
	runner       *Runner
	schedulePath string
	logPath      string
	interval     time.Duration
	logger       *log.Logger
}

// NewDaemon constructs a daemon. The interval doubles as the cron lookback
// window so a fire time is observed by exactly one tick.
func NewDaemon(runner *Runner, schedulePath, logPath string, interval time.Duration, logger *log.Logger) *Daemon {
	if interval <= 0 {
		interval = time.Minute
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Daemon{
		runner:       runner,
		schedulePath: schedulePath,
		logPath:      logPath,
		interval:     interval,
		logger:       logger,
	}
}

// Start begins the scheduler loop and blocks until the context is done.
func (d *Daemon) Start(ctx context.Context) {
	if d == nil || d.runner == nil {
		return
	}
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			d.runOnce(ctx, now.UTC())
		}
	}
}

func (d *Daemon) runOnce(ctx context.Context, now time.Time) {
	schedule, err := LoadSchedule(d.schedulePath)
	if err != nil {
		d.logger.Printf("scheduler: load schedule: %v", err)
		return
	}
	entries := d.runner.RunDue(ctx, schedule.Tasks, now, d.interval, false)
	if len(entries) == 0 {
		return
	}
	if err := AppendLog(d.logPath, entries); err != nil {
		d.logger.Printf("scheduler: append log: %v", err)
	}
}
