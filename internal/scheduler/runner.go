package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/observability/metrics"
)

// Action is one orchestrated behavior a task can trigger.
type Action func(ctx context.Context) error

// LogEntry records one executed action for the orchestration log.
type LogEntry struct {
	Task      string `json:"task"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

// Runner executes scheduled tasks against a named action map.
type Runner struct {
	actions map[string]Action
	logger  *log.Logger
}

// NewRunner constructs a runner with no actions registered.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{actions: make(map[string]Action), logger: logger}
}

// RegisterAction binds a name to an action. Later registrations win.
func (r *Runner) RegisterAction(name string, action Action) {
	if name == "" || action == nil {
		return
	}
	r.actions[name] = action
}

// RegisterFleetActions installs the built-in fleet actions.
func (r *Runner) RegisterFleetActions() {
	r.RegisterAction("push_telemetry", func(ctx context.Context) error {
		r.logger.Printf("pushing telemetry to central repository (placeholder)")
		return nil
	})
	r.RegisterAction("replan_isr_sweep", func(ctx context.Context) error {
		r.logger.Printf("replanning isr sweep (placeholder)")
		return nil
	})
}

// RunDue executes every task whose cron expression fired within the lookback
// window ending at now, or every task when force is set. Tasks with missing
// names or actions, unparsable cron expressions, or unknown actions are
// skipped with a warning. Returns log entries for executed tasks.
func (r *Runner) RunDue(ctx context.Context, tasks []Task, now time.Time, lookback time.Duration, force bool) []LogEntry {
	if lookback <= 0 {
		lookback = time.Minute
	}
	var entries []LogEntry
	for _, task := range tasks {
		if task.Action == "" {
			continue
		}
		if !force && !due(task.Cron, now, lookback) {
			continue
		}
		action, ok := r.actions[task.Action]
		if !ok {
			r.logger.Printf("scheduler: task %q names unknown action %q, skipping", task.Name, task.Action)
			continue
		}
		if err := action(ctx); err != nil {
			r.logger.Printf("scheduler: task %q action %q failed: %v", task.Name, task.Action, err)
			metrics.IncSchedulerRun(metrics.ResultError)
			continue
		}
		metrics.IncSchedulerRun(metrics.ResultSuccess)
		entries = append(entries, LogEntry{
			Task:      task.Name,
			Action:    task.Action,
			Timestamp: now.UTC().Format(time.RFC3339),
		})
	}
	return entries
}

// due reports whether a cron expression has a fire time inside
// (now-lookback, now]. An empty or unparsable expression is never due.
func due(expr string, now time.Time, lookback time.Duration) bool {
	if expr == "" {
		return false
	}
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return false
	}
	next := schedule.Next(now.Add(-lookback))
	return !next.After(now)
}
