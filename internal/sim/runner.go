// Package sim wires the fleet tooling together end to end: normalize a
// sample stream, run the due schedule, scan the resulting event log and
// evaluate the run against mission success criteria. It exists to validate
// that the subcomponents compose, not to model flight physics.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/anomaly"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/config"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/missions"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/scheduler"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/application"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/infrastructure/csvlog"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/infrastructure/jsonstream"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/plugins"
)

// Options select the inputs of one simulated run.
type Options struct {
	MissionPath          string
	StreamPath           string
	EventLogPath         string
	SchedulePath         string
	OrchestrationLogPath string
	CriteriaPath         string
	Profile              string
}

// Result summarizes one simulated run.
type Result struct {
	Objective   string
	Events      int
	Rows        int
	TasksRun    int
	AnomalyRate float64
	Passed      bool
}

// Runner executes simulated runs.
type Runner struct {
	models *anomaly.Manager
	logger *log.Logger
}

// NewRunner constructs a sim runner.
func NewRunner(models *anomaly.Manager, logger *log.Logger) (*Runner, error) {
	if models == nil {
		return nil, errors.New("sim: nil model manager")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{models: models, logger: logger}, nil
}

// Run executes one end-to-end pass.
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	var result Result

	if opts.MissionPath != "" {
		mission, err := missions.Load(opts.MissionPath)
		if err != nil {
			return result, err
		}
		result.Objective = mission.Mission.Objective
		if result.Objective == "" {
			result.Objective = "unspecified objective"
		}
		r.logger.Printf("loaded mission: %s", result.Objective)
	}

	r.logger.Printf("generating event log from sample telemetry")
	events, err := jsonstream.ReadFile(opts.StreamPath)
	if err != nil {
		return result, err
	}
	normalizer, err := application.NewNormalizer(plugins.Builtin(r.logger), r.logger)
	if err != nil {
		return result, err
	}
	rows := normalizer.Normalize(events)
	if err := csvlog.WriteFile(opts.EventLogPath, rows); err != nil {
		return result, err
	}
	result.Events = len(events)
	result.Rows = len(rows)

	r.logger.Printf("running orchestrator")
	schedule, err := scheduler.LoadSchedule(opts.SchedulePath)
	if err != nil {
		return result, err
	}
	runner := scheduler.NewRunner(r.logger)
	runner.RegisterFleetActions()
	entries := runner.RunDue(ctx, schedule.Tasks, time.Now().UTC(), 0, true)
	if err := scheduler.AppendLog(opts.OrchestrationLogPath, entries); err != nil {
		return result, err
	}
	result.TasksRun = len(entries)

	classifier, err := r.models.Get(opts.Profile)
	if err != nil {
		return result, err
	}
	scanner, err := anomaly.NewScanner(classifier, r.logger)
	if err != nil {
		return result, err
	}
	report, err := scanner.ScanFile(ctx, opts.EventLogPath)
	if err != nil {
		return result, err
	}

	criteriaDoc, err := config.Load(opts.CriteriaPath)
	if err != nil {
		return result, err
	}
	profiles := config.Section(criteriaDoc, "profiles")
	criteria := anomaly.CriteriaFromProfile(config.Section(profiles, profileName(opts.Profile)))

	result.AnomalyRate, result.Passed = report.Evaluate(criteria)
	r.logger.Printf("anomaly rate: %.2f%%", result.AnomalyRate*100)
	r.logger.Printf("success criteria met: %v", result.Passed)
	return result, nil
}

func profileName(profile string) string {
	if profile == "" {
		return anomaly.DefaultProfile
	}
	return profile
}

// String renders a one-line run summary.
func (r Result) String() string {
	return fmt.Sprintf("events=%d rows=%d tasks=%d anomaly_rate=%.4f passed=%v",
		r.Events, r.Rows, r.TasksRun, r.AnomalyRate, r.Passed)
}
