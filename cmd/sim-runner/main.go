// sim-runner exercises the whole toolchain against a sample stream and
// evaluates the run against mission success criteria. A failed run exits
// non-zero.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/anomaly"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/logging"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/observability/metrics"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/sim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts := sim.Options{}

	flags := pflag.NewFlagSet("sim-runner", pflag.ContinueOnError)
	flags.StringVar(&opts.MissionPath, "mission", filepath.Join("missions", "mission_template.yaml"), "path to a compiled mission YAML file")
	flags.StringVar(&opts.StreamPath, "stream", filepath.Join("telemetry", "sample_stream.json"), "path to the sample telemetry stream")
	flags.StringVar(&opts.EventLogPath, "event-log", filepath.Join("telemetry", "event_log.csv"), "path for the generated event log")
	flags.StringVar(&opts.SchedulePath, "schedule", filepath.Join("tasks", "schedule.yaml"), "path to the schedule file")
	flags.StringVar(&opts.OrchestrationLogPath, "orchestration-log", "orchestration_log.json", "path to the orchestration log")
	flags.StringVar(&opts.CriteriaPath, "criteria", "mission_success_criteria.json", "path to the success criteria document")
	flags.StringVar(&opts.Profile, "profile", anomaly.DefaultProfile, "criteria and model profile to use")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	logger := logging.New("sim-runner")
	metrics.Init()

	runner, err := sim.NewRunner(anomaly.NewManager(logger), logger)
	if err != nil {
		return err
	}
	result, err := runner.Run(context.Background(), opts)
	if err != nil {
		return err
	}
	fmt.Println(result)
	if !result.Passed {
		return fmt.Errorf("run did not meet success criteria")
	}
	return nil
}
