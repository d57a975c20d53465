// task-add appends a scheduled task to the orchestrator schedule without
// hand-editing YAML.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/logging"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/scheduler"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		name         string
		cronExpr     string
		action       string
		schedulePath string
	)

	flags := pflag.NewFlagSet("task-add", pflag.ContinueOnError)
	flags.StringVar(&name, "name", "", "unique name for the task (required)")
	flags.StringVar(&cronExpr, "cron", "", "cron expression, e.g. \"0 2 * * *\" (required)")
	flags.StringVar(&action, "action", "", "action name defined in the orchestrator (required)")
	flags.StringVar(&schedulePath, "schedule", filepath.Join("tasks", "schedule.yaml"), "path to the schedule file")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}
	if name == "" || cronExpr == "" || action == "" {
		return fmt.Errorf("--name, --cron and --action are required")
	}

	logger := logging.New("task-add")

	schedule, err := scheduler.LoadSchedule(schedulePath)
	if err != nil {
		return err
	}
	if err := schedule.Add(scheduler.Task{Name: name, Cron: cronExpr, Action: action}); err != nil {
		return err
	}
	if err := scheduler.SaveSchedule(schedulePath, schedule); err != nil {
		return err
	}
	logger.Printf("added task %s with cron %q and action %s", name, cronExpr, action)
	return nil
}
