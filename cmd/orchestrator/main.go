// orchestrator runs the scheduled fleet actions. One-shot by default; in
// daemon mode it re-evaluates the schedule every interval and serves
// prometheus metrics.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/logging"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/observability/metrics"
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
		schedulePath string
		logPath      string
		force        bool
		lookback     time.Duration
		daemon       bool
		interval     time.Duration
		metricsAddr  string
	)

	flags := pflag.NewFlagSet("orchestrator", pflag.ContinueOnError)
	flags.StringVar(&schedulePath, "schedule", filepath.Join("tasks", "schedule.yaml"), "path to the schedule file")
	flags.StringVar(&logPath, "log", "orchestration_log.json", "path to the orchestration log")
	flags.BoolVar(&force, "force", false, "run every task regardless of cron due time")
	flags.DurationVar(&lookback, "lookback", time.Minute, "window before now in which a cron fire time counts as due")
	flags.BoolVar(&daemon, "daemon", false, "keep running and evaluate the schedule on an interval")
	flags.DurationVar(&interval, "interval", time.Minute, "daemon evaluation interval")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "address for the /metrics listener in daemon mode, e.g. :9090")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	logger := logging.New("orchestrator")
	metrics.Init()

	runner := scheduler.NewRunner(logger)
	runner.RegisterFleetActions()

	if daemon {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if metricsAddr != "" {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Addr: metricsAddr, Handler: mux}
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Printf("metrics listener: %v", err)
				}
			}()
			defer server.Close()
		}

		logger.Printf("scheduler daemon started, interval %s", interval)
		scheduler.NewDaemon(runner, schedulePath, logPath, interval, logger).Start(ctx)
		return nil
	}

	schedule, err := scheduler.LoadSchedule(schedulePath)
	if err != nil {
		return err
	}
	entries := runner.RunDue(context.Background(), schedule.Tasks, time.Now().UTC(), lookback, force)
	if err := scheduler.AppendLog(logPath, entries); err != nil {
		return err
	}
	if len(entries) == 0 {
		logger.Printf("no tasks were triggered")
		return nil
	}
	logger.Printf("recorded %d orchestration events", len(entries))
	return nil
}
