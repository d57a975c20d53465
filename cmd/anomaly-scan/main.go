// anomaly-scan classifies event log rows and reports anomalies, optionally
// alerting a webhook.
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
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		input      string
		profile    string
		webhookURL string
	)

	flags := pflag.NewFlagSet("anomaly-scan", pflag.ContinueOnError)
	flags.StringVar(&input, "input", filepath.Join("telemetry", "event_log.csv"), "path to the event log")
	flags.StringVar(&profile, "profile", anomaly.DefaultProfile, "model profile to classify with")
	flags.StringVar(&webhookURL, "webhook", "", "optional webhook URL for anomaly alerts")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	logger := logging.New("anomaly-scan")
	metrics.Init()

	models := anomaly.NewManager(logger)
	classifier, err := models.Get(profile)
	if err != nil {
		return err
	}

	var opts []anomaly.ScannerOption
	if webhookURL != "" {
		notifier, err := anomaly.NewWebhookNotifier(webhookURL)
		if err != nil {
			return err
		}
		opts = append(opts, anomaly.WithNotifier(notifier))
	}

	scanner, err := anomaly.NewScanner(classifier, logger, opts...)
	if err != nil {
		return err
	}
	report, err := scanner.ScanFile(context.Background(), input)
	if err != nil {
		return err
	}
	logger.Printf("scan complete: %s", report)
	return nil
}
