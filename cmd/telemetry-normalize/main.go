// telemetry-normalize flattens a raw telemetry JSON stream into the tabular
// event log consumed by the anomaly scanner and downstream analysis.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/pflag"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/logging"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/observability/metrics"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/application"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/infrastructure/csvlog"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/infrastructure/jsonstream"
	pgsink "github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/infrastructure/postgres"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/interfaces"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/plugins"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		input   string
		output  string
		format  string
		pgDSN   string
		pgTable string
	)

	flags := pflag.NewFlagSet("telemetry-normalize", pflag.ContinueOnError)
	flags.StringVar(&input, "input", filepath.Join("telemetry", "sample_stream.json"), "path to the input JSON stream")
	flags.StringVar(&output, "output", filepath.Join("telemetry", "event_log.csv"), "path to the output event log")
	flags.StringVar(&format, "format", "csv", "output format: csv or xlsx")
	flags.StringVar(&pgDSN, "pg-dsn", os.Getenv("PG_DSN"), "optional Postgres DSN to also ingest rows centrally")
	flags.StringVar(&pgTable, "pg-table", "", "override the Postgres event log table")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	logger := logging.New("telemetry-normalize")
	metrics.Init()

	events, err := jsonstream.ReadFile(input)
	if err != nil {
		return err
	}

	registry := plugins.Builtin(logger)
	metrics.AddPluginSkips(len(registry.Skipped()))
	normalizer, err := application.NewNormalizer(registry, logger)
	if err != nil {
		return err
	}
	rows := normalizer.Normalize(events)

	switch format {
	case "csv":
		if err := csvlog.WriteFile(output, rows); err != nil {
			return err
		}
	case "xlsx":
		data, err := interfaces.BuildEventLogXLSX(rows)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	if pgDSN != "" {
		db, err := sql.Open("pgx", pgDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		var opts []pgsink.RepositoryOption
		if pgTable != "" {
			opts = append(opts, pgsink.WithTable(pgTable))
		}
		repo := pgsink.NewEventLogRepository(db, opts...)
		if err := repo.InsertRows(context.Background(), rows); err != nil {
			return err
		}
	}

	logger.Printf("event log written to %s (%d events, %d rows)", output, len(events), len(rows))
	return nil
}
