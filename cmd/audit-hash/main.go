// audit-hash computes SHA-256 checksums over generated artifacts and writes
// a JSON report, optionally HMAC-signed and rendered to PDF.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/audit"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		paths   []string
		output  string
		keyPath string
		pdfPath string
	)

	flags := pflag.NewFlagSet("audit-hash", pflag.ContinueOnError)
	flags.StringSliceVar(&paths, "paths", nil, "files or directories to hash (required)")
	flags.StringVar(&output, "output", "audit_report.json", "output JSON report path")
	flags.StringVar(&keyPath, "key", "", "path to a secret key file for signing the report")
	flags.StringVar(&pdfPath, "pdf", "", "also render the report to this PDF path")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("--paths is required")
	}

	logger := logging.New("audit-hash")

	var secret []byte
	if keyPath != "" {
		data, err := os.ReadFile(keyPath)
		if err != nil {
			return fmt.Errorf("read key %s: %w", keyPath, err)
		}
		secret = []byte(strings.TrimSpace(string(data)))
	}

	report, err := audit.BuildReport(paths, secret)
	if err != nil {
		return err
	}
	if err := audit.WriteReport(output, report); err != nil {
		return err
	}

	if pdfPath != "" {
		data, err := audit.BuildReportPDF(report, time.Now())
		if err != nil {
			return err
		}
		if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
			return err
		}
	}

	logger.Printf("wrote audit report to %s with %d entries", output, len(report.Files))
	return nil
}
