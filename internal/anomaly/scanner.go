package anomaly

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/observability/metrics"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/infrastructure/csvlog"
)

// Report summarizes one event log scan.
type Report struct {
	Total     int
	Anomalies []csvlog.Record
}

// Rate is the fraction of rows flagged anomalous, zero for an empty log.
func (r Report) Rate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(len(r.Anomalies)) / float64(r.Total)
}

// Scanner classifies event log rows and raises alerts for anomalies.
type Scanner struct {
	classifier Classifier
	notifier   Notifier
	logger     *log.Logger
}

// ScannerOption configures the scanner.
type ScannerOption func(*Scanner)

// WithNotifier installs an alert channel for anomalous rows.
func WithNotifier(notifier Notifier) ScannerOption {
	return func(s *Scanner) {
		s.notifier = notifier
	}
}

// NewScanner constructs a scanner over a classifier.
func NewScanner(classifier Classifier, logger *log.Logger, opts ...ScannerOption) (*Scanner, error) {
	if classifier == nil {
		return nil, errors.New("anomaly: nil classifier")
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Scanner{classifier: classifier, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ScanFile classifies every row of an event log file.
func (s *Scanner) ScanFile(ctx context.Context, path string) (Report, error) {
	records, err := csvlog.ReadFile(path)
	if err != nil {
		metrics.IncAnomalyScan(metrics.ResultError)
		return Report{}, err
	}
	report := s.Scan(ctx, records)
	metrics.IncAnomalyScan(metrics.ResultSuccess)
	return report, nil
}

// Scan classifies rows in order, logging and notifying each anomaly.
func (s *Scanner) Scan(ctx context.Context, records []csvlog.Record) Report {
	report := Report{Total: len(records)}
	for _, record := range records {
		if s.classifier.Classify(record) != LabelAnomaly {
			continue
		}
		report.Anomalies = append(report.Anomalies, record)
		s.logger.Printf("anomaly detected at %s on node %s sensor %s -> %s=%s",
			record.Timestamp, record.NodeID, record.Sensor, record.Key, record.Value)
		if s.notifier != nil {
			if err := s.notifier.Notify(ctx, record); err != nil {
				s.logger.Printf("anomaly: notify failed: %v", err)
			}
		}
	}
	metrics.AddAnomalies(len(report.Anomalies))
	return report
}

// Criteria are the pass thresholds for a run.
type Criteria struct {
	MaxAnomalyRate float64
	MinEvents      int
}

// CriteriaFromProfile extracts thresholds from a criteria document profile.
// Absent keys fall back to permissive defaults.
func CriteriaFromProfile(profile map[string]any) Criteria {
	criteria := Criteria{MaxAnomalyRate: 1.0}
	if value, ok := toFloat(profile["max_anomaly_rate"]); ok {
		criteria.MaxAnomalyRate = value
	}
	if value, ok := toFloat(profile["min_events"]); ok {
		criteria.MinEvents = int(value)
	}
	return criteria
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Evaluate checks a scan report against criteria.
func (r Report) Evaluate(criteria Criteria) (float64, bool) {
	rate := r.Rate()
	passed := rate <= criteria.MaxAnomalyRate && r.Total >= criteria.MinEvents
	return rate, passed
}

// String renders a short human summary.
func (r Report) String() string {
	return fmt.Sprintf("%d/%d rows anomalous (%.2f%%)", len(r.Anomalies), r.Total, r.Rate()*100)
}
