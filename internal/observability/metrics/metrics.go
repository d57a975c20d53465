package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "fleet_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	normalizeEvents   prometheus.Counter
	normalizeRows     prometheus.Counter
	normalizeFallback prometheus.Counter
	pluginSkips       prometheus.Counter

	schedulerRuns *prometheus.CounterVec

	anomalyScans  *prometheus.CounterVec
	anomalyEvents prometheus.Counter
)

// Init registers the fleet metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		normalizeEvents = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "normalize_events_total",
				Help: "Total raw telemetry events processed",
			},
		)
		normalizeRows = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "normalize_rows_total",
				Help: "Total event log rows emitted",
			},
		)
		normalizeFallback = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "normalize_fallback_total",
				Help: "Total events handled by the default transform",
			},
		)
		pluginSkips = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "plugin_skips_total",
				Help: "Total transform registrations rejected",
			},
		)

		schedulerRuns = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "scheduler_actions_total",
				Help: "Total scheduled actions executed by result",
			},
			[]string{"result"},
		)

		anomalyScans = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "anomaly_scans_total",
				Help: "Total event log scans by result",
			},
			[]string{"result"},
		)
		anomalyEvents = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "anomaly_events_total",
				Help: "Total rows classified as anomalous",
			},
		)

		prometheus.MustRegister(
			normalizeEvents,
			normalizeRows,
			normalizeFallback,
			pluginSkips,
			schedulerRuns,
			anomalyScans,
			anomalyEvents,
		)
	})
}

// AddNormalizeEvents increments the processed event counter.
func AddNormalizeEvents(count int) {
	if count > 0 && normalizeEvents != nil {
		normalizeEvents.Add(float64(count))
	}
}

// AddNormalizeRows increments the emitted row counter.
func AddNormalizeRows(count int) {
	if count > 0 && normalizeRows != nil {
		normalizeRows.Add(float64(count))
	}
}

// IncNormalizeFallback increments the default-transform counter.
func IncNormalizeFallback() {
	if normalizeFallback != nil {
		normalizeFallback.Inc()
	}
}

// AddPluginSkips increments the rejected registration counter.
func AddPluginSkips(count int) {
	if count > 0 && pluginSkips != nil {
		pluginSkips.Add(float64(count))
	}
}

// IncSchedulerRun increments the action counter by result.
func IncSchedulerRun(result string) {
	if result == "" {
		result = resultSuccess
	}
	if schedulerRuns != nil {
		schedulerRuns.WithLabelValues(result).Inc()
	}
}

// IncAnomalyScan increments the scan counter by result.
func IncAnomalyScan(result string) {
	if result == "" {
		result = resultSuccess
	}
	if anomalyScans != nil {
		anomalyScans.WithLabelValues(result).Inc()
	}
}

// AddAnomalies increments the anomalous row counter.
func AddAnomalies(count int) {
	if count > 0 && anomalyEvents != nil {
		anomalyEvents.Add(float64(count))
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
