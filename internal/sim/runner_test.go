package sim

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/anomaly"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/scheduler"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/infrastructure/csvlog"
)

const sampleStream = `[
  {"timestamp": "2024-01-01T00:00:00Z", "node_id": "UAV-7", "sensor": "camera",
   "data": {"resolution": "640x480", "battery": 87}},
  {"timestamp": "2024-01-01T00:01:00Z", "node_id": "UGV-2", "sensor": "gps",
   "data": {"lat": 51.5, "lon": -0.1}}
]`

const sampleMission = `mission:
  objective: persistent_surveillance
  target_zone: grid_alpha
`

const sampleSchedule = `tasks:
  - name: hourly_push
    cron: "0 * * * *"
    action: push_telemetry
`

const sampleCriteria = `{"profiles": {"default": {"max_anomaly_rate": 1.0, "min_events": 1}}}`

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		MissionPath:          filepath.Join(dir, "mission.yaml"),
		StreamPath:           filepath.Join(dir, "stream.json"),
		EventLogPath:         filepath.Join(dir, "event_log.csv"),
		SchedulePath:         filepath.Join(dir, "schedule.yaml"),
		OrchestrationLogPath: filepath.Join(dir, "orchestration_log.json"),
		CriteriaPath:         filepath.Join(dir, "criteria.json"),
	}
	writeFixture(t, opts.MissionPath, sampleMission)
	writeFixture(t, opts.StreamPath, sampleStream)
	writeFixture(t, opts.SchedulePath, sampleSchedule)
	writeFixture(t, opts.CriteriaPath, sampleCriteria)

	logger := log.New(io.Discard, "", 0)
	runner, err := NewRunner(anomaly.NewManager(logger), logger)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}

	result, err := runner.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Objective != "persistent_surveillance" {
		t.Fatalf("unexpected objective: %s", result.Objective)
	}
	if result.Events != 2 {
		t.Fatalf("expected 2 events, got %d", result.Events)
	}
	if result.Rows != 4 {
		t.Fatalf("expected 4 rows, got %d", result.Rows)
	}
	if result.TasksRun != 1 {
		t.Fatalf("expected 1 task run, got %d", result.TasksRun)
	}
	if !result.Passed {
		t.Fatalf("run should pass permissive criteria: %s", result)
	}

	records, err := csvlog.ReadFile(opts.EventLogPath)
	if err != nil {
		t.Fatalf("read event log: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 event log rows, got %d", len(records))
	}
	found := false
	for _, record := range records {
		if record.Key == "resolution_px" && record.Value == "307200" {
			found = true
		}
	}
	if !found {
		t.Fatalf("camera resolution not expanded: %v", records)
	}

	entries, err := scheduler.ReadLog(opts.OrchestrationLogPath)
	if err != nil {
		t.Fatalf("read orchestration log: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != "push_telemetry" {
		t.Fatalf("unexpected orchestration log: %v", entries)
	}
}

func TestRunWithoutMission(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		StreamPath:           filepath.Join(dir, "stream.json"),
		EventLogPath:         filepath.Join(dir, "event_log.csv"),
		SchedulePath:         filepath.Join(dir, "schedule.yaml"),
		OrchestrationLogPath: filepath.Join(dir, "orchestration_log.json"),
		CriteriaPath:         filepath.Join(dir, "criteria.json"),
	}
	writeFixture(t, opts.StreamPath, sampleStream)

	logger := log.New(io.Discard, "", 0)
	runner, err := NewRunner(anomaly.NewManager(logger), logger)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}

	result, err := runner.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Objective != "" {
		t.Fatalf("unexpected objective: %s", result.Objective)
	}
	if result.TasksRun != 0 {
		t.Fatalf("missing schedule should run no tasks, got %d", result.TasksRun)
	}
	if !result.Passed {
		t.Fatal("default criteria should be permissive")
	}
}

func TestRunMissingStream(t *testing.T) {
	dir := t.TempDir()
	logger := log.New(io.Discard, "", 0)
	runner, err := NewRunner(anomaly.NewManager(logger), logger)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	_, err = runner.Run(context.Background(), Options{
		StreamPath:   filepath.Join(dir, "missing.json"),
		EventLogPath: filepath.Join(dir, "event_log.csv"),
	})
	if err == nil {
		t.Fatal("expected error for missing stream")
	}
}

func TestNewRunnerNilManager(t *testing.T) {
	if _, err := NewRunner(nil, log.Default()); err == nil {
		t.Fatal("expected error for nil model manager")
	}
}
