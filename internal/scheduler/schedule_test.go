package scheduler

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestScheduleAdd(t *testing.T) {
	var schedule Schedule
	if err := schedule.Add(Task{Name: "hourly_push", Cron: "0 * * * *", Action: "push_telemetry"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := schedule.Add(Task{Name: "nightly_replan", Cron: "0 2 * * *", Action: "replan_isr_sweep"}); err != nil {
		t.Fatalf("add second: %v", err)
	}
	if len(schedule.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(schedule.Tasks))
	}
}

func TestScheduleAddDuplicate(t *testing.T) {
	var schedule Schedule
	if err := schedule.Add(Task{Name: "hourly_push", Action: "push_telemetry"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	err := schedule.Add(Task{Name: "hourly_push", Action: "push_telemetry"})
	if !errors.Is(err, ErrDuplicateTask) {
		t.Fatalf("expected ErrDuplicateTask, got %v", err)
	}
	if len(schedule.Tasks) != 1 {
		t.Fatalf("duplicate should not be appended, have %d tasks", len(schedule.Tasks))
	}
}

func TestScheduleAddEmptyName(t *testing.T) {
	var schedule Schedule
	if err := schedule.Add(Task{Action: "push_telemetry"}); err == nil {
		t.Fatal("expected error for empty task name")
	}
}

func TestScheduleSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks", "schedule.yaml")
	schedule := Schedule{Tasks: []Task{
		{Name: "hourly_push", Cron: "0 * * * *", Action: "push_telemetry"},
	}}
	if err := SaveSchedule(path, schedule); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadSchedule(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Tasks) != 1 || loaded.Tasks[0].Cron != "0 * * * *" {
		t.Fatalf("unexpected schedule: %+v", loaded)
	}
}

func TestLoadScheduleMissingFile(t *testing.T) {
	schedule, err := LoadSchedule(filepath.Join(t.TempDir(), "schedule.yaml"))
	if err != nil {
		t.Fatalf("load missing schedule: %v", err)
	}
	if len(schedule.Tasks) != 0 {
		t.Fatalf("expected empty schedule, got %+v", schedule)
	}
}
