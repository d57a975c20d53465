package scheduler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Task is one scheduled action.
type Task struct {
	Name   string `yaml:"name"`
	Cron   string `yaml:"cron"`
	Action string `yaml:"action"`
}

// Schedule is the task list loaded from the schedule file.
type Schedule struct {
	Tasks []Task `yaml:"tasks"`
}

// ErrDuplicateTask reports an Add with a name already on the schedule.
var ErrDuplicateTask = errors.New("scheduler: duplicate task name")

// LoadSchedule reads the schedule file. A missing file is an empty schedule.
func LoadSchedule(path string) (Schedule, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Schedule{}, nil
	}
	if err != nil {
		return Schedule{}, fmt.Errorf("scheduler: read schedule %s: %w", path, err)
	}
	var schedule Schedule
	if err := yaml.Unmarshal(data, &schedule); err != nil {
		return Schedule{}, fmt.Errorf("scheduler: parse schedule %s: %w", path, err)
	}
	return schedule, nil
}

// SaveSchedule writes the schedule back, creating the directory if missing.
func SaveSchedule(path string, schedule Schedule) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("scheduler: create %s: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("scheduler: encode schedule: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scheduler: write schedule %s: %w", path, err)
	}
	return nil
}

// Add appends a task, rejecting duplicate names.
func (s *Schedule) Add(task Task) error {
	if task.Name == "" {
		return errors.New("scheduler: empty task name")
	}
	for _, existing := range s.Tasks {
		if existing.Name == task.Name {
			return fmt.Errorf("%w: %s", ErrDuplicateTask, task.Name)
		}
	}
	s.Tasks = append(s.Tasks, task)
	return nil
}
