package scheduler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppendLog appends entries to the orchestration log, a JSON array kept for
// auditing and replay. A missing or malformed log is started fresh rather
// than blocking the run.
func AppendLog(path string, entries []LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	var existing []LogEntry
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &existing); err != nil {
			existing = nil
		}
	}
	existing = append(existing, entries...)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("scheduler: create %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scheduler: write log %s: %w", path, err)
	}
	return nil
}

// ReadLog loads the orchestration log. A missing file is an empty log.
func ReadLog(path string) ([]LogEntry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scheduler: read log %s: %w", path, err)
	}
	var entries []LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("scheduler: parse log %s: %w", path, err)
	}
	return entries, nil
}
