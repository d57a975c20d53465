package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Report is the JSON checksum report.
type Report struct {
	Files     map[string]string `json:"files"`
	Signature string            `json:"signature,omitempty"`
}

// BuildReport hashes the given paths and signs the result when a secret is
// provided.
func BuildReport(paths []string, secret []byte) (Report, error) {
	digests, err := HashPaths(paths)
	if err != nil {
		return Report{}, err
	}
	report := Report{Files: digests}
	if len(secret) > 0 {
		signature, err := Sign(digests, secret)
		if err != nil {
			return Report{}, err
		}
		report.Signature = signature
	}
	return report, nil
}

// WriteReport writes the report as indented JSON.
func WriteReport(path string, report Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("audit: create %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("audit: write report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a previously written report.
func ReadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("audit: read report %s: %w", path, err)
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("audit: parse report %s: %w", path, err)
	}
	return report, nil
}
