// Package csvlog owns the tabular event log format: a five-column CSV with
// a fixed header that downstream consumers rely on verbatim.
package csvlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	telemetry "github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/domain"
)

// Header is the exact column order of the event log.
var Header = []string{"timestamp", "node_id", "sensor", "key", "value"}

// ErrBadHeader reports an event log whose header does not match Header.
var ErrBadHeader = errors.New("csvlog: unexpected event log header")

// Record is one row read back from an event log. Values come back as text;
// the log does not carry type information.
type Record struct {
	Timestamp string
	NodeID    string
	Sensor    string
	Key       string
	Value     string
}

// Write emits the header and one line per row, in order.
func Write(w io.Writer, rows []telemetry.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("csvlog: write header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.Timestamp, row.NodeID, row.Sensor, row.Key, row.Value.Encode()}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csvlog: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes an event log, creating the parent directory if missing.
func WriteFile(path string, rows []telemetry.Row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("csvlog: create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvlog: create %s: %w", path, err)
	}
	if err := Write(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read parses an event log, validating the header.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrBadHeader
	}
	if err != nil {
		return nil, fmt.Errorf("csvlog: read header: %w", err)
	}
	if len(header) != len(Header) {
		return nil, ErrBadHeader
	}
	for i, column := range Header {
		if header[i] != column {
			return nil, ErrBadHeader
		}
	}

	var records []Record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("csvlog: read row %d: %w", len(records)+1, err)
		}
		records = append(records, Record{
			Timestamp: fields[0],
			NodeID:    fields[1],
			Sensor:    fields[2],
			Key:       fields[3],
			Value:     fields[4],
		})
	}
}

// ReadFile parses an event log file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvlog: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
