package jsonstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	telemetry "github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/domain"
)

// ErrNotArray reports an input document whose top level is not a JSON array.
var ErrNotArray = errors.New("jsonstream: top-level JSON value is not an array")

// Decode reads a raw event stream from r. The document must be a JSON array
// of event objects; anything else is a fatal input error for the caller.
func Decode(r io.Reader) ([]telemetry.RawEvent, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("jsonstream: decode stream: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, ErrNotArray
	}

	var events []telemetry.RawEvent
	for dec.More() {
		var event telemetry.RawEvent
		if err := dec.Decode(&event); err != nil {
			return nil, fmt.Errorf("jsonstream: decode event %d: %w", len(events), err)
		}
		events = append(events, event)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("jsonstream: decode stream: %w", err)
	}
	return events, nil
}

// ReadFile reads a raw event stream from a JSON file.
func ReadFile(path string) ([]telemetry.RawEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("jsonstream: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
