// Package logging builds the loggers shared by the fleet binaries. Output is
// human-readable by default; setting AE_LOG_JSON switches every binary to
// structured JSON lines for log aggregation.
package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/config"
)

// New returns a named logger writing to stderr.
func New(name string) *log.Logger {
	return NewWithWriter(name, os.Stderr)
}

// NewWithWriter returns a named logger writing to w.
func NewWithWriter(name string, w io.Writer) *log.Logger {
	if config.GetenvBool("AE_LOG_JSON") {
		return log.New(&jsonWriter{name: name, out: w}, "", 0)
	}
	return log.New(w, name+": ", log.LstdFlags|log.LUTC)
}

type jsonWriter struct {
	name string
	out  io.Writer
}

type jsonRecord struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Message   string `json:"message"`
}

func (w *jsonWriter) Write(p []byte) (int, error) {
	message := string(p)
	if n := len(message); n > 0 && message[n-1] == '\n' {
		message = message[:n-1]
	}
	record := jsonRecord{
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		Name:      w.name,
		Message:   message,
	}
	line, err := json.Marshal(record)
	if err != nil {
		return 0, err
	}
	line = append(line, '\n')
	if _, err := w.out.Write(line); err != nil {
		return 0, err
	}
	return len(p), nil
}
