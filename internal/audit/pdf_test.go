package audit

import (
	"bytes"
	"testing"
	"time"
)

func TestBuildReportPDF(t *testing.T) {
	report := Report{
		Files: map[string]string{
			"missions/compiled_mission.yaml": "aaa111",
			"telemetry/event_log.csv":        "bbb222",
		},
		Signature: "deadbeef",
	}
	data, err := BuildReportPDF(report, time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", data[:8])
	}
}
