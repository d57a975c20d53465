package interfaces

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	telemetry "github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/domain"
)

func TestBuildEventLogXLSX(t *testing.T) {
	rows := []telemetry.Row{
		{Timestamp: "2024-01-01T00:00:00Z", NodeID: "NODE-1", Sensor: "camera", Key: "resolution_px", Value: telemetry.Number(307200)},
		{Timestamp: "2024-01-01T00:01:00Z", NodeID: "NODE-2", Sensor: "radio", Key: "band", Value: telemetry.String("uhf")},
	}

	data, err := BuildEventLogXLSX(rows)
	if err != nil {
		t.Fatalf("build xlsx: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows("events")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	header := got[0]
	want := []string{"timestamp", "node_id", "sensor", "key", "value"}
	for i, column := range want {
		if header[i] != column {
			t.Fatalf("header column %d: got %s, want %s", i, header[i], column)
		}
	}
	if got[1][3] != "resolution_px" || got[1][4] != "307200" {
		t.Fatalf("unexpected first row: %v", got[1])
	}
	if got[2][4] != "uhf" {
		t.Fatalf("unexpected second row: %v", got[2])
	}
}

func TestBuildEventLogXLSXEmpty(t *testing.T) {
	data, err := BuildEventLogXLSX(nil)
	if err != nil {
		t.Fatalf("build xlsx: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()
	got, err := f.GetRows("events")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected header only, got %d rows", len(got))
	}
}
