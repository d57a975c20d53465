package telemetry

import (
	"encoding/json"
	"testing"
)

func TestValueUnmarshalScalars(t *testing.T) {
	var event RawEvent
	payload := `{"timestamp":"2024-01-01T00:00:00Z","node_id":"NODE-1","sensor":"camera","data":{"resolution":"640x480","battery":87,"recording":true}}`
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if s, ok := event.Data["resolution"].Str(); !ok || s != "640x480" {
		t.Fatalf("expected string resolution, got %v", event.Data["resolution"])
	}
	if n, ok := event.Data["battery"].Num(); !ok || n != 87 {
		t.Fatalf("expected numeric battery, got %v", event.Data["battery"])
	}
	if b, ok := event.Data["recording"].Truth(); !ok || !b {
		t.Fatalf("expected boolean recording, got %v", event.Data["recording"])
	}
}

func TestValueUnmarshalRejectsNonScalar(t *testing.T) {
	var value Value
	for _, payload := range []string{`[1,2]`, `{"a":1}`, `null`} {
		if err := json.Unmarshal([]byte(payload), &value); err == nil {
			t.Fatalf("expected error for %s", payload)
		}
	}
}

func TestValueEncode(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{Number(307200), "307200"},
		{Number(1.5), "1.5"},
		{Number(87), "87"},
		{Bool(true), "true"},
		{String("640x480"), "640x480"},
		{Value{}, ""},
	}
	for _, tc := range cases {
		if got := tc.value.Encode(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestValueMarshalRoundTrip(t *testing.T) {
	original := map[string]Value{
		"s": String("x"),
		"n": Number(42.5),
		"b": Bool(false),
	}
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded := map[string]Value{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for key, want := range original {
		if decoded[key] != want {
			t.Fatalf("key %s: expected %v, got %v", key, want, decoded[key])
		}
	}
}
