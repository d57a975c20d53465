package telemetry

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind discriminates the closed set of scalar variants carried in
// telemetry data fields.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
)

// Value is a telemetry scalar: a string, a number, or a boolean. The zero
// value is the empty string.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
}

// String constructs a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number constructs a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool constructs a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports which variant the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Str returns the string payload and whether the value is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Num returns the numeric payload and whether the value is a number.
func (v Value) Num() (float64, bool) { return v.num, v.kind == KindNumber }

// Truth returns the boolean payload and whether the value is a boolean.
func (v Value) Truth() (bool, bool) { return v.b, v.kind == KindBool }

// Encode renders the value as text for tabular output. Numbers with no
// fractional part render without a decimal point so counts survive a
// round trip through the event log.
func (v Value) Encode() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

// MarshalJSON encodes the underlying scalar directly.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return json.Marshal(v.str)
	}
}

// UnmarshalJSON accepts any JSON scalar; arrays, objects and null are
// rejected so data fields stay flat.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = String(t)
	case float64:
		*v = Number(t)
	case bool:
		*v = Bool(t)
	default:
		return fmt.Errorf("telemetry: data value %s is not a scalar", data)
	}
	return nil
}

// RawEvent is one unnormalized observation emitted by a node sensor. The
// timestamp is carried as an opaque string; the pipeline never parses it.
type RawEvent struct {
	Timestamp string           `json:"timestamp"`
	NodeID    string           `json:"node_id"`
	Sensor    string           `json:"sensor"`
	Data      map[string]Value `json:"data"`
}

// Row is one flattened observation in the tabular event log.
type Row struct {
	Timestamp string
	NodeID    string
	Sensor    string
	Key       string
	Value     Value
}
