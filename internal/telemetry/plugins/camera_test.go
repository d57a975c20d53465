package plugins

import (
	"reflect"
	"testing"

	telemetry "github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/domain"
)

func TestCameraResolutionParse(t *testing.T) {
	pairs := CameraTransform{}.Expand("camera", map[string]telemetry.Value{
		"resolution": telemetry.String("1920x1080"),
	})
	want := []Pair{{Key: "resolution_px", Value: telemetry.Number(2073600)}}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("expected %v, got %v", want, pairs)
	}
}

func TestCameraResolutionUppercaseSeparator(t *testing.T) {
	pairs := CameraTransform{}.Expand("camera", map[string]telemetry.Value{
		"resolution": telemetry.String("640X480"),
	})
	want := []Pair{{Key: "resolution_px", Value: telemetry.Number(307200)}}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("expected %v, got %v", want, pairs)
	}
}

func TestCameraResolutionFallback(t *testing.T) {
	pairs := CameraTransform{}.Expand("camera", map[string]telemetry.Value{
		"resolution": telemetry.String("not-a-resolution"),
	})
	want := []Pair{{Key: "resolution", Value: telemetry.String("not-a-resolution")}}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("expected unchanged resolution, got %v", pairs)
	}
}

func TestCameraNonStringResolutionPassthrough(t *testing.T) {
	pairs := CameraTransform{}.Expand("camera", map[string]telemetry.Value{
		"resolution": telemetry.Number(1080),
	})
	want := []Pair{{Key: "resolution", Value: telemetry.Number(1080)}}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("expected unchanged resolution, got %v", pairs)
	}
}

func TestCameraOtherFieldsUnchanged(t *testing.T) {
	pairs := CameraTransform{}.Expand("camera", map[string]telemetry.Value{
		"resolution": telemetry.String("640x480"),
		"battery":    telemetry.Number(87),
		"recording":  telemetry.Bool(true),
	})
	want := []Pair{
		{Key: "battery", Value: telemetry.Number(87)},
		{Key: "recording", Value: telemetry.Bool(true)},
		{Key: "resolution_px", Value: telemetry.Number(307200)},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("expected %v, got %v", want, pairs)
	}
}
