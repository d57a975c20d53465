package plugins

import (
	"strconv"
	"strings"

	telemetry "github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/domain"
)

// CameraTransform standardises camera telemetry: a resolution such as
// "1920x1080" becomes a pixel count under resolution_px. Anything that does
// not parse passes through unchanged, so a malformed field never costs the
// rest of the event.
type CameraTransform struct{}

// Name returns the sensor this transform handles.
func (CameraTransform) Name() string { return "camera" }

// Expand flattens camera data, rewriting parsable resolutions.
func (CameraTransform) Expand(_ string, data map[string]telemetry.Value) []Pair {
	pairs := make([]Pair, 0, len(data))
	for _, key := range sortedKeys(data) {
		value := data[key]
		if key == "resolution" {
			if s, ok := value.Str(); ok {
				if px, ok := parseResolution(s); ok {
					pairs = append(pairs, Pair{Key: "resolution_px", Value: telemetry.Number(float64(px))})
					continue
				}
			}
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs
}

// parseResolution accepts "<width>x<height>" with integer dimensions,
// case-insensitive on the separator.
func parseResolution(s string) (int64, bool) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, false
	}
	width, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, false
	}
	height, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, false
	}
	return width * height, true
}
