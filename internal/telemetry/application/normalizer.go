package application

import (
	"errors"
	"log"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/observability/metrics"
	telemetry "github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/domain"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/plugins"
)

// Normalizer flattens raw telemetry events into tabular rows using the
// transforms discovered in a plugin registry.
type Normalizer struct {
	registry *plugins.Registry
	logger   *log.Logger
}

// NewNormalizer constructs a normalizer over a registry.
func NewNormalizer(registry *plugins.Registry, logger *log.Logger) (*Normalizer, error) {
	if registry == nil {
		return nil, errors.New("normalizer: nil registry")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Normalizer{registry: registry, logger: logger}, nil
}

// Normalize expands events in input order. Each event is dispatched to the
// transform registered for its sensor, exact match only, with the default
// transform covering unknown sensors. An event whose data is empty or whose
// transform yields nothing contributes no rows.
func (n *Normalizer) Normalize(events []telemetry.RawEvent) []telemetry.Row {
	rows := make([]telemetry.Row, 0, len(events))
	for _, event := range events {
		transform, known := n.registry.Lookup(event.Sensor)
		if !known {
			transform = n.registry.Default()
			metrics.IncNormalizeFallback()
		}
		for _, pair := range transform.Expand(event.Sensor, event.Data) {
			rows = append(rows, telemetry.Row{
				Timestamp: event.Timestamp,
				NodeID:    event.NodeID,
				Sensor:    event.Sensor,
				Key:       pair.Key,
				Value:     pair.Value,
			})
		}
	}
	metrics.AddNormalizeEvents(len(events))
	metrics.AddNormalizeRows(len(rows))
	return rows
}
