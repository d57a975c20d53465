package anomaly

import (
	"math/rand"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/infrastructure/csvlog"
)

// Label is a classification outcome for one event log row.
type Label string

const (
	LabelNormal  Label = "normal"
	LabelAnomaly Label = "anomaly"
)

// Classifier labels event log rows. Implementations must be total; a row
// that cannot be scored is normal.
type Classifier interface {
	Classify(record csvlog.Record) Label
}

// StubClassifier flags rows at a fixed rate. It stands in for a trained
// model until one ships; the seed makes test runs reproducible.
type StubClassifier struct {
	rate float64
	rng  *rand.Rand
}

// NewStubClassifier constructs a stub flagging rows with the given
// probability.
func NewStubClassifier(rate float64, seed int64) *StubClassifier {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return &StubClassifier{rate: rate, rng: rand.New(rand.NewSource(seed))}
}

// Classify labels a row at the configured rate, ignoring its contents.
func (c *StubClassifier) Classify(_ csvlog.Record) Label {
	if c.rng.Float64() < c.rate {
		return LabelAnomaly
	}
	return LabelNormal
}
