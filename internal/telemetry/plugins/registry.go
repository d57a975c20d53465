package plugins

import (
	"log"
	"sort"
	"sync"

	telemetry "github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/domain"
)

// DefaultName is reserved for the fallback transform. It is looked up
// explicitly and never dispatched via a sensor name.
const DefaultName = "default"

// Pair is one key/value emitted by a transform.
type Pair struct {
	Key   string
	Value telemetry.Value
}

// Transform expands a sensor's raw data mapping into the key/value pairs to
// record. Implementations must be total: no panics, no errors, possibly an
// empty result. A transform may rename, drop or split fields.
type Transform interface {
	Name() string
	Expand(sensor string, data map[string]telemetry.Value) []Pair
}

// Skip records a transform that was rejected during registration.
type Skip struct {
	Name   string
	Reason string
}

// Registry maps sensor names to transforms. Registration is best effort:
// invalid entries are recorded and skipped, never fatal. After construction
// the registry is read-only for the duration of a pipeline run.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]Transform
	skipped    []Skip
	fallback   Transform
	logger     *log.Logger
}

// NewRegistry constructs an empty registry with the built-in fallback.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		transforms: make(map[string]Transform),
		fallback:   passthroughTransform{},
		logger:     logger,
	}
}

// Builtin returns a registry preloaded with the transforms shipped in this
// package.
func Builtin(logger *log.Logger) *Registry {
	r := NewRegistry(logger)
	r.Register(CameraTransform{})
	return r
}

// Register adds a transform under its own name. Malformed registrations are
// skipped with a warning so one bad plugin cannot take down the rest.
func (r *Registry) Register(t Transform) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t == nil {
		r.skip(Skip{Reason: "nil transform"})
		return
	}
	name := t.Name()
	switch {
	case name == "":
		r.skip(Skip{Reason: "empty transform name"})
	case name == DefaultName:
		r.skip(Skip{Name: name, Reason: "reserved name"})
	default:
		if _, exists := r.transforms[name]; exists {
			r.skip(Skip{Name: name, Reason: "duplicate transform name"})
			return
		}
		r.transforms[name] = t
	}
}

func (r *Registry) skip(s Skip) {
	r.skipped = append(r.skipped, s)
	r.logger.Printf("plugins: skipping transform %q: %s", s.Name, s.Reason)
}

// Lookup returns the transform registered for a sensor name. The match is
// exact: no case folding or trimming.
func (r *Registry) Lookup(sensor string) (Transform, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transforms[sensor]
	return t, ok
}

// Resolve returns the transform for a sensor, falling back to the default
// when the sensor is unknown.
func (r *Registry) Resolve(sensor string) Transform {
	if t, ok := r.Lookup(sensor); ok {
		return t
	}
	return r.Default()
}

// Default returns the fallback transform.
func (r *Registry) Default() Transform {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Sensors lists registered sensor names in sorted order.
func (r *Registry) Sensors() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Skipped returns the registrations that were rejected, in order.
func (r *Registry) Skipped() []Skip {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Skip, len(r.skipped))
	copy(out, r.skipped)
	return out
}

// sortedKeys returns data keys in sorted order so transform output is
// deterministic across runs.
func sortedKeys(data map[string]telemetry.Value) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// passthroughTransform is the fallback: raw data entries unchanged.
type passthroughTransform struct{}

func (passthroughTransform) Name() string { return DefaultName }

func (passthroughTransform) Expand(_ string, data map[string]telemetry.Value) []Pair {
	pairs := make([]Pair, 0, len(data))
	for _, key := range sortedKeys(data) {
		pairs = append(pairs, Pair{Key: key, Value: data[key]})
	}
	return pairs
}
