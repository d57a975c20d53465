package anomaly

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// DefaultProfile is the fallback model profile.
const DefaultProfile = "default"

// defaultStubRate matches the shipped stub classifier's anomaly rate.
const defaultStubRate = 0.05

// Factory builds a classifier for a profile. Construction may fail, loading
// is deferred until the profile is first requested.
type Factory func() (Classifier, error)

// Manager caches per-profile classifiers. Missions with different risk
// postures select different profiles; unknown profiles fall back to the
// default model.
type Manager struct {
	mu        sync.Mutex
	factories map[string]Factory
	cache     map[string]Classifier
	logger    *log.Logger
}

// NewManager constructs a manager with the default stub profile installed.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{
		factories: make(map[string]Factory),
		cache:     make(map[string]Classifier),
		logger:    logger,
	}
	m.RegisterProfile(DefaultProfile, func() (Classifier, error) {
		return NewStubClassifier(defaultStubRate, 1), nil
	})
	return m
}

// RegisterProfile binds a profile name to a classifier factory.
func (m *Manager) RegisterProfile(profile string, factory Factory) {
	if profile == "" || factory == nil {
		return
	}
	m.mu.Lock()
	m.factories[profile] = factory
	m.mu.Unlock()
}

// Get returns the classifier for a profile, building and caching it on
// first use. An unknown profile falls back to the default.
func (m *Manager) Get(profile string) (Classifier, error) {
	if profile == "" {
		profile = DefaultProfile
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if classifier, ok := m.cache[profile]; ok {
		return classifier, nil
	}
	factory, ok := m.factories[profile]
	if !ok {
		if profile == DefaultProfile {
			return nil, errors.New("anomaly: default model not registered")
		}
		m.logger.Printf("anomaly: model for profile %q not found, falling back to default", profile)
		factory, ok = m.factories[DefaultProfile]
		if !ok {
			return nil, errors.New("anomaly: default model not registered")
		}
		profile = DefaultProfile
		if classifier, cached := m.cache[profile]; cached {
			return classifier, nil
		}
	}
	classifier, err := factory()
	if err != nil {
		return nil, fmt.Errorf("anomaly: load model for profile %q: %w", profile, err)
	}
	m.cache[profile] = classifier
	m.logger.Printf("anomaly: loaded model for profile %q", profile)
	return classifier, nil
}

// Reload clears the cache so the next Get rebuilds each model.
func (m *Manager) Reload() {
	m.mu.Lock()
	m.cache = make(map[string]Classifier)
	m.mu.Unlock()
	m.logger.Printf("anomaly: cleared model cache")
}
