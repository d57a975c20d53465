package missions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Mission is one compiled mission definition. Fields the template carries
// beyond the well-known ones are preserved through Extra.
type Mission struct {
	Objective          string         `yaml:"objective,omitempty"`
	TargetZone         string         `yaml:"target_zone,omitempty"`
	PriorityTier       int            `yaml:"priority_tier,omitempty"`
	NodeConfigOverride map[string]any `yaml:"node_config_override,omitempty"`
	Extra              map[string]any `yaml:",inline"`
}

// Document is the top-level shape of a mission file.
type Document struct {
	Mission Mission `yaml:"mission"`
}

// LoadTemplate reads the mission template.
func LoadTemplate(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("missions: read template %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("missions: parse template %s: %w", path, err)
	}
	return doc, nil
}

// Overrides are the operator-supplied parameters merged over the template.
// Nil or zero fields leave the template value in place.
type Overrides struct {
	Objective  string
	TargetZone string
	Priority   *int
	NodeConfig map[string]any
}

// Merge applies overrides to a template document and returns the compiled
// mission. Node config overrides merge shallowly over the template's.
func Merge(template Document, ov Overrides) Document {
	mission := template.Mission
	if ov.Objective != "" {
		mission.Objective = ov.Objective
	}
	if ov.TargetZone != "" {
		mission.TargetZone = ov.TargetZone
	}
	if ov.Priority != nil {
		mission.PriorityTier = *ov.Priority
	}
	if len(ov.NodeConfig) > 0 {
		merged := make(map[string]any, len(mission.NodeConfigOverride)+len(ov.NodeConfig))
		for key, value := range mission.NodeConfigOverride {
			merged[key] = value
		}
		for key, value := range ov.NodeConfig {
			merged[key] = value
		}
		mission.NodeConfigOverride = merged
	}
	return Document{Mission: mission}
}

// ParseNodeConfigFile reads a node config override map from a YAML or JSON
// file. An empty path yields nil.
func ParseNodeConfigFile(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("missions: read overrides %s: %w", path, err)
	}
	overrides := map[string]any{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &overrides); err != nil {
			return nil, fmt.Errorf("missions: parse overrides %s: %w", path, err)
		}
		return overrides, nil
	}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("missions: parse overrides %s: %w", path, err)
	}
	return overrides, nil
}

// Save writes the compiled mission to dir under a timestamped name and
// returns the file path.
func Save(dir string, doc Document, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("missions: create %s: %w", dir, err)
	}
	name := fmt.Sprintf("compiled_mission_%s.yaml", now.UTC().Format("20060102T150405Z"))
	path := filepath.Join(dir, name)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("missions: encode mission: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("missions: write %s: %w", path, err)
	}
	return path, nil
}

// Load reads a compiled mission file.
func Load(path string) (Document, error) {
	return LoadTemplate(path)
}
