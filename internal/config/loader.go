package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML or JSON configuration document, selected by extension.
// A missing file yields an empty document rather than an error so optional
// config paths can be passed through unconditionally.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	doc := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported extension %q", filepath.Ext(path))
	}
	return doc, nil
}

// Section returns a nested mapping under key, or an empty mapping when the
// key is absent or not a mapping.
func Section(doc map[string]any, key string) map[string]any {
	value, ok := doc[key]
	if !ok {
		return map[string]any{}
	}
	section, ok := value.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return section
}
