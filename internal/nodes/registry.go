package nodes

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Node is one registered autonomous platform.
type Node struct {
	ID       string   `yaml:"id"`
	Type     string   `yaml:"type"`
	Location string   `yaml:"location"`
	Sensors  []string `yaml:"sensors"`
	Role     string   `yaml:"role"`
}

// LoadRegistry reads the registered node list. A missing file is an empty
// registry.
func LoadRegistry(path string) ([]Node, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("nodes: read registry %s: %w", path, err)
	}
	var nodes []Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("nodes: parse registry %s: %w", path, err)
	}
	return nodes, nil
}

// SaveRegistry writes the node list back, creating the directory if missing.
func SaveRegistry(path string, nodes []Node) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("nodes: create %s: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(nodes)
	if err != nil {
		return fmt.Errorf("nodes: encode registry: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("nodes: write registry %s: %w", path, err)
	}
	return nil
}

// Register appends a node to the registry file and returns the new total.
func Register(path string, node Node) (int, error) {
	if node.ID == "" {
		return 0, fmt.Errorf("nodes: empty node id")
	}
	nodes, err := LoadRegistry(path)
	if err != nil {
		return 0, err
	}
	nodes = append(nodes, node)
	if err := SaveRegistry(path, nodes); err != nil {
		return 0, err
	}
	return len(nodes), nil
}
