package nodes

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// secretFileEnv overrides the on-disk location of the secret store.
const secretFileEnv = "NODE_SECRET_FILE"

// SecretStore keeps node credentials in a JSON file, out of the YAML
// registry that gets committed alongside mission artifacts.
type SecretStore struct {
	path string
}

// NewSecretStore opens a store at path. An empty path falls back to the
// NODE_SECRET_FILE environment variable, then to fallback.
func NewSecretStore(path, fallback string) (*SecretStore, error) {
	if path == "" {
		path = os.Getenv(secretFileEnv)
	}
	if path == "" {
		path = fallback
	}
	if path == "" {
		return nil, errors.New("nodes: empty secret store path")
	}
	return &SecretStore{path: path}, nil
}

func (s *SecretStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("nodes: read secrets %s: %w", s.path, err)
	}
	secrets := map[string]string{}
	if err := json.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("nodes: parse secrets %s: %w", s.path, err)
	}
	return secrets, nil
}

// Store associates a secret token with a node id.
func (s *SecretStore) Store(nodeID, token string) error {
	if nodeID == "" {
		return errors.New("nodes: empty node id")
	}
	secrets, err := s.load()
	if err != nil {
		return err
	}
	secrets[nodeID] = token
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("nodes: create %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(secrets, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("nodes: write secrets %s: %w", s.path, err)
	}
	return nil
}

// Get returns the secret for a node, or empty when absent.
func (s *SecretStore) Get(nodeID string) (string, error) {
	secrets, err := s.load()
	if err != nil {
		return "", err
	}
	return secrets[nodeID], nil
}
