package nodes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSecretStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node_management", "secrets.json")
	store, err := NewSecretStore(path, "")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Store("UAV-7", "s3cret"); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := store.Store("UGV-2", "other"); err != nil {
		t.Fatalf("store second: %v", err)
	}

	token, err := store.Get("UAV-7")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if token != "s3cret" {
		t.Fatalf("unexpected secret: %s", token)
	}

	missing, err := store.Get("UAV-9")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != "" {
		t.Fatalf("expected empty secret for unknown node, got %s", missing)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("secrets file mode %v, want 0600", info.Mode().Perm())
	}
}

func TestSecretStoreEnvFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env_secrets.json")
	t.Setenv("NODE_SECRET_FILE", path)

	store, err := NewSecretStore("", "unused.json")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Store("UAV-1", "tok"); err != nil {
		t.Fatalf("store: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("secrets not written to env path: %v", err)
	}
}

func TestSecretStoreEmptyPath(t *testing.T) {
	t.Setenv("NODE_SECRET_FILE", "")
	if _, err := NewSecretStore("", ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
