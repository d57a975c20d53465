package anomaly

import (
	"errors"
	"io"
	"log"
	"testing"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestManagerDefaultProfile(t *testing.T) {
	manager := NewManager(discardLogger())

	classifier, err := manager.Get(DefaultProfile)
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if classifier == nil {
		t.Fatal("nil classifier for default profile")
	}

	again, err := manager.Get(DefaultProfile)
	if err != nil {
		t.Fatalf("get default again: %v", err)
	}
	if again != classifier {
		t.Fatal("second get should return the cached classifier")
	}
}

func TestManagerEmptyProfileUsesDefault(t *testing.T) {
	manager := NewManager(discardLogger())
	classifier, err := manager.Get("")
	if err != nil {
		t.Fatalf("get empty profile: %v", err)
	}
	if classifier == nil {
		t.Fatal("nil classifier for empty profile")
	}
}

func TestManagerUnknownProfileFallsBack(t *testing.T) {
	manager := NewManager(discardLogger())
	classifier, err := manager.Get("high_threat")
	if err != nil {
		t.Fatalf("get unknown profile: %v", err)
	}

	fallback, err := manager.Get(DefaultProfile)
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if classifier != fallback {
		t.Fatal("unknown profile should resolve to the default classifier")
	}
}

func TestManagerRegisteredProfile(t *testing.T) {
	manager := NewManager(discardLogger())
	manager.RegisterProfile("strict", func() (Classifier, error) {
		return NewStubClassifier(0.5, 7), nil
	})

	strict, err := manager.Get("strict")
	if err != nil {
		t.Fatalf("get strict: %v", err)
	}
	def, err := manager.Get(DefaultProfile)
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if strict == def {
		t.Fatal("strict profile should get its own classifier")
	}
}

func TestManagerFactoryError(t *testing.T) {
	manager := NewManager(discardLogger())
	manager.RegisterProfile("broken", func() (Classifier, error) {
		return nil, errors.New("model file corrupt")
	})
	if _, err := manager.Get("broken"); err == nil {
		t.Fatal("expected factory error to surface")
	}
}

func TestManagerReload(t *testing.T) {
	manager := NewManager(discardLogger())
	before, err := manager.Get(DefaultProfile)
	if err != nil {
		t.Fatalf("get before reload: %v", err)
	}
	manager.Reload()
	after, err := manager.Get(DefaultProfile)
	if err != nil {
		t.Fatalf("get after reload: %v", err)
	}
	if before == after {
		t.Fatal("reload should rebuild the classifier")
	}
}
