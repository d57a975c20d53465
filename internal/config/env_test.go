package config

import (
	"testing"
	"time"
)

func TestGetenvDefault(t *testing.T) {
	t.Setenv("FLEET_TEST_STR", "set")
	if got := GetenvDefault("FLEET_TEST_STR", "fallback"); got != "set" {
		t.Fatalf("got %s", got)
	}
	if got := GetenvDefault("FLEET_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("got %s", got)
	}
}

func TestGetenvIntDefault(t *testing.T) {
	t.Setenv("FLEET_TEST_INT", "42")
	if got := GetenvIntDefault("FLEET_TEST_INT", 7); got != 42 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("FLEET_TEST_INT", "not a number")
	if got := GetenvIntDefault("FLEET_TEST_INT", 7); got != 7 {
		t.Fatalf("got %d", got)
	}
}

func TestGetenvFloatDefault(t *testing.T) {
	t.Setenv("FLEET_TEST_FLOAT", "0.25")
	if got := GetenvFloatDefault("FLEET_TEST_FLOAT", 1); got != 0.25 {
		t.Fatalf("got %f", got)
	}
	if got := GetenvFloatDefault("FLEET_TEST_FLOAT_UNSET", 1); got != 1 {
		t.Fatalf("got %f", got)
	}
}

func TestGetenvDuration(t *testing.T) {
	t.Setenv("FLEET_TEST_DUR", "90s")
	if got := GetenvDuration("FLEET_TEST_DUR", time.Minute); got != 90*time.Second {
		t.Fatalf("got %v", got)
	}
	t.Setenv("FLEET_TEST_DUR", "soon")
	if got := GetenvDuration("FLEET_TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("got %v", got)
	}
}

func TestGetenvBool(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", "yes"}
	for _, value := range truthy {
		t.Setenv("FLEET_TEST_BOOL", value)
		if !GetenvBool("FLEET_TEST_BOOL") {
			t.Fatalf("%q should be truthy", value)
		}
	}
	t.Setenv("FLEET_TEST_BOOL", "0")
	if GetenvBool("FLEET_TEST_BOOL") {
		t.Fatal("0 should be falsy")
	}
}
