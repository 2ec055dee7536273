package main

import (
	"testing"
	"time"
)

// t0 is the synthetic clock origin for model tests
var t0 = time.Date(2017, time.March, 1, 9, 0, 0, 0, time.UTC)

// validConfig returns the defaults, which must always validate
func validConfig() Config {
	return defaultConfig()
}

// withConfig installs cfg as the global config for the duration of a test
func withConfig(t *testing.T, cfg Config) {
	t.Helper()
	old := config.Get()
	config.Set(cfg)
	t.Cleanup(func() { config.Set(old) })
}

// assertError is a test helper that checks if an error occurred and fails the test if not
func assertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("Expected error: %s, got nil", msg)
	}
}

// assertNoError is a test helper that fails the test if an error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// assertEqual is a generic test helper for comparing values
func assertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}
