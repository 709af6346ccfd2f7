package nav

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "session.yaml")

	if err := SaveSession(path, "/project/wavetable-synth"); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	route, err := LoadSession(path)
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	if route != "/project/wavetable-synth" {
		t.Errorf("Expected saved route, got %q", route)
	}
}

func TestLoadSessionMissingFile(t *testing.T) {
	route, err := LoadSession(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Errorf("Missing session file reported error: %v", err)
	}
	if route != "" {
		t.Errorf("Missing session file returned route %q", route)
	}
}

func TestLoadSessionCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte("route: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSession(path); err == nil {
		t.Error("Expected error for corrupt session file")
	}
}

func TestSessionEmptyPathIsNoOp(t *testing.T) {
	if err := SaveSession("", "/project/a"); err != nil {
		t.Errorf("Empty path save errored: %v", err)
	}
	route, err := LoadSession("")
	if err != nil || route != "" {
		t.Errorf("Empty path load = (%q, %v)", route, err)
	}
}
