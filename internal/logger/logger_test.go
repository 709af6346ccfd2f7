package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRedirectToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "folio.log")

	log := NewWithCallback("test", func() bool { return true })
	if err := log.RedirectToFile(path); err != nil {
		t.Fatalf("Failed to redirect: %v", err)
	}

	log.Info("mounted %d projects", 3)
	log.Warn("something odd")

	if err := log.Close(); err != nil {
		t.Fatalf("Failed to close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "INFO [test] mounted 3 projects") {
		t.Errorf("Log file missing info line: %q", text)
	}
	if !strings.Contains(text, "WARN [test] something odd") {
		t.Errorf("Log file missing warn line: %q", text)
	}
}

func TestVerboseGating(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")

	verbose := false
	log := NewWithCallback("test", func() bool { return verbose })
	if err := log.RedirectToFile(path); err != nil {
		t.Fatal(err)
	}

	log.Debug("hidden")
	log.Info("hidden too")
	verbose = true
	log.Debug("visible")
	_ = log.Close()

	data, _ := os.ReadFile(path)
	text := string(data)
	if strings.Contains(text, "hidden") {
		t.Errorf("Non-verbose lines written: %q", text)
	}
	if !strings.Contains(text, "visible") {
		t.Errorf("Verbose line missing: %q", text)
	}
}

func TestCloseWithoutRedirect(t *testing.T) {
	log := New("test", nil)
	if err := log.Close(); err != nil {
		t.Errorf("Close without redirect errored: %v", err)
	}
}
