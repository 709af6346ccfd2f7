package formatter

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/ovalkan/folio/internal/project"
)

func testDirectory() *project.Directory {
	return project.NewDirectory([]project.Project{
		{Slug: "wavetable-synth", Title: "Wavetable Synth", Tagline: "Browser synthesis", Tags: []string{"audio", "dsp"}, Year: 2024, Order: 1},
		{Slug: "habit-tracker", Title: "Habit Tracker", Year: 2023, Order: 2},
	}, false)
}

func TestGet(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"json", "*formatter.jsonFormatter"},
		{"markdown", "*formatter.markdownFormatter"},
		{"md", "*formatter.markdownFormatter"},
		{"text", "*formatter.terminalFormatter"},
		{"", "*formatter.terminalFormatter"},
		{"unknown", "*formatter.terminalFormatter"},
	}
	for _, tt := range tests {
		f := Get(tt.format, false)
		if got := fmt.Sprintf("%T", f); got != tt.want {
			t.Errorf("Get(%q) = %s, want %s", tt.format, got, tt.want)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	out, err := NewJSON().Format(testDirectory())
	if err != nil {
		t.Fatalf("JSON format failed: %v", err)
	}

	var doc DirectoryOutput
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if doc.Count != 2 {
		t.Errorf("Expected count 2, got %d", doc.Count)
	}
	if doc.Projects[0].Path != "/project/wavetable-synth" {
		t.Errorf("Unexpected path %q", doc.Projects[0].Path)
	}
	if doc.Projects[0].Index != 0 || doc.Projects[1].Index != 1 {
		t.Error("Slide indices not preserved in output")
	}
}

func TestMarkdownFormat(t *testing.T) {
	out, err := NewMarkdown().Format(testDirectory())
	if err != nil {
		t.Fatalf("Markdown format failed: %v", err)
	}
	text := string(out)

	if !strings.Contains(text, "Wavetable Synth") {
		t.Error("Markdown output missing project title")
	}
	if !strings.Contains(text, "|") {
		t.Error("Markdown output missing summary table")
	}
}

func TestTerminalFormat(t *testing.T) {
	out, err := NewTerminal(false).Format(testDirectory())
	if err != nil {
		t.Fatalf("Terminal format failed: %v", err)
	}
	text := string(out)

	if !strings.Contains(text, "Wavetable Synth") || !strings.Contains(text, "Habit Tracker") {
		t.Error("Terminal output missing projects")
	}
}

func TestFormatEmptyDirectory(t *testing.T) {
	empty := project.NewDirectory(nil, false)
	for _, name := range []string{"text", "json", "markdown"} {
		if _, err := Get(name, false).Format(empty); err != nil {
			t.Errorf("%s formatter failed on empty directory: %v", name, err)
		}
	}
}
