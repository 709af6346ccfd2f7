package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovalkan/folio/internal/config"
	"github.com/ovalkan/folio/internal/logger"
	"github.com/ovalkan/folio/internal/project"
)

func testProjects() []project.Project {
	return []project.Project{
		{Slug: "alpha", Title: "Alpha", Year: 2023, Order: 1},
		{Slug: "beta", Title: "Beta", Year: 2024, Order: 2},
		{Slug: "gamma", Title: "Gamma", Year: 2025, Order: 3},
	}
}

// newTestModel mounts a model with three projects and an 80x24 viewport,
// bypassing Init so no watcher or filesystem load runs.
func newTestModel(t *testing.T, initialRoute string) *Model {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Content.AutoReload = false
	cfg.Carousel.SettleDelay = time.Millisecond
	cfg.Session.Restore = false

	log := logger.NewWithCallback("test", func() bool { return false })
	if err := log.RedirectToFile(filepath.Join(t.TempDir(), "test.log")); err != nil {
		t.Fatalf("Failed to redirect log: %v", err)
	}
	t.Cleanup(func() { _ = log.Close() })

	m := NewModel(cfg, log, initialRoute, false)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(projectsLoadedMsg{projects: testProjects()})
	if !m.mounted {
		t.Fatal("Engine did not mount after projects loaded")
	}
	return m
}

// pumpFrames drives an in-flight animation to rest and returns the command
// produced by the final frame.
func pumpFrames(t *testing.T, m *Model) tea.Cmd {
	t.Helper()
	if !m.animating {
		t.Fatal("No animation in flight")
	}
	for i := 0; i < 2000; i++ {
		_, cmd := m.Update(frameMsg(time.Time{}))
		if !m.animating {
			return cmd
		}
	}
	t.Fatal("Animation never came to rest")
	return nil
}

func TestBlurInterruptsDragAndSnaps(t *testing.T) {
	m := newTestModel(t, "")

	// Blur with no gesture in flight is a no-op.
	if _, cmd := m.Update(tea.BlurMsg{}); cmd != nil {
		t.Error("Expected no command from blur without an active drag")
	}

	// Drag three quarters of a slide left, then lose focus before release.
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 70})
	m.Update(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft, X: 10})
	if !m.drag.Active() {
		t.Fatal("Expected an active drag before blur")
	}

	_, cmd := m.Update(tea.BlurMsg{})
	if m.drag.Active() {
		t.Fatal("Expected blur to end the drag")
	}
	if !m.animating || cmd == nil {
		t.Fatal("Expected blur to start the snap-back animation")
	}

	cmd = pumpFrames(t, m)
	if !m.master.FullyVisible() {
		t.Fatalf("Expected track to rest on a slide, offset %v", m.master.Offset())
	}
	if got := m.master.VisibleIndex(); got != 1 {
		t.Fatalf("Expected snap to slide 1, got %d", got)
	}

	// The final frame schedules the settle; deliver it.
	if cmd == nil {
		t.Fatal("Expected a settle to be scheduled after the snap")
	}
	m.Update(cmd())

	if m.sync.StableIndex() != 1 {
		t.Errorf("Expected stable index 1 after settle, got %d", m.sync.StableIndex())
	}
	if m.stableIdx != 1 {
		t.Errorf("Expected chrome index 1 after settle, got %d", m.stableIdx)
	}
	if m.history.Current() != "/project/beta" {
		t.Errorf("Expected route /project/beta, got %s", m.history.Current())
	}
}

func TestChromeFollowsStableIndex(t *testing.T) {
	m := newTestModel(t, "/project/gamma")

	if m.stableIdx != 2 {
		t.Fatalf("Expected chrome index 2 at mount, got %d", m.stableIdx)
	}

	m.jumpTo(0)
	if m.stableIdx != 0 {
		t.Fatalf("Expected chrome index 0 after jump, got %d", m.stableIdx)
	}

	header := m.renderHeader()
	if !strings.Contains(header, "1/3") {
		t.Errorf("Expected header position 1/3, got %q", header)
	}
	if !strings.Contains(header, "Alpha") {
		t.Errorf("Expected header title Alpha, got %q", header)
	}
}

func TestReloadClampsChromeIndex(t *testing.T) {
	m := newTestModel(t, "/project/gamma")

	m.Update(projectsLoadedMsg{projects: testProjects()[:1]})
	if m.stableIdx != 0 {
		t.Errorf("Expected chrome index clamped to 0 after shrink, got %d", m.stableIdx)
	}
	if m.sync.StableIndex() != 0 {
		t.Errorf("Expected stable index clamped to 0 after shrink, got %d", m.sync.StableIndex())
	}
}
