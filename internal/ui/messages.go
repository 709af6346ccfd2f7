package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovalkan/folio/internal/carousel"
	"github.com/ovalkan/folio/internal/project"
)

// Message types for the browse app
type projectsLoadedMsg struct {
	projects []project.Project
	err      error
}

type contentChangedMsg struct{}

// settleMsg carries the stabilizer generation whose quiet period elapsed.
type settleMsg struct {
	gen int
}

// frameMsg drives inertia and glide animation steps.
type frameMsg time.Time

// statusClearMsg expires a status flash; stale sequences are ignored.
type statusClearMsg struct {
	seq int
}

// loadProjects reads the content directory off the event loop.
func loadProjects(dir string) tea.Cmd {
	return func() tea.Msg {
		projects, err := project.LoadDir(dir)
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

// waitForChange blocks on the watcher until the next content edit burst.
func waitForChange(w *project.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changes()
		return contentChangedMsg{}
	}
}

// settleAfter schedules the expiry of a stabilizer generation.
func settleAfter(delay time.Duration, gen int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return settleMsg{gen: gen}
	})
}

// frame schedules the next animation step at the configured frame rate.
func frame(fps int) tea.Cmd {
	if fps <= 0 {
		fps = carousel.DefaultFrameRate
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// clearStatusAfter expires the current status flash.
func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
