package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ovalkan/folio/internal/carousel"
	"github.com/ovalkan/folio/internal/config"
	"github.com/ovalkan/folio/internal/logger"
	"github.com/ovalkan/folio/internal/metrics"
	"github.com/ovalkan/folio/internal/nav"
	"github.com/ovalkan/folio/internal/project"
	"github.com/ovalkan/folio/internal/route"
)

const wheelStep = 0.25

// Model is the interactive portfolio browser. It owns the carousel engine
// and translates terminal events into track operations; everything below it
// (tracks, synchronizer, drag, routing) is unaware of Bubble Tea.
type Model struct {
	cfg   *config.Config
	log   *logger.Logger
	theme Theme
	keys  KeyMap
	help  help.Model

	width  int
	height int
	ready  bool

	loading bool
	loadErr error
	dir     *project.Directory

	// carousel engine, mounted once the first load succeeds
	master  *carousel.Track
	film    *carousel.Track
	sync    *carousel.Synchronizer
	drag    *carousel.DragController
	rec     *route.Reconciler
	history *nav.History
	mounted bool

	// stable index mirrored from the synchronizer's subscription feed;
	// the render path reads this, never the synchronizer directly
	stableIdx int

	watcher *project.Watcher
	stats   *metrics.Session

	initialRoute string
	includeNDA   bool

	detailOpen bool
	detail     string

	status      string
	statusColor lipgloss.AdaptiveColor
	statusSeq   int

	animating bool
	quitting  bool
}

// NewModel builds the browser for the given initial route ("" lands on the
// first project).
func NewModel(cfg *config.Config, log *logger.Logger, initialRoute string, includeNDA bool) *Model {
	h := help.New()
	return &Model{
		cfg:          cfg,
		log:          log,
		theme:        GetTheme(cfg.UI.Theme),
		keys:         DefaultKeyMap(),
		help:         h,
		loading:      true,
		initialRoute: initialRoute,
		includeNDA:   includeNDA,
		stats:        metrics.NewSession(),
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadProjects(m.cfg.Content.Dir)}
	if m.cfg.Content.AutoReload {
		w, err := project.NewWatcher(m.cfg.Content.Dir)
		if err != nil {
			m.log.Warn("content watcher unavailable: %v", err)
		} else {
			m.watcher = w
			cmds = append(cmds, waitForChange(w))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.detail = ""
		if m.drag != nil {
			m.drag.SetSlideWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		return m.handleBlur()

	case projectsLoadedMsg:
		return m.handleProjectsLoaded(msg)

	case contentChangedMsg:
		m.stats.Reloads.Inc()
		m.log.Debug("content changed, reloading")
		cmds := []tea.Cmd{loadProjects(m.cfg.Content.Dir)}
		if m.watcher != nil {
			cmds = append(cmds, waitForChange(m.watcher))
		}
		return m, tea.Batch(cmds...)

	case frameMsg:
		return m.handleFrame()

	case settleMsg:
		return m.handleSettle(msg.gen)

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleProjectsLoaded(msg projectsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.loadErr = msg.err
		m.log.Error("failed to load projects: %v", msg.err)
		return m, nil
	}
	m.loadErr = nil

	dir := project.NewDirectory(msg.projects, m.includeNDA)
	m.dir = dir
	m.detail = ""

	if !m.mounted {
		seq := m.statusSeq
		m.mountEngine()
		if m.statusSeq != seq {
			return m, clearStatusAfter(m.statusSeq)
		}
		return m, nil
	}

	// Reload: swap the directory and re-clamp the tracks. The synchronizer
	// re-commits the clamped index, which realigns the route if the current
	// project disappeared.
	m.rec.SetDirectory(dir)
	m.sync.Resize(dir.Len())
	m.log.Info("reloaded %d projects", dir.Len())
	return m, nil
}

// mountEngine wires tracks, synchronizer, drag controller and route
// reconciler together. The initial route is resolved before the stable-index
// hook is registered, so mounting never emits a navigation of its own.
func (m *Model) mountEngine() {
	n := m.dir.Len()
	cc := m.cfg.Carousel

	m.master = carousel.NewTrack(n, cc.SettleDelay)
	m.drag = carousel.NewDragController(m.master, cc.FrameRate, cc.SpringFrequency, cc.SpringDamping, cc.FlickProjection)
	if m.width > 0 {
		m.drag.SetSlideWidth(m.width)
	}

	m.history = nav.NewHistory(m.initialRoute)

	m.sync = carousel.NewSynchronizer(m.master, 0)
	m.stableIdx = m.sync.StableIndex()
	m.sync.OnIndexChange(func(index int) { m.stableIdx = index })
	m.rec = route.New(m.dir, m.history, m.sync, m.log)
	m.rec.SetOnEcho(m.stats.Echoes.Inc)
	m.rec.SetOnNotFound(func(slug string) {
		m.stats.NotFounds.Inc()
		m.setStatus("no project named "+slug, m.theme.Warning)
	})

	if idx, found, slug := m.rec.InitialIndex(); found {
		m.sync.JumpToSlide(idx)
	} else if slug != "" {
		m.stats.NotFounds.Inc()
		m.setStatus("no project named "+slug, m.theme.Warning)
	}

	if m.cfg.UI.ShowFilmstrip {
		m.film = carousel.NewTrack(n, cc.SettleDelay)
		m.sync.AttachSlave(m.film)
	}

	m.sync.SetOnStable(func(index int, source carousel.Source, _ carousel.Direction) {
		if source == carousel.SourceNatural {
			m.stats.Settles.Inc()
		} else {
			m.stats.Jumps.Inc()
		}
		m.detail = ""
		before := m.history.Len()
		m.rec.OnStableIndex(index, source, false)
		if m.history.Len() > before {
			m.stats.Pushes.Inc()
		}
	})

	// Align the address bar with wherever we actually landed, without
	// growing history.
	m.rec.OnStableIndex(m.sync.StableIndex(), carousel.SourceForced, true)

	m.mounted = true
	m.log.Info("mounted %d projects at index %d", n, m.sync.StableIndex())
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if !m.mounted || m.dir.Len() == 0 {
		return m, nil
	}

	if m.detailOpen {
		if key.Matches(msg, m.keys.Close) || key.Matches(msg, m.keys.Detail) {
			m.detailOpen = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		return m, m.step(-1)
	case key.Matches(msg, m.keys.Next):
		return m, m.step(+1)
	case key.Matches(msg, m.keys.First):
		return m, m.jumpTo(0)
	case key.Matches(msg, m.keys.Last):
		return m, m.jumpTo(m.dir.Len() - 1)
	case key.Matches(msg, m.keys.Detail):
		m.detailOpen = true
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.history.CanBack() {
			seq := m.statusSeq
			m.history.Back()
			if m.statusSeq != seq {
				return m, clearStatusAfter(m.statusSeq)
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Forward):
		if m.history.CanForward() {
			seq := m.statusSeq
			m.history.Forward()
			if m.statusSeq != seq {
				return m, clearStatusAfter(m.statusSeq)
			}
		}
		return m, nil
	}
	return m, nil
}

// step advances one slide, wrapping around when configured. The glide starts
// before the jump so the animation captures the pre-jump offset; the jump
// itself commits the index, mirrors slaves and updates the route instantly.
func (m *Model) step(delta int) tea.Cmd {
	n := m.dir.Len()
	target := m.sync.StableIndex() + delta
	if m.cfg.Carousel.WrapAround {
		target = ((target % n) + n) % n
	} else if target < 0 || target >= n {
		return nil
	}
	return m.jumpTo(target)
}

func (m *Model) jumpTo(target int) tea.Cmd {
	if target == m.sync.StableIndex() {
		return nil
	}
	started := m.drag.GlideTo(target)
	m.sync.JumpToSlide(target)
	if started && !m.animating {
		m.animating = true
		return frame(m.cfg.Carousel.FrameRate)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mounted || m.dir.Len() == 0 || m.detailOpen {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		delta := wheelStep
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -wheelStep
		}
		if gen := m.master.ScrollBy(delta); gen >= 0 {
			return m, settleAfter(m.master.SettleDelay(), gen)
		}
		return m, nil
	}

	now := time.Now()
	switch msg.Action {
	case tea.MouseActionPress:
		m.drag.PointerDown(msg.X, now)
		return m, nil

	case tea.MouseActionMotion:
		if m.drag.Active() {
			m.drag.PointerMove(msg.X, now)
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.drag.Active() {
			return m, nil
		}
		started, gen := m.drag.PointerUp(msg.X, now)
		if started && !m.animating {
			m.animating = true
			return m, frame(m.cfg.Carousel.FrameRate)
		}
		if gen >= 0 {
			return m, settleAfter(m.master.SettleDelay(), gen)
		}
		return m, nil
	}
	return m, nil
}

// handleBlur ends a drag whose release event will never arrive because the
// terminal lost focus mid-gesture. The gesture becomes a zero-velocity
// release, so the track snaps to the nearest slide instead of hanging
// between two.
func (m *Model) handleBlur() (tea.Model, tea.Cmd) {
	if !m.mounted || !m.drag.Active() {
		return m, nil
	}
	started, gen := m.drag.Interrupt()
	if started && !m.animating {
		m.animating = true
		return m, frame(m.cfg.Carousel.FrameRate)
	}
	if gen >= 0 {
		return m, settleAfter(m.master.SettleDelay(), gen)
	}
	return m, nil
}

func (m *Model) handleFrame() (tea.Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}
	m.stats.Frames.Inc()
	gen, done := m.drag.Step()
	if !done {
		return m, frame(m.cfg.Carousel.FrameRate)
	}
	m.animating = false
	if gen >= 0 {
		return m, settleAfter(m.master.SettleDelay(), gen)
	}
	return m, nil
}

// handleSettle fires the debounced settle for gen. If the track came to rest
// between slides (interrupted drag, resize mid-glide), glide to the nearest
// slide instead of committing a fractional position.
func (m *Model) handleSettle(gen int) (tea.Model, tea.Cmd) {
	if !m.mounted {
		return m, nil
	}
	if !m.master.FullyVisible() {
		if m.drag.GlideTo(m.master.VisibleIndex()) && !m.animating {
			m.animating = true
			return m, frame(m.cfg.Carousel.FrameRate)
		}
		return m, nil
	}
	m.master.ExpireSettle(gen)
	return m, nil
}

func (m *Model) showFilmstrip() bool {
	return m.film != nil
}

func (m *Model) setStatus(text string, color lipgloss.AdaptiveColor) {
	m.status = text
	m.statusColor = color
	m.statusSeq++
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	if m.watcher != nil {
		m.watcher.Close()
	}
	if m.mounted && m.cfg.Session.Restore {
		if err := nav.SaveSession(m.cfg.Session.Path, m.history.Current()); err != nil {
			m.log.Warn("failed to save session: %v", err)
		}
	}
	m.log.Info("%s", m.stats.Summary())
	return tea.Quit
}
