package route

import (
	"github.com/ovalkan/folio/internal/carousel"
	"github.com/ovalkan/folio/internal/logger"
	"github.com/ovalkan/folio/internal/nav"
)

// Directory is the slug/index lookup the reconciler consumes. The project
// package supplies the real one.
type Directory interface {
	IndexOf(slug string) (int, bool)
	IdentityOf(index int) (string, bool)
}

// Jumper is the slice of the layer synchronizer the reconciler drives.
type Jumper interface {
	JumpToSlide(index int)
	StableIndex() int
}

// Reconciler maintains the bidirectional invariant: the address always
// encodes the identity of the stable slide, and an address change always
// lands the carousel on the matching slide, with self-caused echoes
// suppressed on both legs.
type Reconciler struct {
	dir   Directory
	nav   nav.Navigator
	codec Codec
	sync  Jumper
	log   *logger.Logger

	// selfNavigated is set immediately before the reconciler's own
	// Navigate call; the next observed route change clears it and is
	// treated as an echo.
	selfNavigated bool
	// suppressNotify is set around reconciler-initiated jumps so the
	// resulting stable-index notification does not navigate again.
	suppressNotify bool

	onNotFound func(slug string)
	onEcho     func()
}

// New builds a reconciler over the given collaborators and subscribes it to
// route changes. The caller wires OnStableIndex into the synchronizer.
func New(dir Directory, navigator nav.Navigator, sync Jumper, log *logger.Logger) *Reconciler {
	r := &Reconciler{
		dir:  dir,
		nav:  navigator,
		sync: sync,
		log:  log,
	}
	navigator.OnChange(r.handleRouteChange)
	return r
}

// SetOnNotFound registers the recoverable handler for addresses whose slug
// does not exist in the current project set.
func (r *Reconciler) SetOnNotFound(fn func(slug string)) {
	r.onNotFound = fn
}

// SetOnEcho registers an observer for suppressed feedback events, on either
// leg. Used for session counters only.
func (r *Reconciler) SetOnEcho(fn func()) {
	r.onEcho = fn
}

// SetDirectory swaps the lookup after a content reload.
func (r *Reconciler) SetDirectory(dir Directory) {
	r.dir = dir
}

// InitialIndex resolves the mount-time route. It returns the slide index,
// whether the route named a known project, and the slug it carried (empty
// when the route is foreign to the project scheme).
func (r *Reconciler) InitialIndex() (index int, found bool, slug string) {
	slug, ok := r.codec.Decode(r.nav.Current())
	if !ok {
		return 0, false, ""
	}
	index, found = r.dir.IndexOf(slug)
	if !found {
		return 0, false, slug
	}
	return index, true, slug
}

// OnStableIndex receives stable-index commits from the synchronizer and
// pushes a navigation entry when the encoded identity actually changed.
// The initial mount alignment uses replace so resuming a session does not
// grow the history.
func (r *Reconciler) OnStableIndex(index int, source carousel.Source, replace bool) {
	if r.suppressNotify {
		r.suppressNotify = false
		if r.onEcho != nil {
			r.onEcho()
		}
		return
	}
	slug, ok := r.dir.IdentityOf(index)
	if !ok {
		// Index outran a shrinking project list; the next reload commit
		// realigns the address.
		return
	}
	path := r.codec.Encode(slug)
	if path == r.nav.Current() {
		return
	}
	r.log.Debug("route update: index=%d slug=%s source=%s", index, slug, source)
	// Set before Navigate, not after: the change callback fires inside
	// Navigate and must already see the flag.
	r.selfNavigated = true
	r.nav.Navigate(path, replace)
}

// handleRouteChange reacts to externally observed address changes
// (back/forward, deep links) by jumping the carousel to the named slide.
func (r *Reconciler) handleRouteChange(path string) {
	if r.selfNavigated {
		r.selfNavigated = false
		if r.onEcho != nil {
			r.onEcho()
		}
		return
	}
	slug, ok := r.codec.Decode(path)
	if !ok {
		return
	}
	index, ok := r.dir.IndexOf(slug)
	if !ok {
		r.log.Warn("route names unknown project %q, keeping position", slug)
		if r.onNotFound != nil {
			r.onNotFound(slug)
		}
		return
	}
	if index == r.sync.StableIndex() {
		return
	}
	r.suppressNotify = true
	r.sync.JumpToSlide(index)
}
