package route

import (
	"testing"

	"github.com/ovalkan/folio/internal/carousel"
	"github.com/ovalkan/folio/internal/logger"
	"github.com/ovalkan/folio/internal/nav"
)

// slugDir is a minimal Directory over an ordered slug list.
type slugDir []string

func (d slugDir) IndexOf(slug string) (int, bool) {
	for i, s := range d {
		if s == slug {
			return i, true
		}
	}
	return 0, false
}

func (d slugDir) IdentityOf(index int) (string, bool) {
	if index < 0 || index >= len(d) {
		return "", false
	}
	return d[index], true
}

type fixture struct {
	history  *nav.History
	master   *carousel.Track
	sync     *carousel.Synchronizer
	rec      *Reconciler
	notFound []string
}

// newFixture wires a real history, track, and synchronizer together the way
// the browser mounts them, starting at initialPath.
func newFixture(t *testing.T, slugs []string, initialPath string) *fixture {
	t.Helper()

	f := &fixture{history: nav.NewHistory(initialPath)}
	f.master = carousel.NewTrack(len(slugs), 0)
	f.sync = carousel.NewSynchronizer(f.master, 0)

	log := logger.NewWithCallback("test", func() bool { return false })
	f.rec = New(slugDir(slugs), f.history, f.sync, log)
	f.rec.SetOnNotFound(func(slug string) {
		f.notFound = append(f.notFound, slug)
	})

	if index, found, _ := f.rec.InitialIndex(); found {
		f.sync.JumpToSlide(index)
	}
	f.sync.SetOnStable(func(index int, source carousel.Source, _ carousel.Direction) {
		f.rec.OnStableIndex(index, source, false)
	})
	return f
}

// settleAt scrolls the master to index and expires the settle, the natural
// path a user flick takes.
func (f *fixture) settleAt(t *testing.T, index int) {
	t.Helper()
	gen := f.master.SetOffset(float64(index))
	if !f.master.ExpireSettle(gen) {
		t.Fatalf("Settle at %d did not fire", index)
	}
}

func TestMountAtDeepLink(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c", "d", "e"}, "/project/c")

	if f.sync.StableIndex() != 2 {
		t.Errorf("Expected mount at index 2, got %d", f.sync.StableIndex())
	}
	// Landing on the addressed slide must not grow history.
	if f.history.Len() != 1 {
		t.Errorf("Mount grew history to %d entries", f.history.Len())
	}
	if f.history.Current() != "/project/c" {
		t.Errorf("Mount rewrote the address to %q", f.history.Current())
	}
}

func TestMountAtUnknownSlug(t *testing.T) {
	f := newFixture(t, []string{"a", "b"}, "/project/zzz")

	index, found, slug := f.rec.InitialIndex()
	if found {
		t.Error("Unknown slug reported as found")
	}
	if index != 0 || slug != "zzz" {
		t.Errorf("InitialIndex = (%d, %q)", index, slug)
	}
	// The bad address stays put; the carousel shows the first project.
	if f.sync.StableIndex() != 0 {
		t.Errorf("Expected index 0, got %d", f.sync.StableIndex())
	}
	if f.history.Current() != "/project/zzz" {
		t.Errorf("Address rewritten to %q", f.history.Current())
	}
}

func TestNaturalSettlePushesRoute(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, "/project/a")

	f.settleAt(t, 2)

	if f.history.Current() != "/project/c" {
		t.Errorf("Expected address /project/c, got %q", f.history.Current())
	}
	if f.history.Len() != 2 {
		t.Errorf("Expected 2 history entries, got %d", f.history.Len())
	}
	// The navigation's own change event was consumed as an echo.
	if f.rec.selfNavigated {
		t.Error("Echo flag still set after navigation")
	}
	if f.sync.StableIndex() != 2 {
		t.Errorf("Echo moved the carousel, index %d", f.sync.StableIndex())
	}
}

func TestSettleOnCurrentSlugDoesNotPush(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, "/project/a")

	f.settleAt(t, 2)
	f.rec.OnStableIndex(2, carousel.SourceForced, false)

	if f.history.Len() != 2 {
		t.Errorf("Duplicate commit pushed, %d entries", f.history.Len())
	}
}

func TestBackJumpsWithoutNewPush(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, "/project/a")
	f.settleAt(t, 2)

	f.history.Back()

	if f.sync.StableIndex() != 0 {
		t.Errorf("Back did not move carousel, index %d", f.sync.StableIndex())
	}
	if f.master.Offset() != 0 {
		t.Errorf("Back left master at offset %f", f.master.Offset())
	}
	// Back traverses existing entries, it never creates them.
	if f.history.Len() != 2 {
		t.Errorf("Back grew history to %d entries", f.history.Len())
	}
	if !f.history.CanForward() {
		t.Error("Forward entry lost after back")
	}

	f.history.Forward()
	if f.sync.StableIndex() != 2 {
		t.Errorf("Forward did not restore index, got %d", f.sync.StableIndex())
	}
	if f.history.Len() != 2 {
		t.Errorf("Forward grew history to %d entries", f.history.Len())
	}
}

func TestExternalUnknownSlugRecovers(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, "/project/a")
	f.settleAt(t, 1)

	f.history.Navigate("/project/ghost", false)

	if len(f.notFound) != 1 || f.notFound[0] != "ghost" {
		t.Errorf("Expected not-found callback for ghost, got %v", f.notFound)
	}
	// Position survives the bad address.
	if f.sync.StableIndex() != 1 {
		t.Errorf("Unknown slug moved carousel to %d", f.sync.StableIndex())
	}
}

func TestForeignPathIgnored(t *testing.T) {
	f := newFixture(t, []string{"a", "b"}, "/project/a")
	f.settleAt(t, 1)

	f.history.Navigate("/about", false)

	if f.sync.StableIndex() != 1 {
		t.Errorf("Foreign path moved carousel to %d", f.sync.StableIndex())
	}
	if len(f.notFound) != 0 {
		t.Errorf("Foreign path reported as unknown slug: %v", f.notFound)
	}
}

func TestReplaceAlignmentKeepsHistoryFlat(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, "/")

	// Initial alignment from a foreign root path: replace, don't push.
	f.rec.OnStableIndex(f.sync.StableIndex(), carousel.SourceForced, true)

	if f.history.Current() != "/project/a" {
		t.Errorf("Expected address /project/a, got %q", f.history.Current())
	}
	if f.history.Len() != 1 {
		t.Errorf("Replace grew history to %d entries", f.history.Len())
	}
	if f.history.CanBack() {
		t.Error("Replace left a back entry")
	}
}

func TestStableIndexBeyondDirectory(t *testing.T) {
	f := newFixture(t, []string{"a", "b", "c"}, "/project/a")

	// A shrinking reload can briefly commit an index with no identity; the
	// address must not change.
	f.rec.SetDirectory(slugDir{"a"})
	f.rec.OnStableIndex(2, carousel.SourceNatural, false)

	if f.history.Current() != "/project/a" {
		t.Errorf("Address changed to %q", f.history.Current())
	}
	if f.history.Len() != 1 {
		t.Errorf("History grew to %d entries", f.history.Len())
	}
}
