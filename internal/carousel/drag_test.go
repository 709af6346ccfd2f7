package carousel

import (
	"math"
	"testing"
	"time"
)

// stepToRest drives the animation until the spring settles, failing the test
// if it never does.
func stepToRest(t *testing.T, c *DragController) int {
	t.Helper()
	for i := 0; i < 2000; i++ {
		gen, done := c.Step()
		if done {
			return gen
		}
	}
	t.Fatal("Animation never came to rest")
	return -1
}

func TestDragFollowsPointer(t *testing.T) {
	tr := NewTrack(5, 0)
	c := NewDragController(tr, 0, 0, 0, 0)
	c.SetSlideWidth(100)

	base := time.Now()
	c.PointerDown(200, base)
	if !c.Active() {
		t.Fatal("Expected drag to be active after PointerDown")
	}
	if !tr.Dragging() {
		t.Error("Expected track to be in drag state")
	}

	// Pointer motion left by half a slide width moves content right.
	c.PointerMove(150, base.Add(20*time.Millisecond))
	if math.Abs(tr.Offset()-0.5) > 1e-9 {
		t.Errorf("Expected offset 0.5 mid-drag, got %f", tr.Offset())
	}
}

func TestDragFlickProjectsLanding(t *testing.T) {
	tr := NewTrack(5, 0)
	c := NewDragController(tr, 0, 0, 0, 0)
	c.SetSlideWidth(100)

	base := time.Now()
	c.PointerDown(200, base)
	c.PointerMove(150, base.Add(30*time.Millisecond))
	c.PointerMove(100, base.Add(60*time.Millisecond))
	started, _ := c.PointerUp(100, base.Add(60*time.Millisecond))
	if !started {
		t.Fatal("Expected inertia animation after flick")
	}
	if c.Active() {
		t.Error("Drag still active after release")
	}
	if !c.Animating() {
		t.Error("Expected animation in flight")
	}

	gen := stepToRest(t, c)
	if gen < 0 {
		t.Fatal("Expected a stabilizer generation at rest")
	}

	// A fast leftward flick from offset 1 must land well past the adjacent
	// slide.
	if tr.Offset() < 2 {
		t.Errorf("Flick landed at offset %f, expected momentum past slide 2", tr.Offset())
	}
	if !tr.FullyVisible() {
		t.Errorf("Inertia rested between slides at offset %f", tr.Offset())
	}
	if !tr.SnapEnabled() {
		t.Error("Snap not re-enabled after inertia")
	}
	if !tr.ExpireSettle(gen) {
		t.Error("Rest position did not settle")
	}
}

func TestDragSlowReleaseSnapsToNearest(t *testing.T) {
	tr := NewTrack(5, 0)
	c := NewDragController(tr, 0, 0, 0, 0)
	c.SetSlideWidth(100)

	base := time.Now()
	c.PointerDown(200, base)
	c.PointerMove(130, base.Add(50*time.Millisecond))

	// Hold still past the velocity window, then release: no throw.
	started, _ := c.PointerUp(130, base.Add(300*time.Millisecond))
	if started {
		if gen := stepToRest(t, c); gen < 0 {
			t.Fatal("Expected generation at rest")
		}
	}
	if tr.Offset() != 1 {
		t.Errorf("Expected snap to nearest slide 1, got offset %f", tr.Offset())
	}
}

func TestDragInterrupt(t *testing.T) {
	tr := NewTrack(5, 0)
	c := NewDragController(tr, 0, 0, 0, 0)
	c.SetSlideWidth(100)

	base := time.Now()
	c.PointerDown(200, base)
	c.PointerMove(140, base.Add(30*time.Millisecond))

	// Lost pointer: release with zero velocity toward the nearest slide.
	started, gen := c.Interrupt()
	if c.Active() {
		t.Error("Drag still active after interrupt")
	}
	if started {
		gen = stepToRest(t, c)
	}
	if gen < 0 {
		t.Fatal("Expected generation after interrupt")
	}
	if tr.Offset() != 1 {
		t.Errorf("Expected rest at slide 1, got offset %f", tr.Offset())
	}
	if tr.Dragging() {
		t.Error("Track still dragging after interrupt")
	}
}

func TestGlideTo(t *testing.T) {
	tr := NewTrack(5, 0)
	c := NewDragController(tr, 0, 0, 0, 0)

	if !c.GlideTo(3) {
		t.Fatal("Expected glide to start")
	}
	gen := stepToRest(t, c)
	if tr.Offset() != 3 {
		t.Errorf("Expected glide to land on 3, got %f", tr.Offset())
	}
	if gen < 0 {
		t.Fatal("Expected generation at glide rest")
	}

	// Gliding to the current slide is a no-op.
	if c.GlideTo(3) {
		t.Error("Glide started toward current position")
	}
}

func TestPointerDownCancelsAnimation(t *testing.T) {
	tr := NewTrack(5, 0)
	c := NewDragController(tr, 0, 0, 0, 0)
	c.SetSlideWidth(100)

	if !c.GlideTo(4) {
		t.Fatal("Expected glide to start")
	}
	c.Step()
	c.PointerDown(100, time.Now())
	if c.Animating() {
		t.Error("Animation survived a new pointer gesture")
	}
	if !c.Active() {
		t.Error("New gesture not active")
	}
}

func TestDragEmptyTrack(t *testing.T) {
	tr := NewTrack(0, 0)
	c := NewDragController(tr, 0, 0, 0, 0)

	c.PointerDown(100, time.Now())
	if c.Active() {
		t.Error("Drag activated on empty track")
	}
	if c.GlideTo(2) {
		t.Error("Glide started on empty track")
	}
}
