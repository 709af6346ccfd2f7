package carousel

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Inertia tuning defaults. The projection window converts release velocity
// into a landing slide; the spring settles the offset onto it.
const (
	DefaultFrameRate       = 60
	DefaultSpringFrequency = 7.0
	DefaultSpringDamping   = 1.0
	DefaultFlickProjection = 180 * time.Millisecond

	// velocityWindow bounds how far back pointer samples count toward the
	// release velocity. Older samples describe a different gesture.
	velocityWindow = 120 * time.Millisecond

	// restThreshold is the spring distance/velocity below which the
	// animation is considered at rest.
	restThreshold = 0.001
)

type pointerSample struct {
	x  int
	at time.Time
}

// DragController intercepts pointer input on the master track, applies
// inertial throw physics on release, and keeps snap disabled for the whole
// gesture. The slave tracks never receive pointer input, so exactly one
// controller exists per carousel.
type DragController struct {
	track      *Track
	spring     harmonica.Spring
	projection time.Duration

	slideWidth int

	active    bool
	originX   int
	originOff float64
	samples   []pointerSample

	animating bool
	pos       float64
	vel       float64
	target    float64
}

// NewDragController builds a controller for the given track. Frame rate,
// spring frequency, and damping zero-values fall back to the defaults.
func NewDragController(track *Track, fps int, frequency, damping float64, projection time.Duration) *DragController {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	if frequency <= 0 {
		frequency = DefaultSpringFrequency
	}
	if damping <= 0 {
		damping = DefaultSpringDamping
	}
	if projection <= 0 {
		projection = DefaultFlickProjection
	}
	return &DragController{
		track:      track,
		spring:     harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		projection: projection,
		slideWidth: 1,
	}
}

// SetSlideWidth updates the cell width of one slide, used to convert pointer
// deltas into slide units. Called on every terminal resize.
func (c *DragController) SetSlideWidth(w int) {
	if w > 0 {
		c.slideWidth = w
	}
}

// Active reports whether a pointer is currently held down.
func (c *DragController) Active() bool {
	return c.active
}

// Animating reports whether an inertia or glide animation is in flight.
func (c *DragController) Animating() bool {
	return c.animating
}

// PointerDown starts a drag at column x. An in-flight inertia animation is
// cancelled immediately and the new gesture takes over from the current
// offset.
func (c *DragController) PointerDown(x int, now time.Time) {
	if c.track.Slides() == 0 {
		return
	}
	c.animating = false
	c.active = true
	c.originX = x
	c.originOff = c.track.Offset()
	c.samples = c.samples[:0]
	c.samples = append(c.samples, pointerSample{x: x, at: now})
	c.track.BeginDrag()
}

// PointerMove tracks pointer motion during an active drag. Dragging right
// moves content left, so the offset moves against the pointer delta.
func (c *DragController) PointerMove(x int, now time.Time) {
	if !c.active {
		return
	}
	delta := float64(c.originX-x) / float64(c.slideWidth)
	c.track.SetOffset(c.originOff + delta)
	c.samples = append(c.samples, pointerSample{x: x, at: now})
	if len(c.samples) > 8 {
		c.samples = c.samples[len(c.samples)-8:]
	}
}

// PointerUp releases the drag, computes the throw velocity from the recent
// pointer samples, and starts the inertia animation toward the projected
// landing slide. It reports whether an animation was started; when it
// returns false the caller expires the returned stabilizer generation
// instead.
func (c *DragController) PointerUp(x int, now time.Time) (started bool, gen int) {
	if !c.active {
		return false, -1
	}
	c.PointerMove(x, now)
	velocity := c.releaseVelocity(now)
	c.active = false
	c.track.EndDrag()
	return c.throw(velocity)
}

// Interrupt treats a lost pointer (left the window, another pointer took
// over) as a release with zero extra velocity, so the track never hangs in a
// permanently un-snapped state.
func (c *DragController) Interrupt() (started bool, gen int) {
	if !c.active {
		return false, -1
	}
	c.active = false
	c.track.EndDrag()
	return c.throw(0)
}

// GlideTo animates the track smoothly to the slide at index with no initial
// velocity. Programmatic navigation uses this for the master track; slaves
// always jump instantly.
func (c *DragController) GlideTo(index int) bool {
	if c.track.Slides() == 0 || c.active {
		return false
	}
	index = clampIndex(index, c.track.Slides())
	c.pos = c.track.Offset()
	c.vel = 0
	c.target = float64(index)
	if math.Abs(c.pos-c.target) < restThreshold {
		return false
	}
	c.animating = true
	return true
}

// Step advances the animation one frame. When the spring comes to rest it
// snaps the track exactly onto the target, re-enables snap, and hands back a
// stabilizer generation so the normal settle path resumes.
func (c *DragController) Step() (gen int, done bool) {
	if !c.animating {
		return -1, true
	}
	c.pos, c.vel = c.spring.Update(c.pos, c.vel, c.target)
	if math.Abs(c.pos-c.target) < restThreshold && math.Abs(c.vel) < restThreshold {
		c.animating = false
		c.track.EnableSnap()
		gen = c.track.SetOffset(c.target)
		return gen, true
	}
	c.track.SetOffset(c.pos)
	return -1, false
}

// throw begins deceleration toward the projected rest slide.
func (c *DragController) throw(velocity float64) (bool, int) {
	projected := c.track.Offset() + velocity*c.projection.Seconds()
	target := clampIndex(int(math.Round(projected)), c.track.Slides())

	c.pos = c.track.Offset()
	c.vel = velocity
	c.target = float64(target)

	if math.Abs(c.pos-c.target) < restThreshold && math.Abs(velocity) < restThreshold {
		c.track.EnableSnap()
		return false, c.track.SetOffset(c.target)
	}
	c.animating = true
	return true, -1
}

// releaseVelocity derives the throw velocity in slides per second from the
// pointer samples inside the velocity window.
func (c *DragController) releaseVelocity(now time.Time) float64 {
	cutoff := now.Add(-velocityWindow)
	first := -1
	for i, s := range c.samples {
		if !s.at.Before(cutoff) {
			first = i
			break
		}
	}
	if first < 0 || first == len(c.samples)-1 {
		return 0
	}
	oldest := c.samples[first]
	newest := c.samples[len(c.samples)-1]
	dt := newest.at.Sub(oldest.at).Seconds()
	if dt <= 0 {
		return 0
	}
	// Pointer motion right is offset motion left.
	return float64(oldest.x-newest.x) / float64(c.slideWidth) / dt
}
