package carousel

import (
	"math"
	"time"
)

// snapEpsilon is the offset distance within which a slide counts as fully
// visible, the terminal analog of an intersection ratio of 1.0.
const snapEpsilon = 0.01

// Track models one horizontally scrolling layer. The offset is measured in
// slide widths, so slide i is fully visible exactly when offset == i. Raw
// input (wheel steps, drag frames) moves the offset; the embedded stabilizer
// decides when the motion has stopped and which slide the track rests on.
type Track struct {
	slides      int
	offset      float64
	snapEnabled bool
	dragging    bool
	stab        *Stabilizer
	onSettled   func(index int)
}

// NewTrack creates a track over n slides with the given settle delay.
func NewTrack(n int, settleDelay time.Duration) *Track {
	return &Track{
		slides:      n,
		snapEnabled: true,
		stab:        NewStabilizer(settleDelay),
	}
}

// SetOnSettled registers the settle callback. It fires once per stabilized
// position, not once per raw event.
func (t *Track) SetOnSettled(fn func(index int)) {
	t.onSettled = fn
}

// Slides returns the slide count.
func (t *Track) Slides() int {
	return t.slides
}

// SetSlides resizes the track, clamping the offset into the new range. Used
// when the project set is reloaded underneath a mounted track.
func (t *Track) SetSlides(n int) {
	if n < 0 {
		n = 0
	}
	t.slides = n
	t.offset = clampOffset(t.offset, n)
}

// Offset returns the current scroll position in slide widths.
func (t *Track) Offset() float64 {
	return t.offset
}

// SettleDelay returns the quiet period of the embedded stabilizer.
func (t *Track) SettleDelay() time.Duration {
	return t.stab.Delay()
}

// FullyVisible reports whether some slide is completely in view.
func (t *Track) FullyVisible() bool {
	return math.Abs(t.offset-math.Round(t.offset)) <= snapEpsilon
}

// VisibleIndex returns the slide considered current: the fully visible slide
// when there is one, otherwise the nearest slide by rounded offset. The
// rounding fallback covers fast flings where no slide is ever fully visible.
func (t *Track) VisibleIndex() int {
	if t.slides == 0 {
		return 0
	}
	return clampIndex(int(math.Round(t.offset)), t.slides)
}

// SnapEnabled reports whether snap alignment is active. Snap is disabled
// during drags and inertia animation so programmatic motion is not fought.
func (t *Track) SnapEnabled() bool {
	return t.snapEnabled
}

// Dragging reports whether a pointer drag is in progress.
func (t *Track) Dragging() bool {
	return t.dragging
}

// ScrollBy applies a raw scroll delta in slide widths and returns the
// stabilizer generation to expire after SettleDelay. Returns -1 when the
// track is empty or the event cannot lead to a settle (active drag).
func (t *Track) ScrollBy(delta float64) int {
	if t.slides == 0 {
		return -1
	}
	t.offset = clampOffset(t.offset+delta, t.slides)
	if t.dragging {
		return -1
	}
	return t.stab.Observe(t.VisibleIndex())
}

// SetOffset positions the track directly, as drag and inertia frames do.
// Like ScrollBy it returns a stabilizer generation, or -1 during a drag.
func (t *Track) SetOffset(off float64) int {
	if t.slides == 0 {
		return -1
	}
	t.offset = clampOffset(off, t.slides)
	if t.dragging {
		return -1
	}
	return t.stab.Observe(t.VisibleIndex())
}

// ScrollToSlide jumps instantly to the slide at index, clamped to the valid
// range. The position is recorded as already settled, so programmatic moves
// do not produce a second settle event.
func (t *Track) ScrollToSlide(index int) {
	if t.slides == 0 {
		return
	}
	index = clampIndex(index, t.slides)
	t.offset = float64(index)
	t.snapEnabled = true
	t.stab.ForceSettle(index)
}

// BeginDrag marks the start of pointer capture: snap off, settling blocked.
func (t *Track) BeginDrag() {
	t.dragging = true
	t.snapEnabled = false
	t.stab.Suspend()
}

// EndDrag releases pointer capture. Settling stays parked until the caller
// re-observes a rest position (directly or at the end of inertia).
func (t *Track) EndDrag() {
	t.dragging = false
	t.stab.Resume()
}

// EnableSnap re-arms snap alignment after inertia comes to rest.
func (t *Track) EnableSnap() {
	t.snapEnabled = true
}

// ExpireSettle resolves a stabilizer generation and fires the settle
// callback when the generation is still current and the index changed.
// Tracks with zero slides never settle.
func (t *Track) ExpireSettle(gen int) bool {
	if t.slides == 0 || gen < 0 {
		return false
	}
	index, ok := t.stab.Expire(gen)
	if !ok {
		return false
	}
	if t.onSettled != nil {
		t.onSettled(index)
	}
	return true
}
