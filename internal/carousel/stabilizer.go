package carousel

import "time"

// DefaultSettleDelay is the quiet period after the last raw position change
// before a position counts as settled. Momentum scrolling produces dozens of
// intermediate positions per throw; only the rest position matters.
const DefaultSettleDelay = 150 * time.Millisecond

// Stabilizer turns a stream of raw position observations into a single
// settle decision per quiet period. It is clock-free: every observation
// returns a new generation number, the caller schedules a timer for that
// generation, and only the timer matching the current generation may settle.
// Stale timers are rejected, so timers never stack.
type Stabilizer struct {
	delay       time.Duration
	gen         int
	pending     int
	lastSettled int
	suspended   bool
}

// NewStabilizer creates a stabilizer with the given quiet period. A zero or
// negative delay falls back to DefaultSettleDelay.
func NewStabilizer(delay time.Duration) *Stabilizer {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &Stabilizer{
		delay:       delay,
		pending:     -1,
		lastSettled: -1,
	}
}

// Delay returns the quiet period the caller should wait before expiring a
// generation.
func (s *Stabilizer) Delay() time.Duration {
	return s.delay
}

// Observe records a raw position change and returns the generation the
// caller must expire after Delay. Each observation invalidates all earlier
// generations.
func (s *Stabilizer) Observe(index int) int {
	s.gen++
	s.pending = index
	return s.gen
}

// Expire resolves the given generation. It reports the settled index only
// when the generation is still current, no drag is in progress, and the
// index actually changed since the last settle.
func (s *Stabilizer) Expire(gen int) (int, bool) {
	if gen != s.gen || s.suspended || s.pending < 0 {
		return 0, false
	}
	if s.pending == s.lastSettled {
		return 0, false
	}
	s.lastSettled = s.pending
	return s.pending, true
}

// Suspend blocks settling while a drag is actively in progress.
func (s *Stabilizer) Suspend() {
	s.suspended = true
}

// Resume lifts a suspension. Any pending observation stays pending; the
// caller re-observes the rest position to restart the quiet period.
func (s *Stabilizer) Resume() {
	s.suspended = false
}

// ForceSettle records an index as already settled without emitting a settle
// event. Programmatic jumps use this so the jump target does not echo back
// through the debounce path.
func (s *Stabilizer) ForceSettle(index int) {
	s.gen++
	s.pending = index
	s.lastSettled = index
}

// LastSettled returns the most recently settled index, or -1 before the
// first settle.
func (s *Stabilizer) LastSettled() int {
	return s.lastSettled
}
