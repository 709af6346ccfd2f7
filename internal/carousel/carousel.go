// Package carousel implements the layered slide engine behind the project
// browser: per-layer scroll tracks with snap alignment, settle detection,
// drag/inertia physics, and a synchronizer that keeps every layer and the
// route in agreement on a single stable slide index.
package carousel

// Source tags where an index transition originated. Natural transitions come
// from user scrolling on the master track; forced transitions come from
// programmatic jumps (prev/next controls, route changes).
type Source int

const (
	SourceNatural Source = iota
	SourceForced
)

// String returns the source name for logging.
func (s Source) String() string {
	if s == SourceForced {
		return "forced"
	}
	return "natural"
}

// Direction of travel between two slide indices. Used only to pick a
// transition style, never for correctness.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func directionOf(from, to int) Direction {
	switch {
	case to > from:
		return DirectionRight
	case to < from:
		return DirectionLeft
	default:
		return DirectionNone
	}
}

func clampIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func clampOffset(off float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if off < 0 {
		return 0
	}
	if max := float64(n - 1); off > max {
		return max
	}
	return off
}
