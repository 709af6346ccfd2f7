// Package nav provides the navigation/history model the carousel reconciles
// against: an in-process address with browser-like push/replace semantics,
// back/forward traversal, and change callbacks.
package nav

// Navigator abstracts the address provider consumed by the route reconciler.
type Navigator interface {
	// Current returns the active path.
	Current() string
	// Navigate moves to path, either pushing a new entry or replacing the
	// active one.
	Navigate(path string, replace bool)
	// OnChange registers a callback invoked after every observed path
	// change, whatever its origin.
	OnChange(fn func(path string))
}

// History is the concrete Navigator: a linear entry stack with a cursor.
// Navigating from the middle of the stack truncates the forward entries,
// matching browser history behavior.
type History struct {
	entries   []string
	pos       int
	callbacks []func(path string)
}

var _ Navigator = (*History)(nil)

// NewHistory creates a history whose single entry is the initial path.
func NewHistory(initial string) *History {
	return &History{entries: []string{initial}}
}

// Current returns the path under the cursor.
func (h *History) Current() string {
	return h.entries[h.pos]
}

// Len returns the number of entries on the stack.
func (h *History) Len() int {
	return len(h.entries)
}

// OnChange registers a path-change callback.
func (h *History) OnChange(fn func(path string)) {
	h.callbacks = append(h.callbacks, fn)
}

// Navigate moves to path. Navigating to the current path is a no-op, so
// re-settling on the same slide can never create duplicate entries.
func (h *History) Navigate(path string, replace bool) {
	if path == h.Current() {
		return
	}
	if replace {
		h.entries[h.pos] = path
	} else {
		h.entries = append(h.entries[:h.pos+1], path)
		h.pos = len(h.entries) - 1
	}
	h.notify()
}

// CanBack reports whether an earlier entry exists.
func (h *History) CanBack() bool {
	return h.pos > 0
}

// CanForward reports whether a later entry exists.
func (h *History) CanForward() bool {
	return h.pos < len(h.entries)-1
}

// Back moves the cursor one entry toward the oldest. It reports whether the
// cursor moved.
func (h *History) Back() bool {
	if !h.CanBack() {
		return false
	}
	h.pos--
	h.notify()
	return true
}

// Forward moves the cursor one entry toward the newest.
func (h *History) Forward() bool {
	if !h.CanForward() {
		return false
	}
	h.pos++
	h.notify()
	return true
}

func (h *History) notify() {
	path := h.Current()
	for _, fn := range h.callbacks {
		fn(path)
	}
}
