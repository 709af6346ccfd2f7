// Package metrics collects lightweight interaction counters for a browse
// session: settles, jumps, history pushes, animation frames. The session
// summary is logged on exit when verbose is on.
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"
)

// Counter is a thread-safe counter metric
type Counter struct {
	value int64
	name  string
}

// NewCounter creates a new counter metric
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc increments the counter by 1
func (c *Counter) Inc() {
	atomic.AddInt64(&c.value, 1)
}

// Add adds the given value to the counter
func (c *Counter) Add(value int64) {
	atomic.AddInt64(&c.value, value)
}

// Get returns the current counter value
func (c *Counter) Get() int64 {
	return atomic.LoadInt64(&c.value)
}

// Reset resets the counter to 0
func (c *Counter) Reset() {
	atomic.StoreInt64(&c.value, 0)
}

// Name returns the counter name
func (c *Counter) Name() string {
	return c.name
}

// Session aggregates the counters of one browse session.
type Session struct {
	Settles   *Counter
	Jumps     *Counter
	Pushes    *Counter
	Echoes    *Counter
	Frames    *Counter
	Reloads   *Counter
	NotFounds *Counter

	started time.Time
}

// NewSession creates a session with all counters at zero.
func NewSession() *Session {
	return &Session{
		Settles:   NewCounter("settles"),
		Jumps:     NewCounter("jumps"),
		Pushes:    NewCounter("route_pushes"),
		Echoes:    NewCounter("suppressed_echoes"),
		Frames:    NewCounter("animation_frames"),
		Reloads:   NewCounter("content_reloads"),
		NotFounds: NewCounter("unknown_slugs"),
		started:   time.Now(),
	}
}

// Summary renders the session counters as a single log-friendly line.
func (s *Session) Summary() string {
	counters := []*Counter{s.Settles, s.Jumps, s.Pushes, s.Echoes, s.Frames, s.Reloads, s.NotFounds}
	parts := make([]string, 0, len(counters)+1)
	parts = append(parts, fmt.Sprintf("duration=%s", time.Since(s.started).Round(time.Second)))
	for _, c := range counters {
		parts = append(parts, fmt.Sprintf("%s=%d", c.Name(), c.Get()))
	}
	sort.Strings(parts[1:])
	return strings.Join(parts, " ")
}
