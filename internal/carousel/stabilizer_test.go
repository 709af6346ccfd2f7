package carousel

import (
	"testing"
	"time"
)

func TestStabilizerDefaults(t *testing.T) {
	s := NewStabilizer(0)
	if s.Delay() != DefaultSettleDelay {
		t.Errorf("Expected default delay %v, got %v", DefaultSettleDelay, s.Delay())
	}
	if s.LastSettled() != -1 {
		t.Errorf("Expected no settled index before first settle, got %d", s.LastSettled())
	}

	s = NewStabilizer(200 * time.Millisecond)
	if s.Delay() != 200*time.Millisecond {
		t.Errorf("Expected delay 200ms, got %v", s.Delay())
	}
}

func TestStabilizerBurstSettlesOnce(t *testing.T) {
	s := NewStabilizer(0)

	// A momentum burst: many observations, each invalidating the previous
	// generation. Only the final generation may settle.
	var gens []int
	for _, idx := range []int{0, 0, 1, 1, 2, 2, 3} {
		gens = append(gens, s.Observe(idx))
	}

	for _, gen := range gens[:len(gens)-1] {
		if _, ok := s.Expire(gen); ok {
			t.Errorf("Stale generation %d settled", gen)
		}
	}

	index, ok := s.Expire(gens[len(gens)-1])
	if !ok {
		t.Fatal("Current generation did not settle")
	}
	if index != 3 {
		t.Errorf("Expected settle at index 3, got %d", index)
	}
}

func TestStabilizerIdempotentSettle(t *testing.T) {
	s := NewStabilizer(0)

	gen := s.Observe(2)
	if _, ok := s.Expire(gen); !ok {
		t.Fatal("First settle rejected")
	}

	// Re-observing the already settled index must not settle again.
	gen = s.Observe(2)
	if _, ok := s.Expire(gen); ok {
		t.Error("Settled the same index twice")
	}

	// A different index settles normally.
	gen = s.Observe(4)
	index, ok := s.Expire(gen)
	if !ok || index != 4 {
		t.Errorf("Expected settle at 4, got (%d, %v)", index, ok)
	}
}

func TestStabilizerSuspend(t *testing.T) {
	s := NewStabilizer(0)

	gen := s.Observe(1)
	s.Suspend()
	if _, ok := s.Expire(gen); ok {
		t.Error("Settled while suspended")
	}

	// Resume alone does not settle; the caller re-observes.
	s.Resume()
	gen = s.Observe(1)
	index, ok := s.Expire(gen)
	if !ok || index != 1 {
		t.Errorf("Expected settle at 1 after resume, got (%d, %v)", index, ok)
	}
}

func TestStabilizerForceSettle(t *testing.T) {
	s := NewStabilizer(0)

	gen := s.Observe(1)
	s.ForceSettle(5)

	// The force invalidated the pending generation.
	if _, ok := s.Expire(gen); ok {
		t.Error("Observation before ForceSettle settled")
	}
	if s.LastSettled() != 5 {
		t.Errorf("Expected last settled 5, got %d", s.LastSettled())
	}

	// The forced index does not echo back through the debounce path.
	gen = s.Observe(5)
	if _, ok := s.Expire(gen); ok {
		t.Error("Forced index echoed as a settle")
	}
}
