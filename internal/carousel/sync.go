package carousel

// Synchronizer owns the master track and every slave track and is the single
// writer of the stable slide index. Slaves mirror the master instantly, never
// independently; everything else (route reconciler, host chrome) observes the
// stable index through callbacks or requests changes through JumpToSlide.
type Synchronizer struct {
	master *Track
	slaves []*Track

	stable int

	onStable    func(index int, source Source, direction Direction)
	subscribers []func(index int)
}

// NewSynchronizer wires the master track's settle events into the
// synchronizer and positions the master on the initial index.
func NewSynchronizer(master *Track, initial int) *Synchronizer {
	s := &Synchronizer{master: master}
	s.stable = clampIndex(initial, master.Slides())
	master.ScrollToSlide(s.stable)
	master.SetOnSettled(s.onMasterSettled)
	return s
}

// StableIndex returns the authoritative in-memory slide index.
func (s *Synchronizer) StableIndex() int {
	return s.stable
}

// Master returns the interaction track.
func (s *Synchronizer) Master() *Track {
	return s.master
}

// SetOnStable registers the stable-index hook, in practice the route
// reconciler. It is invoked after slave mirroring, never before.
func (s *Synchronizer) SetOnStable(fn func(index int, source Source, direction Direction)) {
	s.onStable = fn
}

// OnIndexChange subscribes chrome (title, logo, page shell) to stable-index
// updates. Subscribers run after the reconciler hook.
func (s *Synchronizer) OnIndexChange(fn func(index int)) {
	s.subscribers = append(s.subscribers, fn)
}

// AttachSlave adds a mirror track. A slave mounted late snaps straight to
// the current stable index so there is no visible desync window.
func (s *Synchronizer) AttachSlave(t *Track) {
	if t == nil {
		return
	}
	s.slaves = append(s.slaves, t)
	t.ScrollToSlide(s.stable)
}

// JumpToSlide is the programmatic entry point used by prev/next controls and
// external route changes. The transition is tagged forced and notification
// happens immediately, without waiting for a settle event. Out-of-range
// indices are clamped, never rejected: the project list can legitimately
// shrink while a jump is in flight.
func (s *Synchronizer) JumpToSlide(index int) {
	if s.master.Slides() == 0 {
		return
	}
	index = clampIndex(index, s.master.Slides())
	s.master.ScrollToSlide(index)
	for _, slave := range s.slaves {
		slave.ScrollToSlide(index)
	}
	if index == s.stable {
		return
	}
	s.commit(index, SourceForced)
}

// Resize re-reads the slide count after a project reload, clamps the stable
// index into the new range, and realigns every track. An empty project set
// parks the carousel at index 0 without notifying.
func (s *Synchronizer) Resize(n int) {
	s.master.SetSlides(n)
	for _, slave := range s.slaves {
		slave.SetSlides(n)
	}
	if n == 0 {
		s.stable = 0
		return
	}
	clamped := clampIndex(s.stable, n)
	s.master.ScrollToSlide(clamped)
	for _, slave := range s.slaves {
		slave.ScrollToSlide(clamped)
	}
	if clamped != s.stable {
		s.commit(clamped, SourceForced)
	}
}

// onMasterSettled handles the master track's settle events, the natural path.
func (s *Synchronizer) onMasterSettled(index int) {
	if index == s.stable {
		return
	}
	// Slaves mirror before the route is told, so a mid-flight URL change
	// never observes a stale slave position.
	for _, slave := range s.slaves {
		slave.ScrollToSlide(index)
	}
	s.commit(index, SourceNatural)
}

// commit records the new stable index and notifies, in fixed order:
// reconciler hook first, chrome subscribers after.
func (s *Synchronizer) commit(index int, source Source) {
	direction := directionOf(s.stable, index)
	s.stable = index
	if s.onStable != nil {
		s.onStable(index, source, direction)
	}
	for _, fn := range s.subscribers {
		fn(index)
	}
}
