package matcher

import "sync"

// Stats tallies matched files, lines, and captures across scans. A single
// handle is shared by reference between all workers; every fold goes
// through one lock so the three counters always move together and no
// reader observes a partial update.
type Stats struct {
	mu       sync.Mutex
	files    uint64
	lines    uint64
	captures uint64
}

// NewStats returns a zeroed, shareable aggregator.
func NewStats() *Stats {
	return &Stats{}
}

// Add folds one result in. Empty results are a no-op. The critical section
// is O(len(m.Lines)): the capture sum is computed outside the lock.
func (s *Stats) Add(m *Matches) {
	if !m.HasMatches() {
		return
	}
	var caps uint64
	for _, l := range m.Lines {
		caps += uint64(len(l.Captures))
	}

	s.mu.Lock()
	s.files++
	s.lines += uint64(len(m.Lines))
	s.captures += caps
	s.mu.Unlock()
}

// Total returns the number of inputs that had at least one match.
func (s *Stats) Total() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files
}

// Lines returns the number of retained matching lines.
func (s *Stats) Lines() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines
}

// Captures returns the number of captures across all retained lines.
func (s *Stats) Captures() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captures
}
