package timing

import (
	"sync"
	"time"
)

// Simulator is a Clock whose time only moves when someone sleeps on it (or
// advances it explicitly). A blocking call polling against a Simulator runs
// to completion in real time while covering arbitrary simulated durations,
// which is what makes the sampler and controller testable without delays.
type Simulator struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
}

// NewSimulator returns a Simulator starting at an arbitrary fixed epoch.
func NewSimulator() *Simulator {
	epoch := time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Simulator{start: epoch, now: epoch}
}

// Now returns the current simulated time.
func (s *Simulator) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Sleep advances simulated time by d and returns immediately.
func (s *Simulator) Sleep(d time.Duration) {
	s.Advance(d)
}

// Advance moves simulated time forward by d.
func (s *Simulator) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	s.mu.Lock()
	s.now = s.now.Add(d)
	s.mu.Unlock()
}

// Elapsed reports how much simulated time has passed since construction.
func (s *Simulator) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now.Sub(s.start)
}
