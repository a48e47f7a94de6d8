// Package timekeeper holds the time-of-day state and the tick handler that
// advances it. The handler is the only writer once the engine is armed; the
// reporting loop observes it through snapshots and the single due bit.
package timekeeper

import (
	"errors"
	"sync"

	"github.com/graumannteague/blinkclock/internal/config"
)

// State is the full time-of-day counter set. Hours run 1-12 and wrap
// 13 -> 1, never through 0. Ticks is the subsecond counter, 0..tps-1.
type State struct {
	Hours   int
	Minutes int
	Seconds int
	Ticks   int
}

// Advance applies one tick to s and returns the new state plus whether a
// minute boundary was crossed. It is a pure transition so the wraparound
// arithmetic can be tested without any timer behind it.
func Advance(s State, ticksPerSecond int) (State, bool) {
	due := false
	s.Ticks++
	if s.Ticks >= ticksPerSecond {
		s.Ticks = 0
		s.Seconds++
		if s.Seconds > config.MaxSeconds {
			s.Seconds = 0
			due = true
			s.Minutes++
			if s.Minutes > config.MaxMinutes {
				s.Minutes = 0
				s.Hours++
				if s.Hours > config.MaxHours {
					s.Hours = config.MinHours
				}
			}
		}
	}
	return s, due
}

// Engine owns the shared clock state and due flag. The mutex is the host
// equivalent of masking the single interrupt source: every multi-step access
// from either context goes through it.
type Engine struct {
	mu             sync.Mutex
	ticksPerSecond int
	state          State
	due            bool
	armed          bool
}

// NewEngine returns an engine ticking at the given rate. The state starts
// zeroed; SetTime populates it during setup, before Arm.
func NewEngine(ticksPerSecond int) *Engine {
	return &Engine{ticksPerSecond: ticksPerSecond}
}

// SetTime stores the captured time fields and resets the subminute counters.
// It is a setup-phase operation: once the engine is armed the tick handler is
// the sole writer and SetTime refuses to run.
//
// Hours 0 is accepted deliberately: a captured field of 0 passes the bound
// check upstream and lands here unchanged (inherited behavior of the
// original hardware, kept verbatim).
func (e *Engine) SetTime(hours, minutes int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.armed {
		return errors.New(config.ErrEngineArmed)
	}
	if hours < 0 || hours > config.MaxHours {
		return errors.New(config.ErrHoursRange)
	}
	if minutes < 0 || minutes > config.MaxMinutes {
		return errors.New(config.ErrMinutesRange)
	}
	e.state = State{Hours: hours, Minutes: minutes}
	return nil
}

// Arm marks setup as complete. From here on only HandleTick mutates state.
func (e *Engine) Arm() {
	e.mu.Lock()
	e.armed = true
	e.mu.Unlock()
}

// Armed reports whether setup has completed.
func (e *Engine) Armed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.armed
}

// HandleTick is the periodic timer handler. It never blocks beyond the state
// lock, never allocates, and never touches the output side. Setting the due
// bit is idempotent: boundaries crossed while a report is still pending are
// dropped, which is acceptable because the bit only means "time to report".
func (e *Engine) HandleTick() {
	e.mu.Lock()
	var due bool
	e.state, due = Advance(e.state, e.ticksPerSecond)
	if due {
		e.due = true
	}
	e.mu.Unlock()
}

// Snapshot returns a consistent copy of the clock state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Due reports whether a minute boundary is waiting to be reported. The bit
// stays set until ClearDue.
func (e *Engine) Due() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.due
}

// ClearDue acknowledges the pending boundary after a report finishes.
func (e *Engine) ClearDue() {
	e.mu.Lock()
	e.due = false
	e.mu.Unlock()
}
