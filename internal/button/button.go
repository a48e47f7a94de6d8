// Package button turns the raw input line into discrete press events. The
// sampler polls the line through the injected clock and applies a fixed
// settle delay after each edge to swallow contact bounce; bounce is never
// surfaced, it simply does not exist above this package.
package button

import (
	"context"
	"time"

	"github.com/graumannteague/blinkclock/internal/hal"
	"github.com/graumannteague/blinkclock/internal/timing"
)

// Sampler reads one debounced push-button.
type Sampler struct {
	line   hal.InputLine
	clock  timing.Clock
	settle time.Duration
	poll   time.Duration
}

// NewSampler wires a sampler to a line. settle is the debounce window applied
// after both the press and the release edge; poll is how often the line is
// re-read while waiting.
func NewSampler(line hal.InputLine, clock timing.Clock, settle, poll time.Duration) *Sampler {
	return &Sampler{line: line, clock: clock, settle: settle, poll: poll}
}

// AwaitPressAndRelease blocks until one clean press-release cycle completes.
// It has no deadline of its own; callers wanting one race it via
// AwaitPressAndReleaseUntil. Cancellation of ctx is the only other way out.
func (s *Sampler) AwaitPressAndRelease(ctx context.Context) error {
	_, err := s.cycle(ctx, time.Time{})
	return err
}

// AwaitPressAndReleaseUntil behaves like AwaitPressAndRelease but gives up
// and returns false if deadline passes while the line is still idle. A press
// that begins before the deadline is completed and counted in full even if
// the release lands after it; the deadline only gates the press edge.
func (s *Sampler) AwaitPressAndReleaseUntil(ctx context.Context, deadline time.Time) (bool, error) {
	return s.cycle(ctx, deadline)
}

func (s *Sampler) cycle(ctx context.Context, deadline time.Time) (bool, error) {
	ok, err := s.waitLevel(ctx, true, deadline)
	if err != nil || !ok {
		return false, err
	}
	s.clock.Sleep(s.settle)

	// No deadline on the release side: a started press always resolves.
	if _, err := s.waitLevel(ctx, false, time.Time{}); err != nil {
		return false, err
	}
	s.clock.Sleep(s.settle)
	return true, nil
}

// waitLevel spins until the line reads the wanted level. A zero deadline
// means wait forever.
func (s *Sampler) waitLevel(ctx context.Context, pressed bool, deadline time.Time) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if !deadline.IsZero() && !s.clock.Now().Before(deadline) {
			return false, nil
		}
		if s.line.Pressed() == pressed {
			return true, nil
		}
		s.clock.Sleep(s.poll)
	}
}
