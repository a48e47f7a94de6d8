package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Reference timing values, from the original hardware profile (50 Hz timer,
// 25 ms settle window, 3 s inactivity countdown, 200 ms blink unit).
const (
	DefaultTickRate     = 50
	DefaultDebounce     = 25 * time.Millisecond
	DefaultPollInterval = time.Millisecond
	DefaultInactivity   = 3 * time.Second
	DefaultBlinkUnit    = 200 * time.Millisecond
	DefaultNoteHold     = 75 * time.Millisecond
)

// LongPauseUnits is the long pause expressed in blink units.
const LongPauseUnits = 3

// Timing is the device's timing profile, resolved once at startup. All of
// the clock, sampler, controller and output driver durations come from here
// so the same logic runs at any simulated rate.
type Timing struct {
	// TickRate is the periodic timer frequency in ticks per second.
	TickRate int

	// Debounce is the settle window applied after each input edge.
	Debounce time.Duration

	// PollInterval is how often the sampler re-reads the input line.
	PollInterval time.Duration

	// Inactivity is the quiet window that finalizes a captured field.
	Inactivity time.Duration

	// BlinkUnit is one indicator phase (on or off) of a single blink.
	BlinkUnit time.Duration

	// NoteHold is how long a mirrored MIDI note stays on.
	NoteHold time.Duration
}

// DefaultTiming returns the reference profile.
func DefaultTiming() Timing {
	return Timing{
		TickRate:     DefaultTickRate,
		Debounce:     DefaultDebounce,
		PollInterval: DefaultPollInterval,
		Inactivity:   DefaultInactivity,
		BlinkUnit:    DefaultBlinkUnit,
		NoteHold:     DefaultNoteHold,
	}
}

// TickInterval is the period of the tick engine's timer.
func (t Timing) TickInterval() time.Duration {
	return time.Second / time.Duration(t.TickRate)
}

// LongPause is the gap between the hours and minutes reports.
func (t Timing) LongPause() time.Duration {
	return LongPauseUnits * t.BlinkUnit
}

// Validate checks the profile for values the device cannot run with.
func (t Timing) Validate() error {
	if t.TickRate <= 0 {
		return errors.New(ErrTickRateRange)
	}
	if t.Debounce <= 0 {
		return errors.New(ErrDebounceRange)
	}
	if t.PollInterval <= 0 {
		return errors.New(ErrPollRange)
	}
	// A window shorter than one settle delay could expire while a press is
	// still being debounced.
	if t.Inactivity < t.Debounce {
		return errors.New(ErrInactivityRange)
	}
	if t.BlinkUnit <= 0 {
		return errors.New(ErrBlinkUnitRange)
	}
	if t.NoteHold <= 0 {
		return errors.New(ErrNoteHoldRange)
	}
	return nil
}

// timingFile is the on-disk TOML shape. Durations are plain milliseconds so
// the file stays readable without custom duration syntax.
type timingFile struct {
	TickRate       int   `toml:"tick_rate"`
	DebounceMs     int64 `toml:"debounce_ms"`
	PollIntervalMs int64 `toml:"poll_interval_ms"`
	InactivityMs   int64 `toml:"inactivity_ms"`
	BlinkUnitMs    int64 `toml:"blink_unit_ms"`
	NoteHoldMs     int64 `toml:"note_hold_ms"`
}

// LoadTiming reads a TOML timing profile and overlays it on the defaults.
// Fields absent from the file keep their reference values. The result is
// validated before it is returned.
func LoadTiming(path string) (Timing, error) {
	t := DefaultTiming()

	data, err := os.ReadFile(path)
	if err != nil {
		return Timing{}, fmt.Errorf("%s: %w", ErrConfigOpen, err)
	}

	var f timingFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Timing{}, fmt.Errorf("%s: %w", ErrConfigParse, err)
	}

	if f.TickRate != 0 {
		t.TickRate = f.TickRate
	}
	if f.DebounceMs != 0 {
		t.Debounce = time.Duration(f.DebounceMs) * time.Millisecond
	}
	if f.PollIntervalMs != 0 {
		t.PollInterval = time.Duration(f.PollIntervalMs) * time.Millisecond
	}
	if f.InactivityMs != 0 {
		t.Inactivity = time.Duration(f.InactivityMs) * time.Millisecond
	}
	if f.BlinkUnitMs != 0 {
		t.BlinkUnit = time.Duration(f.BlinkUnitMs) * time.Millisecond
	}
	if f.NoteHoldMs != 0 {
		t.NoteHold = time.Duration(f.NoteHoldMs) * time.Millisecond
	}

	if err := t.Validate(); err != nil {
		return Timing{}, err
	}
	return t, nil
}
