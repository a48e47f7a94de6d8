// Package blinker drives the indicator in counted pulse trains. It keeps no
// state between calls; every pattern is purely a function of the requested
// count and the configured blink unit.
package blinker

import (
	"time"

	"github.com/graumannteague/blinkclock/internal/config"
	"github.com/graumannteague/blinkclock/internal/hal"
	"github.com/graumannteague/blinkclock/internal/timing"
)

// Driver pulses a binary indicator.
type Driver struct {
	ind   hal.Indicator
	clock timing.Clock
	unit  time.Duration
}

// NewDriver returns a driver blinking in units of unit per phase.
func NewDriver(ind hal.Indicator, clock timing.Clock, unit time.Duration) *Driver {
	return &Driver{ind: ind, clock: clock, unit: unit}
}

// Flash pulses the indicator count times: one unit on, one unit off per
// pulse. Flash(0) is a no-op.
func (d *Driver) Flash(count int) {
	for i := 0; i < count; i++ {
		d.ind.On()
		d.clock.Sleep(d.unit)
		d.ind.Off()
		d.clock.Sleep(d.unit)
	}
}

// LongPause idles for the gap that separates the hours train from the
// minutes train.
func (d *Driver) LongPause() {
	d.clock.Sleep(config.LongPauseUnits * d.unit)
}
