// Package setter implements the interactive time-set procedure: one field at
// a time, counted in button presses, finalized by going quiet. It owns the
// only input validation in the system; out-of-range fields are re-prompted
// forever, never fatal.
package setter

import (
	"context"
	"log/slog"
	"time"

	"github.com/graumannteague/blinkclock/internal/blinker"
	"github.com/graumannteague/blinkclock/internal/button"
	"github.com/graumannteague/blinkclock/internal/config"
	"github.com/graumannteague/blinkclock/internal/timekeeper"
	"github.com/graumannteague/blinkclock/internal/timing"
)

// Controller captures the two time fields and feeds back through the
// indicator: 3 flashes for a rejected value, 1 flash after hours, 2 after
// minutes.
type Controller struct {
	sampler    *button.Sampler
	flasher    *blinker.Driver
	clock      timing.Clock
	inactivity time.Duration
}

// NewController wires the controller to its sampler and feedback flasher.
// inactivity is the quiet window that finalizes a field.
func NewController(sampler *button.Sampler, flasher *blinker.Driver, clock timing.Clock, inactivity time.Duration) *Controller {
	return &Controller{sampler: sampler, flasher: flasher, clock: clock, inactivity: inactivity}
}

// CaptureField blocks until one field has been entered: the first press
// starts the count at 1, every further press landing within a fresh
// inactivity window of the previous one increments it, and a full quiet
// window finalizes. Total elapsed time is unbounded; only the gap between
// presses matters.
func (c *Controller) CaptureField(ctx context.Context) (int, error) {
	if err := c.sampler.AwaitPressAndRelease(ctx); err != nil {
		return 0, err
	}
	count := 1
	for {
		deadline := c.clock.Now().Add(c.inactivity)
		ok, err := c.sampler.AwaitPressAndReleaseUntil(ctx, deadline)
		if err != nil {
			return 0, err
		}
		if !ok {
			return count, nil
		}
		count++
	}
}

// SetClock runs the full setup dialogue and stores the result in the engine.
// It must run before the engine is armed; the engine enforces that.
//
// A captured value of 0 cannot happen here (the first press is what starts a
// capture), which is why minutes 0 is famously unreachable. The bound check
// would accept 0 all the same; see the engine's SetTime.
func (c *Controller) SetClock(ctx context.Context, eng *timekeeper.Engine) error {
	log := slog.With(config.LogKeyComponent, config.CompSetter)

	hours, err := c.captureBounded(ctx, log, config.FieldHours, config.MaxHours)
	if err != nil {
		return err
	}
	c.flasher.Flash(config.FlashesHoursConfirm)

	minutes, err := c.captureBounded(ctx, log, config.FieldMinutes, config.MaxMinutes)
	if err != nil {
		return err
	}
	c.flasher.Flash(config.FlashesMinuteConfirm)

	if err := eng.SetTime(hours, minutes); err != nil {
		return err
	}
	log.Info(config.MsgClockSet,
		config.LogKeyHours, hours,
		config.LogKeyMinutes, minutes,
	)
	return nil
}

// captureBounded re-prompts until the captured value fits the field's upper
// bound. There is no retry limit.
func (c *Controller) captureBounded(ctx context.Context, log *slog.Logger, field string, bound int) (int, error) {
	for {
		count, err := c.CaptureField(ctx)
		if err != nil {
			return 0, err
		}
		if count <= bound {
			log.Info(config.MsgFieldCaptured,
				config.LogKeyField, field,
				config.LogKeyCount, count,
			)
			return count, nil
		}
		log.Info(config.MsgFieldRejected,
			config.LogKeyField, field,
			config.LogKeyCount, count,
			config.LogKeyBound, bound,
		)
		c.flasher.Flash(config.FlashesError)
	}
}
