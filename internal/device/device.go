// Package device is the orchestrator: it runs the time-set dialogue once,
// arms the periodic tick, then services the due flag forever, reporting the
// time as blink trains (and optionally a MIDI chime). It is the only
// long-lived control flow after setup.
package device

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/graumannteague/blinkclock/internal/blinker"
	"github.com/graumannteague/blinkclock/internal/config"
	"github.com/graumannteague/blinkclock/internal/midi"
	"github.com/graumannteague/blinkclock/internal/setter"
	"github.com/graumannteague/blinkclock/internal/timekeeper"
	"github.com/graumannteague/blinkclock/internal/timing"
)

// Device ties the engine, controller and output drivers together.
type Device struct {
	eng     *timekeeper.Engine
	ctl     *setter.Controller
	flasher *blinker.Driver
	clock   timing.Clock
	profile config.Timing

	player      *midi.Player
	midiChannel int
	baseKey     int
	velocity    int
}

// New assembles a device from its parts.
func New(eng *timekeeper.Engine, ctl *setter.Controller, flasher *blinker.Driver, clock timing.Clock, profile config.Timing) *Device {
	return &Device{eng: eng, ctl: ctl, flasher: flasher, clock: clock, profile: profile}
}

// EnableChime adds an arpeggio chime in front of each report. The blink
// mirroring itself is wired at the indicator level, not here.
func (d *Device) EnableChime(p *midi.Player, channel, baseKey, velocity int) {
	d.player = p
	d.midiChannel = channel
	d.baseKey = baseKey
	d.velocity = velocity
}

// Run executes the single entry sequence: capture the time, arm the tick
// engine, then loop on the due flag until ctx is cancelled. The tick timer
// is deliberately not started until SetClock has finished, so the handler
// can never observe a half-initialized clock state.
func (d *Device) Run(ctx context.Context) error {
	if d.eng.Armed() {
		return errors.New(config.ErrEngineArmed)
	}
	log := slog.With(config.LogKeyComponent, config.CompDevice)

	log.Info(config.MsgSetupStart)
	if err := d.ctl.SetClock(ctx, d.eng); err != nil {
		return err
	}

	d.eng.Arm()
	go d.tickLoop(ctx)
	log.Info(config.MsgEngineArmed, config.LogKeyTickRate, d.profile.TickRate)

	for {
		if err := ctx.Err(); err != nil {
			log.Info(config.MsgRunStop)
			return nil
		}
		if !d.ServiceDue() {
			d.clock.Sleep(d.profile.PollInterval)
		}
	}
}

// tickLoop stands in for the hardware timer interrupt: a fixed-rate callback
// into the engine's handler, independent of whatever the foreground is doing.
func (d *Device) tickLoop(ctx context.Context) {
	t := time.NewTicker(d.profile.TickInterval())
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			d.eng.HandleTick()
		}
	}
}

// ServiceDue reports the current time if a minute boundary is pending and
// clears the flag afterwards. It returns whether a report ran. Boundaries
// that fire while a report is in progress collapse into the still-set flag;
// only the cumulative clock state matters.
func (d *Device) ServiceDue() bool {
	if !d.eng.Due() {
		return false
	}
	state := d.eng.Snapshot()
	slog.Info(config.MsgReportStart,
		config.LogKeyComponent, config.CompDevice,
		config.LogKeyHours, state.Hours,
		config.LogKeyMinutes, state.Minutes,
	)

	if d.player != nil {
		_ = d.player.PlayArpeggio(d.midiChannel, d.baseKey, d.velocity)
	}
	d.flasher.Flash(state.Hours)
	d.flasher.LongPause()
	d.flasher.Flash(state.Minutes)

	d.eng.ClearDue()
	slog.Debug(config.MsgReportDone, config.LogKeyComponent, config.CompDevice)
	return true
}
