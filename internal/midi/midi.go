// Package midi frames note events for a transmit-only serial line. A note
// event is two fixed 3-byte frames: status (high nibble on/off, low nibble
// channel-1), key, velocity. Nothing here affects timekeeping; it is a
// presentation channel beside the LED.
package midi

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/graumannteague/blinkclock/internal/config"
	"github.com/graumannteague/blinkclock/internal/timing"
)

// Player writes note events to a serial stream.
type Player struct {
	w        io.Writer
	clock    timing.Clock
	noteHold time.Duration
	noteGap  time.Duration
}

// NewPlayer returns a player holding each note for noteHold and pausing
// noteGap between arpeggio steps.
func NewPlayer(w io.Writer, clock timing.Clock, noteHold, noteGap time.Duration) *Player {
	return &Player{w: w, clock: clock, noteHold: noteHold, noteGap: noteGap}
}

// PlayNote sends a note-on frame, holds, then sends the matching note-off.
// channel is 1-16, key and velocity 0-127.
func (p *Player) PlayNote(channel, key, velocity int) error {
	if err := p.NoteOn(channel, key, velocity); err != nil {
		return err
	}
	p.clock.Sleep(p.noteHold)
	return p.NoteOff(channel, key)
}

// NoteOn sends a bare note-on frame.
func (p *Player) NoteOn(channel, key, velocity int) error {
	return p.frame(config.MIDIStatusOn, channel, key, velocity)
}

// NoteOff sends a bare note-off frame. Velocity 0 is conventional for off.
func (p *Player) NoteOff(channel, key int) error {
	return p.frame(config.MIDIStatusOff, channel, key, 0)
}

// PlayArpeggio walks the four fixed offsets up from base, one note per step
// with a long gap between steps.
func (p *Player) PlayArpeggio(channel, base, velocity int) error {
	for i, off := range config.ArpeggioOffsets {
		if i > 0 {
			p.clock.Sleep(p.noteGap)
		}
		if err := p.PlayNote(channel, base+off, velocity); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) frame(status, channel, key, velocity int) error {
	if channel < config.MIDIMinChan || channel > config.MIDIMaxChan {
		return fmt.Errorf("%s: %d", config.ErrChannelRange, channel)
	}
	if key < 0 || key > config.MIDIMaxValue || velocity < 0 || velocity > config.MIDIMaxValue {
		return errors.New(config.ErrDataByteRange)
	}
	buf := [3]byte{byte(status | (channel - 1)), byte(key), byte(velocity)}
	n, err := p.w.Write(buf[:])
	if err != nil {
		return err
	}
	if n != len(buf) {
		return errors.New(config.ErrShortWrite)
	}
	return nil
}
