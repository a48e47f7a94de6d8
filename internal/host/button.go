// Package host contains the host-side stand-ins for the board peripherals:
// a raw-mode terminal as the push-button, a console glyph as the LED, and a
// real serial port for the MIDI stream. The core packages only ever see the
// hal interfaces.
package host

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	tty "github.com/mattn/go-tty"

	"github.com/graumannteague/blinkclock/internal/config"
	"github.com/graumannteague/blinkclock/internal/timing"
)

// TTYButton exposes terminal keypresses as a level-triggered input line.
// Each keystroke holds the line active for a fixed window, long enough for
// the sampler to see a full press-release cycle through its debounce.
type TTYButton struct {
	tty   *tty.TTY
	clock timing.Clock
	hold  time.Duration

	mu    sync.Mutex
	until time.Time
}

// OpenTTYButton opens the given terminal device, or the controlling terminal
// when device is empty, and starts consuming keystrokes.
func OpenTTYButton(device string, clock timing.Clock) (*TTYButton, error) {
	var (
		t   *tty.TTY
		err error
	)
	if device == "" {
		t, err = tty.Open()
	} else {
		t, err = tty.OpenDevice(device)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrButtonOpen, err)
	}

	b := &TTYButton{tty: t, clock: clock, hold: config.KeyHold}
	go b.readLoop()
	slog.Info(config.MsgButtonReady,
		config.LogKeyComponent, config.CompHost,
		config.LogKeyDevice, device,
	)
	return b, nil
}

// Pressed reports whether a keystroke window is currently open.
func (b *TTYButton) Pressed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clock.Now().Before(b.until)
}

// Close releases the terminal.
func (b *TTYButton) Close() error {
	return b.tty.Close()
}

func (b *TTYButton) readLoop() {
	for {
		if _, err := b.tty.ReadRune(); err != nil {
			return
		}
		b.mu.Lock()
		b.until = b.clock.Now().Add(b.hold)
		b.mu.Unlock()
	}
}
