package host

import (
	"fmt"
	"io"

	"go.bug.st/serial"

	"github.com/graumannteague/blinkclock/internal/config"
)

// OpenMIDIPort opens a transmit-only serial connection at the MIDI baud
// rate (31,250, 8 data bits, no parity, one stop bit).
func OpenMIDIPort(device string) (io.WriteCloser, error) {
	mode := &serial.Mode{
		BaudRate: config.MIDIBaudRate,
		DataBits: config.MIDISerialDataBits,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSerialOpen, err)
	}
	return port, nil
}
