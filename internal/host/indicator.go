package host

import (
	"io"

	"github.com/graumannteague/blinkclock/internal/config"
)

// ConsoleIndicator renders the LED as a glyph redrawn in place on a
// terminal. It is stateless; each transition rewrites the same cell.
type ConsoleIndicator struct {
	w io.Writer
}

// NewConsoleIndicator draws onto w, normally stdout.
func NewConsoleIndicator(w io.Writer) *ConsoleIndicator {
	return &ConsoleIndicator{w: w}
}

// On draws the lit glyph.
func (c *ConsoleIndicator) On() {
	_, _ = io.WriteString(c.w, config.ConsoleOnGlyph)
}

// Off draws the dark glyph.
func (c *ConsoleIndicator) Off() {
	_, _ = io.WriteString(c.w, config.ConsoleOffGlyph)
}
