// Package hal defines the hardware abstraction the core logic is written
// against. The real device has one LED on an active-low output pin, one
// push-button on an active-low input pin, and an optional transmit-only
// serial line. Adapters (internal/host) own electrical polarity; the core
// only ever sees logical pressed/lit states.
package hal

// InputLine is a single digital input. Pressed reports the instantaneous
// logical state of the line; debouncing is the caller's concern.
type InputLine interface {
	Pressed() bool
}

// Indicator is a single binary output.
type Indicator interface {
	On()
	Off()
}

// MultiIndicator fans out to several indicators, used to mirror the LED
// blink train onto other channels (MIDI notes) transition for transition.
type MultiIndicator []Indicator

// On turns every indicator on.
func (m MultiIndicator) On() {
	for _, ind := range m {
		ind.On()
	}
}

// Off turns every indicator off.
func (m MultiIndicator) Off() {
	for _, ind := range m {
		ind.Off()
	}
}
