package config

import "time"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName = "Blink Clock"
	AppID   = "com.github.graumannteague.blinkclock"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagConfig      = "config"
	FlagTTY         = "tty"
	FlagMIDI        = "midi"
	FlagBaseKey     = "base-key"
	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging"
	FlagDescConfig  = "Path to a TOML timing profile (defaults apply if empty)"
	FlagDescTTY     = "TTY device for the push-button (empty = controlling terminal)"
	FlagDescMIDI    = "Serial device for MIDI note output (empty = disabled)"
	FlagDescBaseKey = "MIDI key number the reporting notes are built on"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Time-of-Day Bounds
// -----------------------------------------------------------------------------

// The clock is a 12-hour clock: hours wrap 13 -> 1 and are never 0 once set.
const (
	MinHours   = 1
	MaxHours   = 12
	MaxMinutes = 59
	MaxSeconds = 59
)

// -----------------------------------------------------------------------------
// Feedback Patterns
// -----------------------------------------------------------------------------

// Flash counts used by the time-set controller to talk back to the user.
const (
	FlashesError         = 3
	FlashesHoursConfirm  = 1
	FlashesMinuteConfirm = 2
)

// -----------------------------------------------------------------------------
// MIDI Constants
// -----------------------------------------------------------------------------

const (
	MIDIBaudRate  = 31250
	MIDIStatusOn  = 0x90
	MIDIStatusOff = 0x80
	MIDIMinChan   = 1
	MIDIMaxChan   = 16
	MIDIMaxValue  = 127 // upper bound for key and velocity bytes

	DefaultMIDIChannel  = 1
	DefaultMIDIVelocity = 100
	DefaultMIDIBaseKey  = 60 // middle C
)

// ArpeggioOffsets are the four semitone offsets played from the base key.
var ArpeggioOffsets = [4]int{0, 4, 7, 12}

// -----------------------------------------------------------------------------
// Host Adapter Constants
// -----------------------------------------------------------------------------

const (
	// ConsoleOnGlyph / ConsoleOffGlyph render the LED on a terminal,
	// redrawn in place.
	ConsoleOnGlyph  = "\r●"
	ConsoleOffGlyph = "\r○"

	// MIDISerialDataBits is the serial frame width for the MIDI stream.
	MIDISerialDataBits = 8

	// KeyHold is how long one terminal keypress keeps the simulated
	// button line active. Long enough to clear the debounce window,
	// short enough that distinct keystrokes read as distinct presses.
	KeyHold = 150 * time.Millisecond
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrConfigOpen       = "failed to read timing profile"
	ErrConfigParse      = "failed to parse timing profile"
	ErrTickRateRange    = "tick_rate must be a positive number of ticks per second"
	ErrDebounceRange    = "debounce_ms must be positive"
	ErrPollRange        = "poll_interval_ms must be positive"
	ErrInactivityRange  = "inactivity_ms must be at least the debounce window"
	ErrBlinkUnitRange   = "blink_unit_ms must be positive"
	ErrNoteHoldRange    = "note_hold_ms must be positive"
	ErrHoursRange       = "hours out of range"
	ErrMinutesRange     = "minutes out of range"
	ErrChannelRange     = "midi channel out of range"
	ErrDataByteRange    = "midi data byte out of range"
	ErrEngineArmed      = "clock engine already armed"
	ErrButtonOpen       = "failed to open button tty"
	ErrSerialOpen       = "failed to open midi serial port"
	ErrShortWrite       = "short write on midi stream"
	ErrAppFailed        = "application failed unexpectedly"
	ErrBaseKeyRange     = "base key leaves no room for the arpeggio"
	ErrIndicatorMissing = "indicator is required"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgSetupStart    = "Waiting for the time to be set"
	MsgFieldCaptured = "Field captured"
	MsgFieldRejected = "Field out of range, re-prompting"
	MsgClockSet      = "Clock set"
	MsgEngineArmed   = "Tick engine armed"
	MsgReportStart   = "Minute boundary, reporting time"
	MsgReportDone    = "Report finished"
	MsgMIDIEnabled   = "MIDI mirroring enabled"
	MsgButtonReady   = "Button input ready, press any key"
	MsgRunStop       = "Device loop stopping"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyField     = "field"
	LogKeyCount     = "count"
	LogKeyBound     = "bound"
	LogKeyHours     = "hours"
	LogKeyMinutes   = "minutes"
	LogKeyTickRate  = "tick_rate"
	LogKeyDevice    = "device"
	LogKeyBaseKey   = "base_key"
	LogKeyProfile   = "profile"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
	LogKeyEnv     = "env"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain   = "main"
	CompDevice = "device"
	CompSetter = "setter"
	CompButton = "button"
	CompHost   = "host"
)

// -----------------------------------------------------------------------------
// Field Names (for logs only; the device itself has no text output)
// -----------------------------------------------------------------------------

const (
	FieldHours   = "hours"
	FieldMinutes = "minutes"
)
