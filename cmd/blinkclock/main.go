package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/graumannteague/blinkclock/internal/blinker"
	"github.com/graumannteague/blinkclock/internal/button"
	"github.com/graumannteague/blinkclock/internal/config"
	"github.com/graumannteague/blinkclock/internal/device"
	"github.com/graumannteague/blinkclock/internal/hal"
	"github.com/graumannteague/blinkclock/internal/host"
	"github.com/graumannteague/blinkclock/internal/midi"
	"github.com/graumannteague/blinkclock/internal/setter"
	"github.com/graumannteague/blinkclock/internal/timekeeper"
	"github.com/graumannteague/blinkclock/internal/timing"
)

// main delegates to runMain so deferred cleanups (terminal restore, serial
// close) run before the process exits; os.Exit skips defers.
func main() {
	os.Exit(runMain())
}

// runMain manages argument parsing, logging and exit codes.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	configPath := flag.String(config.FlagConfig, "", config.FlagDescConfig)
	ttyDevice := flag.String(config.FlagTTY, "", config.FlagDescTTY)
	midiDevice := flag.String(config.FlagMIDI, "", config.FlagDescMIDI)
	baseKey := flag.Int(config.FlagBaseKey, config.DefaultMIDIBaseKey, config.FlagDescBaseKey)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	setupLogging(*debugMode)

	// Cancel on SIGINT/SIGTERM. The device itself never terminates; this is
	// the host's way of taking the power away cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx, *configPath, *ttyDevice, *midiDevice, *baseKey); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run resolves the timing profile, wires the hardware adapters to the core
// and hands control to the device loop.
func run(ctx context.Context, configPath, ttyDevice, midiDevice string, baseKey int) error {
	profile := config.DefaultTiming()
	if configPath != "" {
		var err error
		profile, err = config.LoadTiming(configPath)
		if err != nil {
			return err
		}
		slog.Debug("Timing profile loaded",
			config.LogKeyComponent, config.CompMain,
			config.LogKeyProfile, configPath,
		)
	}

	clock := timing.System{}

	btn, err := host.OpenTTYButton(ttyDevice, clock)
	if err != nil {
		return err
	}
	defer func() { _ = btn.Close() }()

	var indicator hal.Indicator = host.NewConsoleIndicator(os.Stdout)

	var player *midi.Player
	if midiDevice != "" {
		top := config.ArpeggioOffsets[len(config.ArpeggioOffsets)-1]
		if baseKey < 0 || baseKey+top > config.MIDIMaxValue {
			return errors.New(config.ErrBaseKeyRange)
		}
		port, err := host.OpenMIDIPort(midiDevice)
		if err != nil {
			return err
		}
		defer func() { _ = port.Close() }()

		player = midi.NewPlayer(port, clock, profile.NoteHold, profile.LongPause())
		indicator = hal.MultiIndicator{
			indicator,
			midi.NewIndicator(player, config.DefaultMIDIChannel, baseKey, config.DefaultMIDIVelocity),
		}
		slog.Info(config.MsgMIDIEnabled,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyDevice, midiDevice,
			config.LogKeyBaseKey, baseKey,
		)
	}

	eng := timekeeper.NewEngine(profile.TickRate)
	flasher := blinker.NewDriver(indicator, clock, profile.BlinkUnit)
	sampler := button.NewSampler(btn, clock, profile.Debounce, profile.PollInterval)
	ctl := setter.NewController(sampler, flasher, clock, profile.Inactivity)

	dev := device.New(eng, ctl, flasher, clock, profile)
	if player != nil {
		dev.EnableChime(player, config.DefaultMIDIChannel, baseKey, config.DefaultMIDIVelocity)
	}

	return dev.Run(ctx)
}

func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// setupLogging configures the default slog logger. Logs go to stderr; stdout
// belongs to the console indicator.
func setupLogging(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}
