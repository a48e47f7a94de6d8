package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/graumannteague/blinkclock/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timing.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultTiming_IsValid(t *testing.T) {
	profile := config.DefaultTiming()

	require.NoError(t, profile.Validate())
	assert.Equal(t, 20*time.Millisecond, profile.TickInterval())
	assert.Equal(t, 600*time.Millisecond, profile.LongPause())
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Timing)
	}{
		{"zero tick rate", func(p *config.Timing) { p.TickRate = 0 }},
		{"negative tick rate", func(p *config.Timing) { p.TickRate = -50 }},
		{"zero debounce", func(p *config.Timing) { p.Debounce = 0 }},
		{"zero poll interval", func(p *config.Timing) { p.PollInterval = 0 }},
		{"inactivity below debounce", func(p *config.Timing) { p.Inactivity = p.Debounce - time.Millisecond }},
		{"zero blink unit", func(p *config.Timing) { p.BlinkUnit = 0 }},
		{"zero note hold", func(p *config.Timing) { p.NoteHold = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			profile := config.DefaultTiming()
			tc.mutate(&profile)
			assert.Error(t, profile.Validate())
		})
	}
}

func TestLoadTiming_OverridesDefaults(t *testing.T) {
	path := writeProfile(t, `
tick_rate = 100
debounce_ms = 10
inactivity_ms = 2000
blink_unit_ms = 50
`)

	profile, err := config.LoadTiming(path)

	require.NoError(t, err)
	assert.Equal(t, 100, profile.TickRate)
	assert.Equal(t, 10*time.Millisecond, profile.Debounce)
	assert.Equal(t, 2*time.Second, profile.Inactivity)
	assert.Equal(t, 50*time.Millisecond, profile.BlinkUnit)
	// Untouched fields keep the reference values.
	assert.Equal(t, config.DefaultPollInterval, profile.PollInterval)
	assert.Equal(t, config.DefaultNoteHold, profile.NoteHold)
}

func TestLoadTiming_MissingFile(t *testing.T) {
	_, err := config.LoadTiming(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadTiming_MalformedTOML(t *testing.T) {
	path := writeProfile(t, "tick_rate = [not a number")
	_, err := config.LoadTiming(path)
	assert.Error(t, err)
}

func TestLoadTiming_InvalidValuesRejected(t *testing.T) {
	path := writeProfile(t, "tick_rate = -1")
	_, err := config.LoadTiming(path)
	assert.Error(t, err)
}
