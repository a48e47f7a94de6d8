package timekeeper_test

import (
	"testing"

	"github.com/graumannteague/blinkclock/internal/timekeeper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tps = 50 // reference tick rate

// expectedAfter computes the state after n ticks by direct modular
// decomposition, the closed form the incremental handler must agree with.
func expectedAfter(s timekeeper.State, n int) timekeeper.State {
	totalTicks := s.Ticks + n
	secTotal := s.Seconds + totalTicks/tps
	minTotal := s.Minutes + secTotal/60
	return timekeeper.State{
		Hours:   (s.Hours-1+minTotal/60)%12 + 1,
		Minutes: minTotal % 60,
		Seconds: secTotal % 60,
		Ticks:   totalTicks % tps,
	}
}

func fire(e *timekeeper.Engine, n int) {
	for i := 0; i < n; i++ {
		e.HandleTick()
	}
}

// TestAdvance_MatchesModularDecomposition is the core equivalence property:
// n incremental ticks equal the closed-form wraparound arithmetic.
func TestAdvance_MatchesModularDecomposition(t *testing.T) {
	tests := []struct {
		name    string
		hours   int
		minutes int
		ticks   int
	}{
		{"one second", 11, 7, tps},
		{"one minute boundary", 11, 7, tps * 60},
		{"minute wrap carries to hours", 3, 59, tps * 60},
		{"hour wrap 12 to 1", 12, 59, tps * 60},
		{"midnight-style full wrap", 12, 59, tps * 60 * 61},
		{"sub-second remainder", 1, 0, tps*90 + 17},
		{"three hours and change", 10, 30, tps * (3*3600 + 123)},
		{"single tick", 5, 5, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := timekeeper.NewEngine(tps)
			require.NoError(t, e.SetTime(tc.hours, tc.minutes))
			e.Arm()

			fire(e, tc.ticks)

			want := expectedAfter(timekeeper.State{Hours: tc.hours, Minutes: tc.minutes}, tc.ticks)
			assert.Equal(t, want, e.Snapshot())
		})
	}
}

func TestAdvance_HoursNeverZeroAfterWrap(t *testing.T) {
	s := timekeeper.State{Hours: 12, Minutes: 59, Seconds: 59, Ticks: tps - 1}
	s, due := timekeeper.Advance(s, tps)
	assert.True(t, due)
	assert.Equal(t, timekeeper.State{Hours: 1}, s)
}

func TestDueFlag_OncePerBoundaryWhenConsumed(t *testing.T) {
	e := timekeeper.NewEngine(tps)
	require.NoError(t, e.SetTime(1, 0))
	e.Arm()

	boundaries := 0
	for i := 0; i < tps*60*3; i++ {
		e.HandleTick()
		if e.Due() {
			boundaries++
			e.ClearDue()
		}
	}
	assert.Equal(t, 3, boundaries)
}

func TestDueFlag_IdempotentWhilePending(t *testing.T) {
	e := timekeeper.NewEngine(tps)
	require.NoError(t, e.SetTime(1, 0))
	e.Arm()

	fire(e, tps*60)
	require.True(t, e.Due())

	// A second boundary while the first is unconsumed is silently dropped;
	// the bit stays set, the state keeps advancing.
	fire(e, tps*60)
	assert.True(t, e.Due())
	assert.Equal(t, 2, e.Snapshot().Minutes)

	e.ClearDue()
	assert.False(t, e.Due())
	// Clearing does not rewind anything.
	assert.Equal(t, 2, e.Snapshot().Minutes)
}

func TestSetTime_Validation(t *testing.T) {
	e := timekeeper.NewEngine(tps)

	assert.Error(t, e.SetTime(13, 0))
	assert.Error(t, e.SetTime(5, 60))
	assert.Error(t, e.SetTime(-1, 0))

	// Hours or minutes 0 are accepted: a zero capture passes the bound
	// check and is stored as-is (inherited degenerate input).
	assert.NoError(t, e.SetTime(0, 0))
	assert.NoError(t, e.SetTime(12, 0))
	assert.Equal(t, timekeeper.State{Hours: 12}, e.Snapshot())
}

func TestSetTime_RefusedOnceArmed(t *testing.T) {
	e := timekeeper.NewEngine(tps)
	require.NoError(t, e.SetTime(9, 30))
	e.Arm()

	assert.Error(t, e.SetTime(10, 0))
	assert.Equal(t, timekeeper.State{Hours: 9, Minutes: 30}, e.Snapshot())
}
