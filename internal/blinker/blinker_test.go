package blinker_test

import (
	"testing"
	"time"

	"github.com/graumannteague/blinkclock/internal/blinker"
	"github.com/graumannteague/blinkclock/internal/timing"
	"github.com/stretchr/testify/assert"
)

const unit = 200 * time.Millisecond

// recorder captures indicator transitions with their simulated timestamps.
type recorder struct {
	clock *timing.Simulator
	ons   int
	offs  int
	trace []string
}

func (r *recorder) On() {
	r.ons++
	r.trace = append(r.trace, "on")
}

func (r *recorder) Off() {
	r.offs++
	r.trace = append(r.trace, "off")
}

func TestFlash_PulsePairs(t *testing.T) {
	sim := timing.NewSimulator()
	rec := &recorder{clock: sim}
	d := blinker.NewDriver(rec, sim, unit)

	d.Flash(11)

	assert.Equal(t, 11, rec.ons)
	assert.Equal(t, 11, rec.offs)
	assert.Equal(t, 22*unit, sim.Elapsed())
	// Strict alternation, starting with on.
	for i, tr := range rec.trace {
		if i%2 == 0 {
			assert.Equal(t, "on", tr)
		} else {
			assert.Equal(t, "off", tr)
		}
	}
}

func TestFlash_ZeroIsNoop(t *testing.T) {
	sim := timing.NewSimulator()
	rec := &recorder{clock: sim}
	d := blinker.NewDriver(rec, sim, unit)

	d.Flash(0)

	assert.Zero(t, rec.ons)
	assert.Zero(t, rec.offs)
	assert.Zero(t, sim.Elapsed())
}

func TestLongPause_ThreeUnits(t *testing.T) {
	sim := timing.NewSimulator()
	rec := &recorder{clock: sim}
	d := blinker.NewDriver(rec, sim, unit)

	d.LongPause()

	assert.Zero(t, rec.ons)
	assert.Equal(t, 3*unit, sim.Elapsed())
}
