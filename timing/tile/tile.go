// Package tile wraps the MAC core as an akita ticking component so that a
// precomputed stimulus can be replayed on an akita engine at a given clock.
package tile

import (
	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/macsim/timing/core"
	"github.com/sarchlab/macsim/timing/serial"
)

// Tile is a MAC core clocked by an akita engine. Each tick consumes one input
// vector and records the output pins after the edge.
type Tile struct {
	*sim.TickingComponent

	core     *core.Core
	stimulus []serial.InputPins
	trace    []serial.OutputPins
	log      *log.Entry
}

// Feed queues input vectors and wakes the tile up.
func (t *Tile) Feed(vectors []serial.InputPins) {
	t.stimulus = append(t.stimulus, vectors...)
	t.TickLater()
}

// Tick applies the next queued vector. It reports no progress once the queue
// is empty, which lets the engine run out of events.
func (t *Tile) Tick() bool {
	if len(t.stimulus) == 0 {
		return false
	}

	pins := t.stimulus[0]
	t.stimulus = t.stimulus[1:]

	out := t.core.Tick(pins)
	t.trace = append(t.trace, out)

	if len(t.stimulus) == 0 {
		t.log.WithField("cycles", len(t.trace)).Debug("stimulus drained")
	}

	return true
}

// Pending returns the number of vectors not yet applied.
func (t *Tile) Pending() int {
	return len(t.stimulus)
}

// Trace returns the output pins recorded so far, one entry per tick.
func (t *Tile) Trace() []serial.OutputPins {
	return t.trace
}

// Core returns the wrapped core.
func (t *Tile) Core() *core.Core {
	return t.core
}
