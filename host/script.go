package host

import (
	"fmt"

	"github.com/sarchlab/macsim/emu"
	"github.com/sarchlab/macsim/timing/latency"
	"github.com/sarchlab/macsim/timing/serial"
)

// Script precomputes the input vectors for a sequence of operations so they
// can be replayed by an engine that does not call back into the host. Because
// the tile latency is fixed, sampling points are known in advance.
type Script struct {
	table   *latency.Table
	width   serial.PortWidth
	vectors []serial.InputPins
	samples []int
	ops     []emu.Operation
}

// NewScript creates an empty script.
func NewScript(table *latency.Table) *Script {
	return &Script{
		table: table,
		width: table.Config().Width(),
	}
}

// Reset appends a reset pulse followed by the recovery idle time.
func (s *Script) Reset() {
	for i := uint64(0); i < s.table.Config().ResetCycles; i++ {
		s.vectors = append(s.vectors, resetVector())
	}
	s.idle(resetRecoveryCycles)
}

// Add appends one operation: its frame, the idle and latency wait, and the
// sampling window.
func (s *Script) Add(op emu.Operation) {
	s.vectors = append(s.vectors, frameVectors(s.width, op)...)
	s.idle(s.table.Config().IdleCycles + waitAfterFrame(s.table))

	s.samples = append(s.samples, len(s.vectors)-1)
	s.ops = append(s.ops, op)

	s.idle(s.table.DrainCycles() - 1)
}

// AddBurst appends ops back to back at the minimum issue interval, without
// waiting for results in between. Each result is sampled from the first cycle
// it is visible, before the next one replaces it.
func (s *Script) AddBurst(ops []emu.Operation) {
	if len(ops) == 0 {
		return
	}

	last := 0
	for _, op := range ops {
		s.vectors = append(s.vectors, frameVectors(s.width, op)...)
		lastInput := len(s.vectors) - 1
		s.idle(s.table.Config().IdleCycles)

		last = lastInput + int(s.table.ResultLatency())
		s.samples = append(s.samples, last)
		s.ops = append(s.ops, op)
	}

	end := last + int(s.table.DrainCycles())
	for len(s.vectors) < end {
		s.vectors = append(s.vectors, idleVector())
	}
}

func (s *Script) idle(n uint64) {
	for i := uint64(0); i < n; i++ {
		s.vectors = append(s.vectors, idleVector())
	}
}

// Vectors returns the input pins, one entry per edge.
func (s *Script) Vectors() []serial.InputPins {
	return s.vectors
}

// Operations returns the operations added so far.
func (s *Script) Operations() []emu.Operation {
	return s.ops
}

// Decode reassembles one reading per operation from the output trace, where
// trace[i] is the output after vector i was applied.
func (s *Script) Decode(trace []serial.OutputPins) ([]Reading, error) {
	n := int(s.table.DrainCycles())
	readings := make([]Reading, 0, len(s.samples))

	for i, start := range s.samples {
		if start+n > len(trace) {
			return nil, fmt.Errorf("operation %d needs cycles %d..%d of %d: %w",
				i, start, start+n-1, len(trace), ErrShortTrace)
		}

		window := make([]serial.Outputs, 0, n)
		for _, p := range trace[start : start+n] {
			window = append(window, serial.DecodeOutputs(p))
		}

		r, err := assemble(s.width, window)
		if err != nil {
			return nil, fmt.Errorf("operation %d (%v): %w", i, s.ops[i], err)
		}
		readings = append(readings, r)
	}

	return readings, nil
}
