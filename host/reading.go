// Package host drives a MAC tile through its pins the way a testbench does:
// it frames operations onto the narrow input port, waits out the pipeline
// latency, and reassembles results from the narrow output port.
package host

import (
	"errors"
	"fmt"

	"github.com/sarchlab/macsim/emu"
	"github.com/sarchlab/macsim/timing/serial"
)

var (
	// ErrNotReady is returned when the ready bit is low while sampling.
	ErrNotReady = errors.New("result not ready")
	// ErrOverflowMismatch is returned when sub-cycles of one result disagree
	// on the overflow flag.
	ErrOverflowMismatch = errors.New("overflow differs between output sub-cycles")
	// ErrMissingChunk is returned when a sampling window did not cover every
	// output phase, e.g. because a newer result was latched mid-read.
	ErrMissingChunk = errors.New("output chunk missing from sampling window")
	// ErrShortTrace is returned when a trace ends before a sampling window.
	ErrShortTrace = errors.New("trace too short")
)

// resetRecoveryCycles is the idle time after reset is released.
const resetRecoveryCycles = 2

// Reading is a result reassembled from the output port.
type Reading struct {
	Value    uint16
	Overflow bool
	Ready    bool
}

// Result converts the reading to the functional model's result type.
func (r Reading) Result() emu.Result {
	return emu.Result{Value: r.Value, Overflow: r.Overflow}
}

// String implements fmt.Stringer.
func (r Reading) String() string {
	ov := 0
	if r.Overflow {
		ov = 1
	}
	return fmt.Sprintf("0x%04X (%d) ov=%d", r.Value, r.Value, ov)
}

// assemble rebuilds a result from consecutive output samples, placing each
// chunk by the phase it was driven on.
func assemble(width serial.PortWidth, samples []serial.Outputs) (Reading, error) {
	var r Reading
	seen := 0

	for i, s := range samples {
		if !s.Ready {
			return Reading{}, fmt.Errorf("sample %d: %w", i, ErrNotReady)
		}
		if i == 0 {
			r.Overflow = s.Overflow
		} else if s.Overflow != r.Overflow {
			return Reading{}, fmt.Errorf("sample %d: %w", i, ErrOverflowMismatch)
		}
		r.Value = width.Place(r.Value, s.Phase, s.Data)
		seen |= 1 << s.Phase
	}

	if seen != 1<<width.Chunks()-1 {
		return Reading{}, fmt.Errorf("phases seen %04b: %w", seen, ErrMissingChunk)
	}

	r.Ready = true
	return r, nil
}

// frameVectors returns the input pins of one frame. Control bits are valid
// on the first cycle only; signed mode is held for the whole frame the way
// the reference host does it.
func frameVectors(width serial.PortWidth, op emu.Operation) []serial.InputPins {
	chunks := width.Split(op.A, op.B)
	vectors := make([]serial.InputPins, 0, len(chunks))

	for i, chunk := range chunks {
		ctrl := serial.Control{Enable: true, Signed: op.Signed}
		if i == 0 {
			ctrl.Clear = op.Clear
		}
		vectors = append(vectors, serial.InputPins{
			UI:   chunk,
			UIO:  ctrl.Encode(),
			RstN: true,
		})
	}

	return vectors
}

func idleVector() serial.InputPins {
	return serial.InputPins{RstN: true}
}

func resetVector() serial.InputPins {
	return serial.InputPins{RstN: false}
}
