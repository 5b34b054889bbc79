// Package serial implements the narrow-port framing unit of the MAC core:
// the input deframer, the output drainer, and the pin-level codec.
package serial

// Bit positions on the bidirectional side-channel port.
const (
	// UIOClear selects clear-and-multiply instead of accumulate (input).
	UIOClear = 0
	// UIOEnable gates operand capture (input).
	UIOEnable = 1
	// UIOSigned selects two's-complement operands (input).
	UIOSigned = 2

	// UIOOverflow carries the overflow flag of the drained result (output).
	UIOOverflow = 0
	// UIOReady is set once a result has been latched since reset (output).
	UIOReady = 1
	// UIOPhaseShift is the low bit of the two-bit phase field (output).
	UIOPhaseShift = 2
	// UIOPhaseMask masks the phase field after shifting.
	UIOPhaseMask = 0x3
)

// InputPins is the raw state of the input pins sampled on a rising edge.
type InputPins struct {
	UI   uint8
	UIO  uint8
	RstN bool
}

// OutputPins is the raw state of the output pins after a rising edge.
type OutputPins struct {
	UO  uint8
	UIO uint8
}

// Control is the per-frame control bundle.
type Control struct {
	Enable bool
	Clear  bool
	Signed bool
}

// Encode packs the control bundle into side-channel bits.
func (c Control) Encode() uint8 {
	var v uint8
	if c.Clear {
		v |= 1 << UIOClear
	}
	if c.Enable {
		v |= 1 << UIOEnable
	}
	if c.Signed {
		v |= 1 << UIOSigned
	}
	return v
}

// DecodeControl unpacks side-channel bits into a control bundle.
func DecodeControl(uio uint8) Control {
	return Control{
		Enable: uio&(1<<UIOEnable) != 0,
		Clear:  uio&(1<<UIOClear) != 0,
		Signed: uio&(1<<UIOSigned) != 0,
	}
}

// Inputs is the decoded view of InputPins.
type Inputs struct {
	Data    uint8
	Control Control
	Reset   bool
}

// DecodeInputs decodes raw input pins. Reset is active low.
func DecodeInputs(p InputPins) Inputs {
	return Inputs{
		Data:    p.UI,
		Control: DecodeControl(p.UIO),
		Reset:   !p.RstN,
	}
}

// Encode converts decoded inputs back to raw pins.
func (in Inputs) Encode() InputPins {
	return InputPins{
		UI:   in.Data,
		UIO:  in.Control.Encode(),
		RstN: !in.Reset,
	}
}

// Outputs is the decoded view of OutputPins.
type Outputs struct {
	Data     uint8
	Overflow bool
	Ready    bool
	Phase    int
}

// Encode packs the outputs into raw pins.
func (o Outputs) Encode() OutputPins {
	var uio uint8
	if o.Overflow {
		uio |= 1 << UIOOverflow
	}
	if o.Ready {
		uio |= 1 << UIOReady
	}
	uio |= uint8(o.Phase&UIOPhaseMask) << UIOPhaseShift

	return OutputPins{UO: o.Data, UIO: uio}
}

// DecodeOutputs unpacks raw output pins.
func DecodeOutputs(p OutputPins) Outputs {
	return Outputs{
		Data:     p.UO,
		Overflow: p.UIO&(1<<UIOOverflow) != 0,
		Ready:    p.UIO&(1<<UIOReady) != 0,
		Phase:    int(p.UIO>>UIOPhaseShift) & UIOPhaseMask,
	}
}
