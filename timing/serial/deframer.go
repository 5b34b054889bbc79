package serial

// DeframerState is the input-side state of the framing unit.
type DeframerState int

const (
	// StateIdle waits for enable to start a frame.
	StateIdle DeframerState = iota
	// StateCapturing is shifting in the remaining chunks of a frame.
	StateCapturing
	// StateRelease has completed a frame and waits for enable to drop.
	StateRelease
)

// String implements fmt.Stringer.
func (s DeframerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateRelease:
		return "release"
	default:
		return "unknown"
	}
}

// FrameRegister holds a completed operand pair. Valid is set for exactly one
// cycle after the edge that latched the last chunk.
type FrameRegister struct {
	Valid   bool
	A       uint8
	B       uint8
	Control Control
}

// Clear resets the frame register to empty state.
func (r *FrameRegister) Clear() {
	r.Valid = false
	r.A = 0
	r.B = 0
	r.Control = Control{}
}

// DeframerStats counts input-side events.
type DeframerStats struct {
	// Frames is the number of completed frames.
	Frames uint64
	// Aborted is the number of frames discarded because enable dropped.
	Aborted uint64
	// Held is the number of cycles enable stayed high after a frame completed.
	Held uint64
}

// Deframer assembles operand pairs from the narrow input port.
//
// The control bundle is sampled only on the first cycle of a frame. If enable
// drops before the last chunk, the partial frame is discarded and the
// deframer returns to idle. After a frame completes, enable must be observed
// low for one edge before the next frame may start.
type Deframer struct {
	width   PortWidth
	state   DeframerState
	index   int
	a, b    uint8
	control Control
	out     FrameRegister
	stats   DeframerStats
}

// NewDeframer creates an idle deframer for the given port width.
func NewDeframer(width PortWidth) *Deframer {
	return &Deframer{width: width}
}

// Tick samples the inputs on a rising edge.
func (d *Deframer) Tick(in Inputs) {
	d.out.Clear()

	switch d.state {
	case StateIdle:
		if !in.Control.Enable {
			return
		}
		d.a, d.b = 0, 0
		d.index = 0
		d.control = in.Control
		d.shiftIn(in.Data)
		d.state = StateCapturing

	case StateCapturing:
		if !in.Control.Enable {
			d.stats.Aborted++
			d.state = StateIdle
			d.index = 0
			return
		}
		d.shiftIn(in.Data)
		d.completeIfDone()

	case StateRelease:
		if in.Control.Enable {
			d.stats.Held++
			return
		}
		d.state = StateIdle
	}
}

func (d *Deframer) shiftIn(data uint8) {
	perOperand := d.width.FrameCycles() / 2
	shift := uint(d.index%perOperand) * uint(d.width)
	chunk := data & d.width.Mask()

	if d.index < perOperand {
		d.a |= chunk << shift
	} else {
		d.b |= chunk << shift
	}
	d.index++
}

func (d *Deframer) completeIfDone() {
	if d.index < d.width.FrameCycles() {
		return
	}

	d.out = FrameRegister{
		Valid:   true,
		A:       d.a,
		B:       d.b,
		Control: d.control,
	}
	d.stats.Frames++
	d.state = StateRelease
	d.index = 0
}

// Output returns the frame register as latched on the last edge.
func (d *Deframer) Output() FrameRegister {
	return d.out
}

// State returns the current input state.
func (d *Deframer) State() DeframerState {
	return d.state
}

// Stats returns the input-side counters.
func (d *Deframer) Stats() DeframerStats {
	return d.stats
}

// Reset discards any partial frame and returns to idle. Counters are kept.
func (d *Deframer) Reset() {
	d.state = StateIdle
	d.index = 0
	d.a, d.b = 0, 0
	d.control = Control{}
	d.out.Clear()
}
