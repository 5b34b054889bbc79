package serial

// ResultInput is a result offered to the drainer on a rising edge.
type ResultInput struct {
	Valid    bool
	Value    uint16
	Overflow bool
}

// Drainer re-serializes the latest result onto the narrow output port.
//
// A newly latched result restarts the output at phase 0 (most significant
// chunk). Otherwise the phase advances every cycle and wraps, so a host that
// samples Chunks consecutive cycles sees every chunk exactly once. Overflow,
// ready and phase are driven on every sub-cycle.
type Drainer struct {
	width    PortWidth
	value    uint16
	overflow bool
	ready    bool
	phase    int
}

// NewDrainer creates a drainer with no result latched.
func NewDrainer(width PortWidth) *Drainer {
	return &Drainer{width: width}
}

// Tick advances the output state machine by one rising edge.
func (d *Drainer) Tick(in ResultInput) {
	if in.Valid {
		d.value = in.Value
		d.overflow = in.Overflow
		d.ready = true
		d.phase = 0
		return
	}

	d.phase = (d.phase + 1) % d.width.Chunks()
}

// Outputs returns the decoded state of the output pins.
func (d *Drainer) Outputs() Outputs {
	return Outputs{
		Data:     d.width.Chunk(d.value, d.phase),
		Overflow: d.overflow,
		Ready:    d.ready,
		Phase:    d.phase,
	}
}

// Phase returns the index of the chunk currently driven.
func (d *Drainer) Phase() int {
	return d.phase
}

// Reset drops the latched result and returns to phase 0.
func (d *Drainer) Reset() {
	d.value = 0
	d.overflow = false
	d.ready = false
	d.phase = 0
}
