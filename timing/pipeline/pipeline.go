package pipeline

import (
	"github.com/sarchlab/macsim/emu"
	"github.com/sarchlab/macsim/timing/serial"
)

// Depth is the number of pipeline registers between the deframer and the MAC
// unit: capture, operand and product.
const Depth = 3

// Statistics holds pipeline counters.
type Statistics struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Issued is the number of bundles accepted into the capture register.
	Issued uint64
	// Delivered is the number of bundles that left the product register.
	Delivered uint64
	// Flushed is the number of in-flight bundles discarded by Reset.
	Flushed uint64
}

// Pipeline is the fixed-depth register chain. Every edge, each register
// copies its predecessor unconditionally; there are no stalls.
type Pipeline struct {
	capture CaptureRegister
	operand OperandRegister
	product ProductRegister

	stats Statistics
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// GetCapture returns the capture register.
func (p *Pipeline) GetCapture() *CaptureRegister {
	return &p.capture
}

// GetOperand returns the operand register.
func (p *Pipeline) GetOperand() *OperandRegister {
	return &p.operand
}

// GetProduct returns the product register.
func (p *Pipeline) GetProduct() *ProductRegister {
	return &p.product
}

// Stats returns pipeline statistics.
func (p *Pipeline) Stats() Statistics {
	return p.stats
}

// Occupancy returns the number of valid bundles in flight.
func (p *Pipeline) Occupancy() int {
	n := 0
	if p.capture.Valid {
		n++
	}
	if p.operand.Valid {
		n++
	}
	if p.product.Valid {
		n++
	}
	return n
}

// Tick advances the pipeline by one rising edge.
//
// Registers are updated in reverse order (product, operand, capture) so every
// register latches its predecessor's value from before the edge.
func (p *Pipeline) Tick(in serial.FrameRegister) {
	p.stats.Cycles++

	if p.product.Valid {
		p.stats.Delivered++
	}

	if p.operand.Valid {
		p.product = ProductRegister{
			Valid:   true,
			A:       p.operand.A,
			B:       p.operand.B,
			Control: p.operand.Control,
			Product: emu.Multiply(p.operand.A, p.operand.B, p.operand.Control.Signed),
		}
	} else {
		p.product.Clear()
	}

	if p.capture.Valid {
		p.operand = OperandRegister{
			Valid:   true,
			A:       p.capture.A,
			B:       p.capture.B,
			Control: p.capture.Control,
		}
	} else {
		p.operand.Clear()
	}

	if in.Valid {
		p.capture = CaptureRegister{
			Valid:   true,
			A:       in.A,
			B:       in.B,
			Control: in.Control,
		}
		p.stats.Issued++
	} else {
		p.capture.Clear()
	}
}

// Reset discards every in-flight bundle.
func (p *Pipeline) Reset() {
	p.stats.Flushed += uint64(p.Occupancy())
	p.capture.Clear()
	p.operand.Clear()
	p.product.Clear()
}
