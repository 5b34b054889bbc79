// Package pipeline provides the fixed-depth register chain that carries a
// captured operand pair from the framing unit to the MAC unit.
package pipeline

import "github.com/sarchlab/macsim/timing/serial"

// CaptureRegister holds the bundle latched from the deframer.
type CaptureRegister struct {
	// Valid indicates if this pipeline register contains valid data.
	Valid bool

	// A and B are the raw 8-bit operands.
	A uint8
	B uint8

	// Control is the bundle sampled on the first cycle of the frame.
	Control serial.Control
}

// Clear resets the capture register to empty state.
func (r *CaptureRegister) Clear() {
	r.Valid = false
	r.A = 0
	r.B = 0
	r.Control = serial.Control{}
}

// OperandRegister holds the bundle presented to the multiplier.
type OperandRegister struct {
	Valid   bool
	A       uint8
	B       uint8
	Control serial.Control
}

// Clear resets the operand register to empty state.
func (r *OperandRegister) Clear() {
	r.Valid = false
	r.A = 0
	r.B = 0
	r.Control = serial.Control{}
}

// ProductRegister holds the truncated product waiting for the MAC unit.
type ProductRegister struct {
	Valid   bool
	A       uint8
	B       uint8
	Control serial.Control

	// Product is the low 16 bits of A*B under Control.Signed.
	Product uint16
}

// Clear resets the product register to empty state.
func (r *ProductRegister) Clear() {
	r.Valid = false
	r.A = 0
	r.B = 0
	r.Control = serial.Control{}
	r.Product = 0
}
