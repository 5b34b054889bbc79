// Package mac provides the clocked multiply-accumulate unit. The unit owns the
// 17-bit accumulator register; it is the only writer of that register.
package mac

import "github.com/sarchlab/macsim/emu"

// Input is the bundle presented to the unit by the last pipeline stage.
type Input struct {
	Valid   bool
	Product uint16
	Clear   bool
	Signed  bool
}

// ResultRegister holds the registered outcome of the last step.
type ResultRegister struct {
	// Valid is set for one cycle after the edge that retired an operation.
	Valid bool

	// Value is the low 16 bits of the accumulator.
	Value uint16

	// Overflow is the flag computed by the retiring step.
	Overflow bool
}

// Clear resets the result register to empty state.
func (r *ResultRegister) Clear() {
	r.Valid = false
	r.Value = 0
	r.Overflow = false
}

// Stats counts retired operations.
type Stats struct {
	Operations uint64
	Clears     uint64
	Overflows  uint64
}

// Unit is the multiply-accumulate unit.
type Unit struct {
	acc    uint32
	result ResultRegister
	stats  Stats
}

// NewUnit creates a unit with a zeroed accumulator.
func NewUnit() *Unit {
	return &Unit{}
}

// Tick retires the incoming bundle, if any, on a rising edge. Between edges
// the accumulator always holds the result of the last completed step.
func (u *Unit) Tick(in Input) {
	if !in.Valid {
		u.result.Valid = false
		return
	}

	var next uint32
	var overflow bool

	switch {
	case in.Clear:
		next = uint32(in.Product)
		u.stats.Clears++
	case in.Signed:
		next, overflow = emu.AddSigned17(u.acc, in.Product)
	default:
		next, overflow = emu.AddUnsigned17(u.acc, in.Product)
	}

	u.acc = next & emu.AccumulatorMask
	u.result = ResultRegister{
		Valid:    true,
		Value:    uint16(u.acc & emu.ResultMask),
		Overflow: overflow,
	}

	u.stats.Operations++
	if overflow {
		u.stats.Overflows++
	}
}

// Output returns the result register.
func (u *Unit) Output() ResultRegister {
	return u.result
}

// Stats returns the retirement counters.
func (u *Unit) Stats() Stats {
	return u.stats
}

// Reset zeroes the accumulator and the result register. Counters are kept.
func (u *Unit) Reset() {
	u.acc = 0
	u.result.Clear()
}
