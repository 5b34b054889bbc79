// Package emu provides the functional (untimed) model of the MAC core.
package emu

const (
	// AccumulatorMask keeps the 17 bits of the accumulator register.
	AccumulatorMask uint32 = 0x1FFFF

	// ResultMask keeps the 16-bit result visible on the output port.
	ResultMask uint32 = 0xFFFF

	carryBit = 16
	signBit  = 15
)

// ToSigned8 reinterprets an 8-bit operand as two's complement.
func ToSigned8(v uint8) int8 {
	return int8(v)
}

// ToSigned16 reinterprets a 16-bit result as two's complement.
func ToSigned16(v uint16) int16 {
	return int16(v)
}

// SignExtend16 widens a 16-bit value to the 17-bit accumulator width by
// copying bit 15 into bit 16.
func SignExtend16(v uint16) uint32 {
	x := uint32(v)
	if x&(1<<signBit) != 0 {
		x |= 1 << carryBit
	}
	return x
}

// Multiply returns the low 16 bits of a*b. In signed mode both operands are
// sign-extended before the multiplication.
func Multiply(a, b uint8, signed bool) uint16 {
	if signed {
		return uint16(int16(int8(a)) * int16(int8(b)))
	}
	return uint16(a) * uint16(b)
}

// AddUnsigned17 adds a zero-extended product to the full 17-bit accumulator.
// Overflow is the resulting bit 16.
func AddUnsigned17(acc uint32, product uint16) (uint32, bool) {
	sum := (acc & AccumulatorMask) + uint32(product)
	overflow := (sum>>carryBit)&1 == 1
	return sum & AccumulatorMask, overflow
}

// AddSigned17 adds a product to the low 16 bits of the accumulator, both
// sign-extended to 17 bits. Overflow follows the two's-complement rule at the
// 16-bit boundary: both addends share bit 15 and the sum's bit 15 differs.
func AddSigned17(acc uint32, product uint16) (uint32, bool) {
	op1 := SignExtend16(uint16(acc & ResultMask))
	op2 := SignExtend16(product)
	sum := (op1 + op2) & AccumulatorMask

	op1Sign := (op1 >> signBit) & 1
	op2Sign := (op2 >> signBit) & 1
	sumSign := (sum >> signBit) & 1
	overflow := op1Sign == op2Sign && op1Sign != sumSign

	return sum, overflow
}
