package benchmarks

import (
	"github.com/sarchlab/macsim/emu"
	"github.com/sarchlab/macsim/host"
)

// GetMicrobenchmarks returns the standard set of workloads. Each one targets
// a specific behavior of the tile.
func GetMicrobenchmarks() []Benchmark {
	return []Benchmark{
		dotProduct(),
		signedFIR(),
		unsignedOverflow(),
		signedOverflow(),
		clearEveryOp(),
		streamedDotProduct(),
		streamedMixed(),
	}
}

// GetCoreBenchmarks returns a minimal set for quick validation.
func GetCoreBenchmarks() []Benchmark {
	return []Benchmark{
		dotProduct(),
		signedFIR(),
		streamedMixed(),
	}
}

// 1. Dot product - one clear followed by unsigned accumulates
func dotProduct() Benchmark {
	a := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	b := []uint8{8, 7, 6, 5, 4, 3, 2, 1}
	return Benchmark{
		Name:        "dot_product",
		Description: "8-element unsigned dot product, result read after every step",
		Ops:         accumulate(a, b, false),
	}
}

// 2. Signed FIR tap - signed coefficients against a ramp
func signedFIR() Benchmark {
	taps := []int8{-3, 5, -7, 11, -7, 5, -3}
	a := make([]uint8, len(taps))
	b := make([]uint8, len(taps))
	for i, t := range taps {
		a[i] = uint8(t)
		b[i] = uint8(int8(10 * (i + 1)))
	}
	return Benchmark{
		Name:        "signed_fir",
		Description: "7-tap signed FIR output sample",
		Ops:         accumulate(a, b, true),
	}
}

// 3. Unsigned overflow - repeated 255*255 until the 16-bit result wraps
func unsignedOverflow() Benchmark {
	a := make([]uint8, 6)
	b := make([]uint8, 6)
	for i := range a {
		a[i], b[i] = 255, 255
	}
	return Benchmark{
		Name:        "unsigned_overflow",
		Description: "255*255 accumulated until the carry out of bit 15 sets overflow",
		Ops:         accumulate(a, b, false),
	}
}

// 4. Signed overflow - positive products past the int16 range
func signedOverflow() Benchmark {
	return Benchmark{
		Name:        "signed_overflow",
		Description: "127*127 twice then 100*100, crossing the signed 16-bit range",
		Ops: []emu.Operation{
			{A: 127, B: 127, Clear: true, Signed: true},
			{A: 127, B: 127, Signed: true},
			{A: 100, B: 100, Signed: true},
			{A: 0x80, B: 0x7F, Signed: true},
		},
	}
}

// 5. Clear every op - the accumulator never carries state
func clearEveryOp() Benchmark {
	ops := make([]emu.Operation, 0, 16)
	for i := 0; i < 16; i++ {
		ops = append(ops, emu.Operation{
			A:      uint8(i * 17),
			B:      uint8(255 - i*13),
			Clear:  true,
			Signed: i%2 == 1,
		})
	}
	return Benchmark{
		Name:        "clear_every_op",
		Description: "16 independent products, alternating signed and unsigned",
		Ops:         ops,
	}
}

// 6. Streamed dot product - same as dot_product but issued back to back
func streamedDotProduct() Benchmark {
	b := dotProduct()
	b.Name = "streamed_dot_product"
	b.Description = "8-element dot product issued at the minimum frame interval"
	b.Streamed = true
	return b
}

// 7. Streamed mixed - seeded random stream at full throughput
func streamedMixed() Benchmark {
	stim := host.DefaultStimulus()
	stim.Count = 64
	stim.EdgeRatio = 0.25
	return Benchmark{
		Name:        "streamed_mixed",
		Description: "64 random operations with clears, signed mode and edge operands",
		Ops:         stim.Generate(),
		Streamed:    true,
	}
}

func accumulate(a, b []uint8, signed bool) []emu.Operation {
	ops := make([]emu.Operation, 0, len(a))
	for i := range a {
		ops = append(ops, emu.Operation{
			A:      a[i],
			B:      b[i],
			Clear:  i == 0,
			Signed: signed,
		})
	}
	return ops
}
