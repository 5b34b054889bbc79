package host

import (
	"math/rand"

	"github.com/sarchlab/macsim/emu"
)

// edgeOperands are the operand values most likely to expose overflow and
// sign-extension bugs.
var edgeOperands = []uint8{0, 1, 2, 127, 128, 254, 255}

// Stimulus describes a randomized operation stream.
type Stimulus struct {
	Seed int64
	// Count is the number of operations to generate.
	Count int
	// ClearRatio is the probability of a clear operation. The first
	// operation always clears.
	ClearRatio float64
	// SignedRatio is the probability of signed mode.
	SignedRatio float64
	// EdgeRatio is the probability of drawing each operand from the edge set.
	EdgeRatio float64
}

// DefaultStimulus mirrors the reference randomized testbenches.
func DefaultStimulus() Stimulus {
	return Stimulus{
		Seed:        1234567,
		Count:       1000,
		ClearRatio:  0.15,
		SignedRatio: 0.5,
	}
}

// Generate returns a deterministic operation stream for the given settings.
func (s Stimulus) Generate() []emu.Operation {
	rng := rand.New(rand.NewSource(s.Seed))
	ops := make([]emu.Operation, 0, s.Count)

	operand := func() uint8 {
		if s.EdgeRatio > 0 && rng.Float64() < s.EdgeRatio {
			return edgeOperands[rng.Intn(len(edgeOperands))]
		}
		return uint8(rng.Intn(256))
	}

	for i := 0; i < s.Count; i++ {
		ops = append(ops, emu.Operation{
			A:      operand(),
			B:      operand(),
			Clear:  i == 0 || rng.Float64() < s.ClearRatio,
			Signed: rng.Float64() < s.SignedRatio,
		})
	}

	return ops
}
