package emu

import "fmt"

// Operation is one multiply-accumulate request.
type Operation struct {
	A      uint8 `json:"a"`
	B      uint8 `json:"b"`
	Clear  bool  `json:"clear"`
	Signed bool  `json:"signed"`
}

// String renders the operation for logs and reports.
func (op Operation) String() string {
	mode := "acc"
	if op.Clear {
		mode = "clr"
	}
	if op.Signed {
		return fmt.Sprintf("%s s %d*%d", mode, ToSigned8(op.A), ToSigned8(op.B))
	}
	return fmt.Sprintf("%s u %d*%d", mode, op.A, op.B)
}

// Result is the value a host observes after an operation retires.
type Result struct {
	Value    uint16
	Overflow bool
}

// MAC is the functional model of the multiply-accumulate core. Every Step
// retires immediately; there is no notion of cycles.
type MAC struct {
	acc   uint32
	steps uint64
}

// NewMAC creates a MAC with a cleared accumulator.
func NewMAC() *MAC {
	return &MAC{}
}

// Step applies one operation to the accumulator and returns the result.
func (m *MAC) Step(op Operation) Result {
	product := Multiply(op.A, op.B, op.Signed)
	m.steps++

	if op.Clear {
		m.acc = uint32(product)
		return Result{Value: product}
	}

	var overflow bool
	if op.Signed {
		m.acc, overflow = AddSigned17(m.acc, product)
	} else {
		m.acc, overflow = AddUnsigned17(m.acc, product)
	}

	return Result{
		Value:    uint16(m.acc & ResultMask),
		Overflow: overflow,
	}
}

// Run applies the operations in order and returns every intermediate result.
func (m *MAC) Run(ops []Operation) []Result {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		results = append(results, m.Step(op))
	}
	return results
}

// Steps returns the number of operations applied since the last reset.
func (m *MAC) Steps() uint64 {
	return m.steps
}

// Reset returns the model to its power-on state.
func (m *MAC) Reset() {
	m.acc = 0
	m.steps = 0
}
