package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/macsim/emu"
)

var _ = Describe("MAC", func() {
	var m *emu.MAC

	BeforeEach(func() {
		m = emu.NewMAC()
	})

	It("should clear and multiply", func() {
		r := m.Step(emu.Operation{A: 5, B: 6, Clear: true})
		Expect(r).To(Equal(emu.Result{Value: 30}))
	})

	It("should accumulate unsigned products", func() {
		m.Step(emu.Operation{A: 5, B: 6, Clear: true})
		r := m.Step(emu.Operation{A: 3, B: 7})
		Expect(r).To(Equal(emu.Result{Value: 51}))
	})

	It("should accumulate signed products", func() {
		m.Step(emu.Operation{A: 4, B: 5, Clear: true})
		r := m.Step(emu.Operation{A: 0xFC, B: 0xFB, Signed: true})
		Expect(r).To(Equal(emu.Result{Value: 40}))
	})

	It("should flag unsigned overflow", func() {
		m.Step(emu.Operation{A: 255, B: 255, Clear: true})
		r := m.Step(emu.Operation{A: 200, B: 200})
		Expect(r.Overflow).To(BeTrue())
		Expect(r.Value).To(Equal(uint16(39489)))
	})

	It("should flag signed overflow", func() {
		m.Step(emu.Operation{A: 127, B: 127, Clear: true, Signed: true})
		r := m.Step(emu.Operation{A: 127, B: 127, Signed: true})
		Expect(r).To(Equal(emu.Result{Value: 32258}))

		r = m.Step(emu.Operation{A: 100, B: 100, Signed: true})
		Expect(r.Overflow).To(BeTrue())
		Expect(r.Value).To(Equal(uint16(42258)))
	})

	It("should never flag overflow on clear", func() {
		r := m.Step(emu.Operation{A: 255, B: 255, Clear: true})
		Expect(r).To(Equal(emu.Result{Value: 65025}))

		r = m.Step(emu.Operation{A: 0x80, B: 0x80, Clear: true, Signed: true})
		Expect(r).To(Equal(emu.Result{Value: 16384}))
	})

	It("should zero-extend a negative product on signed clear", func() {
		m.Step(emu.Operation{A: 0xFF, B: 1, Clear: true, Signed: true})
		r := m.Step(emu.Operation{A: 0, B: 0})
		Expect(r).To(Equal(emu.Result{Value: 0xFFFF}))
	})

	It("should return every intermediate result from Run", func() {
		results := m.Run([]emu.Operation{
			{A: 5, B: 6, Clear: true},
			{A: 3, B: 7},
			{A: 200, B: 200, Clear: true},
			{A: 200, B: 200, Clear: true, Signed: true},
		})
		Expect(results).To(Equal([]emu.Result{
			{Value: 30},
			{Value: 51},
			{Value: 40000},
			{Value: 3136},
		}))
		Expect(m.Steps()).To(Equal(uint64(4)))
	})

	It("should forget the accumulator on Reset", func() {
		m.Step(emu.Operation{A: 10, B: 10, Clear: true})
		m.Reset()
		Expect(m.Steps()).To(BeZero())
		Expect(m.Step(emu.Operation{A: 1, B: 1})).To(Equal(emu.Result{Value: 1}))
	})

	It("should render operations", func() {
		Expect(emu.Operation{A: 3, B: 7}.String()).To(Equal("acc u 3*7"))
		Expect(emu.Operation{A: 0xFC, B: 5, Clear: true, Signed: true}.String()).To(Equal("clr s -4*5"))
	})
})
