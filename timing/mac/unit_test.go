package mac_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/macsim/emu"
	"github.com/sarchlab/macsim/timing/mac"
)

func input(a, b uint8, clear, signed bool) mac.Input {
	return mac.Input{
		Valid:   true,
		Product: emu.Multiply(a, b, signed),
		Clear:   clear,
		Signed:  signed,
	}
}

var _ = Describe("Unit", func() {
	var u *mac.Unit

	BeforeEach(func() {
		u = mac.NewUnit()
	})

	It("should hold an invalid result after creation", func() {
		Expect(u.Output()).To(Equal(mac.ResultRegister{}))
	})

	It("should retire one operation per valid input", func() {
		u.Tick(input(5, 6, true, false))
		Expect(u.Output()).To(Equal(mac.ResultRegister{Valid: true, Value: 30}))

		u.Tick(input(3, 7, false, false))
		Expect(u.Output()).To(Equal(mac.ResultRegister{Valid: true, Value: 51}))
		Expect(u.Stats().Operations).To(Equal(uint64(2)))
		Expect(u.Stats().Clears).To(Equal(uint64(1)))
	})

	It("should keep the value but drop valid on an idle edge", func() {
		u.Tick(input(5, 6, true, false))
		u.Tick(mac.Input{})
		Expect(u.Output().Valid).To(BeFalse())
		Expect(u.Output().Value).To(Equal(uint16(30)))

		u.Tick(input(1, 1, false, false))
		Expect(u.Output().Value).To(Equal(uint16(31)))
	})

	It("should count overflows", func() {
		u.Tick(input(127, 127, true, true))
		u.Tick(input(127, 127, false, true))
		u.Tick(input(100, 100, false, true))
		Expect(u.Output().Overflow).To(BeTrue())
		Expect(u.Stats().Overflows).To(Equal(uint64(1)))
	})

	It("should match the functional model", func() {
		model := emu.NewMAC()
		ops := []emu.Operation{
			{A: 255, B: 255, Clear: true},
			{A: 200, B: 200},
			{A: 200, B: 200},
			{A: 0x80, B: 0x7F, Signed: true},
			{A: 0x80, B: 0x80, Clear: true, Signed: true},
			{A: 0xFF, B: 0x01},
		}
		for _, op := range ops {
			u.Tick(input(op.A, op.B, op.Clear, op.Signed))
			want := model.Step(op)
			Expect(u.Output().Value).To(Equal(want.Value), op.String())
			Expect(u.Output().Overflow).To(Equal(want.Overflow), op.String())
		}
	})

	It("should zero the accumulator on Reset", func() {
		u.Tick(input(9, 9, true, false))
		u.Reset()
		Expect(u.Output()).To(Equal(mac.ResultRegister{}))

		u.Tick(input(1, 2, false, false))
		Expect(u.Output().Value).To(Equal(uint16(2)))
		Expect(u.Stats().Operations).To(Equal(uint64(2)))
	})
})
