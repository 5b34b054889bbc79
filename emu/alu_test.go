package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/macsim/emu"
)

var _ = Describe("ALU", func() {
	Describe("Multiply", func() {
		It("should multiply unsigned operands", func() {
			Expect(emu.Multiply(5, 6, false)).To(Equal(uint16(30)))
			Expect(emu.Multiply(255, 255, false)).To(Equal(uint16(65025)))
			Expect(emu.Multiply(200, 200, false)).To(Equal(uint16(40000)))
		})

		It("should sign-extend operands in signed mode", func() {
			Expect(emu.Multiply(200, 200, true)).To(Equal(uint16(3136)))
			Expect(emu.ToSigned16(emu.Multiply(0xFC, 5, true))).To(Equal(int16(-20)))
			Expect(emu.Multiply(0x80, 0x80, true)).To(Equal(uint16(16384)))
		})

		It("should produce -16256 for -128 * 127", func() {
			Expect(emu.ToSigned16(emu.Multiply(0x80, 0x7F, true))).To(Equal(int16(-16256)))
		})

		It("should agree with int arithmetic for every operand pair", func() {
			for a := 0; a < 256; a += 7 {
				for b := 0; b < 256; b += 5 {
					u := emu.Multiply(uint8(a), uint8(b), false)
					Expect(int(u)).To(Equal(a * b))

					s := emu.Multiply(uint8(a), uint8(b), true)
					want := int(int8(uint8(a))) * int(int8(uint8(b)))
					Expect(int(emu.ToSigned16(s))).To(Equal(want))
				}
			}
		})
	})

	Describe("SignExtend16", func() {
		It("should copy bit 15 into bit 16", func() {
			Expect(emu.SignExtend16(0x7FFF)).To(Equal(uint32(0x07FFF)))
			Expect(emu.SignExtend16(0x8000)).To(Equal(uint32(0x18000)))
			Expect(emu.SignExtend16(0xFFFF)).To(Equal(uint32(0x1FFFF)))
		})
	})

	Describe("AddUnsigned17", func() {
		It("should not flag small sums", func() {
			sum, ov := emu.AddUnsigned17(30, 21)
			Expect(sum).To(Equal(uint32(51)))
			Expect(ov).To(BeFalse())
		})

		It("should flag a carry into bit 16", func() {
			sum, ov := emu.AddUnsigned17(65025, 40000)
			Expect(ov).To(BeTrue())
			Expect(sum & emu.ResultMask).To(Equal(uint32(39489)))
		})

		It("should wrap within 17 bits", func() {
			sum, ov := emu.AddUnsigned17(0x1FFFF, 1)
			Expect(sum).To(Equal(uint32(0)))
			Expect(ov).To(BeFalse())
		})
	})

	Describe("AddSigned17", func() {
		It("should add negative values without overflow", func() {
			sum, ov := emu.AddSigned17(uint32(uint16(0xFFEC)), uint16(0xFFEC))
			Expect(emu.ToSigned16(uint16(sum & emu.ResultMask))).To(Equal(int16(-40)))
			Expect(ov).To(BeFalse())
		})

		It("should flag positive overflow", func() {
			_, ov := emu.AddSigned17(32258, 10000)
			Expect(ov).To(BeTrue())
		})

		It("should flag negative overflow", func() {
			_, ov := emu.AddSigned17(uint32(uint16(0x8000)), uint16(0xFFFF))
			Expect(ov).To(BeTrue())
		})

		It("should never overflow when signs differ", func() {
			_, ov := emu.AddSigned17(0x7FFF, uint16(0x8000))
			Expect(ov).To(BeFalse())
		})

		It("should ignore bit 16 of the accumulator", func() {
			a, _ := emu.AddSigned17(0x10005, 3)
			b, _ := emu.AddSigned17(0x00005, 3)
			Expect(a).To(Equal(b))
		})
	})
})
