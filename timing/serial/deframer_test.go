package serial_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/macsim/timing/serial"
)

func enabled(data uint8, clear, signed bool) serial.Inputs {
	return serial.Inputs{
		Data:    data,
		Control: serial.Control{Enable: true, Clear: clear, Signed: signed},
	}
}

func idle() serial.Inputs {
	return serial.Inputs{}
}

var _ = Describe("Deframer", func() {
	Context("byte port", func() {
		var d *serial.Deframer

		BeforeEach(func() {
			d = serial.NewDeframer(serial.Byte)
		})

		It("should start idle", func() {
			Expect(d.State()).To(Equal(serial.StateIdle))
			Expect(d.Output().Valid).To(BeFalse())
		})

		It("should ignore data while enable is low", func() {
			d.Tick(serial.Inputs{Data: 0x55})
			Expect(d.State()).To(Equal(serial.StateIdle))
			Expect(d.Stats().Frames).To(BeZero())
		})

		It("should capture A then B", func() {
			d.Tick(enabled(5, true, false))
			Expect(d.State()).To(Equal(serial.StateCapturing))
			Expect(d.Output().Valid).To(BeFalse())

			d.Tick(enabled(6, false, false))
			out := d.Output()
			Expect(out.Valid).To(BeTrue())
			Expect(out.A).To(Equal(uint8(5)))
			Expect(out.B).To(Equal(uint8(6)))
			Expect(d.State()).To(Equal(serial.StateRelease))
			Expect(d.Stats().Frames).To(Equal(uint64(1)))
		})

		It("should latch control on the first cycle only", func() {
			d.Tick(enabled(5, true, true))
			d.Tick(enabled(6, false, false))
			Expect(d.Output().Control).To(Equal(serial.Control{Enable: true, Clear: true, Signed: true}))
		})

		It("should hold the frame valid for exactly one cycle", func() {
			d.Tick(enabled(1, false, false))
			d.Tick(enabled(2, false, false))
			Expect(d.Output().Valid).To(BeTrue())
			d.Tick(idle())
			Expect(d.Output().Valid).To(BeFalse())
			Expect(d.State()).To(Equal(serial.StateIdle))
		})

		It("should abort when enable drops mid-frame", func() {
			d.Tick(enabled(9, true, false))
			d.Tick(idle())
			Expect(d.State()).To(Equal(serial.StateIdle))
			Expect(d.Output().Valid).To(BeFalse())
			Expect(d.Stats().Aborted).To(Equal(uint64(1)))

			d.Tick(enabled(3, false, false))
			d.Tick(enabled(4, false, false))
			Expect(d.Output().A).To(Equal(uint8(3)))
			Expect(d.Output().B).To(Equal(uint8(4)))
			Expect(d.Output().Control.Clear).To(BeFalse())
		})

		It("should not start a new frame until enable drops", func() {
			d.Tick(enabled(1, false, false))
			d.Tick(enabled(2, false, false))
			d.Tick(enabled(7, false, false))
			d.Tick(enabled(8, false, false))
			Expect(d.Output().Valid).To(BeFalse())
			Expect(d.State()).To(Equal(serial.StateRelease))
			Expect(d.Stats().Held).To(Equal(uint64(2)))
			Expect(d.Stats().Frames).To(Equal(uint64(1)))
		})

		It("should discard a partial frame on Reset", func() {
			d.Tick(enabled(1, false, false))
			d.Reset()
			Expect(d.State()).To(Equal(serial.StateIdle))

			d.Tick(enabled(10, false, false))
			d.Tick(enabled(20, false, false))
			Expect(d.Output().A).To(Equal(uint8(10)))
			Expect(d.Output().B).To(Equal(uint8(20)))
		})
	})

	Context("nibble port", func() {
		var d *serial.Deframer

		BeforeEach(func() {
			d = serial.NewDeframer(serial.Nibble)
		})

		It("should assemble operands from four nibbles", func() {
			for i, chunk := range serial.Nibble.Split(0xC8, 0x3F) {
				d.Tick(enabled(chunk, i == 0, true))
			}
			out := d.Output()
			Expect(out.Valid).To(BeTrue())
			Expect(out.A).To(Equal(uint8(0xC8)))
			Expect(out.B).To(Equal(uint8(0x3F)))
			Expect(out.Control.Clear).To(BeTrue())
			Expect(out.Control.Signed).To(BeTrue())
		})

		It("should ignore the upper input bits", func() {
			for _, chunk := range []uint8{0xF1, 0xF2, 0xF3, 0xF4} {
				d.Tick(enabled(chunk, false, false))
			}
			Expect(d.Output().A).To(Equal(uint8(0x21)))
			Expect(d.Output().B).To(Equal(uint8(0x43)))
		})

		It("should abort on the third cycle", func() {
			d.Tick(enabled(1, false, false))
			d.Tick(enabled(2, false, false))
			d.Tick(idle())
			Expect(d.Stats().Aborted).To(Equal(uint64(1)))
			Expect(d.Stats().Frames).To(BeZero())
		})
	})
})
