package serial_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/macsim/timing/serial"
)

var _ = Describe("PortWidth", func() {
	It("should accept only 4 and 8 bits", func() {
		w, err := serial.ParsePortWidth(8)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(serial.Byte))

		w, err = serial.ParsePortWidth(4)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(serial.Nibble))

		_, err = serial.ParsePortWidth(2)
		Expect(err).To(HaveOccurred())
		Expect(serial.PortWidth(16).Valid()).To(BeFalse())
	})

	It("should size frames and results by width", func() {
		Expect(serial.Byte.FrameCycles()).To(Equal(2))
		Expect(serial.Byte.Chunks()).To(Equal(2))
		Expect(serial.Nibble.FrameCycles()).To(Equal(4))
		Expect(serial.Nibble.Chunks()).To(Equal(4))
	})

	It("should split operands low chunk first", func() {
		Expect(serial.Byte.Split(0x12, 0x34)).To(Equal([]uint8{0x12, 0x34}))
		Expect(serial.Nibble.Split(0x12, 0x34)).To(Equal([]uint8{0x2, 0x1, 0x4, 0x3}))
	})

	It("should emit result chunks most significant first", func() {
		Expect(serial.Byte.Chunk(0xABCD, 0)).To(Equal(uint8(0xAB)))
		Expect(serial.Byte.Chunk(0xABCD, 1)).To(Equal(uint8(0xCD)))
		Expect(serial.Nibble.Chunk(0xABCD, 0)).To(Equal(uint8(0xA)))
		Expect(serial.Nibble.Chunk(0xABCD, 3)).To(Equal(uint8(0xD)))
	})

	It("should reassemble chunks with Place", func() {
		for _, w := range []serial.PortWidth{serial.Byte, serial.Nibble} {
			var v uint16
			for phase := w.Chunks() - 1; phase >= 0; phase-- {
				v = w.Place(v, phase, w.Chunk(0xBEEF, phase))
			}
			Expect(v).To(Equal(uint16(0xBEEF)), w.String())
		}
	})

	It("should print its name", func() {
		Expect(serial.Byte.String()).To(Equal("byte"))
		Expect(serial.Nibble.String()).To(Equal("nibble"))
	})
})
