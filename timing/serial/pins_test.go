package serial_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/macsim/timing/serial"
)

var _ = Describe("Pins", func() {
	It("should place control bits on uio_in", func() {
		Expect(serial.Control{Clear: true}.Encode()).To(Equal(uint8(0x01)))
		Expect(serial.Control{Enable: true}.Encode()).To(Equal(uint8(0x02)))
		Expect(serial.Control{Signed: true}.Encode()).To(Equal(uint8(0x04)))
		Expect(serial.DecodeControl(0x07)).To(Equal(serial.Control{Enable: true, Clear: true, Signed: true}))
	})

	It("should ignore unused uio_in bits", func() {
		Expect(serial.DecodeControl(0xF8)).To(Equal(serial.Control{}))
	})

	It("should treat reset as active low", func() {
		Expect(serial.DecodeInputs(serial.InputPins{RstN: false}).Reset).To(BeTrue())
		Expect(serial.DecodeInputs(serial.InputPins{RstN: true}).Reset).To(BeFalse())

		in := serial.Inputs{Data: 0xA5, Control: serial.Control{Enable: true}}
		Expect(in.Encode()).To(Equal(serial.InputPins{UI: 0xA5, UIO: 0x02, RstN: true}))
		Expect(serial.DecodeInputs(in.Encode())).To(Equal(in))
	})

	It("should place status and phase on uio_out", func() {
		out := serial.Outputs{Data: 0x12, Overflow: true, Ready: true, Phase: 3}
		pins := out.Encode()
		Expect(pins.UO).To(Equal(uint8(0x12)))
		Expect(pins.UIO).To(Equal(uint8(0x0F)))
		Expect(serial.DecodeOutputs(pins)).To(Equal(out))
	})

	It("should keep uio_out[1] as ready", func() {
		pins := serial.Outputs{Ready: true}.Encode()
		Expect(pins.UIO & 0x02).To(Equal(uint8(0x02)))
		Expect(pins.UIO & 0x01).To(BeZero())
	})
})
