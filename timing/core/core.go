// Package core provides the cycle-accurate MAC tile model.
// It wires the framing unit, the pipeline registers and the MAC unit behind
// the pin-level interface.
package core

import (
	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/macsim/timing/mac"
	"github.com/sarchlab/macsim/timing/pipeline"
	"github.com/sarchlab/macsim/timing/serial"
)

// Stats holds performance statistics for the core.
type Stats struct {
	// Cycles is the total number of rising edges simulated.
	Cycles uint64
	// Frames is the number of completed input frames.
	Frames uint64
	// Aborted is the number of frames discarded because enable dropped.
	Aborted uint64
	// Held is the number of cycles enable stayed high after a frame completed.
	Held uint64
	// Operations is the number of retired MAC operations.
	Operations uint64
	// Overflows is the number of retired operations that set overflow.
	Overflows uint64
	// Clears is the number of retired operations that restarted the
	// accumulator.
	Clears uint64
	// Resets counts edges sampled with reset asserted and calls to Reset.
	Resets uint64
	// Flushed is the number of in-flight bundles discarded by reset.
	Flushed uint64
}

// CoreOption is a functional option for configuring the Core.
type CoreOption func(*Core)

// WithPortWidth selects the byte or nibble port variant.
func WithPortWidth(width serial.PortWidth) CoreOption {
	return func(c *Core) {
		c.width = width
	}
}

// WithLogger sets the logger used for frame and retirement events.
func WithLogger(logger *log.Entry) CoreOption {
	return func(c *Core) {
		c.log = logger
	}
}

// Core is a cycle-accurate MAC tile.
type Core struct {
	width serial.PortWidth

	deframer *serial.Deframer
	pipe     *pipeline.Pipeline
	unit     *mac.Unit
	drainer  *serial.Drainer

	out    serial.OutputPins
	resets uint64
	cycles uint64

	log *log.Entry
}

// NewCore creates a core in its reset state. The default port is 8 bits wide.
func NewCore(opts ...CoreOption) *Core {
	c := &Core{
		width: serial.Byte,
		log:   log.WithField("component", "core"),
	}

	for _, opt := range opts {
		opt(c)
	}

	if !c.width.Valid() {
		panic("core: unsupported port width " + c.width.String())
	}

	c.deframer = serial.NewDeframer(c.width)
	c.pipe = pipeline.NewPipeline()
	c.unit = mac.NewUnit()
	c.drainer = serial.NewDrainer(c.width)
	c.out = c.drainer.Outputs().Encode()

	return c
}

// PortWidth returns the port variant of the core.
func (c *Core) PortWidth() serial.PortWidth {
	return c.width
}

// Tick applies the input pins on one rising edge and returns the output pins
// after the edge.
//
// Stages are evaluated in reverse order (drain, MAC, pipeline, deframer) so
// that each one consumes the value its predecessor held before the edge.
func (c *Core) Tick(pins serial.InputPins) serial.OutputPins {
	c.cycles++
	in := serial.DecodeInputs(pins)

	if in.Reset {
		c.resets++
		c.reset()
		if c.enabled(log.TraceLevel) {
			c.log.WithField("cycle", c.cycles).Trace("reset asserted")
		}
		return c.out
	}

	result := c.unit.Output()
	c.drainer.Tick(serial.ResultInput{
		Valid:    result.Valid,
		Value:    result.Value,
		Overflow: result.Overflow,
	})

	product := c.pipe.GetProduct()
	c.unit.Tick(mac.Input{
		Valid:   product.Valid,
		Product: product.Product,
		Clear:   product.Control.Clear,
		Signed:  product.Control.Signed,
	})
	if product.Valid && c.enabled(log.DebugLevel) {
		retired := c.unit.Output()
		c.log.WithFields(log.Fields{
			"cycle":    c.cycles,
			"a":        product.A,
			"b":        product.B,
			"clear":    product.Control.Clear,
			"signed":   product.Control.Signed,
			"result":   retired.Value,
			"overflow": retired.Overflow,
		}).Debug("operation retired")
	}

	c.pipe.Tick(c.deframer.Output())

	aborted := c.deframer.Stats().Aborted
	c.deframer.Tick(in)
	if frame := c.deframer.Output(); frame.Valid && c.enabled(log.DebugLevel) {
		c.log.WithFields(log.Fields{
			"cycle":  c.cycles,
			"a":      frame.A,
			"b":      frame.B,
			"clear":  frame.Control.Clear,
			"signed": frame.Control.Signed,
		}).Debug("frame captured")
	}
	if c.deframer.Stats().Aborted != aborted && c.enabled(log.DebugLevel) {
		c.log.WithField("cycle", c.cycles).Debug("frame aborted: enable dropped")
	}

	c.out = c.drainer.Outputs().Encode()
	if c.enabled(log.TraceLevel) {
		c.log.WithFields(log.Fields{
			"cycle":  c.cycles,
			"ui":     pins.UI,
			"uio_in": pins.UIO,
			"uo":     c.out.UO,
			"uio":    c.out.UIO,
		}).Trace("tick")
	}

	return c.out
}

func (c *Core) enabled(level log.Level) bool {
	return c.log.Logger.IsLevelEnabled(level)
}

// Outputs returns the output pins as of the last edge.
func (c *Core) Outputs() serial.OutputPins {
	return c.out
}

// RunCycles applies the same input pins for n edges and returns the final
// output pins.
func (c *Core) RunCycles(n uint64, pins serial.InputPins) serial.OutputPins {
	for i := uint64(0); i < n; i++ {
		c.Tick(pins)
	}
	return c.out
}

// Reset forces the core into its reset state without consuming a cycle.
func (c *Core) Reset() {
	c.resets++
	c.reset()
}

func (c *Core) reset() {
	c.deframer.Reset()
	c.pipe.Reset()
	c.unit.Reset()
	c.drainer.Reset()
	c.out = c.drainer.Outputs().Encode()
}

// Stats returns performance statistics for the core.
func (c *Core) Stats() Stats {
	in := c.deframer.Stats()
	unit := c.unit.Stats()
	return Stats{
		Cycles:     c.cycles,
		Frames:     in.Frames,
		Aborted:    in.Aborted,
		Held:       in.Held,
		Operations: unit.Operations,
		Overflows:  unit.Overflows,
		Clears:     unit.Clears,
		Resets:     c.resets,
		Flushed:    c.pipe.Stats().Flushed,
	}
}

// InFlight returns the number of bundles between the deframer and the MAC
// unit.
func (c *Core) InFlight() int {
	return c.pipe.Occupancy()
}

// DeframerState returns the state of the input framing state machine.
func (c *Core) DeframerState() serial.DeframerState {
	return c.deframer.State()
}
