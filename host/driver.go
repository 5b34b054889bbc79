package host

import (
	"github.com/sarchlab/macsim/emu"
	"github.com/sarchlab/macsim/timing/latency"
	"github.com/sarchlab/macsim/timing/serial"
)

// Device is anything that can be clocked through the MAC pin contract.
type Device interface {
	Tick(pins serial.InputPins) serial.OutputPins
}

// Driver clocks a device interactively, one edge per call to the device.
type Driver struct {
	dev    Device
	table  *latency.Table
	width  serial.PortWidth
	last   serial.OutputPins
	cycles uint64
}

// NewDriver creates a driver for dev using the timing in table.
func NewDriver(dev Device, table *latency.Table) *Driver {
	return &Driver{
		dev:   dev,
		table: table,
		width: table.Config().Width(),
	}
}

func (d *Driver) tick(pins serial.InputPins) {
	d.last = d.dev.Tick(pins)
	d.cycles++
}

// Cycles returns the number of edges the driver has applied.
func (d *Driver) Cycles() uint64 {
	return d.cycles
}

// Reset holds reset low for the configured number of cycles, then idles
// while the device recovers.
func (d *Driver) Reset() {
	for i := uint64(0); i < d.table.Config().ResetCycles; i++ {
		d.tick(resetVector())
	}
	d.Wait(resetRecoveryCycles)
}

// Send frames one operation onto the input port, then drops enable for the
// configured idle time.
func (d *Driver) Send(op emu.Operation) {
	for _, v := range frameVectors(d.width, op) {
		d.tick(v)
	}
	d.Wait(d.table.Config().IdleCycles)
}

// Wait applies n idle edges.
func (d *Driver) Wait(n uint64) {
	for i := uint64(0); i < n; i++ {
		d.tick(idleVector())
	}
}

// Sample decodes the output pins as of the last edge without clocking.
func (d *Driver) Sample() serial.Outputs {
	return serial.DecodeOutputs(d.last)
}

// ReadResult samples the output port on DrainCycles consecutive cycles,
// starting with the current one, and reassembles the result.
func (d *Driver) ReadResult() (Reading, error) {
	n := int(d.table.DrainCycles())
	samples := make([]serial.Outputs, 0, n)

	samples = append(samples, d.Sample())
	for len(samples) < n {
		d.tick(idleVector())
		samples = append(samples, d.Sample())
	}

	return assemble(d.width, samples)
}

// Execute sends op, waits until its result is on the output port and reads
// it back.
func (d *Driver) Execute(op emu.Operation) (Reading, error) {
	d.Send(op)
	d.Wait(waitAfterFrame(d.table))
	return d.ReadResult()
}

// waitAfterFrame is the idle time between the end of Send and the first
// sample, so that sampling starts SampleDelay edges after the last chunk.
func waitAfterFrame(t *latency.Table) uint64 {
	idle := t.Config().IdleCycles
	delay := t.SampleDelay()
	if delay <= idle {
		return 0
	}
	return delay - idle
}

// Replay applies vectors to dev one edge at a time and returns the output
// pins after every edge.
func Replay(dev Device, vectors []serial.InputPins) []serial.OutputPins {
	trace := make([]serial.OutputPins, 0, len(vectors))
	for _, v := range vectors {
		trace = append(trace, dev.Tick(v))
	}
	return trace
}
