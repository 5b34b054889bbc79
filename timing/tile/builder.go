package tile

import (
	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/macsim/timing/core"
	"github.com/sarchlab/macsim/timing/serial"
)

// Builder can build tiles.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	width  serial.PortWidth
	logger *log.Entry
}

// MakeBuilder creates a builder with an 8-bit port clocked at 100 MHz.
func MakeBuilder() Builder {
	return Builder{
		freq:  100 * sim.MHz,
		width: serial.Byte,
	}
}

// WithEngine sets the engine that schedules the tile's ticks.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the tile clock.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithPortWidth selects the byte or nibble port variant.
func (b Builder) WithPortWidth(width serial.PortWidth) Builder {
	b.width = width
	return b
}

// WithLogger sets the logger shared by the tile and its core.
func (b Builder) WithLogger(logger *log.Entry) Builder {
	b.logger = logger
	return b
}

// Build creates a tile with the given name.
func (b Builder) Build(name string) *Tile {
	logger := b.logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	logger = logger.WithField("tile", name)

	t := &Tile{
		core: core.NewCore(
			core.WithPortWidth(b.width),
			core.WithLogger(logger.WithField("component", "core")),
		),
		log: logger,
	}
	t.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, t)

	return t
}
