// Package latency provides the cycle contract of the MAC tile: how long a
// frame takes to send, how long until its result is visible, and how many
// cycles a host must sample to read it back.
package latency

import (
	"github.com/sarchlab/macsim/timing/pipeline"
)

// ResultLatency is the number of rising edges from the edge that latches the
// last input chunk to the edge after which the result is on the output port:
// one edge per pipeline register, one for the MAC result register and one
// for the drain register.
const ResultLatency = pipeline.Depth + 2

// Table provides latency lookups for a configuration.
type Table struct {
	config *TimingConfig
}

// NewTable creates a new latency table with default timing values.
func NewTable() *Table {
	return &Table{
		config: DefaultTimingConfig(),
	}
}

// NewTableWithConfig creates a new latency table with custom configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{
		config: config,
	}
}

// FrameCycles returns the number of input cycles in one frame.
func (t *Table) FrameCycles() uint64 {
	return uint64(t.config.Width().FrameCycles())
}

// ResultLatency returns the cycles from the last input cycle to the first
// valid output cycle. It does not depend on operands or mode.
func (t *Table) ResultLatency() uint64 {
	return ResultLatency
}

// DrainCycles returns the number of consecutive samples that cover a full
// result.
func (t *Table) DrainCycles() uint64 {
	return uint64(t.config.Width().Chunks())
}

// IssueInterval returns the minimum cycles between the starts of two frames.
func (t *Table) IssueInterval() uint64 {
	return t.FrameCycles() + t.config.IdleCycles
}

// SampleDelay returns the cycles a host waits after the last input cycle
// before sampling the first chunk.
func (t *Table) SampleDelay() uint64 {
	return ResultLatency + t.config.SettleCycles
}

// Config returns the current timing configuration.
func (t *Table) Config() *TimingConfig {
	return t.config
}
