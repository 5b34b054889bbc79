package latency

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/macsim/timing/serial"
)

// TimingConfig holds the port and host-timing parameters of a MAC tile.
type TimingConfig struct {
	// PortWidth is the data width of the input and output ports in bits.
	// Supported values: 8 (two-cycle frames) and 4 (four-cycle frames).
	// Default: 8.
	PortWidth int `json:"port_width"`

	// ClockFreqMHz is the tile clock used when replaying on the akita engine.
	// Default: 100 MHz.
	ClockFreqMHz uint64 `json:"clock_freq_mhz"`

	// ResetCycles is how long the host holds reset low. Default: 5 cycles.
	ResetCycles uint64 `json:"reset_cycles"`

	// IdleCycles is the number of cycles the host keeps enable low between
	// frames. Must be at least 1. Default: 1 cycle.
	IdleCycles uint64 `json:"idle_cycles"`

	// SettleCycles is the extra wait the host inserts after the result
	// latency before sampling the output. Default: 2 cycles.
	SettleCycles uint64 `json:"settle_cycles"`
}

// DefaultTimingConfig returns the timing used by the reference testbenches.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		PortWidth:    int(serial.Byte),
		ClockFreqMHz: 100,
		ResetCycles:  5,
		IdleCycles:   1,
		SettleCycles: 2,
	}
}

// LoadConfig loads a TimingConfig from a JSON file.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config file: %w", err)
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse timing config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a TimingConfig to a JSON file.
func (c *TimingConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize timing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timing config file: %w", err)
	}

	return nil
}

// Validate checks that all values are usable.
func (c *TimingConfig) Validate() error {
	if _, err := serial.ParsePortWidth(c.PortWidth); err != nil {
		return fmt.Errorf("port_width: %w", err)
	}
	if c.ClockFreqMHz == 0 {
		return fmt.Errorf("clock_freq_mhz must be > 0")
	}
	if c.ResetCycles == 0 {
		return fmt.Errorf("reset_cycles must be > 0")
	}
	if c.IdleCycles == 0 {
		return fmt.Errorf("idle_cycles must be > 0")
	}
	return nil
}

// Width returns PortWidth as a serial.PortWidth. Call Validate first.
func (c *TimingConfig) Width() serial.PortWidth {
	return serial.PortWidth(c.PortWidth)
}

// Clone returns a deep copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	return &TimingConfig{
		PortWidth:    c.PortWidth,
		ClockFreqMHz: c.ClockFreqMHz,
		ResetCycles:  c.ResetCycles,
		IdleCycles:   c.IdleCycles,
		SettleCycles: c.SettleCycles,
	}
}
