// Package benchmarks provides throughput and correctness workloads for the
// MAC tile.
package benchmarks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sarchlab/macsim/emu"
	"github.com/sarchlab/macsim/host"
	"github.com/sarchlab/macsim/timing/core"
	"github.com/sarchlab/macsim/timing/latency"
	"github.com/sarchlab/macsim/timing/serial"
)

// BenchmarkResult holds the results for a single workload run.
type BenchmarkResult struct {
	// Name identifies the workload
	Name string `json:"name"`

	// Description explains what the workload measures
	Description string `json:"description"`

	// Port is the port width the tile was built with
	Port string `json:"port"`

	// Streamed is true when frames were issued back to back
	Streamed bool `json:"streamed"`

	// SimulatedCycles is the total number of edges applied to the tile
	SimulatedCycles uint64 `json:"simulated_cycles"`

	// Operations is the number of MAC operations retired
	Operations uint64 `json:"operations"`

	// CyclesPerOp is simulated cycles per retired operation
	CyclesPerOp float64 `json:"cycles_per_op"`

	// Overflows is the number of retired operations that set overflow
	Overflows uint64 `json:"overflows"`

	// Clears is the number of retired operations that restarted the
	// accumulator
	Clears uint64 `json:"clears"`

	// Aborted is the number of frames the tile discarded
	Aborted uint64 `json:"aborted"`

	// HeldCycles is the number of cycles enable stayed high past a frame
	HeldCycles uint64 `json:"held_cycles"`

	// Mismatches counts results that differ from the functional model
	Mismatches int `json:"mismatches"`

	// Final is the last accumulator value read back
	Final uint16 `json:"final"`

	// Error is set when the output trace could not be decoded
	Error string `json:"error,omitempty"`

	// WallTime is the actual time taken to run the simulation
	WallTime time.Duration `json:"wall_time_ns"`
}

// Benchmark defines a single workload.
type Benchmark struct {
	// Name identifies the workload
	Name string

	// Description explains what the workload measures
	Description string

	// Ops is the operation stream sent to the tile
	Ops []emu.Operation

	// Streamed issues frames at the minimum issue interval instead of
	// waiting for each result
	Streamed bool
}

// HarnessConfig configures the benchmark harness.
type HarnessConfig struct {
	// Timing is the cycle contract used to build the tile and the script
	Timing *latency.TimingConfig

	// Output is where to write results (default: os.Stdout)
	Output io.Writer

	// Verbose enables per-workload progress output
	Verbose bool
}

// DefaultConfig returns a default harness configuration.
func DefaultConfig() HarnessConfig {
	return HarnessConfig{
		Timing:  latency.DefaultTimingConfig(),
		Output:  os.Stdout,
		Verbose: false,
	}
}

// Harness runs workloads and reports results.
type Harness struct {
	config     HarnessConfig
	benchmarks []Benchmark
}

// NewHarness creates a new benchmark harness.
func NewHarness(config HarnessConfig) *Harness {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Timing == nil {
		config.Timing = latency.DefaultTimingConfig()
	}
	return &Harness{
		config:     config,
		benchmarks: []Benchmark{},
	}
}

// AddBenchmark adds a workload to the harness.
func (h *Harness) AddBenchmark(b Benchmark) {
	h.benchmarks = append(h.benchmarks, b)
}

// AddBenchmarks adds multiple workloads to the harness.
func (h *Harness) AddBenchmarks(benchmarks []Benchmark) {
	h.benchmarks = append(h.benchmarks, benchmarks...)
}

// RunAll executes all workloads and returns results.
func (h *Harness) RunAll() []BenchmarkResult {
	results := make([]BenchmarkResult, 0, len(h.benchmarks))

	for _, bench := range h.benchmarks {
		result := h.runBenchmark(bench)
		if h.config.Verbose {
			_, _ = fmt.Fprintf(h.config.Output, "ran %s: %d cycles\n", result.Name, result.SimulatedCycles)
		}
		results = append(results, result)
	}

	return results
}

func (h *Harness) runBenchmark(bench Benchmark) BenchmarkResult {
	table := latency.NewTableWithConfig(h.config.Timing)
	width := h.config.Timing.Width()

	script := host.NewScript(table)
	script.Reset()
	if bench.Streamed {
		script.AddBurst(bench.Ops)
	} else {
		for _, op := range bench.Ops {
			script.Add(op)
		}
	}

	c := core.NewCore(core.WithPortWidth(width))

	start := time.Now()
	trace := host.Replay(c, script.Vectors())
	wallTime := time.Since(start)

	stats := c.Stats()
	result := BenchmarkResult{
		Name:            bench.Name,
		Description:     bench.Description,
		Port:            width.String(),
		Streamed:        bench.Streamed,
		SimulatedCycles: stats.Cycles,
		Operations:      stats.Operations,
		Overflows:       stats.Overflows,
		Clears:          stats.Clears,
		Aborted:         stats.Aborted,
		HeldCycles:      stats.Held,
		WallTime:        wallTime,
	}
	if stats.Operations > 0 {
		result.CyclesPerOp = float64(stats.Cycles) / float64(stats.Operations)
	}

	readings, err := script.Decode(trace)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Mismatches = countMismatches(bench.Ops, readings)
	if n := len(readings); n > 0 {
		result.Final = readings[n-1].Value
	}

	return result
}

func countMismatches(ops []emu.Operation, readings []host.Reading) int {
	model := emu.NewMAC()
	mismatches := 0
	for i, op := range ops {
		if readings[i].Result() != model.Step(op) {
			mismatches++
		}
	}
	return mismatches
}

// PrintResults outputs results in a human-readable format.
func (h *Harness) PrintResults(results []BenchmarkResult) {
	_, _ = fmt.Fprintln(h.config.Output, "=== macsim Workload Results ===")
	_, _ = fmt.Fprintln(h.config.Output, "")

	for _, r := range results {
		_, _ = fmt.Fprintf(h.config.Output, "Benchmark: %s\n", r.Name)
		_, _ = fmt.Fprintf(h.config.Output, "  Description: %s\n", r.Description)
		_, _ = fmt.Fprintf(h.config.Output, "  Port: %s  Streamed: %v\n", r.Port, r.Streamed)
		_, _ = fmt.Fprintln(h.config.Output, "  --- Timing ---")
		_, _ = fmt.Fprintf(h.config.Output, "  Simulated Cycles: %d\n", r.SimulatedCycles)
		_, _ = fmt.Fprintf(h.config.Output, "  Operations:       %d\n", r.Operations)
		_, _ = fmt.Fprintf(h.config.Output, "  Cycles/Op:        %.3f\n", r.CyclesPerOp)
		_, _ = fmt.Fprintln(h.config.Output, "  --- Results ---")
		_, _ = fmt.Fprintf(h.config.Output, "  Overflows:        %d\n", r.Overflows)
		_, _ = fmt.Fprintf(h.config.Output, "  Clears:           %d\n", r.Clears)
		_, _ = fmt.Fprintf(h.config.Output, "  Final:            0x%04X\n", r.Final)
		_, _ = fmt.Fprintf(h.config.Output, "  Mismatches:       %d\n", r.Mismatches)
		if r.Aborted > 0 {
			_, _ = fmt.Fprintf(h.config.Output, "  Aborted Frames:   %d\n", r.Aborted)
		}
		if r.HeldCycles > 0 {
			_, _ = fmt.Fprintf(h.config.Output, "  Held Cycles:      %d\n", r.HeldCycles)
		}
		if r.Error != "" {
			_, _ = fmt.Fprintf(h.config.Output, "  Error: %s\n", r.Error)
		}
		_, _ = fmt.Fprintf(h.config.Output, "  Wall Time: %v\n", r.WallTime)
		_, _ = fmt.Fprintln(h.config.Output, "")
	}
}

// PrintCSV outputs results in CSV format for easy comparison.
func (h *Harness) PrintCSV(results []BenchmarkResult) {
	_, _ = fmt.Fprintln(h.config.Output,
		"name,port,streamed,cycles,operations,cycles_per_op,overflows,aborted,mismatches,final,clears,held_cycles")

	for _, r := range results {
		_, _ = fmt.Fprintf(h.config.Output, "%s,%s,%v,%d,%d,%.3f,%d,%d,%d,%d,%d,%d\n",
			r.Name,
			r.Port,
			r.Streamed,
			r.SimulatedCycles,
			r.Operations,
			r.CyclesPerOp,
			r.Overflows,
			r.Aborted,
			r.Mismatches,
			r.Final,
			r.Clears,
			r.HeldCycles,
		)
	}
}

// BenchmarkReport is the complete output format for benchmark results.
type BenchmarkReport struct {
	// Metadata about the benchmark run
	Metadata ReportMetadata `json:"metadata"`

	// Results is the list of individual benchmark results
	Results []BenchmarkResult `json:"results"`

	// Summary contains aggregate statistics
	Summary ReportSummary `json:"summary"`
}

// ReportMetadata contains information about the benchmark run.
type ReportMetadata struct {
	// Timestamp when the benchmark was run
	Timestamp string `json:"timestamp"`

	// Timing is the cycle contract the tile was run with
	Timing latency.TimingConfig `json:"timing"`

	// ResultLatency is the fixed input-to-output latency in cycles
	ResultLatency uint64 `json:"result_latency"`
}

// ReportSummary contains aggregate statistics across all workloads.
type ReportSummary struct {
	TotalBenchmarks int           `json:"total_benchmarks"`
	TotalCycles     uint64        `json:"total_cycles"`
	TotalOperations uint64        `json:"total_operations"`
	AverageCycles   float64       `json:"average_cycles_per_op"`
	TotalMismatches int           `json:"total_mismatches"`
	TotalWallTime   time.Duration `json:"total_wall_time_ns"`
}

// PrintJSON outputs results in JSON format for automated comparison.
func (h *Harness) PrintJSON(results []BenchmarkResult) error {
	var summary ReportSummary
	summary.TotalBenchmarks = len(results)
	for _, r := range results {
		summary.TotalCycles += r.SimulatedCycles
		summary.TotalOperations += r.Operations
		summary.TotalMismatches += r.Mismatches
		summary.TotalWallTime += r.WallTime
	}
	if summary.TotalOperations > 0 {
		summary.AverageCycles = float64(summary.TotalCycles) / float64(summary.TotalOperations)
	}

	report := BenchmarkReport{
		Metadata: ReportMetadata{
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			Timing:        *h.config.Timing,
			ResultLatency: latency.ResultLatency,
		},
		Results: results,
		Summary: summary,
	}

	encoder := json.NewEncoder(h.config.Output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// Nibble returns a copy of config that uses the 4-bit port.
func Nibble(config HarnessConfig) HarnessConfig {
	timing := config.Timing.Clone()
	timing.PortWidth = int(serial.Nibble)
	config.Timing = timing
	return config
}
