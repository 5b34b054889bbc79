// Package main provides accuracy validation for the MAC tile.
// Ensures that the cycle-accurate tile agrees with the functional model on
// every port variant and on both replay paths.
package main

import (
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/macsim/emu"
	"github.com/sarchlab/macsim/host"
	"github.com/sarchlab/macsim/timing/core"
	"github.com/sarchlab/macsim/timing/latency"
	"github.com/sarchlab/macsim/timing/serial"
	"github.com/sarchlab/macsim/timing/tile"
)

// testFunctionalModel checks the model against hand-computed results.
func testFunctionalModel() bool {
	fmt.Println("Testing functional model...")

	testCases := []struct {
		ops  []emu.Operation
		want emu.Result
	}{
		{[]emu.Operation{{A: 5, B: 6, Clear: true}, {A: 3, B: 7}}, emu.Result{Value: 51}},
		{[]emu.Operation{{A: 4, B: 5, Clear: true}, {A: 0xFC, B: 0xFB, Signed: true}}, emu.Result{Value: 40}},
		{[]emu.Operation{{A: 255, B: 255, Clear: true}, {A: 200, B: 200}}, emu.Result{Value: 39489, Overflow: true}},
		{[]emu.Operation{
			{A: 127, B: 127, Clear: true, Signed: true},
			{A: 127, B: 127, Signed: true},
			{A: 100, B: 100, Signed: true},
		}, emu.Result{Value: 42258, Overflow: true}},
		{[]emu.Operation{{A: 200, B: 200, Clear: true, Signed: true}}, emu.Result{Value: 3136}},
	}

	for i, tc := range testCases {
		results := emu.NewMAC().Run(tc.ops)
		got := results[len(results)-1]
		if got != tc.want {
			fmt.Printf("FAIL case %d: want %+v, got %+v\n", i, tc.want, got)
			return false
		}
		fmt.Printf("ok   case %d: 0x%04X ov=%v\n", i, got.Value, got.Overflow)
	}

	return true
}

// testPortVariants drives a random stream through both port widths.
func testPortVariants() bool {
	fmt.Println("\nTesting port variants...")

	stim := host.DefaultStimulus()
	stim.EdgeRatio = 0.3
	ops := stim.Generate()
	want := emu.NewMAC().Run(ops)

	for _, width := range []serial.PortWidth{serial.Byte, serial.Nibble} {
		config := latency.DefaultTimingConfig()
		config.PortWidth = int(width)
		table := latency.NewTableWithConfig(config)

		driver := host.NewDriver(core.NewCore(core.WithPortWidth(width)), table)
		driver.Reset()

		for i, op := range ops {
			r, err := driver.Execute(op)
			if err != nil {
				fmt.Printf("FAIL %v port, op %d (%v): %v\n", width, i, op, err)
				return false
			}
			if r.Result() != want[i] {
				fmt.Printf("FAIL %v port, op %d (%v): want %+v, got %v\n", width, i, op, want[i], r)
				return false
			}
		}

		fmt.Printf("ok   %v port: %d operations in %d cycles\n", width, len(ops), driver.Cycles())
	}

	return true
}

// testEngineReplay checks that the akita-clocked tile and the directly
// clocked core produce identical pin traces.
func testEngineReplay() bool {
	fmt.Println("\nTesting engine replay...")

	stim := host.DefaultStimulus()
	stim.Count = 200
	table := latency.NewTable()

	script := host.NewScript(table)
	script.Reset()
	script.AddBurst(stim.Generate())

	engine := sim.NewSerialEngine()
	t := tile.MakeBuilder().WithEngine(engine).Build("Tile")
	t.Feed(script.Vectors())
	if err := engine.Run(); err != nil {
		fmt.Printf("FAIL engine: %v\n", err)
		return false
	}

	direct := host.Replay(core.NewCore(), script.Vectors())
	engineTrace := t.Trace()
	if len(direct) != len(engineTrace) {
		fmt.Printf("FAIL trace length: direct %d, engine %d\n", len(direct), len(engineTrace))
		return false
	}
	for i := range direct {
		if direct[i] != engineTrace[i] {
			fmt.Printf("FAIL cycle %d: direct %+v, engine %+v\n", i, direct[i], engineTrace[i])
			return false
		}
	}

	fmt.Printf("ok   %d cycles identical\n", len(direct))
	return true
}

func main() {
	fmt.Println("macsim Accuracy Validation")
	fmt.Println("==========================")

	allPassed := true

	if !testFunctionalModel() {
		allPassed = false
	}

	if !testPortVariants() {
		allPassed = false
	}

	if !testEngineReplay() {
		allPassed = false
	}

	fmt.Println("\n==========================")
	if allPassed {
		fmt.Println("ALL ACCURACY TESTS PASSED")
		os.Exit(0)
	} else {
		fmt.Println("ACCURACY TESTS FAILED")
		os.Exit(1)
	}
}
