// Validate tick cost - measures allocations and edges per second of the core
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sarchlab/macsim/timing/core"
	"github.com/sarchlab/macsim/timing/serial"
)

func main() {
	c := core.NewCore()

	// One frame followed by an idle edge, repeated.
	vectors := []serial.InputPins{
		serial.Inputs{Data: 0x7F, Control: serial.Control{Enable: true, Signed: true}}.Encode(),
		serial.Inputs{Data: 0x81, Control: serial.Control{Enable: true, Signed: true}}.Encode(),
		{RstN: true},
	}

	// Warm up
	for i := 0; i < 1000; i++ {
		c.Tick(vectors[i%len(vectors)])
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 300000

	for i := 0; i < iterations; i++ {
		c.Tick(vectors[i%len(vectors)])
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc
	stats := c.Stats()

	fmt.Printf("Tick Validation Results:\n")
	fmt.Printf("========================\n")
	fmt.Printf("Edges simulated: %d\n", iterations)
	fmt.Printf("Operations retired: %d\n", stats.Operations)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Edges per second: %.0f\n", float64(iterations)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per edge: %.3f\n", float64(allocations)/float64(iterations))

	if allocations == 0 {
		fmt.Printf("\nSUCCESS: zero allocations on the tick path\n")
	} else if float64(allocations)/float64(iterations) < 0.1 {
		fmt.Printf("\nGOOD: low allocation rate (< 0.1 per edge)\n")
	} else {
		fmt.Printf("\nWARNING: high allocation rate detected\n")
	}
}
