// Package main provides the entry point for macsim.
// macsim is a cycle-accurate model of a serial-loaded multiply-accumulate tile.
//
// For the full CLI, use: go run ./cmd/macsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("macsim - Serial MAC Tile Simulator")
	fmt.Println("Built on Akita simulation framework")
	fmt.Println("")
	fmt.Println("Usage: macsim <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  run <ops.json>  Replay operations through the tile pins")
	fmt.Println("  check           Cross-check against the functional model")
	fmt.Println("  inspect         Show the timing contract")
	fmt.Println("  bench           Run the built-in workloads")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/macsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/macsim' instead.")
	}
}
