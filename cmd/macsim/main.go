// Package main provides the entry point for macsim.
// macsim is a cycle-accurate simulator of a serial-loaded MAC tile.
package main

func main() {
	Execute()
}
