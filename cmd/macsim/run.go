package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/macsim/emu"
	"github.com/sarchlab/macsim/host"
	"github.com/sarchlab/macsim/timing/core"
	"github.com/sarchlab/macsim/timing/latency"
	"github.com/sarchlab/macsim/timing/tile"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] ops_file",
	Short: "Replay a list of MAC operations on the tile.",
	Long: `Replay a JSON list of operations through the pin interface of the tile,
clocked by the akita serial engine, and print the result of each operation.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table, err := loadTable(cmd)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		ops, err := host.LoadOperations(args[0])
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		rep, err := replay(table, ops)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		for i, r := range rep.Readings {
			fmt.Printf("%4d  %-18v -> %v\n", i, ops[i], r)
		}
		fmt.Printf("\ncycles: %d  operations: %d  overflows: %d\n",
			rep.Stats.Cycles, rep.Stats.Operations, rep.Stats.Overflows)

		if getFlag(cmd, "verify") {
			if n := verify(ops, rep.Readings); n > 0 {
				log.Errorf("%d of %d results differ from the functional model", n, len(ops))
				os.Exit(1)
			}
			fmt.Println("all results match the functional model")
		}
	},
}

// replayReport is the outcome of one replay.
type replayReport struct {
	Readings []host.Reading
	Stats    core.Stats
	Time     sim.VTimeInSec
}

// replay runs ops through a tile on a fresh akita serial engine.
func replay(table *latency.Table, ops []emu.Operation) (*replayReport, error) {
	config := table.Config()
	engine := sim.NewSerialEngine()

	t := tile.MakeBuilder().
		WithEngine(engine).
		WithFreq(sim.Freq(config.ClockFreqMHz) * sim.MHz).
		WithPortWidth(config.Width()).
		WithLogger(log.WithField("cmd", "run")).
		Build("MACTile")

	script := host.NewScript(table)
	script.Reset()
	for _, op := range ops {
		script.Add(op)
	}

	t.Feed(script.Vectors())
	if err := engine.Run(); err != nil {
		return nil, fmt.Errorf("engine failed: %w", err)
	}

	readings, err := script.Decode(t.Trace())
	if err != nil {
		return nil, err
	}

	return &replayReport{
		Readings: readings,
		Stats:    t.Core().Stats(),
		Time:     engine.CurrentTime(),
	}, nil
}

// verify compares readings with the functional model and logs every
// mismatch. It returns the number of mismatches.
func verify(ops []emu.Operation, readings []host.Reading) int {
	model := emu.NewMAC()
	mismatches := 0

	for i, op := range ops {
		want := model.Step(op)
		got := readings[i].Result()
		if got != want {
			mismatches++
			log.WithFields(log.Fields{
				"index":         i,
				"op":            op.String(),
				"want":          want.Value,
				"got":           got.Value,
				"want_overflow": want.Overflow,
				"got_overflow":  got.Overflow,
			}).Error("result mismatch")
		}
	}

	return mismatches
}

func init() {
	runCmd.Flags().Bool("verify", false, "check every result against the functional model")
	rootCmd.AddCommand(runCmd)
}
