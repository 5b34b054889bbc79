package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/macsim/emu"
	"github.com/sarchlab/macsim/host"
	"github.com/sarchlab/macsim/timing/core"
	"github.com/sarchlab/macsim/timing/latency"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "Cross-check the tile against the functional model with random stimulus.",
	Long: `Drive the tile with a seeded random stream of operations through its pins and
compare every result and overflow flag with the functional MAC model.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		table, err := loadTable(cmd)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		stim := host.DefaultStimulus()
		stim.Seed = int64(getInt(cmd, "seed"))
		stim.Count = getInt(cmd, "iter")
		stim.ClearRatio = getFloat(cmd, "clear-ratio")
		stim.SignedRatio = getFloat(cmd, "signed-ratio")
		stim.EdgeRatio = getFloat(cmd, "edge-ratio")

		log.Infof("checking %d operations (seed=%d, port=%v)", stim.Count, stim.Seed, table.Config().Width())

		mismatches, stats, err := check(table, stim.Generate())
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		fmt.Printf("operations: %d  cycles: %d  overflows: %d  mismatches: %d\n",
			stats.Operations, stats.Cycles, stats.Overflows, mismatches)
		if mismatches > 0 {
			os.Exit(1)
		}
	},
}

// check drives ops through a core one at a time and counts results that
// differ from the functional model.
func check(table *latency.Table, ops []emu.Operation) (int, core.Stats, error) {
	c := core.NewCore(
		core.WithPortWidth(table.Config().Width()),
		core.WithLogger(log.WithField("cmd", "check")),
	)
	driver := host.NewDriver(c, table)
	driver.Reset()

	model := emu.NewMAC()
	mismatches := 0

	for i, op := range ops {
		reading, err := driver.Execute(op)
		if err != nil {
			return mismatches, c.Stats(), fmt.Errorf("operation %d (%v): %w", i, op, err)
		}

		want := model.Step(op)
		if reading.Result() != want {
			mismatches++
			log.WithFields(log.Fields{
				"index": i,
				"op":    op.String(),
				"want":  fmt.Sprintf("0x%04X ov=%v", want.Value, want.Overflow),
				"got":   reading.String(),
			}).Error("result mismatch")
		}
	}

	return mismatches, c.Stats(), nil
}

func init() {
	defaults := host.DefaultStimulus()
	checkCmd.Flags().Int("seed", int(defaults.Seed), "random seed")
	checkCmd.Flags().Int("iter", defaults.Count, "number of operations")
	checkCmd.Flags().Float64("clear-ratio", defaults.ClearRatio, "probability of a clear operation")
	checkCmd.Flags().Float64("signed-ratio", defaults.SignedRatio, "probability of signed mode")
	checkCmd.Flags().Float64("edge-ratio", defaults.EdgeRatio, "probability of drawing edge-case operands")
	rootCmd.AddCommand(checkCmd)
}
