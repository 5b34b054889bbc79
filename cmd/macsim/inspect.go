package main

import (
	"os"

	"github.com/k0kubun/pp/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sarchlab/macsim/host"
	"github.com/sarchlab/macsim/timing/latency"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] [ops_file]",
	Short: "Show the effective timing contract and, optionally, tile statistics.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table, err := loadTable(cmd)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		printer := pp.New()
		printer.SetColoringEnabled(term.IsTerminal(int(os.Stdout.Fd())))
		printer.Println(describe(table))

		if len(args) == 0 {
			return
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
		printer.Println(rep.Stats)
	},
}

// contract summarises the cycle contract a host must follow.
type contract struct {
	Config        latency.TimingConfig
	FrameCycles   uint64
	IssueInterval uint64
	ResultLatency uint64
	SampleDelay   uint64
	DrainCycles   uint64
}

func describe(table *latency.Table) contract {
	return contract{
		Config:        *table.Config(),
		FrameCycles:   table.FrameCycles(),
		IssueInterval: table.IssueInterval(),
		ResultLatency: table.ResultLatency(),
		SampleDelay:   table.SampleDelay(),
		DrainCycles:   table.DrainCycles(),
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
