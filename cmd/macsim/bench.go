package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/macsim/benchmarks"
)

var benchCmd = &cobra.Command{
	Use:   "bench [flags]",
	Short: "Run the built-in workloads and report cycles per operation.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		table, err := loadTable(cmd)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		config := benchmarks.DefaultConfig()
		config.Timing = table.Config()
		config.Verbose = getFlag(cmd, "verbose")

		harness := benchmarks.NewHarness(config)
		if getFlag(cmd, "quick") {
			harness.AddBenchmarks(benchmarks.GetCoreBenchmarks())
		} else {
			harness.AddBenchmarks(benchmarks.GetMicrobenchmarks())
		}
		results := harness.RunAll()

		switch format := getString(cmd, "format"); format {
		case "text":
			harness.PrintResults(results)
		case "csv":
			harness.PrintCSV(results)
		case "json":
			if err := harness.PrintJSON(results); err != nil {
				log.Error(err)
				os.Exit(1)
			}
		default:
			log.Errorf("unknown format %q", format)
			os.Exit(2)
		}

		for _, r := range results {
			if r.Error != "" || r.Mismatches > 0 {
				_, _ = fmt.Fprintf(os.Stderr, "%s failed\n", r.Name)
				os.Exit(1)
			}
		}
	},
}

func init() {
	benchCmd.Flags().String("format", "text", "output format: text, csv or json")
	benchCmd.Flags().Bool("quick", false, "run only the core workloads")
	benchCmd.Flags().Bool("verbose", false, "print progress while running")
	rootCmd.AddCommand(benchCmd)
}
