package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/macsim/timing/latency"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "macsim",
	Short: "A cycle-accurate simulator of a serial MAC tile.",
	Long: `A cycle-accurate simulator of a serial-loaded, pipelined
multiply-accumulate tile with a narrow 8-bit or 4-bit pin interface.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "debug") {
			log.SetLevel(log.DebugLevel)
		}
		if getFlag(cmd, "trace") {
			log.SetLevel(log.TraceLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("macsim ")
			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			return
		}
		fmt.Println(cmd.UsageString())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().String("config", "", "path to timing configuration JSON file")
	rootCmd.PersistentFlags().Int("port", 0, "port width in bits (8 or 4), overrides the config file")
	rootCmd.PersistentFlags().Bool("debug", false, "log frame and retirement events")
	rootCmd.PersistentFlags().Bool("trace", false, "log every clock edge")
}

// getFlag gets an expected boolean flag, or exits with an error.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// getInt gets an expected int flag, or exits with an error.
func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// getFloat gets an expected float flag, or exits with an error.
func getFloat(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// getString gets an expected string flag, or exits with an error.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// loadTable builds the latency table from --config and --port.
func loadTable(cmd *cobra.Command) (*latency.Table, error) {
	config := latency.DefaultTimingConfig()

	if path := getString(cmd, "config"); path != "" {
		var err error
		if config, err = latency.LoadConfig(path); err != nil {
			return nil, err
		}
	}

	if port := getInt(cmd, "port"); port != 0 {
		config.PortWidth = port
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timing config: %w", err)
	}

	return latency.NewTableWithConfig(config), nil
}
