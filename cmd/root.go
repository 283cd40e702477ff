// Package cmd implements the dpswctl CLI commands using cobra framework.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/dpsw/internal/config"
	"firestige.xyz/dpsw/internal/log"
)

var (
	// Global flags
	configFile string
	objectID   int32
	dumpWire   bool

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dpswctl",
	Short: "dpswctl - DPAA2 L2 switch (DPSW) control tool",
	Long: `dpswctl encodes DPSW control operations into Management Complex command
buffers and submits them through a configurable portal backend.

The echo backend completes every command in place, which makes the tool a
wire-format workbench: combined with --dump it shows the exact 64-byte
buffers an operation produces. The replay backend serves canned responses
from a YAML fixture, useful for exercising decode paths offline.`,
	Version:           "0.1.0",
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}
	log.Init(&cfg.Log)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path")
	rootCmd.PersistentFlags().Int32Var(&objectID, "id", 0,
		"DPSW object id (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&dumpWire, "dump", false,
		"hex-dump every submitted command buffer")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(attrCmd)
	rootCmd.AddCommand(ifCmd)
	rootCmd.AddCommand(vlanCmd)
	rootCmd.AddCommand(fdbCmd)
	rootCmd.AddCommand(aclCmd)
}

// exitWithError prints error message and exits with code 1
func exitWithError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(1)
}
