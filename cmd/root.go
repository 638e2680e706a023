// Package cmd implements all CLI commands for uhexmgr
package cmd

import (
	"fmt"

	"github.com/daschewie/uhexmgr/pkg/config"
	"github.com/spf13/cobra"
)

var (
	// Global configuration instance
	cfg *config.Config

	// Global flags
	quietFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uhexmgr",
	Short: "uhexmgr - Combine and split Universal Hex firmware images",
	Long: `uhexmgr is a command-line tool for working with Universal Hex files,
the container format that carries Intel Hex firmware images for several
board revisions in a single file.

It combines per-board Intel Hex files into one Universal Hex, splits a
Universal Hex back into its per-board images, and inspects hex files to
report their shape.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress informational output")

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper function for printing output (respects quiet mode)
func printInfo(format string, args ...interface{}) {
	if !quietFlag {
		fmt.Printf(format, args...)
	}
}
