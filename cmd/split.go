package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/daschewie/uhexmgr/pkg/uhex"
	"github.com/spf13/cobra"
)

var splitOutputDir string

// splitCmd represents the Universal Hex decomposition command
var splitCmd = &cobra.Command{
	Use:   "split <universalhexfile>",
	Short: "Split a Universal Hex into per-board Intel HEX files",
	Long: `Split a Universal Hex file back into the Intel HEX file for each board
it carries. One <name>-<boardid>.hex file is written per board.

Example:
  uhexmgr split universal.hex`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		hexes, err := uhex.SeparateUniversalHex(string(data))
		if err != nil {
			return err
		}

		outputDir := splitOutputDir
		if outputDir == "" {
			outputDir = cfg.OutputDir
		}
		base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		for _, individual := range hexes {
			path := filepath.Join(outputDir, fmt.Sprintf("%s-%04X.hex", base, individual.BoardID))
			if err := os.WriteFile(path, []byte(individual.Hex), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			printInfo("Wrote %s (board 0x%04X, %d bytes)\n", path, individual.BoardID, len(individual.Hex))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVar(&splitOutputDir, "output-dir", "", "Directory to write the per-board files to (defaults to the configured directory)")
}
