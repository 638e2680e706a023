package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/daschewie/uhexmgr/pkg/uhex"
	"github.com/spf13/cobra"
)

var (
	joinBlocks bool
	joinOutput string
)

// joinCmd represents the Universal Hex composition command
var joinCmd = &cobra.Command{
	Use:   "join <boardid:hexfile> [boardid:hexfile ...]",
	Short: "Combine per-board Intel HEX files into a Universal Hex",
	Long: `Combine one or more Intel HEX files into a single Universal Hex file.
Each argument pairs a board ID (hex, e.g. 9900) with the Intel HEX file
holding that board's firmware image.

Example:
  uhexmgr join --output universal.hex 9900:firmware-v1.hex 9903:firmware-v2.hex`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hexes := make([]uhex.IndividualHex, 0, len(args))
		for _, arg := range args {
			boardID, path, err := parseBoardArg(arg)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			hexes = append(hexes, uhex.IndividualHex{BoardID: boardID, Hex: string(data)})
		}

		// The flag wins over the configured default layout
		blocks := joinBlocks
		if !cmd.Flags().Changed("blocks") {
			blocks = cfg.Blocks()
		}

		universalHex, err := uhex.CreateUniversalHex(hexes, blocks)
		if err != nil {
			return err
		}

		output := joinOutput
		if output == "" {
			output = cfg.Output
		}
		if err := os.WriteFile(output, []byte(universalHex), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}

		printInfo("Wrote %s (%d boards, %d bytes)\n", output, len(hexes), len(universalHex))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(joinCmd)

	joinCmd.Flags().BoolVar(&joinBlocks, "blocks", false, "Use the 512-character block layout instead of contiguous sections")
	joinCmd.Flags().StringVarP(&joinOutput, "output", "o", "", "Output file (defaults to the configured output)")
}

// parseBoardArg splits a boardid:hexfile argument. Board IDs are given
// in hex, e.g. 9900:firmware.hex.
func parseBoardArg(arg string) (uint16, string, error) {
	idx := strings.Index(arg, ":")
	if idx <= 0 || idx == len(arg)-1 {
		return 0, "", fmt.Errorf("invalid argument %q (want boardid:hexfile)", arg)
	}
	boardID, err := strconv.ParseUint(arg[:idx], 16, 16)
	if err != nil {
		return 0, "", fmt.Errorf("invalid board ID %q: %w", arg[:idx], err)
	}
	return uint16(boardID), arg[idx+1:], nil
}
