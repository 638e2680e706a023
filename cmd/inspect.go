package cmd

import (
	"fmt"
	"os"

	"github.com/daschewie/uhexmgr/pkg/ihex"
	"github.com/daschewie/uhexmgr/pkg/uhex"
	"github.com/spf13/cobra"
)

// inspectCmd represents the hex file inspection command
var inspectCmd = &cobra.Command{
	Use:   "inspect <hexfile>",
	Short: "Report the shape of a hex file",
	Long: `Report whether a hex file is a Universal Hex or a plain Intel HEX file.
For a Universal Hex the boards it carries are listed; for a plain Intel
HEX file the MakeCode-for-V1 signature is reported when present.

Example:
  uhexmgr inspect universal.hex`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		hexStr := string(data)

		if uhex.IsUniversalHex(hexStr) {
			fmt.Printf("%s: Universal Hex\n", args[0])
			hexes, err := uhex.SeparateUniversalHex(hexStr)
			if err != nil {
				return fmt.Errorf("failed to separate %s: %w", args[0], err)
			}
			for _, individual := range hexes {
				fmt.Printf("  board 0x%04X: %d records\n",
					individual.BoardID, len(ihex.SplitRecords(individual.Hex)))
			}
			return nil
		}

		fmt.Printf("%s: Intel HEX\n", args[0])
		if uhex.IsMakeCodeForV1Hex(hexStr) {
			fmt.Println("  MakeCode for V1 signature present")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
