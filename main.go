// uhexmgr - Command-line tool for combining and splitting Universal Hex
// firmware images.
//
// A Universal Hex carries the firmware for several board revisions in a
// single file. This tool builds one from per-board Intel Hex files,
// recovers the originals from it, and inspects hex files to report
// their shape.
package main

import (
	"fmt"
	"os"

	"github.com/daschewie/uhexmgr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
