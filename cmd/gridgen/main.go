// SPDX-License-Identifier: MIT

// Command gridgen generates tile maps with the tilegrid rewrite engine and
// prints them to stdout.
//
//	gridgen tilemap --width 80 --height 24 --seed 7
//	gridgen walls --density 0.2 --color always
//	gridgen variants '##' '#.'
//
// Settings come from defaults, then --config (YAML), then GRIDGEN_*
// environment variables, then flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridgen:", err)
		os.Exit(1)
	}
}
