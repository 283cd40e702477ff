// Package main is the entry point for the dpswctl switch control tool.
package main

import (
	"fmt"
	"os"

	"firestige.xyz/dpsw/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
