// Package main is the entry point for anansi.
package main

import (
	"fmt"
	"os"

	"github.com/anansi-cli/anansi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
