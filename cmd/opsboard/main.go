// Package main is the entry point for the opsboard TUI.
package main

import (
	"fmt"
	"os"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "opsboard failed: %v\n", err)
		os.Exit(1)
	}
}
