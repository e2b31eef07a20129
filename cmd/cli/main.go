// Package main is the entry point for the visia CLI.
package main

import (
	"os"

	"visia/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
