// Package main is the entry point for the radar2mdx CLI.
package main

import (
	"os"

	"github.com/thoreinstein/radar2mdx/cmd/radar2mdx/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.HandleError(os.Stderr, err))
	}
}
