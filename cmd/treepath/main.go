// Package main is the main package for the treepath CLI.
package main

import (
	"os"

	"github.com/umwelt-studio/treepath/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
