// Copyright (c) 2026 Gridpick Team
// Gridpick - interactive terminal grid selector
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Gridpick.
//
// Usage:
//
//	go run . [flags]
//	./gridpick [flags]
//
// This launches the Gridpick TUI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/gridpick/gridpick/ui/cli"
)

// main is the entrypoint for the Gridpick CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("Gridpick error: %v", err)
		os.Exit(1)
	}
}
