// This is the main entry point for the tinystore CLI.
// Build with: go build -o bin/tinystore ./cmd/tinystore
// Usage: tinystore <command> [options]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
