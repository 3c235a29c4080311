package main

import (
	"fmt"
	"os"
)

// ============================================================================
// NYAYA CLI: crime dashboards, IPC lookup and case scoring
// ============================================================================

const version = "0.3.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
