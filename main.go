// Command imgcrypt scrambles and restores image pixels with reversible transforms.
package main

import (
	"fmt"
	"os"

	"github.com/dino50687/imgcrypt/internal/commands"
)

// Global variable for CI stamping.
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		os.Exit(1)
	}
}
