// Package main is the entry point for the scribe application.
package main

import (
	"fmt"
	"os"

	"github.com/jwils/scribe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
