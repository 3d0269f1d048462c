package main

import (
	"fmt"
	"os"
)

// Entry point for the buttond daemon.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "buttond: %v\n", err)
		os.Exit(1)
	}
}
