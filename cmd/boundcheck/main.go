package main

import (
	"os"
)

// main function - entrypoint to the boundcheck CLI
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
