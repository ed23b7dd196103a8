// Package main provides the entry point for the dupfind CLI.
package main

import (
	"os"

	"github.com/rgeddes/dupfind/pkg/dupfind/logging"
)

func main() {
	err := Execute()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}
