package main

import (
	"fmt"
	"os"

	"github.com/tmuir/todomark/internal/cli"
	"github.com/tmuir/todomark/internal/logging"
)

func main() {
	// Logging failure shouldn't block the import itself
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}

	if err := cli.RootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitError)
	}
}
