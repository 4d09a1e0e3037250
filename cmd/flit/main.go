// Command flit renders widget scenes to PNG files or the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/flit/cmd/flit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}
