package main

import (
	"fmt"
	"os"

	"github.com/roach88/adventofcode/internal/cli"
)

// main runs the root command and maps its error to an exit code.
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
