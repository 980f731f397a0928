package main

import (
	"os"

	"github.com/temirov/oops/cmd/cli"
)

// main executes the oops command-line application.
func main() {
	os.Exit(cli.Run())
}
