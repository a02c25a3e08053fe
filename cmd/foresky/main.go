// Package main provides the entry point for the ForeSky CLI.
package main

import (
	"os"

	"github.com/foreskyapp/foresky-cli/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
