package main

import (
	"os"

	"github.com/mpmtools/mpm/cmd"
	"github.com/mpmtools/mpm/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCodeFor(err))
	}
}
