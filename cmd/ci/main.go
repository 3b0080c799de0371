package main

import (
	"context"
	"os"

	"github.com/mpmtools/mpm/internal/ci"
)

func main() {
	runner := ci.NewRunner(os.Stdout, ci.DefaultSteps())
	exitCode := runner.Run(context.Background())
	os.Exit(exitCode)
}
