package main

import (
	"os"

	"github.com/tickwork/stopwatch/cmd/swatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
