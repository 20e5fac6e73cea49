package main

import (
	"os"

	"github.com/grivetoutdoors/salestrainer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
