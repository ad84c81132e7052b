package main

import (
	"os"

	"github.com/go-duster/duster/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
