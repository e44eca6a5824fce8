package main

import (
	"os"

	"github.com/aqualog/aqualog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
