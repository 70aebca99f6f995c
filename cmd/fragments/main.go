package main

import (
	"os"

	"cupid_fragments/internal/cli"
)

func main() {
	if err := cli.NewApp(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
