package main

import (
	"os"

	"github.com/maison-edition/edition/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
