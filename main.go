package main

import (
	"os"

	"github.com/abhisek/aimarketcap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
