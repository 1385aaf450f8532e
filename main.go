package main

import (
	"os"

	"github.com/prompted365/scamdetect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
