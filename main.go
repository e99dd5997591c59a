package main

import (
	"os"

	"github.com/hollisv/caresim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
