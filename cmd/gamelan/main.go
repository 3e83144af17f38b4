package main

import (
	"os"

	"github.com/bnema/gamelan-harmony/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
