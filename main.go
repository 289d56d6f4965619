package main

import (
	"os"

	"github.com/junhao/radmaster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
