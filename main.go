package main

import (
	"os"

	"github.com/transitwatch/grtschedule/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
