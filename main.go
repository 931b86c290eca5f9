package main

import (
	"os"

	"github.com/abhisek/qtime/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
