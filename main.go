package main

import (
	"os"

	"github.com/abhisek/pixverse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
