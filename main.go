package main

import (
	"os"

	"github.com/N1KH1LT0X1N/StudyFlux/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
