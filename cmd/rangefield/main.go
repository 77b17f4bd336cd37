package main

import (
	"os"

	"github.com/uyouii/rangefield/cmd/rangefield/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
