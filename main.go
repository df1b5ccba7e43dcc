package main

import (
	"os"

	"github.com/ziadkadry99/abx-navigator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
