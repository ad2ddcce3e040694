package main

import (
	"os"

	"github.com/msto63/mFIN/cmd/mfin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
