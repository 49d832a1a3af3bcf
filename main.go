package main

import (
	"os"

	"github.com/grovetools/srt2txt/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
