package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindProjectBinary locates the srt2txt binary, either from SRT2TXT_BINARY or
// under bin/ at the module root.
func FindProjectBinary() (string, error) {
	if p := os.Getenv("SRT2TXT_BINARY"); p != "" {
		return p, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			bin := filepath.Join(dir, "bin", "srt2txt")
			if _, err := os.Stat(bin); err != nil {
				return "", fmt.Errorf("srt2txt binary not found at %s, build it with go build -o bin/srt2txt .", bin)
			}
			return bin, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root from working directory")
		}
		dir = parent
	}
}
