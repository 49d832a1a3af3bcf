package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/srt2txt/internal/display"
	"github.com/grovetools/srt2txt/internal/menu"
)

// runInteractive shows the menu until the user exits. Conversion failures
// are reported and the menu is shown again.
func runInteractive(conv *converter) error {
	for {
		final, err := tea.NewProgram(menu.New(conv.cfg.Output.Suffix, fileExists)).Run()
		if err != nil {
			return fmt.Errorf("failed to run menu: %w", err)
		}
		m, ok := final.(menu.Model)
		if !ok {
			return fmt.Errorf("unexpected menu model %T", final)
		}
		if m.Quit() || !m.Done() {
			return nil
		}

		req := m.Request()
		res, err := conv.convertFile(req.Input, req.Output, req.Mode)
		if err != nil {
			if isProcessingFailure(err) {
				display.PrintError(os.Stderr, "Conversion failed", err)
			} else {
				display.PrintError(os.Stderr, "Error reading file", err)
			}
			continue
		}
		if req.Output == "" {
			display.PrintResult("RESULT:", res)
		}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
