// Package display renders conversion results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/core/tui/theme"
	"github.com/grovetools/srt2txt/internal/srt"
)

var ulogDisplay = grovelogging.NewUnifiedLogger("srt2txt.display")

const bannerWidth = 50

// Banner renders a title between two rules.
func Banner(title string) string {
	ruleStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)
	titleStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Green).Bold(true)

	rule := ruleStyle.Render(strings.Repeat("=", bannerWidth))
	return fmt.Sprintf("\n%s\n%s\n%s\n", rule, titleStyle.Render(title), rule)
}

// PrintResult writes converted text to stdout, under a banner when title is
// not empty.
func PrintResult(title string, res srt.Result) {
	if title != "" {
		ulogDisplay.Info("Result banner").
			Pretty(Banner(title)).
			PrettyOnly().
			Emit()
	}
	ulogDisplay.Info("Converted text").
		Field("blocks", res.Blocks).
		Field("cues", res.Cues).
		Field("dropped", len(res.Dropped)).
		Pretty(res.Text + "\n").
		PrettyOnly().
		Emit()
}

// PrintSaved reports that text was written to path.
func PrintSaved(path string, mode srt.Mode) {
	label := "Text"
	if mode == srt.Paragraphs {
		label = "Text with paragraphs"
	}
	ulogDisplay.Info("Text saved").
		Field("file", path).
		Field("mode", mode.String()).
		Pretty(fmt.Sprintf("%s saved to: %s\n", label, path)).
		PrettyOnly().
		Emit()
}

// PrintError reports a failure to w, normally os.Stderr, without aborting
// the program.
func PrintError(w io.Writer, msg string, err error) {
	errStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Red)
	fmt.Fprintln(w, errStyle.Render(fmt.Sprintf("%s: %v", msg, err)))
}
