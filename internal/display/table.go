package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/grovetools/srt2txt/internal/srt"
)

// PrintStatsTable prints cue statistics for a conversion in a formatted table.
func PrintStatsTable(file string, mode srt.Mode, res srt.Result, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "FILE\tMODE\tBLOCKS\tCUES\tDROPPED\tCHARS")
	dropped := fmt.Sprintf("%d", len(res.Dropped))
	if len(res.Dropped) > 0 {
		dropped += fmt.Sprintf(" %v", res.Dropped)
	}
	fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%d\n",
		file, mode, res.Blocks, res.Cues, dropped, len([]rune(res.Text)))
	w.Flush()
}
