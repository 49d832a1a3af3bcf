package cmd

import (
	"encoding/json"
	"fmt"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/srt2txt/internal/srt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var ulogCues = grovelogging.NewUnifiedLogger("srt2txt.cmd.cues")

// cueEntry is one cue block that produced text.
type cueEntry struct {
	Block int    `json:"block"`
	Text  string `json:"text"`
}

func newCuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cues <file.srt>",
		Short: "List the text of each subtitle cue",
		Long:  "List the text of each subtitle cue with its block number, after sequence numbers and timestamps are removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbose(cmd)
			input := args[0]
			last, _ := cmd.Flags().GetInt("last")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			cfg := loadConfig(configFlag(cmd))
			conv, err := newConverter(cfg, logrus.WithField("app", "srt2txt"))
			if err != nil {
				return err
			}
			content, err := conv.reader.Read(input)
			if err != nil {
				return err
			}

			var cues []cueEntry
			for i, block := range srt.ExtractBlocks(content) {
				if text := srt.CueText(block); text != "" {
					cues = append(cues, cueEntry{Block: i + 1, Text: text})
				}
			}

			start := 0
			if last > 0 && len(cues) > last {
				start = len(cues) - last
			}
			cues = cues[start:]

			if jsonOutput {
				data, err := json.MarshalIndent(cues, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal cues: %w", err)
				}
				ulogCues.Info("Cue list").
					Field("file", input).
					Field("cue_count", len(cues)).
					Pretty(string(data) + "\n").
					PrettyOnly().
					Emit()
				return nil
			}

			ulogCues.Info("Cue list").
				Field("file", input).
				Field("cue_count", len(cues)).
				Pretty(fmt.Sprintf("Found %d cues in %s:\n\n", len(cues), input)).
				PrettyOnly().
				Emit()
			for _, cue := range cues {
				ulogCues.Info("Cue").
					Field("file", input).
					Field("block", cue.Block).
					Pretty(fmt.Sprintf("[%d] %s\n", cue.Block, cue.Text)).
					PrettyOnly().
					Emit()
			}
			return nil
		},
	}

	cmd.Flags().Int("last", 0, "Only show the last N cues")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}
