package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/srt2txt/internal/display"
	"github.com/grovetools/srt2txt/internal/srt"
	"github.com/grovetools/srt2txt/internal/textio"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// stdoutPath as the output path prints the text instead of saving it.
const stdoutPath = "-"

// NewRootCmd creates the root command for srt2txt.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"srt2txt",
		"Convert SRT subtitle files to plain text",
	)
	rootCmd.Use = "srt2txt [file.srt]"
	rootCmd.Long = "Convert an SRT subtitle file to continuous text, or to one paragraph per cue with --paragraphs.\n" +
		"Run without arguments for the interactive menu."
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.SilenceUsage = true
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		applyVerbose(cmd)
		output, _ := cmd.Flags().GetString("output")
		paragraphs, _ := cmd.Flags().GetBool("paragraphs")
		stats, _ := cmd.Flags().GetBool("stats")

		cfg := loadConfig(configFlag(cmd))
		conv, err := newConverter(cfg, logrus.WithField("app", "srt2txt"))
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return runInteractive(conv)
		}

		mode, err := srt.ParseMode(cfg.Conversion.Mode)
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if paragraphs {
			mode = srt.Paragraphs
		}

		input := args[0]
		dest := output
		switch dest {
		case "":
			dest = textio.ReplaceExt(input, cfg.Output.Extension)
			if dest == input {
				dest = textio.ReplaceExt(input, cfg.Output.Suffix)
			}
		case stdoutPath:
			dest = ""
		}

		res, err := conv.convertFile(input, dest, mode)
		if err != nil {
			return err
		}
		if stats {
			display.PrintStatsTable(input, mode, res, os.Stderr)
		}
		if dest == "" {
			title := ""
			if cfg.BannerEnabled() {
				title = "EXTRACTED TEXT:"
			}
			display.PrintResult(title, res)
		}
		return nil
	}

	// --config and --verbose normally come from the standard command.
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/srt2txt/config.yml)")
	}
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	}
	rootCmd.Flags().StringP("output", "o", "", "Output file (default: input with its extension replaced, \"-\" for stdout)")
	rootCmd.Flags().BoolP("paragraphs", "p", false, "Keep one paragraph per subtitle cue")
	rootCmd.Flags().Bool("stats", false, "Print cue statistics to stderr")

	rootCmd.AddCommand(newCuesCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// configFlag returns the --config value inherited from the root command.
func configFlag(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

// applyVerbose raises logrus to debug level when --verbose is set.
func applyVerbose(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
