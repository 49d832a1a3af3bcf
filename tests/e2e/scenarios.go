package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:03,000
Hello there .

2
00:00:04,000 --> 00:00:06,000

3
00:00:07,000 --> 00:00:09,000
How are
you?
`

// setupSubtitles writes sample subtitle files into a fresh directory.
func setupSubtitles(ctx *harness.Context) error {
	dir := ctx.NewDir("subs")

	if err := fs.WriteString(filepath.Join(dir, "movie.srt"), sampleSRT); err != nil {
		return fmt.Errorf("failed to write movie.srt: %w", err)
	}
	// Latin-1 encoded "Olá , mundo"
	if err := os.WriteFile(filepath.Join(dir, "latin.srt"), []byte("1\n00:00:01,000 --> 00:00:02,000\nOl\xe1 , mundo\n"), 0644); err != nil {
		return fmt.Errorf("failed to write latin.srt: %w", err)
	}
	if err := fs.WriteString(filepath.Join(dir, "empty.srt"), "1\n00:00:01,000 --> 00:00:02,000\n"); err != nil {
		return err
	}

	ctx.Set("subs_dir", dir)
	return nil
}

// ConvertSingleBlockScenario tests the default continuous text conversion.
func ConvertSingleBlockScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "srt2txt-single-block",
		Steps: []harness.Step{
			harness.NewStep("Setup subtitle files", setupSubtitles),
			harness.NewStep("Run 'srt2txt movie.srt -o -'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				input := filepath.Join(ctx.GetString("subs_dir"), "movie.srt")
				cmd := command.New(bin, input, "-o", "-", "--config", filepath.Join(ctx.GetString("subs_dir"), "none.yml"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "srt2txt should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "EXTRACTED TEXT:", "Should print the banner"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "Hello there. How are you?", "Should print the continuous text")
			}),
			harness.NewStep("Run 'srt2txt latin.srt' with the default output", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				dir := ctx.GetString("subs_dir")
				output := filepath.Join(dir, "latin.txt")
				cmd := command.New(bin, filepath.Join(dir, "latin.srt"), "--config", filepath.Join(dir, "none.yml"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "srt2txt should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "saved to", "Should report the output file"); err != nil {
					return err
				}
				if err := assert.NotContains(result.Stdout, "EXTRACTED TEXT:", "Should not print the text when saving"); err != nil {
					return err
				}

				data, err := os.ReadFile(output)
				if err != nil {
					return fmt.Errorf("failed to read output: %w", err)
				}
				return assert.Equal("Olá, mundo\n", string(data), "Should decode latin-1 and fix punctuation")
			}),
		},
	}
}

// ConvertParagraphsScenario tests paragraph mode.
func ConvertParagraphsScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "srt2txt-paragraphs",
		Steps: []harness.Step{
			harness.NewStep("Setup subtitle files", setupSubtitles),
			harness.NewStep("Run 'srt2txt -p -o'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				dir := ctx.GetString("subs_dir")
				output := filepath.Join(dir, "movie.txt")
				cmd := command.New(bin, filepath.Join(dir, "movie.srt"), "-p", "-o", output, "--config", filepath.Join(dir, "none.yml"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "srt2txt -p should exit successfully"); err != nil {
					return err
				}
				data, err := os.ReadFile(output)
				if err != nil {
					return fmt.Errorf("failed to read output: %w", err)
				}
				return assert.Equal("Hello there.\n\nHow are you?\n", string(data), "Should write one paragraph per cue")
			}),
		},
	}
}

// ConvertFailuresScenario tests exit codes for missing input and empty results.
func ConvertFailuresScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "srt2txt-failures",
		Steps: []harness.Step{
			harness.NewStep("Setup subtitle files", setupSubtitles),
			harness.NewStep("Run 'srt2txt' on a missing file", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				dir := ctx.GetString("subs_dir")
				cmd := command.New(bin, filepath.Join(dir, "missing.srt"), "--config", filepath.Join(dir, "none.yml"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(1, result.ExitCode, "srt2txt should fail for a missing file"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "file not found", "Should report the missing file")
			}),
			harness.NewStep("Run 'srt2txt' on a file without text", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				dir := ctx.GetString("subs_dir")
				cmd := command.New(bin, filepath.Join(dir, "empty.srt"), "--config", filepath.Join(dir, "none.yml"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(1, result.ExitCode, "srt2txt should fail when no text is produced"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "failed to process the SRT file", "Should report the processing failure")
			}),
		},
	}
}

// CuesScenario tests the 'srt2txt cues' command.
func CuesScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "srt2txt-cues-command",
		Steps: []harness.Step{
			harness.NewStep("Setup subtitle files", setupSubtitles),
			harness.NewStep("Run 'srt2txt cues --json'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				dir := ctx.GetString("subs_dir")
				cmd := command.New(bin, "cues", filepath.Join(dir, "movie.srt"), "--json", "--config", filepath.Join(dir, "none.yml"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "srt2txt cues should exit successfully"); err != nil {
					return err
				}

				var cues []map[string]interface{}
				if err := json.Unmarshal([]byte(result.Stdout), &cues); err != nil {
					return fmt.Errorf("failed to parse JSON output: %w", err)
				}
				if len(cues) != 2 {
					return fmt.Errorf("expected 2 cues, got %d", len(cues))
				}
				// block 2 has no text, so the second entry is block 3
				return assert.Equal(float64(3), cues[1]["block"], "Should keep source block numbers")
			}),
		},
	}
}
