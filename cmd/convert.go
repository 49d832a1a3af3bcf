package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/grovetools/srt2txt/config"
	"github.com/grovetools/srt2txt/internal/display"
	"github.com/grovetools/srt2txt/internal/srt"
	"github.com/grovetools/srt2txt/internal/textio"
	"github.com/sirupsen/logrus"
)

// ErrNoText is returned when a file converts to an empty text.
var ErrNoText = errors.New("failed to process the SRT file")

// isProcessingFailure reports whether err should be shown as a generic
// conversion failure rather than a read error.
func isProcessingFailure(err error) bool {
	return errors.Is(err, ErrNoText)
}

// loadConfig loads the config file, falling back to defaults when it cannot
// be read or parsed.
func loadConfig(path string) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		logrus.WithError(err).Warn("Using default configuration")
	}
	return cfg
}

// converter ties reading, conversion and saving together for both the CLI and
// the interactive menu.
type converter struct {
	cfg    config.Config
	reader *textio.Reader
	logger *logrus.Entry
}

func newConverter(cfg config.Config, logger *logrus.Entry) (*converter, error) {
	encodings, err := textio.LookupEncodings(cfg.Conversion.Encodings)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &converter{
		cfg:    cfg,
		reader: textio.NewReader(encodings, logger),
		logger: logger,
	}, nil
}

// convertFile reads input and converts it. When output is set the text is
// saved there; a failed save is reported but the result is still returned.
func (c *converter) convertFile(input, output string, mode srt.Mode) (srt.Result, error) {
	content, err := c.reader.Read(input)
	if err != nil {
		return srt.Result{}, err
	}

	res := srt.Convert(content, mode)
	logger := c.logger.WithField("file", input).WithField("mode", mode.String())
	logger.WithField("blocks", res.Blocks).
		WithField("cues", res.Cues).
		Debug("Converted subtitle file")
	if len(res.Dropped) > 0 {
		logger.WithField("dropped", res.Dropped).Debug("Skipped cue blocks without text")
	}

	if res.Empty() {
		return res, fmt.Errorf("%w: %s", ErrNoText, input)
	}

	if output != "" {
		if err := textio.Write(output, res.Text); err != nil {
			logger.WithError(err).WithField("output", output).Error("Failed to save text")
			display.PrintError(os.Stderr, "Error saving file", err)
		} else {
			display.PrintSaved(output, mode)
		}
	}
	return res, nil
}
