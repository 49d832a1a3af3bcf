package textio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/saintfish/chardet"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound is returned when the input file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrUndecodable is returned when no configured encoding can decode the file.
	ErrUndecodable = errors.New("file could not be decoded")
)

// Reader loads subtitle files as text, trying each encoding in order.
type Reader struct {
	encodings []Encoding
	logger    *logrus.Entry
}

// NewReader creates a reader for the given encodings.
// A nil or empty list uses DefaultEncodings.
func NewReader(encodings []Encoding, logger *logrus.Entry) *Reader {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Reader{
		encodings: encodings,
		logger:    logger.WithField("component", "reader"),
	}
}

// Read returns the decoded content of path.
func (r *Reader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return r.Decode(path, data)
}

// Decode decodes data with the first encoding that accepts it.
// path is only used in log fields and errors.
func (r *Reader) Decode(path string, data []byte) (string, error) {
	for _, enc := range r.encodings {
		text, err := enc.Decode(data)
		if err != nil {
			r.logger.WithError(err).
				WithField("file", path).
				WithField("encoding", enc.Name).
				Debug("Decode attempt failed")
			continue
		}
		r.logger.WithField("file", path).
			WithField("encoding", enc.Name).
			Debug("Decoded file")
		return text, nil
	}
	return "", fmt.Errorf("%w: %s (tried %s%s)", ErrUndecodable, path, encodingNames(r.encodings), charsetHint(data))
}

// Read reads path with DefaultEncodings.
func Read(path string) (string, error) {
	return NewReader(nil, nil).Read(path)
}

func encodingNames(encodings []Encoding) string {
	names := make([]string, 0, len(encodings))
	for _, enc := range encodings {
		names = append(names, enc.Name)
	}
	return strings.Join(names, ", ")
}

// charsetHint names the charset chardet considers most likely, if any.
func charsetHint(data []byte) string {
	res, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || res == nil || res.Charset == "" {
		return ""
	}
	return fmt.Sprintf("; looks like %s", res.Charset)
}
