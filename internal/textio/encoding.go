// Package textio reads subtitle files into text and writes converted text back
// to disk.
package textio

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dimchansky/utfbom"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding decodes raw file bytes into UTF-8 text.
type Encoding struct {
	Name   string
	decode func([]byte) ([]byte, error)
}

// Decode converts data to UTF-8. It fails when data is not valid in the
// encoding.
func (e Encoding) Decode(data []byte) (string, error) {
	out, err := e.decode(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

var (
	// UTF8 accepts valid UTF-8 only and drops a leading byte order mark.
	UTF8 = Encoding{Name: "utf-8", decode: decodeUTF8}
	// Latin1 is ISO-8859-1. Every byte sequence decodes.
	Latin1 = Encoding{Name: "latin-1", decode: decoderFor(charmap.ISO8859_1)}
	// Windows1252 is the Windows western european code page.
	Windows1252 = Encoding{Name: "windows-1252", decode: decoderFor(charmap.Windows1252)}
)

// DefaultEncodings is the order in which encodings are tried when reading.
var DefaultEncodings = []Encoding{UTF8, Latin1}

func decodeUTF8(data []byte) ([]byte, error) {
	valid, _, err := transform.Bytes(encoding.UTF8Validator, data)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(utfbom.SkipOnly(bytes.NewReader(valid)))
}

func decoderFor(enc encoding.Encoding) func([]byte) ([]byte, error) {
	return func(data []byte) ([]byte, error) {
		return enc.NewDecoder().Bytes(data)
	}
}

// LookupEncoding resolves an encoding by the names used in config files.
func LookupEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return UTF8, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return Latin1, nil
	case "windows-1252", "cp1252":
		return Windows1252, nil
	}
	return Encoding{}, fmt.Errorf("unsupported encoding %q", name)
}

// LookupEncodings resolves an ordered list of encoding names.
// An empty list yields DefaultEncodings.
func LookupEncodings(names []string) ([]Encoding, error) {
	if len(names) == 0 {
		return DefaultEncodings, nil
	}
	encodings := make([]Encoding, 0, len(names))
	for _, name := range names {
		enc, err := LookupEncoding(name)
		if err != nil {
			return nil, err
		}
		encodings = append(encodings, enc)
	}
	return encodings, nil
}
