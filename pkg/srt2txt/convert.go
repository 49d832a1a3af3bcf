// Package srt2txt exposes SRT to plain text conversion to other Go programs.
package srt2txt

import (
	"github.com/grovetools/srt2txt/internal/srt"
	"github.com/grovetools/srt2txt/internal/textio"
)

// Mode selects single-block or paragraph output.
type Mode = srt.Mode

// Result is the outcome of a conversion.
type Result = srt.Result

const (
	// SingleBlock joins every cue into one continuous block of text.
	SingleBlock = srt.SingleBlock
	// Paragraphs keeps one paragraph per cue, separated by a blank line.
	Paragraphs = srt.Paragraphs
)

// Errors returned by ConvertFile.
var (
	ErrNotFound    = textio.ErrNotFound
	ErrUndecodable = textio.ErrUndecodable
)

// Convert converts SRT content already loaded in memory.
func Convert(content string, mode Mode) Result {
	return srt.Convert(content, mode)
}

// ConvertFile reads path, trying UTF-8 then Latin-1, and converts it.
func ConvertFile(path string, mode Mode) (Result, error) {
	content, err := textio.Read(path)
	if err != nil {
		return Result{}, err
	}
	return srt.Convert(content, mode), nil
}
