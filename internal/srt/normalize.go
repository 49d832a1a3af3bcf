package srt

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode selects how cue texts are joined and how whitespace is cleaned up.
type Mode int

const (
	// SingleBlock produces one continuous text without paragraph breaks.
	SingleBlock Mode = iota
	// Paragraphs produces one paragraph per cue, separated by a blank line.
	Paragraphs
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case SingleBlock:
		return "single"
	case Paragraphs:
		return "paragraphs"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode resolves a mode name as used in config files and flags.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single", "single-block", "block":
		return SingleBlock, nil
	case "paragraphs", "paragraph", "p":
		return Paragraphs, nil
	}
	return SingleBlock, fmt.Errorf("unknown output mode %q", s)
}

var (
	reSpaceBeforePunct = regexp.MustCompile(`[` + space + `]+([.,!?;:])`)
	reWhitespace       = regexp.MustCompile(`[` + space + `]+`)
	reInlineSpaces     = regexp.MustCompile(`[\t\v\f\r \p{Z}\x{85}]+`)
	reBlankLines       = regexp.MustCompile(`\n{3,}`)
)

// Normalize attaches punctuation to the preceding word and collapses
// whitespace according to mode.
func Normalize(text string, mode Mode) string {
	text = reSpaceBeforePunct.ReplaceAllString(text, "$1")

	if mode != Paragraphs {
		return strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(reInlineSpaces.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = reBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
