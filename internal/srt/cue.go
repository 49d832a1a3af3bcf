package srt

import (
	"regexp"
	"strings"
	"unicode"
)

// timestampPattern matches an SRT time range such as
// "00:00:01,000 --> 00:00:03,000" anywhere in a line.
var timestampPattern = regexp.MustCompile(`\d{2}:\d{2}:\d{2},\d{3}[` + space + `]*-->[` + space + `]*\d{2}:\d{2}:\d{2},\d{3}`)

// IsSequenceNumber reports whether line consists only of decimal digits.
func IsSequenceNumber(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsTimestamp reports whether line contains an SRT time range.
func IsTimestamp(line string) bool {
	return timestampPattern.MatchString(line)
}

// CueText returns the displayed text of a cue block.
// A leading sequence number line is dropped first, then a leading timestamp
// line; either may be missing. The remaining lines are joined with single
// spaces. The result is empty when the block held no text.
func CueText(lines []string) string {
	rest := lines
	if len(rest) > 0 && IsSequenceNumber(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) > 0 && IsTimestamp(rest[0]) {
		rest = rest[1:]
	}
	return strings.TrimSpace(strings.Join(rest, " "))
}
