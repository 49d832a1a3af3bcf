// Package srt turns SubRip subtitle content into plain prose.
//
// Everything in this package is a pure function of its input string. Reading
// and writing files is left to the caller.
package srt

import (
	"regexp"
	"strings"
)

// space is the whitespace class shared by the cue regexps. RE2's \s is
// ASCII only, so no-break spaces and the other Unicode separators are
// listed explicitly to agree with strings.TrimSpace.
const space = `\s\p{Z}\v\x{85}`

// blankRun matches one or more blank lines, including lines holding only
// whitespace, between two cue blocks.
var blankRun = regexp.MustCompile(`\n[` + space + `]*\n`)

// ExtractBlocks splits raw subtitle content into cue blocks.
// Each block is a non-empty list of trimmed, non-blank lines, in file order.
func ExtractBlocks(content string) [][]string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	segments := blankRun.Split(content, -1)
	blocks := make([][]string, 0, len(segments))
	for _, segment := range segments {
		lines := strings.Split(segment, "\n")
		block := make([]string, 0, len(lines))
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			block = append(block, line)
		}
		if len(block) > 0 {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
