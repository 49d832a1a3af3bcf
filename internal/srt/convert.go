package srt

import "strings"

// Result is the outcome of a conversion.
type Result struct {
	Text string `json:"text"`
	// Blocks is the number of cue blocks found in the content.
	Blocks int `json:"blocks"`
	// Cues is the number of blocks that contributed text.
	Cues int `json:"cues"`
	// Dropped lists the 1-based ordinals of blocks that held no text,
	// e.g. a sequence number and a timestamp only.
	Dropped []int `json:"dropped,omitempty"`
}

// Empty reports whether the conversion produced no text.
func (r Result) Empty() bool {
	return r.Text == ""
}

// separator returns the string placed between cue texts for a mode.
func (m Mode) separator() string {
	if m == Paragraphs {
		return "\n\n"
	}
	return " "
}

// Convert extracts the cue texts of content and joins them according to mode.
func Convert(content string, mode Mode) Result {
	blocks := ExtractBlocks(content)
	res := Result{Blocks: len(blocks)}

	texts := make([]string, 0, len(blocks))
	for i, block := range blocks {
		text := CueText(block)
		if text == "" {
			res.Dropped = append(res.Dropped, i+1)
			continue
		}
		texts = append(texts, text)
	}
	res.Cues = len(texts)
	res.Text = Normalize(strings.Join(texts, mode.separator()), mode)
	return res
}

// ConvertSingleBlock converts content into one continuous block of text.
func ConvertSingleBlock(content string) string {
	return Convert(content, SingleBlock).Text
}

// ConvertParagraphs converts content into one paragraph per cue.
func ConvertParagraphs(content string) string {
	return Convert(content, Paragraphs).Text
}
