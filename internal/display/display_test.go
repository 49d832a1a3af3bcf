package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/grovetools/srt2txt/internal/srt"
	"github.com/stretchr/testify/assert"
)

func TestBanner(t *testing.T) {
	out := Banner("EXTRACTED TEXT:")
	assert.Contains(t, out, "EXTRACTED TEXT:")
	assert.Contains(t, out, strings.Repeat("=", bannerWidth))
}

func TestPrintStatsTable(t *testing.T) {
	res := srt.Result{Text: "Olá", Blocks: 3, Cues: 2, Dropped: []int{2}}
	var buf bytes.Buffer
	PrintStatsTable("movie.srt", srt.Paragraphs, res, &buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "DROPPED")
	assert.Equal(t, []string{"movie.srt", "paragraphs", "3", "2", "1", "[2]", "3"}, strings.Fields(lines[1]))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, "Error saving file", errors.New("permission denied"))
	assert.Contains(t, buf.String(), "Error saving file: permission denied")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
