package srt2txt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.srt")
	content := "1\n00:00:01,000 --> 00:00:02,000\nCaf\xe9 ?\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res, err := ConvertFile(path, SingleBlock)
	require.NoError(t, err)
	assert.Equal(t, "Café?", res.Text)
	assert.Equal(t, 1, res.Cues)
}

func TestConvertFileNotFound(t *testing.T) {
	_, err := ConvertFile(filepath.Join(t.TempDir(), "missing.srt"), Paragraphs)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConvert(t *testing.T) {
	res := Convert("1\n00:00:01,000 --> 00:00:02,000\nA\n\n2\nB\n", Paragraphs)
	assert.Equal(t, "A\n\nB", res.Text)
}

func TestModes(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\nA\n\n2\nB\n"
	assert.Equal(t, "A B", Convert(content, SingleBlock).Text)
	assert.Equal(t, "A\n\nB", Convert(content, Paragraphs).Text)
	assert.Equal(t, "single", SingleBlock.String())
	assert.Equal(t, "paragraphs", Paragraphs.String())
}
