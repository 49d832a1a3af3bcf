package srt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCueText(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "number, timestamp and text",
			lines: []string{"12", "00:01:02,003 --> 00:01:04,005", "Hello", "there"},
			want:  "Hello there",
		},
		{
			name:  "missing number line",
			lines: []string{"00:01:02,003 --> 00:01:04,005", "Hello"},
			want:  "Hello",
		},
		{
			name:  "missing timestamp line",
			lines: []string{"7", "Hello"},
			want:  "Hello",
		},
		{
			name:  "number and timestamp only",
			lines: []string{"3", "00:00:01,000 --> 00:00:02,000"},
			want:  "",
		},
		{
			name:  "timestamp without spaces around arrow",
			lines: []string{"3", "00:00:01,000-->00:00:02,000", "Tight"},
			want:  "Tight",
		},
		{
			name:  "timestamp with trailing position data",
			lines: []string{"00:00:01,000 --> 00:00:02,000 X1:100 X2:200", "Positioned"},
			want:  "Positioned",
		},
		{
			name:  "numeric text after a dropped number is kept",
			lines: []string{"1", "42"},
			want:  "42",
		},
		{
			name:  "timestamp in second text line is kept",
			lines: []string{"1", "00:00:01,000 --> 00:00:02,000", "Said", "00:00:01,000 --> 00:00:02,000"},
			want:  "Said 00:00:01,000 --> 00:00:02,000",
		},
		{
			name:  "malformed timestamp is text",
			lines: []string{"1", "0:00:01,000 --> 0:00:02,000", "Text"},
			want:  "0:00:01,000 --> 0:00:02,000 Text",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := append([]string(nil), tt.lines...)
			assert.Equal(t, tt.want, CueText(tt.lines))
			assert.Equal(t, orig, tt.lines, "input must not be modified")
		})
	}
}

func TestIsSequenceNumber(t *testing.T) {
	assert.True(t, IsSequenceNumber("1"))
	assert.True(t, IsSequenceNumber("0042"))
	assert.False(t, IsSequenceNumber(""))
	assert.False(t, IsSequenceNumber("1a"))
	assert.False(t, IsSequenceNumber("-1"))
	assert.False(t, IsSequenceNumber("00:00:01,000 --> 00:00:02,000"))
}

func TestIsTimestamp(t *testing.T) {
	assert.True(t, IsTimestamp("00:00:01,000 --> 00:00:02,000"))
	assert.True(t, IsTimestamp("00:00:01,000   -->00:00:02,000"))
	assert.False(t, IsTimestamp("00:00:01.000 --> 00:00:02.000"))
	assert.False(t, IsTimestamp("Hello"))
}
