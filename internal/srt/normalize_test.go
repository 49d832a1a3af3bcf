package srt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		mode Mode
		want string
	}{
		{
			name: "space before punctuation",
			text: "Hello , world ! How are you ?",
			mode: SingleBlock,
			want: "Hello, world! How are you?",
		},
		{
			name: "all punctuation marks",
			text: "a . b , c ! d ? e ; f :",
			mode: SingleBlock,
			want: "a. b, c! d? e; f:",
		},
		{
			name: "single block collapses newlines",
			text: "  one\n\ntwo \t three  ",
			mode: SingleBlock,
			want: "one two three",
		},
		{
			name: "paragraphs keep one blank line",
			text: "one  \t two\n\n\n\n  three ",
			mode: Paragraphs,
			want: "one two\n\nthree",
		},
		{
			name: "paragraphs trim each line",
			text: "\n  first   line  \n  second\n",
			mode: Paragraphs,
			want: "first line\nsecond",
		},
		{
			name: "paragraph break before punctuation is removed",
			text: "Wait\n\n...what?",
			mode: Paragraphs,
			want: "Wait...what?",
		},
		{
			name: "no-break space before punctuation",
			text: "Bonjour\u00a0! Ça va\u202f?",
			mode: SingleBlock,
			want: "Bonjour! Ça va?",
		},
		{
			name: "vertical tab runs collapse",
			text: "a\v\v b",
			mode: SingleBlock,
			want: "a b",
		},
		{
			name: "paragraphs collapse unicode spaces inside a line",
			text: "one\u00a0\u00a0two\u3000;\n\n\u00a0three\u00a0",
			mode: Paragraphs,
			want: "one two;\n\nthree",
		},
		{
			name: "empty",
			text: "",
			mode: Paragraphs,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.text, tt.mode))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello there . How   are you ?",
		"a\n\n\n\nb ; c",
		"  , leading punctuation",
	}
	for _, in := range inputs {
		for _, mode := range []Mode{SingleBlock, Paragraphs} {
			once := Normalize(in, mode)
			assert.Equal(t, once, Normalize(once, mode), "mode %s input %q", mode, in)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: SingleBlock},
		{in: "single", want: SingleBlock},
		{in: "Single-Block", want: SingleBlock},
		{in: "paragraphs", want: Paragraphs},
		{in: " P ", want: Paragraphs},
		{in: "chapters", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "single", SingleBlock.String())
	assert.Equal(t, "paragraphs", Paragraphs.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
