package emoji

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestRewriter_Rewrite(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	rewriter, err := NewDefaultRewriter(log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Single emoji after a word",
			input:    "hello🙂",
			expected: "hello:slightly_smiling_face:",
		},
		{
			name:     "Several emoji and preserved spacing",
			input:    "great 👍 👍 🎉",
			expected: "great :thumbsup: :thumbsup: :tada:",
		},
		{
			name:     "Variation selector is ignored",
			input:    "I ❤️ you",
			expected: "I :heart: you",
		},
		{
			name:     "Bare symbol without variation selector",
			input:    "I ❤ you",
			expected: "I :heart: you",
		},
		{
			name:     "Accents are not emoji",
			input:    "Un été 🔥",
			expected: "Un été :fire:",
		},
		{
			name:     "Nothing to rewrite",
			input:    "how are you?",
			expected: "how are you?",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, rewriter.Rewrite(tt.input))
		})
	}
}

func TestRewriter_Longest_Symbol_Wins(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.DiscardHandler)

	// Given a dictionary where one symbol is a prefix of another
	rewriter, err := NewRewriter(map[string]string{
		"family": "👨‍👩‍👧",
		"man":    "👨",
	}, log)
	req.NoError(err)

	// Then the whole sequence is rewritten once
	req.Equal("a :family: and a :man:", rewriter.Rewrite("a 👨‍👩‍👧 and a 👨"))
}

func TestRewriter_Empty_Dictionary(t *testing.T) {
	req := require.New(t)

	_, err := NewRewriter(map[string]string{"blank": ""}, slog.New(slog.DiscardHandler))

	req.Error(err)
}
