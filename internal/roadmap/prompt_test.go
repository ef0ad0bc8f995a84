package roadmap

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestBuildPromptIncludesLabelAndContent(t *testing.T) {
	p := BuildPrompt("Networking Basics", "TCP is a transport protocol.")

	require.Contains(t, p, "Networking Basics")
	require.Contains(t, p, "TCP is a transport protocol.")
	require.Contains(t, p, "4-8 sequential")
	require.Contains(t, p, "beginner, intermediate, advanced")
	require.NotContains(t, p, "{{")
}

func TestBuildPromptTruncatesLongText(t *testing.T) {
	long := strings.Repeat("a", MaxPromptChars+500)

	p := BuildPrompt("Doc", long)

	require.Contains(t, p, "[Content truncated due to length]")
	require.NotContains(t, p, strings.Repeat("a", MaxPromptChars+1))
	require.Contains(t, p, strings.Repeat("a", MaxPromptChars))
}

func TestBuildPromptTruncatesOnRuneBoundary(t *testing.T) {
	// "界" is three bytes; offsetting by one ASCII byte puts the byte
	// limit in the middle of a rune.
	long := "a" + strings.Repeat("界", MaxPromptChars/3)
	require.Greater(t, len(long), MaxPromptChars)

	p := BuildPrompt("Doc", long)

	require.Contains(t, p, "[Content truncated due to length]")
	require.True(t, utf8.ValidString(p))
	require.NotContains(t, p, string(utf8.RuneError))
}

func TestBuildPromptTruncationIsDeterministic(t *testing.T) {
	long := strings.Repeat("xyz ", 10000)

	first := BuildPrompt("Doc", long)
	second := BuildPrompt("Doc", long)

	require.Equal(t, first, second)
}

func TestBuildPromptShortTextNotMarked(t *testing.T) {
	p := BuildPrompt("Doc", "short content")
	require.NotContains(t, p, "[Content truncated due to length]")
}
