package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	t.Run("bachelor degree phrase", func(t *testing.T) {
		got := ExtractEducation(CleanText("Bachelor's degree in Computer Science from MIT"))
		require.NotEmpty(t, got)
		assert.True(t, strings.HasPrefix(got[0], "Computer Science"), "got %q", got[0])
	})

	t.Run("no education", func(t *testing.T) {
		got := ExtractEducation("ten years fixing servers")
		assert.Equal(t, []string{"Not specified"}, got)
	})

	t.Run("empty text", func(t *testing.T) {
		got := ExtractEducation("")
		assert.Equal(t, []string{"Not specified"}, got)
	})

	t.Run("short captures dropped", func(t *testing.T) {
		// The capture after "in" is only 3 runes, below the cutoff.
		got := ExtractEducation("master of art")
		assert.Equal(t, []string{"Not specified"}, got)
	})

	t.Run("at most three entries", func(t *testing.T) {
		text := CleanText("Bachelor of Science in Software Engineering. " +
			"Master of Engineering in Machine Learning. " +
			"PhD in Natural Language Processing. " +
			"Graduated from Stanford University School of Engineering.")
		got := ExtractEducation(text)
		assert.LessOrEqual(t, len(got), 3)
		assert.NotContains(t, got, "Not specified")
	})

	t.Run("results are title cased and deduplicated", func(t *testing.T) {
		got := ExtractEducation(CleanText("BS in computer science and also a degree in computer science"))
		require.NotEmpty(t, got)
		seen := make(map[string]bool)
		for _, e := range got {
			assert.False(t, seen[e], "duplicate entry %q", e)
			seen[e] = true
			assert.Equal(t, e, strings.TrimSpace(e))
		}
		assert.Contains(t, got[0], "Computer Science")
	})
}
