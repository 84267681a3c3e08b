package pii_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bassdanger/document-summarizer/internal/pii"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	t.Run("splits long text at fixed offsets", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 9000)
		chunks := pii.Chunk(text, 4000)

		require.Len(t, chunks, 3)
		assert.Equal(t, 0, chunks[0].StartOffset)
		assert.Equal(t, 4000, chunks[1].StartOffset)
		assert.Equal(t, 8000, chunks[2].StartOffset)
		assert.Len(t, chunks[0].Text, 4000)
		assert.Len(t, chunks[2].Text, 1000)
	})

	t.Run("concatenation reconstructs the original", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"short",
			strings.Repeat("word ", 1000),
			"héllo wörld " + strings.Repeat("日本語テキスト", 500),
		}

		for _, text := range inputs {
			var sb strings.Builder
			offset := 0
			for _, c := range pii.Chunk(text, 7) {
				assert.Equal(t, offset, c.StartOffset)
				sb.WriteString(c.Text)
				offset += len([]rune(c.Text))
			}
			assert.Equal(t, text, sb.String())
		}
	})

	t.Run("never splits a multi-byte character", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("日本語", 100)
		for _, c := range pii.Chunk(text, 5) {
			assert.True(t, utf8.ValidString(c.Text))
			assert.LessOrEqual(t, len([]rune(c.Text)), 5)
		}
	})

	t.Run("returns nil for empty text", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, pii.Chunk("", 4000))
	})

	t.Run("single chunk when text fits", func(t *testing.T) {
		t.Parallel()

		chunks := pii.Chunk("hello", 4000)

		require.Len(t, chunks, 1)
		assert.Equal(t, "hello", chunks[0].Text)
		assert.Equal(t, 0, chunks[0].StartOffset)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("xyä", 321)
		assert.Equal(t, pii.Chunk(text, 10), pii.Chunk(text, 10))
	})

	t.Run("preserves whitespace-only segments positionally", func(t *testing.T) {
		t.Parallel()

		text := "abc" + strings.Repeat(" ", 3) + "def"
		chunks := pii.Chunk(text, 3)

		require.Len(t, chunks, 3)
		assert.Equal(t, "   ", chunks[1].Text)
		assert.Equal(t, 3, chunks[1].StartOffset)
	})
}
