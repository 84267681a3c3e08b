package pii_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bassdanger/document-summarizer/internal/models"
	"github.com/Bassdanger/document-summarizer/internal/pii"
)

func TestRedact(t *testing.T) {
	t.Parallel()

	t.Run("replaces a span with the mask", func(t *testing.T) {
		t.Parallel()

		got := pii.Redact("Call 555-1234 now", []models.Span{{Start: 5, End: 13}}, "[REDACTED]")

		assert.Equal(t, "Call [REDACTED] now", got)
	})

	t.Run("empty span set returns input unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello world", pii.Redact("hello world", nil, "[REDACTED]"))
	})

	t.Run("mask longer and shorter than spans does not corrupt neighbors", func(t *testing.T) {
		t.Parallel()

		//    0123456789012345678901
		text := "aa BBBB cc DDDDDDDD ee"
		spans := []models.Span{{Start: 3, End: 7}, {Start: 11, End: 19}}

		assert.Equal(t, "aa X cc X ee", pii.Redact(text, spans, "X"))
		assert.Equal(t, "aa [REDACTED] cc [REDACTED] ee", pii.Redact(text, spans, "[REDACTED]"))
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		text := "one two three four"
		spans := []models.Span{{Start: 4, End: 7}, {Start: 14, End: 18}}

		first := pii.Redact(text, spans, "***")
		second := pii.Redact(text, spans, "***")

		assert.Equal(t, first, second)
	})

	t.Run("handles multi-byte text by rune offsets", func(t *testing.T) {
		t.Parallel()

		text := "名前は田中です"
		got := pii.Redact(text, []models.Span{{Start: 3, End: 5}}, "[REDACTED]")

		assert.Equal(t, "名前は[REDACTED]です", got)
	})

	t.Run("span at the end of the text", func(t *testing.T) {
		t.Parallel()

		got := pii.Redact("id: 12345", []models.Span{{Start: 4, End: 9}}, "#")

		assert.Equal(t, "id: #", got)
	})

	t.Run("clamps spans past the end", func(t *testing.T) {
		t.Parallel()

		got := pii.Redact("short", []models.Span{{Start: 2, End: 99}}, "X")

		assert.Equal(t, "shX", got)
	})
}
