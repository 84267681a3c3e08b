package pii

import (
	"github.com/Bassdanger/document-summarizer/internal/models"
)

// DefaultMask replaces each detected span in the redacted output.
const DefaultMask = "[REDACTED]"

// Redact replaces every span in spans with mask. Spans must be sorted
// ascending and disjoint (the output of MergeSpans). Spans are applied
// rightmost first: the mask generally differs in length from the span it
// replaces, so applying left-to-right would invalidate the offsets of every
// span still pending to the right.
func Redact(text string, spans []models.Span, mask string) string {
	if len(spans) == 0 {
		return text
	}

	runes := []rune(text)
	maskRunes := []rune(mask)

	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		if s.Start < 0 || s.Start >= s.End || s.Start > len(runes) {
			continue
		}
		if s.End > len(runes) {
			s.End = len(runes)
		}

		// The inner append copies the tail before the outer append
		// overwrites the backing array.
		runes = append(runes[:s.Start], append(append([]rune{}, maskRunes...), runes[s.End:]...)...)
	}
	return string(runes)
}
