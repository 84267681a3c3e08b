// Package pii detects and removes sensitive spans from document text before
// it crosses the trust boundary to the summarization service.
package pii

import (
	"github.com/Bassdanger/document-summarizer/internal/models"
)

// DefaultChunkChars keeps chunks under the entity-detection service's 5 KB
// per-request byte limit even for multi-byte text.
const DefaultChunkChars = 4000

// Chunk splits text into consecutive segments of at most maxChars runes,
// each carrying its starting rune offset in the original text. Splitting on
// rune boundaries guarantees no chunk begins or ends inside a multi-byte
// character. Deterministic for a given input and maxChars.
func Chunk(text string, maxChars int) []models.TextChunk {
	if maxChars <= 0 {
		maxChars = DefaultChunkChars
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	chunks := make([]models.TextChunk, 0, (len(runes)+maxChars-1)/maxChars)
	for i := 0; i < len(runes); i += maxChars {
		end := i + maxChars
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, models.TextChunk{
			Text:        string(runes[i:end]),
			StartOffset: i,
		})
	}
	return chunks
}
