package pii

import (
	"context"

	"github.com/Bassdanger/document-summarizer/internal/models"
)

// EntityDetector is the external entity-detection capability. Returned spans
// are rune offsets local to the submitted text. Implementations document a
// maximum payload size per call; callers chunk to stay under it.
type EntityDetector interface {
	DetectEntities(ctx context.Context, text, languageCode string) ([]models.Span, error)
}

// DetectChunk invokes the detector with the chunk text and shifts the
// resulting spans from chunk-local to global document coordinates.
func DetectChunk(ctx context.Context, det EntityDetector, chunk models.TextChunk, languageCode string) ([]models.Span, error) {
	local, err := det.DetectEntities(ctx, chunk.Text, languageCode)
	if err != nil {
		return nil, err
	}

	global := make([]models.Span, 0, len(local))
	for _, s := range local {
		global = append(global, models.Span{
			Start: s.Start + chunk.StartOffset,
			End:   s.End + chunk.StartOffset,
		})
	}
	return global, nil
}
