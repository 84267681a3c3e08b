package pii

import (
	"sort"

	"github.com/Bassdanger/document-summarizer/internal/models"
)

// MergeSpans consolidates spans into a minimal sorted, disjoint list.
// Overlapping and touching spans collapse into one; the <= boundary test is
// what merges adjacent spans produced on either side of a chunk boundary
// into a single redaction.
func MergeSpans(spans []models.Span) []models.Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]models.Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := make([]models.Span, 0, len(sorted))
	merged = append(merged, sorted[0])
	for _, s := range sorted[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
