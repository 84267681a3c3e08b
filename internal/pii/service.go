package pii

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Bassdanger/document-summarizer/internal/models"
	"github.com/Bassdanger/document-summarizer/pkg/logger"
)

// Service runs the detection pipeline in two modes with deliberately
// asymmetric failure handling. ContainsPII fails open: an unreachable
// detector flags the text as sensitive so nothing is ever under-flagged.
// RedactText fails closed: any detector error aborts the whole operation so
// partially-checked text never leaves the trust boundary. The two branches
// are intentionally separate; do not collapse them into a shared default.
type Service struct {
	detector   EntityDetector
	log        logger.Logger
	language   string
	chunkChars int
	mask       string
	maxWorkers int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLanguage sets the language code passed to the detector.
func WithLanguage(code string) ServiceOption {
	return func(s *Service) {
		s.language = code
	}
}

// WithChunkChars sets the maximum chunk size in runes.
func WithChunkChars(n int) ServiceOption {
	return func(s *Service) {
		s.chunkChars = n
	}
}

// WithMask sets the replacement string for redacted spans.
func WithMask(mask string) ServiceOption {
	return func(s *Service) {
		s.mask = mask
	}
}

// WithMaxWorkers bounds concurrent detection calls during redaction.
func WithMaxWorkers(n int) ServiceOption {
	return func(s *Service) {
		s.maxWorkers = n
	}
}

// NewService creates a detection service around an EntityDetector.
func NewService(det EntityDetector, log logger.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		detector:   det,
		log:        log,
		language:   "en",
		chunkChars: DefaultChunkChars,
		mask:       DefaultMask,
		maxWorkers: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	// A non-positive bound would make the semaphore unacquirable.
	if s.maxWorkers < 1 {
		s.maxWorkers = 1
	}
	return s
}

// ContainsPII reports whether the text contains detected sensitive content.
// Chunks are checked sequentially with early return on the first hit. A
// detector error counts as a hit: the uncertain case must not pass as clean.
func (s *Service) ContainsPII(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	for _, chunk := range Chunk(text, s.chunkChars) {
		if strings.TrimSpace(chunk.Text) == "" {
			continue
		}

		spans, err := s.detector.DetectEntities(ctx, chunk.Text, s.language)
		if err != nil {
			s.log.Warn("entity detection unavailable, treating chunk as sensitive",
				logger.Int("chunkOffset", chunk.StartOffset),
				logger.Error(err),
			)
			return true
		}
		if len(spans) > 0 {
			return true
		}
	}
	return false
}

// RedactText replaces every detected span with the configured mask. Chunk
// detection calls run concurrently under a worker bound; results are
// re-sorted before merging, so correctness does not depend on call order.
// Any detector error aborts the operation and no text is returned.
func (s *Service) RedactText(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	chunks := Chunk(text, s.chunkChars)
	spansByChunk := make([][]models.Span, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, s.maxWorkers)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		if strings.TrimSpace(chunk.Text) == "" {
			continue
		}

		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-gctx.Done():
				return gctx.Err()
			}

			spans, err := DetectChunk(gctx, s.detector, chunk, s.language)
			if err != nil {
				return fmt.Errorf("entity detection failed for chunk at offset %d: %w", chunk.StartOffset, err)
			}
			spansByChunk[i] = spans
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("redaction aborted, document withheld: %w", err)
	}

	var all []models.Span
	for _, spans := range spansByChunk {
		all = append(all, spans...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Start < all[j].Start })

	merged := MergeSpans(all)
	s.log.Debug("redaction spans merged",
		logger.Int("detected", len(all)),
		logger.Int("merged", len(merged)),
	)

	return Redact(text, merged, s.mask), nil
}
