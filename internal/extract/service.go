package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Bassdanger/document-summarizer/internal/models"
	"github.com/Bassdanger/document-summarizer/pkg/logger"
	"github.com/Bassdanger/document-summarizer/pkg/storage"
)

// StructuredParser extracts ordered paragraphs from a word-processor file.
type StructuredParser interface {
	Parse(path string) ([]string, error)
}

// PageCounter reports the page count of a local PDF.
type PageCounter interface {
	PageCount(path string) (int, error)
}

// Service executes extraction plans against the external collaborators.
type Service struct {
	store  storage.ObjectStore
	sync   SyncDetector
	async  AsyncDetector
	parser StructuredParser
	pages  PageCounter
	poll   PollConfig
	logger logger.Logger
}

// NewService wires the extraction collaborators. pages may be nil to skip
// the local PDF page-count guard.
func NewService(store storage.ObjectStore, sync SyncDetector, async AsyncDetector, parser StructuredParser, pages PageCounter, poll PollConfig, log logger.Logger) *Service {
	return &Service{
		store:  store,
		sync:   sync,
		async:  async,
		parser: parser,
		pages:  pages,
		poll:   poll,
		logger: log,
	}
}

// Extract resolves a reference and returns the document's raw text.
func (s *Service) Extract(ctx context.Context, reference string) (string, error) {
	plan, err := Resolve(reference)
	if err != nil {
		return "", err
	}

	s.logger.Info("extraction plan resolved",
		logger.String("kind", string(plan.Kind)),
		logger.String("source", string(plan.Source.Kind)),
	)

	switch plan.Kind {
	case models.PlanAsyncOCR:
		return s.extractAsync(ctx, plan)
	case models.PlanObjectText:
		return s.extractObjectText(ctx, plan)
	case models.PlanSyncOCR:
		return s.extractSync(ctx, plan)
	case models.PlanStructuredDoc:
		return s.extractStructured(plan)
	case models.PlanLocalText:
		return readLocalText(plan.Path)
	default:
		return "", fmt.Errorf("no extraction path for plan kind %q", plan.Kind)
	}
}

func (s *Service) extractAsync(ctx context.Context, plan *models.ExtractionPlan) (string, error) {
	job, err := PollJob(ctx, s.async, plan.Bucket, plan.Key, s.poll, s.logger)
	if err != nil {
		return "", err
	}
	return strings.Join(job.Pages, "\n"), nil
}

func (s *Service) extractObjectText(ctx context.Context, plan *models.ExtractionPlan) (string, error) {
	data, err := s.store.Get(ctx, plan.Bucket, plan.Key)
	if err != nil {
		return "", fmt.Errorf("failed to read object %s: %w", plan.Source.Locator, err)
	}
	return decodeText(data), nil
}

func (s *Service) extractSync(ctx context.Context, plan *models.ExtractionPlan) (string, error) {
	if s.pages != nil {
		n, err := s.pages.PageCount(plan.Path)
		if err != nil {
			s.logger.Warn("could not determine PDF page count",
				logger.String("path", plan.Path),
				logger.Error(err),
			)
		} else if n > 1 {
			return "", fmt.Errorf("local PDF has %d pages but the synchronous OCR path is single-page only; upload to the object store and use an s3:// URI", n)
		}
	}

	data, err := os.ReadFile(plan.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	lines, err := s.sync.DetectText(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", plan.Path, err)
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Service) extractStructured(plan *models.ExtractionPlan) (string, error) {
	paragraphs, err := s.parser.Parse(plan.Path)
	if err != nil {
		return "", fmt.Errorf("failed to parse document %s: %w", plan.Path, err)
	}
	return strings.Join(paragraphs, "\n"), nil
}

func readLocalText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return decodeText(data), nil
}

// decodeText interprets bytes as UTF-8, replacing invalid sequences.
func decodeText(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
