// Package summarize orchestrates the pipeline: extraction, the PII policy,
// and the generative summarization call.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Bassdanger/document-summarizer/pkg/logger"
)

// ErrBlocked is returned in block mode when the document contains detected
// sensitive content. Callers use it to pick an exit code distinct from
// ordinary failures.
var ErrBlocked = errors.New("document contains detected PII; summarization blocked")

// PIIMode selects how detected sensitive content is handled.
type PIIMode string

const (
	// ModeRedact masks detected spans before summarization.
	ModeRedact PIIMode = "redact"
	// ModeBlock refuses to summarize when sensitive content is detected.
	ModeBlock PIIMode = "block"
	// ModeOff skips detection entirely.
	ModeOff PIIMode = "off"
)

// ParsePIIMode validates a mode string.
func ParsePIIMode(s string) (PIIMode, error) {
	switch PIIMode(s) {
	case ModeRedact, ModeBlock, ModeOff:
		return PIIMode(s), nil
	default:
		return "", fmt.Errorf("invalid PII mode %q (want redact, block or off)", s)
	}
}

// Options are per-call summarization parameters.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

const systemPrompt = "You are a document summarization assistant. Output only the summary, no preamble."

const userPromptPrefix = "Summarize the following document concisely. " +
	"Preserve key facts and conclusions. " +
	"Do not add commentary or meta text.\n\n"

// Summarizer is the external generative-text capability.
type Summarizer interface {
	Summarize(ctx context.Context, systemPrompt, userText string, opts Options) (string, error)
}

// Extractor turns a document reference into raw text.
type Extractor interface {
	Extract(ctx context.Context, reference string) (string, error)
}

// PIIChecker is the sensitive-content pipeline. ContainsPII fails open,
// RedactText fails closed.
type PIIChecker interface {
	ContainsPII(ctx context.Context, text string) bool
	RedactText(ctx context.Context, text string) (string, error)
}

// Service runs the full pipeline for one document per call. Invocations are
// independent and share no state.
type Service struct {
	extractor  Extractor
	pii        PIIChecker
	summarizer Summarizer
	logger     logger.Logger
	audit      *logger.AuditLogger
}

// NewService wires the pipeline collaborators.
func NewService(extractor Extractor, pii PIIChecker, summarizer Summarizer, log logger.Logger) *Service {
	return &Service{
		extractor:  extractor,
		pii:        pii,
		summarizer: summarizer,
		logger:     log,
		audit:      logger.NewAuditLogger(log),
	}
}

// SummarizeText applies the PII policy to text and summarizes it. Blank
// input returns "" without any service call.
func (s *Service) SummarizeText(ctx context.Context, text string, mode PIIMode, opts Options) (string, error) {
	runID := uuid.NewString()
	return s.summarizeText(ctx, runID, text, mode, opts)
}

// SummarizeDocument extracts a document reference and summarizes its text
// under the PII policy.
func (s *Service) SummarizeDocument(ctx context.Context, reference string, mode PIIMode, opts Options) (string, error) {
	runID := uuid.NewString()

	text, err := s.extractor.Extract(ctx, reference)
	if err != nil {
		s.audit.ErrorEvent("extract_failed", err, logger.String("runId", runID))
		return "", err
	}
	s.audit.Event("extract_complete",
		logger.String("runId", runID),
		logger.Int("textChars", len([]rune(text))),
	)

	return s.summarizeText(ctx, runID, text, mode, opts)
}

func (s *Service) summarizeText(ctx context.Context, runID, text string, mode PIIMode, opts Options) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	switch mode {
	case ModeBlock:
		if s.pii.ContainsPII(ctx, text) {
			s.audit.Event("blocked_by_policy", logger.String("runId", runID))
			return "", ErrBlocked
		}
	case ModeRedact:
		redacted, err := s.pii.RedactText(ctx, text)
		if err != nil {
			// Fail closed: nothing unvetted leaves the trust boundary.
			s.audit.ErrorEvent("redaction_failed", err, logger.String("runId", runID))
			return "", err
		}
		s.audit.Event("redaction_complete",
			logger.String("runId", runID),
			logger.Int("textChars", len([]rune(redacted))),
		)
		text = redacted
	case ModeOff:
		s.audit.Event("pii_check_skipped", logger.String("runId", runID))
	default:
		return "", fmt.Errorf("invalid PII mode %q", mode)
	}

	summary, err := s.summarizer.Summarize(ctx, systemPrompt, userPromptPrefix+text, opts)
	if err != nil {
		s.audit.ErrorEvent("summarize_failed", err, logger.String("runId", runID))
		return "", fmt.Errorf("summarization failed: %w", err)
	}

	s.audit.Event("summarize_complete",
		logger.String("runId", runID),
		logger.String("model", opts.Model),
		logger.Int("summaryChars", len([]rune(summary))),
	)
	return summary, nil
}
