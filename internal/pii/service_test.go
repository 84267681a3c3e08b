package pii_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bassdanger/document-summarizer/internal/models"
	"github.com/Bassdanger/document-summarizer/internal/pii"
	"github.com/Bassdanger/document-summarizer/pkg/logger"
)

var _ pii.EntityDetector = (*mockDetector)(nil)

// mockDetector is a closure-based EntityDetector for tests.
type mockDetector struct {
	DetectEntitiesFn func(ctx context.Context, text, languageCode string) ([]models.Span, error)
}

func (m *mockDetector) DetectEntities(ctx context.Context, text, languageCode string) ([]models.Span, error) {
	return m.DetectEntitiesFn(ctx, text, languageCode)
}

func TestServiceContainsPII(t *testing.T) {
	t.Parallel()

	t.Run("false for blank text without calling the detector", func(t *testing.T) {
		t.Parallel()

		det := &mockDetector{DetectEntitiesFn: func(context.Context, string, string) ([]models.Span, error) {
			t.Fatal("detector should not be called")
			return nil, nil
		}}
		svc := pii.NewService(det, logger.NewTestLogger())

		assert.False(t, svc.ContainsPII(context.Background(), "   \n\t "))
	})

	t.Run("true when any chunk has entities", func(t *testing.T) {
		t.Parallel()

		det := &mockDetector{DetectEntitiesFn: func(_ context.Context, text, _ string) ([]models.Span, error) {
			if strings.Contains(text, "555-1234") {
				return []models.Span{{Start: 0, End: 8}}, nil
			}
			return nil, nil
		}}
		svc := pii.NewService(det, logger.NewTestLogger(), pii.WithChunkChars(10))

		assert.True(t, svc.ContainsPII(context.Background(), strings.Repeat("x", 30)+"555-1234"))
	})

	t.Run("fails open on detector error", func(t *testing.T) {
		t.Parallel()

		det := &mockDetector{DetectEntitiesFn: func(context.Context, string, string) ([]models.Span, error) {
			return nil, errors.New("connection refused")
		}}
		svc := pii.NewService(det, logger.NewTestLogger())

		assert.True(t, svc.ContainsPII(context.Background(), "perfectly ordinary text"))
	})

	t.Run("false when no chunk has entities", func(t *testing.T) {
		t.Parallel()

		det := &mockDetector{DetectEntitiesFn: func(context.Context, string, string) ([]models.Span, error) {
			return nil, nil
		}}
		svc := pii.NewService(det, logger.NewTestLogger(), pii.WithChunkChars(5))

		assert.False(t, svc.ContainsPII(context.Background(), "nothing sensitive here"))
	})
}

func TestServiceRedactText(t *testing.T) {
	t.Parallel()

	t.Run("shifts chunk-local spans to global coordinates", func(t *testing.T) {
		t.Parallel()

		// Every chunk reports its first two runes as sensitive.
		det := &mockDetector{DetectEntitiesFn: func(_ context.Context, text, _ string) ([]models.Span, error) {
			return []models.Span{{Start: 0, End: 2}}, nil
		}}
		svc := pii.NewService(det, logger.NewTestLogger(),
			pii.WithChunkChars(4),
			pii.WithMask("*"),
		)

		got, err := svc.RedactText(context.Background(), "abcdefgh")

		require.NoError(t, err)
		assert.Equal(t, "*cd*gh", got)
	})

	t.Run("merges spans that meet at a chunk boundary", func(t *testing.T) {
		t.Parallel()

		det := &mockDetector{DetectEntitiesFn: func(_ context.Context, text, _ string) ([]models.Span, error) {
			switch text {
			case "ab12": // span reaches the chunk's end
				return []models.Span{{Start: 2, End: 4}}, nil
			case "34cd": // span starts at the next chunk's beginning
				return []models.Span{{Start: 0, End: 2}}, nil
			default:
				return nil, nil
			}
		}}
		svc := pii.NewService(det, logger.NewTestLogger(),
			pii.WithChunkChars(4),
			pii.WithMask("[N]"),
		)

		got, err := svc.RedactText(context.Background(), "ab1234cd")

		require.NoError(t, err)
		// A single merged redaction, not two back-to-back masks.
		assert.Equal(t, "ab[N]cd", got)
	})

	t.Run("fails closed on detector error", func(t *testing.T) {
		t.Parallel()

		det := &mockDetector{DetectEntitiesFn: func(context.Context, string, string) ([]models.Span, error) {
			return nil, errors.New("throttled")
		}}
		svc := pii.NewService(det, logger.NewTestLogger())

		got, err := svc.RedactText(context.Background(), "account 4111-1111")

		require.Error(t, err)
		assert.Empty(t, got)
	})

	t.Run("fails closed when only a later chunk errors", func(t *testing.T) {
		t.Parallel()

		det := &mockDetector{DetectEntitiesFn: func(_ context.Context, text, _ string) ([]models.Span, error) {
			if strings.HasPrefix(text, "zz") {
				return nil, errors.New("throttled")
			}
			return nil, nil
		}}
		svc := pii.NewService(det, logger.NewTestLogger(), pii.WithChunkChars(2))

		_, err := svc.RedactText(context.Background(), "aabbzzcc")

		require.Error(t, err)
	})

	t.Run("returns blank text unchanged without detector calls", func(t *testing.T) {
		t.Parallel()

		det := &mockDetector{DetectEntitiesFn: func(context.Context, string, string) ([]models.Span, error) {
			t.Fatal("detector should not be called")
			return nil, nil
		}}
		svc := pii.NewService(det, logger.NewTestLogger())

		got, err := svc.RedactText(context.Background(), "  \n ")

		require.NoError(t, err)
		assert.Equal(t, "  \n ", got)
	})

	t.Run("non-positive worker bound still completes", func(t *testing.T) {
		t.Parallel()

		det := &mockDetector{DetectEntitiesFn: func(context.Context, string, string) ([]models.Span, error) {
			return []models.Span{{Start: 0, End: 1}}, nil
		}}
		svc := pii.NewService(det, logger.NewTestLogger(),
			pii.WithChunkChars(2),
			pii.WithMaxWorkers(0),
			pii.WithMask("_"),
		)

		got, err := svc.RedactText(context.Background(), "abcdef")

		require.NoError(t, err)
		assert.Equal(t, "_b_d_f", got)
	})

	t.Run("no entities leaves text unchanged", func(t *testing.T) {
		t.Parallel()

		det := &mockDetector{DetectEntitiesFn: func(context.Context, string, string) ([]models.Span, error) {
			return nil, nil
		}}
		svc := pii.NewService(det, logger.NewTestLogger())

		got, err := svc.RedactText(context.Background(), "nothing to hide")

		require.NoError(t, err)
		assert.Equal(t, "nothing to hide", got)
	})
}
