// Package extract turns a document reference into raw text via the
// appropriate extraction path.
package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Bassdanger/document-summarizer/internal/models"
)

var s3URIPattern = regexp.MustCompile(`^s3://([^/]+)/(.+)$`)

// Resolve classifies a raw reference into an ExtractionPlan. Remote
// object-store URIs are matched by scheme prefix, content types by file
// extension. Pure classification: no I/O happens here.
func Resolve(reference string) (*models.ExtractionPlan, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("empty document reference")
	}

	if strings.HasPrefix(strings.ToLower(reference), "s3://") {
		return resolveRemote(reference)
	}
	return resolveLocal(reference)
}

func resolveRemote(reference string) (*models.ExtractionPlan, error) {
	m := s3URIPattern.FindStringSubmatch(reference)
	if m == nil {
		return nil, fmt.Errorf("invalid S3 URI: %s", reference)
	}
	bucket, key := m[1], m[2]

	plan := &models.ExtractionPlan{
		Source: models.DocumentSource{
			Kind:    models.SourceRemoteObject,
			Locator: reference,
		},
		Bucket: bucket,
		Key:    key,
	}

	if strings.EqualFold(filepath.Ext(key), ".pdf") {
		// Multi-page OCR goes through the async job API; it only
		// accepts object-store input.
		plan.Source.ContentType = models.ContentPDF
		plan.Kind = models.PlanAsyncOCR
		return plan, nil
	}

	plan.Source.ContentType = models.ContentPlainText
	plan.Kind = models.PlanObjectText
	return plan, nil
}

func resolveLocal(reference string) (*models.ExtractionPlan, error) {
	plan := &models.ExtractionPlan{
		Source: models.DocumentSource{
			Kind:    models.SourceLocalFile,
			Locator: reference,
		},
		Path: reference,
	}

	switch strings.ToLower(filepath.Ext(reference)) {
	case ".pdf":
		plan.Source.ContentType = models.ContentPDF
		plan.Kind = models.PlanSyncOCR
	case ".docx":
		plan.Source.ContentType = models.ContentWord
		plan.Kind = models.PlanStructuredDoc
	case ".doc":
		plan.Source.ContentType = models.ContentLegacyWord
		return nil, fmt.Errorf("%w: binary .doc is not supported, use .docx or convert to PDF", ErrUnsupportedFormat)
	default:
		plan.Source.ContentType = models.ContentPlainText
		plan.Kind = models.PlanLocalText
	}
	return plan, nil
}
