// Package pdfcheck inspects local PDF files before OCR submission.
package pdfcheck

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/Bassdanger/document-summarizer/internal/extract"
)

var _ extract.PageCounter = (*Counter)(nil)

// Counter reports PDF page counts. The synchronous OCR path accepts
// single-page documents only, so multi-page local files are caught before
// the provider call.
type Counter struct{}

// NewCounter creates a page counter.
func NewCounter() *Counter {
	return &Counter{}
}

// PageCount returns the number of pages in the PDF at path.
func (c *Counter) PageCount(path string) (int, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	return reader.NumPage(), nil
}
