// Package docx parses word-processor documents. A .docx file is a zip
// container; paragraph text lives in word/document.xml.
package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/Bassdanger/document-summarizer/internal/extract"
)

const documentEntry = "word/document.xml"

var _ extract.StructuredParser = (*Parser)(nil)

// Parser extracts paragraph text from .docx files.
type Parser struct{}

// NewParser creates a docx parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the document's non-blank paragraphs in order.
func (p *Parser) Parse(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open docx container: %w", err)
	}
	defer zr.Close()

	data, err := readEntry(&zr.Reader, documentEntry)
	if err != nil {
		return nil, err
	}
	return paragraphsFromXML(data)
}

func readEntry(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("not a valid docx file: missing %s", name)
}

// paragraphsFromXML walks w:p elements and concatenates their w:t runs.
func paragraphsFromXML(data []byte) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse document XML: %w", err)
	}

	var paragraphs []string
	for _, p := range doc.FindElements("//p") {
		var sb strings.Builder
		for _, t := range p.FindElements(".//t") {
			sb.WriteString(t.Text())
		}
		text := sb.String()
		if strings.TrimSpace(text) != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs, nil
}
