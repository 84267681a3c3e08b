package models

// SourceKind classifies where a document reference points.
type SourceKind string

const (
	SourceLocalFile    SourceKind = "local_file"
	SourceRemoteObject SourceKind = "remote_object"
)

// ContentType is the coarse document format derived from the file extension.
type ContentType string

const (
	ContentPDF        ContentType = "pdf"
	ContentWord       ContentType = "word"
	ContentPlainText  ContentType = "text"
	ContentLegacyWord ContentType = "legacy_word"
)

// DocumentSource is a classified input reference. Immutable once built.
type DocumentSource struct {
	Kind        SourceKind  `json:"kind"`
	Locator     string      `json:"locator"`
	ContentType ContentType `json:"contentType"`
}

// PlanKind selects the extraction path for a classified source.
type PlanKind string

const (
	// PlanSyncOCR runs single-page OCR on local file bytes.
	PlanSyncOCR PlanKind = "sync_ocr"
	// PlanAsyncOCR submits an object-store document to the async multi-page OCR job API.
	PlanAsyncOCR PlanKind = "async_ocr"
	// PlanStructuredDoc parses a word-processor document locally.
	PlanStructuredDoc PlanKind = "structured_doc"
	// PlanLocalText reads a local file as UTF-8 text.
	PlanLocalText PlanKind = "local_text"
	// PlanObjectText reads a small object-store object as UTF-8 text.
	PlanObjectText PlanKind = "object_text"
)

// ExtractionPlan is the output of source classification: which path to run
// and the locator fields that path needs. Classification does no I/O.
type ExtractionPlan struct {
	Source DocumentSource `json:"source"`
	Kind   PlanKind       `json:"kind"`

	// Path is set for local plans.
	Path string `json:"path,omitempty"`
	// Bucket and Key are set for remote-object plans.
	Bucket string `json:"bucket,omitempty"`
	Key    string `json:"key,omitempty"`
}
