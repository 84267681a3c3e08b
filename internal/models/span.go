package models

// TextChunk is a contiguous slice of the original document text plus its
// starting rune offset in that document. Concatenating chunks in order
// reconstructs the original text exactly.
type TextChunk struct {
	Text        string `json:"text"`
	StartOffset int    `json:"startOffset"`
}

// Span is a half-open rune range [Start, End) in global document
// coordinates marking detected sensitive content.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}
