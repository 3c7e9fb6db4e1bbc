package model

import "fmt"

// SourceDocument is an opaque unit of already-extracted text.
// It plays one of two roles: the submission being assessed, or a
// reference document used to corroborate claims. The engine never
// reads files or URLs itself; loading is the caller's job.
type SourceDocument struct {
	ID   string `json:"id"`
	Name string `json:"name"`           // Display name used in citations
	Text string `json:"-"`              // Extracted plain text (not serialized into reports)
	URL  string `json:"url,omitempty"`  // Origin URL, if the document came from the web
}

// Sentence is a contiguous span of a document's text with a stable
// ordinal used as a citation location. Sentences are derived by the
// segmenter and never persisted.
type Sentence struct {
	Ordinal int    `json:"ordinal"` // 1-based position within the document
	Text    string `json:"text"`
}

// Location returns the citation label for the sentence ("Sentence N")
func (s Sentence) Location() string {
	return fmt.Sprintf("Sentence %d", s.Ordinal)
}
