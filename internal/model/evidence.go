package model

// Evidence is a scored textual citation supporting (or failing to
// support) compliance with a requirement. It is produced both by the
// direct submission scan and by searching the reference index, then
// deduplicated by the aggregator.
type Evidence struct {
	SourceName string  `json:"source_name"`          // Display name of the source document
	SourceURL  string  `json:"source_url,omitempty"` // Origin URL if the source came from the web
	Excerpt    string  `json:"excerpt"`              // The cited sentence text
	Location   string  `json:"location,omitempty"`   // Citation label, e.g. "Sentence 12"
	Relevance  float64 `json:"relevance"`            // Lexical relevance score, clamped to [0,1] in practice
	Confidence float64 `json:"confidence,omitempty"` // How much this evidence stream is trusted
}

// Status classifies the compliance of a single requirement
type Status string

const (
	StatusMet          Status = "met"           // Strong evidence, confidence at or above threshold
	StatusPartiallyMet Status = "partially-met" // Evidence exists but confidence is below threshold
	StatusNotMet       Status = "not-met"       // Evidence of absence (never produced by the classifier itself)
	StatusUnknown      Status = "unknown"       // No signal either way
)

// GoldStandard is three-layer remediation guidance for a requirement:
// the underlying principle, concrete practical controls, and example
// wording a provider could adapt.
type GoldStandard struct {
	Principle         string   `json:"principle"`
	PracticalControls []string `json:"practical_controls"` // Always 3-5 entries
	ExampleWording    string   `json:"example_wording"`
}

// RequirementResult is the per-requirement output of one assessment run
type RequirementResult struct {
	RequirementID int          `json:"requirement_id"`
	StandardID    int          `json:"standard_id,omitempty"`
	Title         string       `json:"title"`
	Status        Status       `json:"status"`
	Evidence      []Evidence   `json:"evidence"`   // Deduplicated, sorted by relevance descending
	Gaps          []string     `json:"gaps,omitempty"`
	Actions       []string     `json:"actions,omitempty"`
	Confidence    float64      `json:"confidence"` // Aggregate confidence in [0,1]
	GoldStandard  GoldStandard `json:"gold_standard"`
	CurrentState  string       `json:"current_state"` // Short human-readable summary
}
