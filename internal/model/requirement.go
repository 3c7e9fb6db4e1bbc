package model

// Requirement is one fixed checklist item being assessed for compliance.
// The checklist is loaded once at startup and never mutated.
type Requirement struct {
	ID              int      `json:"id" yaml:"id"`                                                 // Requirement number within the checklist
	StandardID      int      `json:"standard_id" yaml:"standard_id"`                               // Parent standard/group
	Title           string   `json:"title" yaml:"title"`                                           // Short title
	Description     string   `json:"description" yaml:"description"`                               // Full requirement text
	ExampleEvidence []string `json:"example_evidence,omitempty" yaml:"example_evidence,omitempty"` // Suggested evidence phrases
}

// Standard groups requirements under a named standard
type Standard struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Checklist is the complete static configuration for one assessment scheme
type Checklist struct {
	Name         string        `json:"name" yaml:"name"`
	Standards    []Standard    `json:"standards,omitempty" yaml:"standards,omitempty"`
	Requirements []Requirement `json:"requirements" yaml:"requirements"`
}
