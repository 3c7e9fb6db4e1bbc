package model

import "time"

// Report is the complete output of assessing one submission against
// the checklist and a reference corpus. Results preserve the canonical
// requirement ordering of the checklist.
type Report struct {
	Submission    string    `json:"submission"`              // Display name of the assessed document
	SubmissionID  string    `json:"submission_id,omitempty"`
	SubmissionURL string    `json:"submission_url,omitempty"`
	Checklist     string    `json:"checklist"`               // Name of the checklist applied
	AssessedAt    time.Time `json:"assessed_at"`

	Corpus CorpusStats `json:"corpus"`

	Results       []RequirementResult `json:"results"`
	Questionnaire *QuestionnaireModel `json:"questionnaire,omitempty"`

	LLM *LLMSummary `json:"llm,omitempty"` // Optional narrative summary (never affects any status)
}

// CorpusStats describes the reference corpus the index was built from
type CorpusStats struct {
	Documents        int `json:"documents"`
	IndexedSentences int `json:"indexed_sentences"`
}

// StatusCounts tallies the report's results by status
func (r *Report) StatusCounts() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, res := range r.Results {
		counts[res.Status]++
	}
	return counts
}

// LLMSummary contains an optional LLM-generated narrative.
// It is generated after classification and never feeds back into
// statuses, scores, or evidence.
type LLMSummary struct {
	Enabled       bool     `json:"enabled"`
	Provider      string   `json:"provider,omitempty"`
	Model         string   `json:"model,omitempty"`
	StrictSources bool     `json:"strict_sources"`       // Whether source-name allowlisting was enforced
	SummaryMD     string   `json:"summary_md,omitempty"` // Markdown narrative
	Warnings      []string `json:"warnings,omitempty"`
}
