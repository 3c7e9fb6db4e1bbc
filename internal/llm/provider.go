package llm

import (
	"context"
	"fmt"

	"github.com/nkurtev/attestor/internal/model"
)

// Provider is implemented by each LLM backend able to narrate an
// assessment report. The narrative is generated after classification
// and can never change a status, a score, or an evidence item.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Narrate generates a narrative summary of the report
	Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error)

	// IsAvailable checks that the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// NarrateRequest is the input for narrative generation
type NarrateRequest struct {
	// Report is the completed assessment to narrate
	Report model.Report

	// AllowedSources is the strict allowlist of document names and
	// URLs the narrative may cite. Anything else is a citation leak.
	AllowedSources []string
	AllowedURLs    []string

	// Prompt overrides the default prompt when non-empty
	Prompt string

	// Model selects a provider-specific model
	Model string

	// MaxTokens bounds the response length
	MaxTokens int
}

// NarrateResponse is the provider's output
type NarrateResponse struct {
	Narrative  string
	CitedURLs  []string
	Model      string
	TokensUsed int
}

// Config holds provider configuration
type Config struct {
	Provider      string // "openai", "ollama", or "" for disabled
	Model         string
	APIKey        string
	BaseURL       string
	Timeout       int // seconds
	StrictSources bool
	MaxTokens     int
}

// DefaultConfig returns provider defaults with narration disabled
func DefaultConfig() Config {
	return Config{
		Provider:      "",
		Timeout:       30,
		StrictSources: true,
		MaxTokens:     1000,
	}
}

// BuildPrompt constructs the default narration prompt. The rules keep
// the narrative descriptive: it reports what evidence was found, never
// whether the provider "really is" compliant.
func BuildPrompt(report model.Report, allowedSources []string) string {
	counts := report.StatusCounts()

	prompt := fmt.Sprintf(`You are narrating a lexical compliance assessment. The assessment reports how well a submission's text evidences each checklist requirement - it NEVER asserts actual compliance or non-compliance.

CRITICAL RULES:
1. You may ONLY reference these source documents:
%s

2. Do not invent documents, requirements, or evidence beyond this list.
3. Where a requirement has status "unknown", state plainly that no textual evidence was found.
4. Describe evidence strength, not compliance: prefer "the submission evidences X" over "the provider complies with X".
5. Never assert that a requirement is actually satisfied or violated in practice.

Assessment summary:
- Submission: %s
- Checklist: %s
- Requirements assessed: %d
- Met: %d, partially met: %d, unknown: %d
- Reference corpus: %d documents, %d indexed sentences
`,
		joinSources(allowedSources),
		report.Submission,
		report.Checklist,
		len(report.Results),
		counts[model.StatusMet],
		counts[model.StatusPartiallyMet],
		counts[model.StatusUnknown],
		report.Corpus.Documents,
		report.Corpus.IndexedSentences,
	)

	// Surface the weakest areas first; they are what a reader acts on
	listed := 0
	for _, res := range report.Results {
		if res.Status != model.StatusUnknown || listed >= 5 {
			continue
		}
		if listed == 0 {
			prompt += "\nRequirements with no evidence found:\n"
		}
		prompt += fmt.Sprintf("- R%d: %s\n", res.RequirementID, res.Title)
		listed++
	}

	prompt += "\nProvide a 4-6 sentence narrative of evidence coverage and the most pressing gaps."
	return prompt
}

func joinSources(sources []string) string {
	if len(sources) == 0 {
		return "(no source documents cited)"
	}
	out := ""
	for i, s := range sources {
		if i >= 20 {
			out += fmt.Sprintf("\n... and %d more", len(sources)-20)
			break
		}
		out += fmt.Sprintf("\n- %s", s)
	}
	return out
}
