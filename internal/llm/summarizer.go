package llm

import (
	"context"
	"fmt"

	"github.com/nkurtev/attestor/internal/model"
)

// Summarizer wraps a provider and produces the optional LLMSummary
// attached to a report. It is created only when a provider is
// configured; a nil Summarizer means narration is disabled.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer builds a summarizer from configuration. Returns an
// error for an unknown provider and (nil, nil) when disabled.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// Summarize narrates a completed report. The allowlists are derived
// from the evidence actually present in the report, so the narrative
// cannot cite anything the assessment did not surface.
func (s *Summarizer) Summarize(ctx context.Context, report model.Report) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	sources, urls := citedSources(report)

	resp, err := s.provider.Narrate(ctx, NarrateRequest{
		Report:         report,
		AllowedSources: sources,
		AllowedURLs:    urls,
		Model:          s.config.Model,
		MaxTokens:      s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate narrative: %w", err)
	}

	return &model.LLMSummary{
		Enabled:       true,
		Provider:      s.provider.Name(),
		Model:         resp.Model,
		StrictSources: s.config.StrictSources,
		SummaryMD:     resp.Narrative,
	}, nil
}

// citedSources collects the distinct source names and URLs appearing
// in the report's evidence
func citedSources(report model.Report) (names []string, urls []string) {
	seenName := make(map[string]bool)
	seenURL := make(map[string]bool)
	for _, res := range report.Results {
		for _, ev := range res.Evidence {
			if ev.SourceName != "" && !seenName[ev.SourceName] {
				seenName[ev.SourceName] = true
				names = append(names, ev.SourceName)
			}
			if ev.SourceURL != "" && !seenURL[ev.SourceURL] {
				seenURL[ev.SourceURL] = true
				urls = append(urls, ev.SourceURL)
			}
		}
	}
	return names, urls
}
