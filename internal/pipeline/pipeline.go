package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nkurtev/attestor/internal/assess"
	"github.com/nkurtev/attestor/internal/canonical"
	"github.com/nkurtev/attestor/internal/goldstd"
	"github.com/nkurtev/attestor/internal/index"
	"github.com/nkurtev/attestor/internal/llm"
	"github.com/nkurtev/attestor/internal/model"
)

// Pipeline orchestrates the complete assessment process
type Pipeline struct {
	checklist  *model.Checklist
	extractor  *canonical.Extractor
	aggregator *assess.Aggregator
	generator  *goldstd.Generator
	renderer   *Renderer
	summarizer *llm.Summarizer // Optional LLM summarizer (nil if disabled)
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration and
// checklist. The checklist must already be validated.
func NewPipeline(cfg *model.Config, cl *model.Checklist) *Pipeline {
	// Create LLM summarizer if configured
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Printf("Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		checklist:  cl,
		extractor:  canonical.NewExtractor(cfg.Canonical),
		aggregator: assess.NewAggregator(cfg.Scoring),
		generator:  goldstd.NewGenerator(),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
		config:     cfg,
	}
}

// Assess runs the full assessment of one submission against the
// checklist and a reference corpus, producing a complete report.
// Results keep the checklist's requirement ordering.
func (p *Pipeline) Assess(ctx context.Context, submission model.SourceDocument, corpus []model.SourceDocument) (*model.Report, error) {
	// 1. Build the lexical index over the reference corpus
	ix := index.Build(corpus, p.config.Scoring)

	// 2. Extract the canonical questionnaire from the submission
	questionnaire := p.extractor.Extract(submission.Text)

	// 3. Assess each requirement
	results := make([]model.RequirementResult, 0, len(p.checklist.Requirements))
	for _, req := range p.checklist.Requirements {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		assessment := p.aggregator.Assess(req, submission, ix)

		// 4. Classify and generate remediation guidance
		status := assess.Classify(len(assessment.Evidence), assessment.Confidence, p.config.Scoring.MetThreshold)
		gold := p.generator.Generate(
			fmt.Sprintf("R%d", req.ID),
			req.Description,
			narrativeFor(questionnaire, req.ID),
		)

		results = append(results, model.RequirementResult{
			RequirementID: req.ID,
			StandardID:    req.StandardID,
			Title:         req.Title,
			Status:        status,
			Evidence:      assessment.Evidence,
			Gaps:          assessment.Gaps,
			Actions:       assessment.Actions,
			Confidence:    assessment.Confidence,
			GoldStandard:  gold,
			CurrentState:  assessment.CurrentState,
		})
	}

	// 5. Build report (without LLM summary yet)
	report := &model.Report{
		Submission:    submission.Name,
		SubmissionID:  submission.ID,
		SubmissionURL: submission.URL,
		Checklist:     p.checklist.Name,
		AssessedAt:    time.Now().UTC(),
		Corpus: model.CorpusStats{
			Documents:        ix.Documents(),
			IndexedSentences: ix.Len(),
		},
		Results:       results,
		Questionnaire: questionnaire,
	}

	// 6. Generate LLM narrative if enabled (AFTER classification, never
	// affects any status)
	if p.summarizer.IsEnabled() {
		summary, err := p.summarizer.Summarize(ctx, *report)
		if err != nil {
			// Don't fail the assessment, just warn
			fmt.Printf("Warning: LLM narrative generation failed: %v\n", err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	return report, nil
}

// Renderer exposes the pipeline's renderer for output handling
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// narrativeFor returns the detected narrative of one canonical
// requirement, or "" when nothing was detected for it
func narrativeFor(q *model.QuestionnaireModel, requirementID int) string {
	if q == nil {
		return ""
	}
	for _, item := range q.Requirements {
		if item.Number == requirementID && item.Detected {
			return item.Narrative
		}
	}
	return ""
}

// Renderer writes reports in the supported output formats
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderSummary produces the short console summary of a report
func (r *Renderer) RenderSummary(report *model.Report) string {
	counts := report.StatusCounts()

	var b strings.Builder
	fmt.Fprintf(&b, "Assessment: %s\n", report.Submission)
	fmt.Fprintf(&b, "Checklist:  %s\n", report.Checklist)
	fmt.Fprintf(&b, "Corpus:     %d documents, %d indexed sentences\n",
		report.Corpus.Documents, report.Corpus.IndexedSentences)
	fmt.Fprintf(&b, "Results:    %d met, %d partially met, %d unknown (of %d)\n",
		counts[model.StatusMet],
		counts[model.StatusPartiallyMet],
		counts[model.StatusUnknown],
		len(report.Results))

	if q := report.Questionnaire; q != nil {
		fmt.Fprintf(&b, "Detected:   %d/%d questions, %d/%d requirements\n",
			q.DetectedQuestionCount(), len(q.Questions),
			q.DetectedRequirementCount(), len(q.Requirements))
	}
	return b.String()
}
