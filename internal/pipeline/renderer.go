package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nkurtev/attestor/internal/model"
)

// WriteReport renders the report to the requested paths and prints the
// console summary. Empty paths skip that format.
func (r *Renderer) WriteReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		out, err := r.RenderJSON(report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(jsonPath, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := os.WriteFile(mdPath, []byte(r.RenderMarkdown(report)), 0o644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote Markdown: %s\n", mdPath)
		}
	}

	fmt.Print(r.RenderSummary(report))
	return nil
}

// RenderJSON renders the complete report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data) + "\n", nil
}

// RenderMarkdown renders the report as a Markdown document
func (r *Renderer) RenderMarkdown(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Compliance Assessment: %s\n\n", report.Submission)
	fmt.Fprintf(&b, "**Checklist:** %s  \n", report.Checklist)
	fmt.Fprintf(&b, "**Assessed:** %s  \n", report.AssessedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "**Reference corpus:** %d documents, %d indexed sentences\n\n",
		report.Corpus.Documents, report.Corpus.IndexedSentences)

	counts := report.StatusCounts()
	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "| Status | Count |\n|---|---|\n")
	fmt.Fprintf(&b, "| Met | %d |\n", counts[model.StatusMet])
	fmt.Fprintf(&b, "| Partially met | %d |\n", counts[model.StatusPartiallyMet])
	fmt.Fprintf(&b, "| Unknown | %d |\n\n", counts[model.StatusUnknown])

	if report.LLM != nil && report.LLM.SummaryMD != "" {
		fmt.Fprintf(&b, "## Narrative\n\n%s\n\n", report.LLM.SummaryMD)
		fmt.Fprintf(&b, "*Generated by %s (%s); descriptive only, does not affect any status.*\n\n",
			report.LLM.Provider, report.LLM.Model)
	}

	fmt.Fprintf(&b, "## Requirements\n\n")
	for _, res := range report.Results {
		fmt.Fprintf(&b, "### R%d: %s\n\n", res.RequirementID, res.Title)
		fmt.Fprintf(&b, "**Status:** %s (confidence %.2f)\n\n", statusLabel(res.Status), res.Confidence)

		if res.CurrentState != "" {
			fmt.Fprintf(&b, "%s\n\n", res.CurrentState)
		}

		if len(res.Evidence) > 0 {
			fmt.Fprintf(&b, "**Evidence:**\n\n")
			for _, ev := range res.Evidence {
				loc := ""
				if ev.Location != "" {
					loc = ", " + ev.Location
				}
				fmt.Fprintf(&b, "- %q (%s%s, relevance %.4f)\n", ev.Excerpt, ev.SourceName, loc, ev.Relevance)
			}
			b.WriteString("\n")
		}

		for _, gap := range res.Gaps {
			fmt.Fprintf(&b, "**Gap:** %s\n\n", gap)
		}
		for _, action := range res.Actions {
			fmt.Fprintf(&b, "**Action:** %s\n\n", action)
		}

		fmt.Fprintf(&b, "**Gold standard**\n\n")
		fmt.Fprintf(&b, "- Principle: %s\n", res.GoldStandard.Principle)
		for _, control := range res.GoldStandard.PracticalControls {
			fmt.Fprintf(&b, "- Control: %s\n", control)
		}
		fmt.Fprintf(&b, "- Example wording: %s\n\n", res.GoldStandard.ExampleWording)
	}

	if q := report.Questionnaire; q != nil {
		fmt.Fprintf(&b, "## Questionnaire Structure\n\n")
		fmt.Fprintf(&b, "Detected %d of %d questions and %d of %d requirements in the submission text.\n\n",
			q.DetectedQuestionCount(), len(q.Questions),
			q.DetectedRequirementCount(), len(q.Requirements))
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("*This report measures textual evidence coverage, not actual compliance. ")
		b.WriteString("Absence of evidence is reported as unknown, never as non-compliance.*\n")
	}

	return b.String()
}

func statusLabel(s model.Status) string {
	switch s {
	case model.StatusMet:
		return "Met"
	case model.StatusPartiallyMet:
		return "Partially met"
	case model.StatusNotMet:
		return "Not met"
	default:
		return "Unknown"
	}
}
