package assess

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/nkurtev/attestor/internal/index"
	"github.com/nkurtev/attestor/internal/model"
	"github.com/nkurtev/attestor/internal/segment"
)

// Aggregator gathers evidence for one requirement from two streams,
// a direct scan of the submission's own text and a search of the
// reference index, then deduplicates, sorts and summarizes it.
// Aggregators hold no per-run state and are safe to reuse.
type Aggregator struct {
	cfg model.ScoringConfig
}

// NewAggregator creates an aggregator with the given scoring knobs
func NewAggregator(cfg model.ScoringConfig) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// Assessment is the aggregator's output for one requirement, before
// gold-standard generation is attached.
type Assessment struct {
	Evidence     []model.Evidence
	Gaps         []string
	Actions      []string
	Confidence   float64
	CurrentState string
}

// Assess collects, merges and scores evidence for the requirement.
// Direct-submission evidence is iterated first, so it wins dedup ties
// against corpus-search evidence.
func (a *Aggregator) Assess(req model.Requirement, submission model.SourceDocument, ix *index.Index) Assessment {
	direct := a.directScan(req, submission)
	searched := a.indexedSearch(req, ix)

	merged := a.dedupe(append(direct, searched...))
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Relevance > merged[j].Relevance })

	confidence := a.aggregateConfidence(merged)
	gaps, actions := a.detectGaps(req, merged)

	return Assessment{
		Evidence:     merged,
		Gaps:         gaps,
		Actions:      actions,
		Confidence:   confidence,
		CurrentState: currentState(merged, confidence),
	}
}

// directScan looks for the requirement's keywords in the submission
// itself. No minimum sentence length applies here: the provider's own
// answers may legitimately be short. Evidence found in the primary
// submission carries a fixed high confidence.
func (a *Aggregator) directScan(req model.Requirement, submission model.SourceDocument) []model.Evidence {
	keywords := keywordsFor(req)
	if len(keywords) == 0 {
		return nil
	}

	var found []model.Evidence
	for _, sentence := range segment.Segment(submission.Text) {
		lower := strings.ToLower(sentence.Text)
		matches := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		found = append(found, model.Evidence{
			SourceName: submission.Name,
			SourceURL:  submission.URL,
			Excerpt:    sentence.Text,
			Location:   sentence.Location(),
			Relevance:  float64(matches) / float64(max(1, len(keywords))),
			Confidence: a.cfg.DirectScanConfidence,
		})
	}
	return found
}

// indexedSearch queries the reference index with the requirement's
// title, falling back to its description, falling back to the id.
func (a *Aggregator) indexedSearch(req model.Requirement, ix *index.Index) []model.Evidence {
	if ix == nil {
		return nil
	}
	query := strings.TrimSpace(req.Title)
	if query == "" {
		query = strings.TrimSpace(req.Description)
	}
	if query == "" {
		query = fmt.Sprintf("Requirement %d", req.ID)
	}

	hits := ix.Search(query, a.cfg.TopN)
	for i := range hits {
		hits[i].Confidence = min(a.cfg.SearchConfidenceCap, hits[i].Relevance)
	}
	return hits
}

var dedupeSpaceRe = regexp.MustCompile(`\s+`)

// dedupe keeps the first evidence item per normalized excerpt key. The
// key is the excerpt's leading prefix with whitespace collapsed, so
// near-identical excerpts from different streams collapse to one.
func (a *Aggregator) dedupe(evidence []model.Evidence) []model.Evidence {
	seen := make(map[string]bool, len(evidence))
	out := make([]model.Evidence, 0, len(evidence))
	for _, ev := range evidence {
		key := a.dedupeKey(ev.Excerpt)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ev)
	}
	return out
}

func (a *Aggregator) dedupeKey(excerpt string) string {
	normalized := strings.TrimSpace(dedupeSpaceRe.ReplaceAllString(excerpt, " "))
	limit := a.cfg.DedupKeyLength
	if limit <= 0 {
		limit = 200
	}
	if len(normalized) > limit {
		normalized = normalized[:limit]
	}
	return normalized
}

// aggregateConfidence averages the surviving relevance scores and
// rewards breadth of corroboration: three or more independent excerpts
// earn a small bonus. The result is clamped to [0,1].
func (a *Aggregator) aggregateConfidence(evidence []model.Evidence) float64 {
	if len(evidence) == 0 {
		return 0
	}
	sum := 0.0
	for _, ev := range evidence {
		sum += ev.Relevance
	}
	confidence := sum / float64(len(evidence))
	if len(evidence) >= a.cfg.BreadthBonusMin {
		confidence += a.cfg.BreadthBonus
	}
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}

// detectGaps emits gap descriptions and matching recommended actions.
// The example-evidence check is a shallow prefix substring probe, not
// semantic matching.
func (a *Aggregator) detectGaps(req model.Requirement, evidence []model.Evidence) (gaps []string, actions []string) {
	if len(evidence) == 0 {
		gaps = append(gaps, "No direct evidence found in the submission or reference corpus.")
		actions = append(actions, fmt.Sprintf("Provide documentary evidence addressing '%s'.", req.Title))
		return gaps, actions
	}

	if len(req.ExampleEvidence) > 0 && !a.examplesEchoed(req.ExampleEvidence, evidence) {
		gaps = append(gaps, "Partial evidence — the narrative does not address the suggested evidence for this requirement.")
		actions = append(actions, fmt.Sprintf("Strengthen the narrative with the suggested evidence, e.g. %s.", req.ExampleEvidence[0]))
	}
	return gaps, actions
}

// examplesEchoed reports whether any example-evidence phrase is echoed
// by any excerpt, probing only the phrase's first few characters.
func (a *Aggregator) examplesEchoed(examples []string, evidence []model.Evidence) bool {
	probeLen := a.cfg.GapProbeLength
	if probeLen <= 0 {
		probeLen = 10
	}
	for _, example := range examples {
		probe := strings.ToLower(strings.TrimSpace(example))
		if probe == "" {
			continue
		}
		if len(probe) > probeLen {
			probe = probe[:probeLen]
		}
		for _, ev := range evidence {
			if strings.Contains(strings.ToLower(ev.Excerpt), probe) {
				return true
			}
		}
	}
	return false
}

func currentState(evidence []model.Evidence, confidence float64) string {
	if len(evidence) == 0 {
		return "No evidence detected."
	}
	noun := "excerpts"
	if len(evidence) == 1 {
		noun = "excerpt"
	}
	return fmt.Sprintf("%d evidence %s found (aggregate confidence %.2f).", len(evidence), noun, confidence)
}

// keywordsFor derives the requirement's scan keywords from its title
// and description: normalized words longer than three characters,
// deduplicated in first-seen order.
func keywordsFor(req model.Requirement) []string {
	words := index.Words(req.Title + " " + req.Description)
	seen := make(map[string]bool, len(words))
	var keywords []string
	for _, w := range words {
		if len(w) <= 3 || seen[w] {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
	}
	return keywords
}
