package canonical

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/nkurtev/attestor/internal/model"
)

// Extractor turns a raw submission's text into the always-complete
// canonical questionnaire model: a fixed number of question slots and
// requirement-narrative slots, each marked detected or not. The counts
// come from configuration and are invariants of the scheme: the
// output never gains or loses a slot because of what the input text
// happens to contain.
type Extractor struct {
	cfg           model.CanonicalConfig
	maxStem       int
	questionRe    *regexp.Regexp
	requirementRe *regexp.Regexp
}

// header is one candidate item marker found in the text
type header struct {
	id    int
	stem  string
	start int // match start, for position sorting
	end   int // end of the header's stem region; body starts here
}

// NewExtractor creates an extractor for the configured scheme
func NewExtractor(cfg model.CanonicalConfig) *Extractor {
	if cfg.QuestionCount <= 0 || cfg.RequirementCount <= 0 {
		cfg = model.DefaultConfig().Canonical
	}
	maxStem := cfg.MaxStemLength
	if maxStem <= 0 {
		maxStem = 240
	}

	// Marker-only header patterns: marker token plus a small integer.
	// Stems are cut separately from the text after each marker so that
	// several headers sharing one line are each seen.
	return &Extractor{
		cfg:           cfg,
		maxStem:       maxStem,
		questionRe:    regexp.MustCompile(`(?i)\b(?:question|q)[ \t]*(\d{1,3})\b`),
		requirementRe: regexp.MustCompile(`(?i)\brequirement[ \t]*(\d{1,3})\b`),
	}
}

// Extract builds the canonical model from the submission text. It
// never errors: unparseable or empty input yields a model whose slots
// are all marked not detected.
func (e *Extractor) Extract(text string) *model.QuestionnaireModel {
	normalized := normalizeWhitespace(text)

	questions := e.scanHeaders(e.questionRe, normalized, e.cfg.QuestionCount)
	requirements := e.scanHeaders(e.requirementRe, normalized, e.cfg.RequirementCount)

	out := &model.QuestionnaireModel{
		Questions:    make([]model.CanonicalQuestionItem, 0, e.cfg.QuestionCount),
		Requirements: make([]model.CanonicalRequirementItem, 0, e.cfg.RequirementCount),
	}

	questionBodies := bodies(normalized, questions)
	for id := 1; id <= e.cfg.QuestionCount; id++ {
		h, ok := questions[id]
		if !ok {
			out.Questions = append(out.Questions, model.CanonicalQuestionItem{
				Number:   id,
				Stem:     fmt.Sprintf("Q%d (not detected in extracted text)", id),
				Detected: false,
			})
			continue
		}
		stem := h.stem
		if stem == "" {
			stem = fmt.Sprintf("Question %d", id)
		}
		answer := TrimBoilerplate(questionBodies[id], e.cfg.BoilerplatePhrases)
		out.Questions = append(out.Questions, model.CanonicalQuestionItem{
			Number:   id,
			Stem:     stem,
			Answer:   strings.TrimSpace(answer),
			Detected: true,
		})
	}

	requirementBodies := bodies(normalized, requirements)
	for id := 1; id <= e.cfg.RequirementCount; id++ {
		h, ok := requirements[id]
		if !ok {
			out.Requirements = append(out.Requirements, model.CanonicalRequirementItem{
				Number:   id,
				Label:    fmt.Sprintf("Requirement %d (not detected in extracted text)", id),
				Detected: false,
			})
			continue
		}
		label := h.stem
		if label == "" {
			label = fmt.Sprintf("Requirement %d", id)
		}
		narrative := e.truncateAtAttachMarker(requirementBodies[id])
		out.Requirements = append(out.Requirements, model.CanonicalRequirementItem{
			Number:    id,
			Label:     label,
			Narrative: strings.TrimSpace(narrative),
			Detected:  true,
		})
	}

	return out
}

// scanHeaders collects all candidate matches, discards ids outside the
// canonical range, and keeps only the earliest occurrence per id.
// Earliest-wins is deliberate: marker tokens also appear in narrative
// prose, and a later mention must not steal the id's anchor.
func (e *Extractor) scanHeaders(re *regexp.Regexp, text string, maxID int) map[int]header {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	kept := make(map[int]header)

	for i, m := range matches {
		id, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil || id < 1 || id > maxID {
			continue
		}
		if _, exists := kept[id]; exists {
			continue // Matches arrive in position order; first one wins
		}

		// The stem may not run into the next marker, even one whose id
		// turns out to be a duplicate or out of range.
		limit := len(text)
		if i+1 < len(matches) {
			limit = matches[i+1][0]
		}
		stem, end := e.stemAfter(text, m[1], limit)
		kept[id] = header{id: id, stem: stem, start: m[0], end: end}
	}

	return kept
}

// stemAfter cuts the header's stem from the text following a marker:
// one optional punctuation separator is skipped, then the stem runs to
// the next line break, the next marker, or the configured length cap,
// whichever comes first. The returned end is where the body starts.
func (e *Extractor) stemAfter(text string, from, limit int) (string, int) {
	i := from
	if i < limit {
		switch text[i] {
		case ':', '.', '-', ')':
			i++
		default:
			if strings.HasPrefix(text[i:], "–") {
				i += len("–")
			}
		}
	}
	for i < limit && (text[i] == ' ' || text[i] == '\t') {
		i++
	}

	end := i
	for end < limit && end-i < e.maxStem && text[end] != '\n' {
		end++
	}
	return strings.TrimSpace(text[i:end]), end
}

// bodies slices the text between consecutive kept headers: each item's
// body runs from its header's end to the next header's start, or to
// the end of the document for the last one.
func bodies(text string, headers map[int]header) map[int]string {
	ordered := make([]header, 0, len(headers))
	for _, h := range headers {
		ordered = append(ordered, h)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].start < ordered[j].start })

	out := make(map[int]string, len(ordered))
	for i, h := range ordered {
		end := len(text)
		if i+1 < len(ordered) {
			end = ordered[i+1].start
		}
		out[h.id] = text[h.end:end]
	}
	return out
}

// truncateAtAttachMarker cuts a requirement narrative at the first
// attach-evidence marker: text after the marker is a form instruction,
// not provider content.
func (e *Extractor) truncateAtAttachMarker(narrative string) string {
	lower := strings.ToLower(narrative)
	cut := -1
	for _, marker := range e.cfg.AttachEvidenceMarkers {
		marker = strings.ToLower(strings.TrimSpace(marker))
		if marker == "" {
			continue
		}
		if idx := strings.Index(lower, marker); idx >= 0 && (cut < 0 || idx < cut) {
			cut = idx
		}
	}
	if cut >= 0 {
		return narrative[:cut]
	}
	return narrative
}

var (
	spaceRunRe  = regexp.MustCompile(`[ \t]+`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
	pageBreakRe = regexp.MustCompile(`(?im)^\s*(?:\f|page \d+ of \d+)\s*$`)
)

// normalizeWhitespace collapses runs of spaces and tabs, caps blank
// lines at two, and strips page-break markers left behind by text
// extraction.
func normalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = pageBreakRe.ReplaceAllString(text, "")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return text
}
