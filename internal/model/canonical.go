package model

// CanonicalQuestionItem is one fixed question slot of the canonical
// questionnaire model. The slot is always present in output whether or
// not the question was found in the submission text.
type CanonicalQuestionItem struct {
	Number   int    `json:"number"`
	Stem     string `json:"stem"`             // Question label, or a visible placeholder when not detected
	Answer   string `json:"answer,omitempty"` // Provider's answer text (empty when not detected)
	Detected bool   `json:"detected"`
}

// CanonicalRequirementItem is one fixed requirement-narrative slot of
// the canonical questionnaire model.
type CanonicalRequirementItem struct {
	Number    int    `json:"number"`
	Label     string `json:"label"`
	Narrative string `json:"narrative,omitempty"` // Provider's own narrative, truncated at any attach-evidence marker
	Detected  bool   `json:"detected"`
}

// QuestionnaireModel is the always-complete canonical view of a
// submission. Its cardinality is a constant of the configured scheme:
// len(Questions) and len(Requirements) never depend on the input text.
type QuestionnaireModel struct {
	Questions    []CanonicalQuestionItem    `json:"questions"`
	Requirements []CanonicalRequirementItem `json:"requirements"`
}

// DetectedQuestionCount returns how many question slots were found in the source text
func (m *QuestionnaireModel) DetectedQuestionCount() int {
	n := 0
	for _, q := range m.Questions {
		if q.Detected {
			n++
		}
	}
	return n
}

// DetectedRequirementCount returns how many requirement narratives were found
func (m *QuestionnaireModel) DetectedRequirementCount() int {
	n := 0
	for _, r := range m.Requirements {
		if r.Detected {
			n++
		}
	}
	return n
}
