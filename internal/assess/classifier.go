package assess

import "github.com/nkurtev/attestor/internal/model"

// Classify maps an evidence count and aggregate confidence to a
// compliance status. It is a two-tier threshold classifier on purpose:
// it distinguishes "clearly strong", "weak but present" and "absent",
// and never asserts active non-compliance. Lexical absence of
// evidence is not evidence of absence of practice, so StatusNotMet is
// never produced here.
func Classify(evidenceCount int, confidence float64, metThreshold float64) model.Status {
	if evidenceCount == 0 {
		return model.StatusUnknown
	}
	if confidence >= metThreshold {
		return model.StatusMet
	}
	return model.StatusPartiallyMet
}
