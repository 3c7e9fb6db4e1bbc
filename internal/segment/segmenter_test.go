package segment

import "testing"

func TestSegment_BasicSplit(t *testing.T) {
	text := "Supervision ratios are maintained. Each student is assigned a named supervisor. Records are reviewed annually."

	sentences := Segment(text)
	if len(sentences) != 3 {
		t.Fatalf("Expected 3 sentences, got %d", len(sentences))
	}

	if sentences[0].Text != "Supervision ratios are maintained." {
		t.Errorf("Unexpected first sentence: %q", sentences[0].Text)
	}
	if sentences[2].Text != "Records are reviewed annually." {
		t.Errorf("Unexpected last sentence: %q", sentences[2].Text)
	}
}

func TestSegment_Ordinals(t *testing.T) {
	sentences := Segment("First point. Second point. Third point.")

	for i, s := range sentences {
		if s.Ordinal != i+1 {
			t.Errorf("Sentence %d has ordinal %d", i, s.Ordinal)
		}
	}
	if len(sentences) > 0 && sentences[0].Location() != "Sentence 1" {
		t.Errorf("Expected location 'Sentence 1', got %q", sentences[0].Location())
	}
}

func TestSegment_NoSplitOnLowercaseContinuation(t *testing.T) {
	// "e.g. the" must not split: the terminator is followed by a lowercase letter
	text := "Students are supervised at all times, e.g. the clinic rota names a supervisor."

	sentences := Segment(text)
	if len(sentences) != 1 {
		t.Fatalf("Expected 1 sentence, got %d: %v", len(sentences), sentences)
	}
}

func TestSegment_SplitBeforeDigit(t *testing.T) {
	text := "The review happens yearly. 21 requirements are assessed."

	sentences := Segment(text)
	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d", len(sentences))
	}
	if sentences[1].Text != "21 requirements are assessed." {
		t.Errorf("Unexpected second sentence: %q", sentences[1].Text)
	}
}

func TestSegment_CRLFNormalization(t *testing.T) {
	crlf := Segment("One sentence here.\r\nAnother sentence here.")
	lf := Segment("One sentence here.\nAnother sentence here.")

	if len(crlf) != len(lf) {
		t.Fatalf("CRLF and LF input segmented differently: %d vs %d", len(crlf), len(lf))
	}
	for i := range crlf {
		if crlf[i].Text != lf[i].Text {
			t.Errorf("Sentence %d differs: %q vs %q", i, crlf[i].Text, lf[i].Text)
		}
	}
}

func TestSegment_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t", "\r\n"} {
		if got := Segment(input); len(got) != 0 {
			t.Errorf("Segment(%q) = %v, want empty", input, got)
		}
	}
}

func TestSegment_QuestionAndExclamation(t *testing.T) {
	sentences := Segment("Is the rota published? Yes! It is reviewed monthly.")
	if len(sentences) != 3 {
		t.Fatalf("Expected 3 sentences, got %d", len(sentences))
	}
}

func TestSegment_TrailingTextWithoutTerminator(t *testing.T) {
	sentences := Segment("Complete sentence here. Trailing fragment without terminator")
	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d", len(sentences))
	}
	if sentences[1].Text != "Trailing fragment without terminator" {
		t.Errorf("Unexpected trailing sentence: %q", sentences[1].Text)
	}
}

func TestSegment_Idempotent(t *testing.T) {
	text := "Supervision is documented. Assessments are blueprinted. Feedback is recorded."

	first := Segment(text)
	second := Segment(text)

	if len(first) != len(second) {
		t.Fatalf("Repeated segmentation differs in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Sentence %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
