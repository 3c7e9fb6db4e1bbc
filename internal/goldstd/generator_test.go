package goldstd

import (
	"strings"
	"testing"

	"github.com/nkurtev/attestor/internal/model"
)

func assertWellFormed(t *testing.T, gs model.GoldStandard) {
	t.Helper()
	if gs.Principle == "" {
		t.Error("Principle is empty")
	}
	if len(gs.PracticalControls) < 3 || len(gs.PracticalControls) > 5 {
		t.Errorf("Expected 3-5 controls, got %d", len(gs.PracticalControls))
	}
	for i, c := range gs.PracticalControls {
		if c == "" {
			t.Errorf("Control %d is empty", i)
		}
	}
	if gs.ExampleWording == "" {
		t.Error("ExampleWording is empty")
	}
	if len(gs.ExampleWording) <= len(gs.Principle) {
		t.Errorf("ExampleWording (%d chars) should be longer than the principle (%d chars)",
			len(gs.ExampleWording), len(gs.Principle))
	}
}

func TestGenerate_CuratedTemplate(t *testing.T) {
	gen := NewGenerator()

	gs := gen.Generate("R9", "", "")
	assertWellFormed(t, gs)
	if !strings.Contains(gs.Principle, "quality assurance") {
		t.Errorf("Expected the curated R9 template, got principle %q", gs.Principle)
	}

	// Id normalization: lowercase with whitespace still hits the table
	if got := gen.Generate("  r9 ", "", ""); got.Principle != gs.Principle {
		t.Error("Expected normalized id to reach the same curated template")
	}
}

func TestGenerate_ThemePriorityOrder(t *testing.T) {
	gen := NewGenerator()

	// Both supervision and quality keywords present: supervision wins
	// because themes are evaluated in priority order.
	gs := gen.Generate("R99", "quality of clinical supervision arrangements", "")
	assertWellFormed(t, gs)
	if !strings.Contains(strings.ToLower(gs.Principle), "supervision") {
		t.Errorf("Expected the supervision theme to win, got %q", gs.Principle)
	}
}

func TestGenerate_ThemeFallbacks(t *testing.T) {
	gen := NewGenerator()

	tests := []struct {
		description string
		wantWord    string
	}{
		{"examination and assessment strategy", "defensible"},
		{"arrangements for patient safety incidents", "Patient safety"},
		{"curriculum design and review", "curriculum"},
		{"quality monitoring against standards", "Quality assurance"},
	}

	for _, tt := range tests {
		gs := gen.Generate("R99", tt.description, "")
		assertWellFormed(t, gs)
		if !strings.Contains(gs.Principle+gs.ExampleWording, tt.wantWord) {
			t.Errorf("description %q: expected %q in output, got principle %q",
				tt.description, tt.wantWord, gs.Principle)
		}
	}
}

func TestGenerate_GenericFallback(t *testing.T) {
	gen := NewGenerator()

	gs := gen.Generate("R99", "something entirely unrelated to any theme", "")
	assertWellFormed(t, gs)
	if !strings.Contains(gs.Principle, "governance") {
		t.Errorf("Expected the generic template, got %q", gs.Principle)
	}
}

func TestGenerate_NilRequirementInput(t *testing.T) {
	gen := NewGenerator()

	// Everything empty must still yield the full well-formed structure
	gs := gen.Generate("", "", "")
	assertWellFormed(t, gs)
}

func TestGenerate_ProgramTextRefinesWithinFamily(t *testing.T) {
	gen := NewGenerator()

	plain := gen.Generate("R99", "supervision arrangements", "")
	refined := gen.Generate("R99", "supervision arrangements", "we run an internal audit programme")

	// Same family either way
	if plain.Principle != refined.Principle {
		t.Error("Programme text must not change the selected template family")
	}
	assertWellFormed(t, refined)

	if len(refined.PracticalControls) != len(plain.PracticalControls)+1 {
		t.Errorf("Expected one appended audit control, got %d vs %d",
			len(refined.PracticalControls), len(plain.PracticalControls))
	}
	last := refined.PracticalControls[len(refined.PracticalControls)-1]
	if !strings.Contains(last, "audit") {
		t.Errorf("Expected an audit-flavoured control, got %q", last)
	}
}

func TestGenerate_ProgramTextControlCapAtFive(t *testing.T) {
	gen := NewGenerator()

	// Supervision theme already has 4 controls; audit + training would
	// exceed the cap, so only one is appended.
	gs := gen.Generate("R99", "supervision arrangements", "audit and training both mentioned")
	assertWellFormed(t, gs)
	if len(gs.PracticalControls) != 5 {
		t.Errorf("Expected the control count capped at 5, got %d", len(gs.PracticalControls))
	}
}

func TestGenerate_TemplatesNotMutatedAcrossCalls(t *testing.T) {
	gen := NewGenerator()

	first := gen.Generate("R99", "supervision arrangements", "audit evidence")
	second := gen.Generate("R99", "supervision arrangements", "")

	if len(second.PracticalControls) >= len(first.PracticalControls) {
		t.Errorf("Earlier refinement leaked into the shared template: %d vs %d",
			len(second.PracticalControls), len(first.PracticalControls))
	}
}
