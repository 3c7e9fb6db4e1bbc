package checklist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nkurtev/attestor/internal/model"
)

func TestDefault(t *testing.T) {
	cl := Default()

	if len(cl.Requirements) != 21 {
		t.Fatalf("Expected 21 requirements, got %d", len(cl.Requirements))
	}
	if err := Validate(cl); err != nil {
		t.Fatalf("Default checklist invalid: %v", err)
	}
	for i, req := range cl.Requirements {
		if req.ID != i+1 {
			t.Errorf("Requirement at position %d has id %d", i, req.ID)
		}
		if req.StandardID < 1 || req.StandardID > 3 {
			t.Errorf("Requirement %d has standard id %d", req.ID, req.StandardID)
		}
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checklist.yaml")
	yaml := `name: Test Scheme
requirements:
  - id: 1
    standard_id: 1
    title: First requirement
    description: Something must be done.
    example_evidence:
      - a policy document
  - id: 2
    standard_id: 1
    title: Second requirement
    description: Something else must be done.
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cl, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cl.Name != "Test Scheme" {
		t.Errorf("Unexpected name: %q", cl.Name)
	}
	if len(cl.Requirements) != 2 {
		t.Fatalf("Expected 2 requirements, got %d", len(cl.Requirements))
	}
	if cl.Requirements[0].ExampleEvidence[0] != "a policy document" {
		t.Errorf("Example evidence not parsed: %v", cl.Requirements[0].ExampleEvidence)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cl   model.Checklist
	}{
		{"empty", model.Checklist{}},
		{"duplicate id", model.Checklist{Requirements: []model.Requirement{
			{ID: 1, Title: "a"}, {ID: 1, Title: "b"},
		}}},
		{"non-positive id", model.Checklist{Requirements: []model.Requirement{
			{ID: 0, Title: "a"},
		}}},
		{"no title or description", model.Checklist{Requirements: []model.Requirement{
			{ID: 1},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(&tt.cl); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}
