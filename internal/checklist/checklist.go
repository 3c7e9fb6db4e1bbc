package checklist

import (
	"fmt"
	"os"

	"github.com/nkurtev/attestor/internal/model"
	"gopkg.in/yaml.v3"
)

// Load reads a checklist from a YAML file. The engine is agnostic to
// where checklists come from; this loader is one convenient source.
func Load(path string) (*model.Checklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checklist: %w", err)
	}

	var cl model.Checklist
	if err := yaml.Unmarshal(data, &cl); err != nil {
		return nil, fmt.Errorf("parse checklist: %w", err)
	}
	if err := Validate(&cl); err != nil {
		return nil, fmt.Errorf("invalid checklist %s: %w", path, err)
	}
	return &cl, nil
}

// Validate checks a checklist's internal consistency
func Validate(cl *model.Checklist) error {
	if len(cl.Requirements) == 0 {
		return fmt.Errorf("no requirements defined")
	}
	seen := make(map[int]bool, len(cl.Requirements))
	for i, req := range cl.Requirements {
		if req.ID <= 0 {
			return fmt.Errorf("requirement at position %d has non-positive id %d", i, req.ID)
		}
		if seen[req.ID] {
			return fmt.Errorf("duplicate requirement id %d", req.ID)
		}
		seen[req.ID] = true
		if req.Title == "" && req.Description == "" {
			return fmt.Errorf("requirement %d has neither title nor description", req.ID)
		}
	}
	return nil
}
