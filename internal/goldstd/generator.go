package goldstd

import (
	"strings"

	"github.com/nkurtev/attestor/internal/model"
)

// Generator produces three-layer remediation guidance per requirement:
// a curated template when the id is known, a theme-matched template
// otherwise, and a generic governance template as the last resort.
// Whatever path is taken, the output always has one non-empty
// principle, 3-5 non-empty controls, and one example wording longer
// than the principle.
type Generator struct {
	curated map[string]model.GoldStandard
	themes  []theme
	generic model.GoldStandard
}

// NewGenerator creates a generator with the built-in template tables
func NewGenerator() *Generator {
	return &Generator{
		curated: curatedTemplates(),
		themes:  themeTable(),
		generic: genericTemplate(),
	}
}

// Generate selects guidance for the requirement. requirementID is
// normalized (uppercased, trimmed) before the curated lookup. The
// description drives the theme heuristic; programText, when supplied,
// only fine-tunes wording within the chosen family and never changes
// which family was selected. Empty input still yields a well-formed
// generic result; upstream callers may pass partially-constructed
// requirements.
func (g *Generator) Generate(requirementID, description, programText string) model.GoldStandard {
	chosen := g.selectTemplate(requirementID, description)
	chosen = refineForProgram(chosen, programText)
	return chosen
}

// selectTemplate runs the three-step dispatch: curated id, then themes
// in priority order, then generic.
func (g *Generator) selectTemplate(requirementID, description string) model.GoldStandard {
	id := strings.ToUpper(strings.TrimSpace(requirementID))
	if id != "" {
		if tmpl, ok := g.curated[id]; ok {
			return cloneTemplate(tmpl)
		}
	}

	lower := strings.ToLower(description)
	if lower != "" {
		for _, th := range g.themes {
			for _, kw := range th.keywords {
				if strings.Contains(lower, kw) {
					return cloneTemplate(th.template)
				}
			}
		}
	}

	return cloneTemplate(g.generic)
}

// refineForProgram appends theme-reinforcing controls when the
// programme text mentions them, capped so the control count stays
// within 3-5.
func refineForProgram(tmpl model.GoldStandard, programText string) model.GoldStandard {
	if programText == "" {
		return tmpl
	}
	lower := strings.ToLower(programText)
	if strings.Contains(lower, "audit") && len(tmpl.PracticalControls) < 5 {
		tmpl.PracticalControls = append(tmpl.PracticalControls, auditControl)
	}
	if strings.Contains(lower, "training") && len(tmpl.PracticalControls) < 5 {
		tmpl.PracticalControls = append(tmpl.PracticalControls, trainingControl)
	}
	return tmpl
}

// cloneTemplate copies a template so callers can never mutate the
// shared tables through a returned slice.
func cloneTemplate(tmpl model.GoldStandard) model.GoldStandard {
	controls := make([]string, len(tmpl.PracticalControls))
	copy(controls, tmpl.PracticalControls)
	tmpl.PracticalControls = controls
	return tmpl
}
