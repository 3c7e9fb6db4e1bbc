package goldstd

import "github.com/nkurtev/attestor/internal/model"

// curatedTemplates maps well-known requirement ids to hand-authored
// guidance. Keys are normalized (uppercased, trimmed) before lookup.
func curatedTemplates() map[string]model.GoldStandard {
	return map[string]model.GoldStandard{
		"R1": {
			Principle: "Patients must be protected at all times: students only ever treat patients within their demonstrated competence and under appropriate supervision.",
			PracticalControls: []string{
				"Maintain a published supervision rota naming a supervising clinician for every treatment session.",
				"Gate each clinical procedure behind a recorded competence sign-off before a student may perform it on a patient.",
				"Record supervisor interventions in the patient record and review them monthly.",
				"Hold an escalation protocol that any staff member can trigger to pause student treatment immediately.",
			},
			ExampleWording: "All clinical sessions operate under a published supervision rota with a named supervising clinician. Students undertake only those procedures for which competence has been formally signed off, and supervisors record every intervention in the patient record; interventions are reviewed at the monthly clinical governance meeting.",
		},
		"R9": {
			Principle: "The provider must operate systematic quality assurance covering every element of the programme, with findings feeding demonstrable change.",
			PracticalControls: []string{
				"Run an annual quality cycle with terms of reference, a standing committee and published minutes.",
				"Collect structured feedback from students, patients and staff each term.",
				"Track actions arising from quality reviews to closure in a visible action log.",
				"Commission periodic external scrutiny of the quality process itself.",
			},
			ExampleWording: "Quality assurance operates on an annual cycle owned by the Programme Quality Committee. Structured feedback from students, patients and staff is reviewed termly, and every action arising is tracked to closure in the programme action log; the cycle itself is externally reviewed every three years.",
		},
		"R14": {
			Principle: "Assessments must be valid, reliable and mapped to the learning outcomes they claim to test.",
			PracticalControls: []string{
				"Blueprint every summative assessment against the published learning outcomes.",
				"Apply recognized standard-setting methods and document the rationale for pass marks.",
				"Use external examiners to moderate borderline and failing decisions.",
				"Publish assessment criteria to students before each assessment cycle.",
			},
			ExampleWording: "Every summative assessment is blueprinted against the programme learning outcomes before delivery. Pass marks are set using documented standard-setting methods, borderline decisions are moderated by external examiners, and the full assessment criteria are published to students at the start of each academic year.",
		},
		"R21": {
			Principle: "Only students who have demonstrated all required learning outcomes may be signed off as fit to practise.",
			PracticalControls: []string{
				"Maintain a per-student outcome matrix recording evidence for every required outcome.",
				"Require the exam board to confirm outcome completeness before any award decision.",
				"Retain sign-off evidence for the period required by the regulator.",
			},
			ExampleWording: "Award decisions are made only when a student's outcome matrix shows evidence against every required learning outcome. The examination board formally confirms completeness before conferral, and the underlying evidence is retained for the full regulatory period so that any sign-off can be audited after the fact.",
		},
	}
}

// theme pairs a keyword predicate with a guidance template. Themes are
// evaluated in declared order; the first match wins.
type theme struct {
	name     string
	keywords []string
	template model.GoldStandard
}

func themeTable() []theme {
	return []theme{
		{
			name:     "supervision",
			keywords: []string{"supervision", "supervis", "oversight"},
			template: model.GoldStandard{
				Principle: "Effective supervision protects patients and supports learning: supervisory arrangements must be explicit, resourced and auditable.",
				PracticalControls: []string{
					"Define supervision ratios and publish them to staff and students.",
					"Name an accountable supervisor for every clinical or workplace session.",
					"Audit actual supervision levels against the published ratios each term.",
					"Train supervisors in their responsibilities and refresh training annually.",
				},
				ExampleWording: "Supervision ratios are defined in the programme handbook and published to all staff and students. Every session names an accountable supervisor, actual supervision levels are audited against the published ratios each term, and all supervisors complete annual training in their responsibilities.",
			},
		},
		{
			name:     "assessment",
			keywords: []string{"assessment", "examination", "exam"},
			template: model.GoldStandard{
				Principle: "Assessment decisions must be defensible: criteria published in advance, methods standard-set, and outcomes moderated.",
				PracticalControls: []string{
					"Publish assessment criteria and formats before each cycle begins.",
					"Standard-set pass marks with a documented, recognized method.",
					"Moderate borderline outcomes through external examiners.",
					"Give students structured feedback after every summative assessment.",
				},
				ExampleWording: "Assessment criteria are published before each cycle, pass marks are standard-set using a documented method, and borderline outcomes are moderated externally. Students receive structured feedback after every summative assessment so that performance concerns are addressed before the next cycle.",
			},
		},
		{
			name:     "patient-safety",
			keywords: []string{"patient safety", "patient care", "safeguard"},
			template: model.GoldStandard{
				Principle: "Patient safety overrides educational convenience: any risk to patients halts the educational activity until resolved.",
				PracticalControls: []string{
					"Operate an incident reporting system covering all student-delivered care.",
					"Review every patient-safety incident at a named governance committee.",
					"Empower any staff member to stop a student treatment session immediately.",
					"Check student health and immunization clearances before patient contact.",
				},
				ExampleWording: "All student-delivered care is covered by the incident reporting system, and every incident is reviewed by the clinical governance committee with outcomes fed back to the programme team. Any staff member may halt a treatment session immediately, and no student has patient contact before health clearance is confirmed.",
			},
		},
		{
			name:     "curriculum",
			keywords: []string{"curriculum", "programme", "syllabus"},
			template: model.GoldStandard{
				Principle: "The curriculum must remain current, coherent and mapped end-to-end to the required learning outcomes.",
				PracticalControls: []string{
					"Map every module to the learning outcomes it delivers and keep the map current.",
					"Review curriculum content annually against professional and regulatory change.",
					"Involve patients, students and employers in curriculum review.",
					"Version and publish curriculum changes with their rationale.",
				},
				ExampleWording: "The curriculum map links every module to the outcomes it delivers and is maintained as a living document. Content is reviewed annually against regulatory and professional developments, review panels include patient and student representatives, and every change is versioned and published with its rationale.",
			},
		},
		{
			name:     "quality",
			keywords: []string{"quality", "standard"},
			template: model.GoldStandard{
				Principle: "Quality assurance must be systematic and evidenced: a defined cycle, measurable standards, and visible follow-through.",
				PracticalControls: []string{
					"Define the quality cycle with an owner, a calendar and terms of reference.",
					"Measure against explicit internal standards and external benchmarks.",
					"Track review actions to closure in a published action log.",
					"Report the quality cycle's findings to the provider's governing body annually.",
				},
				ExampleWording: "Quality assurance follows a defined annual cycle with a named owner and published terms of reference. Performance is measured against explicit standards and external benchmarks, actions are tracked to closure in a published log, and findings are reported to the governing body every year.",
			},
		},
	}
}

// genericTemplate is the final fallback when neither the curated table
// nor any theme matches.
func genericTemplate() model.GoldStandard {
	return model.GoldStandard{
		Principle: "The provider must show clear governance and accountability for this requirement, with documented arrangements that are monitored and reviewed.",
		PracticalControls: []string{
			"Assign a named owner accountable for this requirement.",
			"Document the arrangements that satisfy the requirement and keep them current.",
			"Monitor compliance on a defined schedule with recorded outcomes.",
			"Review the arrangements at least annually and act on findings.",
		},
		ExampleWording: "A named member of staff owns this requirement and maintains the documented arrangements that satisfy it. Compliance is monitored on a defined schedule with outcomes recorded, and the arrangements are reviewed at least annually with any findings acted upon and tracked to closure.",
	}
}

// audit and training controls are appended when the programme text
// signals those practices; they fine-tune wording inside the already
// chosen template family and never change which family applies.
const (
	auditControl    = "Subject the arrangements to periodic internal audit and retain the audit trail."
	trainingControl = "Provide role-specific training for the staff who operate these arrangements."
)
