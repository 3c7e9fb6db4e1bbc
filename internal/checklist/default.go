package checklist

import "github.com/nkurtev/attestor/internal/model"

// Default returns the built-in checklist: 21 requirements across three
// standards, modelled on a dental education provider scheme. Hosts
// with their own scheme supply a YAML checklist instead.
func Default() *model.Checklist {
	return &model.Checklist{
		Name: "Education Provider Standards",
		Standards: []model.Standard{
			{ID: 1, Name: "Protecting patients"},
			{ID: 2, Name: "Quality evaluation and review"},
			{ID: 3, Name: "Student assessment"},
		},
		Requirements: []model.Requirement{
			{
				ID: 1, StandardID: 1,
				Title:       "Students provide patient care only when competent",
				Description: "Students must provide patient care only when they have demonstrated adequate knowledge and skills, with competence assessed and recorded before clinical activity.",
				ExampleEvidence: []string{
					"competence sign-off records",
					"clinical skills gateway assessments",
				},
			},
			{
				ID: 2, StandardID: 1,
				Title:       "Patients are aware they are treated by students",
				Description: "Patients must be made aware that they are being treated by students, and give consent to student involvement in their care.",
				ExampleEvidence: []string{
					"patient consent forms",
					"patient information leaflets",
				},
			},
			{
				ID: 3, StandardID: 1,
				Title:       "Students are supervised appropriately",
				Description: "Students must only provide patient care in an environment that is safe and appropriate, under supervision ratios suited to the activity and the student's stage.",
				ExampleEvidence: []string{
					"supervision rota",
					"supervision ratio policy",
				},
			},
			{
				ID: 4, StandardID: 1,
				Title:       "Supervisors are appropriately qualified",
				Description: "Supervisors must be appropriately qualified and trained for the activity they supervise, with registration status checked where relevant.",
				ExampleEvidence: []string{
					"supervisor training records",
					"registration checks",
				},
			},
			{
				ID: 5, StandardID: 1,
				Title:       "Raising concerns about patient safety",
				Description: "Students and staff must be able to raise concerns about patient safety openly, with a published procedure and protection for those who raise concerns.",
				ExampleEvidence: []string{
					"raising concerns policy",
					"whistleblowing procedure",
				},
			},
			{
				ID: 6, StandardID: 1,
				Title:       "Systems for managing patient safety incidents",
				Description: "The provider must operate systems to identify, report and learn from patient safety incidents arising from student activity.",
				ExampleEvidence: []string{
					"incident reporting system",
					"incident review minutes",
				},
			},
			{
				ID: 7, StandardID: 1,
				Title:       "Student health and fitness to practise",
				Description: "The provider must check students' health clearance and manage fitness to practise concerns through a documented procedure.",
				ExampleEvidence: []string{
					"occupational health clearance",
					"fitness to practise procedure",
				},
			},
			{
				ID: 8, StandardID: 1,
				Title:       "Equality and diversity in patient care and training",
				Description: "The provider must embed equality and diversity in patient care and in the treatment of students, with monitoring of outcomes by protected characteristics.",
				ExampleEvidence: []string{
					"equality and diversity policy",
					"attainment gap monitoring",
				},
			},
			{
				ID: 9, StandardID: 2,
				Title:       "A framework for quality assurance",
				Description: "The provider must operate a quality assurance framework covering all elements of the programme, with clear ownership and an annual cycle.",
				ExampleEvidence: []string{
					"quality assurance framework",
					"annual quality cycle calendar",
				},
			},
			{
				ID: 10, StandardID: 2,
				Title:       "Feedback from students, patients and staff",
				Description: "The programme must collect and act on feedback from students, patients and staff, closing the loop by reporting actions taken.",
				ExampleEvidence: []string{
					"student feedback surveys",
					"you said we did reports",
				},
			},
			{
				ID: 11, StandardID: 2,
				Title:       "External reference points inform the programme",
				Description: "The programme must take account of external reference points such as regulatory standards, benchmark statements and sector guidance.",
				ExampleEvidence: []string{
					"mapping to regulatory standards",
					"benchmark statement review",
				},
			},
			{
				ID: 12, StandardID: 2,
				Title:       "Concerns and complaints are investigated",
				Description: "Concerns and complaints about the programme must be investigated through a published procedure with outcomes recorded and acted upon.",
				ExampleEvidence: []string{
					"complaints procedure",
					"complaints log",
				},
			},
			{
				ID: 13, StandardID: 2,
				Title:       "Serious concerns are reported to the regulator",
				Description: "The provider must notify the regulator of serious concerns affecting its ability to deliver the programme or protect patients.",
				ExampleEvidence: []string{
					"regulator notification procedure",
					"escalation criteria",
				},
			},
			{
				ID: 14, StandardID: 3,
				Title:       "Assessment is valid and reliable",
				Description: "The assessment strategy must use valid and reliable methods, blueprinted against the learning outcomes each assessment claims to test.",
				ExampleEvidence: []string{
					"assessment blueprint",
					"assessment strategy document",
				},
			},
			{
				ID: 15, StandardID: 3,
				Title:       "Management and standard-setting of assessments",
				Description: "Assessments must be managed through documented procedures, with standard-setting methods applied and recorded for each summative assessment.",
				ExampleEvidence: []string{
					"standard setting records",
					"exam board procedures",
				},
			},
			{
				ID: 16, StandardID: 3,
				Title:       "Assessment across the full width of practice",
				Description: "Students must be assessed across the full width of clinical and professional practice required by the learning outcomes.",
				ExampleEvidence: []string{
					"clinical experience log",
					"coverage mapping",
				},
			},
			{
				ID: 17, StandardID: 3,
				Title:       "Contribution of patients and peers to assessment",
				Description: "Assessment should draw on multiple perspectives, including feedback from patients and peers where appropriate to the outcome assessed.",
				ExampleEvidence: []string{
					"multi-source feedback",
					"patient feedback in assessment",
				},
			},
			{
				ID: 18, StandardID: 3,
				Title:       "Examiners are trained and calibrated",
				Description: "Examiners and assessors must be trained, calibrated and monitored so that judgements are consistent across examiners and sittings.",
				ExampleEvidence: []string{
					"examiner training records",
					"calibration exercises",
				},
			},
			{
				ID: 19, StandardID: 3,
				Title:       "External examiners assure comparability",
				Description: "External examiners must be appointed to assure that assessment outcomes are comparable with other providers and that procedures are followed.",
				ExampleEvidence: []string{
					"external examiner reports",
					"responses to external examiners",
				},
			},
			{
				ID: 20, StandardID: 3,
				Title:       "Feedback to students on performance",
				Description: "Students must receive regular, structured feedback on their performance so that areas for development are identified and acted upon.",
				ExampleEvidence: []string{
					"feedback policy",
					"personal development plans",
				},
			},
			{
				ID: 21, StandardID: 3,
				Title:       "Award only on demonstration of all outcomes",
				Description: "Students must only be signed off for award when they have demonstrated all required learning outcomes, with evidence retained for audit.",
				ExampleEvidence: []string{
					"outcome completion matrix",
					"exam board conferral minutes",
				},
			},
		},
	}
}
