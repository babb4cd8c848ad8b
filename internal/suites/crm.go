package suites

import "github.com/mewayz/apiprobe/internal/harness"

// CRM covers the contact pipeline.
func CRM() harness.Suite {
	return harness.Suite{
		Name:      "crm",
		Title:     "CRM Suite",
		Scenarios: crmScenarios(),
	}
}

func crmScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:    "Create CRM Contact",
			Section: "CRM",
			Method:  "POST",
			Path:    "/crm-contacts",
			Require: []string{"token", "workspace"},
			Body: map[string]any{
				"workspace_id": "{workspace}",
				"first_name":   "Ava",
				"last_name":    "Chen",
				"email":        "{email:ava.chen@example.com}",
				"status":       "lead",
			},
			WantSuccess: wantTrue,
			Capture: []harness.Capture{
				{Target: "crm_contact", Paths: idPaths("contact")},
			},
			PassMessage: "CRM contact created",
		},
		{
			Name:        "List CRM Contacts",
			Method:      "GET",
			Path:        "/crm-contacts",
			Require:     []string{"token"},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "CRM contacts listed",
		},
		{
			Name:    "Update CRM Contact",
			Method:  "PUT",
			Path:    "/crm-contacts/{crm_contact}",
			Require: []string{"token", "crm_contact"},
			Body: map[string]any{
				"status": "customer",
			},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "CRM contact promoted to customer",
		},
		{
			Name:    "CRM Contact Notes",
			Kind:    harness.FeatureProbe,
			Method:  "POST",
			Path:    "/crm-contacts/{crm_contact}/notes",
			Require: []string{"token", "crm_contact"},
			Body: map[string]any{
				"note": "Asked about the premium plan",
			},
			Expect:      []int{200, 201},
			PassMessage: "Contact note attached",
		},
		{
			Name:        "Delete CRM Contact",
			Method:      "DELETE",
			Path:        "/crm-contacts/{crm_contact}",
			Require:     []string{"token", "crm_contact"},
			Expect:      []int{200, 204},
			PassMessage: "CRM contact deleted",
		},
	}
}
