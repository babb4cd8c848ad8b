package suites

import "github.com/mewayz/apiprobe/internal/harness"

// Team covers workspace membership management.
func Team() harness.Suite {
	return harness.Suite{
		Name:      "team",
		Title:     "Team Suite",
		Scenarios: teamScenarios(),
	}
}

func teamScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:        "List Team Members",
			Section:     "Team",
			Method:      "GET",
			Path:        "/workspaces/{workspace}/members",
			Require:     []string{"token", "workspace"},
			Expect:      []int{200},
			WantAnyKey:  []string{"members", "data"},
			PassMessage: "Team members listed",
		},
		{
			Name:    "Update Member Role",
			Kind:    harness.FeatureProbe,
			Method:  "PUT",
			Path:    "/workspaces/{workspace}/members/{principal}",
			Require: []string{"token", "workspace", "principal"},
			Body: map[string]any{
				"role": "admin",
			},
			Expect:      []int{200},
			PassMessage: "Member role updated",
		},
		{
			Name:        "Team Activity Log",
			Kind:        harness.FeatureProbe,
			Method:      "GET",
			Path:        "/workspaces/{workspace}/activity",
			Require:     []string{"token", "workspace"},
			Expect:      []int{200},
			PassMessage: "Team activity available",
		},
	}
}
