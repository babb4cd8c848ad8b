package suites

import "github.com/mewayz/apiprobe/internal/harness"

// Workspace covers the workspace CRUD chain plus the setup-progress
// endpoint known to leak HTML on misconfigured routing.
func Workspace() harness.Suite {
	return harness.Suite{
		Name:      "workspace",
		Title:     "Workspace Suite",
		Scenarios: workspaceScenarios(),
	}
}

func workspaceScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:    "Create Workspace",
			Section: "Workspaces",
			Method:  "POST",
			Path:    "/workspaces",
			Require: []string{"token"},
			Body: map[string]any{
				"name":        "Creative Studio Workspace",
				"description": "Workspace provisioned by the integration probe",
			},
			WantSuccess: wantTrue,
			Capture: []harness.Capture{
				{Target: "workspace", Paths: workspaceIDPaths},
			},
			PassMessage: "Workspace created and id captured",
		},
		{
			Name:    "Get Workspace",
			Method:  "GET",
			Path:    "/workspaces/{workspace}",
			Require: []string{"token", "workspace"},
			Expect:  []int{200},
			Match: []harness.Match{
				{Paths: workspaceIDPaths, Ref: "workspace"},
			},
			PassMessage: "Workspace fetched and id matches",
		},
		{
			Name:        "List Workspaces",
			Method:      "GET",
			Path:        "/workspaces",
			Require:     []string{"token"},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Workspace list returned",
		},
		{
			Name:    "Update Workspace",
			Method:  "PUT",
			Path:    "/workspaces/{workspace}",
			Require: []string{"token", "workspace"},
			Body: map[string]any{
				"name": "Creative Studio Workspace (updated)",
			},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Workspace updated",
		},
		{
			Name:    "Workspace Setup Progress",
			Method:  "POST",
			Path:    "/workspaces/{workspace}/setup-progress",
			Require: []string{"token", "workspace"},
			Body: map[string]any{
				"step":      "branding",
				"completed": true,
			},
			Expect:      []int{200},
			PassMessage: "Setup progress recorded as JSON",
		},
		{
			Name:        "Workspace Analytics",
			Kind:        harness.FeatureProbe,
			Method:      "GET",
			Path:        "/workspaces/{workspace}/analytics",
			Require:     []string{"token", "workspace"},
			Expect:      []int{200},
			PassMessage: "Workspace analytics available",
		},
	}
}
