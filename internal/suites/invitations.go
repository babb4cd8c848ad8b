package suites

import "github.com/mewayz/apiprobe/internal/harness"

// Invitations covers workspace invitations including the duplicate-reject
// path and the public token endpoints.
func Invitations() harness.Suite {
	return harness.Suite{
		Name:      "invitations",
		Title:     "Invitations Suite",
		Scenarios: invitationsScenarios(),
	}
}

func invitationsScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:    "Create Invitation",
			Section: "Invitations",
			Method:  "POST",
			Path:    "/workspaces/{workspace}/invitations",
			Require: []string{"token", "workspace"},
			Body: map[string]any{
				"email": "duplicate.test@example.com",
				"role":  "viewer",
			},
			WantSuccess: wantTrue,
			Capture: []harness.Capture{
				{Target: "invitation", Paths: idPaths("invitation")},
				{Target: "invitation_token", Paths: []string{"invitation.token", "data.invitation.token", "data.token", "token"}},
			},
			PassMessage: "Invitation created",
		},
		{
			Name:    "Duplicate Invitation Rejected",
			Method:  "POST",
			Path:    "/workspaces/{workspace}/invitations",
			Require: []string{"token", "workspace", "invitation"},
			Body: map[string]any{
				"email": "duplicate.test@example.com",
				"role":  "viewer",
			},
			Expect:      []int{409},
			WantSuccess: wantFalse,
			PassMessage: "Duplicate invitation properly rejected",
		},
		{
			Name:        "List Invitations",
			Method:      "GET",
			Path:        "/workspaces/{workspace}/invitations",
			Require:     []string{"token", "workspace"},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Invitations listed",
		},
		{
			Name:        "Public Invitation Lookup",
			Method:      "GET",
			Path:        "/invitations/{invitation_token}",
			Require:     []string{"invitation_token"},
			Anonymous:   true,
			Expect:      []int{200},
			WantAnyKey:  []string{"invitation", "data"},
			PassMessage: "Invitation resolved by token without auth",
		},
		{
			Name:        "Public Invitation Decline",
			Method:      "POST",
			Path:        "/invitations/{invitation_token}/decline",
			Require:     []string{"invitation_token"},
			Anonymous:   true,
			Expect:      []int{200},
			PassMessage: "Invitation declined without auth",
		},
		{
			Name:        "Resend Invitation",
			Kind:        harness.FeatureProbe,
			Method:      "POST",
			Path:        "/workspaces/{workspace}/invitations/{invitation}/resend",
			Require:     []string{"token", "workspace", "invitation"},
			Expect:      []int{200},
			PassMessage: "Invitation resent",
		},
	}
}
