package suites

import "github.com/mewayz/apiprobe/internal/harness"

// Auth covers registration, login, the authenticated-user endpoint,
// validation enforcement, and the protected-endpoint sweep.
func Auth() harness.Suite {
	return harness.Suite{
		Name:      "auth",
		Title:     "Authentication Suite",
		Scenarios: authScenarios(),
	}
}

func authScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:    "Auth Register",
			Section: "Authentication",
			Method:  "POST",
			Path:    "/auth/register",
			Body: map[string]any{
				"name":     "Emma Wilson",
				"email":    "{email}",
				"password": "{password}",
			},
			Expect:      []int{200, 201},
			WantSuccess: wantTrue,
			Capture: []harness.Capture{
				{Target: "token", Paths: tokenPaths},
				{Target: "principal", Paths: userIDPaths},
			},
			PassMessage: "User registered and token captured",
		},
		{
			Name:   "Auth Login",
			Method: "POST",
			Path:   "/auth/login",
			Body: map[string]any{
				"email":    "{email}",
				"password": "{password}",
			},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			Capture: []harness.Capture{
				{Target: "token", Paths: tokenPaths},
			},
			PassMessage: "Login succeeded and token refreshed",
		},
		{
			Name:    "Auth Current User",
			Method:  "GET",
			Path:    "/auth/user",
			Require: []string{"token"},
			Expect:  []int{200},
			Match: []harness.Match{
				{Paths: userIDPaths, Ref: "principal"},
			},
			PassMessage: "Current user matches registered principal",
		},
		{
			Name:   "Auth Registration Validation",
			Kind:   harness.ValidationProbe,
			Method: "POST",
			Path:   "/auth/register",
			Body: map[string]any{
				"name":     "",
				"email":    "invalid-email",
				"password": "123",
			},
			PassMessage: "Invalid registration properly rejected",
		},
		{
			Name: "Auth Protected Endpoints",
			Kind: harness.AuthProbe,
			Paths: []string{
				"/auth/user",
				"/workspaces",
				"/social-media-accounts",
				"/social-media-posts",
				"/link-in-bio-pages",
				"/crm-contacts",
				"/courses",
				"/products",
			},
		},
	}
}

// authCleanupScenarios ends a run: logout, then confirm the token died.
func authCleanupScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:        "Auth Logout",
			Section:     "Cleanup",
			Method:      "POST",
			Path:        "/auth/logout",
			Require:     []string{"token"},
			Expect:      []int{200},
			ClearsToken: true,
			PassMessage: "Logged out and token cleared",
		},
		{
			Name:               "Auth Token Revoked",
			Method:             "GET",
			Path:               "/auth/user",
			ExpectUnauthorized: true,
			PassMessage:        "Revoked token properly rejected",
		},
	}
}
