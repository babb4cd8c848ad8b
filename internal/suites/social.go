package suites

import "github.com/mewayz/apiprobe/internal/harness"

// Social covers social media accounts and posts.
func Social() harness.Suite {
	return harness.Suite{
		Name:      "social",
		Title:     "Social Media Suite",
		Scenarios: socialScenarios(),
	}
}

func socialScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:    "Create Social Account",
			Section: "Social Media",
			Method:  "POST",
			Path:    "/social-media-accounts",
			Require: []string{"token", "workspace"},
			Body: map[string]any{
				"workspace_id": "{workspace}",
				"platform":     "instagram",
				"username":     "{slug:creator}",
				"display_name": "Creative Studio",
			},
			WantSuccess: wantTrue,
			Capture: []harness.Capture{
				{Target: "social_account", Paths: idPaths("account")},
			},
			PassMessage: "Social account connected",
		},
		{
			Name:        "List Social Accounts",
			Method:      "GET",
			Path:        "/social-media-accounts",
			Require:     []string{"token"},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Social accounts listed",
		},
		{
			Name:    "Create Social Post",
			Method:  "POST",
			Path:    "/social-media-posts",
			Require: []string{"token", "social_account"},
			Body: map[string]any{
				"social_media_account_id": "{social_account}",
				"content":                 "Launching our new studio page 🎨",
				"status":                  "draft",
			},
			WantSuccess: wantTrue,
			Capture: []harness.Capture{
				{Target: "social_post", Paths: idPaths("post")},
			},
			PassMessage: "Social post drafted",
		},
		{
			Name:    "Update Social Post",
			Method:  "PUT",
			Path:    "/social-media-posts/{social_post}",
			Require: []string{"token", "social_post"},
			Body: map[string]any{
				"content": "Launching our new studio page 🎨 (edited)",
			},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Social post updated",
		},
		{
			Name:        "Publish Social Post",
			Kind:        harness.FeatureProbe,
			Method:      "POST",
			Path:        "/social-media-posts/{social_post}/publish",
			Require:     []string{"token", "social_post"},
			Expect:      []int{200},
			PassMessage: "Social post published",
		},
		{
			Name:        "Delete Social Post",
			Method:      "DELETE",
			Path:        "/social-media-posts/{social_post}",
			Require:     []string{"token", "social_post"},
			Expect:      []int{200, 204},
			PassMessage: "Social post deleted",
		},
	}
}
