package suites

import "github.com/mewayz/apiprobe/internal/harness"

// LinkInBio covers link-in-bio pages including the public view.
func LinkInBio() harness.Suite {
	return harness.Suite{
		Name:      "linkinbio",
		Title:     "Link In Bio Suite",
		Scenarios: linkInBioScenarios(),
	}
}

func linkInBioScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:    "Create Link Page",
			Section: "Link In Bio",
			Method:  "POST",
			Path:    "/link-in-bio-pages",
			Require: []string{"token", "workspace"},
			Body: map[string]any{
				"workspace_id": "{workspace}",
				"title":        "Creative Studio Links",
				"slug":         "{slug:links}",
				"links": []any{
					map[string]any{"title": "Portfolio", "url": "https://studio.example.com"},
					map[string]any{"title": "Shop", "url": "https://shop.example.com"},
				},
			},
			WantSuccess: wantTrue,
			Capture: []harness.Capture{
				{Target: "link_page", Paths: idPaths("page")},
			},
			PassMessage: "Link page created",
		},
		{
			Name:        "Get Link Page",
			Method:      "GET",
			Path:        "/link-in-bio-pages/{link_page}",
			Require:     []string{"token", "link_page"},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Link page fetched",
		},
		{
			Name:    "Update Link Page",
			Method:  "PUT",
			Path:    "/link-in-bio-pages/{link_page}",
			Require: []string{"token", "link_page"},
			Body: map[string]any{
				"title": "Creative Studio Links (updated)",
			},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Link page updated",
		},
		{
			Name:        "Public Link Page View",
			Kind:        harness.FeatureProbe,
			Method:      "GET",
			Path:        "/link-in-bio/{slug:links}",
			Anonymous:   true,
			Expect:      []int{200},
			WantAnyKey:  []string{"page", "data"},
			PassMessage: "Public link page served without auth",
		},
		{
			Name:        "Link Page Analytics",
			Kind:        harness.FeatureProbe,
			Method:      "GET",
			Path:        "/link-in-bio-pages/{link_page}/analytics",
			Require:     []string{"token", "link_page"},
			Expect:      []int{200},
			PassMessage: "Link page analytics available",
		},
	}
}
