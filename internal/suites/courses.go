package suites

import "github.com/mewayz/apiprobe/internal/harness"

// Courses covers course creation and the partially implemented course
// content endpoints.
func Courses() harness.Suite {
	return harness.Suite{
		Name:      "courses",
		Title:     "Courses Suite",
		Scenarios: coursesScenarios(),
	}
}

func coursesScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:    "Create Course",
			Section: "Courses",
			Method:  "POST",
			Path:    "/courses",
			Require: []string{"token", "workspace"},
			Body: map[string]any{
				"workspace_id": "{workspace}",
				"title":        "Brand Design Fundamentals",
				"slug":         "{slug:brand-design}",
				"description":  "A six week course on building a visual identity",
				"price":        49.99,
			},
			WantSuccess: wantTrue,
			Capture: []harness.Capture{
				{Target: "course", Paths: idPaths("course")},
			},
			PassMessage: "Course created",
		},
		{
			Name:        "List Courses",
			Method:      "GET",
			Path:        "/courses",
			Require:     []string{"token"},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Courses listed",
		},
		{
			Name:    "Update Course",
			Method:  "PUT",
			Path:    "/courses/{course}",
			Require: []string{"token", "course"},
			Body: map[string]any{
				"description": "A six week course on building a visual identity (revised)",
			},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Course updated",
		},
		{
			Name:    "Create Course Module",
			Kind:    harness.FeatureProbe,
			Method:  "POST",
			Path:    "/courses/{course}/modules",
			Require: []string{"token", "course"},
			Body: map[string]any{
				"title": "Week 1: Research",
				"order": 1,
			},
			Expect:      []int{200, 201},
			PassMessage: "Course module created",
		},
		{
			Name:        "Course Analytics",
			Kind:        harness.FeatureProbe,
			Method:      "GET",
			Path:        "/courses/{course}/analytics",
			Require:     []string{"token", "course"},
			Expect:      []int{200},
			PassMessage: "Course analytics available",
		},
	}
}
