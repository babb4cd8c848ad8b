package suites

import "github.com/mewayz/apiprobe/internal/harness"

// Subscription covers plan listing and subscription checkout.
func Subscription() harness.Suite {
	return harness.Suite{
		Name:      "subscription",
		Title:     "Subscription Suite",
		Scenarios: subscriptionScenarios(),
	}
}

func subscriptionScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:        "List Subscription Plans",
			Section:     "Subscription",
			Method:      "GET",
			Path:        "/subscription/plans",
			Require:     []string{"token"},
			Expect:      []int{200},
			WantAnyKey:  []string{"plans", "data"},
			PassMessage: "Subscription plans listed",
		},
		{
			Name:        "Current Subscription",
			Kind:        harness.FeatureProbe,
			Method:      "GET",
			Path:        "/subscription/current",
			Require:     []string{"token"},
			Expect:      []int{200},
			PassMessage: "Current subscription returned",
		},
		{
			Name:    "Subscription Checkout",
			Kind:    harness.FeatureProbe,
			Method:  "POST",
			Path:    "/subscription/checkout",
			Require: []string{"token", "workspace"},
			Body: map[string]any{
				"workspace_id": "{workspace}",
				"plan":         "pro",
				"billing":      "monthly",
			},
			Expect:      []int{200, 201},
			WantAnyKey:  []string{"checkout_url", "data.checkout_url"},
			PassMessage: "Subscription checkout session created",
		},
	}
}
