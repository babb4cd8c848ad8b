package suites

import "github.com/mewayz/apiprobe/internal/harness"

// Payments covers the payment catalog, checkout, transactions, and the
// public Stripe webhook's signature enforcement.
func Payments() harness.Suite {
	return harness.Suite{
		Name:      "payments",
		Title:     "Payments Suite",
		Scenarios: paymentsScenarios(),
	}
}

func paymentsScenarios() []harness.Scenario {
	return []harness.Scenario{
		{
			Name:        "Payment Packages",
			Section:     "Payments",
			Method:      "GET",
			Path:        "/payments/packages",
			Require:     []string{"token"},
			Expect:      []int{200},
			WantAnyKey:  []string{"plans", "packages", "data"},
			PassMessage: "Payment packages listed",
		},
		{
			Name:    "Create Checkout Session",
			Kind:    harness.FeatureProbe,
			Method:  "POST",
			Path:    "/payments/checkout",
			Require: []string{"token", "workspace"},
			Body: map[string]any{
				"workspace_id": "{workspace}",
				"package":      "pro",
				"billing":      "monthly",
			},
			Expect:     []int{200, 201},
			WantAnyKey: []string{"checkout_url", "data.checkout_url", "session.id", "data.session.id"},
			Capture: []harness.Capture{
				{Target: "checkout_session", Paths: []string{"session.id", "data.session.id", "data.id", "id"}},
			},
			PassMessage: "Checkout session created",
		},
		{
			Name:        "List Transactions",
			Method:      "GET",
			Path:        "/payments/transactions",
			Require:     []string{"token"},
			Expect:      []int{200},
			WantSuccess: wantTrue,
			PassMessage: "Transactions listed",
		},
		{
			Name:      "Stripe Webhook Security",
			Kind:      harness.WebhookProbe,
			Method:    "POST",
			Path:      "/webhook/stripe",
			Anonymous: true,
			Body: map[string]any{
				"id":   "evt_probe",
				"type": "checkout.session.completed",
			},
			WantBodyContains: []string{"signature", "payload"},
			PassMessage:      "Unsigned webhook properly rejected",
		},
	}
}
