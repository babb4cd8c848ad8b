package suites

import "github.com/mewayz/apiprobe/internal/harness"

// Full chains every vertical in dependency order: authentication first
// (it mints the token every later step needs), then the workspace that
// scopes the rest, then the verticals, and cleanup last. Cleanup failures
// never mask earlier results; they are ordinary outcomes at the tail.
func Full() harness.Suite {
	var scenarios []harness.Scenario
	scenarios = append(scenarios, authScenarios()...)
	scenarios = append(scenarios, workspaceScenarios()...)
	scenarios = append(scenarios, socialScenarios()...)
	scenarios = append(scenarios, linkInBioScenarios()...)
	scenarios = append(scenarios, crmScenarios()...)
	scenarios = append(scenarios, coursesScenarios()...)
	scenarios = append(scenarios, productsScenarios()...)
	scenarios = append(scenarios, paymentsScenarios()...)
	scenarios = append(scenarios, invitationsScenarios()...)
	scenarios = append(scenarios, teamScenarios()...)
	scenarios = append(scenarios, subscriptionScenarios()...)
	scenarios = append(scenarios, authCleanupScenarios()...)

	return harness.Suite{
		Name:      "full",
		Title:     "Full Integration Suite",
		Scenarios: scenarios,
	}
}
