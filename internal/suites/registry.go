// Package suites holds the built-in scenario tables for the SUT's
// verticals. Each suite is pure data interpreted by the harness executor;
// the "full" suite chains every vertical in dependency order.
package suites

import (
	"fmt"
	"sort"

	"github.com/mewayz/apiprobe/internal/harness"
)

var registry = map[string]func() harness.Suite{
	"auth":         Auth,
	"workspace":    Workspace,
	"social":       Social,
	"linkinbio":    LinkInBio,
	"crm":          CRM,
	"courses":      Courses,
	"products":     Products,
	"payments":     Payments,
	"invitations":  Invitations,
	"team":         Team,
	"subscription": Subscription,
	"full":         Full,
}

// Get returns the named built-in suite.
func Get(name string) (harness.Suite, error) {
	build, ok := registry[name]
	if !ok {
		return harness.Suite{}, fmt.Errorf("unknown suite %q", name)
	}
	return build(), nil
}

// Names returns the registered suite names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// boolean literals for scenario predicates
func ptr(b bool) *bool { return &b }

var (
	wantTrue  = ptr(true)
	wantFalse = ptr(false)
)

// Envelope path variants the SUT is known to mix; predicates accept either
// shape rather than guessing which is canonical.
var (
	userIDPaths      = []string{"user.id", "data.user.id", "data.id"}
	workspaceIDPaths = []string{"workspace.id", "data.workspace.id", "data.id", "id"}
	tokenPaths       = []string{"token", "data.token"}
)

func idPaths(payload string) []string {
	return []string{payload + ".id", "data." + payload + ".id", "data.id", "id"}
}
