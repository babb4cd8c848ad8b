// Package run holds the mutable per-run state threaded through every step
// of a probe run: credentials, the bearer token, identifiers captured from
// earlier steps, and the append-only outcome log.
package run

import (
	"fmt"
	"time"
)

// EntityKind names a class of SUT entity whose last created identifier is
// remembered for downstream steps.
type EntityKind string

const (
	KindSocialAccount   EntityKind = "social_account"
	KindSocialPost      EntityKind = "social_post"
	KindLinkPage        EntityKind = "link_page"
	KindCRMContact      EntityKind = "crm_contact"
	KindCourse          EntityKind = "course"
	KindProduct         EntityKind = "product"
	KindInvitation      EntityKind = "invitation"
	KindInvitationToken EntityKind = "invitation_token"
	KindCheckoutSession EntityKind = "checkout_session"
	KindTransaction     EntityKind = "transaction"
)

// Context is the single mutable record held for one probe run.
// It is accessed by exactly one step at a time; no locking is required.
type Context struct {
	BaseURL  string
	Email    string
	Password string

	token       string
	principalID string
	workspaceID string
	entities    map[EntityKind]string
	seed        int64
	results     []Outcome
}

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8001/api"

// NewContext creates a Context for one run against baseURL.
// The timestamp seed is sampled once here and reused for every minted
// email and slug so reruns do not collide.
func NewContext(baseURL string) *Context {
	return NewContextWithSeed(baseURL, time.Now().Unix())
}

// NewContextWithSeed creates a Context with a fixed seed.
// Tests use this for deterministic emails and slugs.
func NewContextWithSeed(baseURL string, seed int64) *Context {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Context{
		BaseURL:  baseURL,
		seed:     seed,
		entities: make(map[EntityKind]string),
	}
	c.Email = c.UniqueEmail("emma.wilson", "mewayz.com")
	c.Password = "SecurePassword123!"
	return c
}

// Seed returns the run's timestamp seed.
func (c *Context) Seed() int64 { return c.seed }

// UniqueEmail mints an address of the form <prefix>.<seed>@<domain>.
func (c *Context) UniqueEmail(prefix, domain string) string {
	return fmt.Sprintf("%s.%d@%s", prefix, c.seed, domain)
}

// UniqueSlug mints a slug of the form <prefix>-<seed>.
func (c *Context) UniqueSlug(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, c.seed)
}

// Token returns the current bearer token, empty if unauthenticated.
func (c *Context) Token() string { return c.token }

// SetToken stores the bearer token captured from an auth step.
func (c *Context) SetToken(tok string) { c.token = tok }

// ClearToken discards the bearer token (logout, or unauthenticated probing).
func (c *Context) ClearToken() { c.token = "" }

// WithoutToken runs fn with the token cleared and restores the prior token
// afterwards, even if fn panics. Steps probing unauthenticated behavior
// must go through this so a mid-step failure cannot poison later steps.
func (c *Context) WithoutToken(fn func()) {
	saved := c.token
	c.token = ""
	defer func() { c.token = saved }()
	fn()
}

// PrincipalID returns the authenticated principal's identifier.
func (c *Context) PrincipalID() string { return c.principalID }

// SetPrincipalID stores the authenticated principal's identifier.
func (c *Context) SetPrincipalID(id string) { c.principalID = id }

// WorkspaceID returns the active test workspace identifier.
func (c *Context) WorkspaceID() string { return c.workspaceID }

// SetWorkspaceID stores the active test workspace identifier.
func (c *Context) SetWorkspaceID(id string) { c.workspaceID = id }

// Entity returns the last created identifier of the given kind.
func (c *Context) Entity(kind EntityKind) (string, bool) {
	id, ok := c.entities[kind]
	return id, ok
}

// SetEntity remembers the last created identifier of the given kind.
// Only identifiers produced by a 2xx SUT response belong here.
func (c *Context) SetEntity(kind EntityKind, id string) {
	c.entities[kind] = id
}

// Results returns the outcome log in recording order.
func (c *Context) Results() []Outcome { return c.results }

func (c *Context) append(o Outcome) { c.results = append(c.results, o) }
