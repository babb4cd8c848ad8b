// Package harness executes ordered scenario tables against a JSON-over-HTTP
// SUT. A scenario row is the elementary unit of testing: it performs one or
// more HTTP calls and records exactly one outcome (PASS/FAIL/WARN/SKIP).
// Suites are data tables interpreted by a single executor, not hand-written
// per-endpoint functions.
package harness

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mewayz/apiprobe/internal/run"
)

// Kind categorizes how a scenario's unexpected statuses are classified.
type Kind string

const (
	// Required treats unexpected statuses as FAIL. The default.
	Required Kind = "required"

	// FeatureProbe treats missing or unimplemented endpoints as WARN.
	FeatureProbe Kind = "feature-probe"

	// AuthProbe issues anonymous GETs against several protected paths and
	// passes iff at least 80% of them answer 401 or 403.
	AuthProbe Kind = "auth-probe"

	// ValidationProbe sends deliberately invalid input and expects HTTP 422
	// with a structured error body.
	ValidationProbe Kind = "validation-probe"

	// WebhookProbe hits a public webhook without a signature and expects
	// HTTP 400 for the missing/invalid signature.
	WebhookProbe Kind = "webhook-probe"
)

// Capture writes an identifier from the response body into the run context
// so downstream scenarios can chain on it.
type Capture struct {
	// Target is "token", "principal", "workspace", or an entity kind.
	Target string `yaml:"target"`

	// Paths are dot-separated body paths tried in order. The SUT mixes
	// envelope shapes (e.g. workspace.id vs data.id), so captures list
	// every known variant rather than guessing a canonical one.
	Paths []string `yaml:"paths"`
}

// Match compares a response body field against a value already held in the
// run context (e.g. user.id against the captured principal id).
type Match struct {
	// Paths are candidate body paths tried in order.
	Paths []string `yaml:"paths"`

	// Ref is the context reference: "token", "principal", "workspace",
	// or an entity kind.
	Ref string `yaml:"ref"`
}

// Scenario is one row of a suite table.
type Scenario struct {
	// Name uniquely labels the step within its suite.
	Name string `yaml:"name"`

	// Section, when set, prints a section header before the step runs.
	Section string `yaml:"section,omitempty"`

	// Kind defaults to Required.
	Kind Kind `yaml:"kind,omitempty"`

	// Method is GET, POST, PUT or DELETE. Auth probes always GET.
	Method string `yaml:"method,omitempty"`

	// Path is the endpoint path template; placeholders like {workspace}
	// or {email:prefix@domain} are expanded from the run context.
	Path string `yaml:"path,omitempty"`

	// Paths lists the endpoints of an auth probe.
	Paths []string `yaml:"paths,omitempty"`

	// Body is the JSON request body template.
	Body map[string]any `yaml:"body,omitempty"`

	// Headers are extra request headers.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Expect is the expected-success status set; defaults to {200, 201}.
	Expect []int `yaml:"expect,omitempty"`

	// Require names context prerequisites ("token", "workspace", or an
	// entity kind). A missing prerequisite records SKIP with zero calls.
	Require []string `yaml:"require,omitempty"`

	// Anonymous clears the token for the call(s) and restores it after.
	Anonymous bool `yaml:"anonymous,omitempty"`

	// ExpectUnauthorized passes the step when a protected endpoint
	// answers 401 or 403.
	ExpectUnauthorized bool `yaml:"expect_unauthorized,omitempty"`

	// WantSuccess, when set, requires the body's top-level "success"
	// field to equal the given value.
	WantSuccess *bool `yaml:"want_success,omitempty"`

	// WantAnyKey requires at least one of the listed body paths to exist.
	WantAnyKey []string `yaml:"want_any_key,omitempty"`

	// WantBodyContains requires the raw body to contain at least one of
	// the listed substrings, case-insensitively.
	WantBodyContains []string `yaml:"want_body_contains,omitempty"`

	// Match compares body fields against context values.
	Match []Match `yaml:"match,omitempty"`

	// Capture writes identifiers back into the context on PASS.
	Capture []Capture `yaml:"capture,omitempty"`

	// ClearsToken clears the bearer token on PASS (logout steps).
	ClearsToken bool `yaml:"clears_token,omitempty"`

	// PassMessage overrides the default PASS message.
	PassMessage string `yaml:"pass_message,omitempty"`
}

// expectSet returns the expected-success statuses. Rows probing auth,
// validation, or webhook signatures expect no success status at all: a 2xx
// there means the SUT accepted what it should have rejected.
func (s *Scenario) expectSet() []int {
	if len(s.Expect) > 0 {
		return s.Expect
	}
	if s.ExpectUnauthorized || s.Kind == ValidationProbe || s.Kind == WebhookProbe {
		return nil
	}
	return []int{200, 201}
}

// Suite is a named ordered scenario table.
type Suite struct {
	Name      string     `yaml:"name"`
	Title     string     `yaml:"title,omitempty"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadSuite reads a suite table from a YAML file. Unknown fields are
// rejected so a typo in a hand-written table fails loudly.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := suite.Validate(); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return &suite, nil
}

var validKinds = map[Kind]bool{
	"": true, Required: true, FeatureProbe: true,
	AuthProbe: true, ValidationProbe: true, WebhookProbe: true,
}

var validMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
}

// Validate checks that the table is well formed.
func (s *Suite) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Scenarios) == 0 {
		return fmt.Errorf("scenarios list is required and must be non-empty")
	}

	seen := make(map[string]bool)
	for i, sc := range s.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenarios[%d]: name is required", i)
		}
		if seen[sc.Name] {
			return fmt.Errorf("scenarios[%d]: duplicate step name %q", i, sc.Name)
		}
		seen[sc.Name] = true

		if !validKinds[sc.Kind] {
			return fmt.Errorf("scenarios[%d]: unknown kind %q", i, sc.Kind)
		}

		if sc.Kind == AuthProbe {
			if len(sc.Paths) == 0 {
				return fmt.Errorf("scenarios[%d]: paths list is required for auth-probe", i)
			}
			for j, p := range sc.Paths {
				if !strings.HasPrefix(p, "/") {
					return fmt.Errorf("scenarios[%d].paths[%d]: path must start with /", i, j)
				}
			}
			continue
		}

		if sc.Path == "" {
			return fmt.Errorf("scenarios[%d]: path is required", i)
		}
		if !strings.HasPrefix(sc.Path, "/") {
			return fmt.Errorf("scenarios[%d]: path must start with /", i)
		}
		method := sc.Method
		if method == "" {
			method = "GET"
		}
		if !validMethods[method] {
			return fmt.Errorf("scenarios[%d]: unsupported method %q", i, sc.Method)
		}

		for j, cap := range sc.Capture {
			if cap.Target == "" {
				return fmt.Errorf("scenarios[%d].capture[%d]: target is required", i, j)
			}
			if len(cap.Paths) == 0 {
				return fmt.Errorf("scenarios[%d].capture[%d]: paths list is required", i, j)
			}
		}
	}
	return nil
}

// placeholderPattern matches {name} and {name:arg} template placeholders.
var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)(?::([^}]*))?\}`)

// expandString resolves template placeholders against the run context.
// The second return value names the first unresolvable placeholder so the
// caller can SKIP with the missing prerequisite named.
func expandString(ctx *run.Context, s string) (string, string) {
	missing := ""
	out := placeholderPattern.ReplaceAllStringFunc(s, func(m string) string {
		groups := placeholderPattern.FindStringSubmatch(m)
		name, arg := groups[1], groups[2]

		val := ""
		switch name {
		case "seed":
			val = fmt.Sprintf("%d", ctx.Seed())
		case "email":
			if arg == "" {
				val = ctx.Email
			} else if at := strings.Index(arg, "@"); at > 0 {
				val = ctx.UniqueEmail(arg[:at], arg[at+1:])
			}
		case "password":
			val = ctx.Password
		case "slug":
			if arg != "" {
				val = ctx.UniqueSlug(arg)
			}
		case "token":
			val = ctx.Token()
		case "principal":
			val = ctx.PrincipalID()
		case "workspace":
			val = ctx.WorkspaceID()
		default:
			val, _ = ctx.Entity(run.EntityKind(name))
		}

		if val == "" && missing == "" {
			missing = name
		}
		return val
	})
	return out, missing
}

// expandValue expands placeholders through nested body templates.
func expandValue(ctx *run.Context, v any) (any, string) {
	switch t := v.(type) {
	case string:
		return expandString(ctx, t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			expanded, missing := expandValue(ctx, elem)
			if missing != "" {
				return nil, missing
			}
			out[k] = expanded
		}
		return out, ""
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			expanded, missing := expandValue(ctx, elem)
			if missing != "" {
				return nil, missing
			}
			out[i] = expanded
		}
		return out, ""
	default:
		return v, ""
	}
}
