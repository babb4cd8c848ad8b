package harness

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mewayz/apiprobe/internal/httpclient"
	"github.com/mewayz/apiprobe/internal/run"
)

// authProbeThreshold is the fixed share of probed endpoints that must
// reject unauthenticated requests for an auth probe to pass. It permits a
// small number of mis-wired endpoints without masking a systemic break.
const authProbeThreshold = 0.8

// Execute runs one scenario row and records exactly one outcome.
func Execute(ctx context.Context, rc *run.Context, client *httpclient.Client, rec *run.Recorder, sc Scenario) {
	for _, req := range sc.Require {
		if !prerequisiteSet(rc, req) {
			rec.Record(sc.Name, run.StatusSkip, "missing prerequisite: "+req, nil)
			return
		}
	}

	if sc.Kind == AuthProbe {
		executeAuthProbe(ctx, rc, client, rec, sc)
		return
	}
	executeCall(ctx, rc, client, rec, sc)
}

func prerequisiteSet(rc *run.Context, name string) bool {
	switch name {
	case "token":
		return rc.Token() != ""
	case "principal":
		return rc.PrincipalID() != ""
	case "workspace":
		return rc.WorkspaceID() != ""
	default:
		_, ok := rc.Entity(run.EntityKind(name))
		return ok
	}
}

// executeCall performs a single HTTP exchange and classifies it.
func executeCall(ctx context.Context, rc *run.Context, client *httpclient.Client, rec *run.Recorder, sc Scenario) {
	path, missing := expandString(rc, sc.Path)
	if missing != "" {
		rec.Record(sc.Name, run.StatusSkip, "missing prerequisite: "+missing, nil)
		return
	}

	var body any
	if sc.Body != nil {
		expanded, missing := expandValue(rc, map[string]any(sc.Body))
		if missing != "" {
			rec.Record(sc.Name, run.StatusSkip, "missing prerequisite: "+missing, nil)
			return
		}
		body = expanded
	}

	method := sc.Method
	if method == "" {
		method = "GET"
	}

	var resp *httpclient.Response
	var err error
	call := func() {
		resp, err = client.Request(ctx, method, path, body, sc.Headers)
	}
	if sc.Anonymous {
		rc.WithoutToken(call)
	} else {
		call()
	}

	if err != nil {
		rec.Record(sc.Name, run.StatusFail, fmt.Sprintf("Request failed: %v", err), nil)
		return
	}

	status, message, detail := classify(rc, sc, resp)
	if status == run.StatusPass {
		applyEffects(rc, sc, resp)
	}
	rec.Record(sc.Name, status, message, detail)
}

// classify applies the step classification rules in their fixed order.
func classify(rc *run.Context, sc Scenario, resp *httpclient.Response) (run.Status, string, any) {
	code := resp.StatusCode

	if inSet(code, sc.expectSet()) {
		// 204 carries no body; there is nothing to parse or match.
		if code == 204 {
			return run.StatusPass, orMessage(sc.PassMessage, "OK (HTTP 204)"), nil
		}
		if resp.LooksHTML() {
			return run.StatusFail,
				"Returns HTML instead of JSON - routing misconfiguration detected",
				string(resp.Body)
		}
		if !resp.IsJSONObject() {
			return run.StatusFail, "Invalid JSON response", string(resp.Body)
		}
		if msg := predicateMiss(rc, sc, resp); msg != "" {
			return run.StatusFail, "Invalid response format: " + msg, resp.JSON
		}
		message := sc.PassMessage
		if message == "" {
			message = fmt.Sprintf("OK (HTTP %d)", code)
		}
		return run.StatusPass, message, nil
	}

	switch {
	case code == 422 && sc.Kind == ValidationProbe:
		if hasAnyKey(resp.JSON, []string{"errors", "message"}) {
			return run.StatusPass, orMessage(sc.PassMessage, "Validation active (HTTP 422)"), nil
		}
		return run.StatusFail, "HTTP 422 without structured error body", string(resp.Body)

	case code == 400 && sc.Kind == WebhookProbe:
		if len(sc.WantBodyContains) == 0 || bodyContainsAny(resp.Body, sc.WantBodyContains) {
			return run.StatusPass, orMessage(sc.PassMessage, "Signature validation active (HTTP 400)"), nil
		}
		return run.StatusFail, "HTTP 400 without signature error", string(resp.Body)

	case code == 404 && sc.Kind == FeatureProbe:
		return run.StatusWarn, "endpoint not implemented (HTTP 404)", nil

	case (code == 401 || code == 403) && sc.ExpectUnauthorized:
		return run.StatusPass, orMessage(sc.PassMessage, fmt.Sprintf("properly protected (HTTP %d)", code)), nil

	case sc.Kind == FeatureProbe:
		return run.StatusWarn, fmt.Sprintf("likely unimplemented (HTTP %d)", code), nil

	default:
		return run.StatusFail, fmt.Sprintf("Unexpected status HTTP %d", code), string(resp.Body)
	}
}

// predicateMiss evaluates the row's success predicate against a parsed
// body. Returns an empty string when every check holds.
func predicateMiss(rc *run.Context, sc Scenario, resp *httpclient.Response) string {
	if sc.WantSuccess != nil {
		got, ok := resp.JSON["success"].(bool)
		if !ok || got != *sc.WantSuccess {
			return fmt.Sprintf("expected success=%v", *sc.WantSuccess)
		}
	}

	if len(sc.WantAnyKey) > 0 && !hasAnyKey(resp.JSON, sc.WantAnyKey) {
		return fmt.Sprintf("expected one of %v in body", sc.WantAnyKey)
	}

	if len(sc.WantBodyContains) > 0 && !bodyContainsAny(resp.Body, sc.WantBodyContains) {
		return fmt.Sprintf("expected body to mention one of %v", sc.WantBodyContains)
	}

	for _, m := range sc.Match {
		want := contextRef(rc, m.Ref)
		if want == "" {
			continue
		}
		got, ok := firstValue(resp.JSON, m.Paths)
		if !ok {
			return fmt.Sprintf("expected one of %v in body", m.Paths)
		}
		if got != want {
			return fmt.Sprintf("%s mismatch: got %q, want %q", m.Ref, got, want)
		}
	}

	// All capture paths must resolve; a side-effect field the table expects
	// is part of the response shape.
	for _, cap := range sc.Capture {
		if _, ok := firstValue(resp.JSON, cap.Paths); !ok {
			return fmt.Sprintf("expected one of %v in body", cap.Paths)
		}
	}

	return ""
}

// applyEffects commits captures and token clearing after a PASS.
func applyEffects(rc *run.Context, sc Scenario, resp *httpclient.Response) {
	for _, cap := range sc.Capture {
		val, ok := firstValue(resp.JSON, cap.Paths)
		if !ok {
			continue
		}
		switch cap.Target {
		case "token":
			rc.SetToken(val)
		case "principal":
			rc.SetPrincipalID(val)
		case "workspace":
			rc.SetWorkspaceID(val)
		default:
			rc.SetEntity(run.EntityKind(cap.Target), val)
		}
	}
	if sc.ClearsToken {
		rc.ClearToken()
	}
}

// executeAuthProbe issues anonymous GETs against every probed path and
// aggregates them into a single outcome with the protected ratio.
func executeAuthProbe(ctx context.Context, rc *run.Context, client *httpclient.Client, rec *run.Recorder, sc Scenario) {
	total := len(sc.Paths)
	protected := 0

	rc.WithoutToken(func() {
		for _, raw := range sc.Paths {
			path, missing := expandString(rc, raw)
			if missing != "" {
				continue // unresolvable path counts as unprotected
			}
			resp, err := client.Request(ctx, "GET", path, nil, sc.Headers)
			if err != nil {
				continue // transport failure counts as unprotected
			}
			if resp.StatusCode == 401 || resp.StatusCode == 403 {
				protected++
			}
		}
	})

	ratio := float64(protected) / float64(total)
	if ratio >= authProbeThreshold {
		rec.Record(sc.Name, run.StatusPass,
			fmt.Sprintf("%d/%d endpoints properly protected", protected, total), nil)
		return
	}
	rec.Record(sc.Name, run.StatusFail,
		fmt.Sprintf("only %d/%d endpoints properly protected", protected, total), nil)
}

func orMessage(custom, fallback string) string {
	if custom != "" {
		return custom
	}
	return fallback
}

func inSet(code int, set []int) bool {
	for _, c := range set {
		if c == code {
			return true
		}
	}
	return false
}

func contextRef(rc *run.Context, ref string) string {
	switch ref {
	case "token":
		return rc.Token()
	case "principal":
		return rc.PrincipalID()
	case "workspace":
		return rc.WorkspaceID()
	default:
		val, _ := rc.Entity(run.EntityKind(ref))
		return val
	}
}

// lookup walks a dot-separated path through nested JSON objects.
func lookup(body map[string]any, path string) (any, bool) {
	var cur any = body
	for _, seg := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// firstValue returns the first resolvable path as a string identifier.
func firstValue(body map[string]any, paths []string) (string, bool) {
	for _, p := range paths {
		if v, ok := lookup(body, p); ok {
			if s := stringifyID(v); s != "" {
				return s, true
			}
		}
	}
	return "", false
}

func hasAnyKey(body map[string]any, paths []string) bool {
	for _, p := range paths {
		if _, ok := lookup(body, p); ok {
			return true
		}
	}
	return false
}

func bodyContainsAny(body []byte, wants []string) bool {
	lower := strings.ToLower(string(body))
	for _, w := range wants {
		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// stringifyID renders a JSON scalar as an identifier string. JSON numbers
// decode as float64; integral values print without a fraction.
func stringifyID(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
