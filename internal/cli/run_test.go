package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mewayz/apiprobe/internal/report"
	"github.com/mewayz/apiprobe/internal/run"
)

// stubSUT answers just enough of the backend's auth surface for the auth
// suite to pass end to end: register, login, the current-user endpoint
// with validation and bearer enforcement everywhere else.
func stubSUT() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == "POST" && r.URL.Path == "/auth/register":
			var body struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if !strings.Contains(body.Email, "@") || len(body.Password) < 8 {
				w.WriteHeader(422)
				w.Write([]byte(`{"errors":{"email":["The email must be a valid email address."]}}`))
				return
			}
			w.WriteHeader(201)
			w.Write([]byte(`{"success":true,"token":"tok-register","user":{"id":1}}`))

		case r.Method == "POST" && r.URL.Path == "/auth/login":
			w.Write([]byte(`{"success":true,"token":"tok-login"}`))

		case r.Header.Get("Authorization") == "":
			w.WriteHeader(401)
			w.Write([]byte(`{"message":"Unauthenticated."}`))

		case r.URL.Path == "/auth/user":
			w.Write([]byte(`{"success":true,"user":{"id":1}}`))

		default:
			w.Write([]byte(`{"success":true,"data":[]}`))
		}
	}
}

func executeCommand(t *testing.T, args ...string) (stdout string, err error) {
	stdout, _, err = executeCommandStreams(t, args...)
	return stdout, err
}

func executeCommandStreams(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("BASE_URL", "")
	t.Setenv("TEST_EMAIL", "")
	t.Setenv("TEST_PASSWORD", "")

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_AuthSuitePasses(t *testing.T) {
	server := httptest.NewServer(stubSUT())
	defer server.Close()

	out, err := executeCommand(t, "run", "auth", "--base-url", server.URL)
	require.NoError(t, err)

	assert.Contains(t, out, "=== Authentication Suite ===")
	assert.Contains(t, out, "✅ Auth Register: User registered and token captured")
	assert.Contains(t, out, "✅ Auth Current User: Current user matches registered principal")
	assert.Contains(t, out, "✅ Auth Registration Validation: Invalid registration properly rejected")
	assert.Contains(t, out, "✅ Auth Protected Endpoints: 8/8 endpoints properly protected")
	assert.Contains(t, out, "Passed:   5")
	assert.Contains(t, out, "Verdict: EXCELLENT")
}

func TestRun_FailingBackendExitsNonZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(500)
		w.Write([]byte(`{"message":"internal error"}`))
	}))
	defer server.Close()

	out, err := executeCommand(t, "run", "auth", "--base-url", server.URL)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "step(s) failed")

	assert.Contains(t, out, "❌ Auth Register: Unexpected status HTTP 500")
	assert.Contains(t, out, "⏭️ Auth Current User: missing prerequisite: token")
	assert.Contains(t, out, "Verdict: POOR")
	assert.Contains(t, out, "CRITICAL failures:")
}

func TestRun_JSONFormat(t *testing.T) {
	server := httptest.NewServer(stubSUT())
	defer server.Close()

	out, errOut, err := executeCommandStreams(t, "run", "auth", "--base-url", server.URL, "--format", "json")
	require.NoError(t, err)

	// stdout must be nothing but the JSON document; the step stream moves
	// to stderr so a consumer can pipe stdout straight into a parser.
	require.True(t, strings.HasPrefix(strings.TrimLeft(out, " \n"), "{"), "stdout must start with the JSON document, got: %.60q", out)
	assert.Contains(t, errOut, "=== Authentication Suite ===")
	assert.Contains(t, errOut, "✅ Auth Register")

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Summary report.Summary `json:"summary"`
			Results []run.Outcome  `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, report.VerdictExcellent, resp.Data.Summary.Verdict)
	assert.Equal(t, 5, resp.Data.Summary.Passed)
	assert.Len(t, resp.Data.Results, 5)
}

func TestRun_UnknownSuiteIsCommandError(t *testing.T) {
	_, err := executeCommand(t, "run", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "unknown suite")
}

func TestRootCommand_RejectsInvalidFormat(t *testing.T) {
	_, err := executeCommand(t, "list", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad input")))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
}
