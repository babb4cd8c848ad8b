package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mewayz/apiprobe/internal/run"
)

// makeResults builds a log with the given status counts using neutral step
// names that never trip the critical markers.
func makeResults(passed, failed, warned, skipped int) []run.Outcome {
	var out []run.Outcome
	add := func(n int, status run.Status, message string) {
		for i := 0; i < n; i++ {
			out = append(out, run.Outcome{
				StepName: fmt.Sprintf("Step %d", len(out)+1),
				Status:   status,
				Message:  message,
			})
		}
	}
	add(passed, run.StatusPass, "OK (HTTP 200)")
	add(failed, run.StatusFail, "Unexpected status HTTP 500")
	add(warned, run.StatusWarn, "endpoint not implemented (HTTP 404)")
	add(skipped, run.StatusSkip, "missing prerequisite: workspace")
	return out
}

func TestSummarize_Counts(t *testing.T) {
	sum := Summarize(makeResults(5, 2, 1, 1), 1500*time.Millisecond)

	assert.Equal(t, 9, sum.Total)
	assert.Equal(t, 5, sum.Passed)
	assert.Equal(t, 2, sum.Failed)
	assert.Equal(t, 1, sum.Warnings)
	assert.Equal(t, 1, sum.Skipped)
	assert.Len(t, sum.Failures, 2)
	assert.Len(t, sum.WarnItems, 1)
	assert.Empty(t, sum.Critical)
	assert.InDelta(t, 5.0/9.0, sum.SuccessRate, 1e-9)
	assert.Equal(t, int64(1500), sum.DurationMS)
}

func TestSummarize_EmptyRun(t *testing.T) {
	sum := Summarize(nil, 0)
	assert.Zero(t, sum.Total)
	assert.Zero(t, sum.SuccessRate)
	assert.Equal(t, VerdictPoor, sum.Verdict)
	assert.Equal(t, 1, sum.ExitCode())
}

func TestVerdictThresholds(t *testing.T) {
	tests := []struct {
		passed, failed int
		want           string
	}{
		{90, 10, VerdictExcellent},
		{89, 11, VerdictGood},
		{75, 25, VerdictGood},
		{74, 26, VerdictFair},
		{60, 40, VerdictFair},
		{59, 41, VerdictPoor},
		{100, 0, VerdictExcellent},
		{0, 100, VerdictPoor},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of 100", tt.passed), func(t *testing.T) {
			sum := Summarize(makeResults(tt.passed, tt.failed, 0, 0), 0)
			assert.Equal(t, tt.want, sum.Verdict)
		})
	}
}

func TestVerdict_WarningsAndSkipsDragTheRate(t *testing.T) {
	// 6 passed of 10 total: warnings and skips count against the rate.
	sum := Summarize(makeResults(6, 0, 2, 2), 0)
	assert.InDelta(t, 0.6, sum.SuccessRate, 1e-9)
	assert.Equal(t, VerdictFair, sum.Verdict)
}

func TestIsCritical(t *testing.T) {
	tests := []struct {
		step string
		want bool
	}{
		{"Auth Login", true},
		{"AUTH TOKEN REVOKED", true},
		{"Stripe Webhook Security", true},
		{"Database Persistence Check", true},
		{"OAuth Callback", true},
		{"Create Product", false},
		{"Workspace Setup Progress", false},
	}
	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCritical(tt.step))
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Run("more passes than failures", func(t *testing.T) {
		sum := Summarize(makeResults(3, 2, 0, 0), 0)
		assert.Equal(t, 0, sum.ExitCode())
	})

	t.Run("tie is a failure", func(t *testing.T) {
		sum := Summarize(makeResults(2, 2, 0, 0), 0)
		assert.Equal(t, 1, sum.ExitCode())
	})

	t.Run("critical failure overrides the balance", func(t *testing.T) {
		results := makeResults(10, 0, 0, 0)
		results = append(results, run.Outcome{
			StepName: "Database Persistence Check",
			Status:   run.StatusFail,
			Message:  "Unexpected status HTTP 500",
		})
		sum := Summarize(results, 0)
		require.Len(t, sum.Critical, 1)
		assert.Equal(t, 1, sum.ExitCode())
	})

	t.Run("critical step passing is fine", func(t *testing.T) {
		results := []run.Outcome{
			{StepName: "Auth Login", Status: run.StatusPass, Message: "OK (HTTP 200)"},
		}
		sum := Summarize(results, 0)
		assert.Empty(t, sum.Critical)
		assert.Equal(t, 0, sum.ExitCode())
	})
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Crm Suite", Title("crm"))
	assert.Equal(t, "Link In Bio Suite", Title("link-in-bio"))
	assert.Equal(t, "Full Suite", Title("full"))
}
