// Package report aggregates a run's outcome log into totals, a success
// rate, a verdict tier, and the process exit code.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mewayz/apiprobe/internal/run"
)

// Verdict tiers derived from the success rate.
const (
	VerdictExcellent = "EXCELLENT"
	VerdictGood      = "GOOD"
	VerdictFair      = "FAIR"
	VerdictPoor      = "POOR"
)

// criticalMarkers flag failures that force a non-zero exit regardless of
// the overall pass/fail balance.
var criticalMarkers = []string{"auth", "security", "database"}

// Summary is the aggregated view of one run.
type Summary struct {
	Total       int           `json:"total"`
	Passed      int           `json:"passed"`
	Failed      int           `json:"failed"`
	Warnings    int           `json:"warnings"`
	Skipped     int           `json:"skipped"`
	SuccessRate float64       `json:"success_rate"`
	Verdict     string        `json:"verdict"`
	Duration    time.Duration `json:"-"`
	DurationMS  int64         `json:"duration_ms"`

	Failures  []run.Outcome `json:"failures,omitempty"`
	WarnItems []run.Outcome `json:"warn_items,omitempty"`
	Critical  []run.Outcome `json:"critical,omitempty"`
}

// Summarize computes the summary for a result log.
func Summarize(results []run.Outcome, elapsed time.Duration) Summary {
	sum := Summary{
		Total:      len(results),
		Duration:   elapsed,
		DurationMS: elapsed.Milliseconds(),
	}

	for _, o := range results {
		switch o.Status {
		case run.StatusPass:
			sum.Passed++
		case run.StatusFail:
			sum.Failed++
			sum.Failures = append(sum.Failures, o)
			if IsCritical(o.StepName) {
				sum.Critical = append(sum.Critical, o)
			}
		case run.StatusWarn:
			sum.Warnings++
			sum.WarnItems = append(sum.WarnItems, o)
		case run.StatusSkip:
			sum.Skipped++
		}
	}

	if sum.Total > 0 {
		sum.SuccessRate = float64(sum.Passed) / float64(sum.Total)
	}
	sum.Verdict = verdict(sum.SuccessRate)
	return sum
}

// IsCritical reports whether a FAIL in the named step must force a
// non-zero exit. Matching is case-insensitive on the step name.
func IsCritical(stepName string) bool {
	lower := strings.ToLower(stepName)
	for _, marker := range criticalMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func verdict(rate float64) string {
	switch {
	case rate >= 0.90:
		return VerdictExcellent
	case rate >= 0.75:
		return VerdictGood
	case rate >= 0.60:
		return VerdictFair
	default:
		return VerdictPoor
	}
}

// ExitCode is 0 iff more steps passed than failed and no critical failure
// was recorded.
func (s Summary) ExitCode() int {
	if s.Passed > s.Failed && len(s.Critical) == 0 {
		return 0
	}
	return 1
}

var titleCaser = cases.Title(language.English)

// Title renders a suite name as a banner title, e.g. "crm" -> "Crm Suite".
func Title(suiteName string) string {
	return titleCaser.String(strings.ReplaceAll(suiteName, "-", " ")) + " Suite"
}

// Print writes the summary block to w in the run's text format.
func Print(w io.Writer, s Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Test Summary ===")
	fmt.Fprintf(w, "Total:    %d\n", s.Total)
	fmt.Fprintf(w, "Passed:   %d\n", s.Passed)
	fmt.Fprintf(w, "Failed:   %d\n", s.Failed)
	fmt.Fprintf(w, "Warnings: %d\n", s.Warnings)
	fmt.Fprintf(w, "Skipped:  %d\n", s.Skipped)
	fmt.Fprintf(w, "Success rate: %.1f%%\n", s.SuccessRate*100)
	fmt.Fprintf(w, "Verdict: %s\n", s.Verdict)
	if s.Duration > 0 {
		fmt.Fprintf(w, "Elapsed: %s\n", s.Duration.Round(time.Millisecond))
	}

	if len(s.Failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failed steps:")
		for _, o := range s.Failures {
			fmt.Fprintf(w, "  ❌ %s: %s\n", o.StepName, o.Message)
		}
	}

	if len(s.WarnItems) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Warnings:")
		for _, o := range s.WarnItems {
			fmt.Fprintf(w, "  ⚠️ %s: %s\n", o.StepName, o.Message)
		}
	}

	if len(s.Critical) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "CRITICAL failures:")
		for _, o := range s.Critical {
			fmt.Fprintf(w, "  🚨 %s: %s\n", o.StepName, o.Message)
		}
	}
}
