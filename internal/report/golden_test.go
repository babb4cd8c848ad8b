package report

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/mewayz/apiprobe/internal/run"
)

func TestPrint_Golden(t *testing.T) {
	results := []run.Outcome{
		{StepName: "Auth Login", Status: run.StatusPass, Message: "Login successful"},
		{StepName: "Create Workspace", Status: run.StatusPass, Message: "Workspace created"},
		{StepName: "Auth Current User", Status: run.StatusFail, Message: "Unexpected status HTTP 500"},
		{StepName: "Course Analytics", Status: run.StatusWarn, Message: "endpoint not implemented (HTTP 404)"},
	}
	sum := Summarize(results, 0)

	var buf bytes.Buffer
	Print(&buf, sum)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "summary_report", buf.Bytes())
}
