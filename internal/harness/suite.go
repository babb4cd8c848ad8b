package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mewayz/apiprobe/internal/httpclient"
	"github.com/mewayz/apiprobe/internal/report"
	"github.com/mewayz/apiprobe/internal/run"
)

// Run executes the suite's scenarios strictly in declaration order.
//
// A panic escaping a step is converted into a FAIL outcome naming the step;
// later unrelated steps still execute. Every executed step contributes
// exactly one outcome to the run context, in execution order.
func (s *Suite) Run(ctx context.Context, rc *run.Context, client *httpclient.Client, rec *run.Recorder, logger *slog.Logger) {
	title := s.Title
	if title == "" {
		title = report.Title(s.Name)
	}
	rec.Banner(title)

	for i, sc := range s.Scenarios {
		if sc.Section != "" {
			rec.Section(sc.Section)
		}

		before := len(rc.Results())
		runStep(ctx, rc, client, rec, sc)

		// The executor records exactly one outcome per step; a step that
		// somehow recorded none is itself a harness failure.
		if len(rc.Results()) == before {
			rec.Record(sc.Name, run.StatusFail, "step recorded no outcome", nil)
		}

		last := rc.Results()[len(rc.Results())-1]
		logger.Info("step completed",
			"suite", s.Name,
			"index", i,
			"step", sc.Name,
			"status", string(last.Status),
		)
	}
}

// runStep isolates one step so a panic cannot terminate the suite.
func runStep(ctx context.Context, rc *run.Context, client *httpclient.Client, rec *run.Recorder, sc Scenario) {
	before := len(rc.Results())
	defer func() {
		if r := recover(); r != nil {
			if len(rc.Results()) == before {
				rec.Record(sc.Name, run.StatusFail, fmt.Sprintf("Test execution error: %v", r), nil)
			}
		}
	}()
	Execute(ctx, rc, client, rec, sc)
}
