package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mewayz/apiprobe/internal/harness"
	"github.com/mewayz/apiprobe/internal/httpclient"
	"github.com/mewayz/apiprobe/internal/report"
	"github.com/mewayz/apiprobe/internal/run"
	"github.com/mewayz/apiprobe/internal/suites"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run built-in probe suites",
		Long: `Run one or more built-in scenario suites against the SUT, in order,
sharing one run context so later suites can chain on captured identifiers.
With no arguments the full integration suite runs.

Exit codes:
  0 - more steps passed than failed and no critical failure
  1 - probe failure
  2 - command error (unknown suite, etc.)

Examples:
  apiprobe run
  apiprobe run auth workspace
  apiprobe run full --base-url http://localhost:8001/api
  apiprobe run payments --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = []string{"full"}
			}

			tables := make([]harness.Suite, 0, len(names))
			for _, name := range names {
				suite, err := suites.Get(name)
				if err != nil {
					return WrapExitError(ExitCommandError, "unknown suite", err)
				}
				tables = append(tables, suite)
			}

			return runSuites(cmd, rootOpts, tables)
		},
	}
	return cmd
}

// runSuites executes suite tables sequentially over one shared context and
// prints the summary in the configured format.
func runSuites(cmd *cobra.Command, opts *RootOptions, tables []harness.Suite) error {
	rc := opts.newRunContext()
	client := httpclient.New(rc.BaseURL, rc)

	// In JSON mode the step stream goes to stderr so stdout stays a single
	// parseable document.
	stream := cmd.OutOrStdout()
	if opts.Format == "json" {
		stream = cmd.ErrOrStderr()
	}
	rec := run.NewRecorder(rc, stream)
	rec.ShowDetails = opts.ShowDetails
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	start := time.Now()
	for _, suite := range tables {
		suite.Run(context.Background(), rc, client, rec, logger)
	}
	sum := report.Summarize(rc.Results(), time.Since(start))

	if opts.Format == "json" {
		if err := outputRunJSON(cmd.OutOrStdout(), sum, rc.Results()); err != nil {
			return err
		}
	} else {
		report.Print(cmd.OutOrStdout(), sum)
	}

	if code := sum.ExitCode(); code != ExitSuccess {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d step(s) failed, %d critical", sum.Failed, len(sum.Critical)))
	}
	return nil
}

// runReport is the JSON payload of a run: the summary plus the raw log.
type runReport struct {
	Summary report.Summary `json:"summary"`
	Results []run.Outcome  `json:"results"`
}

func outputRunJSON(w io.Writer, sum report.Summary, results []run.Outcome) error {
	status := "ok"
	var cliErr *CLIError
	if sum.ExitCode() != ExitSuccess {
		status = "error"
		cliErr = &CLIError{
			Code:    "E_PROBE_FAILED",
			Message: fmt.Sprintf("%d step(s) failed", sum.Failed),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(CLIResponse{
		Status: status,
		Data:   runReport{Summary: sum, Results: results},
		Error:  cliErr,
	})
}

// newLogger returns a text slog logger, silenced unless verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
