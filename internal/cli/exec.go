package cli

import (
	"github.com/spf13/cobra"

	"github.com/mewayz/apiprobe/internal/harness"
)

// NewExecCommand creates the exec command, which runs a suite table
// loaded from a YAML file instead of a built-in one.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <suite.yaml>",
		Short: "Run a scenario suite from a YAML file",
		Long: `Run a suite table loaded from a YAML file. The file uses the same
row schema as the built-in tables; unknown fields are rejected.

Examples:
  apiprobe exec ./suites/smoke.yaml
  apiprobe exec ./suites/smoke.yaml --base-url http://staging:8001/api`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := harness.LoadSuite(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load suite", err)
			}
			return runSuites(cmd, rootOpts, []harness.Suite{*suite})
		},
	}
}
