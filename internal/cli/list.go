package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mewayz/apiprobe/internal/suites"
)

// suiteInfo describes one built-in suite for listing.
type suiteInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Steps int    `json:"steps"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List built-in probe suites",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]suiteInfo, 0)
			for _, name := range suites.Names() {
				suite, err := suites.Get(name)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to build suite", err)
				}
				infos = append(infos, suiteInfo{
					Name:  suite.Name,
					Title: suite.Title,
					Steps: len(suite.Scenarios),
				})
			}

			if rootOpts.Format == "json" {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(CLIResponse{Status: "ok", Data: infos})
			}

			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %3d steps  %s\n", info.Name, info.Steps, info.Title)
			}
			return nil
		},
	}
}
