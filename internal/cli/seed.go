package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mewayz/apiprobe/internal/seeder"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	DBPath        string
	Name          string
	WorkspaceName string
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inject fixtures into the SUT's SQLite database",
		Long: `Insert a verified user, a workspace with its owner membership, and the
subscription plan catalog directly into the SUT's SQLite database. Use it
before a probe run when the API cannot create the rows itself.

Examples:
  apiprobe seed --db ./database.sqlite --email probe@mewayz.com --password secret
  apiprobe seed --db ./database.sqlite --workspace "Creative Studio Workspace"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "path to the SUT's SQLite database (required)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "seeded user display name")
	cmd.Flags().StringVar(&opts.WorkspaceName, "workspace", "", "seeded workspace name")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runSeed(cmd *cobra.Command, opts *SeedOptions) error {
	rc := opts.newRunContext()

	if _, err := os.Stat(opts.DBPath); err != nil && !os.IsNotExist(err) {
		return WrapExitError(ExitCommandError, "cannot access database", err)
	}

	s, err := seeder.Open(opts.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer s.Close()

	seeded, err := s.Seed(cmd.Context(), seeder.Fixtures{
		Name:          opts.Name,
		Email:         rc.Email,
		Password:      rc.Password,
		WorkspaceName: opts.WorkspaceName,
	})
	if err != nil {
		return WrapExitError(ExitFailure, "failed to seed fixtures", err)
	}

	if opts.Format == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(CLIResponse{Status: "ok", Data: seeded})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded user %d (%s) with workspace %d\n",
		seeded.UserID, rc.Email, seeded.WorkspaceID)
	return nil
}
