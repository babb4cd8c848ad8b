// Package cli wires the probe harness into a cobra command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mewayz/apiprobe/internal/run"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	BaseURL     string
	Email       string
	Password    string
	ShowDetails bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the apiprobe CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "apiprobe",
		Short: "Black-box integration probe for the Mewayz API",
		Long:  "Runs ordered scenario suites against a JSON-over-HTTP backend and reports pass/fail/warn/skip outcomes with an overall verdict.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "", "SUT base URL (default $BASE_URL or "+run.DefaultBaseURL+")")
	cmd.PersistentFlags().StringVar(&opts.Email, "email", "", "test account email (default $TEST_EMAIL or a seed-minted address)")
	cmd.PersistentFlags().StringVar(&opts.Password, "password", "", "test account password (default $TEST_PASSWORD)")
	cmd.PersistentFlags().BoolVar(&opts.ShowDetails, "show-details", false, "print detail payloads for every outcome, not just failures")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewExecCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newRunContext builds the per-run context from flags and environment.
func (o *RootOptions) newRunContext() *run.Context {
	baseURL := o.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv("BASE_URL")
	}
	ctx := run.NewContext(baseURL)

	email := o.Email
	if email == "" {
		email = os.Getenv("TEST_EMAIL")
	}
	if email != "" {
		ctx.Email = email
	}

	password := o.Password
	if password == "" {
		password = os.Getenv("TEST_PASSWORD")
	}
	if password != "" {
		ctx.Password = password
	}

	return ctx
}
