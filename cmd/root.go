package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/admitdesk/internal/cli"
	"github.com/thenoetrevino/admitdesk/internal/cli/dashboard"
	"github.com/thenoetrevino/admitdesk/internal/cli/pipeline"
	"github.com/thenoetrevino/admitdesk/internal/cli/students"
	"github.com/thenoetrevino/admitdesk/internal/cli/universities"
	"github.com/thenoetrevino/admitdesk/internal/launcher"
)

// NewRootCmd builds the command tree. Running it without a subcommand opens the TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "admitdesk",
		Short: "AdmitDesk - admissions dashboard for education consultancies",
		Long: `AdmitDesk is a terminal dashboard for an education consultancy: student roster,
university directory and the application pipeline.

Run without arguments to open the interactive dashboard. Data is loaded fresh
into memory on every start; changes are not saved.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.WithExitCode(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(students.StudentsCmd())
	rootCmd.AddCommand(universities.UniversitiesCmd())
	rootCmd.AddCommand(pipeline.PipelineCmd())
	rootCmd.AddCommand(dashboard.DashboardCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
