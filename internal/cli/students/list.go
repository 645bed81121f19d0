package students

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/admitdesk/internal/cli"
	"github.com/thenoetrevino/admitdesk/internal/cli/styles"
	"github.com/thenoetrevino/admitdesk/internal/filter"
	"github.com/thenoetrevino/admitdesk/internal/models"
)

// ListCmd returns the student list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List students",
		Long: `List students, optionally filtered by a search query, status and country.

The search matches name or email, ignoring case. Status and country take one of
their known values, in any case; "all" (the default) removes the constraint. A
country with no students lists nothing, and a value that is not a known status
or country is a usage error (exit code 2).

Examples:
  # Everyone
  admitdesk students list

  # Active students in Germany
  admitdesk students list --status active --country Germany

  # Search by email, JSON output for agents
  admitdesk students list --search karim@ --json

  # IDs only, for bash capture
  admitdesk students list --status pending --quiet
`,
		RunE: runList,
		Args: cobra.NoArgs,
	}

	cmd.Flags().String("search", "", "Case-insensitive text matched against name and email")
	cmd.Flags().String("status", models.SelectorAll, "Status: all, active, inactive, pending")
	cmd.Flags().String("country", models.SelectorAll, "Destination country, or all")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("status")
	country, _ := cmd.Flags().GetString("country")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close CLI: %v\n", err)
		}
	}()

	dir := cliInstance.App.DirectoryService
	if status, err = formatter.ResolveFlag("status", status, dir.StudentOptions(filter.SelectorStatus)); err != nil {
		return err
	}
	if country, err = formatter.ResolveFlag("country", country, dir.StudentOptions(filter.SelectorCountry)); err != nil {
		return err
	}

	criteria := filter.NewCriteria().
		With(filter.SelectorStatus, status).
		With(filter.SelectorCountry, country)
	criteria.Query = search

	students := dir.Students(criteria)

	if quietMode {
		for _, s := range students {
			fmt.Printf("%d\n", s.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":  true,
			"students": students,
		})
	}

	if len(students) == 0 {
		fmt.Println("No students found")
		return nil
	}

	fmt.Printf("Found %d students:\n\n", len(students))
	for _, s := range students {
		fmt.Printf("  [%d] %s  %s  %s\n", s.ID, styles.TitleStyle.Render(s.Name), styles.RenderStatus(s.Status), s.Country)
		fmt.Printf("      %s · %s · GPA %s · IELTS %s · %s\n", s.Email, s.Stage, s.GPA, s.IELTS, s.Counselor)
	}

	return nil
}
