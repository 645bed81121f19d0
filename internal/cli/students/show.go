package students

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/admitdesk/internal/cli"
	"github.com/thenoetrevino/admitdesk/internal/cli/styles"
	"github.com/thenoetrevino/admitdesk/internal/models"
)

// ShowCmd returns the student show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one student",
		Long: `Show every field of one student.

Examples:
  admitdesk students show --id 2
  admitdesk students show --id 2 --json
`,
		RunE: runShow,
		Args: cobra.NoArgs,
	}

	cmd.Flags().Int("id", 0, "Student ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetInt("id")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() { _ = cliInstance.Close() }()

	student, err := cliInstance.App.DirectoryService.GetStudent(id)
	if err != nil {
		return formatter.FailFor(err)
	}

	if jsonOutput || quietMode {
		return formatter.Success(student)
	}

	printStudent(student)
	return nil
}

func printStudent(s models.Student) {
	field := func(label, value string) {
		fmt.Printf("  %s %s\n", styles.LabelStyle.Render(label+":"), styles.ValueStyle.Render(value))
	}

	fmt.Printf("%s  %s\n", styles.TitleStyle.Render(fmt.Sprintf("[%s] %s", s.Initials(), s.Name)), styles.RenderStatus(s.Status))
	field("Email", s.Email)
	field("Phone", s.Phone)
	field("Stage", s.Stage)
	field("Country", s.Country)
	field("University", s.University)
	field("GPA", s.GPA)
	field("IELTS", s.IELTS)
	field("Joined", s.JoinDate)
	field("Counselor", s.Counselor)
}
