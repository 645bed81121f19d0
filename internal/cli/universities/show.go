package universities

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/admitdesk/internal/cli"
	"github.com/thenoetrevino/admitdesk/internal/cli/styles"
	"github.com/thenoetrevino/admitdesk/internal/markdown"
	"github.com/thenoetrevino/admitdesk/internal/models"
)

// descriptionWidth is the wrap width of the rendered description
const descriptionWidth = 76

// ShowCmd returns the university show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one university",
		Long: `Show every field of one university, with its description rendered as markdown.

Examples:
  admitdesk universities show --id 4
  admitdesk universities show --id 4 --json
`,
		RunE: runShow,
		Args: cobra.NoArgs,
	}

	cmd.Flags().Int("id", 0, "University ID (required)")
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

	university, err := cliInstance.App.DirectoryService.GetUniversity(id)
	if err != nil {
		return formatter.FailFor(err)
	}

	if jsonOutput || quietMode {
		return formatter.Success(university)
	}

	printUniversity(university)
	return nil
}

func printUniversity(u models.University) {
	field := func(label, value string) {
		fmt.Printf("  %s %s\n", styles.LabelStyle.Render(label+":"), styles.ValueStyle.Render(value))
	}

	fmt.Printf("%s %s  %s\n", u.Logo, styles.TitleStyle.Render(u.Name), styles.RenderPartner(u.Partner))
	field("Location", u.City+", "+u.Country)
	field("Ranking", fmt.Sprintf("#%d", u.Ranking))
	field("Students", fmt.Sprintf("%d", u.Students))
	field("Programs", fmt.Sprintf("%d", u.Programs))
	field("Scholarships", fmt.Sprintf("%d", u.Scholarships))
	field("Tuition", u.TuitionRange)
	field("Deadline", u.ApplicationDeadline)
	field("Intakes", strings.Join(u.Intakes, ", "))
	field("Website", u.Website)

	if u.Description != "" {
		fmt.Println(styles.SectionStyle.Render("Description"))
		fmt.Println(markdown.Render(u.Description, descriptionWidth, markdown.StyleAuto))
	}
}
