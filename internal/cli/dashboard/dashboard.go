package dashboard

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/admitdesk/internal/cli"
	"github.com/thenoetrevino/admitdesk/internal/cli/styles"
	"github.com/thenoetrevino/admitdesk/internal/user"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show KPIs, pipeline counts, activity and notifications",
		Long: `Show the dashboard overview.

Examples:
  admitdesk dashboard
  admitdesk dashboard --json
`,
		RunE: runDashboard,
		Args: cobra.NoArgs,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() { _ = cliInstance.Close() }()

	overview := cliInstance.App.DashboardService.Overview()

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":  true,
			"overview": overview,
		})
	}

	fmt.Println(styles.TitleStyle.Render("Dashboard"))
	fmt.Println(styles.SubtitleStyle.Render(user.Greeting()))
	for _, k := range overview.KPIs {
		fmt.Printf("  %-24s %6d  %s\n", k.Title, k.Value, styles.SuccessStyle.Render(k.Change))
	}

	fmt.Println(styles.SectionStyle.Render("Pipeline"))
	for _, s := range overview.Pipeline {
		fmt.Printf("  %s\n", styles.RenderStageHeader(s.Stage, s.Count))
	}

	fmt.Println(styles.SectionStyle.Render("Recent Activities"))
	for _, a := range overview.Activities {
		fmt.Printf("  %s %s %s\n", styles.LabelStyle.Render(a.Student), a.Action, styles.SubtitleStyle.Render(a.Time))
	}

	fmt.Println(styles.SectionStyle.Render("Notifications"))
	for _, n := range overview.Notifications {
		fmt.Printf("  %s %s\n", levelMarker(n.Level), styles.LabelStyle.Render(n.Title))
		fmt.Printf("    %s\n", n.Message)
	}

	return nil
}

func levelMarker(level string) string {
	switch level {
	case "warning":
		return styles.WarningStyle.Render("!")
	case "success":
		return styles.SuccessStyle.Render("✓")
	default:
		return styles.LabelStyle.Render("i")
	}
}
