package universities

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/admitdesk/internal/cli"
	"github.com/thenoetrevino/admitdesk/internal/cli/styles"
	"github.com/thenoetrevino/admitdesk/internal/filter"
	"github.com/thenoetrevino/admitdesk/internal/models"
)

// ListCmd returns the university list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List universities",
		Long: `List universities, optionally filtered by a search query, country and partnership.

The search matches name or city, ignoring case. Country and partner take one of
their known values, in any case; "all" (the default) removes the constraint. A
value that is not a known country or partnership is a usage error (exit code 2).

Examples:
  # Partner universities only
  admitdesk universities list --partner partner

  # Universities in Germany whose name or city mentions "berlin"
  admitdesk universities list --country Germany --search berlin

  # JSON output for agents
  admitdesk universities list --partner non-partner --json
`,
		RunE: runList,
		Args: cobra.NoArgs,
	}

	cmd.Flags().String("search", "", "Case-insensitive text matched against name and city")
	cmd.Flags().String("country", models.SelectorAll, "Country, or all")
	cmd.Flags().String("partner", models.SelectorAll, "Partnership: all, partner, non-partner")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	search, _ := cmd.Flags().GetString("search")
	country, _ := cmd.Flags().GetString("country")
	partner, _ := cmd.Flags().GetString("partner")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() { _ = cliInstance.Close() }()

	dir := cliInstance.App.DirectoryService
	if country, err = formatter.ResolveFlag("country", country, dir.UniversityOptions(filter.SelectorCountry)); err != nil {
		return err
	}
	if partner, err = formatter.ResolveFlag("partner", partner, dir.UniversityOptions(filter.SelectorPartner)); err != nil {
		return err
	}

	criteria := filter.NewCriteria().
		With(filter.SelectorCountry, country).
		With(filter.SelectorPartner, partner)
	criteria.Query = search

	universities := dir.Universities(criteria)

	if quietMode {
		for _, u := range universities {
			fmt.Printf("%d\n", u.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":      true,
			"universities": universities,
			"stats":        dir.UniversityStats(),
		})
	}

	if len(universities) == 0 {
		fmt.Println("No universities found")
		return nil
	}

	stats := dir.UniversityStats()
	fmt.Println(styles.SubtitleStyle.Render(fmt.Sprintf(
		"%d universities · %d partners · %d scholarships · %d students placed",
		stats.Total, stats.Partners, stats.Scholarships, stats.StudentsPlaced)))
	fmt.Printf("Found %d universities:\n\n", len(universities))
	for _, u := range universities {
		fmt.Printf("  [%d] %s  %s\n", u.ID, styles.TitleStyle.Render(u.Name), styles.RenderPartner(u.Partner))
		fmt.Printf("      %s, %s · #%d · %d programs · %d scholarships · %s · intakes: %s\n",
			u.City, u.Country, u.Ranking, u.Programs, u.Scholarships, u.TuitionRange, strings.Join(u.Intakes, ", "))
	}

	return nil
}
