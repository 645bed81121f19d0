package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/admitdesk/internal/cli"
	"github.com/thenoetrevino/admitdesk/internal/cli/styles"
	"github.com/thenoetrevino/admitdesk/internal/models"
)

// stageCards is one stage of the board in JSON output
type stageCards struct {
	Stage models.Stage         `json:"stage"`
	Cards []models.Application `json:"cards"`
}

// ShowCmd returns the pipeline show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the application board",
		Long: `Show every stage of the application pipeline with its cards, in board order.

Examples:
  admitdesk pipeline show
  admitdesk pipeline show --stage visa
  admitdesk pipeline show --json
`,
		RunE: runShow,
		Args: cobra.NoArgs,
	}

	cmd.Flags().String("stage", "", "Only show this stage (ID or title)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (card IDs only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	stageName, _ := cmd.Flags().GetString("stage")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() { _ = cliInstance.Close() }()

	svc := cliInstance.App.PipelineService

	stages := svc.Stages()
	if stageName != "" {
		stage, err := svc.ResolveStage(stageName)
		if err != nil {
			return stageNotFound(formatter, svc.SuggestStage(stageName), err)
		}
		stages = []models.Stage{stage}
	}

	board := make([]stageCards, 0, len(stages))
	for _, st := range stages {
		cards, err := svc.CardsByStage(st.ID)
		if err != nil {
			return formatter.FailFor(err)
		}
		board = append(board, stageCards{Stage: st, Cards: cards})
	}

	if quietMode {
		for _, col := range board {
			for _, c := range col.Cards {
				fmt.Printf("%d\n", c.ID)
			}
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"stages":  board,
		})
	}

	for i, col := range board {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(styles.RenderStageHeader(col.Stage, len(col.Cards)))
		if len(col.Cards) == 0 {
			fmt.Println(styles.SubtitleStyle.Render("  (empty)"))
			continue
		}
		for _, c := range col.Cards {
			printCard(c)
		}
	}

	return nil
}

func printCard(c models.Application) {
	fmt.Printf("  [%d] %s  %s\n", c.ID, styles.TitleStyle.Render(c.StudentName), styles.RenderPriority(c.Priority))
	fmt.Printf("      %s · %s · due %s\n", c.University, c.Program, c.Deadline)
	if len(c.MissingDocs) > 0 {
		fmt.Printf("      %s %s\n", styles.ErrorStyle.Render("missing:"), strings.Join(c.MissingDocs, ", "))
	}
}

// stageNotFound reports an unknown stage name, suggesting the closest stage
func stageNotFound(formatter *cli.OutputFormatter, suggestion string, err error) error {
	exitCode, code := cli.Classify(err)
	hint := ""
	if suggestion != "" {
		hint = fmt.Sprintf("did you mean '%s'?", suggestion)
	}
	return formatter.FailWithSuggestion(exitCode, code, err, hint)
}
