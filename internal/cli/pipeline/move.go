package pipeline

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/admitdesk/internal/cli"
	"github.com/thenoetrevino/admitdesk/internal/models"
	board "github.com/thenoetrevino/admitdesk/internal/pipeline"
	pipelineservice "github.com/thenoetrevino/admitdesk/internal/services/pipeline"
)

// moveResult is the JSON shape of a completed move
type moveResult struct {
	ID    int    `json:"id"`
	From  string `json:"from"`
	To    string `json:"to"`
	Moved bool   `json:"moved"`
}

func (m moveResult) GetID() int {
	return m.ID
}

// MoveCmd returns the pipeline move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card to another stage",
		Long: `Move an application card to another stage by direction or stage name.

The card is appended to the end of the target stage. Moving a card onto the
stage it is already in changes nothing.

Examples:
  # Move to next stage
  admitdesk pipeline move --id 1 next

  # Move to previous stage
  admitdesk pipeline move --id 1 prev

  # Move to a specific stage by ID or title (case-insensitive)
  admitdesk pipeline move --id 1 visa
  admitdesk pipeline move --id 1 "Visa Process"

  # JSON output for agents
  admitdesk pipeline move --id 1 next --json
`,
		RunE: runMove,
		Args: cobra.ExactArgs(1),
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Card ID (required)")
	_ = cmd.MarkFlagRequired("id")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cardID, _ := cmd.Flags().GetInt("id")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	target := args[0]

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() { _ = cliInstance.Close() }()

	svc := cliInstance.App.PipelineService

	var res board.MoveResult
	switch strings.ToLower(target) {
	case "next":
		res, err = svc.MoveCardToNextStage(ctx, cardID)
	case "prev":
		res, err = svc.MoveCardToPrevStage(ctx, cardID)
	default:
		stage, resolveErr := svc.ResolveStage(target)
		if resolveErr != nil {
			return stageNotFound(formatter, svc.SuggestStage(target), resolveErr)
		}
		res, err = svc.MoveCard(ctx, cardID, stage.ID)
	}
	if err != nil {
		return formatter.FailFor(err)
	}

	out := moveResult{ID: res.Card.ID, From: string(res.From), To: string(res.To), Moved: res.Moved}
	if jsonOutput || quietMode {
		return formatter.Success(out)
	}

	if !res.Moved {
		fmt.Printf("Card %d is already in %s\n", res.Card.ID, stageTitle(svc, res.To))
		return nil
	}
	fmt.Printf("✓ Card %d (%s) moved from %s to %s\n",
		res.Card.ID, res.Card.StudentName, stageTitle(svc, res.From), stageTitle(svc, res.To))
	return nil
}

// stageTitle returns the display title of a stage ID
func stageTitle(svc pipelineservice.Service, id models.StageID) string {
	st, err := svc.ResolveStage(string(id))
	if err != nil {
		return string(id)
	}
	return st.Title
}
