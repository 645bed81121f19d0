package pipeline

import "github.com/spf13/cobra"

// PipelineCmd returns the pipeline command group
func PipelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Inspect and move application cards",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}
