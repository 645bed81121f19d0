package universities

import "github.com/spf13/cobra"

// UniversitiesCmd returns the universities command group
func UniversitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "universities",
		Aliases: []string{"unis"},
		Short:   "Browse the university directory",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
