package students

import "github.com/spf13/cobra"

// StudentsCmd returns the students command group
func StudentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "students",
		Short: "Browse the student roster",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
