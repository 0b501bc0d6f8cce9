package cli

import (
	"github.com/spf13/cobra"
)

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cherrybot version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("cherrybot %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
