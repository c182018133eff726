package cli

import (
	"github.com/spf13/cobra"
)

var fillOffline bool

func init() {
	fillCmd.Flags().BoolVar(&fillOffline, "offline", false, "Do not fetch puzzle titles")
	rootCmd.AddCommand(fillCmd)
}

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Scaffold empty day files",
	Long: `Write a skeleton into every day file that is currently empty, titled with
the puzzle name when it can be fetched. A d<day>_test.go companion is added
unless one exists. Non-empty files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFill(cmd.Context(), cmd.OutOrStdout(), fillOffline)
	},
}
