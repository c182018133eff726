package cli

import (
	"github.com/spf13/cobra"
)

var syncOffline bool

func init() {
	syncCmd.Flags().BoolVar(&syncOffline, "offline", false, "Do not fetch puzzle titles")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fill empty day files, then regenerate the registries",
	Long: `Run fill followed by generate. This is what a go:generate directive or a
build step should call.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context(), cmd.OutOrStdout(), syncOffline)
	},
}
