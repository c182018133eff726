package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aocgen-labs/aocgen/internal/watch"
	"github.com/spf13/cobra"
)

var (
	watchDebounce time.Duration
	watchOffline  bool
)

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before syncing")
	watchCmd.Flags().BoolVar(&watchOffline, "offline", false, "Do not fetch puzzle titles")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Sync whenever days or years are added or removed",
	Long: `Run sync once, then watch the workspace and sync again whenever a day
file or year directory appears, disappears or is emptied. Stops on Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if err := runSync(ctx, out, watchOffline); err != nil {
			return err
		}

		w, err := watch.New(watch.Config{
			Root:     rootDir,
			Debounce: watchDebounce,
			Logger:   logger,
			OnChange: func(ctx context.Context, changed []string) error {
				logger.Info("layout changed", "paths", changed)
				return runSync(ctx, out, watchOffline)
			},
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Watching %s (Ctrl-C to stop)\n", rootDir)
		return w.Run(ctx)
	},
}
