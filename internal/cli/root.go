package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/aocgen-labs/aocgen/internal/branding"
	"github.com/aocgen-labs/aocgen/internal/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootDir string
	verbose bool
	logger  = log.New(io.Discard)
)

// skipConfig marks commands that must run even when config files are broken.
const skipConfig = "skip-config"

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps an Advent of Code workspace wired up. It discovers
y<year>/d<day>.go files, generates the SelectFunction registries that route a
(year, day, part) triple to its solution, and fills empty day files with a
skeleton and a test scaffold.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(cmd.ErrOrStderr())

		if cmd.Annotations[skipConfig] == "true" {
			return nil
		}
		if err := config.Load(rootDir); err != nil {
			return err
		}
		return config.CheckRequires(config.Current().Requires, buildVersion)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "Workspace root containing the y<year> directories")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  level,
	})
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the command's context.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
