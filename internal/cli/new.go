package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/aocgen-labs/aocgen/internal/scaffold"
	"github.com/spf13/cobra"
)

var newOffline bool

func init() {
	newCmd.Flags().BoolVar(&newOffline, "offline", false, "Do not fetch the puzzle title")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <year> <day>",
	Short: "Add a day and wire it up",
	Long: `Create y<year>/d<day>.go, fill it with a skeleton and regenerate the
registries. Fails if the day file already exists.`,
	Example: "  aocgen new 2024 1",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := parseID("year", args[0])
		if err != nil {
			return err
		}
		day, err := parseID("day", args[1])
		if err != nil {
			return err
		}

		path, err := scaffold.Create(rootDir, year, day)
		if err != nil {
			return err
		}
		root, _ := filepath.Abs(rootDir)
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", relToRoot(root, path))

		return runSync(cmd.Context(), cmd.OutOrStdout(), newOffline)
	},
}

func parseID(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", what, s)
	}
	return n, nil
}
