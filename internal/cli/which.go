package cli

import (
	"fmt"
	"path/filepath"

	"github.com/aocgen-labs/aocgen/internal/codegen"
	"github.com/aocgen-labs/aocgen/internal/registry"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(whichCmd)
}

var whichCmd = &cobra.Command{
	Use:   "which <year> <day> <part>",
	Short: "Show which function a triple dispatches to",
	Long: `Resolve (year, day, part) against the current layout the same way the
generated SelectFunction does, and print the method it returns.`,
	Example: "  aocgen which 2023 1 2",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ids [3]int
		for i, what := range []string{"year", "day", "part"} {
			n, err := parseID(what, args[i])
			if err != nil {
				return err
			}
			ids[i] = n
		}

		layout, err := registry.Scan(rootDir)
		if err != nil {
			return fmt.Errorf("scanning workspace: %w", err)
		}
		ref, err := codegen.Resolve(layout, ids[0], ids[1], ids[2])
		if err != nil {
			return err
		}

		path := filepath.Join(layout.Root, ref.Package, ref.Type+registry.Ext)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ref, relToRoot(layout.Root, path))
		return nil
	},
}
