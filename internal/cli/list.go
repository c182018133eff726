package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/aocgen-labs/aocgen/internal/registry"
	"github.com/spf13/cobra"
)

var (
	listYear int
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered days",
	Long:  `List every y<year>/d<day>.go in the workspace with its scaffolding state.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listYear, "year", 0, "Only list this year")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a discovered day for display.
type listEntry struct {
	Year  int    `json:"year"`
	Day   int    `json:"day"`
	State string `json:"state"`
	Path  string `json:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	layout, err := registry.Scan(rootDir)
	if err != nil {
		return fmt.Errorf("scanning workspace: %w", err)
	}

	entries := []listEntry{}
	for _, y := range layout.Years {
		if listYear != 0 && y.ID != listYear {
			continue
		}
		for _, d := range y.Days {
			entries = append(entries, listEntry{
				Year:  y.ID,
				Day:   d.ID,
				State: d.State().String(),
				Path:  relToRoot(layout.Root, d.Path),
			})
		}
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No day files found.")
		return nil
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "YEAR\tDAY\tSTATE\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", e.Year, e.Day, e.State, e.Path)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
