package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aocgen-labs/aocgen/internal/codegen"
	"github.com/aocgen-labs/aocgen/internal/config"
	"github.com/aocgen-labs/aocgen/internal/registry"
	"github.com/aocgen-labs/aocgen/internal/titles"
	"github.com/spf13/cobra"
)

var (
	doctorFix     bool
	doctorOffline bool
)

// errUnhealthy is returned when doctor finds problems it did not fix.
var errUnhealthy = errors.New("workspace needs attention")

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Fill empty days, regenerate stale registries and repair the config directory")
	doctorCmd.Flags().BoolVar(&doctorOffline, "offline", false, "Do not fetch puzzle titles when fixing")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the workspace",
	Long: `Check that the workspace scans cleanly, sits inside a Go module, has no
empty day files and that every generated registry is up to date.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd, doctorFix)
	},
}

// doctor accumulates problems while writing one status line per check.
type doctor struct {
	w        io.Writer
	problems int
}

func (d *doctor) ok(format string, a ...any) {
	d.line("[ OK ]", format, a...)
}

func (d *doctor) fixed(format string, a ...any) {
	d.line("[FIX ]", format, a...)
}

func (d *doctor) miss(format string, a ...any) {
	d.problems++
	d.line("[MISS]", format, a...)
}

func (d *doctor) warn(format string, a ...any) {
	d.problems++
	d.line("[WARN]", format, a...)
}

func (d *doctor) fail(format string, a ...any) {
	d.problems++
	d.line("[FAIL]", format, a...)
}

func (d *doctor) line(tag, format string, a ...any) {
	fmt.Fprintf(d.w, "  %s %s\n", tag, fmt.Sprintf(format, a...))
}

func runDoctor(cmd *cobra.Command, fix bool) error {
	d := &doctor{w: cmd.OutOrStdout()}
	fmt.Fprintln(d.w, "Workspace check:")

	layout, err := registry.Scan(rootDir)
	if err != nil {
		d.fail("%v", err)
		return errUnhealthy
	}
	d.ok("%s (%d years, %d days)", layout.Root, len(layout.Years), layout.DayCount())

	gen := newGenerator()
	if gen.ImportPath != "" {
		d.ok("import path %s (from config)", gen.ImportPath)
	} else if prefix, err := codegen.InferImportPath(layout.Root); err != nil {
		d.fail("%v", err)
		fmt.Fprintln(d.w, "         Run 'go mod init' or set registry.import_path")
		return errUnhealthy
	} else {
		d.ok("import path %s", prefix)
	}

	unfilled := checkDays(d, layout)
	if unfilled > 0 && fix {
		if err := runFill(cmd.Context(), io.Discard, doctorOffline); err != nil {
			d.fail("filling day files: %v", err)
		} else {
			d.problems -= unfilled
			d.fixed("Filled %d day file(s)", unfilled)
		}
	}

	checkRegistries(d, gen, layout.Root, fix)

	fmt.Fprintln(d.w, "Config check:")
	checkConfigDir(d, fix)
	checkTitleCache(d, fix)

	if d.problems > 0 {
		if !fix {
			fmt.Fprintln(d.w, "Run 'doctor --fix' to repair.")
		}
		return fmt.Errorf("%w: %d problem(s)", errUnhealthy, d.problems)
	}
	return nil
}

func checkDays(d *doctor, layout *registry.Layout) int {
	unfilled := 0
	for _, y := range layout.Years {
		for _, day := range y.Days {
			if day.State() == registry.Unfilled {
				unfilled++
				d.warn("%s is empty", relToRoot(layout.Root, day.Path))
			}
		}
	}
	if unfilled == 0 {
		d.ok("no empty day files")
	}
	return unfilled
}

func checkRegistries(d *doctor, gen *codegen.Generator, root string, fix bool) {
	result, err := gen.Check(root)
	if err != nil {
		d.fail("checking registries: %v", err)
		return
	}
	if len(result.Files) == 0 {
		d.ok("registries up to date")
		return
	}

	for _, p := range result.Files {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			d.miss("%s does not exist", relToRoot(root, p))
		} else {
			d.warn("%s is stale", relToRoot(root, p))
		}
	}
	if !fix {
		return
	}
	if _, err := gen.Generate(root); err != nil {
		d.fail("regenerating registries: %v", err)
		return
	}
	d.problems -= len(result.Files)
	d.fixed("Regenerated %d registry file(s)", len(result.Files))
}

func checkConfigDir(d *doctor, fix bool) {
	dir := config.Dir()
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		if !fix {
			// Nothing requires the directory until a setting or title is saved.
			d.ok("%s not created yet", dir)
			return
		}
		if err := config.EnsureDir(); err != nil {
			d.fail("%v", err)
			return
		}
		d.fixed("Created %s", dir)
	case err != nil:
		d.fail("%s: %v", dir, err)
	case !info.IsDir():
		d.fail("%s exists but is not a directory", dir)
	default:
		d.ok("%s exists", dir)
	}
}

func checkTitleCache(d *doctor, fix bool) {
	path := filepath.Join(config.Dir(), titles.CacheFileName)
	cf, err := titles.LoadCacheFile(path)
	switch {
	case err != nil:
		d.warn("%s is unreadable: %v", path, err)
		if !fix {
			return
		}
		if err := os.Remove(path); err != nil {
			d.fail("Could not remove %s: %v", path, err)
			return
		}
		d.problems--
		d.fixed("Removed %s", path)
	case cf == nil:
		d.ok("no title cache")
	default:
		d.ok("%s (%d titles)", path, len(cf.Titles))
	}
}
