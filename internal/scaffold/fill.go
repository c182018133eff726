package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aocgen-labs/aocgen/internal/emit"
	"github.com/aocgen-labs/aocgen/internal/registry"
	"github.com/aocgen-labs/aocgen/internal/titles"
	"github.com/charmbracelet/log"
)

// ErrExists is returned by Create when the day file is already present.
var ErrExists = errors.New("day file already exists")

// Filler scaffolds every empty day file of a workspace.
type Filler struct {
	// Provider looks up puzzle titles. Nil means titles.Nop.
	Provider titles.Provider
	Logger   *log.Logger
}

// FillResult lists what a fill pass did.
type FillResult struct {
	Filled  []string // day files that received a skeleton
	Skipped int      // non-empty day files left untouched
}

// Fill scans root and writes a skeleton into each day file that is empty at
// scan time. Years and days are handled one at a time in ascending order.
func (f *Filler) Fill(ctx context.Context, root string) (*FillResult, error) {
	logger := f.logger()
	provider := f.Provider
	if provider == nil {
		provider = titles.Nop
	}

	layout, err := registry.Scan(root)
	if err != nil {
		return nil, err
	}

	result := &FillResult{}
	for _, y := range layout.Years {
		for _, d := range y.Days {
			if d.State() == registry.Filled {
				result.Skipped++
				continue
			}
			if err := ctx.Err(); err != nil {
				return result, err
			}

			title, ok := provider.FetchTitle(ctx, y.ID, d.ID)
			if !ok {
				logger.Debug("using fallback title", "year", y.ID, "day", d.ID)
				title = FallbackTitle(d.ID)
			}

			if err := fillDay(y, d, title); err != nil {
				return result, err
			}
			logger.Info("filled day file", "path", d.Path, "title", title)
			result.Filled = append(result.Filled, d.Path)
		}
	}
	return result, nil
}

func fillDay(y registry.Year, d registry.Day, title string) error {
	r, err := Render(Template{
		Year:    y.ID,
		Day:     d.ID,
		Title:   title,
		Package: y.Name,
		Type:    d.Name,
	})
	if err != nil {
		return fmt.Errorf("rendering %s: %w", d.Path, err)
	}

	if err := emit.WriteFile(d.Path, r.Source); err != nil {
		return err
	}

	testPath := TestPath(d.Path)
	if _, err := os.Stat(testPath); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", testPath, err)
	}
	return emit.WriteFile(testPath, r.Test)
}

// TestPath returns the test companion of a day file, e.g. d7.go → d7_test.go.
func TestPath(dayPath string) string {
	return strings.TrimSuffix(dayPath, registry.Ext) + "_test" + registry.Ext
}

func (f *Filler) logger() *log.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return log.New(io.Discard)
}

// Create adds an empty day file under root, creating the year directory if
// needed, and returns its path. It refuses to touch an existing file.
func Create(root string, year, day int) (string, error) {
	if year < 0 || day < 0 {
		return "", fmt.Errorf("year and day must not be negative (got %d, %d)", year, day)
	}

	dir := filepath.Join(root, registry.YearName(year))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating year directory: %w", err)
	}

	p := filepath.Join(dir, registry.DayFileName(day))
	file, err := os.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("%w: %s", ErrExists, p)
	}
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", p, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", p, err)
	}
	return p, nil
}
