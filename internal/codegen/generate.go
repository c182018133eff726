package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aocgen-labs/aocgen/internal/emit"
	"github.com/aocgen-labs/aocgen/internal/registry"
	"github.com/charmbracelet/log"
)

// Generator regenerates every registry file of a workspace.
type Generator struct {
	// Package overrides the package clause of auto_import.go.
	Package string
	// ImportPath overrides the import path of the workspace root.
	ImportPath string
	Logger     *log.Logger
}

// Result lists what a generation pass wrote.
type Result struct {
	Layout *registry.Layout
	Files  []string
}

type output struct {
	path string
	src  []byte
}

// Generate scans root and rewrites each year's mod.go and the root's
// auto_import.go. All files are rendered before the first one is written,
// so a scan or render failure leaves every registry untouched.
func (g *Generator) Generate(root string) (*Result, error) {
	logger := g.logger()

	layout, outputs, err := g.render(root)
	if err != nil {
		return nil, err
	}

	result := &Result{Layout: layout}
	for _, o := range outputs {
		if err := emit.WriteFile(o.path, o.src); err != nil {
			return nil, err
		}
		logger.Debug("wrote registry", "path", o.path)
		result.Files = append(result.Files, o.path)
	}

	logger.Info("generated registry", "years", len(layout.Years), "days", layout.DayCount())
	return result, nil
}

// Check renders the registries without writing them and reports, in
// Result.Files, every registry file that is missing or differs from what
// Generate would write.
func (g *Generator) Check(root string) (*Result, error) {
	layout, outputs, err := g.render(root)
	if err != nil {
		return nil, err
	}

	result := &Result{Layout: layout}
	for _, o := range outputs {
		current, err := os.ReadFile(o.path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", o.path, err)
		}
		if !bytes.Equal(current, o.src) {
			result.Files = append(result.Files, o.path)
		}
	}
	return result, nil
}

func (g *Generator) render(root string) (*registry.Layout, []output, error) {
	layout, err := registry.Scan(root)
	if err != nil {
		return nil, nil, err
	}

	opts, err := g.registryOptions(layout.Root)
	if err != nil {
		return nil, nil, err
	}

	var outputs []output
	for _, y := range layout.Years {
		src, err := emit.Render(YearFile(y))
		if err != nil {
			return nil, nil, fmt.Errorf("rendering %s registry: %w", y.Name, err)
		}
		outputs = append(outputs, output{filepath.Join(y.Dir, registry.ModFile), src})
	}

	src, err := emit.Render(RegistryFile(layout, opts))
	if err != nil {
		return nil, nil, fmt.Errorf("rendering top-level registry: %w", err)
	}
	outputs = append(outputs, output{filepath.Join(layout.Root, registry.RegistryFile), src})
	return layout, outputs, nil
}

func (g *Generator) registryOptions(root string) (RegistryOptions, error) {
	opts := RegistryOptions{Package: g.Package, ImportPrefix: g.ImportPath}

	if opts.Package == "" {
		pkg, err := InferPackage(root)
		if err != nil {
			return opts, err
		}
		opts.Package = pkg
	}

	if opts.ImportPrefix == "" {
		prefix, err := InferImportPath(root)
		if err != nil {
			return opts, fmt.Errorf("resolving import path (set registry.import_path to override): %w", err)
		}
		opts.ImportPrefix = prefix
	}
	return opts, nil
}

func (g *Generator) logger() *log.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return log.New(io.Discard)
}
