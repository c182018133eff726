package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aocgen-labs/aocgen/internal/codegen"
	"github.com/aocgen-labs/aocgen/internal/config"
	"github.com/aocgen-labs/aocgen/internal/scaffold"
	"github.com/aocgen-labs/aocgen/internal/titles"
)

func newGenerator() *codegen.Generator {
	s := config.Current()
	return &codegen.Generator{
		Package:    s.Package,
		ImportPath: s.ImportPath,
		Logger:     logger,
	}
}

// newFiller builds a Filler whose title provider follows the fetch and
// titles settings. Offline runs never touch the network.
func newFiller(offline bool) (*scaffold.Filler, error) {
	f := &scaffold.Filler{Provider: titles.Nop, Logger: logger}

	s := config.Current()
	if offline || !s.FetchEnabled {
		return f, nil
	}

	opts := []titles.Option{
		titles.WithURL(s.FetchURL),
		titles.WithTimeout(s.FetchTimeout),
		titles.WithLogger(logger),
	}
	if s.FetchUserAgent != "" {
		opts = append(opts, titles.WithUserAgent(s.FetchUserAgent))
	}
	var provider titles.Provider = titles.New(opts...)

	if s.TitlesCache {
		cached, err := titles.NewCached(provider, filepath.Join(config.Dir(), titles.CacheFileName))
		if err != nil {
			return nil, err
		}
		provider = cached
	}
	f.Provider = provider
	return f, nil
}

func runGenerate(out io.Writer) error {
	result, err := newGenerator().Generate(rootDir)
	if err != nil {
		return fmt.Errorf("generating registry: %w", err)
	}
	for _, p := range result.Files {
		fmt.Fprintf(out, "Wrote %s\n", relToRoot(result.Layout.Root, p))
	}
	return nil
}

func runFill(ctx context.Context, out io.Writer, offline bool) error {
	f, err := newFiller(offline)
	if err != nil {
		return err
	}
	result, err := f.Fill(ctx, rootDir)
	if err != nil {
		return fmt.Errorf("filling day files: %w", err)
	}

	root, _ := filepath.Abs(rootDir)
	for _, p := range result.Filled {
		fmt.Fprintf(out, "Filled %s\n", relToRoot(root, p))
	}
	return nil
}

// runSync fills empty day files, then regenerates the registries.
func runSync(ctx context.Context, out io.Writer, offline bool) error {
	if err := runFill(ctx, out, offline); err != nil {
		return err
	}
	return runGenerate(out)
}

func relToRoot(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
