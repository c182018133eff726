package codegen

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aocgen-labs/aocgen/internal/registry"
	"golang.org/x/mod/modfile"
)

// DefaultPackage is the registry package when the root holds no other Go files.
const DefaultPackage = "main"

// ErrNoModule is returned when no go.mod encloses the workspace root.
var ErrNoModule = errors.New("no go.mod found")

// InferPackage returns the package clause used by the other non-test Go
// files in root, or DefaultPackage when there are none. Day files and the
// generated registry itself are ignored.
func InferPackage(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("reading root %s: %w", root, err)
	}

	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if name == registry.RegistryFile || registry.IsDayName(name) {
			continue
		}

		f, err := parser.ParseFile(fset, filepath.Join(root, name), nil, parser.PackageClauseOnly)
		if err != nil {
			// Files that do not parse say nothing reliable about the package.
			continue
		}
		return f.Name.Name, nil
	}
	return DefaultPackage, nil
}

// InferImportPath returns the import path of root: the module path of the
// nearest enclosing go.mod joined with root's location inside that module.
func InferImportPath(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving root %s: %w", root, err)
	}

	for dir := abs; ; dir = filepath.Dir(dir) {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			modPath := modfile.ModulePath(data)
			if modPath == "" {
				return "", fmt.Errorf("go.mod in %s declares no module path", dir)
			}
			rel, err := filepath.Rel(dir, abs)
			if err != nil {
				return "", fmt.Errorf("locating %s inside %s: %w", abs, dir, err)
			}
			if rel == "." {
				return modPath, nil
			}
			return path.Join(modPath, filepath.ToSlash(rel)), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("reading go.mod in %s: %w", dir, err)
		}

		if parent := filepath.Dir(dir); parent == dir {
			return "", fmt.Errorf("%w at or above %s", ErrNoModule, abs)
		}
	}
}
