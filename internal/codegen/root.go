package codegen

import (
	"go/ast"
	"path"

	"github.com/aocgen-labs/aocgen/internal/branding"
	"github.com/aocgen-labs/aocgen/internal/emit"
	"github.com/aocgen-labs/aocgen/internal/registry"
)

// RegistryOptions places the top-level registry.
type RegistryOptions struct {
	Package      string // package clause of auto_import.go
	ImportPrefix string // import path of the workspace root
}

// RegistryFile builds the auto_import.go declarations: one named import per
// year package and SelectFunction(year, day, part).
func RegistryFile(layout *registry.Layout, opts RegistryOptions) *emit.File {
	f := &emit.File{
		Header:  branding.GeneratedHeader(),
		Package: opts.Package,
		Imports: []emit.Import{{Path: branding.RuntimeImport()}},
	}

	clauses := make([]ast.Stmt, 0, len(layout.Years)+1)
	for _, y := range layout.Years {
		f.Imports = append(f.Imports, emit.Import{
			Name: y.Name,
			Path: path.Join(opts.ImportPrefix, y.Name),
		})

		forward := &ast.CallExpr{
			Fun:  sel(y.Name, selectFunc),
			Args: []ast.Expr{ast.NewIdent("day"), ast.NewIdent("part")},
		}
		clauses = append(clauses, caseClause(intLit(y.ID),
			&ast.ReturnStmt{Results: []ast.Expr{forward}}))
	}
	clauses = append(clauses, caseClause(nil, returnError("InvalidYear", "year")))

	f.Decls = append(f.Decls, emit.Decl{
		Doc:  selectFunc + " returns the solver for the given year, day, and part.",
		Node: selectFuncDecl(switchOn("year", clauses), "year", "day", "part"),
	})
	return f
}
