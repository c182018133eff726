package codegen

import (
	"go/ast"
	"go/token"
	"strconv"

	"github.com/aocgen-labs/aocgen/internal/branding"
	"github.com/aocgen-labs/aocgen/internal/emit"
	"github.com/aocgen-labs/aocgen/internal/registry"
	"github.com/aocgen-labs/aocgen/pkg/dispatch"
)

// MethodName returns the method implementing a part, e.g. 1 → "part1".
func MethodName(part int) string { return "part" + strconv.Itoa(part) }

// YearFile builds the mod.go declarations for one year: a struct type per
// day and SelectFunction(day, part).
func YearFile(year registry.Year) *emit.File {
	f := &emit.File{
		Header:  branding.GeneratedHeader(),
		Package: year.Name,
		Imports: []emit.Import{{Path: branding.RuntimeImport()}},
	}

	if len(year.Days) > 0 {
		f.Decls = append(f.Decls, emit.Decl{
			Doc:  "Day modules; each type implements part1 and part2 in its own file.",
			Node: dayTypes(year.Days),
		})
	}

	f.Decls = append(f.Decls, emit.Decl{
		Doc:  selectFunc + " returns the solver for the given day and part.",
		Node: selectFuncDecl(daySwitch(year.Days), "day", "part"),
	})
	return f
}

func dayTypes(days []registry.Day) *ast.GenDecl {
	d := &ast.GenDecl{Tok: token.TYPE}
	for _, day := range days {
		d.Specs = append(d.Specs, &ast.TypeSpec{
			Name: ast.NewIdent(day.Name),
			Type: emptyStruct(),
		})
	}
	return d
}

// emptyStruct returns struct{}. The printer only keeps an empty field list
// on one line when both braces have valid positions on the same line.
func emptyStruct() *ast.StructType {
	return &ast.StructType{Fields: &ast.FieldList{Opening: 1, Closing: 1}}
}

func daySwitch(days []registry.Day) ast.Stmt {
	clauses := make([]ast.Stmt, 0, len(days)+1)
	for _, day := range days {
		clauses = append(clauses, caseClause(intLit(day.ID), partSwitch(day.Name)))
	}
	clauses = append(clauses, caseClause(nil, returnError("InvalidDay", "day")))
	return switchOn("day", clauses)
}

func partSwitch(typeName string) ast.Stmt {
	parts := dispatch.Parts()
	clauses := make([]ast.Stmt, 0, len(parts)+1)
	for _, p := range parts {
		ref := &ast.SelectorExpr{
			X:   &ast.CompositeLit{Type: ast.NewIdent(typeName)},
			Sel: ast.NewIdent(MethodName(p)),
		}
		clauses = append(clauses, caseClause(intLit(p),
			&ast.ReturnStmt{Results: []ast.Expr{ref, ast.NewIdent("nil")}}))
	}
	clauses = append(clauses, caseClause(nil, returnError("InvalidPart", "part")))
	return switchOn("part", clauses)
}
