package codegen

import (
	"go/ast"
	"go/token"
	"strconv"
)

// runtimePkg is the package name of the dispatch runtime import.
const runtimePkg = "dispatch"

// selectFunc is the name of the generated router in every registry file.
const selectFunc = "SelectFunction"

func intLit(n int) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(n)}
}

func sel(x, name string) *ast.SelectorExpr {
	return &ast.SelectorExpr{X: ast.NewIdent(x), Sel: ast.NewIdent(name)}
}

func idents(names ...string) []*ast.Ident {
	out := make([]*ast.Ident, len(names))
	for i, n := range names {
		out[i] = ast.NewIdent(n)
	}
	return out
}

// caseClause returns "case value:" or, for a nil value, "default:".
func caseClause(value ast.Expr, body ...ast.Stmt) *ast.CaseClause {
	c := &ast.CaseClause{Body: body}
	if value != nil {
		c.List = []ast.Expr{value}
	}
	return c
}

func switchOn(tag string, clauses []ast.Stmt) *ast.SwitchStmt {
	return &ast.SwitchStmt{
		Tag:  ast.NewIdent(tag),
		Body: &ast.BlockStmt{List: clauses},
	}
}

// returnError returns "return nil, dispatch.<ctor>(<arg>)".
func returnError(ctor, arg string) *ast.ReturnStmt {
	return &ast.ReturnStmt{Results: []ast.Expr{
		ast.NewIdent("nil"),
		&ast.CallExpr{Fun: sel(runtimePkg, ctor), Args: []ast.Expr{ast.NewIdent(arg)}},
	}}
}

// selectFuncDecl declares "func SelectFunction(<params> int) (dispatch.Solver, error)".
func selectFuncDecl(body ast.Stmt, params ...string) *ast.FuncDecl {
	return &ast.FuncDecl{
		Name: ast.NewIdent(selectFunc),
		Type: &ast.FuncType{
			Params: &ast.FieldList{List: []*ast.Field{
				{Names: idents(params...), Type: ast.NewIdent("int")},
			}},
			Results: &ast.FieldList{List: []*ast.Field{
				{Type: sel(runtimePkg, "Solver")},
				{Type: ast.NewIdent("error")},
			}},
		},
		Body: &ast.BlockStmt{List: []ast.Stmt{body}},
	}
}
