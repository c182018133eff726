package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"github.com/aocgen-labs/aocgen/internal/platform"
)

// ErrMalformed is returned when the formatter rejects rendered source. It
// means the generator produced an invalid declaration set, which is a bug.
var ErrMalformed = errors.New("malformed generated source")

// Import is one import spec. Name is optional.
type Import struct {
	Name string
	Path string
}

// Decl is a top-level declaration with an optional doc comment. Doc lines
// are written without the leading "// ".
type Decl struct {
	Doc  string
	Node ast.Decl
}

// File is the structured form of a generated Go source file.
type File struct {
	Header  string // comment text placed above the package clause, e.g. a "Code generated" marker
	Package string
	Imports []Import
	Decls   []Decl
}

// Render prints f and canonicalises the result with go/format.
func Render(f *File) ([]byte, error) {
	fset := token.NewFileSet()
	var buf bytes.Buffer

	if f.Header != "" {
		buf.WriteString(f.Header)
		buf.WriteString("\n\n")
	}
	fmt.Fprintf(&buf, "package %s\n", f.Package)

	if imports := importDecl(f.Imports); imports != nil {
		buf.WriteString("\n")
		if err := format.Node(&buf, fset, imports); err != nil {
			return nil, fmt.Errorf("%w: printing imports: %v", ErrMalformed, err)
		}
		buf.WriteString("\n")
	}

	for _, d := range f.Decls {
		buf.WriteString("\n")
		writeDoc(&buf, d.Doc)
		if err := format.Node(&buf, fset, d.Node); err != nil {
			return nil, fmt.Errorf("%w: printing declaration: %v", ErrMalformed, err)
		}
		buf.WriteString("\n")
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v\n---\n%s", ErrMalformed, err, buf.String())
	}
	return out, nil
}

// Emit renders f and replaces the file at path with the result.
func Emit(f *File, path string) error {
	src, err := Render(f)
	if err != nil {
		return err
	}
	return WriteFile(path, src)
}

// EmitSource canonicalises raw Go source and replaces the file at path.
func EmitSource(src []byte, path string) error {
	formatted, err := Format(src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return WriteFile(path, formatted)
}

// Format canonicalises raw Go source.
func Format(src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}

// WriteFile replaces the full content of path with data.
func WriteFile(path string, data []byte) error {
	if err := platform.ReplaceFile(path, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func importDecl(imports []Import) *ast.GenDecl {
	if len(imports) == 0 {
		return nil
	}
	sorted := make([]Import, len(imports))
	copy(sorted, imports)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	d := &ast.GenDecl{Tok: token.IMPORT}
	for _, imp := range sorted {
		spec := &ast.ImportSpec{
			Path: &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(imp.Path)},
		}
		if imp.Name != "" {
			spec.Name = ast.NewIdent(imp.Name)
		}
		d.Specs = append(d.Specs, spec)
	}
	return d
}

func writeDoc(buf *bytes.Buffer, doc string) {
	if doc == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(doc, "\n"), "\n") {
		if line == "" {
			buf.WriteString("//\n")
			continue
		}
		buf.WriteString("// ")
		buf.WriteString(line)
		buf.WriteString("\n")
	}
}
