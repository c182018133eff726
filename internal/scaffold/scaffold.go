package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"text/template"

	"github.com/aocgen-labs/aocgen/internal/emit"
	"github.com/aocgen-labs/aocgen/internal/registry"
)

const (
	dayTemplate  = "day.go.tmpl"
	testTemplate = "day_test.go.tmpl"
)

// Template holds the values a day skeleton is rendered from. Fixtures left
// empty render as "".
type Template struct {
	Year  int // e.g., 2023
	Day   int // e.g., 7
	Title string

	// Package and Type are the scanned directory and file stem, e.g.
	// "y02023" and "d07". Empty values are derived from Year and Day.
	Package string
	Type    string

	Input1    string
	Expected1 string
	Input2    string
	Expected2 string
}

// Rendered is a formatted day file and its test companion.
type Rendered struct {
	Source []byte
	Test   []byte
}

// templateData is what the embedded templates see.
type templateData struct {
	Template
	TestName string // e.g., "TestD7"
}

// FallbackTitle is the title used when no puzzle title could be found.
func FallbackTitle(day int) string {
	return fmt.Sprintf("--- Day %d ---", day)
}

var funcs = template.FuncMap{
	"literal": literal,
}

// literal renders s as a Go string literal, preferring a raw string for
// multi-line fixtures.
func literal(s string) string {
	if strings.Contains(s, "\n") && !strings.ContainsAny(s, "`\r") {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

// Render executes the embedded templates for t.
func Render(t Template) (*Rendered, error) {
	if t.Package == "" {
		t.Package = registry.YearName(t.Year)
	}
	if t.Type == "" {
		t.Type = registry.DayName(t.Day)
	}
	data := templateData{
		Template: t,
		TestName: "Test" + strings.ToUpper(t.Type[:1]) + t.Type[1:],
	}
	// Titles end up in a line comment.
	data.Title = strings.Join(strings.Fields(t.Title), " ")

	src, err := execute(dayTemplate, data)
	if err != nil {
		return nil, err
	}
	test, err := execute(testTemplate, data)
	if err != nil {
		return nil, err
	}
	return &Rendered{Source: src, Test: test}, nil
}

func execute(name string, data templateData) ([]byte, error) {
	tmplPath := path.Join("scaffolds", name)
	tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	out, err := emit.Format(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return out, nil
}
