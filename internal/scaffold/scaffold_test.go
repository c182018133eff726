package scaffold

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"
)

const wantDay1 = `// --- Day 1 ---

package y2023

func (d1) part1(input string) string {
	panic("not implemented")
}

func (d1) part2(input string) string {
	panic("not implemented")
}
`

func TestFallbackTitle(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "--- Day 1 ---"},
		{9, "--- Day 9 ---"},
		{25, "--- Day 25 ---"},
	}
	for _, tt := range tests {
		if got := FallbackTitle(tt.day); got != tt.want {
			t.Errorf("FallbackTitle(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestRenderSkeleton(t *testing.T) {
	r, err := Render(Template{Year: 2023, Day: 1, Title: FallbackTitle(1)})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if string(r.Source) != wantDay1 {
		t.Errorf("day source mismatch:\n--- got ---\n%s\n--- want ---\n%s", r.Source, wantDay1)
	}
}

func TestRenderTestCompanion(t *testing.T) {
	r, err := Render(Template{Year: 2015, Day: 7, Title: "--- Day 7: Some Assembly Required ---"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	f := parseRendered(t, r.Test)
	if f.Name.Name != "y2015" {
		t.Errorf("package = %q, want y2015", f.Name.Name)
	}

	var fn *ast.FuncDecl
	for _, d := range f.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok && fd.Name.Name == "TestD7" {
			fn = fd
		}
	}
	if fn == nil {
		t.Fatalf("TestD7 not declared:\n%s", r.Test)
	}

	src := string(r.Test)
	for _, want := range []string{
		`input1    = ""`,
		`expected1 = ""`,
		`input2    = ""`,
		`expected2 = ""`,
		`t.Run("part1"`,
		`t.Run("part2"`,
		"(d7{}).part1(input1); got != expected1",
		"(d7{}).part2(input2); got != expected2",
	} {
		assertContains(t, src, want)
	}
}

func TestRenderFixtures(t *testing.T) {
	r, err := Render(Template{
		Year:      2022,
		Day:       1,
		Title:     "--- Day 1: Calorie Counting ---",
		Input1:    "1000\n2000\n\n3000\n",
		Expected1: "24000",
		Input2:    "say \"hi\"",
		Expected2: "45000",
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	want := map[string]string{
		"input1":    "1000\n2000\n\n3000\n",
		"expected1": "24000",
		"input2":    "say \"hi\"",
		"expected2": "45000",
	}
	got := constValues(t, parseRendered(t, r.Test))
	for name, value := range want {
		if got[name] != value {
			t.Errorf("const %s = %q, want %q", name, got[name], value)
		}
	}
	assertContains(t, string(r.Test), "`1000\n2000\n\n3000\n`")
}

func TestRenderKeepsScannedNames(t *testing.T) {
	r, err := Render(Template{Year: 2023, Day: 7, Title: FallbackTitle(7), Package: "y02023", Type: "d07"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	src := string(r.Source)
	assertContains(t, src, "package y02023")
	assertContains(t, src, "func (d07) part1(input string) string")
	assertContains(t, src, "// --- Day 7 ---")
	test := string(r.Test)
	assertContains(t, test, "func TestD07(t *testing.T)")
	assertContains(t, test, "(d07{}).part2(input2)")
}

func TestRenderTitleIsOneLine(t *testing.T) {
	r, err := Render(Template{Year: 2023, Day: 3, Title: "  --- Day 3:\nGear   Ratios ---\n"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.HasPrefix(string(r.Source), "// --- Day 3: Gear Ratios ---\n\npackage y2023\n") {
		t.Errorf("unexpected title line:\n%s", r.Source)
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\nb", "`a\nb`"},
		{"a\n`b`", "\"a\\n`b`\""},
		{"a\r\nb", `"a\r\nb"`},
	}
	for _, tt := range tests {
		if got := literal(tt.in); got != tt.want {
			t.Errorf("literal(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTestPath(t *testing.T) {
	if got := TestPath("/w/y2023/d7.go"); got != "/w/y2023/d7_test.go" {
		t.Errorf("TestPath = %q", got)
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func parseRendered(t *testing.T, src []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "rendered.go", src, 0)
	if err != nil {
		t.Fatalf("rendered source does not parse: %v\n%s", err, src)
	}
	return f
}

// constValues returns the string constants declared anywhere in f.
func constValues(t *testing.T, f *ast.File) map[string]string {
	t.Helper()
	out := map[string]string{}
	ast.Inspect(f, func(n ast.Node) bool {
		gd, ok := n.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			return true
		}
		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			for i, name := range vs.Names {
				lit, ok := vs.Values[i].(*ast.BasicLit)
				if !ok {
					continue
				}
				v, err := strconv.Unquote(lit.Value)
				if err != nil {
					t.Fatalf("const %s: %v", name.Name, err)
				}
				out[name.Name] = v
			}
		}
		return true
	})
	return out
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q, got:\n%s", substr, content)
	}
}
