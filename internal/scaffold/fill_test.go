package scaffold

import (
	"context"
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aocgen-labs/aocgen/internal/codegen"
	"github.com/aocgen-labs/aocgen/internal/registry"
	"github.com/aocgen-labs/aocgen/internal/titles"
)

func TestFillEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/aoc\n")
	writeFile(t, filepath.Join(root, "y2023", "d1.go"), "")
	writeFile(t, filepath.Join(root, "y2023", "d2.go"), "X")

	g := &codegen.Generator{}
	if _, err := g.Generate(root); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	f := &Filler{Provider: titles.Nop}
	result, err := f.Fill(context.Background(), root)
	if err != nil {
		t.Fatalf("Fill() error: %v", err)
	}

	d1 := filepath.Join(root, "y2023", "d1.go")
	if len(result.Filled) != 1 || result.Filled[0] != d1 {
		t.Errorf("Filled = %v, want [%s]", result.Filled, d1)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}

	if got := readGenerated(t, d1); got != wantDay1 {
		t.Errorf("d1.go mismatch:\n%s", got)
	}
	if got := readGenerated(t, filepath.Join(root, "y2023", "d2.go")); got != "X" {
		t.Errorf("d2.go = %q, want %q", got, "X")
	}
	assertContains(t, readGenerated(t, filepath.Join(root, "y2023", "d1_test.go")), "func TestD1(t *testing.T)")
	if _, err := os.Stat(filepath.Join(root, "y2023", "d2_test.go")); err == nil {
		t.Error("d2_test.go written for a filled day")
	}

	mod := readGenerated(t, filepath.Join(root, "y2023", "mod.go"))
	assertContains(t, mod, "return d1{}.part1, nil")
	reg := readGenerated(t, filepath.Join(root, "auto_import.go"))
	assertContains(t, reg, "return y2023.SelectFunction(day, part)")
}

func TestFillUsesScannedNames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "y02023", "d01.go"), "")

	f := &Filler{Provider: titles.Nop}
	if _, err := f.Fill(context.Background(), root); err != nil {
		t.Fatalf("Fill() error: %v", err)
	}
	g := &codegen.Generator{Package: "aoc", ImportPath: "example.com/aoc"}
	if _, err := g.Generate(root); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	day := parseRendered(t, []byte(readGenerated(t, filepath.Join(root, "y02023", "d01.go"))))
	mod := parseRendered(t, []byte(readGenerated(t, filepath.Join(root, "y02023", "mod.go"))))
	test := parseRendered(t, []byte(readGenerated(t, filepath.Join(root, "y02023", "d01_test.go"))))

	for _, file := range []*ast.File{day, mod, test} {
		if file.Name.Name != "y02023" {
			t.Errorf("package = %q, want y02023", file.Name.Name)
		}
	}

	declared := map[string]bool{}
	for _, decl := range mod.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			declared[spec.(*ast.TypeSpec).Name.Name] = true
		}
	}
	if !declared["d01"] {
		t.Fatalf("mod.go does not declare d01: %v", declared)
	}

	methods := 0
	for _, decl := range day.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv == nil {
			continue
		}
		methods++
		if recv := types.ExprString(fd.Recv.List[0].Type); recv != "d01" {
			t.Errorf("%s is declared on %s, want d01", fd.Name.Name, recv)
		}
	}
	if methods != 2 {
		t.Errorf("day file declares %d methods, want 2", methods)
	}
	assertContains(t, readGenerated(t, filepath.Join(root, "y02023", "d01_test.go")), "func TestD01(t *testing.T)")
}

func TestFillWritesThroughSymlink(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "shared", "day1.go")
	writeFile(t, target, "")
	if err := os.MkdirAll(filepath.Join(root, "y2023"), 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(root, "y2023", "d1.go")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	f := &Filler{Provider: titles.Nop}
	if _, err := f.Fill(context.Background(), root); err != nil {
		t.Fatalf("Fill() error: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("d1.go is no longer a symlink")
	}
	if got := readGenerated(t, target); got != wantDay1 {
		t.Errorf("symlink target mismatch:\n%s", got)
	}
}

func TestFillIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "y2023", "d1.go"), "")

	f := &Filler{}
	if _, err := f.Fill(context.Background(), root); err != nil {
		t.Fatalf("first Fill() error: %v", err)
	}

	// Edit the filled file; a second pass must leave it alone.
	d1 := filepath.Join(root, "y2023", "d1.go")
	edited := wantDay1 + "\n// solved\n"
	writeFile(t, d1, edited)

	result, err := f.Fill(context.Background(), root)
	if err != nil {
		t.Fatalf("second Fill() error: %v", err)
	}
	if len(result.Filled) != 0 {
		t.Errorf("second pass filled %v", result.Filled)
	}
	if got := readGenerated(t, d1); got != edited {
		t.Errorf("filled file changed on second pass:\n%s", got)
	}
}

func TestFillUsesProviderTitle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "y2022", "d5.go"), "")
	writeFile(t, filepath.Join(root, "y2022", "d6.go"), "")

	var asked [][2]int
	provider := titles.ProviderFunc(func(_ context.Context, year, day int) (string, bool) {
		asked = append(asked, [2]int{year, day})
		if day == 5 {
			return "--- Day 5: Supply Stacks ---", true
		}
		return "", false
	})

	f := &Filler{Provider: provider}
	if _, err := f.Fill(context.Background(), root); err != nil {
		t.Fatalf("Fill() error: %v", err)
	}

	if len(asked) != 2 || asked[0] != [2]int{2022, 5} || asked[1] != [2]int{2022, 6} {
		t.Errorf("provider asked %v, want [[2022 5] [2022 6]]", asked)
	}

	d5 := readGenerated(t, filepath.Join(root, "y2022", "d5.go"))
	if !strings.HasPrefix(d5, "// --- Day 5: Supply Stacks ---\n") {
		t.Errorf("d5.go title missing:\n%s", d5)
	}
	d6 := readGenerated(t, filepath.Join(root, "y2022", "d6.go"))
	if !strings.HasPrefix(d6, "// --- Day 6 ---\n") {
		t.Errorf("d6.go fallback title missing:\n%s", d6)
	}
}

func TestFillKeepsExistingTestCompanion(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "y2023", "d4.go"), "")
	companion := filepath.Join(root, "y2023", "d4_test.go")
	writeFile(t, companion, "package y2023\n")

	f := &Filler{}
	if _, err := f.Fill(context.Background(), root); err != nil {
		t.Fatalf("Fill() error: %v", err)
	}
	if got := readGenerated(t, companion); got != "package y2023\n" {
		t.Errorf("companion overwritten:\n%s", got)
	}
}

func TestFillStopsOnCancel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "y2023", "d1.go"), "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &Filler{}
	if _, err := f.Fill(ctx, root); !errors.Is(err, context.Canceled) {
		t.Fatalf("Fill() error = %v, want context.Canceled", err)
	}
	if got := readGenerated(t, filepath.Join(root, "y2023", "d1.go")); got != "" {
		t.Errorf("d1.go written after cancel:\n%s", got)
	}
}

func TestFillMissingRoot(t *testing.T) {
	f := &Filler{}
	_, err := f.Fill(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Fill() error = %v, want not-exist", err)
	}
}

func TestCreate(t *testing.T) {
	root := t.TempDir()

	p, err := Create(root, 2024, 3)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if want := filepath.Join(root, "y2024", "d3.go"); p != want {
		t.Errorf("path = %q, want %q", p, want)
	}

	layout, err := registry.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	y, ok := layout.Year(2024)
	if !ok {
		t.Fatal("year 2024 not discovered")
	}
	d, ok := y.Day(3)
	if !ok || d.State() != registry.Unfilled {
		t.Errorf("day 3 = %+v, want an unfilled day", d)
	}

	if _, err := Create(root, 2024, 3); !errors.Is(err, ErrExists) {
		t.Errorf("second Create() error = %v, want ErrExists", err)
	}
}

func TestCreateRejectsNegative(t *testing.T) {
	if _, err := Create(t.TempDir(), 2024, -1); err == nil {
		t.Error("expected error for negative day")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readGenerated(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
