package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIsYearName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"y2023", true},
		{"y1", true},
		{"y", false},
		{"y20a3", false},
		{"Y2023", false},
		{"x2023", false},
		{"y-2023", false},
		{"y２０２３", false},
	}

	for _, tt := range tests {
		if got := IsYearName(tt.name); got != tt.want {
			t.Errorf("IsYearName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsDayName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"d1.go", true},
		{"d25.go", true},
		{"d01.go", true},
		{"d.go", false},
		{"d1_test.go", false},
		{"d1.rs", false},
		{"d1.go.bak", false},
		{"mod.go", false},
		{"day1.go", false},
		{"d1", false},
	}

	for _, tt := range tests {
		if got := IsDayName(tt.name); got != tt.want {
			t.Errorf("IsDayName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestScanSortsAndFilters(t *testing.T) {
	root := t.TempDir()

	mkdir(t, root, "y2023")
	mkdir(t, root, "y2015")
	mkdir(t, root, "notes")
	mkdir(t, root, "y20x")
	writeFile(t, filepath.Join(root, "y2019"), "a file, not a year")

	writeFile(t, filepath.Join(root, "y2023", "d10.go"), "package y2023\n")
	writeFile(t, filepath.Join(root, "y2023", "d2.go"), "")
	writeFile(t, filepath.Join(root, "y2023", "d1.go"), "")
	writeFile(t, filepath.Join(root, "y2023", "d1_test.go"), "package y2023\n")
	writeFile(t, filepath.Join(root, "y2023", "mod.go"), "package y2023\n")
	writeFile(t, filepath.Join(root, "y2023", "README.md"), "# 2023\n")
	mkdir(t, root, filepath.Join("y2023", "d3.go"))

	layout, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(layout.Years) != 2 {
		t.Fatalf("got %d years, want 2: %+v", len(layout.Years), layout.Years)
	}
	if layout.Years[0].ID != 2015 || layout.Years[1].ID != 2023 {
		t.Errorf("years = [%d %d], want [2015 2023]", layout.Years[0].ID, layout.Years[1].ID)
	}
	if len(layout.Years[0].Days) != 0 {
		t.Errorf("y2015 days = %v, want none", layout.Years[0].Days)
	}

	y2023 := layout.Years[1]
	if y2023.Name != "y2023" {
		t.Errorf("Name = %q, want %q", y2023.Name, "y2023")
	}
	var ids []int
	for _, d := range y2023.Days {
		ids = append(ids, d.ID)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 10 {
		t.Fatalf("day IDs = %v, want [1 2 10]", ids)
	}

	d10, ok := y2023.Day(10)
	if !ok {
		t.Fatal("day 10 not found")
	}
	if d10.Name != "d10" {
		t.Errorf("Name = %q, want %q", d10.Name, "d10")
	}
	if d10.State() != Filled {
		t.Errorf("d10 state = %v, want filled", d10.State())
	}
	d1, _ := y2023.Day(1)
	if d1.State() != Unfilled {
		t.Errorf("d1 state = %v, want unfilled", d1.State())
	}

	if layout.DayCount() != 3 {
		t.Errorf("DayCount() = %d, want 3", layout.DayCount())
	}
	if !filepath.IsAbs(layout.Root) {
		t.Errorf("Root %q is not absolute", layout.Root)
	}
}

func TestScanKeepsLeadingZeroNames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "y2022", "d05.go"), "")

	layout, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	d, ok := layout.Years[0].Day(5)
	if !ok {
		t.Fatal("day 5 not found")
	}
	if d.Name != "d05" {
		t.Errorf("Name = %q, want %q", d.Name, "d05")
	}
}

func TestScanRejectsDuplicateIDs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "y2023", "d1.go"), "")
	writeFile(t, filepath.Join(root, "y2023", "d01.go"), "")

	_, err := Scan(root)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Scan error = %v, want ErrDuplicateID", err)
	}
}

func TestScanRejectsDuplicateYears(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "y2023")
	mkdir(t, root, "y02023")

	_, err := Scan(root)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Scan error = %v, want ErrDuplicateID", err)
	}
}

func TestScanOverflowIsInvariantViolation(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "y2023", "d99999999999999999999999.go"), "")

	_, err := Scan(root)
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("Scan error = %v, want ErrInvariant", err)
	}
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestDiscoverDaysFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "elsewhere.go")
	writeFile(t, target, "package y2023\n")
	mkdir(t, root, "y2023")
	if err := os.Symlink(target, filepath.Join(root, "y2023", "d4.go")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	days, err := DiscoverDays(filepath.Join(root, "y2023"))
	if err != nil {
		t.Fatalf("DiscoverDays: %v", err)
	}
	if len(days) != 1 || days[0].ID != 4 {
		t.Fatalf("days = %+v, want day 4", days)
	}
	if days[0].State() != Filled {
		t.Errorf("state = %v, want filled", days[0].State())
	}
}

func TestNames(t *testing.T) {
	if got := YearName(2024); got != "y2024" {
		t.Errorf("YearName(2024) = %q", got)
	}
	if got := DayFileName(9); got != "d9.go" {
		t.Errorf("DayFileName(9) = %q", got)
	}
	if Unfilled.String() != "unfilled" || Filled.String() != "filled" {
		t.Errorf("State strings = %q/%q", Unfilled, Filled)
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func mkdir(t *testing.T, root, rel string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, rel), 0755); err != nil {
		t.Fatal(err)
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
