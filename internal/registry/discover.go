package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrInvariant marks a name that passed the naming predicate but could
	// not be turned into an identifier. It signals a bug, not bad input.
	ErrInvariant = errors.New("internal invariant violation")

	// ErrDuplicateID is returned when two entries map to the same number,
	// e.g. d1.go and d01.go.
	ErrDuplicateID = errors.New("duplicate identifier")
)

// IsYearName reports whether name is y followed by one or more ASCII digits.
func IsYearName(name string) bool {
	return strings.HasPrefix(name, YearPrefix) && allDigits(name[len(YearPrefix):])
}

// IsDayName reports whether name is d followed by one or more ASCII digits
// and the module extension.
func IsDayName(name string) bool {
	if !strings.HasPrefix(name, DayPrefix) || !strings.HasSuffix(name, Ext) {
		return false
	}
	if len(name) < len(DayPrefix)+len(Ext) {
		return false
	}
	return allDigits(name[len(DayPrefix) : len(name)-len(Ext)])
}

// YearName returns the directory name for a year, e.g. 2023 → "y2023".
func YearName(id int) string { return YearPrefix + strconv.Itoa(id) }

// DayName returns the file stem for a day, e.g. 7 → "d7".
func DayName(id int) string { return DayPrefix + strconv.Itoa(id) }

// DayFileName returns the file name for a day, e.g. 7 → "d7.go".
func DayFileName(id int) string { return DayName(id) + Ext }

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Scan reads the whole workspace under root.
func Scan(root string) (*Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}

	years, err := DiscoverYears(abs)
	if err != nil {
		return nil, err
	}

	for i := range years {
		days, err := DiscoverDays(years[i].Dir)
		if err != nil {
			return nil, err
		}
		years[i].Days = days
	}

	return &Layout{Root: abs, Years: years}, nil
}

// DiscoverYears lists the year directories directly under root, sorted by ID.
// Days are not populated.
func DiscoverYears(root string) ([]Year, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading root %s: %w", root, err)
	}

	seen := make(map[int]string)
	var years []Year
	for _, e := range entries {
		name := e.Name()
		if !IsYearName(name) {
			continue
		}
		path := filepath.Join(root, name)
		info, err := entryInfo(path, e)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			continue
		}

		id, err := strconv.Atoi(name[len(YearPrefix):])
		if err != nil {
			return nil, fmt.Errorf("%w: year directory %q: %v", ErrInvariant, name, err)
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %s and %s are both year %d", ErrDuplicateID, prev, name, id)
		}
		seen[id] = name

		years = append(years, Year{ID: id, Name: name, Dir: path})
	}

	sort.Slice(years, func(i, j int) bool { return years[i].ID < years[j].ID })
	return years, nil
}

// DiscoverDays lists the day files directly under yearDir, sorted by ID.
func DiscoverDays(yearDir string) ([]Day, error) {
	entries, err := os.ReadDir(yearDir)
	if err != nil {
		return nil, fmt.Errorf("reading year directory %s: %w", yearDir, err)
	}

	seen := make(map[int]string)
	var days []Day
	for _, e := range entries {
		name := e.Name()
		if !IsDayName(name) {
			continue
		}
		path := filepath.Join(yearDir, name)
		info, err := entryInfo(path, e)
		if err != nil {
			return nil, err
		}
		if !info.Mode().IsRegular() {
			continue
		}

		stem := strings.TrimSuffix(name, Ext)
		id, err := strconv.Atoi(stem[len(DayPrefix):])
		if err != nil {
			return nil, fmt.Errorf("%w: day file %q: %v", ErrInvariant, name, err)
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %s and %s are both day %d in %s", ErrDuplicateID, prev, name, id, yearDir)
		}
		seen[id] = name

		days = append(days, Day{ID: id, Name: stem, Path: path, Size: info.Size()})
	}

	sort.Slice(days, func(i, j int) bool { return days[i].ID < days[j].ID })
	return days, nil
}

// entryInfo returns file info for a directory entry, following symlinks.
func entryInfo(path string, e fs.DirEntry) (fs.FileInfo, error) {
	if e.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		return info, nil
	}
	info, err := e.Info()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return info, nil
}
