package codegen

import (
	"fmt"

	"github.com/aocgen-labs/aocgen/internal/registry"
	"github.com/aocgen-labs/aocgen/pkg/dispatch"
)

// Ref is the handle a (year, day, part) triple resolves to.
type Ref struct {
	Year, Day, Part int
	Package         string // year package, e.g. "y2023"
	Type            string // day type, e.g. "d1"
	Method          string // "part1" or "part2"
}

func (r Ref) String() string {
	return fmt.Sprintf("%s.%s{}.%s", r.Package, r.Type, r.Method)
}

// Resolve routes a triple through layout exactly as the generated
// SelectFunction chain does, returning the same errors.
func Resolve(layout *registry.Layout, year, day, part int) (Ref, error) {
	y, ok := layout.Year(year)
	if !ok {
		return Ref{}, dispatch.InvalidYear(year)
	}
	d, ok := y.Day(day)
	if !ok {
		return Ref{}, dispatch.InvalidDay(day)
	}
	if !dispatch.IsPart(part) {
		return Ref{}, dispatch.InvalidPart(part)
	}
	return Ref{
		Year:    year,
		Day:     day,
		Part:    part,
		Package: y.Name,
		Type:    d.Name,
		Method:  MethodName(part),
	}, nil
}
