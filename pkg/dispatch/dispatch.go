package dispatch

import (
	"errors"
	"fmt"
)

// Solver is the signature every challenge part implements.
type Solver func(input string) string

// Selector is the signature of a generated top-level SelectFunction.
type Selector func(year, day, part int) (Solver, error)

// Part numbers accepted by generated registries.
const (
	PartOne = 1
	PartTwo = 2
)

var (
	ErrInvalidYear = errors.New("invalid year")
	ErrInvalidDay  = errors.New("invalid day")
	ErrInvalidPart = errors.New("invalid part")
)

// Parts returns the valid part numbers in ascending order.
func Parts() []int {
	return []int{PartOne, PartTwo}
}

// IsPart reports whether part is one of the valid part numbers.
func IsPart(part int) bool {
	return part == PartOne || part == PartTwo
}

// InvalidYear returns an error wrapping ErrInvalidYear.
func InvalidYear(year int) error {
	return fmt.Errorf("%w: %d", ErrInvalidYear, year)
}

// InvalidDay returns an error wrapping ErrInvalidDay.
func InvalidDay(day int) error {
	return fmt.Errorf("%w: %d", ErrInvalidDay, day)
}

// InvalidPart returns an error wrapping ErrInvalidPart.
func InvalidPart(part int) error {
	return fmt.Errorf("%w: %d", ErrInvalidPart, part)
}
