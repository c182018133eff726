// Package dispatch is the small runtime imported by code that aocgen
// generates. Generated registries return a Solver for a (year, day, part)
// triple, or one of the sentinel errors below when the triple is not part of
// the discovered workspace.
package dispatch
