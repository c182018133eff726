// Package titles looks up the human-readable title of a puzzle.
//
// Every provider answers with (title, ok). Lookups never fail loudly: a
// transport error, a bad status, or a page without the expected heading all
// collapse to ok == false, and callers fall back to a generic title.
package titles
