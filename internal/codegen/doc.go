// Package codegen builds the dispatch registries of a challenge workspace.
//
// Each year directory gets a mod.go declaring one empty struct type per day
// and a SelectFunction(day, part) router; the workspace root gets an
// auto_import.go importing every year package and a
// SelectFunction(year, day, part) router that forwards to the year's own.
// Declarations are built as go/ast nodes and rendered by package emit, so the
// output for a given directory snapshot is byte-for-byte stable.
package codegen
