// Package emit turns a structured set of Go declarations into canonical
// source text and replaces the target file with it. Emission is always a
// full overwrite; nothing is merged with the previous content.
package emit
