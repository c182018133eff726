// Package registry discovers the challenge workspace layout. A workspace root
// holds one directory per year named y<digits>; each year directory holds one
// file per day named d<digits>.go. The filesystem is the only source of
// truth: every call re-reads it and nothing is persisted.
package registry
