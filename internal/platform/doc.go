// Package platform provides the cross-platform file operations aocgen needs
// to replace generated files safely: permission handling that is a no-op on
// Windows, and write-to-temp-then-rename replacement so a crash never leaves
// a half-written file behind.
package platform
