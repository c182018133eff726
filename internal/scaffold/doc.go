// Package scaffold fills empty day files with a ready-to-compile skeleton.
//
// A day file is scaffolded only while it is zero bytes long. Once written it
// is never touched again, so running Fill repeatedly is safe. Each skeleton
// gets a dN_test.go companion holding the fixture constants and the two part
// checks; an existing companion is left alone.
package scaffold
