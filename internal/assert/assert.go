//go:build !debug

// Package assert is a helper to allow assert checks in a more standardized
// and simple manner. Using it makes it clear this is an assertion used in a
// non production setting.
package assert

// DEBUG if this is set to true asserts are evaluated. The release build of
// this package keeps it false so the Go compiler can dead-code eliminate
// every assert.Assert call guarded by "if assert.DEBUG { ... }".
const DEBUG = false

// Assert panics with the formatted message if test evaluates to false.
// Callers should always guard calls with "if assert.DEBUG { ... }" since Go
// still evaluates the call's arguments even when Assert itself is a no-op;
// the DEBUG guard is what lets the compiler drop the whole statement.
//
//	if assert.DEBUG {
//	    assert.Assert(sq.IsValid(), "invalid square: %d", sq)
//	}
func Assert(test bool, msg string, a ...interface{}) {}
