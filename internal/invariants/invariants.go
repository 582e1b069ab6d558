// Package invariants holds debug-only assertions. They compile to nothing
// unless the "invariants" or "race" build tag is set.
package invariants

import "github.com/cockroachdb/errors"

// Assert panics with an assertion failure built from format and args if cond
// is false and invariants are Enabled.
func Assert(cond bool, format string, args ...interface{}) {
	if Enabled && !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}
