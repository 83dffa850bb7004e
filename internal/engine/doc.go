// Package engine executes numkit requests against the core packages.
//
// An Engine owns one run: a run ID from a RunIDGenerator and a logical
// clock that stamps every successful computation with a strictly
// increasing seq. Records are ordered by seq, never by wall time; the
// measured duration of a computation is kept as an observation only.
//
// When a Recorder is configured (normally *store.Store), each record is
// written as soon as it is produced. Without one the engine is a pure
// in-memory executor.
//
// Errors are *RuntimeError values with a code. They wrap the underlying
// cause, so errors.Is(err, gcd.ErrInvalidArity) works on an arity failure.
package engine
