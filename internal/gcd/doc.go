// Package gcd computes greatest common divisors of two or more signed
// integers.
//
// Two interchangeable pairwise algorithms are provided:
//   - Euclid: the subtractive Euclidean algorithm
//   - Stein: the binary GCD algorithm
//
// Both work on operand magnitudes, so the result is never negative, and
// both define gcd(0, 0) = 0.
//
// # Arity
//
// Each algorithm has a two-operand form, a three-operand form
// (gcd(gcd(a, b), c)) and a variadic form. The variadic form folds its
// operands with Reduce: every round combines adjacent disjoint pairs and
// carries an odd trailing operand forward, halving the operand count until
// two remain. Fewer than two operands is the only error, ErrInvalidArity.
//
// # Timing
//
// Timed runs a computation and reports its wall-clock duration next to the
// result. The duration is an observation only and never changes the result.
package gcd
