package gcd

import (
	"fmt"
	"time"
)

// Algorithm selects the pairwise GCD strategy.
type Algorithm string

const (
	AlgorithmEuclid Algorithm = "euclid"
	AlgorithmStein  Algorithm = "stein"
)

// Algorithms lists the accepted algorithm names.
var Algorithms = []Algorithm{AlgorithmEuclid, AlgorithmStein}

// ParseAlgorithm maps a name to an Algorithm. "binary" is accepted as an
// alias for stein.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "euclid", "euclidean":
		return AlgorithmEuclid, nil
	case "stein", "binary":
		return AlgorithmStein, nil
	}
	return "", fmt.Errorf("unknown algorithm %q: must be one of %v", name, Algorithms)
}

// Pair returns the two-operand function for a. Unknown values fall back to
// Euclid.
func (a Algorithm) Pair() PairFunc {
	if a == AlgorithmStein {
		return Stein
	}
	return Euclid
}

// Compute returns the GCD of xs with the chosen algorithm.
func Compute(alg Algorithm, xs []int) (int, error) {
	return Reduce(alg.Pair(), xs)
}

// Timed is Compute with the elapsed wall-clock time of the computation.
// The duration is zero when the call fails on arity.
func Timed(alg Algorithm, xs []int) (int, time.Duration, error) {
	if len(xs) < 2 {
		return 0, 0, &ArityError{Got: len(xs)}
	}
	start := time.Now()
	result, err := Compute(alg, xs)
	return result, time.Since(start), err
}
