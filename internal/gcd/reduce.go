package gcd

// PairFunc combines two operands into one. Euclid and Stein are PairFuncs.
type PairFunc func(a, b int) int

// Reduce folds xs to a single value with fn by pairwise reduction.
//
// Exactly two operands are passed to fn directly. Longer inputs go through
// rounds that combine (xs[0], xs[1]), (xs[2], xs[3]), ... into a list of
// ceil(n/2) values, with an unpaired last operand carried forward as is.
// xs is never modified.
func Reduce(fn PairFunc, xs []int) (int, error) {
	if len(xs) < 2 {
		return 0, &ArityError{Got: len(xs)}
	}
	for len(xs) > 2 {
		xs = reduceRound(fn, xs)
	}
	return fn(xs[0], xs[1]), nil
}

// reduceRound performs one halving round.
func reduceRound(fn PairFunc, xs []int) []int {
	next := make([]int, (len(xs)+1)/2)
	for i := 0; i+1 < len(xs); i += 2 {
		next[i/2] = fn(xs[i], xs[i+1])
	}
	if len(xs)%2 == 1 {
		next[len(next)-1] = xs[len(xs)-1]
	}
	return next
}
