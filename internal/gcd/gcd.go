package gcd

// Euclid returns the GCD of a and b by repeated subtraction.
//
// Operands are replaced by their magnitudes. A zero operand yields the
// other one, so Euclid(0, 0) == 0.
//
// Each step subtracts the smaller operand from the larger, so the step
// count grows with the ratio of the operands: Euclid(1, math.MaxInt)
// takes about 2**63 steps.
//
// The result is never negative except when it is 2**63, which does not
// fit in an int: Euclid(math.MinInt, 0) and Euclid(math.MinInt, math.MinInt)
// return math.MinInt.
func Euclid(a, b int) int {
	return int(euclid(magnitude(a), magnitude(b)))
}

// Euclid3 returns Euclid(Euclid(a, b), c).
func Euclid3(a, b, c int) int {
	return Euclid(Euclid(a, b), c)
}

// EuclidN returns the GCD of all operands using Euclid for each pair.
func EuclidN(xs ...int) (int, error) {
	return Reduce(Euclid, xs)
}

// Stein returns the GCD of a and b with the binary algorithm.
//
// Operands are replaced by their magnitudes. Equal operands return
// immediately and a zero operand yields the other one.
//
// As with Euclid, a result of 2**63 wraps to math.MinInt.
func Stein(a, b int) int {
	return int(stein(magnitude(a), magnitude(b)))
}

// Stein3 returns Stein(Stein(a, b), c).
func Stein3(a, b, c int) int {
	return Stein(Stein(a, b), c)
}

// SteinN returns the GCD of all operands using Stein for each pair.
func SteinN(xs ...int) (int, error) {
	return Reduce(Stein, xs)
}

// magnitude returns |x| as an unsigned value. It is exact for math.MinInt.
func magnitude(x int) uint {
	if x < 0 {
		return uint(-x)
	}
	return uint(x)
}

func euclid(a, b uint) uint {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	for a != b {
		if a > b {
			a -= b
		} else {
			b -= a
		}
	}
	return a
}

// stein is the loop form of the recursive binary GCD. Each iteration is
// one recursive step; the factors of two shared by both operands are
// collected in shift and restored on return.
func stein(a, b uint) uint {
	shift := 0
	for {
		switch {
		case a == b:
			return a << shift
		case a == 0:
			return b << shift
		case b == 0:
			return a << shift
		}

		switch {
		case a&1 == 0 && b&1 == 0:
			a >>= 1
			b >>= 1
			shift++
		case a&1 == 0:
			a >>= 1
		case b&1 == 0:
			b >>= 1
		case a > b:
			a = (a - b) >> 1
		default:
			a, b = (b-a)>>1, a
		}
	}
}
