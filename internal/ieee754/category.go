package ieee754

import "math"

// Category is the IEEE 754 class of a float64.
type Category int

const (
	Normal Category = iota
	Subnormal
	PositiveZero
	NegativeZero
	PositiveInfinity
	NegativeInfinity
	NaN
)

// smallestNormal is 2**-1022.
const smallestNormal = 0x1p-1022

var categoryNames = [...]string{
	Normal:           "Normal",
	Subnormal:        "Subnormal",
	PositiveZero:     "PositiveZero",
	NegativeZero:     "NegativeZero",
	PositiveInfinity: "PositiveInfinity",
	NegativeInfinity: "NegativeInfinity",
	NaN:              "NaN",
}

// String returns the category name, spelled like its constant.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Classify reports the category of x using comparisons only.
// Negative zero is told apart from positive zero by the sign of 1/x.
func Classify(x float64) Category {
	switch {
	case math.IsNaN(x):
		return NaN
	case math.IsInf(x, 1):
		return PositiveInfinity
	case math.IsInf(x, -1):
		return NegativeInfinity
	case x == 0:
		if 1/x < 0 {
			return NegativeZero
		}
		return PositiveZero
	}
	if x < 0 {
		x = -x
	}
	if x < smallestNormal {
		return Subnormal
	}
	return Normal
}
