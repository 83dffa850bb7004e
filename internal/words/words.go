// Package words spells out the decimal form of a float64 one symbol at a
// time, for example -29.0043 becomes "minus two nine point zero zero four
// three". Only English words are produced.
package words

import (
	"math"
	"strconv"
	"strings"

	"github.com/roach88/numkit/internal/seq"
)

// Words for values that have no digits.
const (
	PositiveInfinity = "PositiveInfinity"
	NegativeInfinity = "NegativeInfinity"
	NaN              = "NaN"
)

var symbolWords = map[byte]string{
	'-': "minus",
	'+': "plus",
	'e': "exp",
	'.': "point",
	'0': "zero",
	'1': "one",
	'2': "two",
	'3': "three",
	'4': "four",
	'5': "five",
	'6': "six",
	'7': "seven",
	'8': "eight",
	'9': "nine",
}

// Exponent notation is used outside [expLow, expHigh).
const (
	expLow  = 1e-5
	expHigh = 1e15
)

// Word spells out x.
func Word(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return PositiveInfinity
	case math.IsInf(x, -1):
		return NegativeInfinity
	case math.IsNaN(x):
		return NaN
	}

	text := Decimal(x)
	parts := make([]string, 0, len(text))
	for i := 0; i < len(text); i++ {
		if w, ok := symbolWords[text[i]]; ok {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, " ")
}

// Words spells out every value of a non-empty slice, in order.
func Words(xs []float64) ([]string, error) {
	return seq.TransformSlice(xs, Word)
}

// Decimal returns the shortest decimal text that reads back as x. Plain
// notation is used for moderate magnitudes, exponent notation otherwise.
func Decimal(x float64) string {
	abs := x
	if abs < 0 {
		abs = -abs
	}
	if abs != 0 && (abs < expLow || abs >= expHigh) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
