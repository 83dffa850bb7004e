package ieee754

import (
	"errors"
	"fmt"
	"strings"
)

// Field widths of a double-precision value.
const (
	Width        = 64
	ExponentBits = 11
	MantissaBits = 52

	bias = 1023

	// minExponent is the lowest unbiased exponent of a normal value.
	// Magnitudes that are still below 1 here are subnormal.
	minExponent = 1 - bias
)

// Fixed patterns for the values that bypass normalization.
var (
	positiveZeroBits     = strings.Repeat("0", Width)
	negativeZeroBits     = "1" + strings.Repeat("0", Width-1)
	nanBits              = "1" + strings.Repeat("1", ExponentBits) + "1" + strings.Repeat("0", MantissaBits-1)
	positiveInfinityBits = "0" + strings.Repeat("1", ExponentBits) + strings.Repeat("0", MantissaBits)
	negativeInfinityBits = "1" + strings.Repeat("1", ExponentBits) + strings.Repeat("0", MantissaBits)
)

// ErrMalformed is returned by Split for strings that are not 64 binary digits.
var ErrMalformed = errors.New("malformed bit string")

// Encode returns the 64-character IEEE 754 representation of x.
// Every float64 maps to a result; there is no failure case.
func Encode(x float64) string {
	switch Classify(x) {
	case PositiveZero:
		return positiveZeroBits
	case NegativeZero:
		return negativeZeroBits
	case NaN:
		return nanBits
	case PositiveInfinity:
		return positiveInfinityBits
	case NegativeInfinity:
		return negativeInfinityBits
	}

	var b strings.Builder
	b.Grow(Width)

	if x < 0 {
		b.WriteByte('1')
		x = -x
	} else {
		b.WriteByte('0')
	}

	mant, exp := normalize(x)

	if mant < 1 {
		// Subnormal: exponent field is zero and there is no implicit leading 1.
		writeBits(&b, 0, ExponentBits)
	} else {
		writeBits(&b, exp+bias, ExponentBits)
		mant--
	}

	// mant is now the fraction in [0, 1). An exact power of two leaves it at
	// zero and the loop emits nothing.
	for i := 0; i < MantissaBits && mant != 0; i++ {
		mant *= 2
		if mant >= 1 {
			b.WriteByte('1')
			mant--
		} else {
			b.WriteByte('0')
		}
	}

	for b.Len() < Width {
		b.WriteByte('0')
	}
	return b.String()
}

// EncodeAll encodes each value in order. An empty input yields an empty result.
func EncodeAll(xs []float64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = Encode(x)
	}
	return out
}

// normalize scales a positive finite x into [1, 2) and returns the scaled
// value with its power-of-two exponent.
//
// Descent stops at the lowest normal exponent. If the value is still below 1
// at that point it is returned as is: a subnormal significand in (0, 1).
func normalize(x float64) (float64, int) {
	exp := 0
	for x >= 2 {
		x /= 2
		exp++
	}
	for x < 1 && exp > minExponent {
		x *= 2
		exp--
	}
	return x, exp
}

// writeBits writes the low width bits of v, most significant first.
func writeBits(b *strings.Builder, v, width int) {
	for i := width - 1; i >= 0; i-- {
		if (v>>i)&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
}

// Fields is the three-part view of an encoded value.
type Fields struct {
	Sign     string `json:"sign"`
	Exponent string `json:"exponent"`
	Mantissa string `json:"mantissa"`
}

// String joins the fields with single spaces.
func (f Fields) String() string {
	return f.Sign + " " + f.Exponent + " " + f.Mantissa
}

// Split breaks a 64-character bit string into sign, exponent and mantissa.
func Split(bits string) (Fields, error) {
	if len(bits) != Width {
		return Fields{}, fmt.Errorf("%w: length %d, want %d", ErrMalformed, len(bits), Width)
	}
	if i := strings.IndexFunc(bits, func(r rune) bool { return r != '0' && r != '1' }); i >= 0 {
		return Fields{}, fmt.Errorf("%w: invalid digit %q at %d", ErrMalformed, bits[i], i)
	}
	return Fields{
		Sign:     bits[:1],
		Exponent: bits[1 : 1+ExponentBits],
		Mantissa: bits[1+ExponentBits:],
	}, nil
}
