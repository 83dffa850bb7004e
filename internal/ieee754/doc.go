// Package ieee754 renders float64 values as their IEEE 754 double-precision
// bit strings.
//
// The encoder never reinterprets memory. It classifies the value, then
// normalizes the magnitude into [1, 2) by repeated halving and doubling,
// and reads the fraction bits off one at a time. Halving, doubling and
// subtracting 1 from a value in [1, 2) are exact in binary floating point,
// so the result matches the stored bits of every representable double.
//
// # Layout
//
//	[sign:1][exponent:11][mantissa:52]
//
// Most significant bit first, 64 characters, each '0' or '1'.
//
// # Special Values
//
//	+0    0 00000000000 000...0
//	-0    1 00000000000 000...0
//	NaN   1 11111111111 100...0
//	+Inf  0 11111111111 000...0
//	-Inf  1 11111111111 000...0
//
// NaN is always reported with the canonical negative quiet pattern,
// regardless of payload.
package ieee754
