package ir

import (
	"fmt"
	"strconv"
)

// Kind names the computation a request asks for.
type Kind string

const (
	KindEncode Kind = "encode"
	KindGCD    Kind = "gcd"
	KindWords  Kind = "words"
)

// ValidKinds defines allowed request kinds.
var ValidKinds = map[Kind]bool{
	KindEncode: true,
	KindGCD:    true,
	KindWords:  true,
}

// ParseKind maps a name to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !ValidKinds[k] {
		return "", fmt.Errorf("unknown kind %q", s)
	}
	return k, nil
}

// Request is one computation to run.
// Encode and words requests read Floats; gcd requests read Ints and
// Algorithm.
type Request struct {
	Kind      Kind      `json:"kind"`
	Algorithm string    `json:"algorithm,omitempty"`
	Floats    []float64 `json:"floats,omitempty"`
	Ints      []int     `json:"ints,omitempty"`
}

// Operands returns the request operands as canonical text.
func (r Request) Operands() []string {
	if r.Kind == KindGCD {
		out := make([]string, len(r.Ints))
		for i, n := range r.Ints {
			out[i] = strconv.Itoa(n)
		}
		return out
	}
	out := make([]string, len(r.Floats))
	for i, x := range r.Floats {
		out[i] = FormatOperand(x)
	}
	return out
}

// FormatOperand renders x as the shortest decimal that parses back to the
// same value. NaN and infinities render as "NaN", "+Inf" and "-Inf".
func FormatOperand(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Record is one executed request as kept in the history.
type Record struct {
	ID        string   `json:"id"`
	RunID     string   `json:"run_id"`
	Seq       int64    `json:"seq"`
	Kind      Kind     `json:"kind"`
	Algorithm string   `json:"algorithm,omitempty"`
	Input     []string `json:"input"`
	Output    []string `json:"output"`
	ElapsedNS int64    `json:"elapsed_ns"`
}

// Identity returns the canonical object hashed into the record ID.
// ElapsedNS is excluded: the same computation at the same position in a run
// has the same ID however long it took.
func (r Record) Identity() Object {
	return Object{
		"run_id":    String(r.RunID),
		"seq":       Int(r.Seq),
		"kind":      String(r.Kind),
		"algorithm": String(r.Algorithm),
		"input":     StringArray(r.Input),
		"output":    StringArray(r.Output),
	}
}
