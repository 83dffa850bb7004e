package seq

import (
	"errors"
	"iter"
	"slices"
)

// Errors returned by the eager helpers.
var (
	ErrNilFunc = errors.New("nil function")
	ErrEmpty   = errors.New("empty input")
)

// Condition decides whether an item is kept by FilterBy.
type Condition[T any] interface {
	Check(item T) bool
}

// Transformer maps an item for TransformBy.
type Transformer[T, R any] interface {
	Transform(item T) R
}

// ConditionFunc adapts a plain predicate to Condition.
type ConditionFunc[T any] func(T) bool

func (f ConditionFunc[T]) Check(item T) bool { return f(item) }

// TransformerFunc adapts a plain function to Transformer.
type TransformerFunc[T, R any] func(T) R

func (f TransformerFunc[T, R]) Transform(item T) R { return f(item) }

// Filter yields the items of src for which keep returns true.
// A nil keep yields nothing.
func Filter[T any](src iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		if keep == nil {
			return
		}
		for item := range src {
			if keep(item) && !yield(item) {
				return
			}
		}
	}
}

// FilterBy is Filter driven by a Condition.
func FilterBy[T any](src iter.Seq[T], cond Condition[T]) iter.Seq[T] {
	if cond == nil {
		return Filter[T](src, nil)
	}
	return Filter(src, cond.Check)
}

// Transform yields fn(item) for each item of src.
// A nil fn yields nothing.
func Transform[T, R any](src iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if fn == nil {
			return
		}
		for item := range src {
			if !yield(fn(item)) {
				return
			}
		}
	}
}

// TransformBy is Transform driven by a Transformer.
func TransformBy[T, R any](src iter.Seq[T], t Transformer[T, R]) iter.Seq[R] {
	if t == nil {
		return Transform[T, R](src, nil)
	}
	return Transform(src, t.Transform)
}

// TransformSlice eagerly maps a non-empty slice.
func TransformSlice[T, R any](src []T, fn func(T) R) ([]R, error) {
	if len(src) == 0 {
		return nil, ErrEmpty
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	return slices.Collect(Transform(slices.Values(src), fn)), nil
}
