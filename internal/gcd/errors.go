package gcd

import (
	"errors"
	"fmt"
)

// ErrInvalidArity is returned when a variadic GCD receives fewer than two
// operands. Match it with errors.Is.
var ErrInvalidArity = errors.New("invalid arity")

// ArityError reports the operand count of a rejected call.
type ArityError struct {
	Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%v: got %d operands, need at least 2", ErrInvalidArity, e.Got)
}

// Is makes errors.Is(err, ErrInvalidArity) succeed for any *ArityError.
func (e *ArityError) Is(target error) bool {
	return target == ErrInvalidArity
}

// IsArityError returns true if err is, or wraps, an arity failure.
func IsArityError(err error) bool {
	return errors.Is(err, ErrInvalidArity)
}
