package largest

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned (wrapped in an *EmptyInputError) by every finder
// in this package when the input holds no elements.
var ErrEmptyInput = errors.New("empty input")

// EmptyInputError records which operation received an empty sequence.
//
// errors.Is(err, ErrEmptyInput) matches any *EmptyInputError regardless of Op.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("largest.%s: %v", e.Op, ErrEmptyInput)
}

func (e *EmptyInputError) Is(target error) bool { return target == ErrEmptyInput }

func emptyInput[T any](op string) (T, error) {
	var zero T
	return zero, &EmptyInputError{Op: op}
}
