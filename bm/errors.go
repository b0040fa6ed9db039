package bm

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched (via errors.Is) by every error returned
// for a sequence element that isn't 0 or 1.
var ErrInvalidInput = errors.New("invalid input")

// An InvalidInputError reports a sequence element that isn't a bit.
type InvalidInputError struct {
	Index int
	Value int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: element %d is %d, expected 0 or 1", e.Index, e.Value)
}

// Is makes errors.Is(err, ErrInvalidInput) hold.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func toBit(i, v int) (byte, error) {
	if v != 0 && v != 1 {
		return 0, &InvalidInputError{Index: i, Value: v}
	}
	return byte(v), nil
}

// Validate returns an *InvalidInputError for the first element of s
// that isn't 0 or 1, or nil if there is none.
func Validate(s []int) error {
	for i, v := range s {
		if _, err := toBit(i, v); err != nil {
			return err
		}
	}
	return nil
}

// toBits checks that every element of s is a bit, and returns s as
// bytes.
func toBits(s []int) ([]byte, error) {
	bits := make([]byte, len(s))
	for i, v := range s {
		b, err := toBit(i, v)
		if err != nil {
			return nil, err
		}
		bits[i] = b
	}
	return bits, nil
}
