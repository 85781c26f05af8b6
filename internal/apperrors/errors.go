package apperrors

import (
	"errors"
	"fmt"
)

// ErrInvalidUnitValue indicates a scaled-integer unit was constructed from a
// non-integral, NaN, or infinite value.
var ErrInvalidUnitValue = errors.New("invalid unit value")

// ErrUnparseableAmount indicates that user-typed input could not be read as a
// monetary amount.
var ErrUnparseableAmount = errors.New("unparseable amount")

// UnitValueError reports which unit kind rejected a value.
type UnitValueError struct {
	Unit  string
	Value string
}

func (e *UnitValueError) Error() string {
	return fmt.Sprintf("%s requires an integral value, got %s", e.Unit, e.Value)
}

func (e *UnitValueError) Unwrap() error { return ErrInvalidUnitValue }
