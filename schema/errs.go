package schema

import (
	"errors"
	"fmt"

	"github.com/bitpack-format/bitpack/field"
)

var (
	ErrSchema       = errors.New("invalid schema")
	ErrMissingValue = errors.New("missing value")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrRange        = errors.New("value out of range")
	ErrUnderrun     = errors.New("buffer underrun")
	ErrLength       = errors.New("invalid length prefix")
)

// SchemaError reports an invalid field declaration at construction.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", ErrSchema, e.Field, e.Reason)
}

// MissingValueError reports a required field absent from an encode
// value mapping.
type MissingValueError struct {
	Field string
}

func (e *MissingValueError) Unwrap() error {
	return ErrMissingValue
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("%s: field %q", ErrMissingValue, e.Field)
}

// TypeMismatchError reports a value whose variant does not match its
// field's declared kind.
type TypeMismatchError struct {
	Field     string
	Want, Got field.Kind
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: field %q: want %s, got %s", ErrTypeMismatch, e.Field, e.Want, e.Got)
}

// RangeError reports an int value outside its declared bounds, or a
// bytes payload longer than its declared maximum.
type RangeError struct {
	Field    string
	Value    int64
	Min, Max int64
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: field %q: %d not in [%d, %d]", ErrRange, e.Field, e.Value, e.Min, e.Max)
}

// UnderrunError reports a decode input too short to satisfy a field's
// bit demand.
type UnderrunError struct {
	Field string
	Need  uint
}

func (e *UnderrunError) Unwrap() error {
	return ErrUnderrun
}

func (e *UnderrunError) Error() string {
	return fmt.Sprintf("%s: field %q needs %d more bits", ErrUnderrun, e.Field, e.Need)
}

// LengthError reports a decoded length prefix exceeding the remaining
// payload region.
type LengthError struct {
	Field     string
	Length    int
	Remaining int
}

func (e *LengthError) Unwrap() error {
	return ErrLength
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: field %q declares %d bytes, %d remain", ErrLength, e.Field, e.Length, e.Remaining)
}
