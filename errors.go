package queryfn

import (
	"errors"
	"fmt"
	"reflect"
)

// Error taxonomy. Every error returned by this package matches exactly one
// of these with errors.Is.
var (
	// ErrInvalidArgument is reported when a required function, comparer or
	// sequence argument is nil.
	ErrInvalidArgument = errors.New("queryfn: invalid argument")

	// ErrInvalidOperation is reported when an element dependent
	// precondition fails, e.g. First on an empty sequence.
	ErrInvalidOperation = errors.New("queryfn: invalid operation")

	// ErrOutOfRange is reported when an index or count is outside its
	// valid domain.
	ErrOutOfRange = errors.New("queryfn: argument out of range")

	// ErrOverflow is reported when integer accumulation exceeds the
	// range of the accumulator type.
	ErrOverflow = errors.New("queryfn: arithmetic overflow")

	// ErrInvalidCast is reported by Cast when an element does not hold
	// the requested type.
	ErrInvalidCast = errors.New("queryfn: invalid cast")

	// ErrDuplicateKey is reported by ToMap when two elements produce the
	// same key. It is an ErrInvalidArgument.
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrInvalidArgument)
)

var (
	ErrNoElements         = fmt.Errorf("%w: source contains no elements", ErrInvalidOperation)
	ErrNoMatch            = fmt.Errorf("%w: no element satisfies the condition", ErrInvalidOperation)
	ErrMoreThanOneElement = fmt.Errorf("%w: source contains more than one element", ErrInvalidOperation)
	ErrMoreThanOneMatch   = fmt.Errorf("%w: more than one element satisfies the condition", ErrInvalidOperation)
)

// ArgumentError reports a nil argument passed to an operator.
type ArgumentError struct {
	Op    string
	Param string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("queryfn: %s: %s is nil", e.Op, e.Param)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// RangeError reports an index or count outside its valid domain.
type RangeError struct {
	Op    string
	Param string
	Value int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("queryfn: %s: %s out of range: %d", e.Op, e.Param, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// CastError reports an element that could not be asserted to the target
// type. Index is the zero-based position of the element in the traversal.
type CastError struct {
	Index int
	From  reflect.Type
	To    reflect.Type
}

func (e *CastError) Error() string {
	from := "nil"
	if e.From != nil {
		from = e.From.String()
	}
	return fmt.Sprintf("queryfn: element %d: cannot cast %s to %s", e.Index, from, e.To)
}

func (e *CastError) Unwrap() error { return ErrInvalidCast }

// DuplicateKeyError reports a key produced twice while building a map.
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("queryfn: duplicate key %v", e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

func nilArg(op, param string) error {
	return &ArgumentError{Op: op, Param: param}
}

func overflow(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrOverflow, op, cause)
}
