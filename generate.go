package queryfn

import (
	"math"

	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
)

// Range yields count consecutive integers starting at start. It fails with
// ErrOutOfRange when count is negative or when start+count-1 does not fit
// in an int.
func Range(start, count int) Seq[int] {
	if count < 0 {
		return fail[int](&RangeError{Op: "Range", Param: "count", Value: int64(count)})
	}
	if count > 0 && start > math.MaxInt-(count-1) {
		return fail[int](&RangeError{Op: "Range", Param: "count", Value: int64(count)})
	}
	return Seq[int]{
		run: func(yield func(int) bool) error {
			for i := range count {
				if !yield(start + i) {
					return nil
				}
			}
			return nil
		},
	}
}

// Range32 is Range over int32. It fails with ErrOutOfRange when count is
// negative or when start+count-1 exceeds math.MaxInt32.
func Range32(start, count int32) Seq[int32] {
	if count < 0 {
		return fail[int32](&RangeError{Op: "Range32", Param: "count", Value: int64(count)})
	}
	if count > 0 {
		if _, err := safeconversion.Int64ToInt32(int64(start) + int64(count) - 1); err != nil {
			return fail[int32](&RangeError{Op: "Range32", Param: "count", Value: int64(count)})
		}
	}
	return Seq[int32]{
		run: func(yield func(int32) bool) error {
			for i := range count {
				if !yield(start + i) {
					return nil
				}
			}
			return nil
		},
	}
}

// Repeat yields value count times. A negative count is reported as
// ErrOutOfRange.
func Repeat[T any](value T, count int) Seq[T] {
	if count < 0 {
		return fail[T](&RangeError{Op: "Repeat", Param: "count", Value: int64(count)})
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			for range count {
				if !yield(value) {
					return nil
				}
			}
			return nil
		},
	}
}

// Empty returns a Seq with no elements.
func Empty[T any]() Seq[T] {
	return Seq[T]{
		run: func(func(T) bool) error { return nil },
	}
}
