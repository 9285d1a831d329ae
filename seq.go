package queryfn

import (
	"iter"

	"github.com/KasperOmsK/queryfn/internal/iterx"
)

// producer pushes elements into yield until the source is exhausted or
// yield returns false. A non-nil error aborts the traversal.
type producer[T any] func(yield func(T) bool) error

// Seq is a lazily evaluated, re-enumerable sequence of values of type T.
//
// A Seq is an immutable description of a pipeline: nothing runs until it is
// enumerated, and every enumeration runs the whole pipeline again with its
// own state. Several enumerations of the same Seq may be active at once as
// long as the underlying source is not mutated meanwhile; mutating a source
// while it is enumerated is the caller's responsibility.
//
// The zero Seq is not a valid sequence. Passing it where a sequence is
// required is reported as ErrInvalidArgument.
type Seq[T any] struct {
	run producer[T]

	// err is the construction error. It is set when an operator was given
	// an invalid argument and is inherited by every derived Seq.
	err error
}

// From wraps an iter.Seq into a Seq.
func From[T any](seq iter.Seq[T]) Seq[T] {
	if seq == nil {
		return fail[T](nilArg("From", "seq"))
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			seq(yield)
			return nil
		},
	}
}

// FromSlice returns a Seq over the items of in. The slice is not copied.
func FromSlice[T any](in []T) Seq[T] {
	return From(iterx.FromSlice(in))
}

// Of returns a Seq over the given values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// Err returns the error recorded when the Seq was built, if any.
//
// A Seq with a non-nil Err yields no values, and every terminal operator
// applied to it returns that error.
func (s Seq[T]) Err() error {
	return s.err
}

// Values returns the elements of s as an iter.Seq.
//
// Enumeration stops silently on failure; use Results or ForEach when the
// error matters.
func (s Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = s.each(yield)
	}
}

// Results returns the elements of s paired with a nil error. If the
// traversal fails, a final pair carrying the zero value and the error is
// yielded.
func (s Seq[T]) Results() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		more := true
		err := s.each(func(v T) bool {
			more = yield(v, nil)
			return more
		})
		if err != nil && more {
			var zero T
			yield(zero, err)
		}
	}
}

// ForEach calls fn for every element of s in order.
func (s Seq[T]) ForEach(fn func(T)) error {
	if fn == nil {
		return check(s.validate("ForEach", "source"), nilArg("ForEach", "fn"))
	}
	return s.each(func(v T) bool {
		fn(v)
		return true
	})
}

// Tap returns a Seq that calls fn with each element before passing it
// downstream. Multiple taps are called in the order they are declared.
func (s Seq[T]) Tap(fn func(T)) Seq[T] {
	if err := check(s.validate("Tap", "source"), notNil(fn == nil, "Tap", "fn")); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			return s.run(func(v T) bool {
				fn(v)
				return yield(v)
			})
		},
	}
}

// each runs one traversal of s.
func (s Seq[T]) each(yield func(T) bool) error {
	if err := s.validate("enumerate", "source"); err != nil {
		return err
	}
	return s.run(yield)
}

// validate reports the construction error of s, or an ArgumentError naming
// param when s is the zero Seq.
func (s Seq[T]) validate(op, param string) error {
	if s.err != nil {
		return s.err
	}
	if s.run == nil {
		return nilArg(op, param)
	}
	return nil
}

func fail[T any](err error) Seq[T] {
	return Seq[T]{err: err}
}

// notNil returns an ArgumentError when isNil is true.
func notNil(isNil bool, op, param string) error {
	if isNil {
		return nilArg(op, param)
	}
	return nil
}

// check returns the first non-nil error, preserving parameter order.
func check(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
