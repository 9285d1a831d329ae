package queryfn

import (
	"reflect"

	"github.com/KasperOmsK/queryfn/internal/iterx"
	"github.com/go-softwarelab/common/pkg/types"
)

type (
	// Predicate reports whether item should be kept.
	Predicate[T any] func(item T) bool

	// IndexedPredicate is a Predicate that also receives the zero-based
	// position of item within the current traversal.
	IndexedPredicate[T any] func(item T, index int) bool

	// Selector projects a value of type In into a value of type Out.
	Selector[In, Out any] func(in In) Out
)

// Where returns a Seq that yields only the values for which predicate
// returns true.
func (s Seq[T]) Where(predicate Predicate[T]) Seq[T] {
	if err := check(s.validate("Where", "source"), notNil(predicate == nil, "Where", "predicate")); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			return s.run(func(v T) bool {
				if predicate(v) {
					return yield(v)
				}
				return true
			})
		},
	}
}

// WhereIndexed is like Where but predicate also receives the position of the
// element in the current traversal.
func (s Seq[T]) WhereIndexed(predicate IndexedPredicate[T]) Seq[T] {
	if err := check(s.validate("WhereIndexed", "source"), notNil(predicate == nil, "WhereIndexed", "predicate")); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			index := 0
			return s.run(func(v T) bool {
				keep := predicate(v, index)
				index++
				if keep {
					return yield(v)
				}
				return true
			})
		},
	}
}

// Select transforms each input value using selector.
func Select[In, Out any](s Seq[In], selector Selector[In, Out]) Seq[Out] {
	if err := check(s.validate("Select", "source"), notNil(selector == nil, "Select", "selector")); err != nil {
		return fail[Out](err)
	}
	return Seq[Out]{
		run: func(yield func(Out) bool) error {
			return s.run(func(v In) bool {
				return yield(selector(v))
			})
		},
	}
}

// SelectIndexed is like Select but selector also receives the position of
// the element in the current traversal.
func SelectIndexed[In, Out any](s Seq[In], selector func(in In, index int) Out) Seq[Out] {
	if err := check(s.validate("SelectIndexed", "source"), notNil(selector == nil, "SelectIndexed", "selector")); err != nil {
		return fail[Out](err)
	}
	return Seq[Out]{
		run: func(yield func(Out) bool) error {
			index := 0
			return s.run(func(v In) bool {
				out := selector(v, index)
				index++
				return yield(out)
			})
		},
	}
}

// TrySelect transforms each input value using fn, which may fail. The first
// error returned by fn ends the traversal and is reported to the consumer.
func TrySelect[In, Out any](s Seq[In], fn func(in In) (Out, error)) Seq[Out] {
	if err := check(s.validate("TrySelect", "source"), notNil(fn == nil, "TrySelect", "fn")); err != nil {
		return fail[Out](err)
	}
	return Seq[Out]{
		run: func(yield func(Out) bool) error {
			var fnErr error
			err := s.run(func(v In) bool {
				out, err := fn(v)
				if err != nil {
					fnErr = err
					return false
				}
				return yield(out)
			})
			return check(err, fnErr)
		},
	}
}

// SelectMany projects each element to an inner Seq and yields the inner
// elements in order before advancing to the next outer element.
func SelectMany[In, Out any](s Seq[In], selector Selector[In, Seq[Out]]) Seq[Out] {
	if err := check(s.validate("SelectMany", "source"), notNil(selector == nil, "SelectMany", "selector")); err != nil {
		return fail[Out](err)
	}
	return Seq[Out]{
		run: func(yield func(Out) bool) error {
			more := true
			var innerErr error
			err := s.run(func(v In) bool {
				inner := selector(v)
				if innerErr = inner.validate("SelectMany", "inner sequence"); innerErr != nil {
					return false
				}
				innerErr = inner.run(func(out Out) bool {
					more = yield(out)
					return more
				})
				return innerErr == nil && more
			})
			return check(err, innerErr)
		},
	}
}

// Take returns the first count elements of s. A non-positive count yields an
// empty sequence; a count beyond the length of s yields all of s.
func (s Seq[T]) Take(count int) Seq[T] {
	if err := s.validate("Take", "source"); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			if count <= 0 {
				return nil
			}
			taken := 0
			return s.run(func(v T) bool {
				taken++
				return yield(v) && taken < count
			})
		},
	}
}

// Skip bypasses the first count elements of s and yields the rest.
func (s Seq[T]) Skip(count int) Seq[T] {
	if err := s.validate("Skip", "source"); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			skipped := 0
			return s.run(func(v T) bool {
				if skipped < count {
					skipped++
					return true
				}
				return yield(v)
			})
		},
	}
}

// TakeWhile yields elements as long as predicate returns true.
func (s Seq[T]) TakeWhile(predicate Predicate[T]) Seq[T] {
	if predicate == nil {
		return s.TakeWhileIndexed(nil)
	}
	return s.TakeWhileIndexed(func(v T, _ int) bool { return predicate(v) })
}

// TakeWhileIndexed is like TakeWhile but predicate also receives the
// position of the element.
func (s Seq[T]) TakeWhileIndexed(predicate IndexedPredicate[T]) Seq[T] {
	if err := check(s.validate("TakeWhile", "source"), notNil(predicate == nil, "TakeWhile", "predicate")); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			index := 0
			return s.run(func(v T) bool {
				if !predicate(v, index) {
					return false
				}
				index++
				return yield(v)
			})
		},
	}
}

// SkipWhile bypasses elements as long as predicate returns true and yields
// the remaining elements, starting with the first one that failed it.
func (s Seq[T]) SkipWhile(predicate Predicate[T]) Seq[T] {
	if predicate == nil {
		return s.SkipWhileIndexed(nil)
	}
	return s.SkipWhileIndexed(func(v T, _ int) bool { return predicate(v) })
}

// SkipWhileIndexed is like SkipWhile but predicate also receives the
// position of the element.
func (s Seq[T]) SkipWhileIndexed(predicate IndexedPredicate[T]) Seq[T] {
	if err := check(s.validate("SkipWhile", "source"), notNil(predicate == nil, "SkipWhile", "predicate")); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			index := 0
			skipping := true
			return s.run(func(v T) bool {
				if skipping {
					if predicate(v, index) {
						index++
						return true
					}
					skipping = false
				}
				return yield(v)
			})
		},
	}
}

// DefaultIfEmpty yields s unchanged, or a single zero value if s is empty.
func (s Seq[T]) DefaultIfEmpty() Seq[T] {
	var zero T
	return s.DefaultIfEmptyValue(zero)
}

// DefaultIfEmptyValue yields s unchanged, or the single value def if s is
// empty.
func (s Seq[T]) DefaultIfEmptyValue(def T) Seq[T] {
	if err := s.validate("DefaultIfEmpty", "source"); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			empty := true
			err := s.run(func(v T) bool {
				empty = false
				return yield(v)
			})
			if err != nil {
				return err
			}
			if empty {
				yield(def)
			}
			return nil
		},
	}
}

// Concat yields the elements of s followed by the elements of second.
func (s Seq[T]) Concat(second Seq[T]) Seq[T] {
	if err := check(s.validate("Concat", "source"), second.validate("Concat", "second")); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			more := true
			err := s.run(func(v T) bool {
				more = yield(v)
				return more
			})
			if err != nil || !more {
				return err
			}
			return second.run(yield)
		},
	}
}

// Reverse yields the elements of s in reverse order. The whole source is
// buffered when enumeration starts.
func (s Seq[T]) Reverse() Seq[T] {
	if err := s.validate("Reverse", "source"); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			buf, err := s.collect()
			if err != nil {
				return err
			}
			iterx.Backward(buf)(yield)
			return nil
		},
	}
}

// Zip pairs the elements of first and second positionally and yields the
// result of selector for each pair. It stops at the end of the shorter
// sequence.
func Zip[A, B, Out any](first Seq[A], second Seq[B], selector func(a A, b B) Out) Seq[Out] {
	err := check(
		first.validate("Zip", "first"),
		second.validate("Zip", "second"),
		notNil(selector == nil, "Zip", "selector"),
	)
	if err != nil {
		return fail[Out](err)
	}
	return Seq[Out]{
		run: func(yield func(Out) bool) error {
			next, stop, secondErr := iterx.Pull(second.run)
			defer stop()

			exhausted := false
			err := first.run(func(a A) bool {
				b, ok := next()
				if !ok {
					exhausted = true
					return false
				}
				return yield(selector(a, b))
			})
			if err != nil {
				return err
			}
			if exhausted {
				return secondErr()
			}
			return nil
		},
	}
}

// ZipPairs is Zip with a selector that builds a tuple of both elements.
func ZipPairs[A, B any](first Seq[A], second Seq[B]) Seq[types.Tuple2[A, B]] {
	return Zip(first, second, types.NewTuple2[A, B])
}

// Cast asserts every element of s to type R. The traversal fails with a
// CastError at the first element that does not hold an R. A nil element is
// passed through as the zero R when R is an interface, pointer, map, slice,
// func or chan type.
func Cast[R, T any](s Seq[T]) Seq[R] {
	if err := s.validate("Cast", "source"); err != nil {
		return fail[R](err)
	}
	nilable := isNilable(reflect.TypeFor[R]())
	return Seq[R]{
		run: func(yield func(R) bool) error {
			index := 0
			var castErr error
			err := s.run(func(v T) bool {
				r, ok := any(v).(R)
				if !ok && !(nilable && any(v) == nil) {
					castErr = &CastError{Index: index, From: reflect.TypeOf(any(v)), To: reflect.TypeFor[R]()}
					return false
				}
				index++
				return yield(r)
			})
			return check(err, castErr)
		},
	}
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// OfType yields the elements of s that hold a value of type R and silently
// skips the others.
func OfType[R, T any](s Seq[T]) Seq[R] {
	if err := s.validate("OfType", "source"); err != nil {
		return fail[R](err)
	}
	return Seq[R]{
		run: func(yield func(R) bool) error {
			return s.run(func(v T) bool {
				if r, ok := any(v).(R); ok {
					return yield(r)
				}
				return true
			})
		},
	}
}

// Chunk groups elements into slices of size elements. The final chunk may
// be smaller. A non-positive size is reported as ErrOutOfRange.
func Chunk[T any](s Seq[T], size int) Seq[[]T] {
	if err := s.validate("Chunk", "source"); err != nil {
		return fail[[]T](err)
	}
	if size <= 0 {
		return fail[[]T](&RangeError{Op: "Chunk", Param: "size", Value: int64(size)})
	}
	return Seq[[]T]{
		run: func(yield func([]T) bool) error {
			// Every chunk gets its own backing array so that chunks kept by
			// the caller are never overwritten.
			accum := make([]T, 0, size)
			more := true
			err := s.run(func(v T) bool {
				accum = append(accum, v)
				if len(accum) == size {
					more = yield(accum)
					accum = make([]T, 0, size)
				}
				return more
			})
			if err != nil || !more {
				return err
			}
			if len(accum) > 0 {
				yield(accum)
			}
			return nil
		},
	}
}

// collect buffers one full traversal of s.
func (s Seq[T]) collect() ([]T, error) {
	var out []T
	err := s.each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out, err
}
