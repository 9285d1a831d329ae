package queryfn

import (
	"github.com/KasperOmsK/queryfn/internal/hashset"
)

// Distinct yields the distinct elements of s in order of first occurrence.
func Distinct[T comparable](s Seq[T]) Seq[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy yields the elements of s whose key has not been seen before in
// the current traversal.
func DistinctBy[T any, K comparable](s Seq[T], key Selector[T, K]) Seq[T] {
	if err := check(s.validate("Distinct", "source"), notNil(key == nil, "Distinct", "key")); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			seen := hashset.New[K](0)
			return s.run(func(v T) bool {
				if seen.Add(key(v)) {
					return yield(v)
				}
				return true
			})
		},
	}
}

// Union yields the distinct elements of first in order, followed by the
// elements of second that were not yielded yet, in the order of second.
func Union[T comparable](first, second Seq[T]) Seq[T] {
	if err := check(first.validate("Union", "first"), second.validate("Union", "second")); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			seen := hashset.New[T](0)
			more := true
			emit := func(v T) bool {
				if seen.Add(v) {
					more = yield(v)
				}
				return more
			}
			if err := first.run(emit); err != nil || !more {
				return err
			}
			return second.run(emit)
		},
	}
}

// Intersect yields the distinct elements of first that also occur in
// second, in the order of first. second is read completely before the
// first element is yielded.
func Intersect[T comparable](first, second Seq[T]) Seq[T] {
	if err := check(first.validate("Intersect", "first"), second.validate("Intersect", "second")); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			set, err := buildSet(second)
			if err != nil {
				return err
			}
			return first.run(func(v T) bool {
				// Removing on match keeps later repeats of v out.
				if set.Remove(v) {
					return yield(v)
				}
				return true
			})
		},
	}
}

// Except yields the distinct elements of first that do not occur in
// second, in the order of first. second is read completely before the
// first element is yielded.
func Except[T comparable](first, second Seq[T]) Seq[T] {
	if err := check(first.validate("Except", "first"), second.validate("Except", "second")); err != nil {
		return fail[T](err)
	}
	return Seq[T]{
		run: func(yield func(T) bool) error {
			set, err := buildSet(second)
			if err != nil {
				return err
			}
			return first.run(func(v T) bool {
				if set.Add(v) {
					return yield(v)
				}
				return true
			})
		},
	}
}

func buildSet[T comparable](s Seq[T]) (*hashset.Set[T], error) {
	set := hashset.New[T](0)
	err := s.run(func(v T) bool {
		set.Add(v)
		return true
	})
	return set, err
}
