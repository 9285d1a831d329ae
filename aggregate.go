package queryfn

import (
	"github.com/KasperOmsK/queryfn/internal/iterx"
	"github.com/go-softwarelab/common/pkg/optional"
)

// Aggregate folds the elements of s from left to right, using the first
// element as the initial accumulator. An empty source is reported as
// ErrNoElements.
func (s Seq[T]) Aggregate(fn func(acc, item T) T) (T, error) {
	var zero T
	if err := check(s.validate("Aggregate", "source"), notNil(fn == nil, "Aggregate", "fn")); err != nil {
		return zero, err
	}
	var acc optional.Value[T]
	err := s.run(func(v T) bool {
		if acc.IsEmpty() {
			acc = optional.Some(v)
			return true
		}
		acc = optional.Some(fn(acc.MustGet(), v))
		return true
	})
	if err != nil {
		return zero, err
	}
	return acc.OrError(ErrNoElements)
}

// AggregateSeed folds the elements of s from left to right starting with
// seed. An empty source returns seed.
func AggregateSeed[T, A any](s Seq[T], seed A, fn func(acc A, item T) A) (A, error) {
	if err := check(s.validate("Aggregate", "source"), notNil(fn == nil, "Aggregate", "fn")); err != nil {
		return seed, err
	}
	acc := seed
	err := s.run(func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	return acc, err
}

// Count returns the number of elements in s.
func (s Seq[T]) Count() (int, error) {
	n, err := s.LongCount()
	return int(n), err
}

// CountWhere returns the number of elements of s that satisfy predicate.
func (s Seq[T]) CountWhere(predicate Predicate[T]) (int, error) {
	n, err := s.countWhere("Count", predicate)
	return int(n), err
}

// LongCount is Count with a 64-bit result.
func (s Seq[T]) LongCount() (int64, error) {
	return s.countWhere("LongCount", func(T) bool { return true })
}

// LongCountWhere is CountWhere with a 64-bit result.
func (s Seq[T]) LongCountWhere(predicate Predicate[T]) (int64, error) {
	return s.countWhere("LongCount", predicate)
}

func (s Seq[T]) countWhere(op string, predicate Predicate[T]) (int64, error) {
	if err := check(s.validate(op, "source"), notNil(predicate == nil, op, "predicate")); err != nil {
		return 0, err
	}
	var n int64
	err := s.run(func(v T) bool {
		if predicate(v) {
			n++
		}
		return true
	})
	return n, err
}

// All reports whether every element of s satisfies predicate. It stops at
// the first element that does not. An empty source returns true.
func (s Seq[T]) All(predicate Predicate[T]) (bool, error) {
	if err := check(s.validate("All", "source"), notNil(predicate == nil, "All", "predicate")); err != nil {
		return false, err
	}
	all := true
	err := s.run(func(v T) bool {
		all = predicate(v)
		return all
	})
	return all, err
}

// Any reports whether s contains at least one element.
func (s Seq[T]) Any() (bool, error) {
	opt, err := s.seekFirst("Any", func(T) bool { return true })
	return opt.IsPresent(), err
}

// AnyWhere reports whether an element of s satisfies predicate. It stops at
// the first match.
func (s Seq[T]) AnyWhere(predicate Predicate[T]) (bool, error) {
	opt, err := s.seekFirst("Any", predicate)
	return opt.IsPresent(), err
}

// Contains reports whether s contains v.
func Contains[T comparable](s Seq[T], v T) (bool, error) {
	return s.AnyWhere(func(item T) bool { return item == v })
}

// First returns the first element of s, or ErrNoElements.
func (s Seq[T]) First() (T, error) {
	opt, err := s.seekFirst("First", func(T) bool { return true })
	if err != nil {
		return opt.OrZeroValue(), err
	}
	return opt.OrError(ErrNoElements)
}

// FirstWhere returns the first element of s that satisfies predicate, or
// ErrNoMatch.
func (s Seq[T]) FirstWhere(predicate Predicate[T]) (T, error) {
	opt, err := s.seekFirst("First", predicate)
	if err != nil {
		return opt.OrZeroValue(), err
	}
	return opt.OrError(ErrNoMatch)
}

// FirstOrDefault returns the first element of s, or the zero value when s
// is empty.
func (s Seq[T]) FirstOrDefault() (T, error) {
	opt, err := s.seekFirst("FirstOrDefault", func(T) bool { return true })
	return opt.OrZeroValue(), err
}

// FirstOrDefaultWhere returns the first element of s that satisfies
// predicate, or the zero value when there is none.
func (s Seq[T]) FirstOrDefaultWhere(predicate Predicate[T]) (T, error) {
	opt, err := s.seekFirst("FirstOrDefault", predicate)
	return opt.OrZeroValue(), err
}

// Last returns the last element of s, or ErrNoElements.
func (s Seq[T]) Last() (T, error) {
	opt, err := s.seekLast("Last", func(T) bool { return true })
	if err != nil {
		return opt.OrZeroValue(), err
	}
	return opt.OrError(ErrNoElements)
}

// LastWhere returns the last element of s that satisfies predicate, or
// ErrNoMatch.
func (s Seq[T]) LastWhere(predicate Predicate[T]) (T, error) {
	opt, err := s.seekLast("Last", predicate)
	if err != nil {
		return opt.OrZeroValue(), err
	}
	return opt.OrError(ErrNoMatch)
}

// LastOrDefault returns the last element of s, or the zero value when s is
// empty.
func (s Seq[T]) LastOrDefault() (T, error) {
	opt, err := s.seekLast("LastOrDefault", func(T) bool { return true })
	return opt.OrZeroValue(), err
}

// LastOrDefaultWhere returns the last element of s that satisfies
// predicate, or the zero value when there is none.
func (s Seq[T]) LastOrDefaultWhere(predicate Predicate[T]) (T, error) {
	opt, err := s.seekLast("LastOrDefault", predicate)
	return opt.OrZeroValue(), err
}

// Single returns the only element of s. It fails with ErrNoElements when s
// is empty and with ErrMoreThanOneElement when s has more than one element.
func (s Seq[T]) Single() (T, error) {
	opt, err := s.seekSingle("Single", func(T) bool { return true }, ErrMoreThanOneElement)
	if err != nil {
		return opt.OrZeroValue(), err
	}
	return opt.OrError(ErrNoElements)
}

// SingleWhere returns the only element of s that satisfies predicate. It
// fails with ErrNoMatch when there is none and with ErrMoreThanOneMatch
// when there are several.
func (s Seq[T]) SingleWhere(predicate Predicate[T]) (T, error) {
	opt, err := s.seekSingle("Single", predicate, ErrMoreThanOneMatch)
	if err != nil {
		return opt.OrZeroValue(), err
	}
	return opt.OrError(ErrNoMatch)
}

// SingleOrDefault is like Single but returns the zero value when s is
// empty. More than one element is still an error.
func (s Seq[T]) SingleOrDefault() (T, error) {
	opt, err := s.seekSingle("SingleOrDefault", func(T) bool { return true }, ErrMoreThanOneElement)
	return opt.OrZeroValue(), err
}

// SingleOrDefaultWhere is like SingleWhere but returns the zero value when
// nothing matches.
func (s Seq[T]) SingleOrDefaultWhere(predicate Predicate[T]) (T, error) {
	opt, err := s.seekSingle("SingleOrDefault", predicate, ErrMoreThanOneMatch)
	return opt.OrZeroValue(), err
}

// ElementAt returns the element at the zero-based index. A negative index or
// one past the end of s is reported as a RangeError.
func (s Seq[T]) ElementAt(index int) (T, error) {
	opt, err := s.seekIndex("ElementAt", index)
	if err != nil {
		return opt.OrZeroValue(), err
	}
	return opt.OrError(&RangeError{Op: "ElementAt", Param: "index", Value: int64(index)})
}

// ElementAtOrDefault returns the element at the zero-based index, or the
// zero value when the index is out of range.
func (s Seq[T]) ElementAtOrDefault(index int) (T, error) {
	if err := s.validate("ElementAtOrDefault", "source"); err != nil || index < 0 {
		var zero T
		return zero, err
	}
	opt, err := s.seekIndex("ElementAtOrDefault", index)
	return opt.OrZeroValue(), err
}

func (s Seq[T]) seekFirst(op string, predicate Predicate[T]) (optional.Value[T], error) {
	if err := check(s.validate(op, "source"), notNil(predicate == nil, op, "predicate")); err != nil {
		return optional.Empty[T](), err
	}
	found := optional.Empty[T]()
	err := s.run(func(v T) bool {
		if predicate(v) {
			found = optional.Some(v)
			return false
		}
		return true
	})
	return found, err
}

func (s Seq[T]) seekLast(op string, predicate Predicate[T]) (optional.Value[T], error) {
	if err := check(s.validate(op, "source"), notNil(predicate == nil, op, "predicate")); err != nil {
		return optional.Empty[T](), err
	}
	found := optional.Empty[T]()
	err := s.run(func(v T) bool {
		if predicate(v) {
			found = optional.Some(v)
		}
		return true
	})
	return found, err
}

func (s Seq[T]) seekSingle(op string, predicate Predicate[T], tooMany error) (optional.Value[T], error) {
	if err := check(s.validate(op, "source"), notNil(predicate == nil, op, "predicate")); err != nil {
		return optional.Empty[T](), err
	}
	found := optional.Empty[T]()
	duplicate := false
	err := s.run(func(v T) bool {
		if !predicate(v) {
			return true
		}
		if found.IsPresent() {
			duplicate = true
			return false
		}
		found = optional.Some(v)
		return true
	})
	if err != nil {
		return optional.Empty[T](), err
	}
	if duplicate {
		return optional.Empty[T](), tooMany
	}
	return found, nil
}

func (s Seq[T]) seekIndex(op string, index int) (optional.Value[T], error) {
	if err := s.validate(op, "source"); err != nil {
		return optional.Empty[T](), err
	}
	if index < 0 {
		return optional.Empty[T](), &RangeError{Op: op, Param: "index", Value: int64(index)}
	}
	found := optional.Empty[T]()
	pos := 0
	err := s.run(func(v T) bool {
		if pos == index {
			found = optional.Some(v)
			return false
		}
		pos++
		return true
	})
	return found, err
}

// SequenceEqual reports whether first and second have the same length and
// equal elements at every position.
func SequenceEqual[T comparable](first, second Seq[T]) (bool, error) {
	return sequenceEqual("SequenceEqual", first, second, func(a, b T) bool { return a == b })
}

// SequenceEqualFunc is SequenceEqual with a caller supplied equality.
func SequenceEqualFunc[A, B any](first Seq[A], second Seq[B], eq func(a A, b B) bool) (bool, error) {
	return sequenceEqual("SequenceEqualFunc", first, second, eq)
}

func sequenceEqual[A, B any](op string, first Seq[A], second Seq[B], eq func(a A, b B) bool) (bool, error) {
	err := check(
		first.validate(op, "first"),
		second.validate(op, "second"),
		notNil(eq == nil, op, "eq"),
	)
	if err != nil {
		return false, err
	}

	next, stop, secondErr := iterx.Pull(second.run)
	defer stop()

	equal := true
	secondDone := false
	err = first.run(func(a A) bool {
		b, ok := next()
		if !ok {
			secondDone = true
			equal = false
			return false
		}
		equal = eq(a, b)
		return equal
	})
	if err != nil {
		return false, err
	}
	if secondDone {
		if err := secondErr(); err != nil {
			return false, err
		}
	}
	if !equal {
		return false, nil
	}
	if _, ok := next(); ok {
		return false, nil
	}
	if err := secondErr(); err != nil {
		return false, err
	}
	return true, nil
}
