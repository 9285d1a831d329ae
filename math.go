package queryfn

import (
	"cmp"
)

// Sum adds up the values selector projects from the elements of s, using
// the arithmetic of kind. Integer kinds fail with ErrOverflow instead of
// wrapping around. An empty source sums to kind.Zero().
func Sum[T, N, A any](s Seq[T], kind Number[N, A], selector Selector[T, N]) (N, error) {
	sum, _, err := accumulate("Sum", s, kind, selector)
	return sum, err
}

// Average returns the arithmetic mean of the values selector projects from
// the elements of s. The result has the kind's average type, so integer
// inputs are never truncated. An empty source is reported as ErrNoElements.
func Average[T, N, A any](s Seq[T], kind Number[N, A], selector Selector[T, N]) (A, error) {
	var zero A
	sum, count, err := accumulate("Average", s, kind, selector)
	if err != nil {
		return zero, err
	}
	if count == 0 {
		return zero, ErrNoElements
	}
	return kind.Mean(sum, count), nil
}

func accumulate[T, N, A any](op string, s Seq[T], kind Number[N, A], selector Selector[T, N]) (N, int64, error) {
	var zero N
	err := check(
		s.validate(op, "source"),
		notNil(kind == nil, op, "kind"),
		notNil(selector == nil, op, "selector"),
	)
	if err != nil {
		return zero, 0, err
	}

	sum := kind.Zero()
	var count int64
	var addErr error
	err = s.run(func(v T) bool {
		sum, addErr = kind.Add(sum, selector(v))
		count++
		return addErr == nil
	})
	if err := check(err, addErr); err != nil {
		return zero, 0, err
	}
	return sum, count, nil
}

// Max returns the largest value selector projects from the elements of s.
// An empty source is reported as ErrNoElements.
func Max[T, N, A any](s Seq[T], kind Number[N, A], selector Selector[T, N]) (N, error) {
	return extreme("Max", s, kind, selector, 1)
}

// Min returns the smallest value selector projects from the elements of s.
// An empty source is reported as ErrNoElements.
func Min[T, N, A any](s Seq[T], kind Number[N, A], selector Selector[T, N]) (N, error) {
	return extreme("Min", s, kind, selector, -1)
}

func extreme[T, N, A any](op string, s Seq[T], kind Number[N, A], selector Selector[T, N], sign int) (N, error) {
	var zero N
	if kind == nil {
		return zero, check(s.validate(op, "source"), nilArg(op, "kind"))
	}
	return extremeBy(op, s, selector, kind.Compare, sign)
}

// MaxBy returns the element of s with the largest key. The first such
// element wins ties.
func MaxBy[T any, K cmp.Ordered](s Seq[T], key Selector[T, K]) (T, error) {
	return elementBy("MaxBy", s, key, 1)
}

// MinBy returns the element of s with the smallest key. The first such
// element wins ties.
func MinBy[T any, K cmp.Ordered](s Seq[T], key Selector[T, K]) (T, error) {
	return elementBy("MinBy", s, key, -1)
}

func elementBy[T any, K cmp.Ordered](op string, s Seq[T], key Selector[T, K], sign int) (T, error) {
	var zero T
	if err := check(s.validate(op, "source"), notNil(key == nil, op, "key")); err != nil {
		return zero, err
	}
	type keyed struct {
		key  K
		item T
	}
	best, err := extremeBy(op, s, func(v T) keyed { return keyed{key(v), v} }, func(a, b keyed) int {
		return cmp.Compare(a.key, b.key)
	}, sign)
	return best.item, err
}

// extremeBy keeps the first projected value that compares greater (sign 1)
// or smaller (sign -1) than every later one.
func extremeBy[T, N any](op string, s Seq[T], selector Selector[T, N], compare func(a, b N) int, sign int) (N, error) {
	var zero N
	if err := check(s.validate(op, "source"), notNil(selector == nil, op, "selector")); err != nil {
		return zero, err
	}
	best := zero
	seen := false
	err := s.run(func(v T) bool {
		n := selector(v)
		if !seen || compare(n, best)*sign > 0 {
			best = n
			seen = true
		}
		return true
	})
	if err != nil {
		return zero, err
	}
	if !seen {
		return zero, ErrNoElements
	}
	return best, nil
}
