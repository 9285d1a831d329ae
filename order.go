package queryfn

import (
	"cmp"
	"slices"
)

// Ordered is a Seq whose elements are sorted by one or more keys. It is
// returned by the OrderBy family and is the only input accepted by the
// ThenBy family.
//
// Sorting is stable: elements equal under every key keep their source
// order. The whole source is read when enumeration starts.
type Ordered[T any] struct {
	Seq[T]

	source Seq[T]
	levels []sortLevel[T]
}

// sortLevel computes one key per buffered element and returns a comparison
// of two element positions under that key.
type sortLevel[T any] func(items []T) func(i, j int) int

func newLevel[T, K any](key Selector[T, K], compare func(a, b K) int, descending bool) sortLevel[T] {
	return func(items []T) func(i, j int) int {
		keys := make([]K, len(items))
		for i, v := range items {
			keys[i] = key(v)
		}
		if descending {
			return func(i, j int) int { return compare(keys[j], keys[i]) }
		}
		return func(i, j int) int { return compare(keys[i], keys[j]) }
	}
}

func newOrdered[T any](source Seq[T], levels []sortLevel[T]) Ordered[T] {
	return Ordered[T]{
		source: source,
		levels: levels,
		Seq: Seq[T]{
			run: func(yield func(T) bool) error {
				items, err := source.collect()
				if err != nil {
					return err
				}
				compares := make([]func(i, j int) int, len(levels))
				for n, level := range levels {
					compares[n] = level(items)
				}
				order := make([]int, len(items))
				for i := range order {
					order[i] = i
				}
				slices.SortStableFunc(order, func(a, b int) int {
					for _, compare := range compares {
						if c := compare(a, b); c != 0 {
							return c
						}
					}
					return 0
				})
				for _, i := range order {
					if !yield(items[i]) {
						return nil
					}
				}
				return nil
			},
		},
	}
}

func orderBy[T, K any](op string, s Seq[T], key Selector[T, K], compare func(a, b K) int, descending bool) Ordered[T] {
	err := check(
		s.validate(op, "source"),
		notNil(key == nil, op, "key"),
		notNil(compare == nil, op, "compare"),
	)
	if err != nil {
		return Ordered[T]{Seq: fail[T](err)}
	}
	return newOrdered(s, []sortLevel[T]{newLevel(key, compare, descending)})
}

func thenBy[T, K any](op string, o Ordered[T], key Selector[T, K], compare func(a, b K) int, descending bool) Ordered[T] {
	err := check(
		o.validate(op, "source"),
		notNil(key == nil, op, "key"),
		notNil(compare == nil, op, "compare"),
	)
	if err != nil {
		return Ordered[T]{Seq: fail[T](err)}
	}
	levels := slices.Concat(o.levels, []sortLevel[T]{newLevel(key, compare, descending)})
	return newOrdered(o.source, levels)
}

// OrderBy sorts the elements of s in ascending order of key.
func OrderBy[T any, K cmp.Ordered](s Seq[T], key Selector[T, K]) Ordered[T] {
	return orderBy("OrderBy", s, key, cmp.Compare[K], false)
}

// OrderByDescending sorts the elements of s in descending order of key.
func OrderByDescending[T any, K cmp.Ordered](s Seq[T], key Selector[T, K]) Ordered[T] {
	return orderBy("OrderByDescending", s, key, cmp.Compare[K], true)
}

// OrderByFunc sorts the elements of s in ascending order of key as defined
// by compare, which returns a negative number when a < b, a positive number
// when a > b and zero when a == b.
func OrderByFunc[T, K any](s Seq[T], key Selector[T, K], compare func(a, b K) int) Ordered[T] {
	return orderBy("OrderBy", s, key, compare, false)
}

// OrderByDescendingFunc is the descending variant of OrderByFunc.
func OrderByDescendingFunc[T, K any](s Seq[T], key Selector[T, K], compare func(a, b K) int) Ordered[T] {
	return orderBy("OrderByDescending", s, key, compare, true)
}

// ThenBy adds an ascending tie-break key to o. The new key only decides
// between elements equal under every previous key.
func ThenBy[T any, K cmp.Ordered](o Ordered[T], key Selector[T, K]) Ordered[T] {
	return thenBy("ThenBy", o, key, cmp.Compare[K], false)
}

// ThenByDescending adds a descending tie-break key to o. The direction
// applies to this key only.
func ThenByDescending[T any, K cmp.Ordered](o Ordered[T], key Selector[T, K]) Ordered[T] {
	return thenBy("ThenByDescending", o, key, cmp.Compare[K], true)
}

// ThenByFunc adds an ascending tie-break key compared with compare.
func ThenByFunc[T, K any](o Ordered[T], key Selector[T, K], compare func(a, b K) int) Ordered[T] {
	return thenBy("ThenBy", o, key, compare, false)
}

// ThenByDescendingFunc adds a descending tie-break key compared with
// compare.
func ThenByDescendingFunc[T, K any](o Ordered[T], key Selector[T, K], compare func(a, b K) int) Ordered[T] {
	return thenBy("ThenByDescending", o, key, compare, true)
}
