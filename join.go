package queryfn

// Join correlates the elements of outer and inner on equal keys. For every
// outer element, in order, resultSelector is called with each matching inner
// element in inner order. Outer elements without a match produce nothing.
//
// inner is read completely when the first outer element is seen.
func Join[O, I any, K comparable, R any](
	outer Seq[O],
	inner Seq[I],
	outerKey Selector[O, K],
	innerKey Selector[I, K],
	resultSelector func(outer O, inner I) R) Seq[R] {

	err := check(
		outer.validate("Join", "outer"),
		inner.validate("Join", "inner"),
		notNil(outerKey == nil, "Join", "outerKey"),
		notNil(innerKey == nil, "Join", "innerKey"),
		notNil(resultSelector == nil, "Join", "resultSelector"),
	)
	if err != nil {
		return fail[R](err)
	}
	return Seq[R]{
		run: func(yield func(R) bool) error {
			var lookup *Lookup[K, I]
			var innerErr error
			err := outer.run(func(o O) bool {
				if lookup == nil {
					if lookup, innerErr = buildLookup(inner, innerKey, identity[I]); innerErr != nil {
						return false
					}
				}
				g, ok := lookup.group(outerKey(o))
				if !ok {
					return true
				}
				for _, i := range g.elements {
					if !yield(resultSelector(o, i)) {
						return false
					}
				}
				return true
			})
			return check(err, innerErr)
		},
	}
}

// GroupJoin correlates the elements of outer with the group of inner
// elements sharing their key. resultSelector is called exactly once per
// outer element; the group is empty when nothing matches.
//
// inner is read completely when the first outer element is seen.
func GroupJoin[O, I any, K comparable, R any](
	outer Seq[O],
	inner Seq[I],
	outerKey Selector[O, K],
	innerKey Selector[I, K],
	resultSelector func(outer O, inner Seq[I]) R) Seq[R] {

	err := check(
		outer.validate("GroupJoin", "outer"),
		inner.validate("GroupJoin", "inner"),
		notNil(outerKey == nil, "GroupJoin", "outerKey"),
		notNil(innerKey == nil, "GroupJoin", "innerKey"),
		notNil(resultSelector == nil, "GroupJoin", "resultSelector"),
	)
	if err != nil {
		return fail[R](err)
	}
	return Seq[R]{
		run: func(yield func(R) bool) error {
			var lookup *Lookup[K, I]
			var innerErr error
			err := outer.run(func(o O) bool {
				if lookup == nil {
					if lookup, innerErr = buildLookup(inner, innerKey, identity[I]); innerErr != nil {
						return false
					}
				}
				return yield(resultSelector(o, lookup.Get(outerKey(o))))
			})
			return check(err, innerErr)
		},
	}
}

func identity[T any](v T) T {
	return v
}
