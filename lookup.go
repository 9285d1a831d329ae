package queryfn

import (
	"iter"

	"github.com/KasperOmsK/queryfn/internal/iterx"
	"github.com/dolthub/swiss"
	"github.com/go-softwarelab/common/pkg/types"
)

// lookupCapacity is the initial size hint of a Lookup's key index.
const lookupCapacity = 16

// Grouping is a key together with the ordered elements that share it.
type Grouping[K comparable, V any] struct {
	key      K
	elements []V
}

func (g *Grouping[K, V]) Key() K {
	return g.key
}

// Len returns the number of elements in the group.
func (g *Grouping[K, V]) Len() int {
	return len(g.elements)
}

// Seq returns the elements of the group, in source order.
func (g *Grouping[K, V]) Seq() Seq[V] {
	return FromSlice(g.elements)
}

// All returns the elements of the group as an iter.Seq.
func (g *Grouping[K, V]) All() iter.Seq[V] {
	return iterx.FromSlice(g.elements)
}

// Lookup maps keys to groups of values. Keys keep the order in which they
// were first seen and values keep the order in which they were added.
//
// A Lookup is built once by a single traversal and is read-only afterwards.
type Lookup[K comparable, V any] struct {
	index  *swiss.Map[K, int]
	groups []*Grouping[K, V]
}

func newLookup[K comparable, V any]() *Lookup[K, V] {
	return &Lookup[K, V]{index: swiss.NewMap[K, int](lookupCapacity)}
}

func (l *Lookup[K, V]) add(key K, v V) {
	if i, ok := l.index.Get(key); ok {
		g := l.groups[i]
		g.elements = append(g.elements, v)
		return
	}
	l.index.Put(key, len(l.groups))
	l.groups = append(l.groups, &Grouping[K, V]{key: key, elements: []V{v}})
}

func (l *Lookup[K, V]) group(key K) (*Grouping[K, V], bool) {
	i, ok := l.index.Get(key)
	if !ok {
		return nil, false
	}
	return l.groups[i], true
}

// Len returns the number of distinct keys.
func (l *Lookup[K, V]) Len() int {
	return len(l.groups)
}

func (l *Lookup[K, V]) Contains(key K) bool {
	return l.index.Has(key)
}

// Get returns the values stored under key. A missing key yields an empty
// sequence, never an invalid one.
func (l *Lookup[K, V]) Get(key K) Seq[V] {
	if g, ok := l.group(key); ok {
		return g.Seq()
	}
	return Empty[V]()
}

// Groupings returns the groups in order of first key appearance.
func (l *Lookup[K, V]) Groupings() Seq[*Grouping[K, V]] {
	return FromSlice(l.groups)
}

// ToLookup builds a Lookup of the elements of s keyed by key.
func ToLookup[T any, K comparable](s Seq[T], key Selector[T, K]) (*Lookup[K, T], error) {
	return ToLookupSelect(s, key, func(v T) T { return v })
}

// ToLookupSelect builds a Lookup keyed by key whose values are projected
// by element.
func ToLookupSelect[T any, K comparable, V any](s Seq[T], key Selector[T, K], element Selector[T, V]) (*Lookup[K, V], error) {
	err := check(
		s.validate("ToLookup", "source"),
		notNil(key == nil, "ToLookup", "key"),
		notNil(element == nil, "ToLookup", "element"),
	)
	if err != nil {
		return nil, err
	}
	return buildLookup(s, key, element)
}

func buildLookup[T any, K comparable, V any](s Seq[T], key Selector[T, K], element Selector[T, V]) (*Lookup[K, V], error) {
	l := newLookup[K, V]()
	err := s.run(func(v T) bool {
		l.add(key(v), element(v))
		return true
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// GroupBy groups the elements of s by key. Groups are yielded in order of
// first key appearance and keep the source order of their elements.
//
// The whole source is read when enumeration starts.
func GroupBy[T any, K comparable](s Seq[T], key Selector[T, K]) Seq[*Grouping[K, T]] {
	return GroupBySelect(s, key, func(v T) T { return v })
}

// GroupBySelect is like GroupBy but projects each element with element
// before adding it to its group.
func GroupBySelect[T any, K comparable, V any](s Seq[T], key Selector[T, K], element Selector[T, V]) Seq[*Grouping[K, V]] {
	err := check(
		s.validate("GroupBy", "source"),
		notNil(key == nil, "GroupBy", "key"),
		notNil(element == nil, "GroupBy", "element"),
	)
	if err != nil {
		return fail[*Grouping[K, V]](err)
	}
	return Seq[*Grouping[K, V]]{
		run: func(yield func(*Grouping[K, V]) bool) error {
			l, err := buildLookup(s, key, element)
			if err != nil {
				return err
			}
			iterx.FromSlice(l.groups)(yield)
			return nil
		},
	}
}

// AggregateBy folds the elements of each key group without materializing
// the groups. seed is called once per key, when the key is first seen, and
// fn updates the key's accumulator for every element. One tuple of key and
// final accumulator is yielded per key, in order of first key appearance.
func AggregateBy[T any, K comparable, A any](
	s Seq[T],
	key Selector[T, K],
	seed func(key K) A,
	fn func(acc A, item T) A) Seq[types.Tuple2[K, A]] {

	err := check(
		s.validate("AggregateBy", "source"),
		notNil(key == nil, "AggregateBy", "key"),
		notNil(seed == nil, "AggregateBy", "seed"),
		notNil(fn == nil, "AggregateBy", "fn"),
	)
	if err != nil {
		return fail[types.Tuple2[K, A]](err)
	}
	return Seq[types.Tuple2[K, A]]{
		run: func(yield func(types.Tuple2[K, A]) bool) error {
			index := swiss.NewMap[K, int](lookupCapacity)
			var accs []types.Tuple2[K, A]
			err := s.run(func(v T) bool {
				k := key(v)
				i, ok := index.Get(k)
				if !ok {
					i = len(accs)
					index.Put(k, i)
					accs = append(accs, types.NewTuple2(k, seed(k)))
				}
				accs[i].B = fn(accs[i].B, v)
				return true
			})
			if err != nil {
				return err
			}
			iterx.FromSlice(accs)(yield)
			return nil
		},
	}
}
