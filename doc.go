/*
Package queryfn provides composable, lazily evaluated query operators over
in-memory sequences: filtering, projection, ordering, grouping, joining,
set algebra and aggregation.

The package is built around Seq[T], a re-enumerable sequence of values of
type T. Operators that keep the element type (Where, Take, Skip, Concat and
more) are methods on Seq, so pipelines read from left to right. Operators
that change the element type (Select, SelectMany, GroupBy, Join, Zip and
more) are package-level functions taking the source Seq as first argument.

# Deferred execution

Operators only describe work. Nothing runs until the pipeline is
enumerated by a terminal operator (First, Count, Sum, ToSlice...) or by
ranging over Values or Results. Each enumeration pulls one element at a
time through every stage, and enumerating the same Seq twice runs every
stage twice: nothing is cached between traversals.

Operators that need the whole input before producing anything (OrderBy,
Reverse, GroupBy, and the inner side of Join, GroupJoin, Intersect and
Except) buffer it when enumeration starts, never when they are called.

# Errors

Operators validate their arguments when they are called. A nil function or
an invalid Seq does not panic; it produces a Seq whose Err is set. Every
operator built on top of it inherits that error and every terminal operator
returns it without touching the source. When several arguments are
invalid, the first one in parameter order is reported.

Errors that depend on the elements, such as First on an empty sequence or
an int32 Sum that overflows, are returned by the terminal operator that
detects them. All errors match one of ErrInvalidArgument,
ErrInvalidOperation, ErrOutOfRange, ErrOverflow or ErrInvalidCast with
errors.Is.

Example of a simple pipeline:

	type Order struct {
		Customer string
		Total    int64
	}

	orders := queryfn.FromSlice(loadOrders())

	big := orders.Where(func(o Order) bool { return o.Total > 100 })

	// Group by customer, in order of first appearance.
	byCustomer := queryfn.GroupBy(big, func(o Order) string { return o.Customer })

	totals := queryfn.Select(byCustomer, func(g *queryfn.Grouping[string, Order]) int64 {
		sum, _ := queryfn.Sum(g.Seq(), queryfn.Int64, func(o Order) int64 { return o.Total })
		return sum
	})

	values, err := totals.ToSlice()

Numeric aggregation is written once over the Number interface; the Int32,
Int64, Int, Float64 and Decimal kinds select the arithmetic. Integer kinds
report ErrOverflow instead of wrapping around.
*/
package queryfn
