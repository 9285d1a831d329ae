package queryfn_test

import (
	"errors"
	"testing"

	"github.com/KasperOmsK/queryfn"

	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	got, err := queryfn.Of("a", "b", "c").Aggregate(func(acc, item string) string { return item + acc })

	require.NoError(t, err)
	require.Equal(t, "cba", got)
}

func TestAggregate_Empty(t *testing.T) {
	_, err := queryfn.Empty[int]().Aggregate(func(acc, item int) int { return acc + item })

	require.ErrorIs(t, err, queryfn.ErrInvalidOperation)
	require.ErrorIs(t, err, queryfn.ErrNoElements)
}

func TestAggregate_NilFn(t *testing.T) {
	_, err := queryfn.Of(1).Aggregate(nil)

	require.ErrorIs(t, err, queryfn.ErrInvalidArgument)
}

func TestAggregateSeed(t *testing.T) {
	got, err := queryfn.AggregateSeed(queryfn.Of(1, 2, 3), "x", func(acc string, v int) string {
		return acc + string(rune('0'+v))
	})
	require.NoError(t, err)
	require.Equal(t, "x123", got)

	empty, err := queryfn.AggregateSeed(queryfn.Empty[int](), 42, func(acc, v int) int { return acc + v })
	require.NoError(t, err)
	require.Equal(t, 42, empty)
}

func TestCount(t *testing.T) {
	src := queryfn.Of(1, 2, 3, 4)

	n, err := src.Count()
	require.NoError(t, err)
	require.Equal(t, 4, n)

	n, err = src.CountWhere(func(v int) bool { return v > 2 })
	require.NoError(t, err)
	require.Equal(t, 2, n)

	long, err := src.LongCount()
	require.NoError(t, err)
	require.Equal(t, int64(4), long)

	long, err = src.LongCountWhere(func(v int) bool { return v == 1 })
	require.NoError(t, err)
	require.Equal(t, int64(1), long)

	_, err = src.CountWhere(nil)
	require.ErrorIs(t, err, queryfn.ErrInvalidArgument)
	_, err = src.LongCountWhere(nil)
	require.ErrorIs(t, err, queryfn.ErrInvalidArgument)
}

func TestAll_ShortCircuits(t *testing.T) {
	var seen []int
	all, err := queryfn.Of(2, 4, 5, 6).All(func(v int) bool {
		seen = append(seen, v)
		return v%2 == 0
	})

	require.NoError(t, err)
	require.False(t, all)
	require.Equal(t, []int{2, 4, 5}, seen)

	all, err = queryfn.Empty[int]().All(func(int) bool { return false })
	require.NoError(t, err)
	require.True(t, all)

	_, err = queryfn.Of(1).All(nil)
	require.ErrorIs(t, err, queryfn.ErrInvalidArgument)
}

func TestAny(t *testing.T) {
	found, err := queryfn.Of(1).Any()
	require.NoError(t, err)
	require.True(t, found)

	found, err = queryfn.Empty[int]().Any()
	require.NoError(t, err)
	require.False(t, found)

	calls := 0
	found, err = queryfn.Of(1, 2, 3).AnyWhere(func(v int) bool {
		calls++
		return v == 2
	})
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, calls)

	_, err = queryfn.Of(1).AnyWhere(nil)
	require.ErrorIs(t, err, queryfn.ErrInvalidArgument)
}

func TestContains(t *testing.T) {
	ok, err := queryfn.Contains(queryfn.Of("a", "b"), "b")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = queryfn.Contains(queryfn.Of("a", "b"), "c")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFirst(t *testing.T) {
	src := queryfn.Of(1, 2, 3, 4)

	v, err := src.First()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = src.FirstWhere(func(v int) bool { return v > 2 })
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = queryfn.Empty[int]().First()
	require.ErrorIs(t, err, queryfn.ErrNoElements)

	_, err = src.FirstWhere(func(v int) bool { return v > 10 })
	require.ErrorIs(t, err, queryfn.ErrNoMatch)
	require.ErrorIs(t, err, queryfn.ErrInvalidOperation)
}

func TestFirstOrDefault(t *testing.T) {
	v, err := queryfn.Empty[string]().FirstOrDefault()
	require.NoError(t, err)
	require.Equal(t, "", v)

	v, err = queryfn.Of("a", "bb").FirstOrDefaultWhere(func(s string) bool { return len(s) == 2 })
	require.NoError(t, err)
	require.Equal(t, "bb", v)

	v, err = queryfn.Of("a").FirstOrDefaultWhere(func(s string) bool { return false })
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestFirst_NilPredicateBeforeEnumeration(t *testing.T) {
	pulled := false
	src := queryfn.Of(1).Tap(func(int) { pulled = true })

	_, err := src.FirstWhere(nil)
	require.ErrorIs(t, err, queryfn.ErrInvalidArgument)
	_, err = src.FirstOrDefaultWhere(nil)
	require.ErrorIs(t, err, queryfn.ErrInvalidArgument)
	_, err = src.LastWhere(nil)
	require.ErrorIs(t, err, queryfn.ErrInvalidArgument)
	_, err = src.SingleOrDefaultWhere(nil)
	require.ErrorIs(t, err, queryfn.ErrInvalidArgument)

	require.False(t, pulled)
}

func TestLast(t *testing.T) {
	src := queryfn.Of(1, 2, 3, 4)

	v, err := src.Last()
	require.NoError(t, err)
	require.Equal(t, 4, v)

	v, err = src.LastWhere(func(v int) bool { return v < 3 })
	require.NoError(t, err)
	require.Equal(t, 2, v)

	_, err = queryfn.Empty[int]().Last()
	require.ErrorIs(t, err, queryfn.ErrNoElements)

	_, err = src.LastWhere(func(v int) bool { return v > 10 })
	require.ErrorIs(t, err, queryfn.ErrNoMatch)

	v, err = queryfn.Empty[int]().LastOrDefault()
	require.NoError(t, err)
	require.Equal(t, 0, v)

	v, err = src.LastOrDefaultWhere(func(v int) bool { return v > 10 })
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestSingle(t *testing.T) {
	v, err := queryfn.Of(1).Single()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = queryfn.Empty[int]().Single()
	require.ErrorIs(t, err, queryfn.ErrNoElements)

	_, err = queryfn.Of(1, 2, 3).Single()
	require.ErrorIs(t, err, queryfn.ErrMoreThanOneElement)
	require.ErrorIs(t, err, queryfn.ErrInvalidOperation)
}

func TestSingleWhere(t *testing.T) {
	src := queryfn.Of(1, 2, 3)

	v, err := src.SingleWhere(func(v int) bool { return v == 2 })
	require.NoError(t, err)
	require.Equal(t, 2, v)

	_, err = src.SingleWhere(func(v int) bool { return v > 5 })
	require.ErrorIs(t, err, queryfn.ErrNoMatch)

	_, err = src.SingleWhere(func(v int) bool { return v > 1 })
	require.ErrorIs(t, err, queryfn.ErrMoreThanOneMatch)
}

func TestSingleOrDefault(t *testing.T) {
	v, err := queryfn.Empty[int]().SingleOrDefault()
	require.NoError(t, err)
	require.Equal(t, 0, v)

	_, err = queryfn.Of(1, 2).SingleOrDefault()
	require.ErrorIs(t, err, queryfn.ErrMoreThanOneElement)

	v, err = queryfn.Of(1, 2).SingleOrDefaultWhere(func(v int) bool { return v > 5 })
	require.NoError(t, err)
	require.Equal(t, 0, v)

	_, err = queryfn.Of(1, 2).SingleOrDefaultWhere(func(v int) bool { return v > 0 })
	require.ErrorIs(t, err, queryfn.ErrMoreThanOneMatch)
}

func TestElementAt(t *testing.T) {
	src := queryfn.Of("a", "b", "c")

	v, err := src.ElementAt(1)
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = src.ElementAt(-1)
	require.ErrorIs(t, err, queryfn.ErrOutOfRange)

	_, err = src.ElementAt(3)
	var rangeErr *queryfn.RangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, int64(3), rangeErr.Value)
}

func TestElementAtOrDefault(t *testing.T) {
	src := queryfn.Of("a", "b", "c")

	v, err := src.ElementAtOrDefault(2)
	require.NoError(t, err)
	require.Equal(t, "c", v)

	v, err = src.ElementAtOrDefault(-1)
	require.NoError(t, err)
	require.Equal(t, "", v)

	v, err = src.ElementAtOrDefault(3)
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestSequenceEqual(t *testing.T) {
	eq, err := queryfn.SequenceEqual(queryfn.Of(1, 2, 3), queryfn.Range(1, 3))
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = queryfn.SequenceEqual(queryfn.Of(1, 2, 3), queryfn.Of(1, 2))
	require.NoError(t, err)
	require.False(t, eq)

	eq, err = queryfn.SequenceEqual(queryfn.Of(1, 2), queryfn.Of(1, 2, 3))
	require.NoError(t, err)
	require.False(t, eq)

	eq, err = queryfn.SequenceEqual(queryfn.Of(1, 2), queryfn.Of(1, 5))
	require.NoError(t, err)
	require.False(t, eq)

	eq, err = queryfn.SequenceEqual(queryfn.Empty[int](), queryfn.Empty[int]())
	require.NoError(t, err)
	require.True(t, eq)

	_, err = queryfn.SequenceEqual(queryfn.Of(1), queryfn.Seq[int]{})
	require.ErrorIs(t, err, queryfn.ErrInvalidArgument)
}

func TestSequenceEqual_SecondFails(t *testing.T) {
	boom := errors.New("boom")
	failing := queryfn.TrySelect(queryfn.Of(1, 2, 3), func(v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})

	eq, err := queryfn.SequenceEqual(queryfn.Of(1, 2, 3), failing)
	require.ErrorIs(t, err, boom)
	require.False(t, eq)

	eq, err = queryfn.SequenceEqual(queryfn.Of(1), failing)
	require.ErrorIs(t, err, boom)
	require.False(t, eq)
}

func TestSequenceEqualFunc(t *testing.T) {
	eq, err := queryfn.SequenceEqualFunc(queryfn.Of(1, 2), queryfn.Of("1", "2"), func(a int, b string) bool {
		return string(rune('0'+a)) == b
	})

	require.NoError(t, err)
	require.True(t, eq)
}
