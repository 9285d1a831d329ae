package queryfn

import (
	"cmp"
	"fmt"
	"math"

	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	"github.com/shopspring/decimal"
)

// Number describes the arithmetic of one numeric kind N for the aggregation
// operators. A is the type of the kind's average.
//
// Add must report an error instead of wrapping around when the sum is not
// representable in N.
type Number[N, A any] interface {
	Zero() N
	Add(acc, v N) (N, error)
	Compare(a, b N) int
	Mean(sum N, count int64) A
}

// Numeric kinds accepted by Sum, Average, Max and Min.
var (
	Int32   Number[int32, float64]                   = int32Kind{}
	Int64   Number[int64, float64]                   = int64Kind{}
	Int     Number[int, float64]                     = intKind{}
	Float64 Number[float64, float64]                 = float64Kind{}
	Decimal Number[decimal.Decimal, decimal.Decimal] = decimalKind{}
)

type int32Kind struct{}

func (int32Kind) Zero() int32 { return 0 }

func (int32Kind) Add(acc, v int32) (int32, error) {
	sum, err := safeconversion.Int64ToInt32(int64(acc) + int64(v))
	if err != nil {
		return 0, overflow("int32 addition", err)
	}
	return sum, nil
}

func (int32Kind) Compare(a, b int32) int { return cmp.Compare(a, b) }

func (int32Kind) Mean(sum int32, count int64) float64 {
	return float64(sum) / float64(count)
}

type int64Kind struct{}

func (int64Kind) Zero() int64 { return 0 }

func (int64Kind) Add(acc, v int64) (int64, error) {
	sum := acc + v
	// Signed overflow happened iff both operands share a sign that the
	// result does not.
	if (acc >= 0) == (v >= 0) && (sum >= 0) != (acc >= 0) {
		return 0, overflow("int64 addition", fmt.Errorf("%d + %d", acc, v))
	}
	return sum, nil
}

func (int64Kind) Compare(a, b int64) int { return cmp.Compare(a, b) }

func (int64Kind) Mean(sum int64, count int64) float64 {
	return float64(sum) / float64(count)
}

type intKind struct{}

func (intKind) Zero() int { return 0 }

func (intKind) Add(acc, v int) (int, error) {
	if (v > 0 && acc > math.MaxInt-v) || (v < 0 && acc < math.MinInt-v) {
		return 0, overflow("int addition", fmt.Errorf("%d + %d", acc, v))
	}
	return acc + v, nil
}

func (intKind) Compare(a, b int) int { return cmp.Compare(a, b) }

func (intKind) Mean(sum int, count int64) float64 {
	return float64(sum) / float64(count)
}

type float64Kind struct{}

func (float64Kind) Zero() float64 { return 0 }

func (float64Kind) Add(acc, v float64) (float64, error) { return acc + v, nil }

func (float64Kind) Compare(a, b float64) int { return cmp.Compare(a, b) }

func (float64Kind) Mean(sum float64, count int64) float64 {
	return sum / float64(count)
}

type decimalKind struct{}

func (decimalKind) Zero() decimal.Decimal { return decimal.Zero }

func (decimalKind) Add(acc, v decimal.Decimal) (decimal.Decimal, error) {
	return acc.Add(v), nil
}

func (decimalKind) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }

func (decimalKind) Mean(sum decimal.Decimal, count int64) decimal.Decimal {
	return sum.Div(decimal.NewFromInt(count))
}
