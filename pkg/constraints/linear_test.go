package constraints

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[V any](v V) *V {
	return &v
}

func TestLinearEvaluate(t *testing.T) {
	type tc struct {
		Name       string
		Multiplier *Int64
		Offset     *Int64
		Comparator Comparator
		Left       Int64
		Right      Int64
		Satisfied  bool
	}

	for _, tt := range []tc{
		{Name: "plain lte holds", Comparator: LessOrEqual, Left: 3, Right: 3, Satisfied: true},
		{Name: "plain lte fails", Comparator: LessOrEqual, Left: 4, Right: 3},
		{Name: "plain lt fails on equal", Comparator: LessThan, Left: 3, Right: 3},
		{Name: "plain gt holds", Comparator: GreaterThan, Left: 4, Right: 3, Satisfied: true},
		{Name: "plain gte holds on equal", Comparator: GreaterOrEqual, Left: 3, Right: 3, Satisfied: true},
		{Name: "plain eq fails", Comparator: EqualTo, Left: 2, Right: 3},
		{Name: "scaled and shifted holds", Multiplier: ptr[Int64](2), Offset: ptr[Int64](1), Comparator: LessOrEqual, Left: 3, Right: 7, Satisfied: true},
		{Name: "scaled and shifted fails", Multiplier: ptr[Int64](2), Offset: ptr[Int64](1), Comparator: LessOrEqual, Left: 3, Right: 6},
		{Name: "multiplier only", Multiplier: ptr[Int64](3), Comparator: EqualTo, Left: 3, Right: 9, Satisfied: true},
		{Name: "offset only", Offset: ptr[Int64](-1), Comparator: EqualTo, Left: 3, Right: 2, Satisfied: true},
		// multiply happens before add: 2 * 0 + 5 = 5, not (2 + 5) * 0.
		{Name: "multiply before add", Multiplier: ptr[Int64](0), Offset: ptr[Int64](5), Comparator: EqualTo, Left: 2, Right: 5, Satisfied: true},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			l := NewLinear[Int64](0, 1, tt.Multiplier, tt.Offset, tt.Comparator)
			v := l.Evaluate(tt.Left, tt.Right)
			if tt.Satisfied {
				assert.Nil(t, v)
				return
			}
			assert.Equal(t, NotIn[Int64, Int64, Int64]{Formula: l, Left: tt.Left, Right: tt.Right}, v)
		})
	}
}

func TestLinearEvaluateUncomparable(t *testing.T) {
	l := NewLinear[Float64, Float64, Float64](0, 1, ptr[Float64](2), nil, LessThan)

	v := l.Evaluate(Float64(math.NaN()), 1)
	u, ok := v.(LinearUncomparable[Float64, Float64, Float64])
	require.True(t, ok, "expected LinearUncomparable, got %T", v)
	assert.True(t, math.IsNaN(float64(u.Left)))
	assert.Equal(t, Float64(1), u.Right)
	assert.Equal(t, l, u.Formula)
}

func TestLinearEvaluateOverflow(t *testing.T) {
	for _, tt := range []struct {
		name       string
		multiplier *Int64
		offset     *Int64
		left       Int64
		overflows  bool
	}{
		{name: "multiply overflows", multiplier: ptr[Int64](2), offset: ptr[Int64](1), left: math.MaxInt64, overflows: true},
		{name: "add overflows", offset: ptr[Int64](1), left: math.MaxInt64, overflows: true},
		{name: "add underflows", offset: ptr[Int64](-1), left: math.MinInt64, overflows: true},
		{name: "negating min overflows", multiplier: ptr[Int64](-1), left: math.MinInt64, overflows: true},
		{name: "multiply then add back in range", multiplier: ptr[Int64](1), offset: ptr[Int64](-1), left: math.MaxInt64},
		{name: "negating max fits", multiplier: ptr[Int64](-1), left: math.MaxInt64},
	} {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLinear[Int64](0, 1, tt.multiplier, tt.offset, LessOrEqual)
			v := l.Evaluate(tt.left, 0)
			if !tt.overflows {
				_, uncomparable := v.(LinearUncomparable[Int64, Int64, Int64])
				assert.False(t, uncomparable, "unexpected %v", v)
				return
			}
			assert.Equal(t, LinearUncomparable[Int64, Int64, Int64]{Formula: l, Left: tt.left, Right: 0}, v)
			assert.Equal(t, ReasonCannotCompare, v.Reason())
		})
	}
}

func TestInt64Arithmetic(t *testing.T) {
	for _, tt := range []struct {
		name string
		op   func() (Int64, bool)
		want Int64
		ok   bool
	}{
		{name: "mul", op: func() (Int64, bool) { return Int64(-4).Mul(5) }, want: -20, ok: true},
		{name: "mul by zero", op: func() (Int64, bool) { return Int64(math.MaxInt64).Mul(0) }, want: 0, ok: true},
		{name: "mul overflow", op: func() (Int64, bool) { return Int64(math.MaxInt64 / 2).Mul(3) }},
		{name: "mul min by minus one", op: func() (Int64, bool) { return Int64(-1).Mul(math.MinInt64) }},
		{name: "add", op: func() (Int64, bool) { return Int64(math.MaxInt64 - 1).Add(1) }, want: math.MaxInt64, ok: true},
		{name: "add overflow", op: func() (Int64, bool) { return Int64(math.MaxInt64).Add(1) }},
		{name: "add underflow", op: func() (Int64, bool) { return Int64(math.MinInt64).Add(-1) }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.op()
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewLinearPanicsOnUnorderedIDs(t *testing.T) {
	assert.Panics(t, func() {
		NewLinear[Int64, Int64, Int64](1, 0, nil, nil, LessThan)
	})
	assert.Panics(t, func() {
		NewLinear[Int64, Int64, Int64](1, 1, nil, nil, LessThan)
	})
}

func TestLinearAccessors(t *testing.T) {
	m := Int64(2)
	l := NewLinear[Int64](0, 5, &m, ptr[Int64](1), LessOrEqual)
	m = 10

	got, ok := l.Multiplier()
	assert.True(t, ok)
	assert.Equal(t, Int64(2), got)
	off, ok := l.Offset()
	assert.True(t, ok)
	assert.Equal(t, Int64(1), off)
	assert.Equal(t, Pair{Left: 0, Right: 5}, l.Pair())
	assert.Equal(t, LessOrEqual, l.Comparator())
	assert.Equal(t, "x0 * 2 + 1 <= x5", l.String())

	plain := NewLinear[Int64, Int64, Int64](2, 3, nil, nil, GreaterThan)
	_, ok = plain.Multiplier()
	assert.False(t, ok)
	assert.Equal(t, "x2 > x3", plain.String())
}

func TestViolationMessages(t *testing.T) {
	l := NewLinear[Int64](0, 1, ptr[Int64](2), ptr[Int64](1), LessOrEqual)
	assert.EqualError(t, l.Evaluate(3, 6), "x0 * 2 + 1 <= x1 does not hold for x0 = 3, x1 = 6")
	assert.EqualError(t, NewFixed[Int64](0, 10).Satisfies(11), "x0 = 11, expected 10")
}
