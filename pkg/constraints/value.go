package constraints

import (
	"math"
	"strconv"
)

// VariableID values identify the logical variables a constraint
// applies to. Uniqueness is up to the caller.
type VariableID uint

func (id VariableID) String() string {
	return "x" + strconv.FormatUint(uint64(id), 10)
}

// Pair identifies the two variables of a double constraint. Left is
// always the smaller id.
type Pair struct {
	Left  VariableID
	Right VariableID
}

func (p Pair) String() string {
	return "(" + p.Left.String() + ", " + p.Right.String() + ")"
}

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "Ordering(" + strconv.Itoa(int(o)) + ")"
}

// Value is the capability a type needs to be used as the subject of a
// constraint. Compare reports false when the two values are not
// ordered relative to each other. Min and Max ignore their receiver
// and report the smallest and largest representable values, which
// stand in for an absent bottom or top limit.
type Value[T any] interface {
	comparable
	Compare(other T) (Ordering, bool)
	Min() T
	Max() T
}

// Affine values can additionally be scaled by M and shifted by O, as
// required by Linear relations.
type Affine[T any, M any, O any] interface {
	Value[T]
	// Mul and Add report false when the result is not representable
	// in T.
	Mul(m M) (T, bool)
	Add(o O) (T, bool)
}

// Int64 is a totally ordered Value.
type Int64 int64

func (v Int64) Compare(other Int64) (Ordering, bool) {
	switch {
	case v < other:
		return Less, true
	case v > other:
		return Greater, true
	}
	return Equal, true
}

func (Int64) Min() Int64 {
	return math.MinInt64
}

func (Int64) Max() Int64 {
	return math.MaxInt64
}

func (v Int64) Mul(m Int64) (Int64, bool) {
	if v == 0 || m == 0 {
		return 0, true
	}
	r := v * m
	if r/m != v || (v == -1 && m == math.MinInt64) || (m == -1 && v == math.MinInt64) {
		return r, false
	}
	return r, true
}

func (v Int64) Add(o Int64) (Int64, bool) {
	r := v + o
	if (o > 0 && r < v) || (o < 0 && r > v) {
		return r, false
	}
	return r, true
}

func (v Int64) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// ParseInt64 parses a base 10 integer.
func ParseInt64(s string) (Int64, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	return Int64(i), err
}

// Float64 is a partially ordered Value: NaN is not ordered against
// anything, including itself.
type Float64 float64

func (v Float64) Compare(other Float64) (Ordering, bool) {
	switch {
	case math.IsNaN(float64(v)) || math.IsNaN(float64(other)):
		return 0, false
	case v < other:
		return Less, true
	case v > other:
		return Greater, true
	}
	return Equal, true
}

func (Float64) Min() Float64 {
	return Float64(math.Inf(-1))
}

func (Float64) Max() Float64 {
	return Float64(math.Inf(1))
}

// Mul never fails: overflow saturates to an infinity, which still
// orders against finite values.
func (v Float64) Mul(m Float64) (Float64, bool) {
	return v * m, true
}

func (v Float64) Add(o Float64) (Float64, bool) {
	return v + o, true
}

func (v Float64) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// ParseFloat64 parses a 64-bit floating point number, including "NaN"
// and "Inf".
func ParseFloat64(s string) (Float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	return Float64(f), err
}
