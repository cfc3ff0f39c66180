package constraints

import (
	"fmt"
	"strings"
)

// Linear relates two variables as
//
//	left * multiplier + offset <comparator> right
//
// where multiplier and offset are optional. Left always has the
// smaller id so that a pair of variables maps to one bucket.
type Linear[T Affine[T, M, O], M any, O any] struct {
	left       VariableID
	right      VariableID
	comparator Comparator
	multiplier *M
	offset     *O
}

var _ DoubleConstraint[Int64] = Linear[Int64, Int64, Int64]{}

// NewLinear panics if left is not strictly smaller than right.
func NewLinear[T Affine[T, M, O], M any, O any](left, right VariableID, multiplier *M, offset *O, cmp Comparator) Linear[T, M, O] {
	if left >= right {
		panic(fmt.Sprintf("linear relation requires left < right, got left %s and right %s", left, right))
	}
	l := Linear[T, M, O]{
		left:       left,
		right:      right,
		comparator: cmp,
	}
	if multiplier != nil {
		m := *multiplier
		l.multiplier = &m
	}
	if offset != nil {
		o := *offset
		l.offset = &o
	}
	return l
}

func (l Linear[T, M, O]) Pair() Pair {
	return Pair{Left: l.left, Right: l.right}
}

func (l Linear[T, M, O]) Comparator() Comparator {
	return l.comparator
}

func (l Linear[T, M, O]) Multiplier() (M, bool) {
	if l.multiplier == nil {
		var zero M
		return zero, false
	}
	return *l.multiplier, true
}

func (l Linear[T, M, O]) Offset() (O, bool) {
	if l.offset == nil {
		var zero O
		return zero, false
	}
	return *l.offset, true
}

// Evaluate scales left by the multiplier, then shifts it by the
// offset, and compares the result against right. A result that
// overflows T is reported as LinearUncomparable.
func (l Linear[T, M, O]) Evaluate(left, right T) Violation {
	adjusted, ok := left, true
	if l.multiplier != nil {
		adjusted, ok = adjusted.Mul(*l.multiplier)
	}
	if ok && l.offset != nil {
		adjusted, ok = adjusted.Add(*l.offset)
	}
	if !ok {
		return LinearUncomparable[T, M, O]{Formula: l, Left: left, Right: right}
	}

	ord, ok := adjusted.Compare(right)
	if !ok {
		return LinearUncomparable[T, M, O]{Formula: l, Left: left, Right: right}
	}
	if !l.comparator.Satisfied(ord) {
		return NotIn[T, M, O]{Formula: l, Left: left, Right: right}
	}
	return nil
}

func (l Linear[T, M, O]) Check(left, right T) Violation {
	return l.Evaluate(left, right)
}

// String renders the relation, e.g. "x0 * 2 + 1 <= x1".
func (l Linear[T, M, O]) String() string {
	var s strings.Builder
	s.WriteString(l.left.String())
	if l.multiplier != nil {
		fmt.Fprintf(&s, " * %v", *l.multiplier)
	}
	if l.offset != nil {
		fmt.Fprintf(&s, " + %v", *l.offset)
	}
	fmt.Fprintf(&s, " %s %s", l.comparator, l.right)
	return s.String()
}

func (Linear[T, M, O]) double() {}
