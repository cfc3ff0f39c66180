package constraints

import (
	"fmt"
	"strings"
)

// Limit is one end of a Boundary.
type Limit[T Value[T]] struct {
	Point     T
	Inclusive bool
}

func (l Limit[T]) String() string {
	if l.Inclusive {
		return fmt.Sprintf("%v (inclusive)", l.Point)
	}
	return fmt.Sprintf("%v (exclusive)", l.Point)
}

// Inclusive returns a Limit that admits its own point.
func Inclusive[T Value[T]](point T) *Limit[T] {
	return &Limit[T]{Point: point, Inclusive: true}
}

// Exclusive returns a Limit that rejects its own point.
func Exclusive[T Value[T]](point T) *Limit[T] {
	return &Limit[T]{Point: point}
}

// Boundary constrains a variable to the range between an optional
// bottom and an optional top Limit. When both are present the bottom
// point always orders strictly below the top point.
type Boundary[T Value[T]] struct {
	id     VariableID
	top    *Limit[T]
	bottom *Limit[T]
}

var _ SingleConstraint[Int64] = Boundary[Int64]{}

// NewBoundary returns a Boundary on id. A nil top or bottom leaves that
// side of the range open.
func NewBoundary[T Value[T]](id VariableID, top, bottom *Limit[T]) (Boundary[T], error) {
	b := Boundary[T]{id: id}
	if top != nil && bottom != nil {
		if err := checkLimits(*top, *bottom); err != nil {
			return Boundary[T]{}, err
		}
	}
	if top != nil {
		t := *top
		b.top = &t
	}
	if bottom != nil {
		bot := *bottom
		b.bottom = &bot
	}
	return b, nil
}

func checkLimits[T Value[T]](top, bottom Limit[T]) error {
	ord, ok := bottom.Point.Compare(top.Point)
	if !ok {
		return IncomparableLimitsError[T]{Top: top, Bottom: bottom}
	}
	switch ord {
	case Less:
		return nil
	case Equal:
		return FixedPointError[T]{Point: bottom.Point, Top: top, Bottom: bottom}
	}
	return InvalidLimitsError[T]{Top: top, Bottom: bottom}
}

func (b Boundary[T]) Variable() VariableID {
	return b.id
}

// Top returns the declared top limit, if any.
func (b Boundary[T]) Top() (Limit[T], bool) {
	if b.top == nil {
		return Limit[T]{}, false
	}
	return *b.top, true
}

// Bottom returns the declared bottom limit, if any.
func (b Boundary[T]) Bottom() (Limit[T], bool) {
	if b.bottom == nil {
		return Limit[T]{}, false
	}
	return *b.bottom, true
}

// EffectiveTop returns the top limit, defaulting to the inclusive
// maximum of T.
func (b Boundary[T]) EffectiveTop() Limit[T] {
	if b.top == nil {
		var zero T
		return Limit[T]{Point: zero.Max(), Inclusive: true}
	}
	return *b.top
}

// EffectiveBottom returns the bottom limit, defaulting to the inclusive
// minimum of T.
func (b Boundary[T]) EffectiveBottom() Limit[T] {
	if b.bottom == nil {
		var zero T
		return Limit[T]{Point: zero.Min(), Inclusive: true}
	}
	return *b.bottom
}

// SetTop replaces the top limit. The receiver is left untouched if the
// new limit does not order above the current bottom.
func (b *Boundary[T]) SetTop(top Limit[T]) error {
	if b.bottom != nil {
		if err := checkLimits(top, *b.bottom); err != nil {
			return err
		}
	}
	b.top = &top
	return nil
}

// SetBottom replaces the bottom limit. The receiver is left untouched
// if the new limit does not order below the current top.
func (b *Boundary[T]) SetBottom(bottom Limit[T]) error {
	if b.top != nil {
		if err := checkLimits(*b.top, bottom); err != nil {
			return err
		}
	}
	b.bottom = &bottom
	return nil
}

// Update replaces both limits at once.
func (b *Boundary[T]) Update(top, bottom Limit[T]) error {
	if err := checkLimits(top, bottom); err != nil {
		return err
	}
	b.top, b.bottom = &top, &bottom
	return nil
}

// Contains returns nil if value lies within the boundary. The bottom
// limit is checked first and only the first failing side is reported.
func (b Boundary[T]) Contains(value T) Violation {
	if b.bottom != nil {
		cmp := GreaterThan
		if b.bottom.Inclusive {
			cmp = GreaterOrEqual
		}
		ord, ok := value.Compare(b.bottom.Point)
		if !ok {
			return Uncomparable[T]{Variable: b.id, Value: value, Limit: *b.bottom}
		}
		if !cmp.Satisfied(ord) {
			return TooLow[T]{Variable: b.id, Value: value, Bottom: *b.bottom}
		}
	}
	if b.top != nil {
		cmp := LessThan
		if b.top.Inclusive {
			cmp = LessOrEqual
		}
		ord, ok := value.Compare(b.top.Point)
		if !ok {
			return Uncomparable[T]{Variable: b.id, Value: value, Limit: *b.top}
		}
		if !cmp.Satisfied(ord) {
			return TooHigh[T]{Variable: b.id, Value: value, Top: *b.top}
		}
	}
	return nil
}

func (b Boundary[T]) Check(value T) Violation {
	return b.Contains(value)
}

// String renders the boundary as an inequality, e.g. "0 <= x3 < 20".
func (b Boundary[T]) String() string {
	var s strings.Builder
	if b.bottom != nil {
		fmt.Fprintf(&s, "%v %s ", b.bottom.Point, relation(*b.bottom))
	}
	s.WriteString(b.id.String())
	if b.top != nil {
		fmt.Fprintf(&s, " %s %v", relation(*b.top), b.top.Point)
	}
	return s.String()
}

func (Boundary[T]) single() {}

// relation is the comparator a limit imposes when written as
// "bottom R x" or "x R top".
func relation[T Value[T]](l Limit[T]) Comparator {
	if l.Inclusive {
		return LessOrEqual
	}
	return LessThan
}
