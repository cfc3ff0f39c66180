package constraints

import "fmt"

// Violation values explain why a value failed a check. A failed check
// is an expected outcome rather than a fault, but violations implement
// error so that callers can log or wrap them directly. The set of
// implementations is closed.
type Violation interface {
	error
	// Reason is a short machine readable name for the kind of
	// violation, suitable as a log field or metric label.
	Reason() string
	violation()
}

const (
	ReasonTooLow        = "TooLow"
	ReasonTooHigh       = "TooHigh"
	ReasonCannotCompare = "CannotCompare"
	ReasonNotEqual      = "NotEqual"
	ReasonNotIn         = "NotIn"
)

// TooLow reports a value below a Boundary's bottom limit.
type TooLow[T Value[T]] struct {
	Variable VariableID
	Value    T
	Bottom   Limit[T]
}

func (v TooLow[T]) Error() string {
	return fmt.Sprintf("%s = %v is below bottom limit %s", v.Variable, v.Value, v.Bottom)
}

func (TooLow[T]) Reason() string {
	return ReasonTooLow
}

func (TooLow[T]) violation() {}

// TooHigh reports a value above a Boundary's top limit.
type TooHigh[T Value[T]] struct {
	Variable VariableID
	Value    T
	Top      Limit[T]
}

func (v TooHigh[T]) Error() string {
	return fmt.Sprintf("%s = %v is above top limit %s", v.Variable, v.Value, v.Top)
}

func (TooHigh[T]) Reason() string {
	return ReasonTooHigh
}

func (TooHigh[T]) violation() {}

// Uncomparable reports a value that has no order relative to one of a
// Boundary's limits.
type Uncomparable[T Value[T]] struct {
	Variable VariableID
	Value    T
	Limit    Limit[T]
}

func (v Uncomparable[T]) Error() string {
	return fmt.Sprintf("%s = %v cannot be compared with limit %s", v.Variable, v.Value, v.Limit)
}

func (Uncomparable[T]) Reason() string {
	return ReasonCannotCompare
}

func (Uncomparable[T]) violation() {}

// NotEqual reports a value that differs from a Fixed constraint.
type NotEqual[T Value[T]] struct {
	Variable VariableID
	Expected T
	Actual   T
}

func (v NotEqual[T]) Error() string {
	return fmt.Sprintf("%s = %v, expected %v", v.Variable, v.Actual, v.Expected)
}

func (NotEqual[T]) Reason() string {
	return ReasonNotEqual
}

func (NotEqual[T]) violation() {}

// NotIn reports a pair of values for which a Linear relation does not
// hold. Left and Right are the values as passed in, before scaling.
type NotIn[T Affine[T, M, O], M any, O any] struct {
	Formula Linear[T, M, O]
	Left    T
	Right   T
}

func (v NotIn[T, M, O]) Error() string {
	return fmt.Sprintf("%s does not hold for %s = %v, %s = %v",
		v.Formula, v.Formula.left, v.Left, v.Formula.right, v.Right)
}

func (NotIn[T, M, O]) Reason() string {
	return ReasonNotIn
}

func (NotIn[T, M, O]) violation() {}

// LinearUncomparable reports a pair of values that cannot be ordered
// once the left one has been scaled and shifted, either because the
// result has no order or because it does not fit in T.
type LinearUncomparable[T Affine[T, M, O], M any, O any] struct {
	Formula Linear[T, M, O]
	Left    T
	Right   T
}

func (v LinearUncomparable[T, M, O]) Error() string {
	return fmt.Sprintf("%s cannot be evaluated for %s = %v, %s = %v: adjusted value is not comparable",
		v.Formula, v.Formula.left, v.Left, v.Formula.right, v.Right)
}

func (LinearUncomparable[T, M, O]) Reason() string {
	return ReasonCannotCompare
}

func (LinearUncomparable[T, M, O]) violation() {}
