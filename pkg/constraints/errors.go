package constraints

import (
	"errors"
	"fmt"
)

var (
	ErrFixedPoint    = errors.New("boundary limits collapse to a single point")
	ErrInvalidLimits = errors.New("bottom limit must be below top limit")
	ErrCannotCompare = errors.New("boundary limits are not comparable")
)

// FixedPointError is returned when a Boundary's top and bottom share
// the same point. A Fixed constraint expresses that intent.
type FixedPointError[T Value[T]] struct {
	Point  T
	Top    Limit[T]
	Bottom Limit[T]
}

func (e FixedPointError[T]) Error() string {
	return fmt.Sprintf("%s at %v, declare a fixed constraint instead", ErrFixedPoint, e.Point)
}

func (e FixedPointError[T]) Unwrap() error {
	return ErrFixedPoint
}

// InvalidLimitsError is returned when the bottom limit orders above the
// top limit.
type InvalidLimitsError[T Value[T]] struct {
	Top    Limit[T]
	Bottom Limit[T]
}

func (e InvalidLimitsError[T]) Error() string {
	return fmt.Sprintf("%s: bottom %s, top %s", ErrInvalidLimits, e.Bottom, e.Top)
}

func (e InvalidLimitsError[T]) Unwrap() error {
	return ErrInvalidLimits
}

// IncomparableLimitsError is returned when the two limit points have no
// defined order, e.g. when one of them is NaN.
type IncomparableLimitsError[T Value[T]] struct {
	Top    Limit[T]
	Bottom Limit[T]
}

func (e IncomparableLimitsError[T]) Error() string {
	return fmt.Sprintf("%s: bottom %s, top %s", ErrCannotCompare, e.Bottom, e.Top)
}

func (e IncomparableLimitsError[T]) Unwrap() error {
	return ErrCannotCompare
}
