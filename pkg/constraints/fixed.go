package constraints

import "fmt"

// Fixed pins a variable to a single value.
type Fixed[T Value[T]] struct {
	id    VariableID
	value T
}

var _ SingleConstraint[Int64] = Fixed[Int64]{}

func NewFixed[T Value[T]](id VariableID, value T) Fixed[T] {
	return Fixed[T]{id: id, value: value}
}

func (f Fixed[T]) Variable() VariableID {
	return f.id
}

func (f Fixed[T]) Value() T {
	return f.value
}

// Satisfies returns nil if value equals the fixed value.
func (f Fixed[T]) Satisfies(value T) Violation {
	if f.value == value {
		return nil
	}
	return NotEqual[T]{Variable: f.id, Expected: f.value, Actual: value}
}

func (f Fixed[T]) Check(value T) Violation {
	return f.Satisfies(value)
}

func (f Fixed[T]) String() string {
	return fmt.Sprintf("%s = %v", f.id, f.value)
}

func (Fixed[T]) single() {}
