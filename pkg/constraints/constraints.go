package constraints

// SingleConstraint implementations restrict the values of a single
// variable. The set of implementations is closed: Boundary and Fixed.
type SingleConstraint[T Value[T]] interface {
	// Variable returns the id of the constrained variable.
	Variable() VariableID
	// Check returns nil if value satisfies the constraint.
	Check(value T) Violation
	String() string
	single()
}

// DoubleConstraint implementations relate the values of an ordered
// pair of variables. Linear is the only implementation.
type DoubleConstraint[T Value[T]] interface {
	// Pair returns the ids of the related variables.
	Pair() Pair
	// Check returns nil if the left and right values satisfy the
	// constraint.
	Check(left, right T) Violation
	String() string
	double()
}
