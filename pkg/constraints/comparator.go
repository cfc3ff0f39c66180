package constraints

import (
	"fmt"
	"strings"
)

// Comparator is the relation a Linear constraint (and each side of a
// Boundary) requires between two values.
type Comparator int

const (
	LessThan Comparator = iota
	LessOrEqual
	GreaterThan
	GreaterOrEqual
	EqualTo
)

// Satisfied reports whether an ordering produced by comparing a to b
// means that "a c b" holds.
func (c Comparator) Satisfied(o Ordering) bool {
	switch o {
	case Less:
		return c == LessThan || c == LessOrEqual
	case Equal:
		return c == LessOrEqual || c == GreaterOrEqual || c == EqualTo
	case Greater:
		return c == GreaterThan || c == GreaterOrEqual
	}
	return false
}

func (c Comparator) String() string {
	switch c {
	case LessThan:
		return "<"
	case LessOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterOrEqual:
		return ">="
	case EqualTo:
		return "="
	}
	return fmt.Sprintf("Comparator(%d)", int(c))
}

// ParseComparator accepts the symbolic form returned by String, "=="
// and the short names lt, lte, gt, gte and eq.
func ParseComparator(s string) (Comparator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "<", "lt":
		return LessThan, nil
	case "<=", "lte":
		return LessOrEqual, nil
	case ">", "gt":
		return GreaterThan, nil
	case ">=", "gte":
		return GreaterOrEqual, nil
	case "=", "==", "eq":
		return EqualTo, nil
	}
	return 0, fmt.Errorf("unknown comparator %q", s)
}
