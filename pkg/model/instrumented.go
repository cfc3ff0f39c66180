package model

import (
	"time"

	"github.com/operator-framework/boundcheck/pkg/constraints"
)

const (
	KindSingle = "single"
	KindDouble = "double"
)

// Checker validates observed values against declared constraints.
type Checker[T constraints.Value[T]] interface {
	CheckSingle(id constraints.VariableID, value T) []constraints.Violation
	CheckDouble(leftID constraints.VariableID, leftValue T, rightID constraints.VariableID, rightValue T) []constraints.Violation
}

var _ Checker[constraints.Int64] = &Model[constraints.Int64, constraints.Int64, constraints.Int64]{}

// Emitter receives the kind of check (KindSingle or KindDouble), the
// violations it found and how long it took.
type Emitter func(kind string, violations []constraints.Violation, d time.Duration)

// InstrumentedChecker reports every check to one of two emitters
// depending on whether it passed.
type InstrumentedChecker[T constraints.Value[T]] struct {
	checker               Checker[T]
	successMetricsEmitter Emitter
	failureMetricsEmitter Emitter
}

var _ Checker[constraints.Int64] = &InstrumentedChecker[constraints.Int64]{}

func NewInstrumentedChecker[T constraints.Value[T]](checker Checker[T], successMetricsEmitter, failureMetricsEmitter Emitter) *InstrumentedChecker[T] {
	return &InstrumentedChecker[T]{
		checker:               checker,
		successMetricsEmitter: successMetricsEmitter,
		failureMetricsEmitter: failureMetricsEmitter,
	}
}

func (ic *InstrumentedChecker[T]) CheckSingle(id constraints.VariableID, value T) []constraints.Violation {
	start := time.Now()
	violations := ic.checker.CheckSingle(id, value)
	ic.emit(KindSingle, violations, time.Since(start))
	return violations
}

func (ic *InstrumentedChecker[T]) CheckDouble(leftID constraints.VariableID, leftValue T, rightID constraints.VariableID, rightValue T) []constraints.Violation {
	start := time.Now()
	violations := ic.checker.CheckDouble(leftID, leftValue, rightID, rightValue)
	ic.emit(KindDouble, violations, time.Since(start))
	return violations
}

func (ic *InstrumentedChecker[T]) emit(kind string, violations []constraints.Violation, d time.Duration) {
	if len(violations) > 0 {
		ic.failureMetricsEmitter(kind, violations, d)
		return
	}
	ic.successMetricsEmitter(kind, violations, d)
}
