package model

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/operator-framework/boundcheck/pkg/constraints"
)

var (
	ErrUnknownHandle = errors.New("no constraint declared at handle")
	ErrNotBoundary   = errors.New("constraint at handle is not a boundary")
)

// Handle identifies a single-variable constraint by its position in the
// bucket of its variable. Constraints are never removed, so a Handle
// stays valid for the lifetime of the Model that returned it.
type Handle struct {
	Variable constraints.VariableID
	Index    int
}

func (h Handle) String() string {
	return fmt.Sprintf("%s[%d]", h.Variable, h.Index)
}

// Model holds the constraints declared for a validation session: for
// each variable the single-variable constraints on it, and for each
// ordered pair of variables the relations between them. Constraints
// are appended and never removed.
//
// A Model performs no locking. Callers sharing one between goroutines
// must serialize declarations against both declarations and checks.
type Model[T constraints.Affine[T, M, O], M any, O any] struct {
	single map[constraints.VariableID][]constraints.SingleConstraint[T]
	double map[constraints.Pair][]constraints.DoubleConstraint[T]
	tracer Tracer
}

// New returns an empty Model.
func New[T constraints.Affine[T, M, O], M any, O any](options ...Option) *Model[T, M, O] {
	o := config{}
	for _, option := range append(options, defaults...) {
		option(&o)
	}
	return &Model[T, M, O]{
		single: make(map[constraints.VariableID][]constraints.SingleConstraint[T]),
		double: make(map[constraints.Pair][]constraints.DoubleConstraint[T]),
		tracer: o.tracer,
	}
}

// NewInt64 returns an empty Model over 64-bit integers.
func NewInt64(options ...Option) *Model[constraints.Int64, constraints.Int64, constraints.Int64] {
	return New[constraints.Int64, constraints.Int64, constraints.Int64](options...)
}

// NewFloat64 returns an empty Model over 64-bit floats.
func NewFloat64(options ...Option) *Model[constraints.Float64, constraints.Float64, constraints.Float64] {
	return New[constraints.Float64, constraints.Float64, constraints.Float64](options...)
}

type config struct {
	tracer Tracer
}

type Option func(c *config)

// WithTracer sets the Tracer notified whenever a check finds
// violations.
func WithTracer(t Tracer) Option {
	return func(c *config) {
		c.tracer = t
	}
}

var defaults = []Option{
	func(c *config) {
		if c.tracer == nil {
			c.tracer = DefaultTracer{}
		}
	},
}

// bucket returns the single constraints of id, registering an empty
// bucket if there is none yet.
func (m *Model[T, M, O]) bucket(id constraints.VariableID) []constraints.SingleConstraint[T] {
	b, ok := m.single[id]
	if !ok {
		m.single[id] = nil
	}
	return b
}

// AddBoundary declares a Boundary on id. The variable is registered
// even when the limits are rejected.
func (m *Model[T, M, O]) AddBoundary(id constraints.VariableID, top, bottom *constraints.Limit[T]) (Handle, error) {
	bucket := m.bucket(id)
	b, err := constraints.NewBoundary(id, top, bottom)
	if err != nil {
		return Handle{}, errors.Wrapf(err, "declaring boundary on %s", id)
	}
	m.single[id] = append(bucket, b)
	return Handle{Variable: id, Index: len(bucket)}, nil
}

// AddFixed declares that id must equal value.
func (m *Model[T, M, O]) AddFixed(id constraints.VariableID, value T) Handle {
	bucket := m.bucket(id)
	m.single[id] = append(bucket, constraints.NewFixed(id, value))
	return Handle{Variable: id, Index: len(bucket)}
}

// AddLinear declares "left * multiplier + offset cmp right". It panics
// if left is not strictly smaller than right: ids are never swapped.
func (m *Model[T, M, O]) AddLinear(left, right constraints.VariableID, multiplier *M, offset *O, cmp constraints.Comparator) {
	l := constraints.NewLinear[T](left, right, multiplier, offset, cmp)
	p := l.Pair()
	m.double[p] = append(m.double[p], l)
}

func (m *Model[T, M, O]) boundary(h Handle) (constraints.Boundary[T], error) {
	bucket := m.single[h.Variable]
	if h.Index < 0 || h.Index >= len(bucket) {
		return constraints.Boundary[T]{}, errors.Wrapf(ErrUnknownHandle, "handle %s", h)
	}
	b, ok := bucket[h.Index].(constraints.Boundary[T])
	if !ok {
		return constraints.Boundary[T]{}, errors.Wrapf(ErrNotBoundary, "handle %s holds %q", h, bucket[h.Index])
	}
	return b, nil
}

// SetTop replaces the top limit of the Boundary at h.
func (m *Model[T, M, O]) SetTop(h Handle, top constraints.Limit[T]) error {
	return m.mutateBoundary(h, func(b *constraints.Boundary[T]) error {
		return b.SetTop(top)
	})
}

// SetBottom replaces the bottom limit of the Boundary at h.
func (m *Model[T, M, O]) SetBottom(h Handle, bottom constraints.Limit[T]) error {
	return m.mutateBoundary(h, func(b *constraints.Boundary[T]) error {
		return b.SetBottom(bottom)
	})
}

// UpdateBoundary replaces both limits of the Boundary at h.
func (m *Model[T, M, O]) UpdateBoundary(h Handle, top, bottom constraints.Limit[T]) error {
	return m.mutateBoundary(h, func(b *constraints.Boundary[T]) error {
		return b.Update(top, bottom)
	})
}

// mutateBoundary applies fn to a copy of the Boundary at h and stores
// the copy back only if fn succeeds.
func (m *Model[T, M, O]) mutateBoundary(h Handle, fn func(b *constraints.Boundary[T]) error) error {
	b, err := m.boundary(h)
	if err != nil {
		return err
	}
	if err := fn(&b); err != nil {
		return errors.Wrapf(err, "updating boundary %s", h)
	}
	m.single[h.Variable][h.Index] = b
	return nil
}

// CheckSingle checks value against every constraint declared on id and
// returns all violations found, or nil.
func (m *Model[T, M, O]) CheckSingle(id constraints.VariableID, value T) []constraints.Violation {
	var violations []constraints.Violation
	for _, c := range m.single[id] {
		if v := c.Check(value); v != nil {
			violations = append(violations, v)
		}
	}
	if len(violations) > 0 {
		m.tracer.Trace(Event{Subject: id.String(), Violations: violations})
	}
	return violations
}

// CheckDouble checks a pair of values against every relation declared
// between leftID and rightID and returns all violations found, or nil.
// The ids must be passed in declaration order, smaller id first.
func (m *Model[T, M, O]) CheckDouble(leftID constraints.VariableID, leftValue T, rightID constraints.VariableID, rightValue T) []constraints.Violation {
	p := constraints.Pair{Left: leftID, Right: rightID}
	var violations []constraints.Violation
	for _, c := range m.double[p] {
		if v := c.Check(leftValue, rightValue); v != nil {
			violations = append(violations, v)
		}
	}
	if len(violations) > 0 {
		m.tracer.Trace(Event{Subject: p.String(), Violations: violations})
	}
	return violations
}

// Variables returns, in ascending order, every id that has been
// registered by a single-variable declaration.
func (m *Model[T, M, O]) Variables() []constraints.VariableID {
	ids := make([]constraints.VariableID, 0, len(m.single))
	for id := range m.single {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Singles returns a copy of the constraints declared on id, in
// declaration order.
func (m *Model[T, M, O]) Singles(id constraints.VariableID) []constraints.SingleConstraint[T] {
	return append([]constraints.SingleConstraint[T](nil), m.single[id]...)
}

// Pairs returns every pair with at least one relation, ordered by left
// then right id.
func (m *Model[T, M, O]) Pairs() []constraints.Pair {
	pairs := make([]constraints.Pair, 0, len(m.double))
	for p := range m.double {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Left != pairs[j].Left {
			return pairs[i].Left < pairs[j].Left
		}
		return pairs[i].Right < pairs[j].Right
	})
	return pairs
}

// Doubles returns a copy of the relations declared on p, in
// declaration order.
func (m *Model[T, M, O]) Doubles(p constraints.Pair) []constraints.DoubleConstraint[T] {
	return append([]constraints.DoubleConstraint[T](nil), m.double[p]...)
}

// Len returns the total number of declared constraints.
func (m *Model[T, M, O]) Len() int {
	n := 0
	for _, b := range m.single {
		n += len(b)
	}
	for _, b := range m.double {
		n += len(b)
	}
	return n
}
