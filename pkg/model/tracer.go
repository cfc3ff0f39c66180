package model

import (
	"github.com/sirupsen/logrus"

	"github.com/operator-framework/boundcheck/pkg/constraints"
)

// Event describes a check that found violations. Subject is the
// variable ("x0") or pair ("(x0, x1)") that was checked.
type Event struct {
	Subject    string
	Violations []constraints.Violation
}

type Tracer interface {
	Trace(e Event)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ Event) {
}

// LoggingTracer logs every violation at debug level.
type LoggingTracer struct {
	Logger logrus.FieldLogger
}

func (t LoggingTracer) Trace(e Event) {
	logger := t.Logger.WithField("subject", e.Subject)
	for _, v := range e.Violations {
		logger.WithField("reason", v.Reason()).Debug(v.Error())
	}
}
