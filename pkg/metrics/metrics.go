package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/operator-framework/boundcheck/pkg/constraints"
)

const (
	KindLabel   = "kind"
	ReasonLabel = "reason"
	Outcome     = "outcome"
	Succeeded   = "succeeded"
	Failed      = "failed"
)

type MetricsProvider interface {
	HandleMetrics() error
}

// Sizer is implemented by anything that knows how many constraints it
// holds, such as a model.Model.
type Sizer interface {
	Len() int
}

type metricsModel struct {
	model Sizer
}

func NewMetricsModel(model Sizer) MetricsProvider {
	return &metricsModel{model}
}

func (m *metricsModel) HandleMetrics() error {
	constraintCount.Set(float64(m.model.Len()))
	return nil
}

type MetricsNil struct{}

func NewMetricsNil() MetricsProvider {
	return &MetricsNil{}
}

func (*MetricsNil) HandleMetrics() error {
	return nil
}

// To add new metrics:
// 1. Register new metrics in Register() below.
// 2. Add appropriate metric updates in HandleMetrics (or elsewhere instead).
var (
	constraintCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "boundcheck_constraint_count",
			Help: "Number of constraints declared in the model",
		},
	)

	checksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boundcheck_checks_total",
			Help: "Monotonic count of checks, by kind (single or double) and outcome",
		},
		[]string{KindLabel, Outcome},
	)

	violationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boundcheck_violations_total",
			Help: "Monotonic count of violations found, by reason",
		},
		[]string{ReasonLabel},
	)

	checkDurationSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "boundcheck_check_duration_seconds",
			Help:       "The duration of a check",
			Objectives: map[float64]float64{0.95: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{Outcome},
	)
)

func Register(r prometheus.Registerer) {
	r.MustRegister(constraintCount)
	r.MustRegister(checksTotal)
	r.MustRegister(violationsTotal)
	r.MustRegister(checkDurationSummary)
}

func RegisterCheckSuccess(kind string, _ []constraints.Violation, duration time.Duration) {
	checksTotal.WithLabelValues(kind, Succeeded).Inc()
	checkDurationSummary.WithLabelValues(Succeeded).Observe(duration.Seconds())
}

func RegisterCheckFailure(kind string, violations []constraints.Violation, duration time.Duration) {
	checksTotal.WithLabelValues(kind, Failed).Inc()
	checkDurationSummary.WithLabelValues(Failed).Observe(duration.Seconds())
	for _, v := range violations {
		violationsTotal.WithLabelValues(v.Reason()).Inc()
	}
}

// WriteTextfile writes everything gathered by g to path in the text
// exposition format, for collection by a node exporter.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
