package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/operator-framework/boundcheck/pkg/constraints"
)

type fixedSizer int

func (s fixedSizer) Len() int {
	return int(s)
}

func TestRegisterCheckOutcomes(t *testing.T) {
	checksTotal.Reset()
	violationsTotal.Reset()

	RegisterCheckSuccess("single", nil, time.Millisecond)
	RegisterCheckFailure("double", []constraints.Violation{
		constraints.NotEqual[constraints.Int64]{Variable: 0, Expected: 1, Actual: 2},
		constraints.TooLow[constraints.Int64]{Variable: 0, Value: -1},
		constraints.TooLow[constraints.Int64]{Variable: 1, Value: -2},
	}, time.Millisecond)

	require.Equal(t, float64(1), testutil.ToFloat64(checksTotal.WithLabelValues("single", Succeeded)))
	require.Equal(t, float64(1), testutil.ToFloat64(checksTotal.WithLabelValues("double", Failed)))
	require.Equal(t, float64(0), testutil.ToFloat64(checksTotal.WithLabelValues("single", Failed)))
	require.Equal(t, float64(2), testutil.ToFloat64(violationsTotal.WithLabelValues(constraints.ReasonTooLow)))
	require.Equal(t, float64(1), testutil.ToFloat64(violationsTotal.WithLabelValues(constraints.ReasonNotEqual)))
}

func TestMetricsModel(t *testing.T) {
	require.NoError(t, NewMetricsModel(fixedSizer(7)).HandleMetrics())
	require.Equal(t, float64(7), testutil.ToFloat64(constraintCount))
	require.NoError(t, NewMetricsNil().HandleMetrics())
}

func TestWriteTextfile(t *testing.T) {
	r := prometheus.NewRegistry()
	Register(r)
	RegisterCheckSuccess("single", nil, time.Millisecond)

	path := filepath.Join(t.TempDir(), "boundcheck.prom")
	require.NoError(t, WriteTextfile(path, r))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(out), "boundcheck_checks_total"))
}
