package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/operator-framework/boundcheck/pkg/constraints"
	"github.com/operator-framework/boundcheck/pkg/lib/signals"
	"github.com/operator-framework/boundcheck/pkg/manifest"
	"github.com/operator-framework/boundcheck/pkg/metrics"
	"github.com/operator-framework/boundcheck/pkg/model"
)

// errViolations is returned when at least one check failed, so that
// the process exits non-zero.
var errViolations = errors.New("constraints violated")

func newCheckCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check ID=VALUE|LEFT:RIGHT=LVALUE:RVALUE...",
		Short: "Checks observed values against the manifest's constraints",
		Example: `  boundcheck check --manifest constraints.yaml 0=10 1=7
  boundcheck check --manifest constraints.yaml 0:1=3:7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withMetrics(func() error {
				mf, err := o.loadManifest()
				if err != nil {
					return err
				}
				return runCheck(signals.Context(), o.logger, cmd.OutOrStdout(), mf, args)
			})
		},
	}
}

func runCheck(ctx context.Context, logger logrus.FieldLogger, out io.Writer, mf *manifest.Manifest, args []string) error {
	switch mf.ValueType {
	case manifest.Float64ValueType:
		return check(ctx, logger, out, mf, args, constraints.ParseFloat64, model.NewFloat64(model.WithTracer(model.LoggingTracer{Logger: logger})))
	default:
		return check(ctx, logger, out, mf, args, constraints.ParseInt64, model.NewInt64(model.WithTracer(model.LoggingTracer{Logger: logger})))
	}
}

func check[T constraints.Affine[T, T, T]](ctx context.Context, logger logrus.FieldLogger, out io.Writer, mf *manifest.Manifest, args []string, parse func(string) (T, error), m *model.Model[T, T, T]) error {
	if err := manifest.Build(mf, m); err != nil {
		return err
	}
	if hash, err := mf.Hash(); err == nil {
		logger = logger.WithField("manifest", strconv.FormatUint(hash, 16))
	}
	logger.Infof("loaded %d constraints", m.Len())
	if err := metrics.NewMetricsModel(m).HandleMetrics(); err != nil {
		return err
	}

	observations := make([]observation[T], 0, len(args))
	for _, arg := range args {
		obs, err := parseObservation(arg, parse)
		if err != nil {
			return err
		}
		observations = append(observations, obs)
	}

	checker := model.NewInstrumentedChecker[T](m, metrics.RegisterCheckSuccess, metrics.RegisterCheckFailure)
	failed := 0
	for _, obs := range observations {
		if err := ctx.Err(); err != nil {
			return err
		}
		violations := obs.check(checker)
		for _, v := range violations {
			fmt.Fprintln(out, v)
		}
		failed += len(violations)
	}

	if failed > 0 {
		logger.Warnf("%d violation(s) in %d observation(s)", failed, len(observations))
		return errors.Wrapf(errViolations, "%d violation(s)", failed)
	}
	logger.Infof("%d observation(s) satisfy all constraints", len(observations))
	return nil
}

// observation is either a single value (ID=VALUE) or a pair of values
// (LEFT:RIGHT=LVALUE:RVALUE).
type observation[T constraints.Value[T]] struct {
	pair   bool
	left   constraints.VariableID
	right  constraints.VariableID
	lvalue T
	rvalue T
}

func (obs observation[T]) check(c model.Checker[T]) []constraints.Violation {
	if obs.pair {
		return c.CheckDouble(obs.left, obs.lvalue, obs.right, obs.rvalue)
	}
	return c.CheckSingle(obs.left, obs.lvalue)
}

func parseObservation[T constraints.Value[T]](arg string, parse func(string) (T, error)) (observation[T], error) {
	var obs observation[T]
	ids, values, ok := strings.Cut(arg, "=")
	if !ok {
		return obs, errors.Errorf("observation %q: expected ID=VALUE or LEFT:RIGHT=LVALUE:RVALUE", arg)
	}

	leftID, rightID, pair := strings.Cut(ids, ":")
	lvalue, rvalue, pairValues := strings.Cut(values, ":")
	if pair != pairValues {
		return obs, errors.Errorf("observation %q: ids and values must both be pairs or both be single", arg)
	}

	var err error
	if obs.left, err = parseID(leftID); err != nil {
		return obs, errors.Wrapf(err, "observation %q", arg)
	}
	if obs.lvalue, err = parse(strings.TrimSpace(lvalue)); err != nil {
		return obs, errors.Wrapf(err, "observation %q", arg)
	}
	if !pair {
		return obs, nil
	}

	obs.pair = true
	if obs.right, err = parseID(rightID); err != nil {
		return obs, errors.Wrapf(err, "observation %q", arg)
	}
	if obs.rvalue, err = parse(strings.TrimSpace(rvalue)); err != nil {
		return obs, errors.Wrapf(err, "observation %q", arg)
	}
	return obs, nil
}

func parseID(s string) (constraints.VariableID, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid variable id")
	}
	return constraints.VariableID(id), nil
}
