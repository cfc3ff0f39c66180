package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/operator-framework/boundcheck/pkg/constraints"
	"github.com/operator-framework/boundcheck/pkg/manifest"
	"github.com/operator-framework/boundcheck/pkg/metrics"
	"github.com/operator-framework/boundcheck/pkg/model"
)

func newDescribeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Prints the constraints declared by the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withMetrics(func() error {
				mf, err := o.loadManifest()
				if err != nil {
					return err
				}
				switch mf.ValueType {
				case manifest.Float64ValueType:
					return describe(cmd.OutOrStdout(), mf, model.NewFloat64())
				default:
					return describe(cmd.OutOrStdout(), mf, model.NewInt64())
				}
			})
		},
	}
}

// describe prints each variable's effective range followed by its
// declared constraints, then every relation.
func describe[T constraints.Affine[T, T, T]](out io.Writer, mf *manifest.Manifest, m *model.Model[T, T, T]) error {
	if err := manifest.Build(mf, m); err != nil {
		return err
	}
	if err := metrics.NewMetricsModel(m).HandleMetrics(); err != nil {
		return err
	}

	for _, id := range m.Variables() {
		fmt.Fprintf(out, "%s:\n", id)
		for _, c := range m.Singles(id) {
			switch c := c.(type) {
			case constraints.Boundary[T]:
				fmt.Fprintf(out, "  boundary %s (bottom %s, top %s)\n", c, c.EffectiveBottom(), c.EffectiveTop())
			case constraints.Fixed[T]:
				fmt.Fprintf(out, "  fixed    %s\n", c)
			}
		}
	}
	for _, p := range m.Pairs() {
		fmt.Fprintf(out, "%s:\n", p)
		for _, c := range m.Doubles(p) {
			fmt.Fprintf(out, "  linear   %s\n", c)
		}
	}
	return nil
}
