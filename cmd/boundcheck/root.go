package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/operator-framework/boundcheck/pkg/manifest"
	"github.com/operator-framework/boundcheck/pkg/metrics"
	bcversion "github.com/operator-framework/boundcheck/pkg/version"
)

// envConfig supplies flag defaults from the environment.
type envConfig struct {
	Debug           bool   `env:"BOUNDCHECK_DEBUG"`
	ValueType       string `env:"BOUNDCHECK_VALUE_TYPE"`
	MetricsTextfile string `env:"BOUNDCHECK_METRICS_TEXTFILE"`
}

type options struct {
	manifestPath    string
	valueType       string
	metricsTextfile string
	debug           bool
	version         bool

	logger   *logrus.Logger
	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	o := &options{}
	defaults := envConfig{}
	envErr := env.Parse(&defaults)

	cmd := &cobra.Command{
		Use:          "boundcheck",
		Short:        "Validates values against declared boundary, fixed and linear constraints",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return errors.Wrap(envErr, "parsing environment")
			}
			o.logger = logrus.New()
			o.logger.SetOutput(cmd.ErrOrStderr())
			if o.debug {
				o.logger.SetLevel(logrus.DebugLevel)
			}
			o.logger.Debugf("log level %s", o.logger.Level)

			o.registry = prometheus.NewRegistry()
			metrics.Register(o.registry)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.version {
				fmt.Fprint(cmd.OutOrStdout(), bcversion.String())
				return nil
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&o.manifestPath, "manifest", "", fmt.Sprintf("path to the constraint manifest (defaults to $%s)", manifest.ManifestEnvVarName))
	cmd.PersistentFlags().StringVar(&o.valueType, "value-type", defaults.ValueType, fmt.Sprintf("override the manifest's value type (%s or %s)", manifest.Int64ValueType, manifest.Float64ValueType))
	cmd.PersistentFlags().StringVar(&o.metricsTextfile, "metrics-textfile", defaults.MetricsTextfile, "write check metrics to this file in the prometheus text format")
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", defaults.Debug, "use debug log level")
	cmd.Flags().BoolVar(&o.version, "version", false, "displays the boundcheck version")

	cmd.AddCommand(newCheckCmd(o), newDescribeCmd(o))

	return cmd
}

func (o *options) loadManifest() (*manifest.Manifest, error) {
	var (
		mf  *manifest.Manifest
		err error
	)
	if o.manifestPath != "" {
		mf, err = manifest.NewFromFile(o.manifestPath)
	} else {
		mf, err = manifest.NewFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if mf == nil {
		return nil, errors.Errorf("no manifest given: set --manifest or $%s", manifest.ManifestEnvVarName)
	}

	switch o.valueType {
	case "":
	case manifest.Int64ValueType, manifest.Float64ValueType:
		mf.ValueType = o.valueType
	default:
		return nil, errors.Errorf("unsupported value type %q", o.valueType)
	}
	return mf, nil
}

// withMetrics runs fn and then writes the metrics textfile, if one was
// requested, whether or not fn failed.
func (o *options) withMetrics(fn func() error) error {
	err := fn()
	if werr := o.writeMetrics(); werr != nil {
		if err != nil {
			o.logger.WithError(werr).Error("failed to write metrics")
			return err
		}
		return werr
	}
	return err
}

func (o *options) writeMetrics() error {
	if o.metricsTextfile == "" || o.registry == nil {
		return nil
	}
	if err := metrics.WriteTextfile(o.metricsTextfile, o.registry); err != nil {
		return errors.Wrapf(err, "writing metrics to %s", o.metricsTextfile)
	}
	o.logger.Debugf("wrote metrics to %s", o.metricsTextfile)
	return nil
}
