package main

import (
	"io"

	"github.com/memmaker/oaktools/config"
	"github.com/memmaker/oaktools/engine/util"
	"github.com/memmaker/oaktools/game"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

type app struct {
	out    io.Writer
	errOut io.Writer
	// call runs a world mutation on the goroutine that owns the world.
	call func(func() error) error

	configPath  string
	verbose     bool
	showMetrics bool

	cfg      *config.Config
	registry *prometheus.Registry
	metrics  *game.Metrics
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:    out,
		errOut: errOut,
		call:   func(f func() error) error { return f() },
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "oaktools",
		Short:        "Block orientation tools for voxel worlds",
		Long:         `oaktools applies the file (rotate and reshape blocks in place) and the trowel (place oriented blocks) to a scene or snapshot.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.showMetrics {
				return nil
			}
			return a.writeMetrics()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (defaults to $OAKTOOLS_CONFIG)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.showMetrics, "metrics", false, "print tool metrics after the command")

	root.AddCommand(newEditCmd(a))
	root.AddCommand(newPlaceCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newSnapshotCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := util.LogLevelInfo
	if a.verbose || cfg.General.Debug {
		level = util.LogLevelDebug
	}
	util.SetLogger(util.NewLogger(a.errOut, level), level)
	util.LogConfigDebug("configuration loaded", "file", a.configPath, "debug", cfg.General.Debug)
	for _, warning := range config.Validate(cfg) {
		util.LogConfigWarning(warning)
	}

	a.registry = prometheus.NewRegistry()
	a.metrics = game.NewMetrics(a.registry)
	return nil
}

func (a *app) writeMetrics() error {
	families, err := a.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(a.out, mf); err != nil {
			return errors.Wrap(err, "writing metrics")
		}
	}
	return nil
}
