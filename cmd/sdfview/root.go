package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/soypat/sdfield"
	"github.com/soypat/sdfield/scene"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// options holds the flags shared by all subcommands.
type options struct {
	scene   string
	out     string
	workers int
	stepsX  int
	stepsY  int
	verbose bool

	logger *zap.Logger
}

// newRootCmd returns the sdfview command tree. A nil logger is replaced by
// a production logger when a command runs.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	opts := &options{logger: logger}
	root := &cobra.Command{
		Use:           "sdfview",
		Short:         "Render 2D signed distance field scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			opts.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.scene, "scene", "s", "", "YAML scene file (default: built-in demo scene)")
	pf.StringVarP(&opts.out, "out", "o", "", "output file")
	pf.IntVarP(&opts.workers, "workers", "j", 0, "sampling goroutines (default: number of CPUs)")
	pf.IntVar(&opts.stepsX, "steps-x", 0, "override the scene's x step count")
	pf.IntVar(&opts.stepsY, "steps-y", 0, "override the scene's y step count")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newTextCmd(opts),
		newImageCmd(opts),
		newPlotCmd(opts),
		newDemoCmd(),
	)
	return root
}

// loadScene reads the scene selected by the flags and applies the step overrides.
func (o *options) loadScene() (*scene.Scene, error) {
	var (
		sc  *scene.Scene
		err error
	)
	if o.scene == "" {
		sc = scene.Demo()
	} else {
		sc, err = scene.Load(o.scene)
		if err != nil {
			return nil, err
		}
	}
	if o.stepsX != 0 {
		sc.Domain.Steps[0] = o.stepsX
	}
	if o.stepsY != 0 {
		sc.Domain.Steps[1] = o.stepsY
	}
	err = sc.Domain.Validate()
	switch {
	case errors.Is(err, sdfield.ErrInvertedRange):
		o.logger.Warn("sampling inverted domain", zap.Error(err))
	case err != nil:
		return nil, err
	}
	o.logger.Debug("scene loaded",
		zap.String("path", o.scene),
		zap.Any("p0", sc.Domain.P0),
		zap.Any("p1", sc.Domain.P1),
		zap.Ints("steps", sc.Domain.Steps[:2]),
	)
	return sc, nil
}

// sample samples f over d concurrently and logs how long it took.
func (o *options) sample(cmd *cobra.Command, f sdfield.Field, d sdfield.Domain) (sdfield.Matrix, error) {
	start := time.Now()
	m, err := sdfield.SampleConcurrent(cmd.Context(), f, d, o.workers)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("field sampled",
		zap.Ints("steps", d.Steps[:2]),
		zap.Int("workers", o.workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return m, nil
}

// choose looks up name in a table of named values.
func choose[T any](kind, name string, table map[string]T) (T, error) {
	v, ok := table[name]
	if !ok {
		names := make([]string, 0, len(table))
		for k := range table {
			names = append(names, k)
		}
		sort.Strings(names)
		return v, fmt.Errorf("unknown %s %q, want one of %s", kind, name, strings.Join(names, ", "))
	}
	return v, nil
}
