package main

import (
	"errors"
	"io"
	"os"

	"github.com/fogleman/fauxgl"
	"github.com/soypat/sdfield/render"
	"github.com/soypat/sdfield/scene"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

var textMappers = map[string]render.TextMapper{
	"default": render.DefaultText,
	"fill":    render.FillInside,
}

func newTextCmd(opts *options) *cobra.Command {
	var mapper string
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Render the scene as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := choose("text mapper", mapper, textMappers)
			if err != nil {
				return err
			}
			sc, err := opts.loadScene()
			if err != nil {
				return err
			}
			m, err := opts.sample(cmd, sc.Field, sc.Domain)
			if err != nil {
				return err
			}
			return opts.write(cmd, func(w io.Writer) error {
				_, err := io.WriteString(w, render.TextFromMatrix(m, tm))
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&mapper, "mapper", "m", "default", "text mapper: default or fill")
	return cmd
}

func newImageCmd(opts *options) *cobra.Command {
	var (
		mapper          string
		supersample     int
		inside, outside string
	)
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Render the scene as a PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			colorMappers := map[string]render.ColorMapper{
				"gray":    render.Grayscale,
				"redblue": render.RedBlueRepeating,
				"mask":    render.Mask,
				"twotone": render.TwoTone(inside, outside),
			}
			cm, err := choose("color mapper", mapper, colorMappers)
			if err != nil {
				return err
			}
			sc, err := opts.loadScene()
			if err != nil {
				return err
			}
			d := sc.Domain
			if supersample > 1 {
				d.Steps[0] *= supersample
				d.Steps[1] *= supersample
			}
			m, err := opts.sample(cmd, sc.Field, d)
			if err != nil {
				return err
			}
			img := render.ImageFromMatrix(m, cm)
			if supersample > 1 {
				img = render.Downsample(img, sc.Domain.Steps[0], sc.Domain.Steps[1])
			}
			if err := fauxgl.SavePNG(opts.out, img); err != nil {
				return err
			}
			opts.logger.Info("image written",
				zap.String("out", opts.out),
				zap.Int("width", img.Rect.Dx()),
				zap.Int("height", img.Rect.Dy()),
			)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&mapper, "mapper", "m", "redblue", "color mapper: gray, redblue, mask or twotone")
	flags.IntVar(&supersample, "supersample", 1, "sample at this many times the resolution and downsample")
	flags.StringVar(&inside, "inside", "#468966", "twotone inside color")
	flags.StringVar(&outside, "outside", "#FFF8E3", "twotone outside color")
	cmd.PreRunE = requireOut(opts)
	return cmd
}

func newPlotCmd(opts *options) *cobra.Command {
	var (
		title  string
		size   float64
		levels []float64
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the scene as a heat map with contour lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := opts.loadScene()
			if err != nil {
				return err
			}
			m, err := opts.sample(cmd, sc.Field, sc.Domain)
			if err != nil {
				return err
			}
			cfg := render.PlotConfig{Title: title}
			if cmd.Flags().Changed("levels") {
				cfg.Levels = levels
			}
			p, err := render.PlotMatrix(m, sc.Domain, cfg)
			if err != nil {
				return err
			}
			fp, err := os.Create(opts.out)
			if err != nil {
				return err
			}
			defer fp.Close()
			length := vg.Length(size) * vg.Inch
			if err := render.WritePNG(fp, p, length, length); err != nil {
				return err
			}
			opts.logger.Info("plot written", zap.String("out", opts.out))
			return fp.Close()
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&title, "title", "", "plot title")
	flags.Float64Var(&size, "size", 5, "plot width and height in inches")
	flags.Float64SliceVar(&levels, "levels", render.DefaultLevels, "contour levels")
	cmd.PreRunE = requireOut(opts)
	return cmd
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the built-in demonstration scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(scene.DemoYAML())
			return err
		},
	}
}

// write calls fn with the --out file, or with the command's output if unset.
func (o *options) write(cmd *cobra.Command, fn func(w io.Writer) error) error {
	if o.out == "" {
		return fn(cmd.OutOrStdout())
	}
	fp, err := os.Create(o.out)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := fn(fp); err != nil {
		return err
	}
	return fp.Close()
}

var errMissingOut = errors.New("--out is required")

func requireOut(opts *options) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if opts.out == "" {
			return errMissingOut
		}
		return nil
	}
}
