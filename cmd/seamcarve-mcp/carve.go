package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ironsheep/seamcarve-mcp/internal/carve"
	"github.com/ironsheep/seamcarve-mcp/internal/imaging"
)

// runCarve implements "seamcarve-mcp carve [flags] <input> [output]". The
// path of the written image is printed to stdout.
func runCarve(v *viper.Viper, args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("carve", pflag.ContinueOnError)
	width := fs.Int("width", 0, "target width (0 keeps the current width)")
	height := fs.Int("height", 0, "target height (0 keeps the current height)")
	fs.Bool("strict-energy", false, "keep every cached energy exact after each removal")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := v.BindPFlag("strict_energy", fs.Lookup("strict-energy")); err != nil {
		return err
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		return fmt.Errorf("usage: seamcarve-mcp carve [flags] <input> [output]")
	}
	in, out := fs.Arg(0), fs.Arg(1)

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	grid, err := imaging.LoadPixelGrid(imaging.NewImageCache(), in)
	if err != nil {
		return err
	}

	opts := []carve.Option{carve.WithLogger(log.Logger)}
	if cfg.StrictEnergy {
		opts = append(opts, carve.WithStrictEnergy())
	}
	c, err := carve.New(grid, opts...)
	if err != nil {
		return err
	}

	w, h := *width, *height
	if w == 0 {
		w = c.Width()
	}
	if h == 0 {
		h = c.Height()
	}

	stats, err := c.Resize(w, h)
	if err != nil {
		return err
	}

	path := imaging.OutputPath(cfg.OutputDir, in, out, w, h)
	if err := imaging.SavePixelGrid(c.ToImage(), path); err != nil {
		return err
	}
	log.Info().
		Str("source", in).
		Int("vertical_seams", stats.VerticalSeams).
		Int("horizontal_seams", stats.HorizontalSeams).
		Float64("total_cost", stats.TotalCost).
		Bool("strict_energy", cfg.StrictEnergy).
		Msg("carved image")

	_, err = fmt.Fprintln(stdout, path)
	return err
}
