package main

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gogpu/fractal/render"
)

// RenderCmd represents the render command
type RenderCmd struct {
	Formula     string `arg:"" optional:"" help:"Iteration formula, e.g. 'z^{2}+c'"`
	Output      string `help:"Output PNG path" short:"o" default:"fractal.png"`
	Width       int    `help:"Image width in pixels" default:"1024"`
	Height      int    `help:"Image height in pixels" default:"768"`
	CPU         bool   `help:"Force the CPU renderer"`
	Supersample int    `help:"Supersampling factor" default:"1"`

	CenterX *float64 `help:"Plane center, real part" name:"center-x"`
	CenterY *float64 `help:"Plane center, imaginary part" name:"center-y"`
	Scale   *float64 `help:"Plane half-height"`

	settingsFlags `embed:""`
}

// Run executes the render command
func (cmd *RenderCmd) Run(ctx *Context) error {
	root, formula, err := resolveFormula(cmd.Formula, ctx.Config)
	if err != nil {
		return err
	}

	settings := ctx.Config.Settings()
	cmd.apply(&settings)

	view := ctx.Config.RenderView()
	if cmd.CenterX != nil {
		view.CenterX = *cmd.CenterX
	}
	if cmd.CenterY != nil {
		view.CenterY = *cmd.CenterY
	}
	if cmd.Scale != nil {
		view.Scale = *cmd.Scale
	}

	var opts []render.Option
	if cmd.CPU {
		opts = append(opts, render.WithCPUOnly())
	}
	if cmd.Supersample > 1 {
		opts = append(opts, render.WithSupersample(cmd.Supersample))
	}

	if ctx.Verbose {
		color.Blue("Rendering %s at %dx%d", formula, cmd.Width, cmd.Height)
	}

	r := render.New(opts...)
	defer r.Close()

	start := time.Now()
	img, err := r.Render(root, settings, view, cmd.Width, cmd.Height)
	if err != nil {
		color.Red("Render failed for %s", formula)
		return err
	}

	out, err := os.Create(cmd.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	color.Green("Wrote %s (%dx%d) in %s", cmd.Output, cmd.Width, cmd.Height, time.Since(start).Round(time.Millisecond))
	return nil
}
