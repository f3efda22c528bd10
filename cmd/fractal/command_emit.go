package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/parser"
	"github.com/gogpu/fractal/render"
)

// settingsFlags are the per-command overrides for the configured settings.
// Pointer fields distinguish "not given" from an explicit zero.
type settingsFlags struct {
	Iterations *int     `help:"Iteration cap"`
	Breakout   *float64 `help:"Escape radius squared"`
	Coloring   *string  `help:"Coloring mode (see 'fractal modes')"`
	Bias       *float64 `help:"Coloring curve bias"`
	HueShift   *float64 `help:"Hue shift in degrees" name:"hue-shift"`
	Julia      *bool    `help:"Seed z with the pixel coordinate"`
	Smooth     *bool    `help:"Continuous iteration count smoothing"`
}

// apply overlays the given flags onto the configured settings.
func (f *settingsFlags) apply(s *fractal.Settings) {
	if f.Iterations != nil {
		s.Iterations = *f.Iterations
	}
	if f.Breakout != nil {
		s.Breakout = *f.Breakout
	}
	if f.Coloring != nil {
		s.Coloring = fractal.ColoringMode(*f.Coloring)
	}
	if f.Bias != nil {
		s.Bias = *f.Bias
	}
	if f.HueShift != nil {
		s.HueShift = *f.HueShift
	}
	if f.Julia != nil {
		s.Julia = *f.Julia
	}
	if f.Smooth != nil {
		s.Smooth = *f.Smooth
	}
}

// resolveFormula picks the positional formula if given, else the configured
// one, and parses it.
func resolveFormula(arg string, config *Config) (fractal.Node, string, error) {
	formula := arg
	if formula == "" {
		formula = config.Formula
	}
	root, err := parser.Parse(formula)
	if err != nil {
		return nil, formula, fmt.Errorf("parse %q: %w", formula, err)
	}
	return root, formula, nil
}

// EmitCmd represents the emit command
type EmitCmd struct {
	Formula string `arg:"" optional:"" help:"Iteration formula, e.g. 'z^{2}+c'"`
	Vertex  bool   `help:"Print the vertex stage as well"`
	Check   bool   `help:"Compile the program to SPIR-V to validate it"`

	settingsFlags `embed:""`
}

// Run executes the emit command
func (cmd *EmitCmd) Run(ctx *Context) error {
	root, formula, err := resolveFormula(cmd.Formula, ctx.Config)
	if err != nil {
		return err
	}

	settings := ctx.Config.Settings()
	cmd.apply(&settings)

	prog, err := fractal.Compile(root, settings)
	if err != nil {
		return err
	}

	if cmd.Check {
		if err := render.ValidateProgram(prog); err != nil {
			color.Red("Shader validation failed for %s", formula)
			return err
		}
		if ctx.Verbose {
			color.Green("Shader validated for %s", formula)
		}
	}

	if cmd.Vertex {
		fmt.Println(prog.Vertex)
	}
	fmt.Println(prog.Fragment)
	return nil
}
