// Command fractal compiles complex-valued iteration formulas into WGSL
// escape-time shader programs and renders them to PNG images.
//
// Usage:
//
//	fractal emit 'z^{2}+c'             print the generated fragment shader
//	fractal render 'z^3+c' -o out.png  render to an image (GPU if available)
//	fractal modes                      list coloring modes
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gogpu/fractal"
)

// Context carries the loaded configuration to every command.
type Context struct {
	Config  *Config
	Verbose bool
}

// CLI represents the command-line interface
var CLI struct {
	Config  string `help:"Settings file path" default:"fractal.yaml"`
	Verbose bool   `help:"Enable verbose output" short:"v"`

	Emit    EmitCmd    `cmd:"" help:"Compile a formula and print the generated shader"`
	Render  RenderCmd  `cmd:"" help:"Render a formula to a PNG image"`
	Modes   ModesCmd   `cmd:"" help:"List the available coloring modes"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// ModesCmd represents the modes command
type ModesCmd struct{}

func (cmd *ModesCmd) Run(ctx *Context) error {
	printModes()
	return nil
}

// VersionCmd represents the version command
type VersionCmd struct{}

func (cmd *VersionCmd) Run() error {
	fmt.Println("fractal v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	if CLI.Verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	config, err := LoadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &Context{
		Config:  config,
		Verbose: CLI.Verbose,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
