package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/render"
)

// Config is the YAML settings file. Every field has a default, so a partial
// file (or no file at all) is fine.
type Config struct {
	Formula    string     `yaml:"formula"`
	Iterations int        `yaml:"iterations"`
	Breakout   float64    `yaml:"breakout"`
	Coloring   string     `yaml:"coloring"`
	Bias       float64    `yaml:"bias"`
	HueShift   float64    `yaml:"hueShift"`
	Julia      bool       `yaml:"julia"`
	Smooth     bool       `yaml:"smooth"`
	View       ViewConfig `yaml:"view"`
}

// ViewConfig is the plane window: center in plane coordinates plus the
// half-height scale.
type ViewConfig struct {
	CenterX float64 `yaml:"centerX"`
	CenterY float64 `yaml:"centerY"`
	Scale   float64 `yaml:"scale"`
}

// getDefaultConfig returns the built-in configuration: the classic
// Mandelbrot set with smooth hue coloring.
func getDefaultConfig() *Config {
	s := fractal.DefaultSettings()
	v := render.DefaultView()
	return &Config{
		Formula:    "z^{2}+c",
		Iterations: s.Iterations,
		Breakout:   s.Breakout,
		Coloring:   string(s.Coloring),
		Bias:       s.Bias,
		HueShift:   s.HueShift,
		Julia:      s.Julia,
		Smooth:     true,
		View:       ViewConfig{CenterX: v.CenterX, CenterY: v.CenterY, Scale: v.Scale},
	}
}

// LoadConfig loads configuration from the specified file. A missing file is
// not an error; the defaults are returned instead.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	config := getDefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, config, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Settings converts the file values into compiler settings.
func (c *Config) Settings() fractal.Settings {
	return fractal.Settings{
		Iterations: c.Iterations,
		Breakout:   c.Breakout,
		Coloring:   fractal.ColoringMode(c.Coloring),
		Bias:       c.Bias,
		HueShift:   c.HueShift,
		Julia:      c.Julia,
		Smooth:     c.Smooth,
	}
}

// RenderView converts the file values into a renderer view.
func (c *Config) RenderView() render.View {
	return render.View{CenterX: c.View.CenterX, CenterY: c.View.CenterY, Scale: c.View.Scale}
}

// printModes lists the available coloring modes on stdout.
func printModes() {
	color.Blue("Available coloring modes:")
	for _, mode := range fractal.ColoringModes() {
		fmt.Printf("  %s\n", mode)
	}
}
