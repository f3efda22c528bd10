package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/fractal"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Formula != "z^{2}+c" {
		t.Errorf("default formula = %q", config.Formula)
	}
	s := config.Settings()
	if s.Iterations != 100 || s.Breakout != 10000 || s.Coloring != fractal.ColoringHue {
		t.Errorf("default settings = %+v", s)
	}
	if !s.Smooth {
		t.Error("default config should enable smoothing")
	}
	v := config.RenderView()
	if v.CenterX != -0.5 || v.CenterY != 0 || v.Scale != 1.5 {
		t.Errorf("default view = %+v", v)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractal.yaml")
	data := "formula: z^3+c\niterations: 250\ncoloring: grayscale\nview:\n  scale: 0.5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Formula != "z^3+c" {
		t.Errorf("formula = %q", config.Formula)
	}
	s := config.Settings()
	if s.Iterations != 250 {
		t.Errorf("iterations = %d", s.Iterations)
	}
	if s.Coloring != fractal.ColoringGrayscale {
		t.Errorf("coloring = %q", s.Coloring)
	}
	// Unset fields keep their defaults.
	if s.Breakout != 10000 {
		t.Errorf("breakout = %v", s.Breakout)
	}
	v := config.RenderView()
	if v.Scale != 0.5 {
		t.Errorf("scale = %v", v.Scale)
	}
	if v.CenterX != -0.5 {
		t.Errorf("centerX = %v", v.CenterX)
	}
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractal.yaml")
	if err := os.WriteFile(path, []byte("formulla: z^3+c\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestSettingsFlagsApply(t *testing.T) {
	iterations := 500
	coloring := "bw"
	julia := true

	flags := settingsFlags{
		Iterations: &iterations,
		Coloring:   &coloring,
		Julia:      &julia,
	}
	s := fractal.DefaultSettings()
	flags.apply(&s)

	if s.Iterations != 500 {
		t.Errorf("iterations = %d", s.Iterations)
	}
	if s.Coloring != fractal.ColoringBW {
		t.Errorf("coloring = %q", s.Coloring)
	}
	if !s.Julia {
		t.Error("julia not applied")
	}
	// Untouched fields keep their defaults.
	if s.Breakout != 10000 {
		t.Errorf("breakout = %v", s.Breakout)
	}
}

func TestResolveFormulaFallsBackToConfig(t *testing.T) {
	config := getDefaultConfig()

	root, formula, err := resolveFormula("", config)
	if err != nil {
		t.Fatalf("resolveFormula: %v", err)
	}
	if formula != config.Formula {
		t.Errorf("formula = %q, want %q", formula, config.Formula)
	}
	if root == nil {
		t.Fatal("nil root")
	}

	if _, _, err := resolveFormula("z + w", config); err == nil {
		t.Error("expected parse error for free variable w")
	}
}
