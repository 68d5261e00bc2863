// Package config reads and writes render settings as YAML and overlays
// them onto generator parameters.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fracgen/internal/attractor"
	"github.com/san-kum/fracgen/internal/branch"
	"github.com/san-kum/fracgen/internal/escape"
	"github.com/san-kum/fracgen/internal/fractal"
	"github.com/san-kum/fracgen/internal/lsystem"
	"github.com/san-kum/fracgen/internal/terrain"
)

const (
	DefaultGenerator = "mandelbrot"
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultOutput    = "fractal.png"
)

// Config is one render request. Zero-valued fields mean "use the
// family default"; Apply only overlays fields that are set.
type Config struct {
	Generator  string  `yaml:"generator"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Iterations int     `yaml:"iterations"`
	Depth      int     `yaml:"depth"`
	Seed       int64   `yaml:"seed"`
	Dt         float64 `yaml:"dt"`
	Scale      float64 `yaml:"scale"`
	Roughness  float64 `yaml:"roughness"`
	Angle      float64 `yaml:"angle"`
	Ratio      float64 `yaml:"ratio"`
	Palette    string  `yaml:"palette"`

	Window    WindowConfig       `yaml:"window"`
	Julia     JuliaConfig        `yaml:"julia"`
	Initial   InitialConfig      `yaml:"initial"`
	Constants map[string]float64 `yaml:"constants"`

	Output string `yaml:"output"`
}

// WindowConfig is a complex-plane window. A window whose spans are both
// zero counts as unset.
type WindowConfig struct {
	MinRe float64 `yaml:"min_re"`
	MinIm float64 `yaml:"min_im"`
	MaxRe float64 `yaml:"max_re"`
	MaxIm float64 `yaml:"max_im"`
}

func (w WindowConfig) isSet() bool {
	return w.MinRe != w.MaxRe && w.MinIm != w.MaxIm
}

// JuliaConfig is the orbit constant for Julia-style families. A zero
// constant counts as unset; pass the typed parameters directly to
// render the c = 0 set.
type JuliaConfig struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

func (j JuliaConfig) isSet() bool { return j.Re != 0 || j.Im != 0 }

// InitialConfig is the starting state for dynamical-system families.
// All-zero counts as unset and keeps the family's classic start.
type InitialConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (i InitialConfig) isSet() bool { return i.X != 0 || i.Y != 0 || i.Z != 0 }

func DefaultConfig() *Config {
	return &Config{
		Generator: DefaultGenerator,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Output:    DefaultOutput,
	}
}

// Load reads path over DefaultConfig, so absent keys keep defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply overlays the set fields of c onto base, which should be the
// family's default parameter set. Unknown parameter types pass through
// unchanged.
func (c *Config) Apply(base fractal.Params) fractal.Params {
	switch p := base.(type) {
	case escape.Params:
		if c.Width > 0 && c.Height > 0 {
			p.Width, p.Height = c.Width, c.Height
		}
		if c.Iterations > 0 {
			p.Iterations = c.Iterations
		}
		if c.Window.isSet() {
			p.Min = complex(c.Window.MinRe, c.Window.MinIm)
			p.Max = complex(c.Window.MaxRe, c.Window.MaxIm)
		}
		if c.Julia.isSet() {
			p.C = complex(c.Julia.Re, c.Julia.Im)
		}
		if c.Palette != "" {
			p.Palette = c.Palette
		}
		return p

	case lsystem.Params:
		if c.Width > 0 && c.Height > 0 {
			p.Width, p.Height = c.Width, c.Height
		}
		if c.Depth > 0 {
			p.Depth = c.Depth
		}
		return p

	case branch.Params:
		if c.Width > 0 && c.Height > 0 {
			p.Width, p.Height = c.Width, c.Height
		}
		if c.Depth > 0 {
			p.Depth = c.Depth
		}
		if c.Angle > 0 {
			p.Angle = c.Angle
		}
		if c.Ratio > 0 {
			p.Ratio = c.Ratio
		}
		if c.Seed != 0 {
			p.Seed = c.Seed
		}
		return p

	case attractor.Params:
		if c.Width > 0 && c.Height > 0 {
			p.Width, p.Height = c.Width, c.Height
		}
		if c.Iterations > 0 {
			p.Iterations = c.Iterations
		}
		if c.Dt > 0 {
			p.Dt = c.Dt
		}
		if c.Scale > 0 {
			p.Scale = c.Scale
		}
		if c.Seed != 0 {
			p.Seed = c.Seed
		}
		if c.Initial.isSet() {
			p.X0, p.Y0, p.Z0 = c.Initial.X, c.Initial.Y, c.Initial.Z
		}
		if len(c.Constants) > 0 {
			p.Constants = attractor.Constants(c.Constants)
		}
		return p

	case terrain.Params:
		if c.Width > 0 && c.Height > 0 {
			p.Width, p.Height = c.Width, c.Height
		}
		if c.Roughness > 0 {
			p.Roughness = c.Roughness
		}
		if c.Seed != 0 {
			p.Seed = c.Seed
		}
		if c.Palette != "" {
			p.Palette = c.Palette
		}
		return p

	default:
		return base
	}
}
