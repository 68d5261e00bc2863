package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/san-kum/fracgen/internal/attractor"
	"github.com/san-kum/fracgen/internal/escape"
	"github.com/san-kum/fracgen/internal/lsystem"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Generator != DefaultGenerator {
		t.Errorf("generator = %q, want %q", cfg.Generator, DefaultGenerator)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, DefaultWidth, DefaultHeight)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("output = %q, want %q", cfg.Output, DefaultOutput)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	cfg := &Config{
		Generator:  "julia",
		Width:      320,
		Height:     240,
		Iterations: 128,
		Palette:    "ice",
		Julia:      JuliaConfig{Re: -0.123, Im: 0.745},
		Constants:  map[string]float64{"a": 1.4},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Generator != "julia" || got.Width != 320 || got.Height != 240 {
		t.Errorf("loaded %q %dx%d", got.Generator, got.Width, got.Height)
	}
	if got.Julia != cfg.Julia {
		t.Errorf("julia = %+v, want %+v", got.Julia, cfg.Julia)
	}
	if got.Constants["a"] != 1.4 {
		t.Errorf("constants = %v", got.Constants)
	}
}

func TestLoadKeepsDefaultsForAbsentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("iterations: 99\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Iterations != 99 {
		t.Errorf("iterations = %d, want 99", cfg.Iterations)
	}
	if cfg.Generator != DefaultGenerator || cfg.Width != DefaultWidth {
		t.Errorf("defaults lost: generator=%q width=%d", cfg.Generator, cfg.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyEscape(t *testing.T) {
	cfg := &Config{
		Width: 100, Height: 50, Iterations: 77,
		Window:  WindowConfig{MinRe: -1, MinIm: 1, MaxRe: 1, MaxIm: -1},
		Palette: "fire",
	}
	p := cfg.Apply(escape.NewMandelbrot().DefaultParams()).(escape.Params)
	if p.Width != 100 || p.Height != 50 {
		t.Errorf("size = %dx%d", p.Width, p.Height)
	}
	if p.Iterations != 77 {
		t.Errorf("iterations = %d", p.Iterations)
	}
	if p.Min != complex(-1, 1) || p.Max != complex(1, -1) {
		t.Errorf("window = %v %v", p.Min, p.Max)
	}
	if p.Palette != "fire" {
		t.Errorf("palette = %q", p.Palette)
	}
}

func TestApplyZeroFieldsKeepDefaults(t *testing.T) {
	def := escape.NewMandelbrot().DefaultParams().(escape.Params)
	p := (&Config{}).Apply(def).(escape.Params)
	if p != def {
		t.Errorf("empty config changed params: %+v != %+v", p, def)
	}
}

func TestApplyLSystemDepth(t *testing.T) {
	p := (&Config{Depth: 4}).Apply(lsystem.NewKoch().DefaultParams()).(lsystem.Params)
	if p.Depth != 4 {
		t.Errorf("depth = %d, want 4", p.Depth)
	}
}

func TestApplyAttractorConstants(t *testing.T) {
	cfg := &Config{
		Iterations: 500,
		Dt:         0.002,
		Constants:  map[string]float64{"sigma": 12},
	}
	p := cfg.Apply(attractor.NewLorenz().DefaultParams()).(attractor.Params)
	if p.Iterations != 500 || p.Dt != 0.002 {
		t.Errorf("iterations=%d dt=%v", p.Iterations, p.Dt)
	}
	if p.Constants["sigma"] != 12 {
		t.Errorf("constants = %v", p.Constants)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("mandelbrot", "seahorse")
	if cfg == nil {
		t.Fatal("seahorse preset missing")
	}
	if !cfg.Window.isSet() {
		t.Error("seahorse preset has no window")
	}
	if GetPreset("mandelbrot", "nope") != nil {
		t.Error("unknown preset should be nil")
	}
	if GetPreset("nope", "seahorse") != nil {
		t.Error("unknown generator should be nil")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("julia")
	if len(names) == 0 {
		t.Fatal("no julia presets")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("expected sorted preset names, got %v", names)
	}
	if ListPresets("nope") != nil {
		t.Error("unknown generator should list nil")
	}
}

func TestPresetsNameTheirGenerator(t *testing.T) {
	for gen, byName := range Presets {
		for name, cfg := range byName {
			if cfg.Generator != gen {
				t.Errorf("preset %s/%s names generator %q", gen, name, cfg.Generator)
			}
		}
	}
}
