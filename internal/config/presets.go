package config

import "sort"

// Presets holds named starting points per generator. Escape-time
// presets carry well-known window landmarks; the other kinds carry
// depth or iteration settings worth looking at.
var Presets = map[string]map[string]*Config{
	"mandelbrot": {
		"overview": {
			Generator: "mandelbrot", Iterations: 256,
			Window: WindowConfig{MinRe: -2.6, MinIm: 1.5, MaxRe: 1.4, MaxIm: -1.5},
		},
		"seahorse": {
			Generator: "mandelbrot", Iterations: 512,
			Window: WindowConfig{MinRe: -0.81, MinIm: 0.2, MaxRe: -0.69, MaxIm: 0.11},
		},
		"elephant": {
			Generator: "mandelbrot", Iterations: 512,
			Window: WindowConfig{MinRe: 0.25, MinIm: 0.055, MaxRe: 0.355, MaxIm: -0.025},
		},
		"spiral": {
			Generator: "mandelbrot", Iterations: 1024,
			Window: WindowConfig{MinRe: -0.7465, MinIm: 0.1115, MaxRe: -0.7445, MaxIm: 0.11},
		},
	},
	"julia": {
		"classic": {
			Generator: "julia", Iterations: 256,
			Julia: JuliaConfig{Re: -0.7, Im: 0.27015},
		},
		"dendrite": {
			Generator: "julia", Iterations: 256,
			Julia: JuliaConfig{Re: 0, Im: 1},
		},
		"rabbit": {
			Generator: "julia", Iterations: 256,
			Julia: JuliaConfig{Re: -0.123, Im: 0.745},
		},
		"siegel": {
			Generator: "julia", Iterations: 512,
			Julia: JuliaConfig{Re: -0.391, Im: -0.587},
		},
	},
	"burningship": {
		"overview": {
			Generator: "burningship", Iterations: 256,
			Window: WindowConfig{MinRe: -2.2, MinIm: -1.9, MaxRe: 1.8, MaxIm: 1.1},
		},
		"ship": {
			Generator: "burningship", Iterations: 512,
			Window: WindowConfig{MinRe: -1.8, MinIm: -0.09, MaxRe: -1.7, MaxIm: -0.01},
		},
	},
	"koch": {
		"coarse": {Generator: "koch", Depth: 2},
		"fine":   {Generator: "koch", Depth: 6},
	},
	"dragon": {
		"coarse": {Generator: "dragon", Depth: 8},
		"fine":   {Generator: "dragon", Depth: 14},
	},
	"tree": {
		"sparse": {Generator: "tree", Depth: 7, Angle: 35, Ratio: 0.65},
		"dense":  {Generator: "tree", Depth: 11, Angle: 22, Ratio: 0.75},
	},
	"lorenz": {
		"classic": {
			Generator: "lorenz", Iterations: 20000, Dt: 0.005,
			Constants: map[string]float64{"sigma": 10, "rho": 28, "beta": 8.0 / 3.0},
		},
		"sparse": {Generator: "lorenz", Iterations: 4000, Dt: 0.01},
	},
	"fern": {
		"classic": {Generator: "fern", Iterations: 60000},
		"quick":   {Generator: "fern", Iterations: 10000},
	},
	"terrain": {
		"rolling": {Generator: "terrain", Roughness: 0.5, Palette: "terrain"},
		"jagged":  {Generator: "terrain", Roughness: 0.85, Palette: "mono"},
	},
}

func GetPreset(generator, preset string) *Config {
	byName, ok := Presets[generator]
	if !ok {
		return nil
	}
	cfg, ok := byName[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(generator string) []string {
	byName, ok := Presets[generator]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
