// Package palette maps escape counts and normalized heights to colors.
//
// Palettes are either a hue wheel (counts wrap around the circle) or a
// gradient ramp over fixed color stops blended in Luv space. Every
// palette renders the in-set sentinel, a count that exhausted its
// budget, as pure black.
package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Black is the in-set sentinel color.
var Black = color.RGBA{A: 255}

type stop struct {
	col colorful.Color
	pos float64
}

// Palette maps normalized escape counts to colors.
type Palette struct {
	Name  string
	wheel bool
	stops []stop
}

// At maps an escape count against its budget. count >= budget is the
// in-set sentinel and always yields pure black, regardless of palette.
func (p Palette) At(count, budget int) color.RGBA {
	if budget < 1 || count < 0 || count >= budget {
		return Black
	}
	return p.At01(float64(count) / float64(budget))
}

// At01 maps t in [0, 1] directly. Wheel palettes wrap t around the hue
// circle; gradient palettes clamp it.
func (p Palette) At01(t float64) color.RGBA {
	if p.wheel {
		h := math.Mod(t, 1)
		if h < 0 {
			h++
		}
		return toRGBA(colorful.Hsv(h*360, 0.9, 1))
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	for i := 0; i < len(p.stops)-1; i++ {
		a, b := p.stops[i], p.stops[i+1]
		if t >= a.pos && t <= b.pos {
			f := 0.0
			if span := b.pos - a.pos; span > 0 {
				f = (t - a.pos) / span
			}
			return toRGBA(a.col.BlendLuv(b.col, f))
		}
	}
	return toRGBA(p.stops[len(p.stops)-1].col)
}

// Root colors a Newton-basin pixel: one hue per root, darkened by how
// long convergence took. idx < 0 means no convergence and is pure black.
func Root(idx, roots, count, budget int) color.RGBA {
	if idx < 0 || roots < 1 || budget < 1 {
		return Black
	}
	t := float64(count) / float64(budget)
	if t > 1 {
		t = 1
	}
	h := float64(idx) / float64(roots) * 360
	return toRGBA(colorful.Hsv(h, 0.85, 1-0.75*t))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hex(s string) colorful.Color {
	c, _ := colorful.Hex(s)
	return c
}

// Available palettes
var (
	Rainbow = Palette{Name: "rainbow", wheel: true}

	Fire = Palette{Name: "fire", stops: []stop{
		{hex("#000000"), 0},
		{hex("#7f1500"), 0.3},
		{hex("#ff4500"), 0.6},
		{hex("#ffd700"), 0.85},
		{hex("#ffffff"), 1},
	}}

	Ice = Palette{Name: "ice", stops: []stop{
		{hex("#000000"), 0},
		{hex("#0b2a6b"), 0.35},
		{hex("#1e90ff"), 0.65},
		{hex("#bfeaff"), 0.9},
		{hex("#ffffff"), 1},
	}}

	Mono = Palette{Name: "mono", stops: []stop{
		{hex("#000000"), 0},
		{hex("#ffffff"), 1},
	}}

	Terrain = Palette{Name: "terrain", stops: []stop{
		{hex("#0a1a5c"), 0},
		{hex("#2a63b8"), 0.3},
		{hex("#c2b280"), 0.42},
		{hex("#2e7d32"), 0.55},
		{hex("#8d8468"), 0.8},
		{hex("#ffffff"), 1},
	}}

	// All available palettes
	Palettes = []Palette{Rainbow, Fire, Ice, Mono, Terrain}
)

// Get returns a palette by name, falling back to Rainbow for unknown
// names.
func Get(name string) Palette {
	p, ok := Lookup(name)
	if !ok {
		return Rainbow
	}
	return p
}

// Lookup returns the palette and whether the name is known.
func Lookup(name string) (Palette, bool) {
	for _, p := range Palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Names returns the list of available palette names.
func Names() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}
