// Package terrain renders fractal heightmaps. A diamond-square pass
// fills a 2^n+1 lattice with midpoint displacements whose amplitude
// shrinks by Roughness each round, and the result is colored through an
// elevation ramp.
package terrain

import (
	"math/rand"
	"time"

	"github.com/san-kum/fracgen/internal/fractal"
	"github.com/san-kum/fracgen/internal/palette"
)

// Params configures one heightmap render.
type Params struct {
	Width, Height int

	// Roughness scales the displacement amplitude down each subdivision
	// round. Values near zero give rolling hills, values near one
	// jagged peaks. Valid range is (0, 1).
	Roughness float64

	// Seed selects the displacement sequence. Zero draws a fresh seed
	// from the clock; any other value reproduces the same terrain.
	Seed int64

	Palette string
}

func (p Params) Budget() int      { return rounds(lattice(p.Width, p.Height)) }
func (p Params) Size() (int, int) { return p.Width, p.Height }

func (p Params) WithSize(w, h int) fractal.Params {
	p.Width, p.Height = w, h
	return p
}

// lattice returns the smallest 2^n+1 grid side covering both extents.
func lattice(w, h int) int {
	m := w
	if h > m {
		m = h
	}
	side := 3
	for side < m {
		side = side*2 - 1
	}
	return side
}

// rounds is the number of subdivision rounds that fill a lattice of the
// given side, log2(side-1).
func rounds(side int) int {
	n := 0
	for s := side - 1; s > 1; s /= 2 {
		n++
	}
	return n
}

func sanitize(p fractal.Params, defaults Params) Params {
	tp, ok := p.(Params)
	if !ok {
		return defaults
	}
	if tp.Width < 1 || tp.Height < 1 {
		tp.Width, tp.Height = defaults.Width, defaults.Height
	}
	if tp.Roughness <= 0 || tp.Roughness >= 1 {
		tp.Roughness = defaults.Roughness
	}
	if tp.Palette == "" {
		tp.Palette = defaults.Palette
	}
	return tp
}

// heightmap is a square 2^n+1 lattice of elevations.
type heightmap struct {
	side int
	v    []float64
}

func newHeightmap(side int) *heightmap {
	return &heightmap{side: side, v: make([]float64, side*side)}
}

func (m *heightmap) at(x, y int) float64     { return m.v[y*m.side+x] }
func (m *heightmap) set(x, y int, h float64) { m.v[y*m.side+x] = h }

// fill runs diamond-square to completion. onRound fires after each
// round with the 1-based round number, rounds(side) in total.
func (m *heightmap) fill(rng *rand.Rand, roughness float64, onRound func(round int)) {
	side := m.side
	m.set(0, 0, disp(rng, 1))
	m.set(side-1, 0, disp(rng, 1))
	m.set(0, side-1, disp(rng, 1))
	m.set(side-1, side-1, disp(rng, 1))

	amp := 1.0
	round := 0
	for step := side - 1; step > 1; step /= 2 {
		half := step / 2

		for y := half; y < side; y += step {
			for x := half; x < side; x += step {
				avg := (m.at(x-half, y-half) + m.at(x+half, y-half) +
					m.at(x-half, y+half) + m.at(x+half, y+half)) / 4
				m.set(x, y, avg+disp(rng, amp))
			}
		}

		// Rows on the coarse grid take square centers offset by half,
		// rows between them start at the border.
		for y := 0; y < side; y += half {
			x0 := half
			if (y/half)%2 == 1 {
				x0 = 0
			}
			for x := x0; x < side; x += step {
				m.square(x, y, half, disp(rng, amp))
			}
		}

		amp *= roughness
		round++
		onRound(round)
	}
}

// square sets (x, y) to the mean of its orthogonal neighbors at
// distance half plus a displacement. Border points average only the
// neighbors that exist.
func (m *heightmap) square(x, y, half int, d float64) {
	var sum float64
	var n int
	if x-half >= 0 {
		sum += m.at(x-half, y)
		n++
	}
	if x+half < m.side {
		sum += m.at(x+half, y)
		n++
	}
	if y-half >= 0 {
		sum += m.at(x, y-half)
		n++
	}
	if y+half < m.side {
		sum += m.at(x, y+half)
		n++
	}
	m.set(x, y, sum/float64(n)+d)
}

// rangeIn returns the elevation extremes over the top-left w x h crop.
func (m *heightmap) rangeIn(w, h int) (lo, hi float64) {
	lo, hi = m.at(0, 0), m.at(0, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := m.at(x, y)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

func disp(rng *rand.Rand, amp float64) float64 { return (rng.Float64()*2 - 1) * amp }

// Generator renders plasma-style terrain rasters.
type Generator struct {
	defaults Params
}

func New() *Generator {
	return &Generator{defaults: Params{Width: 800, Height: 600, Roughness: 0.55, Palette: "terrain"}}
}

func (g *Generator) Name() string                  { return "terrain" }
func (g *Generator) Kind() fractal.Kind            { return fractal.KindRaster }
func (g *Generator) DefaultParams() fractal.Params { return g.defaults }

func (g *Generator) Generate(p fractal.Params, report fractal.ProgressFunc) fractal.Output {
	return fractal.RasterOutput(g.GenerateRaster(p, report))
}

func (g *Generator) GenerateRaster(p fractal.Params, report fractal.ProgressFunc) *fractal.Raster {
	tp := sanitize(p, g.defaults)

	seed := tp.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	side := lattice(tp.Width, tp.Height)
	total := rounds(side)
	hm := newHeightmap(side)
	hm.fill(rng, tp.Roughness, func(round int) {
		if report != nil {
			report(float64(round) / float64(total+1))
		}
	})

	// Normalize over the visible crop so the ramp spans the image.
	r := fractal.NewRaster(tp.Width, tp.Height)
	pal := palette.Get(tp.Palette)
	lo, hi := hm.rangeIn(tp.Width, tp.Height)
	span := hi - lo
	for y := 0; y < tp.Height; y++ {
		for x := 0; x < tp.Width; x++ {
			t := 0.5
			if span > fractal.Epsilon {
				t = (hm.at(x, y) - lo) / span
			}
			r.Set(x, y, pal.At01(t))
		}
	}
	if report != nil {
		report(1.0)
	}
	return r
}
