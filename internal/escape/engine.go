package escape

import (
	"image/color"
	"math"

	"github.com/san-kum/fracgen/internal/fractal"
	"github.com/san-kum/fracgen/internal/palette"
)

// formula defines one escape-time family: how a plane point seeds the
// orbit and how the orbit steps.
type formula struct {
	name string
	init func(point, c complex128) (z, k complex128)
	step func(z, k complex128) complex128
}

var (
	mandelbrot = formula{
		name: "mandelbrot",
		init: func(point, _ complex128) (complex128, complex128) { return 0, point },
		step: func(z, k complex128) complex128 { return z*z + k },
	}

	julia = formula{
		name: "julia",
		init: func(point, c complex128) (complex128, complex128) { return point, c },
		step: func(z, k complex128) complex128 { return z*z + k },
	}

	tricorn = formula{
		name: "tricorn",
		init: func(point, _ complex128) (complex128, complex128) { return 0, point },
		step: func(z, k complex128) complex128 {
			z = complex(real(z), -imag(z))
			return z*z + k
		},
	}

	burningShip = formula{
		name: "burningship",
		init: func(point, _ complex128) (complex128, complex128) { return 0, point },
		step: func(z, k complex128) complex128 {
			z = complex(math.Abs(real(z)), math.Abs(imag(z)))
			return z*z + k
		},
	}
)

// Generator renders one escape-time family.
type Generator struct {
	formula  formula
	defaults Params
}

func NewMandelbrot() *Generator {
	return &Generator{mandelbrot, Params{
		Width: 800, Height: 600, Iterations: 256,
		Min: complex(-2.6, 1.5), Max: complex(1.4, -1.5),
		Bailout: 4.0, Palette: "rainbow",
	}}
}

func NewJulia() *Generator {
	return &Generator{julia, Params{
		Width: 800, Height: 600, Iterations: 256,
		Min: complex(-2.0, 1.5), Max: complex(2.0, -1.5),
		C:       complex(-0.7, 0.27015),
		Bailout: 4.0, Palette: "rainbow",
	}}
}

func NewTricorn() *Generator {
	return &Generator{tricorn, Params{
		Width: 800, Height: 600, Iterations: 256,
		Min: complex(-2.2, 1.65), Max: complex(2.2, -1.65),
		Bailout: 4.0, Palette: "ice",
	}}
}

func NewBurningShip() *Generator {
	return &Generator{burningShip, Params{
		Width: 800, Height: 600, Iterations: 256,
		Min: complex(-2.2, -1.9), Max: complex(1.8, 1.1),
		Bailout: 4.0, Palette: "fire",
	}}
}

func (g *Generator) Name() string                  { return g.formula.name }
func (g *Generator) Kind() fractal.Kind            { return fractal.KindRaster }
func (g *Generator) DefaultParams() fractal.Params { return g.defaults }

func (g *Generator) Generate(p fractal.Params, report fractal.ProgressFunc) fractal.Output {
	return fractal.RasterOutput(g.GenerateRaster(p, report))
}

func (g *Generator) GenerateRaster(p fractal.Params, report fractal.ProgressFunc) *fractal.Raster {
	ep := sanitize(p, g.defaults)
	pal := palette.Get(ep.Palette)
	return renderPlane(ep, report, func(point complex128) color.RGBA {
		z, k := g.formula.init(point, ep.C)
		n := 0
		for n < ep.Iterations && real(z)*real(z)+imag(z)*imag(z) <= ep.Bailout {
			z = g.formula.step(z, k)
			n++
		}
		return pal.At(n, ep.Iterations)
	})
}

const progressBands = 16

// renderPlane walks the pixel grid row-major, mapping each pixel to its
// plane point with both window corners hit exactly, and reports
// progress at row-band boundaries.
func renderPlane(p Params, report fractal.ProgressFunc, at func(point complex128) color.RGBA) *fractal.Raster {
	w, h := p.Width, p.Height
	img := fractal.NewRaster(w, h)
	band := h / progressBands
	if band < 1 {
		band = 1
	}
	for y := 0; y < h; y++ {
		im := lerp(imag(p.Min), imag(p.Max), frac(y, h))
		for x := 0; x < w; x++ {
			re := lerp(real(p.Min), real(p.Max), frac(x, w))
			img.Set(x, y, at(complex(re, im)))
		}
		if report != nil && ((y+1)%band == 0 || y == h-1) {
			report(float64(y+1) / float64(h))
		}
	}
	return img
}

// frac positions index i in [0, 1] with both endpoints exact. A
// single-pixel axis collapses to the near corner.
func frac(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
