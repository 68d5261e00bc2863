package escape

import (
	"image/color"
	"math"
	"math/cmplx"

	"github.com/san-kum/fracgen/internal/fractal"
	"github.com/san-kum/fracgen/internal/palette"
)

// Newton renders basins of attraction for the roots of z³ − 1 under
// Newton's method. Pixels are colored by the root the orbit converges
// to, darkened by the number of steps taken; orbits that never converge
// within budget render pure black.
type Newton struct {
	defaults Params
}

func NewNewton() *Newton {
	return &Newton{Params{
		Width: 800, Height: 600, Iterations: 64,
		Min: complex(-2.0, 1.5), Max: complex(2.0, -1.5),
		Palette: "rainbow",
		Bailout: 4.0,
	}}
}

var newtonRoots = [3]complex128{
	1,
	complex(-0.5, math.Sqrt(3)/2),
	complex(-0.5, -math.Sqrt(3)/2),
}

const newtonTol = 1e-6

func (g *Newton) Name() string                  { return "newton" }
func (g *Newton) Kind() fractal.Kind            { return fractal.KindRaster }
func (g *Newton) DefaultParams() fractal.Params { return g.defaults }

func (g *Newton) Generate(p fractal.Params, report fractal.ProgressFunc) fractal.Output {
	return fractal.RasterOutput(g.GenerateRaster(p, report))
}

func (g *Newton) GenerateRaster(p fractal.Params, report fractal.ProgressFunc) *fractal.Raster {
	ep := sanitize(p, g.defaults)
	return renderPlane(ep, report, func(point complex128) color.RGBA {
		root, count := classify(point, ep.Iterations)
		return palette.Root(root, len(newtonRoots), count, ep.Iterations)
	})
}

// classify runs Newton's method from z until the orbit lands within
// newtonTol of a root, returning the root index and the step count.
// root is -1 when the budget runs out first. The derivative 3z² is
// floored at Epsilon so the origin cannot divide by zero.
func classify(z complex128, budget int) (root, count int) {
	for n := 0; n < budget; n++ {
		for i, r := range newtonRoots {
			if cmplx.Abs(z-r) < newtonTol {
				return i, n
			}
		}
		d := 3 * z * z
		if cmplx.Abs(d) < fractal.Epsilon {
			d = complex(fractal.Epsilon, 0)
		}
		z -= (z*z*z - 1) / d
	}
	return -1, budget
}
