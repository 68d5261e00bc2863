// Package progressive layers staged preview rendering over a raster
// family. Stages run at halved extents, coarsest first, and the final
// stage is the full render itself.
package progressive

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/fracgen/internal/fractal"
)

const defaultLevels = 3

// Driver schedules the stages of one progressive render.
type Driver struct {
	// Levels is the number of halvings before the full-size stage.
	// Level k of n renders at w>>(n-k) by h>>(n-k).
	Levels int

	// Upscale stretches intermediate stages to the requested extent
	// with nearest-neighbor sampling, so every stage arrives at the
	// same size.
	Upscale bool
}

// DefaultDriver previews three halvings and stretches every stage to
// the final extent.
func DefaultDriver() Driver { return Driver{Levels: defaultLevels, Upscale: true} }

type extent struct{ w, h int }

// stageSizes lists the stage extents coarsest first, ending at (w, h).
// Halvings that collapse below one pixel clamp to one, and duplicate
// extents from over-halving small requests are dropped.
func stageSizes(w, h, levels int) []extent {
	var out []extent
	for k := levels; k >= 0; k-- {
		sw, sh := w>>k, h>>k
		if sw < 1 {
			sw = 1
		}
		if sh < 1 {
			sh = 1
		}
		if n := len(out); n > 0 && out[n-1] == (extent{sw, sh}) {
			continue
		}
		out = append(out, extent{sw, sh})
	}
	return out
}

// upscale stretches r to w by h with nearest-neighbor sampling.
func upscale(r *fractal.Raster, w, h int) *fractal.Raster {
	if r.W == w && r.H == h {
		return r
	}
	dst := fractal.NewRaster(w, h)
	src := r.Image()
	xdraw.NearestNeighbor.Scale(dst.Image(), image.Rect(0, 0, w, h), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Generator wraps a raster family with staged rendering. Generate and
// GenerateRaster pass straight through to the wrapped family, so the
// wrapper can stand in for it anywhere.
type Generator struct {
	inner  fractal.RasterGenerator
	driver Driver
}

// Attach wraps g. A driver with no levels set previews defaultLevels
// halvings.
func Attach(g fractal.RasterGenerator, d Driver) *Generator {
	if d.Levels < 1 {
		d.Levels = defaultLevels
	}
	return &Generator{inner: g, driver: d}
}

func (g *Generator) Kind() fractal.Kind            { return g.inner.Kind() }
func (g *Generator) DefaultParams() fractal.Params { return g.inner.DefaultParams() }

// Inner returns the wrapped family, for callers that want to re-attach
// with different driver settings.
func (g *Generator) Inner() fractal.RasterGenerator { return g.inner }

func (g *Generator) Generate(p fractal.Params, report fractal.ProgressFunc) fractal.Output {
	return g.inner.Generate(p, report)
}

func (g *Generator) GenerateRaster(p fractal.Params, report fractal.ProgressFunc) *fractal.Raster {
	return g.inner.GenerateRaster(p, report)
}

// GenerateProgressive renders every stage in order on the calling
// goroutine. Completion estimates weight stages by pixel count, so the
// cheap early previews arrive with small estimates and the final stage
// lands on exactly 1. The final stage output equals Generate with the
// same parameters.
func (g *Generator) GenerateProgressive(p fractal.Params, onStage fractal.StageFunc) {
	if onStage == nil {
		g.inner.Generate(p, nil)
		return
	}

	w, h := p.Size()
	if w < 1 || h < 1 {
		w, h = g.inner.DefaultParams().Size()
	}
	sizes := stageSizes(w, h, g.driver.Levels)

	total := 0
	for _, s := range sizes {
		total += s.w * s.h
	}

	done := 0
	for i, s := range sizes {
		var r *fractal.Raster
		if i == len(sizes)-1 {
			r = g.inner.GenerateRaster(p, nil)
		} else {
			r = g.inner.GenerateRaster(p.WithSize(s.w, s.h), nil)
			if g.driver.Upscale {
				r = upscale(r, w, h)
			}
		}
		done += s.w * s.h
		onStage(fractal.RasterOutput(r), float64(done)/float64(total))
	}
}
