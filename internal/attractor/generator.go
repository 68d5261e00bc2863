package attractor

import (
	"math/rand"
	"time"

	"github.com/san-kum/fracgen/internal/fractal"
)

const progressBands = 16

// place maps a projected state into the pixel plane. ok is false for
// points that land outside; those are dropped, never clamped. NaNs fail
// every comparison and drop the same way.
func place(u, v float64, p Params) (fractal.Pt, bool) {
	s := float64(p.Width)
	if p.Height < p.Width {
		s = float64(p.Height)
	}
	s *= p.Scale
	x := float64(p.Width)/2 + u*s
	y := float64(p.Height)/2 - v*s
	if !(x >= 0 && x < float64(p.Width) && y >= 0 && y < float64(p.Height)) {
		return fractal.Pt{}, false
	}
	return fractal.Pt{X: x, Y: y}, true
}

func reportBand(report fractal.ProgressFunc, i, total int) {
	if report == nil || total < 1 {
		return
	}
	band := total / progressBands
	if band < 1 {
		band = 1
	}
	if (i+1)%band == 0 && i+1 != total {
		report(float64(i+1) / float64(total))
	}
}

// FlowGenerator integrates a continuous system with explicit Euler
// steps and scatters the trajectory.
type FlowGenerator struct {
	name     string
	build    func(c Constants) flow
	defaults Params
}

func NewLorenz() *FlowGenerator {
	return &FlowGenerator{
		name: "lorenz",
		build: func(c Constants) flow {
			return lorenz{c.get("sigma", 10), c.get("rho", 28), c.get("beta", 8.0 / 3.0)}
		},
		defaults: Params{Iterations: 20000, Width: 800, Height: 600, Dt: 0.005, Scale: 1},
	}
}

func NewRossler() *FlowGenerator {
	return &FlowGenerator{
		name: "rossler",
		build: func(c Constants) flow {
			return rossler{c.get("a", 0.2), c.get("b", 0.2), c.get("c", 5.7)}
		},
		defaults: Params{Iterations: 30000, Width: 800, Height: 600, Dt: 0.02, Scale: 1},
	}
}

func (g *FlowGenerator) Name() string                  { return g.name }
func (g *FlowGenerator) Kind() fractal.Kind            { return fractal.KindPoints }
func (g *FlowGenerator) DefaultParams() fractal.Params { return g.defaults }

func (g *FlowGenerator) Generate(p fractal.Params, report fractal.ProgressFunc) fractal.Output {
	return fractal.PointsOutput(g.GeneratePoints(p, report))
}

func (g *FlowGenerator) GeneratePoints(p fractal.Params, report fractal.ProgressFunc) []fractal.Pt {
	ap := sanitize(p, g.defaults)
	sys := g.build(ap.Constants)

	v := ap.startState(sys.start())
	for i := 0; i < sys.warmup(); i++ {
		v = eulerStep(sys, v, ap.Dt)
	}

	pts := make([]fractal.Pt, 0, ap.Iterations)
	for i := 0; i < ap.Iterations; i++ {
		v = eulerStep(sys, v, ap.Dt)
		u, q := sys.project(v)
		if pt, ok := place(u, q, ap); ok {
			pts = append(pts, pt)
		}
		reportBand(report, i, ap.Iterations)
	}
	if report != nil {
		report(1.0)
	}
	return pts
}

// MapGenerator iterates a discrete map directly.
type MapGenerator struct {
	name     string
	build    func(c Constants) dmap
	defaults Params
}

func NewHenon() *MapGenerator {
	return &MapGenerator{
		name: "henon",
		build: func(c Constants) dmap {
			return henon{c.get("a", 1.4), c.get("b", 0.3)}
		},
		defaults: Params{Iterations: 20000, Width: 800, Height: 600, Dt: 1, Scale: 0.9},
	}
}

func NewGingerbreadman() *MapGenerator {
	return &MapGenerator{
		name:     "gingerbreadman",
		build:    func(Constants) dmap { return gingerbreadman{} },
		defaults: Params{Iterations: 50000, Width: 800, Height: 600, Dt: 1, Scale: 1},
	}
}

func NewDeJong() *MapGenerator {
	return &MapGenerator{
		name: "dejong",
		build: func(c Constants) dmap {
			return dejong{c.get("a", -2.0), c.get("b", -2.0), c.get("c", -1.2), c.get("d", 2.0)}
		},
		defaults: Params{Iterations: 60000, Width: 800, Height: 600, Dt: 1, Scale: 1},
	}
}

func (g *MapGenerator) Name() string                  { return g.name }
func (g *MapGenerator) Kind() fractal.Kind            { return fractal.KindPoints }
func (g *MapGenerator) DefaultParams() fractal.Params { return g.defaults }

func (g *MapGenerator) Generate(p fractal.Params, report fractal.ProgressFunc) fractal.Output {
	return fractal.PointsOutput(g.GeneratePoints(p, report))
}

func (g *MapGenerator) GeneratePoints(p fractal.Params, report fractal.ProgressFunc) []fractal.Pt {
	ap := sanitize(p, g.defaults)
	sys := g.build(ap.Constants)

	v := ap.startState(sys.start())
	for i := 0; i < sys.warmup(); i++ {
		v = sys.next(v)
	}

	pts := make([]fractal.Pt, 0, ap.Iterations)
	for i := 0; i < ap.Iterations; i++ {
		v = sys.next(v)
		u, q := sys.project(v)
		if pt, ok := place(u, q, ap); ok {
			pts = append(pts, pt)
		}
		reportBand(report, i, ap.Iterations)
	}
	if report != nil {
		report(1.0)
	}
	return pts
}

// affine is one contraction x' = ax + by + e, y' = cx + dy + f chosen
// with weight w.
type affine struct {
	a, b, c, d, e, f float64
	w                float64
}

// IFSGenerator plays the chaos game over a weighted affine system.
type IFSGenerator struct {
	name     string
	maps     []affine
	skip     int
	project  func(v vec) (float64, float64)
	defaults Params
}

func NewFern() *IFSGenerator {
	return &IFSGenerator{
		name: "fern",
		maps: []affine{
			{0, 0, 0, 0.16, 0, 0, 0.01},
			{0.85, 0.04, -0.04, 0.85, 0, 1.6, 0.85},
			{0.2, -0.26, 0.23, 0.22, 0, 1.6, 0.07},
			{-0.15, 0.28, 0.26, 0.24, 0, 0.44, 0.07},
		},
		skip: 10,
		project: func(v vec) (float64, float64) {
			return v[0] / 6, (v[1] - 5) / 11
		},
		defaults: Params{Iterations: 30000, Width: 800, Height: 600, Dt: 1, Scale: 1},
	}
}

func (g *IFSGenerator) Name() string                  { return g.name }
func (g *IFSGenerator) Kind() fractal.Kind            { return fractal.KindPoints }
func (g *IFSGenerator) DefaultParams() fractal.Params { return g.defaults }

func (g *IFSGenerator) Generate(p fractal.Params, report fractal.ProgressFunc) fractal.Output {
	return fractal.PointsOutput(g.GeneratePoints(p, report))
}

func (g *IFSGenerator) GeneratePoints(p fractal.Params, report fractal.ProgressFunc) []fractal.Pt {
	ap := sanitize(p, g.defaults)

	seed := ap.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var v vec
	step := func() {
		r := rng.Float64()
		for _, m := range g.maps {
			if r -= m.w; r < 0 {
				v = vec{m.a*v[0] + m.b*v[1] + m.e, m.c*v[0] + m.d*v[1] + m.f, 0}
				return
			}
		}
		last := g.maps[len(g.maps)-1]
		v = vec{last.a*v[0] + last.b*v[1] + last.e, last.c*v[0] + last.d*v[1] + last.f, 0}
	}

	for i := 0; i < g.skip; i++ {
		step()
	}

	pts := make([]fractal.Pt, 0, ap.Iterations)
	for i := 0; i < ap.Iterations; i++ {
		step()
		u, q := g.project(v)
		if pt, ok := place(u, q, ap); ok {
			pts = append(pts, pt)
		}
		reportBand(report, i, ap.Iterations)
	}
	if report != nil {
		report(1.0)
	}
	return pts
}
