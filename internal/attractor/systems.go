package attractor

import "math"

// vec is a point in a system's phase space. Two-dimensional families
// leave the last component zero.
type vec [3]float64

// flow is a continuous system dv/dt = derive(v). warmup states are
// integrated and discarded before sampling begins.
type flow interface {
	derive(v vec) vec
	start() vec
	warmup() int
	project(v vec) (x, y float64)
}

// dmap is a discrete system v' = next(v).
type dmap interface {
	next(v vec) vec
	start() vec
	warmup() int
	project(v vec) (x, y float64)
}

func eulerStep(f flow, v vec, dt float64) vec {
	d := f.derive(v)
	return vec{v[0] + dt*d[0], v[1] + dt*d[1], v[2] + dt*d[2]}
}

type lorenz struct{ sigma, rho, beta float64 }

func (l lorenz) derive(v vec) vec {
	return vec{l.sigma * (v[1] - v[0]), v[0]*(l.rho-v[2]) - v[1], v[0]*v[1] - l.beta*v[2]}
}
func (l lorenz) start() vec  { return vec{1, 1, 1} }
func (l lorenz) warmup() int { return 100 }

// The butterfly reads best on the x-z plane.
func (l lorenz) project(v vec) (float64, float64) { return v[0] / 50, (v[2] - 25) / 55 }

type rossler struct{ a, b, c float64 }

func (r rossler) derive(v vec) vec {
	return vec{-v[1] - v[2], v[0] + r.a*v[1], r.b + v[2]*(v[0]-r.c)}
}
func (r rossler) start() vec                       { return vec{1, 1, 1} }
func (r rossler) warmup() int                      { return 200 }
func (r rossler) project(v vec) (float64, float64) { return v[0] / 26, v[1] / 26 }

type henon struct{ a, b float64 }

func (h henon) next(v vec) vec {
	return vec{1 - h.a*v[0]*v[0] + v[1], h.b * v[0], 0}
}
func (h henon) start() vec                       { return vec{0, 0, 0} }
func (h henon) warmup() int                      { return 20 }
func (h henon) project(v vec) (float64, float64) { return v[0] / 3, v[1] }

type gingerbreadman struct{}

func (gingerbreadman) next(v vec) vec {
	return vec{1 - v[1] + math.Abs(v[0]), v[0], 0}
}
func (gingerbreadman) start() vec  { return vec{-0.1, 0, 0} }
func (gingerbreadman) warmup() int { return 0 }
func (gingerbreadman) project(v vec) (float64, float64) {
	return (v[0] - 2) / 13, (v[1] - 2) / 13
}

type dejong struct{ a, b, c, d float64 }

func (j dejong) next(v vec) vec {
	return vec{
		trig.Sin(j.a*v[1]) - trig.Cos(j.b*v[0]),
		trig.Sin(j.c*v[0]) - trig.Cos(j.d*v[1]),
		0,
	}
}
func (j dejong) start() vec                       { return vec{0, 0, 0} }
func (j dejong) warmup() int                      { return 0 }
func (j dejong) project(v vec) (float64, float64) { return v[0] / 4.4, v[1] / 4.4 }
