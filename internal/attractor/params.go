package attractor

import (
	"github.com/san-kum/fracgen/internal/fractal"
)

// Constants holds named family constants. Missing keys fall back to the
// family's classic values.
type Constants map[string]float64

func (c Constants) get(name string, def float64) float64 {
	if v, ok := c[name]; ok {
		return v
	}
	return def
}

// Params configures one point-cloud run. Budget is the number of
// sampled states; a budget of zero is valid and yields an empty cloud.
type Params struct {
	Iterations    int
	Width, Height int

	// Dt is the Euler time step. Discrete maps ignore it.
	Dt float64

	// Scale multiplies the family's base projection. 1 fills the
	// smaller output dimension.
	Scale float64

	// Seed drives chaos-game sampling. Zero draws a fresh seed per run;
	// deterministic families ignore it.
	Seed int64

	// X0, Y0, Z0 override the family's initial state when any is
	// nonzero. Chaos-game families ignore them.
	X0, Y0, Z0 float64

	Constants Constants
}

// startState picks the caller's initial state over the family default.
func (p Params) startState(def vec) vec {
	if p.X0 != 0 || p.Y0 != 0 || p.Z0 != 0 {
		return vec{p.X0, p.Y0, p.Z0}
	}
	return def
}

func (p Params) Budget() int      { return p.Iterations }
func (p Params) Size() (int, int) { return p.Width, p.Height }

func (p Params) WithSize(w, h int) fractal.Params {
	p.Width, p.Height = w, h
	return p
}

func sanitize(p fractal.Params, defaults Params) Params {
	ap, ok := p.(Params)
	if !ok {
		return defaults
	}
	if ap.Width < 1 || ap.Height < 1 {
		ap.Width, ap.Height = defaults.Width, defaults.Height
	}
	// Zero stays zero: an empty cloud is a valid result.
	if ap.Iterations < 0 {
		ap.Iterations = defaults.Iterations
	}
	if ap.Dt <= 0 {
		ap.Dt = defaults.Dt
	}
	if ap.Scale <= 0 {
		ap.Scale = defaults.Scale
	}
	return ap
}
