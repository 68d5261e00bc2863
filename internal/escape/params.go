package escape

import (
	"math"

	"github.com/san-kum/fracgen/internal/fractal"
)

// Params configures one escape-time render.
type Params struct {
	Width, Height int
	Iterations    int

	// Min and Max are opposite corners of the complex-plane window.
	// Pixel (0,0) maps exactly to Min, pixel (w-1,h-1) exactly to Max.
	Min, Max complex128

	// C is the fixed orbit constant for Julia-style families. Families
	// that derive the constant from the plane point ignore it.
	C complex128

	// Bailout is the squared-magnitude escape threshold.
	Bailout float64

	Palette string
}

func (p Params) Budget() int      { return p.Iterations }
func (p Params) Size() (int, int) { return p.Width, p.Height }

func (p Params) WithSize(w, h int) fractal.Params {
	p.Width, p.Height = w, h
	return p
}

// Validate reports window geometry errors. Scalar fields are not
// checked here: generators replace out-of-range scalars with family
// defaults on their own.
func (p Params) Validate() error {
	if math.Abs(real(p.Max)-real(p.Min)) < fractal.Epsilon ||
		math.Abs(imag(p.Max)-imag(p.Min)) < fractal.Epsilon {
		return &fractal.ParamError{Field: "window", Value: [2]complex128{p.Min, p.Max}, Wrapped: fractal.ErrZeroAreaWindow}
	}
	return nil
}

// sanitize coerces arbitrary framework params into a usable Params,
// falling back to the family defaults field by field.
func sanitize(p fractal.Params, defaults Params) Params {
	ep, ok := p.(Params)
	if !ok {
		return defaults
	}
	if ep.Width < 1 || ep.Height < 1 {
		ep.Width, ep.Height = defaults.Width, defaults.Height
	}
	if ep.Iterations < 1 {
		ep.Iterations = defaults.Iterations
	}
	if ep.Bailout <= 0 {
		ep.Bailout = defaults.Bailout
	}
	if ep.Validate() != nil {
		fractal.Logger().Warn("degenerate window, using family default", "min", ep.Min, "max", ep.Max)
		ep.Min, ep.Max = defaults.Min, defaults.Max
	}
	return ep
}
