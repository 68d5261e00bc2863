package fractal

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Kind identifies the geometric form of a generator's output.
type Kind int

const (
	KindRaster Kind = iota
	KindOutline
	KindPoints
)

func (k Kind) String() string {
	switch k {
	case KindRaster:
		return "raster"
	case KindOutline:
		return "outline"
	case KindPoints:
		return "points"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Pt is a point in the output pixel plane.
type Pt struct {
	X, Y float64
}

func (p Pt) Add(q Pt) Pt      { return Pt{p.X + q.X, p.Y + q.Y} }
func (p Pt) Sub(q Pt) Pt      { return Pt{p.X - q.X, p.Y - q.Y} }
func (p Pt) Mul(f float64) Pt { return Pt{p.X * f, p.Y * f} }
func (p Pt) Length() float64  { return math.Hypot(p.X, p.Y) }

// Rotate returns p rotated about the origin by rad radians.
func (p Pt) Rotate(rad float64) Pt {
	sin, cos := math.Sincos(rad)
	return Pt{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// Lerp interpolates from p to q, with t=0 yielding p and t=1 yielding q.
func (p Pt) Lerp(q Pt, t float64) Pt {
	return Pt{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Segment is a straight stroke between two points.
type Segment struct {
	A, B Pt
}

func (s Segment) Length() float64 { return s.B.Sub(s.A).Length() }

// Outline is an ordered list of strokes. The order is meaningful to
// pen-style consumers; consecutive segments need not be contiguous.
type Outline []Segment

// Bounds returns the axis-aligned bounding box over all endpoints.
// ok is false for an empty outline.
func (o Outline) Bounds() (min, max Pt, ok bool) {
	if len(o) == 0 {
		return Pt{}, Pt{}, false
	}
	min, max = o[0].A, o[0].A
	for _, s := range o {
		for _, p := range [2]Pt{s.A, s.B} {
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	return min, max, true
}

// Epsilon below which a span counts as degenerate. Guards divisions in
// geometric normalization.
const Epsilon = 1e-12

// FitTo uniformly scales and translates the outline so that its bounding
// box fills a w by h pixel area, keeping a margin fraction of the extent
// free on every side. Aspect ratio is preserved. Degenerate outlines
// collapse to the center instead of dividing by a near-zero span.
func (o Outline) FitTo(w, h int, margin float64) Outline {
	min, max, ok := o.Bounds()
	if !ok || w < 1 || h < 1 {
		return o
	}
	if margin < 0 {
		margin = 0
	} else if margin > 0.45 {
		margin = 0.45
	}
	spanX := max.X - min.X
	spanY := max.Y - min.Y
	availW := float64(w) * (1 - 2*margin)
	availH := float64(h) * (1 - 2*margin)

	var scale float64
	switch {
	case spanX < Epsilon && spanY < Epsilon:
		scale = 0
	case spanX < Epsilon:
		scale = availH / spanY
	case spanY < Epsilon:
		scale = availW / spanX
	default:
		scale = availW / spanX
		if availH/spanY < scale {
			scale = availH / spanY
		}
	}

	cx, cy := (min.X+max.X)/2, (min.Y+max.Y)/2
	ox, oy := float64(w)/2, float64(h)/2
	place := func(p Pt) Pt {
		return Pt{(p.X-cx)*scale + ox, (p.Y-cy)*scale + oy}
	}

	fitted := make(Outline, len(o))
	for i, s := range o {
		fitted[i] = Segment{A: place(s.A), B: place(s.B)}
	}
	return fitted
}

// Raster is a w by h image, RGBA with 8 bits per channel, row-major,
// 4 bytes per pixel.
type Raster struct {
	W, H int
	Pix  []uint8
}

func NewRaster(w, h int) *Raster {
	return &Raster{W: w, H: h, Pix: make([]uint8, w*h*4)}
}

// Set writes one pixel. Out-of-range coordinates are ignored.
func (r *Raster) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return
	}
	i := (y*r.W + x) * 4
	r.Pix[i+0] = c.R
	r.Pix[i+1] = c.G
	r.Pix[i+2] = c.B
	r.Pix[i+3] = c.A
}

// At reads one pixel. Out-of-range coordinates read as zero.
func (r *Raster) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return color.RGBA{}
	}
	i := (y*r.W + x) * 4
	return color.RGBA{R: r.Pix[i+0], G: r.Pix[i+1], B: r.Pix[i+2], A: r.Pix[i+3]}
}

// Fill sets every pixel to c.
func (r *Raster) Fill(c color.RGBA) {
	for i := 0; i < len(r.Pix); i += 4 {
		r.Pix[i+0] = c.R
		r.Pix[i+1] = c.G
		r.Pix[i+2] = c.B
		r.Pix[i+3] = c.A
	}
}

// Image wraps the raster in an image.RGBA sharing the same pixel buffer.
// Writes through either view are visible in both.
func (r *Raster) Image() *image.RGBA {
	return &image.RGBA{Pix: r.Pix, Stride: r.W * 4, Rect: image.Rect(0, 0, r.W, r.H)}
}

// Output is the tagged result of one generation run. Exactly one payload
// field is set, matching Kind. Consumers switch on Kind and must not
// reach into payloads of other kinds.
type Output struct {
	Kind    Kind
	Raster  *Raster
	Outline Outline
	Points  []Pt
}

func RasterOutput(r *Raster) Output  { return Output{Kind: KindRaster, Raster: r} }
func OutlineOutput(o Outline) Output { return Output{Kind: KindOutline, Outline: o} }
func PointsOutput(ps []Pt) Output    { return Output{Kind: KindPoints, Points: ps} }
