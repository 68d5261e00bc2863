package analysis

import (
	"math"

	"github.com/san-kum/fracgen/internal/fractal"
)

// BoxDimension estimates the fractal (box-counting) dimension of a
// point cloud inside a w by h pixel canvas.
//
// Algorithm:
//  1. Overlay grids of shrinking box size s
//  2. Count boxes N(s) containing at least one point
//  3. Fit the slope of log N against log(1/s) by least squares
//
// A filled area tends toward 2, a smooth curve toward 1, a strange
// attractor in between. Degenerate inputs return 0.
func BoxDimension(pts []fractal.Pt, w, h int) float64 {
	if len(pts) < 2 || w < 2 || h < 2 {
		return 0
	}

	ext := w
	if h > ext {
		ext = h
	}

	var logInv, logN []float64
	for s := ext / 2; s >= 2; s /= 2 {
		n := countBoxes(pts, w, h, s)
		if n == 0 {
			continue
		}
		logInv = append(logInv, math.Log(1/float64(s)))
		logN = append(logN, math.Log(float64(n)))
	}
	if len(logN) < 2 {
		return 0
	}
	return slope(logInv, logN)
}

// OutlineDimension estimates the box-counting dimension of an outline
// by sampling its segments densely and measuring the resulting cloud.
func OutlineDimension(o fractal.Outline, w, h int) float64 {
	var pts []fractal.Pt
	for _, s := range o {
		steps := int(s.Length()) + 1
		for i := 0; i <= steps; i++ {
			pts = append(pts, s.A.Lerp(s.B, float64(i)/float64(steps)))
		}
	}
	return BoxDimension(pts, w, h)
}

func countBoxes(pts []fractal.Pt, w, h, s int) int {
	cols := (w + s - 1) / s
	seen := make(map[int]struct{})
	for _, p := range pts {
		x, y := int(p.X), int(p.Y)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		seen[(y/s)*cols+(x/s)] = struct{}{}
	}
	return len(seen)
}

// slope is the least-squares slope of y over x.
func slope(x, y []float64) float64 {
	n := float64(len(x))
	var sx, sy, sxx, sxy float64
	for i := range x {
		sx += x[i]
		sy += y[i]
		sxx += x[i] * x[i]
		sxy += x[i] * y[i]
	}
	den := n*sxx - sx*sx
	if math.Abs(den) < fractal.Epsilon {
		return 0
	}
	return (n*sxy - sx*sy) / den
}
