package attractor

import "math"

// trigTable trades exactness for speed in trig-heavy map families.
// 4096 entries give about 1.5e-3 rad resolution; linear interpolation
// keeps the error near 1e-7, far below what a scattered cloud resolves.
type trigTable struct {
	sin, cos []float64
	n        int
}

func newTrigTable(n int) *trigTable {
	t := &trigTable{sin: make([]float64, n), cos: make([]float64, n), n: n}
	for i := 0; i < n; i++ {
		a := float64(i) * 2 * math.Pi / float64(n)
		t.sin[i] = math.Sin(a)
		t.cos[i] = math.Cos(a)
	}
	return t
}

var trig = newTrigTable(4096)

func (t *trigTable) index(x float64) (i0, i1 int, frac float64) {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	return i % t.n, (i + 1) % t.n, idx - float64(i)
}

func (t *trigTable) Sin(x float64) float64 {
	i0, i1, f := t.index(x)
	return t.sin[i0]*(1-f) + t.sin[i1]*f
}

func (t *trigTable) Cos(x float64) float64 {
	i0, i1, f := t.index(x)
	return t.cos[i0]*(1-f) + t.cos[i1]*f
}
