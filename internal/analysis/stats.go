package analysis

import "github.com/san-kum/fracgen/internal/fractal"

// OutlineStats summarizes the strokes of one outline.
type OutlineStats struct {
	Segments    int
	TotalLength float64
	MeanLength  float64
	Min, Max    fractal.Pt
}

// Strokes computes segment statistics for an outline.
func Strokes(o fractal.Outline) OutlineStats {
	st := OutlineStats{Segments: len(o)}
	if len(o) == 0 {
		return st
	}
	for _, s := range o {
		st.TotalLength += s.Length()
	}
	st.MeanLength = st.TotalLength / float64(len(o))
	st.Min, st.Max, _ = o.Bounds()
	return st
}
