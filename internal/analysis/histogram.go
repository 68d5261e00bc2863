package analysis

import "github.com/san-kum/fracgen/internal/fractal"

// Luminance computes a histogram of pixel brightness over bins
// buckets. Brightness is the Rec. 601 luma of the RGB channels,
// normalized to [0, 1]; bin 0 collects pure black, the in-set
// sentinel of escape-time renders.
func Luminance(r *fractal.Raster, bins int) []float64 {
	if bins < 1 {
		bins = 1
	}
	hist := make([]float64, bins)
	if r == nil || len(r.Pix) == 0 {
		return hist
	}
	for i := 0; i < len(r.Pix); i += 4 {
		y := 0.299*float64(r.Pix[i]) + 0.587*float64(r.Pix[i+1]) + 0.114*float64(r.Pix[i+2])
		bin := int(y / 256 * float64(bins))
		if bin >= bins {
			bin = bins - 1
		}
		hist[bin]++
	}
	return hist
}

// Coverage is the fraction of pixels that are not pure black. For an
// escape-time render this is the share of the window outside the set.
func Coverage(r *fractal.Raster) float64 {
	if r == nil || len(r.Pix) == 0 {
		return 0
	}
	lit := 0
	n := len(r.Pix) / 4
	for i := 0; i < len(r.Pix); i += 4 {
		if r.Pix[i] != 0 || r.Pix[i+1] != 0 || r.Pix[i+2] != 0 {
			lit++
		}
	}
	return float64(lit) / float64(n)
}
