// Package export writes generation results to files: rasters as PNG,
// outlines as SVG or rasterized PNG, point clouds as CSV or PNG
// scatter plots.
package export

import (
	"encoding/csv"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/fracgen/internal/fractal"
	"github.com/san-kum/fracgen/internal/palette"
)

// White is the default stroke and scatter color on the black export
// background.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// PNG writes a raster to path.
func PNG(path string, r *fractal.Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, r.Image())
}

// CSV writes one "x,y" row per point.
func CSV(w io.Writer, pts []fractal.Pt) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range pts {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFile writes points to path.
func CSVFile(path string, pts []fractal.Pt) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return CSV(f, pts)
}

// Scatter plots points onto a black w by h raster, one pixel each.
// Points are already in pixel coordinates; anything out of bounds is
// dropped by the raster.
func Scatter(pts []fractal.Pt, w, h int, c color.RGBA) *fractal.Raster {
	img := fractal.NewRaster(w, h)
	img.Fill(palette.Black)
	for _, p := range pts {
		img.Set(int(p.X), int(p.Y), c)
	}
	return img
}

// Rasterize draws an outline onto a black w by h raster with
// Bresenham strokes.
func Rasterize(o fractal.Outline, w, h int, c color.RGBA) *fractal.Raster {
	img := fractal.NewRaster(w, h)
	img.Fill(palette.Black)
	for _, s := range o {
		drawLine(img, int(s.A.X), int(s.A.Y), int(s.B.X), int(s.B.Y), c)
	}
	return img
}

func drawLine(img *fractal.Raster, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// WriteOutput dispatches on the output kind and the file extension.
// Rasters go to .png; outlines to .svg or .png; point clouds to .csv
// or .png. The size argument fixes the export canvas for outline and
// point outputs, which carry no size of their own.
func WriteOutput(path string, out fractal.Output, w, h int) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch out.Kind {
	case fractal.KindRaster:
		if ext != ".png" {
			return fmt.Errorf("raster output needs a .png path, got %q", path)
		}
		return PNG(path, out.Raster)

	case fractal.KindOutline:
		switch ext {
		case ".svg":
			return SVGFile(path, out.Outline, w, h, "#00ff00")
		case ".png":
			return PNG(path, Rasterize(out.Outline, w, h, White))
		}
		return fmt.Errorf("outline output needs a .svg or .png path, got %q", path)

	case fractal.KindPoints:
		switch ext {
		case ".csv":
			return CSVFile(path, out.Points)
		case ".png":
			return PNG(path, Scatter(out.Points, w, h, White))
		}
		return fmt.Errorf("point output needs a .csv or .png path, got %q", path)
	}
	return fmt.Errorf("%w: %v", fractal.ErrKindMismatch, out.Kind)
}

// DefaultExt is the extension WriteOutput accepts for every kind.
func DefaultExt(k fractal.Kind) string {
	if k == fractal.KindOutline {
		return ".svg"
	}
	if k == fractal.KindPoints {
		return ".csv"
	}
	return ".png"
}
