// Package tui is the terminal display adapter. It consumes the tagged
// generation output, plots it on a braille dot canvas, and drives
// asynchronous renders through the framework pool with progress
// redirected onto the Bubble Tea message loop.
package tui

import (
	"strings"

	"github.com/san-kum/fracgen/internal/fractal"
)

// Braille patterns cover 2x4 dots per character cell, offset 0x2800.
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot grid. Cell (col,row) addresses one terminal
// character; dot coordinates run over (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// DotSize is the canvas extent in dot coordinates.
func (c *Canvas) DotSize() (w, h int) { return c.Width * 2, c.Height * 4 }

// Set lights the dot at (x, y) in dot coordinates. Out-of-range
// coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine lights the dots on the Bresenham line from (x0,y0) to
// (x1,y1).
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
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

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// lumaThreshold separates lit from dark pixels when collapsing an
// RGBA raster onto binary dots.
const lumaThreshold = 40.0

// Plot clears the canvas and draws out, whatever its kind. Rasters
// are expected at dot resolution and threshold on luma; outlines and
// point clouds are expected in dot coordinates already.
func (c *Canvas) Plot(out fractal.Output) {
	c.Clear()
	switch out.Kind {
	case fractal.KindRaster:
		c.plotRaster(out.Raster)
	case fractal.KindOutline:
		for _, s := range out.Outline {
			c.DrawLine(int(s.A.X), int(s.A.Y), int(s.B.X), int(s.B.Y))
		}
	case fractal.KindPoints:
		for _, p := range out.Points {
			c.Set(int(p.X), int(p.Y))
		}
	}
}

func (c *Canvas) plotRaster(r *fractal.Raster) {
	if r == nil {
		return
	}
	dw, dh := c.DotSize()
	for y := 0; y < dh && y < r.H; y++ {
		for x := 0; x < dw && x < r.W; x++ {
			px := r.At(x, y)
			luma := 0.299*float64(px.R) + 0.587*float64(px.G) + 0.114*float64(px.B)
			if luma > lumaThreshold {
				c.Set(x, y)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
