// Package branch generates outline fractals by direct geometric
// recursion: a pose (position, heading, depth) propagates through the
// call tree and every call decrements depth, so recursion is bounded
// strictly by depth even for the stochastic families.
package branch

import (
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/fracgen/internal/fractal"
)

// Params configures a recursive branching render. Budget is the
// recursion depth.
type Params struct {
	Depth         int
	Width, Height int

	// Angle is the fork half-angle in degrees.
	Angle float64

	// Ratio scales child branch length per level.
	Ratio float64

	// Seed drives the stochastic families. Zero draws a fresh seed per
	// run, making repeated renders intentionally distinct; any other
	// value reproduces the same geometry.
	Seed int64
}

func (p Params) Budget() int      { return p.Depth }
func (p Params) Size() (int, int) { return p.Width, p.Height }

func (p Params) WithSize(w, h int) fractal.Params {
	p.Width, p.Height = w, h
	return p
}

const (
	maxDepth  = 16
	fitMargin = 0.05
)

func sanitize(p fractal.Params, defaults Params) Params {
	bp, ok := p.(Params)
	if !ok {
		return defaults
	}
	if bp.Width < 1 || bp.Height < 1 {
		bp.Width, bp.Height = defaults.Width, defaults.Height
	}
	if bp.Depth < 1 {
		bp.Depth = defaults.Depth
	}
	if bp.Depth > maxDepth {
		bp.Depth = maxDepth
	}
	if bp.Angle <= 0 || bp.Angle >= 90 {
		bp.Angle = defaults.Angle
	}
	if bp.Ratio <= 0 || bp.Ratio >= 1 {
		bp.Ratio = defaults.Ratio
	}
	return bp
}

// Tree draws a symmetric binary tree: every branch forks into two
// children rotated by ±Angle and shortened by Ratio.
type Tree struct {
	defaults Params
}

func NewTree() *Tree {
	return &Tree{Params{Depth: 9, Width: 800, Height: 600, Angle: 27, Ratio: 0.72}}
}

func (g *Tree) Name() string                  { return "tree" }
func (g *Tree) Kind() fractal.Kind            { return fractal.KindOutline }
func (g *Tree) DefaultParams() fractal.Params { return g.defaults }

func (g *Tree) Generate(p fractal.Params, report fractal.ProgressFunc) fractal.Output {
	return fractal.OutlineOutput(g.GenerateOutline(p, report))
}

func (g *Tree) GenerateOutline(p fractal.Params, report fractal.ProgressFunc) fractal.Outline {
	bp := sanitize(p, g.defaults)

	// A full binary tree of height d has 2^d - 1 branches, so progress
	// can be derived from the emitted segment count.
	expected := 1<<uint(bp.Depth) - 1
	step := expected / 8
	if step < 1 {
		step = 1
	}

	var out fractal.Outline
	emit := func() {
		if report != nil && len(out)%step == 0 {
			report(0.9 * float64(len(out)) / float64(expected))
		}
	}

	angle := bp.Angle * math.Pi / 180
	var grow func(at, dir fractal.Pt, depth int)
	grow = func(at, dir fractal.Pt, depth int) {
		if depth <= 0 {
			return
		}
		tip := at.Add(dir)
		out = append(out, fractal.Segment{A: at, B: tip})
		emit()
		child := dir.Mul(bp.Ratio)
		grow(tip, child.Rotate(angle), depth-1)
		grow(tip, child.Rotate(-angle), depth-1)
	}
	grow(fractal.Pt{}, fractal.Pt{Y: -1}, bp.Depth)

	out = out.FitTo(bp.Width, bp.Height, fitMargin)
	if report != nil {
		report(1.0)
	}
	return out
}

// Lightning draws a stochastic bolt: each step jitters the heading and
// occasionally forks a shorter side branch.
type Lightning struct {
	defaults Params
}

func NewLightning() *Lightning {
	return &Lightning{Params{Depth: 14, Width: 800, Height: 600, Angle: 24, Ratio: 0.93}}
}

func (g *Lightning) Name() string                  { return "lightning" }
func (g *Lightning) Kind() fractal.Kind            { return fractal.KindOutline }
func (g *Lightning) DefaultParams() fractal.Params { return g.defaults }

func (g *Lightning) Generate(p fractal.Params, report fractal.ProgressFunc) fractal.Output {
	return fractal.OutlineOutput(g.GenerateOutline(p, report))
}

const forkChance = 0.35

func (g *Lightning) GenerateOutline(p fractal.Params, report fractal.ProgressFunc) fractal.Outline {
	bp := sanitize(p, g.defaults)

	seed := bp.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	jitter := bp.Angle * math.Pi / 180

	var out fractal.Outline
	var bolt func(at, dir fractal.Pt, depth int)
	bolt = func(at, dir fractal.Pt, depth int) {
		if depth <= 0 {
			return
		}
		dir = dir.Rotate((rng.Float64()*2 - 1) * jitter)
		tip := at.Add(dir)
		out = append(out, fractal.Segment{A: at, B: tip})
		if depth > 2 && rng.Float64() < forkChance {
			side := jitter * 2
			if rng.Float64() < 0.5 {
				side = -side
			}
			bolt(tip, dir.Rotate(side).Mul(0.6), depth-2)
		}
		bolt(tip, dir.Mul(bp.Ratio), depth-1)
	}
	bolt(fractal.Pt{}, fractal.Pt{Y: 1}, bp.Depth)
	if report != nil {
		report(0.9)
	}

	out = out.FitTo(bp.Width, bp.Height, fitMargin)
	if report != nil {
		report(1.0)
	}
	return out
}
