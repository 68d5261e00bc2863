package lsystem

import (
	"github.com/san-kum/fracgen/internal/fractal"
)

// Params configures one L-system render. Budget is the recursion depth:
// rounds of rewriting applied to the axiom.
type Params struct {
	Depth         int
	Width, Height int
}

func (p Params) Budget() int      { return p.Depth }
func (p Params) Size() (int, int) { return p.Width, p.Height }

func (p Params) WithSize(w, h int) fractal.Params {
	p.Width, p.Height = w, h
	return p
}

const (
	fitMargin   = 0.05
	expandShare = 0.6
)

// Generator renders one L-system family.
type Generator struct {
	name     string
	rule     Rule
	maxDepth int
	defaults Params
}

func NewKoch() *Generator {
	return &Generator{
		name: "koch",
		rule: Rule{
			Axiom: "F--F--F",
			Prods: map[rune]string{'F': "F+F--F+F"},
			Angle: 60,
		},
		maxDepth: 8,
		defaults: Params{Depth: 4, Width: 800, Height: 600},
	}
}

func NewDragon() *Generator {
	return &Generator{
		name: "dragon",
		rule: Rule{
			Axiom: "FX",
			Prods: map[rune]string{'X': "X+YF+", 'Y': "-FX-Y"},
			Angle: 90,
		},
		maxDepth: 18,
		defaults: Params{Depth: 12, Width: 800, Height: 600},
	}
}

func NewSierpinski() *Generator {
	return &Generator{
		name: "sierpinski",
		rule: Rule{
			Axiom: "F-G-G",
			Prods: map[rune]string{'F': "F-G+F+G-F", 'G': "GG"},
			Angle: 120,
		},
		maxDepth: 10,
		defaults: Params{Depth: 6, Width: 800, Height: 600},
	}
}

func NewPlant() *Generator {
	return &Generator{
		name: "plant",
		rule: Rule{
			Axiom:   "X",
			Prods:   map[rune]string{'X': "F+[[X]-X]-F[-FX]+X", 'F': "FF"},
			Angle:   25,
			Heading: fractal.Pt{Y: -1},
		},
		maxDepth: 7,
		defaults: Params{Depth: 5, Width: 800, Height: 600},
	}
}

func (g *Generator) Name() string                  { return g.name }
func (g *Generator) Kind() fractal.Kind            { return fractal.KindOutline }
func (g *Generator) DefaultParams() fractal.Params { return g.defaults }

func (g *Generator) Generate(p fractal.Params, report fractal.ProgressFunc) fractal.Output {
	return fractal.OutlineOutput(g.GenerateOutline(p, report))
}

func (g *Generator) GenerateOutline(p fractal.Params, report fractal.ProgressFunc) fractal.Outline {
	lp := g.sanitize(p)

	s := g.rule.Axiom
	for i := 0; i < lp.Depth; i++ {
		s = expandOnce(g.rule, s)
		if report != nil {
			report(expandShare * float64(i+1) / float64(lp.Depth))
		}
	}

	out := Interpret(s, g.rule)
	if report != nil {
		report(0.9)
	}

	out = out.FitTo(lp.Width, lp.Height, fitMargin)
	if report != nil {
		report(1.0)
	}
	return out
}

// sanitize replaces out-of-range scalars with family defaults and caps
// depth so rewriting cannot grow without bound.
func (g *Generator) sanitize(p fractal.Params) Params {
	lp, ok := p.(Params)
	if !ok {
		return g.defaults
	}
	if lp.Width < 1 || lp.Height < 1 {
		lp.Width, lp.Height = g.defaults.Width, g.defaults.Height
	}
	if lp.Depth < 0 {
		lp.Depth = g.defaults.Depth
	}
	if lp.Depth > g.maxDepth {
		fractal.Logger().Debug("depth capped", "family", g.name, "requested", lp.Depth, "max", g.maxDepth)
		lp.Depth = g.maxDepth
	}
	return lp
}
