package lsystem

import (
	"math"
	"strings"

	"github.com/san-kum/fracgen/internal/fractal"
)

// Rule is a deterministic rewriting system plus the turn angle and
// start heading its strokes are interpreted with.
type Rule struct {
	Axiom string
	Prods map[rune]string

	// Angle is the turn per + or - symbol, in degrees.
	Angle float64

	// Heading is the initial turtle direction. Zero means +X.
	Heading fractal.Pt
}

// Expand applies the productions depth rounds to the axiom. Symbols
// without a production copy through unchanged.
func Expand(r Rule, depth int) string {
	s := r.Axiom
	for i := 0; i < depth; i++ {
		s = expandOnce(r, s)
	}
	return s
}

func expandOnce(r Rule, s string) string {
	var b strings.Builder
	b.Grow(len(s) * 4)
	for _, c := range s {
		if p, ok := r.Prods[c]; ok {
			b.WriteString(p)
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

type pose struct {
	at  fractal.Pt
	dir fractal.Pt
}

// Interpret runs turtle graphics over an expanded string, drawing unit
// steps in an abstract plane. Unbalanced pops are ignored.
func Interpret(tokens string, r Rule) fractal.Outline {
	cur := pose{dir: r.Heading}
	if cur.dir == (fractal.Pt{}) {
		cur.dir = fractal.Pt{X: 1}
	}
	rad := r.Angle * math.Pi / 180

	var stack []pose
	var out fractal.Outline
	for _, c := range tokens {
		switch c {
		case 'F', 'G':
			next := cur.at.Add(cur.dir)
			out = append(out, fractal.Segment{A: cur.at, B: next})
			cur.at = next
		case '+':
			cur.dir = cur.dir.Rotate(rad)
		case '-':
			cur.dir = cur.dir.Rotate(-rad)
		case '[':
			stack = append(stack, cur)
		case ']':
			if n := len(stack); n > 0 {
				cur = stack[n-1]
				stack = stack[:n-1]
			}
		}
	}
	return out
}
