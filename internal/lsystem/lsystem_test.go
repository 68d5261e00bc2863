package lsystem

import (
	"reflect"
	"strings"
	"testing"

	"github.com/san-kum/fracgen/internal/fractal"
)

func TestExpandKoch(t *testing.T) {
	r := NewKoch().rule

	if got := Expand(r, 0); got != "F--F--F" {
		t.Errorf("expected axiom at depth 0, got %q", got)
	}
	want := "F+F--F+F--F+F--F+F--F+F--F+F"
	if got := Expand(r, 1); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestKochSegmentCounts(t *testing.T) {
	g := NewKoch()

	// 3·4^d strokes at depth d; depth 0 is the bare triangle.
	want := 3
	for depth := 0; depth <= 4; depth++ {
		out := g.GenerateOutline(Params{Depth: depth, Width: 400, Height: 300}, nil)
		if len(out) != want {
			t.Errorf("depth %d: expected %d segments, got %d", depth, want, len(out))
		}
		want *= 4
	}
}

func TestDragonSegmentCounts(t *testing.T) {
	g := NewDragon()

	want := 1
	for depth := 0; depth <= 10; depth++ {
		out := g.GenerateOutline(Params{Depth: depth, Width: 400, Height: 300}, nil)
		if len(out) != want {
			t.Errorf("depth %d: expected %d segments, got %d", depth, want, len(out))
		}
		want *= 2
	}
}

func TestSierpinskiSegmentCounts(t *testing.T) {
	g := NewSierpinski()

	want := 3
	for depth := 0; depth <= 5; depth++ {
		out := g.GenerateOutline(Params{Depth: depth, Width: 400, Height: 300}, nil)
		if len(out) != want {
			t.Errorf("depth %d: expected %d segments, got %d", depth, want, len(out))
		}
		want *= 3
	}
}

func TestPlantSegmentsMatchDrawSymbols(t *testing.T) {
	g := NewPlant()

	for depth := 0; depth <= 5; depth++ {
		expanded := Expand(g.rule, depth)
		out := g.GenerateOutline(Params{Depth: depth, Width: 400, Height: 300}, nil)
		if want := strings.Count(expanded, "F"); len(out) != want {
			t.Errorf("depth %d: expected %d segments, got %d", depth, want, len(out))
		}
	}
}

func TestInterpretBracketsRestorePose(t *testing.T) {
	r := Rule{Angle: 90}

	out := Interpret("F[+F]F", r)
	if len(out) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(out))
	}
	// After the pop, drawing resumes from the pre-push position along
	// the pre-push heading.
	if out[2].A != out[0].B {
		t.Errorf("expected pop to restore position: %v != %v", out[2].A, out[0].B)
	}
	if out[2].B != (fractal.Pt{X: 2, Y: 0}) {
		t.Errorf("expected heading restored, got %v", out[2].B)
	}
}

func TestInterpretUnbalancedPop(t *testing.T) {
	out := Interpret("]F]", Rule{Angle: 60})
	if len(out) != 1 {
		t.Errorf("expected 1 segment, got %d", len(out))
	}
}

func TestInterpretSkipsStructuralSymbols(t *testing.T) {
	out := Interpret("XFYX", Rule{Angle: 90})
	if len(out) != 1 {
		t.Errorf("expected only F to draw, got %d segments", len(out))
	}
}

func TestOutlineFitsCanvas(t *testing.T) {
	g := NewKoch()
	w, h := 640, 480

	out := g.GenerateOutline(Params{Depth: 3, Width: w, Height: h}, nil)
	min, max, ok := out.Bounds()
	if !ok {
		t.Fatal("expected non-empty outline")
	}
	if min.X < 0 || min.Y < 0 || max.X > float64(w) || max.Y > float64(h) {
		t.Errorf("outline escapes canvas: min=%v max=%v", min, max)
	}
}

func TestDeterministic(t *testing.T) {
	g := NewDragon()
	p := Params{Depth: 8, Width: 320, Height: 240}

	a := g.GenerateOutline(p, nil)
	b := g.GenerateOutline(p, nil)
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical outlines for identical params")
	}
}

func TestDepthSanitized(t *testing.T) {
	g := NewKoch()

	// Negative depth falls back to the family default.
	def := g.GenerateOutline(Params{Depth: g.defaults.Depth, Width: 100, Height: 100}, nil)
	neg := g.GenerateOutline(Params{Depth: -3, Width: 100, Height: 100}, nil)
	if len(neg) != len(def) {
		t.Errorf("expected default depth for negative input, got %d segments", len(neg))
	}

	// Excessive depth is capped, not honored.
	capped := g.GenerateOutline(Params{Depth: 99, Width: 100, Height: 100}, nil)
	atMax := g.GenerateOutline(Params{Depth: g.maxDepth, Width: 100, Height: 100}, nil)
	if len(capped) != len(atMax) {
		t.Errorf("expected depth cap at %d, got %d segments", g.maxDepth, len(capped))
	}
}

func TestProgressMonotone(t *testing.T) {
	g := NewKoch()

	var reports []float64
	g.GenerateOutline(Params{Depth: 3, Width: 200, Height: 200},
		func(done float64) { reports = append(reports, done) })

	if len(reports) == 0 {
		t.Fatal("expected progress reports")
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] <= reports[i-1] {
			t.Errorf("expected increasing progress, got %v", reports)
		}
	}
	if last := reports[len(reports)-1]; last != 1.0 {
		t.Errorf("expected final progress 1.0, got %v", last)
	}
}

func TestGenerateWrapsOutline(t *testing.T) {
	g := NewSierpinski()

	out := g.Generate(Params{Depth: 2, Width: 100, Height: 100}, nil)
	if out.Kind != fractal.KindOutline {
		t.Fatalf("expected outline kind, got %v", out.Kind)
	}
	if len(out.Outline) != 27 {
		t.Errorf("expected 27 segments at depth 2, got %d", len(out.Outline))
	}
}

func BenchmarkKochDepth6(b *testing.B) {
	g := NewKoch()
	p := Params{Depth: 6, Width: 800, Height: 600}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.GenerateOutline(p, nil)
	}
}
