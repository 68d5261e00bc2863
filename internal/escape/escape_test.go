package escape

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/san-kum/fracgen/internal/fractal"
	"github.com/san-kum/fracgen/internal/palette"
)

func TestPlaneMappingCorners(t *testing.T) {
	// 10x10 grid over (-2,1.5)..(1,-1.5): both corners must be hit
	// exactly, not offset by half a pixel.
	p := Params{
		Width: 10, Height: 10, Iterations: 1,
		Min: complex(-2, 1.5), Max: complex(1, -1.5),
		Bailout: 4.0,
	}

	var points []complex128
	renderPlane(p, nil, func(pt complex128) color.RGBA {
		points = append(points, pt)
		return color.RGBA{}
	})

	if len(points) != 100 {
		t.Fatalf("expected 100 plane points, got %d", len(points))
	}
	if points[0] != complex(-2, 1.5) {
		t.Errorf("expected pixel (0,0) at (-2+1.5i), got %v", points[0])
	}
	if points[9] != complex(1, 1.5) {
		t.Errorf("expected pixel (9,0) at (1+1.5i), got %v", points[9])
	}
	if points[90] != complex(-2, -1.5) {
		t.Errorf("expected pixel (0,9) at (-2-1.5i), got %v", points[90])
	}
	if points[99] != complex(1, -1.5) {
		t.Errorf("expected pixel (9,9) at (1-1.5i), got %v", points[99])
	}
}

func TestFrac(t *testing.T) {
	tests := []struct {
		i, n int
		want float64
	}{
		{0, 10, 0},
		{9, 10, 1},
		{3, 7, 0.5},
		{0, 1, 0},
		{5, 1, 0},
	}

	for _, tt := range tests {
		if got := frac(tt.i, tt.n); got != tt.want {
			t.Errorf("frac(%d,%d): expected %v, got %v", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestMandelbrotInSetIsBlack(t *testing.T) {
	g := NewMandelbrot()
	r := g.GenerateRaster(Params{
		Width: 3, Height: 3, Iterations: 50,
		Min: complex(-1, 1), Max: complex(1, -1),
		Bailout: 4.0, Palette: "rainbow",
	}, nil)

	// Center pixel is c=0, left-middle is c=-1: both in the set.
	black := color.RGBA{A: 255}
	if got := r.At(1, 1); got != black {
		t.Errorf("expected pure black at c=0, got %v", got)
	}
	if got := r.At(0, 1); got != black {
		t.Errorf("expected pure black at c=-1, got %v", got)
	}
	// c=-1+i escapes after 3 steps.
	if got := r.At(0, 0); got == black {
		t.Error("expected escaped pixel to be colored")
	}
}

func TestMandelbrotDeterministic(t *testing.T) {
	g := NewMandelbrot()
	p := Params{
		Width: 32, Height: 24, Iterations: 40,
		Min: complex(-2, 1.2), Max: complex(0.8, -1.2),
		Bailout: 4.0, Palette: "fire",
	}

	a := g.GenerateRaster(p, nil)
	b := g.GenerateRaster(p, nil)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("expected identical pixels for identical params")
	}
}

func TestJuliaSeedsOrbitAtPoint(t *testing.T) {
	g := NewJulia()
	r := g.GenerateRaster(Params{
		Width: 3, Height: 3, Iterations: 50,
		Min: complex(-3, 3), Max: complex(3, -3),
		C:       0,
		Bailout: 4.0, Palette: "rainbow",
	}, nil)

	// With C=0 the orbit is z squared repeatedly: the origin never
	// escapes, points outside radius 2 escape before the first step.
	if got := r.At(1, 1); got != (color.RGBA{A: 255}) {
		t.Errorf("expected pure black at origin, got %v", got)
	}
	if got := r.At(0, 0); got != palette.Get("rainbow").At(0, 50) {
		t.Errorf("expected count-0 color at far corner, got %v", got)
	}
}

func TestFamiliesDiffer(t *testing.T) {
	p := Params{
		Width: 16, Height: 16, Iterations: 30,
		Min: complex(-2, 1.5), Max: complex(1, -1.5),
		Bailout: 4.0, Palette: "rainbow",
	}

	m := NewMandelbrot().GenerateRaster(p, nil)
	tc := NewTricorn().GenerateRaster(p, nil)
	bs := NewBurningShip().GenerateRaster(p, nil)

	if bytes.Equal(m.Pix, tc.Pix) {
		t.Error("expected tricorn to differ from mandelbrot")
	}
	if bytes.Equal(m.Pix, bs.Pix) {
		t.Error("expected burning ship to differ from mandelbrot")
	}
}

func TestValidateZeroAreaWindow(t *testing.T) {
	p := Params{
		Width: 10, Height: 10, Iterations: 10,
		Min: complex(1, -1), Max: complex(1, 1),
		Bailout: 4.0,
	}

	err := p.Validate()
	if !errors.Is(err, fractal.ErrZeroAreaWindow) {
		t.Errorf("expected ErrZeroAreaWindow, got %v", err)
	}

	p.Max = complex(2, 1)
	if err := p.Validate(); err != nil {
		t.Errorf("expected valid window, got %v", err)
	}
}

func TestSanitize(t *testing.T) {
	defaults := NewMandelbrot().defaults

	// Degenerate window falls back to the family window; valid size is
	// kept.
	got := sanitize(Params{Width: 40, Height: 30, Iterations: 0, Bailout: -1}, defaults)
	if got.Width != 40 || got.Height != 30 {
		t.Errorf("expected size kept, got %dx%d", got.Width, got.Height)
	}
	if got.Iterations != defaults.Iterations {
		t.Errorf("expected default iterations, got %d", got.Iterations)
	}
	if got.Bailout != defaults.Bailout {
		t.Errorf("expected default bailout, got %v", got.Bailout)
	}
	if got.Min != defaults.Min || got.Max != defaults.Max {
		t.Errorf("expected default window, got %v..%v", got.Min, got.Max)
	}

	// Foreign parameter types fall back wholesale.
	if got := sanitize(foreignParams{}, defaults); got != defaults {
		t.Errorf("expected full defaults for foreign params, got %+v", got)
	}
}

type foreignParams struct{}

func (foreignParams) Budget() int                      { return 1 }
func (foreignParams) Size() (int, int)                 { return 1, 1 }
func (foreignParams) WithSize(w, h int) fractal.Params { return foreignParams{} }

func TestWithSizeDoesNotMutate(t *testing.T) {
	g := NewMandelbrot()
	p := g.DefaultParams()

	q := p.WithSize(32, 24)
	if w, h := p.Size(); w != 800 || h != 600 {
		t.Errorf("expected original params untouched, got %dx%d", w, h)
	}
	if w, h := q.Size(); w != 32 || h != 24 {
		t.Errorf("expected resized copy 32x24, got %dx%d", w, h)
	}
}

func TestProgressReports(t *testing.T) {
	g := NewMandelbrot()
	p := Params{
		Width: 8, Height: 32, Iterations: 10,
		Min: complex(-2, 1), Max: complex(1, -1),
		Bailout: 4.0,
	}

	var reports []float64
	g.GenerateRaster(p, func(done float64) { reports = append(reports, done) })

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
	if len(reports) > 33 {
		t.Errorf("expected coarse reporting, got %d reports for 32 rows", len(reports))
	}
}

func TestGenerateWrapsRaster(t *testing.T) {
	g := NewTricorn()
	p := Params{
		Width: 8, Height: 8, Iterations: 10,
		Min: complex(-2, 1.5), Max: complex(2, -1.5),
		Bailout: 4.0,
	}

	out := g.Generate(p, nil)
	if out.Kind != fractal.KindRaster {
		t.Fatalf("expected raster kind, got %v", out.Kind)
	}
	if out.Raster == nil || out.Raster.W != 8 || out.Raster.H != 8 {
		t.Errorf("expected 8x8 raster, got %+v", out.Raster)
	}
}

func BenchmarkMandelbrot(b *testing.B) {
	g := NewMandelbrot()
	p := Params{
		Width: 160, Height: 120, Iterations: 64,
		Min: complex(-2.6, 1.5), Max: complex(1.4, -1.5),
		Bailout: 4.0, Palette: "rainbow",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.GenerateRaster(p, nil)
	}
}

func BenchmarkJulia(b *testing.B) {
	g := NewJulia()
	p := Params{
		Width: 160, Height: 120, Iterations: 64,
		Min: complex(-2, 1.5), Max: complex(2, -1.5),
		C:       complex(-0.7, 0.27015),
		Bailout: 4.0, Palette: "rainbow",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.GenerateRaster(p, nil)
	}
}
