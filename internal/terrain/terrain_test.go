package terrain

import (
	"bytes"
	"testing"

	"github.com/san-kum/fracgen/internal/fractal"
)

func TestLattice(t *testing.T) {
	tests := []struct {
		w, h, side int
	}{
		{1, 1, 3},
		{3, 3, 3},
		{4, 3, 5},
		{100, 257, 257},
		{256, 256, 257},
		{258, 1, 513},
		{800, 600, 1025},
	}
	for _, tt := range tests {
		if got := lattice(tt.w, tt.h); got != tt.side {
			t.Errorf("lattice(%d, %d): expected %d, got %d", tt.w, tt.h, tt.side, got)
		}
	}
}

func TestRounds(t *testing.T) {
	tests := []struct {
		side, n int
	}{
		{3, 1},
		{5, 2},
		{257, 8},
		{1025, 10},
	}
	for _, tt := range tests {
		if got := rounds(tt.side); got != tt.n {
			t.Errorf("rounds(%d): expected %d, got %d", tt.side, tt.n, got)
		}
	}
}

func TestBudgetTracksSize(t *testing.T) {
	p := Params{Width: 64, Height: 64}
	if got := p.Budget(); got != 6 {
		t.Errorf("expected budget 6 for a 65 lattice, got %d", got)
	}
	if got := p.WithSize(512, 512).Budget(); got != 9 {
		t.Errorf("expected budget 9 after resize, got %d", got)
	}
}

func TestSeedReproducible(t *testing.T) {
	g := New()
	p := Params{Width: 64, Height: 48, Roughness: 0.55, Seed: 42, Palette: "terrain"}

	a := g.GenerateRaster(p, nil)
	b := g.GenerateRaster(p, nil)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("expected identical rasters for identical seed")
	}

	p.Seed = 43
	c := g.GenerateRaster(p, nil)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("expected different seeds to differ")
	}
}

func TestRasterIsOpaqueAndVaried(t *testing.T) {
	g := New()
	r := g.GenerateRaster(Params{Width: 32, Height: 32, Roughness: 0.6, Seed: 7}, nil)

	first := r.At(0, 0)
	varied := false
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			c := r.At(x, y)
			if c.A != 255 {
				t.Fatalf("expected opaque pixel at (%d, %d), got alpha %d", x, y, c.A)
			}
			if c != first {
				varied = true
			}
		}
	}
	if !varied {
		t.Error("expected more than one elevation color")
	}
}

func TestProgressEndsAtOne(t *testing.T) {
	g := New()
	p := Params{Width: 64, Height: 64, Roughness: 0.55, Seed: 1}

	var reports []float64
	g.GenerateRaster(p, func(done float64) { reports = append(reports, done) })

	if len(reports) != p.Budget()+1 {
		t.Fatalf("expected one report per round plus the final, got %d", len(reports))
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] <= reports[i-1] {
			t.Fatalf("expected increasing progress, got %v", reports)
		}
	}
	if last := reports[len(reports)-1]; last != 1.0 {
		t.Errorf("expected final progress 1.0, got %v", last)
	}
}

func TestSanitize(t *testing.T) {
	defaults := New().defaults

	got := sanitize(Params{Width: 64, Height: 64, Roughness: 0}, defaults)
	if got.Roughness != defaults.Roughness {
		t.Errorf("expected default roughness, got %v", got.Roughness)
	}
	if got.Palette != defaults.Palette {
		t.Errorf("expected default palette, got %q", got.Palette)
	}

	got = sanitize(Params{Width: 0, Height: 64, Roughness: 1.5}, defaults)
	if got.Width != defaults.Width || got.Height != defaults.Height {
		t.Errorf("expected default size, got %dx%d", got.Width, got.Height)
	}
	if got.Roughness != defaults.Roughness {
		t.Errorf("expected roughness above one replaced, got %v", got.Roughness)
	}
}

func TestGenerateWrapsRaster(t *testing.T) {
	var g fractal.RasterGenerator = New()

	out := g.Generate(Params{Width: 16, Height: 12, Roughness: 0.5, Seed: 3}, nil)
	if out.Kind != fractal.KindRaster {
		t.Fatalf("expected raster kind, got %v", out.Kind)
	}
	if out.Raster.W != 16 || out.Raster.H != 12 {
		t.Errorf("expected a 16x12 raster, got %dx%d", out.Raster.W, out.Raster.H)
	}
}

func BenchmarkTerrain(b *testing.B) {
	g := New()
	p := Params{Width: 256, Height: 256, Roughness: 0.55, Seed: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.GenerateRaster(p, nil)
	}
}
