package progressive

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/san-kum/fracgen/internal/fractal"
)

func TestStageSizes(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		levels   int
		expected []extent
	}{
		{"even halvings", 64, 48, 3, []extent{{8, 6}, {16, 12}, {32, 24}, {64, 48}}},
		{"odd extents floor", 10, 10, 3, []extent{{1, 1}, {2, 2}, {5, 5}, {10, 10}}},
		{"tiny request dedupes", 2, 2, 3, []extent{{1, 1}, {2, 2}}},
		{"single pixel", 1, 1, 5, []extent{{1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stageSizes(tt.w, tt.h, tt.levels)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestUpscaleBlocks(t *testing.T) {
	src := fractal.NewRaster(2, 2)
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{G: 255, A: 255})
	src.Set(0, 1, color.RGBA{B: 255, A: 255})
	src.Set(1, 1, color.RGBA{R: 255, G: 255, A: 255})

	dst := upscale(src, 4, 4)
	tests := []struct {
		x, y   int
		sx, sy int
	}{
		{0, 0, 0, 0},
		{1, 1, 0, 0},
		{2, 0, 1, 0},
		{1, 2, 0, 1},
		{3, 3, 1, 1},
	}
	for _, tt := range tests {
		if got, want := dst.At(tt.x, tt.y), src.At(tt.sx, tt.sy); got != want {
			t.Errorf("pixel (%d, %d): expected %v, got %v", tt.x, tt.y, want, got)
		}
	}
}

func TestUpscaleSameExtentReturnsSame(t *testing.T) {
	src := fractal.NewRaster(3, 3)
	if got := upscale(src, 3, 3); got != src {
		t.Error("expected the same raster back")
	}
}

func TestAttachDefaultsLevels(t *testing.T) {
	g := Attach(nil, Driver{})
	if g.driver.Levels != defaultLevels {
		t.Errorf("expected %d levels, got %d", defaultLevels, g.driver.Levels)
	}
}
