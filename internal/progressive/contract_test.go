package progressive_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fracgen/internal/escape"
	"github.com/san-kum/fracgen/internal/fractal"
	"github.com/san-kum/fracgen/internal/progressive"
)

var _ = Describe("staged rendering", func() {
	var (
		gen fractal.ProgressiveGenerator
		p   escape.Params
	)

	BeforeEach(func() {
		gen = progressive.Attach(escape.NewMandelbrot(), progressive.Driver{Levels: 3, Upscale: true})
		p = escape.Params{
			Width: 64, Height: 48, Iterations: 32,
			Min: complex(-2.6, 1.5), Max: complex(1.4, -1.5),
			Bailout: 4, Palette: "rainbow",
		}
	})

	It("reports rising completion and lands on exactly one", func() {
		var dones []float64
		gen.GenerateProgressive(p, func(stage fractal.Output, done float64) {
			dones = append(dones, done)
		})

		Expect(dones).To(HaveLen(4))
		for i := 1; i < len(dones); i++ {
			Expect(dones[i]).To(BeNumerically(">", dones[i-1]))
		}
		Expect(dones[len(dones)-1]).To(Equal(1.0))
	})

	It("delivers every upscaled stage at the requested extent", func() {
		gen.GenerateProgressive(p, func(stage fractal.Output, done float64) {
			Expect(stage.Kind).To(Equal(fractal.KindRaster))
			Expect(stage.Raster.W).To(Equal(64))
			Expect(stage.Raster.H).To(Equal(48))
		})
	})

	It("keeps native stage extents when upscaling is off", func() {
		gen = progressive.Attach(escape.NewMandelbrot(), progressive.Driver{Levels: 2})

		var ws, hs []int
		gen.GenerateProgressive(p, func(stage fractal.Output, done float64) {
			ws = append(ws, stage.Raster.W)
			hs = append(hs, stage.Raster.H)
		})

		Expect(ws).To(Equal([]int{16, 32, 64}))
		Expect(hs).To(Equal([]int{12, 24, 48}))
	})

	It("finishes with the exact full render", func() {
		var last fractal.Output
		gen.GenerateProgressive(p, func(stage fractal.Output, done float64) { last = stage })

		direct := gen.Generate(p, nil)
		Expect(last.Kind).To(Equal(fractal.KindRaster))
		Expect(bytes.Equal(last.Raster.Pix, direct.Raster.Pix)).To(BeTrue())
	})

	It("tolerates a nil stage callback", func() {
		Expect(func() { gen.GenerateProgressive(p, nil) }).NotTo(Panic())
	})
})

var _ = Describe("pass-through", func() {
	It("renders the wrapped family unchanged", func() {
		gen := progressive.Attach(escape.NewJulia(), progressive.DefaultDriver())

		out := gen.Generate(gen.DefaultParams().WithSize(32, 24), nil)
		Expect(out.Kind).To(Equal(fractal.KindRaster))
		Expect(out.Raster.W).To(Equal(32))
		Expect(out.Raster.H).To(Equal(24))
		Expect(gen.Kind()).To(Equal(fractal.KindRaster))
	})
})
