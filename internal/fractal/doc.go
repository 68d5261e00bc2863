// Package fractal defines the generation contract shared by every
// fractal family.
//
// The package provides the fundamental types for producing fractal and
// chaotic structures in three geometric forms:
//
//   - [Output]: tagged result holding a raster, an outline, or a point cloud
//   - [Generator]: synchronous generation contract
//   - [Params]: per-run settings carried opaquely through the framework
//   - [Pool]: fixed worker pool for asynchronous generation
//
// # Example
//
//	g := escape.NewMandelbrot()
//	out := g.Generate(g.DefaultParams(), nil)
//	export.PNG("mandelbrot.png", out.Raster)
//
// # Concurrency
//
// Generators are stateless: one generator value may serve concurrent
// Generate calls. Callbacks passed to [Pool] methods run on worker
// goroutines; callers bridge results back to their own event loop.
// There is no cancellation: a scheduled generation always runs to
// completion.
package fractal
