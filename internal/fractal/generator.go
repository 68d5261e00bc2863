package fractal

// ProgressFunc receives completion estimates in [0, 1]. Generators call
// it at coarse stage boundaries, never per pixel or per sample. A nil
// ProgressFunc is always allowed.
type ProgressFunc func(done float64)

// StageFunc receives one intermediate result per progressive stage
// together with the cumulative completion estimate. The final stage
// carries done == 1.
type StageFunc func(stage Output, done float64)

// Params carries the settings for one generation run. Concrete parameter
// types are plain structs owned by each generator family; the framework
// sees only this surface.
type Params interface {
	// Budget is the iteration or sample budget.
	Budget() int

	// Size is the output extent in pixels.
	Size() (w, h int)

	// WithSize returns a copy with the extent replaced. The receiver is
	// not modified.
	WithSize(w, h int) Params
}

// Generator produces one fractal family. Implementations are stateless
// with respect to Generate: all per-run state lives in locals, so a
// single value serves concurrent calls.
type Generator interface {
	Kind() Kind

	// DefaultParams returns a complete, valid parameter set for the
	// family.
	DefaultParams() Params

	// Generate runs to completion and always returns a well-formed
	// Output. Out-of-range scalar parameters are replaced by family
	// defaults rather than reported; report may be nil.
	Generate(p Params, report ProgressFunc) Output
}

// RasterGenerator is implemented by families that draw pixel grids.
// Generate returns exactly GenerateRaster wrapped in an Output.
type RasterGenerator interface {
	Generator
	GenerateRaster(p Params, report ProgressFunc) *Raster
}

// OutlineGenerator is implemented by families that emit strokes.
type OutlineGenerator interface {
	Generator
	GenerateOutline(p Params, report ProgressFunc) Outline
}

// PointGenerator is implemented by families that scatter point clouds.
type PointGenerator interface {
	Generator
	GeneratePoints(p Params, report ProgressFunc) []Pt
}

// ProgressiveGenerator is implemented by generators that can stream
// rising-fidelity previews. The final stage equals the result of
// Generate with the same parameters.
type ProgressiveGenerator interface {
	Generator
	GenerateProgressive(p Params, onStage StageFunc)
}

// Monotone wraps report so observers see clamped, strictly increasing
// values: out-of-range estimates are clamped to [0, 1] and regressions
// and repeats are dropped. A nil report stays nil.
func Monotone(report ProgressFunc) ProgressFunc {
	if report == nil {
		return nil
	}
	last := -1.0
	return func(done float64) {
		if done < 0 {
			done = 0
		} else if done > 1 {
			done = 1
		}
		if done <= last {
			return
		}
		last = done
		report(done)
	}
}
