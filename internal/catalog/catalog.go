// Package catalog names every built-in generator family and builds
// fresh instances on demand. Raster families come pre-wrapped with the
// progressive driver, so callers get staged previews without wiring
// anything themselves.
package catalog

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/san-kum/fracgen/internal/attractor"
	"github.com/san-kum/fracgen/internal/branch"
	"github.com/san-kum/fracgen/internal/escape"
	"github.com/san-kum/fracgen/internal/fractal"
	"github.com/san-kum/fracgen/internal/lsystem"
	"github.com/san-kum/fracgen/internal/progressive"
	"github.com/san-kum/fracgen/internal/terrain"
)

// Entry describes one generator family.
type Entry struct {
	Name        string
	Kind        fractal.Kind
	Description string

	// New builds a fresh generator. Instances are stateless, but a
	// fresh one per render keeps ownership simple for callers that
	// tweak driver settings.
	New func() fractal.Generator
}

// Catalog maps family names to entries.
type Catalog struct {
	entries map[string]Entry
}

// New returns a catalog holding every built-in family.
func New() *Catalog {
	c := &Catalog{entries: make(map[string]Entry)}
	add := func(e Entry) { c.entries[e.Name] = e }

	staged := func(build func() fractal.RasterGenerator) func() fractal.Generator {
		return func() fractal.Generator {
			return progressive.Attach(build(), progressive.DefaultDriver())
		}
	}

	add(Entry{Name: "mandelbrot", Kind: fractal.KindRaster,
		Description: "the Mandelbrot set",
		New:         staged(func() fractal.RasterGenerator { return escape.NewMandelbrot() })})
	add(Entry{Name: "julia", Kind: fractal.KindRaster,
		Description: "Julia set for c = -0.7+0.27015i",
		New:         staged(func() fractal.RasterGenerator { return escape.NewJulia() })})
	add(Entry{Name: "tricorn", Kind: fractal.KindRaster,
		Description: "the Tricorn, conjugated Mandelbrot iteration",
		New:         staged(func() fractal.RasterGenerator { return escape.NewTricorn() })})
	add(Entry{Name: "burningship", Kind: fractal.KindRaster,
		Description: "the Burning Ship, absolute-value Mandelbrot iteration",
		New:         staged(func() fractal.RasterGenerator { return escape.NewBurningShip() })})
	add(Entry{Name: "newton", Kind: fractal.KindRaster,
		Description: "Newton basins of z^3 - 1",
		New:         staged(func() fractal.RasterGenerator { return escape.NewNewton() })})
	add(Entry{Name: "terrain", Kind: fractal.KindRaster,
		Description: "diamond-square heightmap",
		New:         staged(func() fractal.RasterGenerator { return terrain.New() })})

	add(Entry{Name: "koch", Kind: fractal.KindOutline,
		Description: "Koch snowflake",
		New:         func() fractal.Generator { return lsystem.NewKoch() }})
	add(Entry{Name: "dragon", Kind: fractal.KindOutline,
		Description: "Heighway dragon curve",
		New:         func() fractal.Generator { return lsystem.NewDragon() }})
	add(Entry{Name: "sierpinski", Kind: fractal.KindOutline,
		Description: "Sierpinski arrowhead curve",
		New:         func() fractal.Generator { return lsystem.NewSierpinski() }})
	add(Entry{Name: "plant", Kind: fractal.KindOutline,
		Description: "bracketed L-system plant",
		New:         func() fractal.Generator { return lsystem.NewPlant() }})
	add(Entry{Name: "tree", Kind: fractal.KindOutline,
		Description: "recursive binary tree",
		New:         func() fractal.Generator { return branch.NewTree() }})
	add(Entry{Name: "lightning", Kind: fractal.KindOutline,
		Description: "jittered lightning bolt",
		New:         func() fractal.Generator { return branch.NewLightning() }})

	add(Entry{Name: "lorenz", Kind: fractal.KindPoints,
		Description: "Lorenz attractor",
		New:         func() fractal.Generator { return attractor.NewLorenz() }})
	add(Entry{Name: "rossler", Kind: fractal.KindPoints,
		Description: "Rossler attractor",
		New:         func() fractal.Generator { return attractor.NewRossler() }})
	add(Entry{Name: "henon", Kind: fractal.KindPoints,
		Description: "Henon map",
		New:         func() fractal.Generator { return attractor.NewHenon() }})
	add(Entry{Name: "gingerbreadman", Kind: fractal.KindPoints,
		Description: "Gingerbreadman map",
		New:         func() fractal.Generator { return attractor.NewGingerbreadman() }})
	add(Entry{Name: "dejong", Kind: fractal.KindPoints,
		Description: "de Jong attractor",
		New:         func() fractal.Generator { return attractor.NewDeJong() }})
	add(Entry{Name: "fern", Kind: fractal.KindPoints,
		Description: "Barnsley fern",
		New:         func() fractal.Generator { return attractor.NewFern() }})

	return c
}

// Get builds a fresh generator for name.
func (c *Catalog) Get(name string) (fractal.Generator, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fractal.ErrUnknownGenerator, name)
	}
	return e.New(), nil
}

// Lookup returns the entry for name without building a generator.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Names lists every family in sorted order.
func (c *Catalog) Names() []string {
	names := lo.Keys(c.entries)
	sort.Strings(names)
	return names
}

// Entries lists every entry sorted by name.
func (c *Catalog) Entries() []Entry {
	return lo.Map(c.Names(), func(name string, _ int) Entry {
		return c.entries[name]
	})
}

// ByKind lists the entries producing the given output kind, sorted by
// name.
func (c *Catalog) ByKind(k fractal.Kind) []Entry {
	return lo.Filter(c.Entries(), func(e Entry, _ int) bool {
		return e.Kind == k
	})
}
