package export

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/fracgen/internal/catalog"
	"github.com/san-kum/fracgen/internal/fractal"
)

// Sheet renders every catalog family at its default parameters into
// dir, one file per family named after it with the kind's extension.
// Families render concurrently, at most limit at a time; the first
// failure cancels the rest.
func Sheet(ctx context.Context, dir string, cat *catalog.Catalog, limit int) error {
	if limit < 1 {
		limit = 1
	}
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for _, e := range cat.Entries() {
		e := e
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g := e.New()
			p := g.DefaultParams()
			out := g.Generate(p, nil)
			w, h := p.Size()
			path := filepath.Join(dir, e.Name+DefaultExt(out.Kind))
			fractal.Logger().Debug("sheet render", "family", e.Name, "path", path)
			return WriteOutput(path, out, w, h)
		})
	}

	return group.Wait()
}
