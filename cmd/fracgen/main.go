package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/san-kum/fracgen/internal/analysis"
	"github.com/san-kum/fracgen/internal/catalog"
	"github.com/san-kum/fracgen/internal/config"
	"github.com/san-kum/fracgen/internal/export"
	"github.com/san-kum/fracgen/internal/fractal"
	"github.com/san-kum/fracgen/internal/palette"
	"github.com/san-kum/fracgen/internal/progressive"
	"github.com/san-kum/fracgen/internal/tui"
)

var (
	width      int
	height     int
	iterations int
	depth      int
	seed       int64
	paletteArg string
	preset     string
	configFile string
	outPath    string
	stages     int
	sheetLimit int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fracgen",
		Short: "fractal generation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(catalog.New())
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render [generator]",
		Short: "render a fractal to a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().IntVar(&width, "width", 0, "output width")
	renderCmd.Flags().IntVar(&height, "height", 0, "output height")
	renderCmd.Flags().IntVar(&iterations, "iterations", 0, "iteration/sample budget")
	renderCmd.Flags().IntVar(&depth, "depth", 0, "recursion depth (outline families)")
	renderCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (stochastic families)")
	renderCmd.Flags().StringVar(&paletteArg, "palette", "", "palette name")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&outPath, "out", "", "output file (.png/.svg/.csv)")
	renderCmd.Flags().IntVar(&stages, "stages", 0, "progressive preview stages")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list generator families",
		RunE:  runList,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [generator]",
		Short: "list presets for a generator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for generator: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list palettes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range palette.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [generator]",
		Short: "render and summarize a fractal",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (stochastic families)")

	benchCmd := &cobra.Command{
		Use:   "bench [generator]",
		Short: "benchmark a generator over a size/budget grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runBench,
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive catalog browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(catalog.New())
		},
	}

	sheetCmd := &cobra.Command{
		Use:   "sheet [dir]",
		Short: "render the whole catalog into a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheet,
	}
	sheetCmd.Flags().IntVar(&sheetLimit, "limit", 4, "concurrent renders")

	rootCmd.AddCommand(renderCmd, listCmd, presetsCmd, palettesCmd, analyzeCmd, benchCmd, viewCmd, sheetCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildParams merges preset, config file, and flags (strongest last)
// onto the family defaults.
func buildParams(cmd *cobra.Command, name string, g fractal.Generator) (fractal.Params, *config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(name, preset)
		if p == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		*cfg = *p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = iterations
	}
	if cmd.Flags().Changed("depth") {
		cfg.Depth = depth
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("palette") {
		cfg.Palette = paletteArg
	}
	if cfg.Output == "" {
		cfg.Output = config.DefaultOutput
	}

	return cfg.Apply(g.DefaultParams()), cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	name := args[0]
	cat := catalog.New()

	g, err := cat.Get(name)
	if err != nil {
		return err
	}
	p, cfg, err := buildParams(cmd, name, g)
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		ext := export.DefaultExt(g.Kind())
		path = strings.TrimSuffix(cfg.Output, ".png") + ext
	}

	fmt.Printf("rendering %s...\n", name)
	start := time.Now()

	var out fractal.Output
	if pw, ok := g.(*progressive.Generator); ok && stages > 1 {
		pg := progressive.Attach(pw.Inner(), progressive.Driver{Levels: stages - 1, Upscale: true})
		pg.GenerateProgressive(p, func(stage fractal.Output, done float64) {
			fmt.Printf("  stage at %3.0f%%\n", done*100)
			out = stage
		})
	} else {
		out = g.Generate(p, func(done float64) {
			fmt.Printf("\r  %3.0f%%", done*100)
		})
		fmt.Println()
	}

	w, h := p.Size()
	if err := export.WriteOutput(path, out, w, h); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cat := catalog.New()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tDESCRIPTION")
	for _, e := range cat.Entries() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Kind, e.Description)
	}
	return w.Flush()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	name := args[0]
	cat := catalog.New()

	g, err := cat.Get(name)
	if err != nil {
		return err
	}
	p, _, err := buildParams(cmd, name, g)
	if err != nil {
		return err
	}

	fmt.Printf("analyzing %s...\n\n", name)
	out := g.Generate(p, nil)
	w, h := p.Size()

	switch out.Kind {
	case fractal.KindRaster:
		hist := analysis.Luminance(out.Raster, 32)
		graph := asciigraph.Plot(hist,
			asciigraph.Height(12),
			asciigraph.Width(72),
			asciigraph.Caption("luminance histogram (dark to bright)"),
		)
		fmt.Println(graph)
		fmt.Println()
		fmt.Printf("coverage: %.1f%% of pixels lit\n", analysis.Coverage(out.Raster)*100)

	case fractal.KindOutline:
		st := analysis.Strokes(out.Outline)
		fmt.Printf("segments: %d\n", st.Segments)
		fmt.Printf("total length: %.1f px\n", st.TotalLength)
		fmt.Printf("mean segment: %.2f px\n", st.MeanLength)
		fmt.Printf("bounds: (%.0f,%.0f)-(%.0f,%.0f)\n", st.Min.X, st.Min.Y, st.Max.X, st.Max.Y)
		fmt.Printf("box dimension: %.3f\n", analysis.OutlineDimension(out.Outline, w, h))

	case fractal.KindPoints:
		fmt.Printf("points: %d\n", len(out.Points))
		fmt.Printf("box dimension: %.3f\n", analysis.BoxDimension(out.Points, w, h))
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	name := args[0]
	cat := catalog.New()

	entry, ok := cat.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", fractal.ErrUnknownGenerator, name)
	}
	g := entry.New()
	defBudget := g.DefaultParams().Budget()

	sizes := []int{128, 256, 512}
	budgets := benchBudgets(entry.Kind, defBudget)

	fmt.Printf("benchmarking %s\n\n", name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tBUDGET\tTIME\tSAMPLES/SEC")

	for _, size := range sizes {
		for _, budget := range budgets {
			cfg := &config.Config{Width: size, Height: size, Iterations: budget, Depth: budget}
			p := cfg.Apply(g.DefaultParams())

			start := time.Now()
			out := g.Generate(p, nil)
			elapsed := time.Since(start)

			samples := size * size
			if out.Kind != fractal.KindRaster {
				samples = budget
			}
			rate := float64(samples) / elapsed.Seconds()
			fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n", size, size, budget, elapsed.Round(time.Microsecond), rate)
		}
	}
	return w.Flush()
}

// benchBudgets picks budget steps that stay sane for the kind:
// outline budgets are recursion depths, where growth is exponential.
func benchBudgets(k fractal.Kind, def int) []int {
	if k == fractal.KindOutline {
		low := def - 2
		if low < 1 {
			low = 1
		}
		return []int{low, def, def + 2}
	}
	low := def / 4
	if low < 1 {
		low = 1
	}
	return []int{low, def, def * 4}
}

func runSheet(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	cat := catalog.New()

	fmt.Printf("rendering %d families into %s...\n", len(cat.Names()), dir)
	start := time.Now()
	if err := export.Sheet(context.Background(), dir, cat, sheetLimit); err != nil {
		return err
	}
	fmt.Printf("completed in %v\n", time.Since(start))

	names := lo.Map(cat.Entries(), func(e catalog.Entry, _ int) string { return e.Name })
	fmt.Printf("wrote: %s\n", strings.Join(names, ", "))
	return nil
}
