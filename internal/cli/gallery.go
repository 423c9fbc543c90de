package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/botionplot/pkg/botion"
	"github.com/matzehuels/botionplot/pkg/plot"
	"github.com/matzehuels/botionplot/pkg/style"
)

// gallerySamples is the number of points in the demonstration curves.
const gallerySamples = 100

// galleryOptions holds flags for the gallery command.
type galleryOptions struct {
	output      string
	themeFile   string
	size        int
	frames      int
	gifSize     int
	noAnimation bool
}

// galleryCommand creates the gallery command.
func (c *CLI) galleryCommand() *cobra.Command {
	opts := galleryOptions{size: botion.SaveSize, frames: gallerySamples}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render the demonstration figures and animation",
		Long: `Render a set of demonstration plots through the botion style: line,
scatter, bar, histogram, heatmap with colorbar, 3D surface, an untitled
figure, and an animated sine wave.

Static figures are saved as PNG, the animation as GIF.`,
		Example: `  botion gallery
  botion gallery -o out --theme mytheme.toml
  botion gallery --no-animation --size 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd.Context(), loggerFromContext(cmd.Context()), opts)
		},
	}

	addOutputFlag(cmd, &opts.output)
	cmd.Flags().StringVar(&opts.themeFile, "theme", "", "TOML theme file overlaid on the Apple theme")
	cmd.Flags().IntVar(&opts.size, "size", opts.size, "width and height of saved PNGs in pixels")
	cmd.Flags().IntVar(&opts.frames, "frames", opts.frames, "number of animation frames")
	cmd.Flags().IntVar(&opts.gifSize, "gif-size", 0, "resample animation frames to this size (0 keeps the figure size)")
	cmd.Flags().BoolVar(&opts.noAnimation, "no-animation", false, "skip the animated figure")

	return cmd
}

func runGallery(ctx context.Context, logger *log.Logger, opts galleryOptions) error {
	prog := newProgress(logger)

	applyOpts := []botion.Option{
		botion.WithOutputDir(opts.output),
		botion.WithLogger(logger),
		botion.WithOutput(stdout),
		botion.WithSaveSize(opts.size),
	}
	if opts.themeFile != "" {
		applyOpts = append(applyOpts, botion.WithThemeFile(opts.themeFile))
	}
	s, err := botion.Apply(applyOpts...)
	if err != nil {
		return err
	}
	printInfo("Rendering gallery into %s", s.Dir())

	d := newGalleryData(gallerySamples)
	scenes := []struct {
		name  string
		build func(*botion.Styler, galleryData) error
	}{
		{"line", lineScene},
		{"scatter", scatterScene},
		{"bar", barScene},
		{"histogram", histogramScene},
		{"heatmap", heatmapScene},
		{"surface", surfaceScene},
		{"untitled", untitledScene},
	}
	for _, sc := range scenes {
		logger.Debug("building scene", "scene", sc.name)
		if err := sc.build(s, d); err != nil {
			return fmt.Errorf("%s scene: %w", sc.name, err)
		}
	}

	animations := 0
	if !opts.noAnimation {
		if err := animationScene(ctx, s, d, opts); err != nil {
			return fmt.Errorf("animation scene: %w", err)
		}
		animations++
	}

	paths, err := s.Show(ctx)
	if err != nil {
		return err
	}
	prog.done("Rendered gallery")
	printSuccess("Saved %d figures and %d animations", len(paths), animations)
	printNextStep("Browse them", fmt.Sprintf("%s serve -o %s", appName, s.Dir()))
	return nil
}

// =============================================================================
// Sample Data
// =============================================================================

// galleryData holds the curves and grids shared by the scenes.
type galleryData struct {
	x, sin, cos []float64
	gx, gy, gz  [][]float64
}

func newGalleryData(n int) galleryData {
	x := linspace(0, 10, n)
	d := galleryData{x: x, sin: make([]float64, n), cos: make([]float64, n)}
	for i, v := range x {
		d.sin[i], d.cos[i] = math.Sin(v), math.Cos(v)
	}
	d.gx, d.gy = meshgrid(linspace(-5, 5, n), linspace(-5, 5, n))
	d.gz = make([][]float64, n)
	for i := range d.gz {
		d.gz[i] = make([]float64, n)
		for j := range d.gz[i] {
			d.gz[i][j] = math.Sin(math.Hypot(d.gx[i][j], d.gy[i][j]))
		}
	}
	return d
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// meshgrid returns coordinate matrices with xs along columns and ys along rows.
func meshgrid(xs, ys []float64) (gx, gy [][]float64) {
	gx = make([][]float64, len(ys))
	gy = make([][]float64, len(ys))
	for i, y := range ys {
		gx[i] = append([]float64(nil), xs...)
		gy[i] = make([]float64, len(xs))
		for j := range xs {
			gy[i][j] = y
		}
	}
	return gx, gy
}

// =============================================================================
// Scenes
// =============================================================================

func labeled(ax *plot.Axes, title, xlabel, ylabel string) {
	ax.SetTitle(title)
	ax.SetXLabel(xlabel)
	ax.SetYLabel(ylabel)
}

func lineScene(s *botion.Styler, d galleryData) error {
	ax := s.NewFigure().AddSubplot(1, 1, 1)
	if _, err := ax.Plot(d.x, d.sin, plot.WithLabel("Sine")); err != nil {
		return err
	}
	if _, err := ax.Plot(d.x, d.cos, plot.WithLabel("Cosine")); err != nil {
		return err
	}
	labeled(ax, "Line Plot", "X", "Y")
	s.Legend(ax)
	ax.Grid(true)
	return nil
}

func scatterScene(s *botion.Styler, d galleryData) error {
	ax := s.NewFigure().AddSubplot(1, 1, 1)
	if _, err := ax.Scatter(d.x, d.sin, plot.WithLabel("Sine Points")); err != nil {
		return err
	}
	if _, err := ax.Scatter(d.x, d.cos, plot.WithLabel("Cosine Points")); err != nil {
		return err
	}
	labeled(ax, "Scatter Plot", "X", "Y")
	s.Legend(ax)
	ax.Grid(true)
	return nil
}

func barScene(s *botion.Styler, d galleryData) error {
	n := min(10, len(d.x))
	ax := s.NewFigure().AddSubplot(1, 1, 1)
	if _, err := ax.Bar(d.x[:n], d.sin[:n], plot.WithLabel("Sine Bars")); err != nil {
		return err
	}
	labeled(ax, "Bar Plot", "X", "Y")
	s.Legend(ax)
	ax.Grid(true)
	return nil
}

func histogramScene(s *botion.Styler, d galleryData) error {
	ax := s.NewFigure().AddSubplot(1, 1, 1)
	if _, _, err := ax.Hist(d.sin, 20, plot.WithLabel("Sine Dist")); err != nil {
		return err
	}
	labeled(ax, "Histogram", "Value", "Frequency")
	s.Legend(ax)
	ax.Grid(true)
	return nil
}

func heatmapScene(s *botion.Styler, d galleryData) error {
	ax := s.NewFigure().AddSubplot(1, 1, 1)
	img, err := s.Imshow(ax, d.gz)
	if err != nil {
		return err
	}
	labeled(ax, "Heatmap", "X", "Y")
	return ax.Colorbar(img)
}

func surfaceScene(s *botion.Styler, d galleryData) error {
	ax := s.NewFigure().AddSubplot(1, 1, 1, plot.WithProjection3D())
	if _, err := s.PlotSurface(ax, d.gx, d.gy, d.gz, plot.WithColormap(style.AppleColormapName)); err != nil {
		return err
	}
	labeled(ax, "3D Surface Plot", "X", "Y")
	ax.SetZLabel("Z")
	return nil
}

// untitledScene has no axes titles, so it is saved under its position.
func untitledScene(s *botion.Styler, d galleryData) error {
	fig := s.NewFigure()
	phase := fig.AddSubplot(1, 2, 1)
	if _, err := phase.Plot(d.sin, d.cos, plot.WithLabel("Phase")); err != nil {
		return err
	}
	phase.SetXLabel("sin")
	phase.SetYLabel("cos")
	s.Legend(phase)

	levels := fig.AddSubplot(1, 2, 2)
	if _, err := levels.Bar([]float64{1, 2, 3}, []float64{30, 20, 50}, plot.WithLabel("Shares")); err != nil {
		return err
	}
	levels.Grid(true)
	return nil
}

func animationScene(ctx context.Context, s *botion.Styler, d galleryData, opts galleryOptions) error {
	fig := s.NewFigure()
	ax := fig.AddSubplot(1, 1, 1)
	line, err := ax.Plot(d.x[:1], d.sin[:1], plot.WithLabel("Animated Sine"))
	if err != nil {
		return err
	}
	labeled(ax, "Animation", "X", "Y")
	ax.SetXLim(0, 10)
	ax.SetYLim(-1.5, 1.5)
	s.Legend(ax)
	ax.Grid(true)

	frames := max(opts.frames, 1)
	update := func(i int) error {
		k := max(1, (i+1)*len(d.x)/frames)
		return line.SetData(d.x[:k], d.sin[:k])
	}
	var animOpts []botion.AnimateOption
	if opts.gifSize > 0 {
		animOpts = append(animOpts, botion.WithFrameSize(opts.gifSize))
	}
	_, _, err = s.Animate(ctx, fig, frames, update, animOpts...)
	return err
}
