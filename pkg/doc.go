// Package pkg provides the core libraries for Botionplot, a dark,
// Apple-inspired plotting style.
//
// # Overview
//
// Botionplot renders line, scatter, bar, histogram, heatmap and 3D surface
// figures with a dark theme, registers the six-color apple_cmap gradient, and
// persists everything it draws: static figures as square PNGs, animations as
// GIFs. The pkg directory is organized into three areas:
//
//  1. [botion] - The style applicator (theme, colormap, legend placement, save on show)
//  2. [plot] - Figures, axes, artists and the raster renderer
//  3. Support - [style], [colormap], [fonts], [sink], [outdir], [errors],
//     [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	botion.Apply (theme + apple_cmap + output directory)
//	         ↓
//	    [plot] package (figures, axes, artists)
//	         ↓
//	    Styler.Show / Styler.Animate
//	         ↓
//	    [sink] package (PNG / GIF encoding) → [outdir]
//
// # Quick Start
//
//	s, _ := botion.Apply()
//	ax := s.NewFigure().AddSubplot(1, 1, 1)
//	ax.Plot(xs, ys, plot.WithLabel("Sine"))
//	ax.SetTitle("Line Plot")
//	s.Legend(ax)
//	paths, _ := s.Show(ctx) // botionplotlib_output/line_plot.png
//
// # Main Packages
//
// [botion] - Applies the style. Legends default to lower center below the
// axes, images and surfaces default to apple_cmap, Show saves every static
// figure at 1000×1000 px and Animate saves a GIF immediately.
//
// [plot] - A small figure model: a Manager owns numbered figures, figures
// own a grid of axes, axes own artists. Figures render to image.Image using
// fogleman/gg.
//
// [style] - Theme values (colors, fonts, sizes, legend placement, output
// settings) with TOML loading.
//
// [colormap] - Linear segmented colormaps and a per-applicator registry.
//
// [sink] - PNG and GIF encoders with optional resampling.
//
// [outdir] - The output directory: ensure, list, open and clean artifacts.
//
// [botion]: https://pkg.go.dev/github.com/matzehuels/botionplot/pkg/botion
// [plot]: https://pkg.go.dev/github.com/matzehuels/botionplot/pkg/plot
// [style]: https://pkg.go.dev/github.com/matzehuels/botionplot/pkg/style
// [colormap]: https://pkg.go.dev/github.com/matzehuels/botionplot/pkg/colormap
// [fonts]: https://pkg.go.dev/github.com/matzehuels/botionplot/pkg/fonts
// [sink]: https://pkg.go.dev/github.com/matzehuels/botionplot/pkg/sink
// [outdir]: https://pkg.go.dev/github.com/matzehuels/botionplot/pkg/outdir
// [errors]: https://pkg.go.dev/github.com/matzehuels/botionplot/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/botionplot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/botionplot/pkg/buildinfo
package pkg
