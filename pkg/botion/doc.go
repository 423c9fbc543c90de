// Package botion applies the dark, Apple-inspired botionplot look to
// [plot] figures and writes every figure to disk instead of displaying it.
//
// # Overview
//
// [Apply] builds a [Styler]: a facade over its own [plot.Manager] that
// carries the Apple theme, a colormap registry holding the six-color
// "apple_cmap" gradient, and an output directory. Nothing global is
// modified; two Stylers never share state unless the caller passes the
// same registry to both.
//
//	s, err := botion.Apply()
//	if err != nil {
//	    return err
//	}
//	fig := s.NewFigure()
//	ax := fig.AddSubplot(1, 1, 1)
//	ax.Plot(xs, ys, plot.WithLabel("Sine"))
//	ax.SetTitle("Line Plot")
//	s.Legend(ax)
//	paths, err := s.Show(ctx) // botionplotlib_output/line_plot.png
//
// # Themed Entry Points
//
// The Styler wraps a handful of plot calls with defaults of its own:
//
//   - [Styler.Legend] places the legend below the axes, centered, unless
//     the caller chose a location or anchor.
//   - [Styler.Imshow] uses apple_cmap unless a colormap is given.
//   - [Styler.PlotSurface] uses apple_cmap and, unless both ends of the
//     value range are given, spans the full finite range of Z.
//
// Everything else is the plain plot API and can be called directly.
//
// # Output
//
// [Styler.Show] saves each open static figure as a 1000×1000 PNG named
// after its first axes title (see [SanitizeTitle]) or figure_<n>.png, then
// closes all figures. [Styler.Animate] renders an animation and saves it
// as a GIF at 20 frames per second right away; the figure is marked
// [Animated] and skipped by later Show calls.
package botion
