// Package plot is a small figure/axes plotting library rendered with
// fogleman/gg.
//
// # Overview
//
// A [Manager] owns the set of open figures and the style configuration
// they read. Figures hold subplots ([Axes]); axes hold artists created by
// [Axes.Plot], [Axes.Scatter], [Axes.Bar], [Axes.Hist], [Axes.Imshow] and,
// on 3D axes, [Axes.PlotSurface]:
//
//	m := plot.NewManager(plot.WithTheme(style.Apple()))
//	fig := m.NewFigure()
//	ax := fig.AddSubplot(1, 1, 1)
//	ax.Plot(xs, ys, plot.WithLabel("Sine"))
//	ax.SetTitle("Line Plot")
//	ax.Legend()
//	img, err := fig.Render()
//
// Every figure snapshots the manager's theme when it is created, the way
// module-wide defaults are read implicitly by each new plot.
//
// # Options
//
// Artist options are functional options. [ResolveLegend] and [ResolveMap]
// report which options a caller actually set, so a wrapping layer can
// inject defaults only where the caller was silent.
//
// # Animation
//
// [NewAnimation] pairs a figure with an update callback; [Animation.Render]
// runs the callback once per frame and rasterizes the figure after each
// call.
//
// Figures and axes are not safe for concurrent mutation; the manager's
// figure list is.
package plot
