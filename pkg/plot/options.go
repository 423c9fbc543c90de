package plot

import (
	"image/color"

	"github.com/matzehuels/botionplot/pkg/style"
)

// SeriesOption configures a line, scatter or bar series.
type SeriesOption func(*seriesConfig)

type seriesConfig struct {
	label      string
	color      color.Color
	lineWidth  float64 // points, 0 = theme default
	markerSize float64 // points, 0 = theme default
	barWidth   float64 // data units, 0 = 0.8
}

// WithLabel sets the legend label of a series.
func WithLabel(label string) SeriesOption {
	return func(c *seriesConfig) { c.label = label }
}

// WithColor sets an explicit series color instead of the next cycle color.
func WithColor(col color.Color) SeriesOption {
	return func(c *seriesConfig) { c.color = col }
}

// WithHexColor is WithColor for "#rrggbb" strings. Unparseable input is ignored.
func WithHexColor(hex string) SeriesOption {
	return func(c *seriesConfig) {
		if col, err := style.ParseColor(hex); err == nil {
			c.color = col
		}
	}
}

// WithLineWidth sets the line width in points.
func WithLineWidth(points float64) SeriesOption {
	return func(c *seriesConfig) { c.lineWidth = points }
}

// WithMarkerSize sets the marker diameter in points.
func WithMarkerSize(points float64) SeriesOption {
	return func(c *seriesConfig) { c.markerSize = points }
}

// WithBarWidth sets the bar width in data units.
func WithBarWidth(w float64) SeriesOption {
	return func(c *seriesConfig) { c.barWidth = w }
}

// MapOption configures color-mapped artists (images and surfaces).
type MapOption func(*MapConfig)

// MapConfig is the resolved form of a set of MapOptions. Nil fields were
// not set by the caller.
type MapConfig struct {
	Colormap string
	VMin     *float64
	VMax     *float64
}

// HasRange reports whether both ends of the value range were given.
func (c MapConfig) HasRange() bool { return c.VMin != nil && c.VMax != nil }

// WithColormap selects a registered colormap by name.
func WithColormap(name string) MapOption {
	return func(c *MapConfig) { c.Colormap = name }
}

// WithRange fixes the value range mapped onto the colormap.
func WithRange(vmin, vmax float64) MapOption {
	return func(c *MapConfig) { c.VMin, c.VMax = &vmin, &vmax }
}

// WithVMin fixes the low end of the value range.
func WithVMin(v float64) MapOption {
	return func(c *MapConfig) { c.VMin = &v }
}

// WithVMax fixes the high end of the value range.
func WithVMax(v float64) MapOption {
	return func(c *MapConfig) { c.VMax = &v }
}

// ResolveMap applies opts to an empty config.
func ResolveMap(opts ...MapOption) MapConfig {
	var c MapConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LegendOption configures a legend.
type LegendOption func(*LegendConfig)

// Anchor is a point in axes-fraction coordinates ((0,0) bottom left,
// (1,1) top right).
type Anchor struct {
	X, Y float64
}

// LegendConfig is the resolved form of a set of LegendOptions. Zero or nil
// fields were not set by the caller.
type LegendConfig struct {
	Loc    style.Location
	Anchor *Anchor
	Frame  *bool
}

// Placed reports whether the caller chose a location or an anchor.
func (c LegendConfig) Placed() bool { return c.Loc != "" || c.Anchor != nil }

// WithLoc sets the legend location keyword.
func WithLoc(loc style.Location) LegendOption {
	return func(c *LegendConfig) { c.Loc = loc }
}

// WithAnchor anchors the legend's location point at (x, y) in axes fraction.
func WithAnchor(x, y float64) LegendOption {
	return func(c *LegendConfig) { c.Anchor = &Anchor{X: x, Y: y} }
}

// WithFrame turns the legend frame on or off.
func WithFrame(on bool) LegendOption {
	return func(c *LegendConfig) { c.Frame = &on }
}

// ResolveLegend applies opts to an empty config.
func ResolveLegend(opts ...LegendOption) LegendConfig {
	var c LegendConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// FigureOption configures a new figure.
type FigureOption func(*figureConfig)

type figureConfig struct {
	width, height float64 // inches
	dpi           float64
}

// WithFigureSize sets the figure size in inches.
func WithFigureSize(w, h float64) FigureOption {
	return func(c *figureConfig) { c.width, c.height = w, h }
}

// WithDPI sets the figure resolution.
func WithDPI(dpi float64) FigureOption {
	return func(c *figureConfig) { c.dpi = dpi }
}

// SubplotOption configures a new subplot.
type SubplotOption func(*subplotConfig)

type subplotConfig struct {
	projection3D bool
}

// WithProjection3D makes the subplot a 3D axes.
func WithProjection3D() SubplotOption {
	return func(c *subplotConfig) { c.projection3D = true }
}

// RenderOption configures Figure.Render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	background color.Color
}

// WithBackground overrides the figure face color for one render.
func WithBackground(c color.Color) RenderOption {
	return func(rc *renderConfig) { rc.background = c }
}
