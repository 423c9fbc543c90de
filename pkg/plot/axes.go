package plot

import (
	"image/color"
	"math"

	errs "github.com/matzehuels/botionplot/pkg/errors"
	"github.com/matzehuels/botionplot/pkg/style"
)

// Axes is one subplot: a coordinate system with its artists, labels,
// legend and optional colorbar.
type Axes struct {
	fig  *Figure
	frac rect // figure-fraction placement
	is3D bool

	title, xlabel, ylabel, zlabel string
	grid                          bool
	xlim, ylim                    *[2]float64
	yInverted                     bool

	artists  []Artist
	cycle    int
	legend   *Legend
	colorbar Mappable
}

// Figure returns the figure that owns the axes.
func (a *Axes) Figure() *Figure { return a.fig }

// Is3D reports whether the axes uses a 3D projection.
func (a *Axes) Is3D() bool { return a.is3D }

// SetTitle sets the axes title.
func (a *Axes) SetTitle(s string) { a.title = s }

// Title returns the axes title.
func (a *Axes) Title() string { return a.title }

// SetXLabel sets the x-axis label.
func (a *Axes) SetXLabel(s string) { a.xlabel = s }

// SetYLabel sets the y-axis label.
func (a *Axes) SetYLabel(s string) { a.ylabel = s }

// SetZLabel sets the z-axis label of a 3D axes.
func (a *Axes) SetZLabel(s string) { a.zlabel = s }

// Grid turns grid lines on or off.
func (a *Axes) Grid(on bool) { a.grid = on }

// SetXLim fixes the x-axis range, disabling autoscaling on x.
func (a *Axes) SetXLim(lo, hi float64) { a.xlim = &[2]float64{lo, hi} }

// SetYLim fixes the y-axis range, disabling autoscaling on y.
func (a *Axes) SetYLim(lo, hi float64) { a.ylim = &[2]float64{lo, hi} }

// Artists returns the artists in drawing order.
func (a *Axes) Artists() []Artist { return append([]Artist(nil), a.artists...) }

// LegendBox returns the axes legend, or nil if none was requested.
func (a *Axes) LegendBox() *Legend { return a.legend }

func (a *Axes) theme() *style.Theme { return a.fig.theme }

func (a *Axes) series(xs, ys []float64, opts []SeriesOption) (series, error) {
	if a.is3D {
		return series{}, errs.New(errs.ErrCodeInvalidInput, "2D series cannot be added to a 3D axes")
	}
	if len(xs) != len(ys) {
		return series{}, errs.New(errs.ErrCodeInvalidInput, "x and y must have the same length: %d != %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return series{}, errs.New(errs.ErrCodeInvalidInput, "series has no data")
	}
	var cfg seriesConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	s := series{
		xs:         append([]float64(nil), xs...),
		ys:         append([]float64(nil), ys...),
		label:      cfg.label,
		color:      cfg.color,
		lineWidth:  cfg.lineWidth,
		markerSize: cfg.markerSize,
	}
	if s.color == nil {
		s.color = a.nextColor()
	}
	if s.lineWidth <= 0 {
		s.lineWidth = a.theme().Lines.Width
	}
	if s.markerSize <= 0 {
		s.markerSize = a.theme().Lines.MarkerSize
	}
	return s, nil
}

func (a *Axes) nextColor() color.Color {
	c := a.theme().CycleColor(a.cycle)
	a.cycle++
	return c
}

// Plot adds a line through (xs[i], ys[i]).
func (a *Axes) Plot(xs, ys []float64, opts ...SeriesOption) (*Line, error) {
	s, err := a.series(xs, ys, opts)
	if err != nil {
		return nil, err
	}
	l := &Line{series: s}
	a.artists = append(a.artists, l)
	return l, nil
}

// Scatter adds unconnected circular markers at (xs[i], ys[i]).
func (a *Axes) Scatter(xs, ys []float64, opts ...SeriesOption) (*Scatter, error) {
	s, err := a.series(xs, ys, opts)
	if err != nil {
		return nil, err
	}
	sc := &Scatter{series: s}
	a.artists = append(a.artists, sc)
	return sc, nil
}

// Bar adds bars of the given heights centered on xs.
func (a *Axes) Bar(xs, heights []float64, opts ...SeriesOption) (*Bars, error) {
	s, err := a.series(xs, heights, opts)
	if err != nil {
		return nil, err
	}
	var cfg seriesConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	width := cfg.barWidth
	if width <= 0 {
		width = 0.8
	}
	b := &Bars{series: s, widths: constant(len(xs), width)}
	a.artists = append(a.artists, b)
	return b, nil
}

// Hist bins data into bins equal-width bins over its finite range and
// draws the counts as adjacent bars. It returns the counts and the bins+1
// bin edges.
func (a *Axes) Hist(data []float64, bins int, opts ...SeriesOption) (counts, edges []float64, err error) {
	if bins < 1 {
		return nil, nil, errs.New(errs.ErrCodeInvalidInput, "bins must be at least 1, got %d", bins)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		if finite(v) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if lo > hi {
		return nil, nil, errs.New(errs.ErrCodeInvalidInput, "histogram data has no finite values")
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	width := (hi - lo) / float64(bins)
	edges = make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi
	counts = make([]float64, bins)
	for _, v := range data {
		if !finite(v) {
			continue
		}
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1 // the last bin is closed on the right
		}
		counts[i]++
	}

	s, err := a.series(edges[:bins], counts, opts)
	if err != nil {
		return nil, nil, err
	}
	b := &Bars{series: s, widths: constant(bins, width), alignEdge: true}
	a.artists = append(a.artists, b)
	return counts, edges, nil
}

// Imshow displays a 2D array as a color-mapped image with row 0 at the
// top. Without WithColormap the theme's image colormap is used.
func (a *Axes) Imshow(data [][]float64, opts ...MapOption) (*Image, error) {
	if a.is3D {
		return nil, errs.New(errs.ErrCodeInvalidInput, "images cannot be added to a 3D axes")
	}
	rows, cols, err := gridShape(data)
	if err != nil {
		return nil, err
	}
	m, err := a.resolveMapping(ResolveMap(opts...), data)
	if err != nil {
		return nil, err
	}
	img := &Image{mapping: m, data: copyGrid(data), rows: rows, cols: cols}
	a.artists = append(a.artists, img)
	a.yInverted = true
	return img, nil
}

// PlotSurface draws the surface Z over the X/Y grid on a 3D axes.
// Without WithColormap the theme's image colormap is used; without a
// full WithRange the range is the finite min/max of Z.
func (a *Axes) PlotSurface(x, y, z [][]float64, opts ...MapOption) (*Surface, error) {
	if !a.is3D {
		return nil, errs.New(errs.ErrCodeInvalidInput, "surfaces need an axes created WithProjection3D")
	}
	rows, cols, err := gridShape(z)
	if err != nil {
		return nil, err
	}
	for name, g := range map[string][][]float64{"X": x, "Y": y} {
		r, c, err := gridShape(g)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "%s grid", name)
		}
		if r != rows || c != cols {
			return nil, errs.New(errs.ErrCodeInvalidInput, "%s grid is %dx%d, Z is %dx%d", name, r, c, rows, cols)
		}
	}
	if rows < 2 || cols < 2 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "surface grid must be at least 2x2, got %dx%d", rows, cols)
	}
	m, err := a.resolveMapping(ResolveMap(opts...), z)
	if err != nil {
		return nil, err
	}
	s := &Surface{mapping: m, x: copyGrid(x), y: copyGrid(y), z: copyGrid(z)}
	a.artists = append(a.artists, s)
	return s, nil
}

// Legend adds a legend listing every labeled artist. Options left unset
// fall back to the theme's legend settings.
func (a *Axes) Legend(opts ...LegendOption) *Legend {
	cfg := ResolveLegend(opts...)
	th := a.theme()
	l := &Legend{
		loc:   th.Legend.Loc,
		frame: th.Legend.FrameOn,
	}
	if cfg.Loc != "" {
		l.loc = cfg.Loc
	}
	if !l.loc.Valid() {
		l.loc = style.LocBest
	}
	if cfg.Anchor != nil {
		anchor := *cfg.Anchor
		l.anchor = &anchor
	}
	if cfg.Frame != nil {
		l.frame = *cfg.Frame
	}
	a.legend = l
	return l
}

// Colorbar attaches a colorbar for m to the right of the axes.
func (a *Axes) Colorbar(m Mappable) error {
	if m == nil {
		return errs.New(errs.ErrCodeInvalidInput, "colorbar needs a color-mapped artist")
	}
	a.colorbar = m
	return nil
}

func gridShape(g [][]float64) (rows, cols int, err error) {
	rows = len(g)
	if rows == 0 || len(g[0]) == 0 {
		return 0, 0, errs.New(errs.ErrCodeInvalidInput, "grid is empty")
	}
	cols = len(g[0])
	for i, row := range g {
		if len(row) != cols {
			return 0, 0, errs.New(errs.ErrCodeInvalidInput, "grid row %d has %d values, want %d", i, len(row), cols)
		}
	}
	return rows, cols, nil
}

func copyGrid(g [][]float64) [][]float64 {
	out := make([][]float64, len(g))
	for i, row := range g {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func errShape(wantRows, wantCols, gotRows, gotCols int) error {
	return errs.New(errs.ErrCodeInvalidInput, "grid is %dx%d, new data is %dx%d", wantRows, wantCols, gotRows, gotCols)
}
