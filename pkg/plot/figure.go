package plot

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/google/uuid"

	"github.com/matzehuels/botionplot/pkg/colormap"
	errs "github.com/matzehuels/botionplot/pkg/errors"
	"github.com/matzehuels/botionplot/pkg/style"
)

// Figure is a canvas holding one or more subplots.
type Figure struct {
	// ID identifies the figure for its whole lifetime.
	ID uuid.UUID
	// Number is the 1-based creation index within its manager.
	Number int

	theme    *style.Theme
	registry *colormap.Registry
	axes     []*Axes
}

// Theme returns the figure's theme snapshot.
func (f *Figure) Theme() *style.Theme { return f.theme }

// Size returns the figure size in pixels.
func (f *Figure) Size() (w, h int) { return f.theme.FigurePixels() }

// Axes returns the subplots in the order they were added.
func (f *Figure) Axes() []*Axes { return append([]*Axes(nil), f.axes...) }

// Title returns the first non-empty subplot title.
func (f *Figure) Title() (string, bool) {
	for _, ax := range f.axes {
		if ax.title != "" {
			return ax.title, true
		}
	}
	return "", false
}

// AddSubplot adds the index-th cell (1-based, row-major) of a rows×cols
// grid. Out-of-range arguments are clamped into the grid.
func (f *Figure) AddSubplot(rows, cols, index int, opts ...SubplotOption) *Axes {
	var cfg subplotConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	rows, cols = max(rows, 1), max(cols, 1)
	index = min(max(index, 1), rows*cols)

	sp := f.theme.Figure.Subplot
	cw := (sp.Right - sp.Left) / (float64(cols) + sp.WSpace*float64(cols-1))
	ch := (sp.Top - sp.Bottom) / (float64(rows) + sp.HSpace*float64(rows-1))
	col := (index - 1) % cols
	row := (index - 1) / cols

	ax := &Axes{
		fig:  f,
		is3D: cfg.projection3D,
		grid: f.theme.Axes.Grid,
		frac: rect{
			x: sp.Left + float64(col)*cw*(1+sp.WSpace),
			y: 1 - sp.Top + float64(row)*ch*(1+sp.HSpace),
			w: cw,
			h: ch,
		},
	}
	f.axes = append(f.axes, ax)
	return ax
}

// Render rasterizes the figure at its pixel size.
func (f *Figure) Render(opts ...RenderOption) (image.Image, error) {
	cfg := renderConfig{background: style.MustColor(f.theme.Figure.FaceColor)}
	for _, opt := range opts {
		opt(&cfg)
	}

	w, h := f.Size()
	if w <= 0 || h <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "figure %d has empty size %dx%d", f.Number, w, h)
	}

	dc := gg.NewContext(w, h)
	r := newRenderer(dc, f.theme)
	defer r.close()

	dc.SetColor(cfg.background)
	dc.Clear()

	for _, ax := range f.axes {
		if err := ax.draw(r, float64(w), float64(h)); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

// rect is an axis-aligned rectangle; x/y is the top-left corner.
type rect struct {
	x, y, w, h float64
}

func (r rect) scale(w, h float64) rect {
	return rect{x: r.x * w, y: r.y * h, w: r.w * w, h: r.h * h}
}
