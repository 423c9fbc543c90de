package plot

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/botionplot/pkg/colormap"
	errs "github.com/matzehuels/botionplot/pkg/errors"
)

// Artist is anything drawn inside an axes.
type Artist interface {
	// Label is the legend text; empty or "_"-prefixed labels are not listed.
	Label() string

	dataBounds() bounds
	draw(r *renderer, t transform)
	drawHandle(r *renderer, box rect)
}

// Mappable is an artist colored through a colormap, usable by Colorbar.
type Mappable interface {
	Artist
	Colormap() *colormap.Colormap
	Norm() colormap.Norm
}

// series is the shared state of line, scatter and bar artists.
type series struct {
	xs, ys     []float64
	label      string
	color      color.Color
	lineWidth  float64 // points
	markerSize float64 // points
}

// Label returns the legend label.
func (s *series) Label() string { return s.label }

// Color returns the series color.
func (s *series) Color() color.Color { return s.color }

// Data returns copies of the series coordinates.
func (s *series) Data() (xs, ys []float64) {
	return append([]float64(nil), s.xs...), append([]float64(nil), s.ys...)
}

// SetData replaces the series coordinates, typically from an animation
// update callback.
func (s *series) SetData(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return errs.New(errs.ErrCodeInvalidInput, "x and y must have the same length: %d != %d", len(xs), len(ys))
	}
	s.xs = append(s.xs[:0], xs...)
	s.ys = append(s.ys[:0], ys...)
	return nil
}

func (s *series) dataBounds() bounds {
	b := emptyBounds()
	for i := range s.xs {
		b.add(s.xs[i], s.ys[i])
	}
	return b
}

// Line is a polyline series.
type Line struct {
	series
}

func (l *Line) draw(r *renderer, t transform) {
	dc := r.dc
	dc.SetColor(l.color)
	dc.SetLineWidth(r.px(l.lineWidth))
	dc.SetDash()
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	started := false
	for i := range l.xs {
		if !finite(l.xs[i]) || !finite(l.ys[i]) {
			// Non-finite points break the line.
			started = false
			continue
		}
		x, y := t.apply(l.xs[i], l.ys[i])
		if !started {
			dc.NewSubPath()
			dc.MoveTo(x, y)
			started = true
			continue
		}
		dc.LineTo(x, y)
	}
	dc.Stroke()
}

func (l *Line) drawHandle(r *renderer, box rect) {
	r.dc.SetColor(l.color)
	r.dc.SetLineWidth(r.px(l.lineWidth))
	r.dc.SetDash()
	r.dc.DrawLine(box.x, box.y+box.h/2, box.x+box.w, box.y+box.h/2)
	r.dc.Stroke()
}

// Scatter is a series of circular markers.
type Scatter struct {
	series
}

func (s *Scatter) draw(r *renderer, t transform) {
	radius := r.px(s.markerSize) / 2
	r.dc.SetColor(s.color)
	for i := range s.xs {
		if !finite(s.xs[i]) || !finite(s.ys[i]) {
			continue
		}
		x, y := t.apply(s.xs[i], s.ys[i])
		r.dc.DrawCircle(x, y, radius)
		r.dc.Fill()
	}
}

func (s *Scatter) drawHandle(r *renderer, box rect) {
	r.dc.SetColor(s.color)
	r.dc.DrawCircle(box.x+box.w/2, box.y+box.h/2, math.Min(r.px(s.markerSize)/2, box.h/2))
	r.dc.Fill()
}

// Bars is a bar series; the y values are bar heights from zero.
type Bars struct {
	series
	widths    []float64
	alignEdge bool // x is the left edge instead of the center
}

func (b *Bars) left(i int) float64 {
	if b.alignEdge {
		return b.xs[i]
	}
	return b.xs[i] - b.widths[i]/2
}

func (b *Bars) dataBounds() bounds {
	out := emptyBounds()
	for i := range b.xs {
		out.add(b.left(i), 0)
		out.add(b.left(i)+b.widths[i], b.ys[i])
	}
	return out
}

func (b *Bars) draw(r *renderer, t transform) {
	r.dc.SetColor(b.color)
	for i := range b.xs {
		if !finite(b.xs[i]) || !finite(b.ys[i]) {
			continue
		}
		x0, y0 := t.apply(b.left(i), 0)
		x1, y1 := t.apply(b.left(i)+b.widths[i], b.ys[i])
		r.dc.DrawRectangle(math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0))
		r.dc.Fill()
	}
}

func (b *Bars) drawHandle(r *renderer, box rect) {
	r.dc.SetColor(b.color)
	r.dc.DrawRectangle(box.x, box.y, box.w, box.h)
	r.dc.Fill()
}

// mapping is the shared state of color-mapped artists.
type mapping struct {
	cmap *colormap.Colormap
	norm colormap.Norm
}

// Colormap returns the colormap in use.
func (m *mapping) Colormap() *colormap.Colormap { return m.cmap }

// Norm returns the value range mapped onto the colormap.
func (m *mapping) Norm() colormap.Norm { return m.norm }

// Label is empty: color-mapped artists are not listed in legends.
func (m *mapping) Label() string { return "" }

func (m *mapping) drawHandle(*renderer, rect) {}

func (m *mapping) colorOf(v float64) color.Color { return m.cmap.At(m.norm.Scale(v)) }

// resolveMapping resolves the colormap name and fills unset range ends from data.
func (a *Axes) resolveMapping(cfg MapConfig, data [][]float64) (mapping, error) {
	name := cfg.Colormap
	if name == "" {
		name = a.theme().Image.Colormap
	}
	cm, err := a.fig.registry.Get(name)
	if err != nil {
		return mapping{}, err
	}
	norm, ok := colormap.NormFor(data)
	if !ok {
		norm = colormap.Norm{VMin: 0, VMax: 1}
	}
	if cfg.VMin != nil {
		norm.VMin = *cfg.VMin
	}
	if cfg.VMax != nil {
		norm.VMax = *cfg.VMax
	}
	return mapping{cmap: cm, norm: norm}, nil
}

// Image is a color-mapped 2D array drawn cell by cell.
type Image struct {
	mapping
	data       [][]float64
	rows, cols int
}

// Shape returns the image dimensions.
func (im *Image) Shape() (rows, cols int) { return im.rows, im.cols }

// SetData replaces the image values; the shape must not change.
func (im *Image) SetData(data [][]float64) error {
	rows, cols, err := gridShape(data)
	if err != nil {
		return err
	}
	if rows != im.rows || cols != im.cols {
		return errs.New(errs.ErrCodeInvalidInput, "image is %dx%d, new data is %dx%d", im.rows, im.cols, rows, cols)
	}
	im.data = copyGrid(data)
	return nil
}

func (im *Image) dataBounds() bounds {
	return bounds{xmin: -0.5, xmax: float64(im.cols) - 0.5, ymin: -0.5, ymax: float64(im.rows) - 0.5}
}

func (im *Image) raster() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.cols, im.rows))
	for y, row := range im.data {
		for x, v := range row {
			out.Set(x, y, im.colorOf(v))
		}
	}
	return out
}

func (im *Image) draw(r *renderer, t transform) {
	x0, y0 := t.apply(-0.5, -0.5)
	x1, y1 := t.apply(float64(im.cols)-0.5, float64(im.rows)-0.5)
	left, top := math.Min(x0, x1), math.Min(y0, y1)
	w, h := int(math.Round(math.Abs(x1-x0))), int(math.Round(math.Abs(y1-y0)))
	if w < 1 || h < 1 {
		return
	}
	src := im.raster()
	if x1 < x0 {
		src = imaging.FlipH(src)
	}
	if y1 < y0 {
		src = imaging.FlipV(src)
	}
	scaled := imaging.Resize(src, w, h, imaging.NearestNeighbor)
	r.dc.DrawImage(scaled, int(math.Round(left)), int(math.Round(top)))
}
