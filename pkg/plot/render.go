package plot

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/matzehuels/botionplot/pkg/fonts"
	"github.com/matzehuels/botionplot/pkg/style"
)

// renderer carries the drawing context and per-render font faces.
type renderer struct {
	dc    *gg.Context
	theme *style.Theme
	font  *truetype.Font
	faces map[float64]font.Face
}

func newRenderer(dc *gg.Context, th *style.Theme) *renderer {
	f, _ := fonts.Resolve(th.FontFamilies())
	return &renderer{dc: dc, theme: th, font: f, faces: map[float64]font.Face{}}
}

func (r *renderer) close() {
	for _, f := range r.faces {
		f.Close()
	}
}

// px converts points to pixels.
func (r *renderer) px(points float64) float64 { return r.theme.Px(points) }

func (r *renderer) useFont(points float64) {
	face, ok := r.faces[points]
	if !ok {
		face = fonts.Face(r.font, points, r.theme.Figure.DPI)
		r.faces[points] = face
	}
	r.dc.SetFontFace(face)
}

// text draws s anchored at (x, y); ax/ay follow gg.DrawStringAnchored.
func (r *renderer) text(s string, x, y, ax, ay, points float64, c color.Color) {
	if s == "" {
		return
	}
	r.useFont(points)
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// textRotated draws s rotated 90° counter-clockwise about (x, y).
func (r *renderer) textRotated(s string, x, y, ax, ay, points float64, c color.Color) {
	if s == "" {
		return
	}
	r.dc.Push()
	r.dc.RotateAbout(-math.Pi/2, x, y)
	r.text(s, x, y, ax, ay, points, c)
	r.dc.Pop()
}

func (r *renderer) measure(s string, points float64) (w, h float64) {
	r.useFont(points)
	return r.dc.MeasureString(s)
}

// dash sets the dash pattern for a grid line style at width px.
func (r *renderer) dash(lineStyle string, width float64) {
	switch lineStyle {
	case style.LineDashed:
		r.dc.SetDash(3.7*width, 1.6*width)
	case style.LineDotted:
		r.dc.SetDash(width, 1.65*width)
	default:
		r.dc.SetDash()
	}
}

// transform maps data coordinates into a pixel rectangle.
type transform struct {
	box      rect
	xlo, xhi float64 // data x at the left and right edges
	ylo, yhi float64 // data y at the bottom and top edges
}

func (t transform) x(v float64) float64 {
	return t.box.x + (v-t.xlo)/(t.xhi-t.xlo)*t.box.w
}

func (t transform) y(v float64) float64 {
	return t.box.y + t.box.h - (v-t.ylo)/(t.yhi-t.ylo)*t.box.h
}

func (t transform) apply(x, y float64) (float64, float64) { return t.x(x), t.y(y) }

// bounds is a data-space bounding box.
type bounds struct {
	xmin, xmax, ymin, ymax float64
}

func emptyBounds() bounds {
	return bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
}

func (b bounds) empty() bool { return b.xmin > b.xmax || b.ymin > b.ymax }

func (b *bounds) add(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	b.xmin, b.xmax = math.Min(b.xmin, x), math.Max(b.xmax, x)
	b.ymin, b.ymax = math.Min(b.ymin, y), math.Max(b.ymax, y)
}

func (b bounds) union(o bounds) bounds {
	if o.empty() {
		return b
	}
	if b.empty() {
		return o
	}
	return bounds{
		math.Min(b.xmin, o.xmin), math.Max(b.xmax, o.xmax),
		math.Min(b.ymin, o.ymin), math.Max(b.ymax, o.ymax),
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// padRange widens [lo, hi] by margin on each side; a degenerate range
// grows to a unit interval around its value.
func padRange(lo, hi, margin float64) (float64, float64) {
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	d := (hi - lo) * margin
	return lo - d, hi + d
}
