package plot

import (
	"math"

	"github.com/matzehuels/botionplot/pkg/style"
)

// autoscaleMargin is the fraction of the data span added on each side.
const autoscaleMargin = 0.05

// limits returns the x and y ranges, honoring SetXLim/SetYLim.
func (a *Axes) limits() (xlo, xhi, ylo, yhi float64) {
	b := emptyBounds()
	sticky := false
	for _, art := range a.artists {
		b = b.union(art.dataBounds())
		if _, ok := art.(*Image); ok {
			sticky = true
		}
	}
	if b.empty() {
		b = bounds{0, 1, 0, 1}
		sticky = true
	}
	margin := autoscaleMargin
	if sticky {
		margin = 0
	}
	xlo, xhi = padRange(b.xmin, b.xmax, margin)
	ylo, yhi = padRange(b.ymin, b.ymax, margin)
	if a.yInverted {
		ylo, yhi = yhi, ylo
	}
	if a.xlim != nil {
		xlo, xhi = a.xlim[0], a.xlim[1]
	}
	if a.ylim != nil {
		ylo, yhi = a.ylim[0], a.ylim[1]
	}
	return xlo, xhi, ylo, yhi
}

// placement returns the axes and colorbar rectangles in pixels.
func (a *Axes) placement(figW, figH float64) (axes, cbar rect) {
	axes = a.frac.scale(figW, figH)
	if a.colorbar == nil {
		return axes, rect{}
	}
	cbW := 0.05 * axes.w
	gap := 0.05 * axes.w
	axes.w -= cbW + 2*gap
	cbar = rect{x: axes.x + axes.w + gap, y: axes.y, w: cbW, h: axes.h}
	return axes, cbar
}

func (a *Axes) draw(r *renderer, figW, figH float64) error {
	box, cbar := a.placement(figW, figH)
	th := r.theme
	dc := r.dc

	dc.SetColor(style.MustColor(th.Axes.FaceColor))
	dc.DrawRectangle(box.x, box.y, box.w, box.h)
	dc.Fill()

	if a.is3D {
		a.draw3D(r, box)
	} else {
		a.draw2D(r, box)
	}

	if a.colorbar != nil {
		drawColorbar(r, cbar, a.colorbar)
	}
	if a.legend != nil {
		a.legend.draw(r, box, a.artists)
	}
	return nil
}

func (a *Axes) draw2D(r *renderer, box rect) {
	th := r.theme
	dc := r.dc
	xlo, xhi, ylo, yhi := a.limits()
	t := transform{box: box, xlo: xlo, xhi: xhi, ylo: ylo, yhi: yhi}

	tickPts := th.Ticks.LabelSize
	tickPx := r.px(tickPts)
	xticks, xstep := niceTicks(xlo, xhi, tickCount(box.w, tickPx))
	yticks, ystep := niceTicks(ylo, yhi, tickCount(box.h, tickPx))

	if a.grid {
		dc.SetColor(style.MustColor(th.Grid.Color))
		width := r.px(th.Grid.LineWidth)
		dc.SetLineWidth(width)
		r.dash(th.Grid.LineStyle, width)
		for _, v := range xticks {
			x := t.x(v)
			dc.DrawLine(x, box.y, x, box.y+box.h)
			dc.Stroke()
		}
		for _, v := range yticks {
			y := t.y(v)
			dc.DrawLine(box.x, y, box.x+box.w, y)
			dc.Stroke()
		}
		dc.SetDash()
	}

	dc.Push()
	dc.DrawRectangle(box.x, box.y, box.w, box.h)
	dc.Clip()
	for _, art := range a.artists {
		art.draw(r, t)
	}
	dc.ResetClip()
	dc.Pop()

	// Spines.
	dc.SetDash()
	dc.SetColor(style.MustColor(th.Axes.EdgeColor))
	dc.SetLineWidth(r.px(th.Axes.LineWidth))
	dc.DrawRectangle(box.x, box.y, box.w, box.h)
	dc.Stroke()

	tickLen := r.px(th.Ticks.Length)
	labelGap := 0.35 * tickPx

	xc := style.MustColor(th.Ticks.XColor)
	xLabelBottom := box.y + box.h + tickLen + labelGap
	for _, v := range xticks {
		x := t.x(v)
		dc.SetColor(xc)
		dc.DrawLine(x, box.y+box.h, x, box.y+box.h+tickLen)
		dc.Stroke()
		label := formatTick(v, xstep)
		r.text(label, x, box.y+box.h+tickLen+labelGap, 0.5, 1, tickPts, xc)
		_, lh := r.measure(label, tickPts)
		xLabelBottom = math.Max(xLabelBottom, box.y+box.h+tickLen+labelGap+lh)
	}

	yc := style.MustColor(th.Ticks.YColor)
	yLabelLeft := box.x - tickLen - labelGap
	for _, v := range yticks {
		y := t.y(v)
		dc.SetColor(yc)
		dc.DrawLine(box.x-tickLen, y, box.x, y)
		dc.Stroke()
		label := formatTick(v, ystep)
		r.text(label, box.x-tickLen-labelGap, y, 1, 0.5, tickPts, yc)
		lw, _ := r.measure(label, tickPts)
		yLabelLeft = math.Min(yLabelLeft, box.x-tickLen-labelGap-lw)
	}

	a.drawLabels(r, box, xLabelBottom, yLabelLeft)
}

// drawLabels draws the title above the axes, the x label below the tick
// labels and the y label, rotated, left of them.
func (a *Axes) drawLabels(r *renderer, box rect, xLabelTop, yLabelRight float64) {
	th := r.theme
	labelColor := style.MustColor(th.Axes.LabelColor)
	textColor := style.MustColor(th.Text.Color)
	pad := r.px(th.Axes.LabelSize) * 0.4

	r.text(a.title, box.x+box.w/2, box.y-r.px(th.Axes.TitleSize)*0.5, 0.5, 0, th.Axes.TitleSize, textColor)
	r.text(a.xlabel, box.x+box.w/2, xLabelTop+pad, 0.5, 1, th.Axes.LabelSize, labelColor)
	r.textRotated(a.ylabel, yLabelRight-pad, box.y+box.h/2, 0.5, 0, th.Axes.LabelSize, labelColor)
}

func (a *Axes) draw3D(r *renderer, box rect) {
	th := r.theme
	dc := r.dc

	var surfaces []*Surface
	var scene box3
	for _, art := range a.artists {
		if s, ok := art.(*Surface); ok {
			if len(surfaces) == 0 {
				scene = s.extent()
			} else {
				scene = scene.union(s.extent())
			}
			surfaces = append(surfaces, s)
		}
	}
	if len(surfaces) == 0 {
		scene = box3{max: [3]float64{1, 1, 1}}
	}
	cam := newCamera(scene, box)

	// Floor of the bounding box, then the three vertical edges at the back.
	dc.SetDash()
	dc.SetColor(style.MustColor(th.Grid.Color))
	dc.SetLineWidth(r.px(th.Axes.LineWidth))
	floor := []int{0b000, 0b001, 0b011, 0b010}
	for i := range floor {
		x0, y0, _ := cam.corner(floor[i])
		x1, y1, _ := cam.corner(floor[(i+1)%len(floor)])
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
	}
	for _, c := range floor {
		x0, y0, d0 := cam.corner(c)
		x1, y1, _ := cam.corner(c | 0b100)
		if d0 < 0 {
			dc.DrawLine(x0, y0, x1, y1)
			dc.Stroke()
		}
	}

	for _, s := range surfaces {
		s.drawProjected(r, cam)
	}

	labelColor := style.MustColor(th.Axes.LabelColor)
	size := th.Axes.LabelSize
	mid := func(c0, c1 int) (float64, float64) {
		x0, y0, _ := cam.corner(c0)
		x1, y1, _ := cam.corner(c1)
		return (x0 + x1) / 2, (y0 + y1) / 2
	}
	off := r.px(size) * 1.5
	if x, y := mid(0b000, 0b001); a.xlabel != "" {
		r.text(a.xlabel, x, y+off, 0.5, 0.5, size, labelColor)
	}
	if x, y := mid(0b001, 0b011); a.ylabel != "" {
		r.text(a.ylabel, x+off, y+off/2, 0.5, 0.5, size, labelColor)
	}
	if x, y := mid(0b001, 0b101); a.zlabel != "" {
		r.text(a.zlabel, x+off, y, 0, 0.5, size, labelColor)
	}
	r.text(a.title, box.x+box.w/2, box.y-r.px(th.Axes.TitleSize)*0.5, 0.5, 0, th.Axes.TitleSize, style.MustColor(th.Text.Color))
}
