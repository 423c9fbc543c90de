package plot

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/botionplot/pkg/style"
)

func drawColorbar(r *renderer, box rect, m Mappable) {
	w, h := int(math.Round(box.w)), int(math.Round(box.h))
	if w < 1 || h < 1 {
		return
	}
	th := r.theme
	dc := r.dc

	var strip image.Image = m.Colormap().Strip(1, 256, true)
	strip = imaging.Resize(strip, w, h, imaging.Linear)
	dc.DrawImage(strip, int(math.Round(box.x)), int(math.Round(box.y)))

	dc.SetDash()
	dc.SetColor(style.MustColor(th.Axes.EdgeColor))
	dc.SetLineWidth(r.px(th.Axes.LineWidth))
	dc.DrawRectangle(box.x, box.y, box.w, box.h)
	dc.Stroke()

	norm := m.Norm()
	tickPts := th.Ticks.LabelSize
	ticks, step := niceTicks(norm.VMin, norm.VMax, tickCount(box.h, r.px(tickPts)))
	t := transform{box: box, xlo: 0, xhi: 1, ylo: norm.VMin, yhi: norm.VMax}
	tickLen := r.px(th.Ticks.Length)
	yc := style.MustColor(th.Ticks.YColor)
	for _, v := range ticks {
		y := t.y(v)
		dc.SetColor(yc)
		dc.DrawLine(box.x+box.w, y, box.x+box.w+tickLen, y)
		dc.Stroke()
		r.text(formatTick(v, step), box.x+box.w+tickLen+0.35*r.px(tickPts), y, 0, 0.5, tickPts, yc)
	}
}
