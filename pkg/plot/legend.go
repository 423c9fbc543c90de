package plot

import (
	"math"
	"strings"

	"github.com/matzehuels/botionplot/pkg/style"
)

// Legend lists the labeled artists of an axes.
type Legend struct {
	loc    style.Location
	anchor *Anchor
	frame  bool
}

// Loc returns the legend location keyword.
func (l *Legend) Loc() style.Location { return l.loc }

// Anchor returns the anchor point in axes fraction, if one was set.
func (l *Legend) Anchor() (Anchor, bool) {
	if l.anchor == nil {
		return Anchor{}, false
	}
	return *l.anchor, true
}

// Frame reports whether the legend draws a frame.
func (l *Legend) Frame() bool { return l.frame }

// locFractions returns which point of the legend box (as fractions from
// its left and bottom) a location keyword aligns.
func locFractions(loc style.Location) (fx, fy float64) {
	switch loc {
	case style.LocUpperLeft:
		return 0, 1
	case style.LocLowerLeft:
		return 0, 0
	case style.LocLowerRight:
		return 1, 0
	case style.LocRight, style.LocCenterRight:
		return 1, 0.5
	case style.LocCenterLeft:
		return 0, 0.5
	case style.LocLowerCenter:
		return 0.5, 0
	case style.LocUpperCenter:
		return 0.5, 1
	case style.LocCenter:
		return 0.5, 0.5
	default:
		// "best" and "upper right".
		return 1, 1
	}
}

func legendEntries(artists []Artist) []Artist {
	var out []Artist
	for _, a := range artists {
		if l := a.Label(); l != "" && !strings.HasPrefix(l, "_") {
			out = append(out, a)
		}
	}
	return out
}

// box computes the legend rectangle for the given axes rectangle.
func (l *Legend) box(axes rect, w, h, pad float64) rect {
	fx, fy := locFractions(l.loc)
	var px, py float64
	if l.anchor != nil {
		px = axes.x + l.anchor.X*axes.w
		py = axes.y + axes.h - l.anchor.Y*axes.h
	} else {
		px = axes.x + pad + fx*(axes.w-2*pad)
		py = axes.y + axes.h - pad - fy*(axes.h-2*pad)
	}
	return rect{x: px - fx*w, y: py - (1-fy)*h, w: w, h: h}
}

func (l *Legend) draw(r *renderer, axes rect, artists []Artist) {
	entries := legendEntries(artists)
	if len(entries) == 0 {
		return
	}
	th := r.theme
	size := th.Legend.FontSize
	fontPx := r.px(size)
	pad := 0.4 * fontPx
	handleW := 2 * fontPx
	gap := 0.8 * fontPx
	rowH := 1.4 * fontPx

	textW := 0.0
	for _, e := range entries {
		w, _ := r.measure(e.Label(), size)
		textW = math.Max(textW, w)
	}
	w := 2*pad + handleW + gap + textW
	h := 2*pad + float64(len(entries))*rowH
	b := l.box(axes, w, h, 0.5*fontPx)

	if l.frame {
		r.dc.SetDash()
		r.dc.DrawRoundedRectangle(b.x, b.y, b.w, b.h, 0.2*fontPx)
		r.dc.SetColor(style.MustColor(th.Legend.FaceColor))
		r.dc.FillPreserve()
		r.dc.SetColor(style.MustColor(th.Legend.EdgeColor))
		r.dc.SetLineWidth(r.px(th.Axes.LineWidth))
		r.dc.Stroke()
	}

	textColor := style.MustColor(th.Text.Color)
	for i, e := range entries {
		rowTop := b.y + pad + float64(i)*rowH
		handle := rect{x: b.x + pad, y: rowTop + 0.2*rowH, w: handleW, h: 0.6 * rowH}
		e.drawHandle(r, handle)
		r.text(e.Label(), handle.x+handleW+gap, rowTop+rowH/2, 0, 0.5, size, textColor)
	}
}
