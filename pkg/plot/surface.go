package plot

import (
	"math"
	"sort"

	"github.com/fogleman/gg"
)

// Default 3D view angles in degrees.
const (
	viewAzimuth   = -60.0
	viewElevation = 30.0
)

// Surface is a color-mapped 3D surface over a rectangular grid.
type Surface struct {
	mapping
	x, y, z [][]float64
}

// Z returns a copy of the height grid.
func (s *Surface) Z() [][]float64 { return copyGrid(s.z) }

// SetZ replaces the heights, keeping the X/Y grid. The shape must match.
func (s *Surface) SetZ(z [][]float64) error {
	if _, _, err := gridShape(z); err != nil {
		return err
	}
	if len(z) != len(s.z) || len(z[0]) != len(s.z[0]) {
		return errShape(len(s.z), len(s.z[0]), len(z), len(z[0]))
	}
	s.z = copyGrid(z)
	return nil
}

// dataBounds is unused on 3D axes; the surface reports its X/Y footprint.
func (s *Surface) dataBounds() bounds {
	b := emptyBounds()
	for i := range s.x {
		for j := range s.x[i] {
			b.add(s.x[i][j], s.y[i][j])
		}
	}
	return b
}

// draw is a no-op in 2D; 3D axes call drawProjected instead.
func (s *Surface) draw(*renderer, transform) {}

// box3 is the data extent of a 3D scene.
type box3 struct {
	min, max [3]float64
}

func (s *Surface) extent() box3 {
	b := box3{
		min: [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)},
		max: [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	for i := range s.z {
		for j := range s.z[i] {
			p := [3]float64{s.x[i][j], s.y[i][j], s.z[i][j]}
			for k, v := range p {
				if finite(v) {
					b.min[k] = math.Min(b.min[k], v)
					b.max[k] = math.Max(b.max[k], v)
				}
			}
		}
	}
	return b
}

func (b box3) union(o box3) box3 {
	for k := 0; k < 3; k++ {
		b.min[k] = math.Min(b.min[k], o.min[k])
		b.max[k] = math.Max(b.max[k], o.max[k])
	}
	return b
}

// camera projects data points into the axes rectangle with an
// orthographic view at fixed azimuth and elevation.
type camera struct {
	box           box3
	sinAz, cosAz  float64
	sinEl, cosEl  float64
	cx, cy, scale float64
}

func newCamera(b box3, area rect) camera {
	for k := 0; k < 3; k++ {
		if !(b.min[k] < b.max[k]) {
			if finite(b.min[k]) {
				b.min[k], b.max[k] = b.min[k]-0.5, b.min[k]+0.5
			} else {
				b.min[k], b.max[k] = 0, 1
			}
		}
	}
	az, el := gg.Radians(viewAzimuth), gg.Radians(viewElevation)
	return camera{
		box:   b,
		sinAz: math.Sin(az), cosAz: math.Cos(az),
		sinEl: math.Sin(el), cosEl: math.Cos(el),
		cx:    area.x + area.w/2,
		cy:    area.y + area.h/2,
		// The unit cube's projection spans at most sqrt(3).
		scale: math.Min(area.w, area.h) / math.Sqrt(3),
	}
}

// normalize maps a data point into the unit cube centered on the origin.
func (c camera) normalize(x, y, z float64) (float64, float64, float64) {
	n := func(v float64, k int) float64 {
		return (v-c.box.min[k])/(c.box.max[k]-c.box.min[k]) - 0.5
	}
	return n(x, 0), n(y, 1), n(z, 2)
}

// project returns screen coordinates and a depth (larger is nearer).
func (c camera) project(x, y, z float64) (sx, sy, depth float64) {
	nx, ny, nz := c.normalize(x, y, z)
	u := -nx*c.sinAz + ny*c.cosAz
	forward := nx*c.cosAz + ny*c.sinAz
	v := -forward*c.sinEl + nz*c.cosEl
	depth = forward*c.cosEl + nz*c.sinEl
	return c.cx + u*c.scale, c.cy - v*c.scale, depth
}

// corner projects a corner of the data box; bits select max on x, y, z.
func (c camera) corner(bits int) (float64, float64, float64) {
	pick := func(k int) float64 {
		if bits&(1<<k) != 0 {
			return c.box.max[k]
		}
		return c.box.min[k]
	}
	return c.project(pick(0), pick(1), pick(2))
}

type quad struct {
	xs, ys [4]float64
	depth  float64
	value  float64
}

// drawProjected paints the surface back to front.
func (s *Surface) drawProjected(r *renderer, cam camera) {
	rows, cols := len(s.z), len(s.z[0])
	quads := make([]quad, 0, (rows-1)*(cols-1))
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			idx := [4][2]int{{i, j}, {i, j + 1}, {i + 1, j + 1}, {i + 1, j}}
			var q quad
			ok := true
			for k, p := range idx {
				x, y, z := s.x[p[0]][p[1]], s.y[p[0]][p[1]], s.z[p[0]][p[1]]
				if !finite(x) || !finite(y) || !finite(z) {
					ok = false
					break
				}
				var d float64
				q.xs[k], q.ys[k], d = cam.project(x, y, z)
				q.depth += d / 4
				q.value += z / 4
			}
			if ok {
				quads = append(quads, q)
			}
		}
	}
	sort.Slice(quads, func(a, b int) bool { return quads[a].depth < quads[b].depth })

	dc := r.dc
	dc.SetDash()
	dc.SetLineWidth(0.5)
	for _, q := range quads {
		dc.NewSubPath()
		dc.MoveTo(q.xs[0], q.ys[0])
		for k := 1; k < 4; k++ {
			dc.LineTo(q.xs[k], q.ys[k])
		}
		dc.ClosePath()
		dc.SetColor(s.colorOf(q.value))
		// Stroke in the fill color to hide seams between neighbors.
		dc.FillPreserve()
		dc.Stroke()
	}
}
