package colormap

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	errs "github.com/matzehuels/botionplot/pkg/errors"
)

// Colormap is a named gradient of evenly spaced color stops.
type Colormap struct {
	name  string
	stops []colorful.Color
}

// FromList builds a colormap from two or more hex colors ("#rrggbb" or "#rgb").
func FromList(name string, colors ...string) (*Colormap, error) {
	if err := errs.ValidateColormapName(name); err != nil {
		return nil, err
	}
	if len(colors) < 2 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "colormap %q needs at least 2 colors, got %d", name, len(colors))
	}
	stops := make([]colorful.Color, len(colors))
	for i, hex := range colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "colormap %q stop %d", name, i)
		}
		stops[i] = c
	}
	return &Colormap{name: name, stops: stops}, nil
}

// MustFromList is like FromList but panics on error. It is meant for
// package-level tables of literal colors.
func MustFromList(name string, colors ...string) *Colormap {
	cm, err := FromList(name, colors...)
	if err != nil {
		panic(err)
	}
	return cm
}

// Name returns the registry name of the colormap.
func (c *Colormap) Name() string { return c.name }

// Len returns the number of color stops.
func (c *Colormap) Len() int { return len(c.stops) }

// Stops returns the color stops as lowercase hex strings.
func (c *Colormap) Stops() []string {
	out := make([]string, len(c.stops))
	for i, s := range c.stops {
		out[i] = s.Hex()
	}
	return out
}

// At returns the color at position t. Values outside [0, 1] are clamped;
// NaN maps to fully transparent.
func (c *Colormap) At(t float64) color.Color {
	if math.IsNaN(t) {
		return color.Transparent
	}
	t = math.Max(0, math.Min(1, t))
	segments := float64(len(c.stops) - 1)
	pos := t * segments
	i := int(math.Floor(pos))
	if i >= len(c.stops)-1 {
		return c.stops[len(c.stops)-1].Clamped()
	}
	return c.stops[i].BlendRgb(c.stops[i+1], pos-float64(i)).Clamped()
}

// Reversed returns a new colormap with the stops in reverse order,
// named with an "_r" suffix.
func (c *Colormap) Reversed() *Colormap {
	stops := make([]colorful.Color, len(c.stops))
	for i, s := range c.stops {
		stops[len(stops)-1-i] = s
	}
	return &Colormap{name: c.name + "_r", stops: stops}
}

// Strip renders the gradient into a w×h image. Vertical strips run from the
// high end at the top to the low end at the bottom, as in a colorbar.
func (c *Colormap) Strip(w, h int, vertical bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var t float64
			if vertical {
				t = 1 - float64(y)/math.Max(1, float64(h-1))
			} else {
				t = float64(x) / math.Max(1, float64(w-1))
			}
			img.Set(x, y, c.At(t))
		}
	}
	return img
}

// Norm linearly maps [VMin, VMax] onto [0, 1].
type Norm struct {
	VMin, VMax float64
}

// Scale maps v into the unit interval. A degenerate range maps every
// value to 0; NaN stays NaN.
func (n Norm) Scale(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	if n.VMax == n.VMin {
		return 0
	}
	return (v - n.VMin) / (n.VMax - n.VMin)
}

// NormFor scans data for its finite minimum and maximum.
// It returns ok=false when data holds no finite value.
func NormFor(data [][]float64) (n Norm, ok bool) {
	n.VMin, n.VMax = math.Inf(1), math.Inf(-1)
	for _, row := range data {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			n.VMin = math.Min(n.VMin, v)
			n.VMax = math.Max(n.VMax, v)
		}
	}
	if math.IsInf(n.VMin, 1) {
		return Norm{}, false
	}
	return n, true
}
