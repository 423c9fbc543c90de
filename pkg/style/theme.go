package style

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	errs "github.com/matzehuels/botionplot/pkg/errors"
)

// BaseDark names the dark base theme.
const BaseDark = "dark_background"

// Location is a legend placement keyword.
type Location string

// Legend locations.
const (
	LocBest        Location = "best"
	LocUpperRight  Location = "upper right"
	LocUpperLeft   Location = "upper left"
	LocLowerLeft   Location = "lower left"
	LocLowerRight  Location = "lower right"
	LocRight       Location = "right"
	LocCenterLeft  Location = "center left"
	LocCenterRight Location = "center right"
	LocLowerCenter Location = "lower center"
	LocUpperCenter Location = "upper center"
	LocCenter      Location = "center"
)

var validLocations = map[Location]bool{
	LocBest: true, LocUpperRight: true, LocUpperLeft: true, LocLowerLeft: true,
	LocLowerRight: true, LocRight: true, LocCenterLeft: true, LocCenterRight: true,
	LocLowerCenter: true, LocUpperCenter: true, LocCenter: true,
}

// Valid reports whether l is a known location keyword.
func (l Location) Valid() bool { return validLocations[l] }

// Grid line styles.
const (
	LineSolid  = "-"
	LineDashed = "--"
	LineDotted = ":"
)

// Theme is the full style configuration read by every plot.
type Theme struct {
	Base   string      `toml:"base"`
	Colors ColorStyle  `toml:"colors"`
	Figure FigureStyle `toml:"figure"`
	Axes   AxesStyle   `toml:"axes"`
	Ticks  TickStyle   `toml:"ticks"`
	Grid   GridStyle   `toml:"grid"`
	Text   TextStyle   `toml:"text"`
	Font   FontStyle   `toml:"font"`
	Lines  LineStyle   `toml:"lines"`
	Legend LegendStyle `toml:"legend"`
	Image  ImageStyle  `toml:"image"`
	Output OutputStyle `toml:"output"`
}

// ColorStyle holds the series color cycle.
type ColorStyle struct {
	Cycle []string `toml:"cycle"`
}

// FigureStyle controls figure size, resolution and background.
type FigureStyle struct {
	FaceColor     string        `toml:"facecolor"`
	SaveFaceColor string        `toml:"savefig_facecolor"`
	Width         float64       `toml:"width"`  // inches
	Height        float64       `toml:"height"` // inches
	DPI           float64       `toml:"dpi"`
	Subplot       SubplotParams `toml:"subplot"`
}

// SubplotParams are the figure-fraction margins around the subplot grid.
type SubplotParams struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Top    float64 `toml:"top"`
	WSpace float64 `toml:"wspace"`
	HSpace float64 `toml:"hspace"`
}

// AxesStyle controls the plotting area.
type AxesStyle struct {
	FaceColor  string  `toml:"facecolor"`
	EdgeColor  string  `toml:"edgecolor"`
	LabelColor string  `toml:"labelcolor"`
	LineWidth  float64 `toml:"linewidth"` // points
	TitleSize  float64 `toml:"titlesize"` // points
	LabelSize  float64 `toml:"labelsize"` // points
	Grid       bool    `toml:"grid"`
}

// TickStyle controls tick marks and tick labels.
type TickStyle struct {
	XColor    string  `toml:"xcolor"`
	YColor    string  `toml:"ycolor"`
	LabelSize float64 `toml:"labelsize"` // points
	Length    float64 `toml:"length"`    // points
}

// GridStyle controls grid lines.
type GridStyle struct {
	Color     string  `toml:"color"`
	LineStyle string  `toml:"linestyle"`
	LineWidth float64 `toml:"linewidth"` // points
}

// TextStyle holds the default text color.
type TextStyle struct {
	Color string `toml:"color"`
}

// FontStyle selects the font family and base size.
type FontStyle struct {
	Family    string   `toml:"family"`
	SansSerif []string `toml:"sans_serif"`
	Size      float64  `toml:"size"` // points
}

// LineStyle holds defaults for line and marker artists.
type LineStyle struct {
	Width      float64 `toml:"linewidth"`  // points
	MarkerSize float64 `toml:"markersize"` // points
}

// LegendStyle controls default legend placement and frame.
type LegendStyle struct {
	Loc       Location `toml:"loc"`
	FrameOn   bool     `toml:"frameon"`
	AnchorX   float64  `toml:"anchor_x"` // axes fraction
	AnchorY   float64  `toml:"anchor_y"` // axes fraction
	FontSize  float64  `toml:"fontsize"` // points
	FaceColor string   `toml:"facecolor"`
	EdgeColor string   `toml:"edgecolor"`
}

// ImageStyle selects the default colormap for images and surfaces.
type ImageStyle struct {
	Colormap string `toml:"cmap"`
}

// OutputStyle controls where and how figures are persisted.
type OutputStyle struct {
	Dir string `toml:"dir"`
	FPS int    `toml:"fps"`
}

// Dark returns the dark base theme.
func Dark() *Theme {
	return &Theme{
		Base:   BaseDark,
		Colors: ColorStyle{Cycle: append([]string(nil), darkCycle...)},
		Figure: FigureStyle{
			FaceColor:     Black,
			SaveFaceColor: Black,
			Width:         6.4,
			Height:        4.8,
			DPI:           100,
			Subplot: SubplotParams{
				Left: 0.125, Right: 0.9, Bottom: 0.11, Top: 0.88,
				WSpace: 0.2, HSpace: 0.2,
			},
		},
		Axes: AxesStyle{
			FaceColor:  Black,
			EdgeColor:  White,
			LabelColor: White,
			LineWidth:  0.8,
			TitleSize:  12,
			LabelSize:  10,
		},
		Ticks: TickStyle{XColor: White, YColor: White, LabelSize: 10, Length: 3.5},
		Grid:  GridStyle{Color: White, LineStyle: LineSolid, LineWidth: 0.8},
		Text:  TextStyle{Color: White},
		Font: FontStyle{
			Family:    "sans-serif",
			SansSerif: []string{"DejaVu Sans"},
			Size:      10,
		},
		Lines: LineStyle{Width: 1.5, MarkerSize: 6},
		Legend: LegendStyle{
			Loc:       LocBest,
			FrameOn:   true,
			AnchorX:   0.5,
			AnchorY:   0,
			FontSize:  10,
			FaceColor: Black,
			EdgeColor: "#808080",
		},
		Image:  ImageStyle{Colormap: "viridis"},
		Output: OutputStyle{Dir: "output", FPS: 20},
	}
}

// AppleColormapName is the registry name of the Apple gradient.
const AppleColormapName = "apple_cmap"

// DefaultOutputDir is the relative directory generated files are written to.
const DefaultOutputDir = "botionplotlib_output"

// Apple returns the dark base theme with the Apple-inspired overrides.
func Apple() *Theme {
	t := Dark()
	t.Colors.Cycle = append([]string(nil), AppleCycle...)

	t.Figure.FaceColor = AppleBackground
	t.Figure.SaveFaceColor = AppleBackground
	t.Axes.FaceColor = AppleBackground

	// 10in × 100dpi = 1000px square output.
	t.Figure.Width, t.Figure.Height = 10, 10
	t.Figure.DPI = 100

	t.Grid = GridStyle{Color: AppleGrid, LineStyle: LineDashed, LineWidth: 0.5}

	t.Text.Color = White
	t.Axes.LabelColor = White
	t.Ticks.XColor, t.Ticks.YColor = White, White

	t.Font.Family = "sans-serif"
	t.Font.SansSerif = []string{"SF Pro Display", "Arial", "Helvetica", "DejaVu Sans"}
	t.Font.Size = 10
	t.Axes.TitleSize = 14
	t.Axes.LabelSize = 12

	t.Lines.Width = 2
	t.Lines.MarkerSize = 8

	t.Legend.Loc = LocLowerCenter
	t.Legend.FrameOn = false
	t.Legend.AnchorX, t.Legend.AnchorY = 0.5, -0.15

	// Room for the legend below the axes.
	t.Figure.Subplot.Bottom = 0.15

	t.Image.Colormap = AppleColormapName
	t.Output = OutputStyle{Dir: DefaultOutputDir, FPS: 20}
	return t
}

// Clone returns a deep copy of t.
func (t *Theme) Clone() *Theme {
	c := *t
	c.Colors.Cycle = append([]string(nil), t.Colors.Cycle...)
	c.Font.SansSerif = append([]string(nil), t.Font.SansSerif...)
	return &c
}

// FigurePixels returns the default figure size in pixels.
func (t *Theme) FigurePixels() (w, h int) {
	return int(math.Round(t.Figure.Width * t.Figure.DPI)), int(math.Round(t.Figure.Height * t.Figure.DPI))
}

// Px converts a size in points to pixels at the theme's resolution.
func (t *Theme) Px(points float64) float64 {
	return points * t.Figure.DPI / 72
}

// CycleColor returns the i-th series color, wrapping around the cycle.
func (t *Theme) CycleColor(i int) color.Color {
	if len(t.Colors.Cycle) == 0 {
		return color.White
	}
	return MustColor(t.Colors.Cycle[i%len(t.Colors.Cycle)])
}

// FontFamilies returns the ordered font lookup list: the sans-serif stack
// when the family is "sans-serif", otherwise the family itself first.
func (t *Theme) FontFamilies() []string {
	if strings.EqualFold(t.Font.Family, "sans-serif") || t.Font.Family == "" {
		return append([]string(nil), t.Font.SansSerif...)
	}
	return append([]string{t.Font.Family}, t.Font.SansSerif...)
}

// Validate checks colors, sizes and keywords.
func (t *Theme) Validate() error {
	colors := map[string]string{
		"figure.facecolor":  t.Figure.FaceColor,
		"savefig.facecolor": t.Figure.SaveFaceColor,
		"axes.facecolor":    t.Axes.FaceColor,
		"axes.edgecolor":    t.Axes.EdgeColor,
		"axes.labelcolor":   t.Axes.LabelColor,
		"xtick.color":       t.Ticks.XColor,
		"ytick.color":       t.Ticks.YColor,
		"grid.color":        t.Grid.Color,
		"text.color":        t.Text.Color,
		"legend.facecolor":  t.Legend.FaceColor,
		"legend.edgecolor":  t.Legend.EdgeColor,
	}
	for key, value := range colors {
		if _, err := ParseColor(value); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidTheme, err, "%s", key)
		}
	}
	if len(t.Colors.Cycle) == 0 {
		return errs.New(errs.ErrCodeInvalidTheme, "colors.cycle must not be empty")
	}
	for i, c := range t.Colors.Cycle {
		if _, err := ParseColor(c); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidTheme, err, "colors.cycle[%d]", i)
		}
	}

	positive := map[string]float64{
		"figure.width":     t.Figure.Width,
		"figure.height":    t.Figure.Height,
		"figure.dpi":       t.Figure.DPI,
		"font.size":        t.Font.Size,
		"axes.titlesize":   t.Axes.TitleSize,
		"axes.labelsize":   t.Axes.LabelSize,
		"ticks.labelsize":  t.Ticks.LabelSize,
		"legend.fontsize":  t.Legend.FontSize,
		"lines.linewidth":  t.Lines.Width,
		"lines.markersize": t.Lines.MarkerSize,
		"grid.linewidth":   t.Grid.LineWidth,
		"axes.linewidth":   t.Axes.LineWidth,
		"ticks.length":     t.Ticks.Length,
		"output.fps":       float64(t.Output.FPS),
	}
	for key, v := range positive {
		if !(v > 0) {
			return errs.New(errs.ErrCodeInvalidTheme, "%s must be positive, got %v", key, v)
		}
	}

	sp := t.Figure.Subplot
	if !(0 <= sp.Left && sp.Left < sp.Right && sp.Right <= 1) {
		return errs.New(errs.ErrCodeInvalidTheme, "figure.subplot left/right out of order: %v, %v", sp.Left, sp.Right)
	}
	if !(0 <= sp.Bottom && sp.Bottom < sp.Top && sp.Top <= 1) {
		return errs.New(errs.ErrCodeInvalidTheme, "figure.subplot bottom/top out of order: %v, %v", sp.Bottom, sp.Top)
	}

	switch t.Grid.LineStyle {
	case LineSolid, LineDashed, LineDotted:
	default:
		return errs.New(errs.ErrCodeInvalidTheme, "grid.linestyle %q (want %q, %q or %q)", t.Grid.LineStyle, LineSolid, LineDashed, LineDotted)
	}
	if !t.Legend.Loc.Valid() {
		return errs.New(errs.ErrCodeInvalidTheme, "legend.loc %q is not a known location", t.Legend.Loc)
	}
	if len(t.FontFamilies()) == 0 {
		return errs.New(errs.ErrCodeInvalidTheme, "font.sans_serif must list at least one family")
	}
	if t.Image.Colormap == "" {
		return errs.New(errs.ErrCodeInvalidTheme, "image.cmap must not be empty")
	}
	if t.Output.Dir == "" {
		return errs.New(errs.ErrCodeInvalidTheme, "output.dir must not be empty")
	}
	return nil
}

// Entry is one key/value row of a theme, keyed like the settings it mirrors.
type Entry struct {
	Key   string
	Value string
}

// Entries lists the theme as flat key/value rows in a stable order.
func (t *Theme) Entries() []Entry {
	f := func(v float64) string { return fmt.Sprintf("%g", v) }
	return []Entry{
		{"style", t.Base},
		{"axes.prop_cycle", strings.Join(t.Colors.Cycle, ", ")},
		{"figure.facecolor", t.Figure.FaceColor},
		{"axes.facecolor", t.Axes.FaceColor},
		{"savefig.facecolor", t.Figure.SaveFaceColor},
		{"figure.figsize", f(t.Figure.Width) + " x " + f(t.Figure.Height)},
		{"figure.dpi", f(t.Figure.DPI)},
		{"grid.color", t.Grid.Color},
		{"grid.linestyle", t.Grid.LineStyle},
		{"grid.linewidth", f(t.Grid.LineWidth)},
		{"text.color", t.Text.Color},
		{"axes.labelcolor", t.Axes.LabelColor},
		{"xtick.color", t.Ticks.XColor},
		{"ytick.color", t.Ticks.YColor},
		{"font.family", t.Font.Family},
		{"font.sans-serif", strings.Join(t.Font.SansSerif, ", ")},
		{"font.size", f(t.Font.Size)},
		{"axes.titlesize", f(t.Axes.TitleSize)},
		{"axes.labelsize", f(t.Axes.LabelSize)},
		{"lines.linewidth", f(t.Lines.Width)},
		{"lines.markersize", f(t.Lines.MarkerSize)},
		{"legend.loc", string(t.Legend.Loc)},
		{"legend.frameon", fmt.Sprintf("%t", t.Legend.FrameOn)},
		{"legend.anchor", "(" + f(t.Legend.AnchorX) + ", " + f(t.Legend.AnchorY) + ")"},
		{"figure.subplot.bottom", f(t.Figure.Subplot.Bottom)},
		{"image.cmap", t.Image.Colormap},
		{"output.dir", t.Output.Dir},
		{"output.fps", fmt.Sprintf("%d", t.Output.FPS)},
	}
}

var namedColors = map[string]string{
	"white": White,
	"black": Black,
	"gray":  "#808080",
	"grey":  "#808080",
}

// ParseColor parses "#rrggbb", "#rgb", a basic color name, or "none"
// (fully transparent).
func ParseColor(s string) (color.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "none" || key == "transparent" {
		return color.Transparent, nil
	}
	if hex, ok := namedColors[key]; ok {
		key = hex
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "color %q", s)
	}
	return c, nil
}

// MustColor is ParseColor for values already checked by Validate.
// Unparseable input yields opaque magenta so mistakes are visible.
func MustColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return c
}
