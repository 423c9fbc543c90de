package plot

import (
	"context"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/matzehuels/botionplot/pkg/colormap"
	errs "github.com/matzehuels/botionplot/pkg/errors"
	"github.com/matzehuels/botionplot/pkg/style"
)

// smallManager returns a manager whose figures render at 200x200.
func smallManager() *Manager {
	th := style.Dark()
	th.Figure.Width, th.Figure.Height, th.Figure.DPI = 2, 2, 100
	return NewManager(WithTheme(th))
}

func rgb(c color.Color) [3]uint32 {
	r, g, b, _ := c.RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}

func TestManagerFigureLifecycle(t *testing.T) {
	m := smallManager()
	f1 := m.NewFigure()
	f2 := m.NewFigure()

	if f1.Number != 1 || f2.Number != 2 {
		t.Errorf("numbers = %d, %d; want 1, 2", f1.Number, f2.Number)
	}
	if f1.ID == f2.ID {
		t.Error("figures must have distinct IDs")
	}
	if got, ok := m.Figure(2); !ok || got != f2 {
		t.Error("Figure(2) should return the second figure")
	}

	m.Close(f1)
	figs := m.Figures()
	if len(figs) != 1 || figs[0] != f2 {
		t.Fatalf("after Close, Figures() = %v", figs)
	}
	m.Close(f1) // closing twice is a no-op

	m.CloseAll()
	if len(m.Figures()) != 0 {
		t.Error("CloseAll() should leave no open figures")
	}
	if f3 := m.NewFigure(); f3.Number != 3 {
		t.Errorf("numbering should continue after CloseAll, got %d", f3.Number)
	}
}

func TestFigureSnapshotsTheme(t *testing.T) {
	th := style.Dark()
	m := NewManager(WithTheme(th))
	f := m.NewFigure(WithFigureSize(3, 2), WithDPI(50))
	if w, h := f.Size(); w != 150 || h != 100 {
		t.Errorf("Size() = %dx%d, want 150x100", w, h)
	}
	th.Figure.FaceColor = "#ff0000"
	if f.Theme().Figure.FaceColor == "#ff0000" {
		t.Error("figure should keep the theme it was created with")
	}
	if th.Figure.Width != 6.4 {
		t.Error("figure options must not modify the manager theme")
	}
}

func TestFigureTitleFirstMatch(t *testing.T) {
	f := smallManager().NewFigure()
	a1 := f.AddSubplot(1, 3, 1)
	a2 := f.AddSubplot(1, 3, 2)
	a3 := f.AddSubplot(1, 3, 3)
	if _, ok := f.Title(); ok {
		t.Error("untitled figure should report no title")
	}
	a2.SetTitle("Second")
	a3.SetTitle("Third")
	if got, ok := f.Title(); !ok || got != "Second" {
		t.Errorf("Title() = %q, %v; want Second", got, ok)
	}
	a1.SetTitle("First")
	if got, _ := f.Title(); got != "First" {
		t.Errorf("Title() = %q, want First", got)
	}
}

func TestSubplotGrid(t *testing.T) {
	f := smallManager().NewFigure()
	left := f.AddSubplot(1, 2, 1)
	right := f.AddSubplot(1, 2, 2)
	if !(left.frac.x < right.frac.x) {
		t.Error("second column should be right of the first")
	}
	if left.frac.w != right.frac.w || left.frac.y != right.frac.y {
		t.Error("cells in one row should share width and top")
	}
	sp := f.Theme().Figure.Subplot
	if got := right.frac.x + right.frac.w; math.Abs(got-sp.Right) > 1e-9 {
		t.Errorf("last column ends at %v, want %v", got, sp.Right)
	}
}

func TestSeriesValidation(t *testing.T) {
	ax := smallManager().NewFigure().AddSubplot(1, 1, 1)
	if _, err := ax.Plot([]float64{1, 2}, []float64{1}); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("mismatched lengths: error = %v", err)
	}
	if _, err := ax.Scatter(nil, nil); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("empty series: error = %v", err)
	}
	if _, err := ax.PlotSurface([][]float64{{0}}, [][]float64{{0}}, [][]float64{{0}}); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("surface on 2D axes: error = %v", err)
	}

	ax3 := smallManager().NewFigure().AddSubplot(1, 1, 1, WithProjection3D())
	if _, err := ax3.Plot([]float64{1}, []float64{1}); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("line on 3D axes: error = %v", err)
	}
	grid := [][]float64{{0, 1}, {0, 1}}
	if _, err := ax3.PlotSurface(grid, grid, [][]float64{{0, 1}, {0}}); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("ragged Z: error = %v", err)
	}
}

func TestColorCycle(t *testing.T) {
	m := smallManager()
	ax := m.NewFigure().AddSubplot(1, 1, 1)
	l1, _ := ax.Plot([]float64{0, 1}, []float64{0, 1})
	l2, _ := ax.Plot([]float64{0, 1}, []float64{1, 0})
	red := color.RGBA{R: 255, A: 255}
	l3, _ := ax.Plot([]float64{0, 1}, []float64{1, 1}, WithColor(red))

	th := m.Theme()
	if rgb(l1.Color()) != rgb(th.CycleColor(0)) || rgb(l2.Color()) != rgb(th.CycleColor(1)) {
		t.Error("unstyled series should take successive cycle colors")
	}
	if rgb(l3.Color()) != rgb(red) {
		t.Error("WithColor should override the cycle")
	}
}

func TestHist(t *testing.T) {
	ax := smallManager().NewFigure().AddSubplot(1, 1, 1)
	counts, edges, err := ax.Hist([]float64{0, 1, 1, 2, 3, 4, math.NaN()}, 4)
	if err != nil {
		t.Fatalf("Hist() error: %v", err)
	}
	want := []float64{1, 2, 1, 2}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts = %v, want %v", counts, want)
			break
		}
	}
	if len(edges) != 5 || edges[0] != 0 || edges[4] != 4 {
		t.Errorf("edges = %v", edges)
	}
	if _, _, err := ax.Hist([]float64{1}, 0); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("bins=0: error = %v", err)
	}
	if _, _, err := ax.Hist([]float64{math.NaN()}, 3); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("all-NaN: error = %v", err)
	}
}

func TestImshowColormapResolution(t *testing.T) {
	m := smallManager()
	ax := m.NewFigure().AddSubplot(1, 1, 1)
	data := [][]float64{{0, 1}, {2, 3}}

	img, err := ax.Imshow(data)
	if err != nil {
		t.Fatalf("Imshow() error: %v", err)
	}
	if img.Colormap().Name() != m.Theme().Image.Colormap {
		t.Errorf("default colormap = %q, want theme's %q", img.Colormap().Name(), m.Theme().Image.Colormap)
	}
	if n := img.Norm(); n.VMin != 0 || n.VMax != 3 {
		t.Errorf("Norm() = %+v, want data range", n)
	}

	img, err = ax.Imshow(data, WithColormap("gray"), WithVMax(10))
	if err != nil {
		t.Fatalf("Imshow() error: %v", err)
	}
	if img.Colormap().Name() != "gray" || img.Norm().VMax != 10 || img.Norm().VMin != 0 {
		t.Errorf("explicit options ignored: %s %+v", img.Colormap().Name(), img.Norm())
	}

	if _, err := ax.Imshow(data, WithColormap("missing")); !errs.Is(err, errs.ErrCodeColormapNotFound) {
		t.Errorf("unknown colormap: error = %v", err)
	}
}

func TestResolveOptions(t *testing.T) {
	if ResolveLegend().Placed() {
		t.Error("empty legend options should not be placed")
	}
	if !ResolveLegend(WithLoc(style.LocUpperLeft)).Placed() || !ResolveLegend(WithAnchor(0, 1)).Placed() {
		t.Error("loc or anchor should count as placed")
	}
	if ResolveLegend(WithFrame(true)).Placed() {
		t.Error("frame alone does not place a legend")
	}
	if ResolveMap(WithVMin(1)).HasRange() {
		t.Error("one range end is not a full range")
	}
	if !ResolveMap(WithRange(0, 1)).HasRange() {
		t.Error("WithRange should give a full range")
	}
}

func TestLegendDefaultsFromTheme(t *testing.T) {
	th := style.Apple()
	ax := NewManager(WithTheme(th)).NewFigure().AddSubplot(1, 1, 1)
	l := ax.Legend()
	if l.Loc() != style.LocLowerCenter || l.Frame() {
		t.Errorf("Legend() = loc %q frame %v, want theme defaults", l.Loc(), l.Frame())
	}
	if _, ok := l.Anchor(); ok {
		t.Error("plain Legend() should not invent an anchor")
	}
	l = ax.Legend(WithLoc(style.LocUpperLeft), WithFrame(true))
	if l.Loc() != style.LocUpperLeft || !l.Frame() {
		t.Errorf("explicit options ignored: %q %v", l.Loc(), l.Frame())
	}
	if ax.LegendBox() != l {
		t.Error("LegendBox() should return the latest legend")
	}
}

func TestLegendBoxPlacement(t *testing.T) {
	axes := rect{x: 100, y: 100, w: 200, h: 100}
	l := &Legend{loc: style.LocLowerCenter, anchor: &Anchor{X: 0.5, Y: -0.15}}
	b := l.box(axes, 40, 20, 5)
	// Lower center of the box sits 15% of the axes height below the axes.
	if cx := b.x + b.w/2; math.Abs(cx-200) > 1e-9 {
		t.Errorf("box center x = %v, want 200", cx)
	}
	if bottom := b.y + b.h; math.Abs(bottom-215) > 1e-9 {
		t.Errorf("box bottom = %v, want 215", bottom)
	}

	l = &Legend{loc: style.LocUpperRight}
	b = l.box(axes, 40, 20, 5)
	if b.x+b.w != 295 || b.y != 105 {
		t.Errorf("upper right box = %+v", b)
	}
}

func TestRenderBackgroundAndImage(t *testing.T) {
	m := smallManager()
	f := m.NewFigure()
	ax := f.AddSubplot(1, 1, 1)
	if _, err := ax.Imshow([][]float64{{0, 1}, {1, 0}}, WithColormap("gray")); err != nil {
		t.Fatal(err)
	}

	img, err := f.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("image size = %v, want 200x200", b)
	}
	if got := rgb(img.At(1, 1)); got != [3]uint32{0, 0, 0} {
		t.Errorf("figure background = %v, want black", got)
	}

	// Axes box: x 25..180, y 24..178. Row 0 is drawn at the top.
	if got := rgb(img.At(60, 60)); got != [3]uint32{0, 0, 0} {
		t.Errorf("top-left cell = %v, want black (value 0)", got)
	}
	if got := rgb(img.At(140, 60)); got != [3]uint32{255, 255, 255} {
		t.Errorf("top-right cell = %v, want white (value 1)", got)
	}

	red := color.RGBA{R: 255, A: 255}
	img, err = f.Render(WithBackground(red))
	if err != nil {
		t.Fatal(err)
	}
	if got := rgb(img.At(1, 1)); got != rgb(red) {
		t.Errorf("WithBackground ignored: %v", got)
	}
}

func TestRenderAllArtists(t *testing.T) {
	m := smallManager()
	f := m.NewFigure()
	ax := f.AddSubplot(2, 2, 1)
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 0, 1}
	if _, err := ax.Plot(xs, ys, WithLabel("line")); err != nil {
		t.Fatal(err)
	}
	if _, err := ax.Scatter(xs, ys, WithLabel("points")); err != nil {
		t.Fatal(err)
	}
	ax.Grid(true)
	ax.SetTitle("Title")
	ax.SetXLabel("X")
	ax.SetYLabel("Y")
	ax.Legend(WithFrame(true))

	bars := f.AddSubplot(2, 2, 2)
	if _, err := bars.Bar(xs, ys); err != nil {
		t.Fatal(err)
	}
	if _, _, err := f.AddSubplot(2, 2, 3).Hist(ys, 3); err != nil {
		t.Fatal(err)
	}

	heat := f.AddSubplot(2, 2, 4, WithProjection3D())
	gx := [][]float64{{0, 1}, {0, 1}}
	gy := [][]float64{{0, 0}, {1, 1}}
	gz := [][]float64{{0, 1}, {1, 2}}
	surf, err := heat.PlotSurface(gx, gy, gz)
	if err != nil {
		t.Fatal(err)
	}
	if err := heat.Colorbar(surf); err != nil {
		t.Fatal(err)
	}

	img, err := f.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 200, 200) {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestAnimationRender(t *testing.T) {
	f := smallManager().NewFigure()
	ax := f.AddSubplot(1, 1, 1)
	line, err := ax.Plot([]float64{0, 1}, []float64{0, 0})
	if err != nil {
		t.Fatal(err)
	}

	var calls []int
	anim, err := NewAnimation(f, 3, func(i int) error {
		calls = append(calls, i)
		return line.SetData([]float64{0, 1}, []float64{0, float64(i)})
	})
	if err != nil {
		t.Fatalf("NewAnimation() error: %v", err)
	}
	frames, err := anim.Render(context.Background())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(frames) != 3 || anim.Len() != 3 || anim.Figure() != f {
		t.Errorf("got %d frames", len(frames))
	}
	if len(calls) != 3 || calls[0] != 0 || calls[2] != 2 {
		t.Errorf("update calls = %v", calls)
	}
	if _, ys := line.Data(); ys[1] != 2 {
		t.Errorf("last update not applied: %v", ys)
	}
}

func TestAnimationErrors(t *testing.T) {
	f := smallManager().NewFigure()
	noop := func(int) error { return nil }
	if _, err := NewAnimation(nil, 1, noop); err == nil {
		t.Error("nil figure should fail")
	}
	if _, err := NewAnimation(f, 0, noop); err == nil {
		t.Error("zero frames should fail")
	}
	if _, err := NewAnimation(f, 1, nil); err == nil {
		t.Error("nil update should fail")
	}

	anim, _ := NewAnimation(f, 5, noop)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := anim.Render(ctx); err != context.Canceled {
		t.Errorf("cancelled Render() error = %v", err)
	}
}

func TestManagerUsesRegistry(t *testing.T) {
	reg := colormap.NewRegistry()
	if err := reg.Register(colormap.MustFromList("only", "#000000", "#ffffff")); err != nil {
		t.Fatal(err)
	}
	th := style.Dark()
	th.Image.Colormap = "only"
	m := NewManager(WithTheme(th), WithRegistry(reg))
	ax := m.NewFigure().AddSubplot(1, 1, 1)
	img, err := ax.Imshow([][]float64{{1}})
	if err != nil {
		t.Fatalf("Imshow() error: %v", err)
	}
	if img.Colormap().Name() != "only" {
		t.Errorf("colormap = %q", img.Colormap().Name())
	}
	if _, err := ax.Imshow([][]float64{{1}}, WithColormap("viridis")); !errs.Is(err, errs.ErrCodeColormapNotFound) {
		t.Error("custom registry should not contain built-ins")
	}
}
