package botion

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/botionplot/pkg/colormap"
	"github.com/matzehuels/botionplot/pkg/outdir"
	"github.com/matzehuels/botionplot/pkg/plot"
	"github.com/matzehuels/botionplot/pkg/style"
)

// Kind tells how a figure is written out.
type Kind int

const (
	// Static figures are saved as PNG by Show.
	Static Kind = iota
	// Animated figures were saved as GIF by Animate and are skipped by Show.
	Animated
)

func (k Kind) String() string {
	if k == Animated {
		return "animated"
	}
	return "static"
}

// Styler is the themed facade returned by Apply.
type Styler struct {
	manager  *plot.Manager
	theme    *style.Theme
	cmap     *colormap.Colormap
	dir      outdir.Dir
	logger   *log.Logger
	out      io.Writer
	saveSize int

	mu    sync.Mutex
	kinds map[uuid.UUID]Kind
}

// Apply builds the Apple theme, registers the apple_cmap gradient, and
// creates the output directory. Registering into a registry that already
// holds apple_cmap fails with ErrCodeColormapExists.
func Apply(opts ...Option) (*Styler, error) {
	cfg := config{out: os.Stdout, saveSize: SaveSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.Default()
	}

	th, err := resolveTheme(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.outputDir != "" {
		th.Output.Dir = cfg.outputDir
	}

	registry := cfg.registry
	if registry == nil {
		registry = colormap.NewDefaultRegistry()
	}
	cmap, err := AppleColormap()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(cmap); err != nil {
		return nil, err
	}

	dir, err := outdir.Ensure(th.Output.Dir)
	if err != nil {
		return nil, err
	}

	s := &Styler{
		manager:  plot.NewManager(plot.WithTheme(th), plot.WithRegistry(registry)),
		theme:    th,
		cmap:     cmap,
		dir:      dir,
		logger:   cfg.logger,
		out:      cfg.out,
		saveSize: cfg.saveSize,
		kinds:    make(map[uuid.UUID]Kind),
	}
	cfg.logger.Debug("applied style",
		"colormap", cmap.Name(),
		"output", dir.String(),
		"fps", th.Output.FPS,
	)
	if cfg.banner {
		s.printf("Botionplot style applied (legend below, custom colormaps)\n")
		s.printf("All figures will be saved as %dx%dpx PNGs and animations as GIFs\n", s.saveSize, s.saveSize)
		s.printf("Output directory: %s/\n", dir.String())
	}
	return s, nil
}

// AppleColormap builds the six-color apple_cmap gradient: blue, purple,
// red, orange, yellow, green.
func AppleColormap() (*colormap.Colormap, error) {
	return colormap.FromList(style.AppleColormapName, style.AppleCycle...)
}

func resolveTheme(cfg config) (*style.Theme, error) {
	switch {
	case cfg.theme != nil:
		th := cfg.theme.Clone()
		if err := th.Validate(); err != nil {
			return nil, err
		}
		return th, nil
	case cfg.themeFile != "":
		return style.Load(cfg.themeFile)
	default:
		return style.Apple(), nil
	}
}

func (s *Styler) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// Colormap returns the registered apple_cmap gradient.
func (s *Styler) Colormap() *colormap.Colormap { return s.cmap }

// Theme returns the applied theme.
func (s *Styler) Theme() *style.Theme { return s.theme }

// Dir returns the output directory.
func (s *Styler) Dir() outdir.Dir { return s.dir }

// Manager returns the underlying figure manager.
func (s *Styler) Manager() *plot.Manager { return s.manager }

// NewFigure opens a figure with the applied theme.
func (s *Styler) NewFigure(opts ...plot.FigureOption) *plot.Figure {
	return s.manager.NewFigure(opts...)
}

// Figures returns the open figures in creation order.
func (s *Styler) Figures() []*plot.Figure { return s.manager.Figures() }

// Close closes a single figure without saving it.
func (s *Styler) Close(fig *plot.Figure) {
	s.manager.Close(fig)
	s.mu.Lock()
	delete(s.kinds, fig.ID)
	s.mu.Unlock()
}

// Kind reports whether fig has been saved as an animation.
func (s *Styler) Kind(fig *plot.Figure) Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kinds[fig.ID]
}

func (s *Styler) setKind(fig *plot.Figure, k Kind) {
	s.mu.Lock()
	s.kinds[fig.ID] = k
	s.mu.Unlock()
}

func (s *Styler) closeAll() {
	s.manager.CloseAll()
	s.mu.Lock()
	clear(s.kinds)
	s.mu.Unlock()
}

// Legend adds a legend to ax. Without an explicit location or anchor it
// goes below the axes, centered at the theme's legend anchor.
func (s *Styler) Legend(ax *plot.Axes, opts ...plot.LegendOption) *plot.Legend {
	if !plot.ResolveLegend(opts...).Placed() {
		lg := s.theme.Legend
		opts = append([]plot.LegendOption{
			plot.WithLoc(style.LocLowerCenter),
			plot.WithAnchor(lg.AnchorX, lg.AnchorY),
		}, opts...)
	}
	return ax.Legend(opts...)
}

// Imshow shows data on ax with apple_cmap unless a colormap is given.
func (s *Styler) Imshow(ax *plot.Axes, data [][]float64, opts ...plot.MapOption) (*plot.Image, error) {
	if plot.ResolveMap(opts...).Colormap == "" {
		opts = append(opts, plot.WithColormap(s.cmap.Name()))
	}
	return ax.Imshow(data, opts...)
}

// PlotSurface draws a surface on the 3D axes ax with apple_cmap unless a
// colormap is given. Unless both vmin and vmax are given, the color range
// is the finite minimum and maximum of z.
func (s *Styler) PlotSurface(ax *plot.Axes, x, y, z [][]float64, opts ...plot.MapOption) (*plot.Surface, error) {
	cfg := plot.ResolveMap(opts...)
	if cfg.Colormap == "" {
		opts = append(opts, plot.WithColormap(s.cmap.Name()))
	}
	if !cfg.HasRange() {
		if n, ok := colormap.NormFor(z); ok {
			opts = append(opts, plot.WithRange(n.VMin, n.VMax))
		}
	}
	return ax.PlotSurface(x, y, z, opts...)
}
