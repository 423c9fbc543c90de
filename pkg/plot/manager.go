package plot

import (
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/botionplot/pkg/colormap"
	"github.com/matzehuels/botionplot/pkg/style"
)

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithTheme sets the theme new figures snapshot.
func WithTheme(t *style.Theme) ManagerOption {
	return func(m *Manager) {
		if t != nil {
			m.theme = t
		}
	}
}

// WithRegistry sets the registry colormap names resolve against.
func WithRegistry(r *colormap.Registry) ManagerOption {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// Manager tracks open figures in creation order.
type Manager struct {
	theme    *style.Theme
	registry *colormap.Registry

	mu   sync.Mutex
	figs []*Figure
	next int
}

// NewManager returns a manager. Without options it uses the dark base
// theme and a registry of the built-in colormaps.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		theme:    style.Dark(),
		registry: colormap.NewDefaultRegistry(),
		next:     1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Theme returns the theme new figures copy.
func (m *Manager) Theme() *style.Theme { return m.theme }

// Registry returns the colormap registry.
func (m *Manager) Registry() *colormap.Registry { return m.registry }

// NewFigure opens a new figure numbered after the last one.
func (m *Manager) NewFigure(opts ...FigureOption) *Figure {
	th := m.theme.Clone()
	cfg := figureConfig{width: th.Figure.Width, height: th.Figure.Height, dpi: th.Figure.DPI}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.width > 0 {
		th.Figure.Width = cfg.width
	}
	if cfg.height > 0 {
		th.Figure.Height = cfg.height
	}
	if cfg.dpi > 0 {
		th.Figure.DPI = cfg.dpi
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	f := &Figure{
		ID:       uuid.New(),
		Number:   m.next,
		theme:    th,
		registry: m.registry,
	}
	m.next++
	m.figs = append(m.figs, f)
	return f
}

// Figures returns the open figures in creation order.
func (m *Manager) Figures() []*Figure {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Figure(nil), m.figs...)
}

// Figure returns the open figure with the given number.
func (m *Manager) Figure(number int) (*Figure, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.figs {
		if f.Number == number {
			return f, true
		}
	}
	return nil, false
}

// Close releases one figure. Closing an unknown figure is a no-op.
func (m *Manager) Close(f *Figure) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, g := range m.figs {
		if g == f {
			m.figs = append(m.figs[:i], m.figs[i+1:]...)
			return
		}
	}
}

// CloseAll releases every open figure. Numbering continues where it left off.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.figs = nil
}
