package botion

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/botionplot/pkg/colormap"
	"github.com/matzehuels/botionplot/pkg/style"
)

// SaveSize is the width and height in pixels of saved PNG figures.
const SaveSize = 1000

// Option configures Apply.
type Option func(*config)

type config struct {
	theme     *style.Theme
	themeFile string
	registry  *colormap.Registry
	outputDir string
	logger    *log.Logger
	out       io.Writer
	banner    bool
	saveSize  int
}

// WithTheme replaces the Apple theme with t. The apple_cmap gradient is
// still registered.
func WithTheme(t *style.Theme) Option {
	return func(c *config) { c.theme = t }
}

// WithThemeFile overlays a TOML theme file onto the Apple theme.
// It is ignored when WithTheme is also given.
func WithThemeFile(path string) Option {
	return func(c *config) { c.themeFile = path }
}

// WithRegistry registers apple_cmap into r instead of a fresh registry.
func WithRegistry(r *colormap.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithOutputDir overrides the theme's output directory.
func WithOutputDir(dir string) Option {
	return func(c *config) { c.outputDir = dir }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithOutput sets where "Saved ..." lines and the banner are printed.
// Defaults to os.Stdout; pass io.Discard to silence them.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithBanner prints a short summary of the applied style from Apply.
func WithBanner() Option {
	return func(c *config) { c.banner = true }
}

// WithSaveSize overrides the square PNG size in pixels.
func WithSaveSize(px int) Option {
	return func(c *config) { c.saveSize = px }
}
