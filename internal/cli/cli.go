// Package cli implements the botion command-line interface.
//
// The CLI renders a demonstration gallery through the botion styler,
// inspects the effective theme and registered colormaps, serves the
// output directory over HTTP, and cleans it up again. It is built on
// cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - gallery: Render the demonstration figures and animation
//   - theme: Print the effective theme, or dump it as TOML
//   - colormaps: List the registered colormaps with a color preview
//   - serve: Browse the output directory in a web browser
//   - clean: Remove generated PNG and GIF files
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context via withLogger and loggerFromContext.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/botionplot/pkg/buildinfo"
	"github.com/matzehuels/botionplot/pkg/observability"
	"github.com/matzehuels/botionplot/pkg/style"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "botion"

	// defaultAddr is the gallery server listen address.
	defaultAddr = "localhost:8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Its PersistentPreRunE attaches the logger to the command context and
// routes render and HTTP events to it.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Botion renders dark, Apple-styled plots to PNG and GIF",
		Long:          `Botion applies a dark, Apple-inspired theme to plots and writes every figure to disk: static figures as 1000x1000 PNGs, animations as 20 fps GIFs.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetRenderHooks(renderLogHooks{logger: c.Logger})
			observability.SetHTTPHooks(httpLogHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.galleryCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.colormapsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cleanCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Flag Helpers
// =============================================================================

// addOutputFlag registers the shared -o/--output directory flag.
func addOutputFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVarP(dir, "output", "o", style.DefaultOutputDir, "output directory")
}
