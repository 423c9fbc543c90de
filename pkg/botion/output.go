package botion

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/botionplot/pkg/observability"
	"github.com/matzehuels/botionplot/pkg/outdir"
	"github.com/matzehuels/botionplot/pkg/plot"
	"github.com/matzehuels/botionplot/pkg/sink"
	"github.com/matzehuels/botionplot/pkg/style"
)

// Show saves every open static figure as a PNG and closes all figures.
// Figures are named after their first axes title, or figure_<n>.png where
// n is the 1-based position among the open figures. Show stops at the
// first failure; files already written stay on disk and all figures are
// closed either way. It returns the paths written.
func (s *Styler) Show(ctx context.Context) ([]string, error) {
	defer s.closeAll()

	var paths []string
	for i, fig := range s.manager.Figures() {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		if s.Kind(fig) == Animated {
			s.logger.Debug("skipping animated figure", "figure", fig.Number)
			continue
		}
		name := fmt.Sprintf("figure_%d", i+1)
		if title, ok := fig.Title(); ok {
			name = SanitizeTitle(title)
		}
		path, err := s.saveFigure(ctx, fig, name)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (s *Styler) saveFigure(ctx context.Context, fig *plot.Figure, name string) (string, error) {
	path, err := s.dir.Path(name, outdir.KindPNG)
	if err != nil {
		return "", err
	}
	s.logger.Debug("rendering figure", "figure", fig.Number, "path", path)

	start := time.Now()
	err = s.writeFigure(fig, path)
	observability.Render().OnFigureSaved(ctx, path, time.Since(start), err)
	if err != nil {
		return "", err
	}
	s.printf("Saved figure to %s\n", path)
	return path, nil
}

func (s *Styler) writeFigure(fig *plot.Figure, path string) error {
	img, err := fig.Render(saveBackground(fig))
	if err != nil {
		return err
	}
	return sink.SavePNG(path, img, sink.WithSize(s.saveSize, s.saveSize))
}

// AnimateOption configures Animate.
type AnimateOption func(*animateConfig)

type animateConfig struct {
	fps       int
	frameSize int
}

// WithFPS overrides the theme's animation frame rate.
func WithFPS(fps int) AnimateOption {
	return func(c *animateConfig) { c.fps = fps }
}

// WithFrameSize resamples every GIF frame to a px×px square.
func WithFrameSize(px int) AnimateOption {
	return func(c *animateConfig) { c.frameSize = px }
}

// Animate builds an animation of fig and saves it as a GIF right away.
// The figure is marked Animated first, so Show skips it even if saving
// fails. The file is named after the first axes title, or
// animation_<figure number>.gif.
func (s *Styler) Animate(ctx context.Context, fig *plot.Figure, frames int, update plot.UpdateFunc, opts ...AnimateOption) (*plot.Animation, string, error) {
	anim, err := plot.NewAnimation(fig, frames, update)
	if err != nil {
		return nil, "", err
	}
	s.setKind(fig, Animated)

	cfg := animateConfig{fps: s.theme.Output.FPS}
	for _, opt := range opts {
		opt(&cfg)
	}

	name := fmt.Sprintf("animation_%d", fig.Number)
	if title, ok := fig.Title(); ok {
		name = SanitizeTitle(title)
	}
	path, err := s.saveAnimation(ctx, anim, name, cfg)
	if err != nil {
		return anim, "", err
	}
	return anim, path, nil
}

func (s *Styler) saveAnimation(ctx context.Context, anim *plot.Animation, name string, cfg animateConfig) (string, error) {
	path, err := s.dir.Path(name, outdir.KindGIF)
	if err != nil {
		return "", err
	}
	s.logger.Debug("rendering animation",
		"figure", anim.Figure().Number,
		"frames", anim.Len(),
		"fps", cfg.fps,
	)

	start := time.Now()
	err = s.writeAnimation(ctx, anim, path, cfg)
	observability.Render().OnAnimationSaved(ctx, path, anim.Len(), time.Since(start), err)
	if err != nil {
		return "", err
	}
	s.printf("Saved animation to %s\n", path)
	return path, nil
}

func (s *Styler) writeAnimation(ctx context.Context, anim *plot.Animation, path string, cfg animateConfig) error {
	imgs, err := anim.Render(ctx, saveBackground(anim.Figure()))
	if err != nil {
		return err
	}
	opts := []sink.GIFOption{sink.WithFPS(float64(cfg.fps))}
	if cfg.frameSize > 0 {
		opts = append(opts, sink.WithFrameSize(cfg.frameSize, cfg.frameSize))
	}
	return sink.SaveGIF(path, imgs, opts...)
}

func saveBackground(fig *plot.Figure) plot.RenderOption {
	return plot.WithBackground(style.MustColor(fig.Theme().Figure.SaveFaceColor))
}
