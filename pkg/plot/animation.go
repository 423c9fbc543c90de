package plot

import (
	"context"
	"image"

	errs "github.com/matzehuels/botionplot/pkg/errors"
)

// UpdateFunc mutates a figure's artists for the given 0-based frame.
type UpdateFunc func(frame int) error

// Animation renders a figure repeatedly, calling an update function
// before each frame.
type Animation struct {
	fig    *Figure
	frames int
	update UpdateFunc
}

// NewAnimation pairs fig with update for the given number of frames.
func NewAnimation(fig *Figure, frames int, update UpdateFunc) (*Animation, error) {
	if fig == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "animation needs a figure")
	}
	if frames < 1 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "animation needs at least 1 frame, got %d", frames)
	}
	if update == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "animation needs an update function")
	}
	return &Animation{fig: fig, frames: frames, update: update}, nil
}

// Figure returns the animated figure.
func (a *Animation) Figure() *Figure { return a.fig }

// Len returns the number of frames.
func (a *Animation) Len() int { return a.frames }

// Render runs the update function and rasterizes the figure once per
// frame. It stops at the first error or when ctx is done.
func (a *Animation) Render(ctx context.Context, opts ...RenderOption) ([]image.Image, error) {
	out := make([]image.Image, 0, a.frames)
	for i := 0; i < a.frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.update(i); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "update frame %d", i)
		}
		img, err := a.fig.Render(opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}
