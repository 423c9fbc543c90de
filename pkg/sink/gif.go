package sink

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"

	errs "github.com/matzehuels/botionplot/pkg/errors"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 20

// GIFOption configures GIF encoding.
type GIFOption func(*gifWriter)

type gifWriter struct {
	fps           float64
	width, height int
}

// WithFPS sets the playback frame rate.
func WithFPS(fps float64) GIFOption {
	return func(g *gifWriter) { g.fps = fps }
}

// WithFrameSize resamples every frame to w×h pixels.
func WithFrameSize(w, h int) GIFOption {
	return func(g *gifWriter) { g.width, g.height = w, h }
}

// frameDelay converts a frame rate into a GIF delay in 1/100 s.
func frameDelay(fps float64) int {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return max(1, int(math.Round(100/fps)))
}

// WriteGIF encodes frames as a looping animated GIF to w.
func WriteGIF(w io.Writer, frames []image.Image, opts ...GIFOption) error {
	if len(frames) == 0 {
		return errs.New(errs.ErrCodeInvalidInput, "animation has no frames")
	}
	g := gifWriter{fps: DefaultFPS}
	for _, opt := range opts {
		opt(&g)
	}
	delay := frameDelay(g.fps)

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: 0,
	}
	for i, frame := range frames {
		if frame == nil {
			return errs.New(errs.ErrCodeInvalidInput, "frame %d is nil", i)
		}
		frame = resample(frame, g.width, g.height)
		b := frame.Bounds()
		p := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
		draw.FloydSteinberg.Draw(p, p.Bounds(), frame, b.Min)
		anim.Image[i] = p
		anim.Delay[i] = delay
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return errs.Wrap(errs.ErrCodeEncode, err, "encode gif")
	}
	return nil
}

// SaveGIF writes frames as an animated GIF file at path.
func SaveGIF(path string, frames []image.Image, opts ...GIFOption) error {
	return saveFile(path, func(w io.Writer) error { return WriteGIF(w, frames, opts...) })
}
