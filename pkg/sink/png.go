package sink

import (
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"

	errs "github.com/matzehuels/botionplot/pkg/errors"
)

// PNGOption configures PNG encoding.
type PNGOption func(*pngWriter)

type pngWriter struct {
	width, height int
}

// WithSize resamples the image to w×h pixels before encoding.
// Non-positive sizes keep the rendered size.
func WithSize(w, h int) PNGOption {
	return func(p *pngWriter) { p.width, p.height = w, h }
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image, opts ...PNGOption) error {
	if img == nil {
		return errs.New(errs.ErrCodeInvalidInput, "no image to encode")
	}
	var p pngWriter
	for _, opt := range opts {
		opt(&p)
	}
	img = resample(img, p.width, p.height)
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return errs.Wrap(errs.ErrCodeEncode, err, "encode png")
	}
	return nil
}

// SavePNG writes img as a PNG file at path.
// This is a convenience wrapper around [WritePNG] for file-based output.
func SavePNG(path string, img image.Image, opts ...PNGOption) error {
	return saveFile(path, func(w io.Writer) error { return WritePNG(w, img, opts...) })
}

// resample scales img to w×h unless a dimension is unset or it already
// has that size.
func resample(img image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

func saveFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeWrite, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errs.Wrap(errs.ErrCodeWrite, cerr, "close %s", path)
		}
	}()
	if err := write(f); err != nil {
		return err
	}
	return nil
}
