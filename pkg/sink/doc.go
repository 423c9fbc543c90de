// Package sink encodes rendered figures into output files.
//
// # Overview
//
// A "sink" takes rasterized frames from [plot.Figure.Render] or
// [plot.Animation.Render] and writes them in a final format:
//
//   - PNG: a single static figure, optionally resampled to a fixed size
//   - GIF: an animation, one paletted frame per rendered image
//
// # PNG Output
//
// [WritePNG] encodes to any io.Writer; [SavePNG] creates the file:
//
//	img, _ := fig.Render()
//	err := sink.SavePNG("out/line_plot.png", img, sink.WithSize(1000, 1000))
//
// Resampling uses a Lanczos filter, so text and lines stay smooth when a
// figure is rendered at a different DPI than it is saved at.
//
// # GIF Output
//
// [WriteGIF] and [SaveGIF] quantize each frame onto the Plan 9 palette
// with Floyd-Steinberg dithering. The frame delay is derived from
// [WithFPS]; GIF delays are stored in hundredths of a second, so frame
// rates above 100 are clamped to one hundredth per frame. Animations
// loop forever.
//
// [plot.Figure.Render]: github.com/matzehuels/botionplot/pkg/plot.Figure.Render
// [plot.Animation.Render]: github.com/matzehuels/botionplot/pkg/plot.Animation.Render
package sink
