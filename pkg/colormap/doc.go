// Package colormap provides named color gradients and a registry to look
// them up by name.
//
// # Overview
//
// A [Colormap] is an immutable, ordered list of color stops spread evenly
// over [0, 1]. [Colormap.At] interpolates linearly in RGB between the two
// nearest stops, so a six-stop map has five equal-width segments.
//
//	cm, err := colormap.FromList("apple_cmap", "#0071e3", "#af52de", "#ff3b30")
//	c := cm.At(0.25)
//
// # Registry
//
// A [Registry] maps names to colormaps. Registration is one-shot: a second
// [Registry.Register] under an existing name fails with
// errors.ErrCodeColormapExists instead of silently replacing the first map.
// [NewDefaultRegistry] seeds a registry with a few built-in maps ("gray",
// "viridis", "magma") that plot calls can name explicitly.
//
// # Normalization
//
// [Norm] maps data values to the unit interval before lookup:
//
//	n := colormap.Norm{VMin: -1, VMax: 1}
//	c := cm.At(n.Scale(v))
package colormap
