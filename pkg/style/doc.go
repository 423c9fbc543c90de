// Package style defines the configuration table that every plot reads
// implicitly: colors, fonts, sizes, grid, legend placement, layout margins
// and output settings.
//
// # Themes
//
// [Dark] returns the dark base theme (black faces, white text, a pastel
// color cycle). [Apple] starts from [Dark] and applies the Apple-inspired
// overrides: #1c1c1e faces, the six system colors as the cycle, a
// 10×10 inch figure at 100 dpi, dashed #333333 grid lines, the SF Pro
// Display font stack, legends anchored below the plot without a frame,
// and "apple_cmap" as the default image colormap.
//
// # Configuration Files
//
// Themes are plain TOML-tagged structs. [Load] overlays a TOML file onto
// [Apple], rejecting unknown keys, and [Encode] writes a theme back out:
//
//	[figure]
//	width = 8.0
//	height = 8.0
//	dpi = 150.0
//
//	[legend]
//	loc = "upper right"
//	frameon = true
package style
