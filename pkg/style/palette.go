package style

// Apple system colors used for the color cycle and the apple_cmap gradient.
const (
	AppleBlue   = "#0071e3"
	AppleGreen  = "#34c759"
	AppleOrange = "#ff9500"
	AppleRed    = "#ff3b30"
	ApplePurple = "#af52de"
	AppleYellow = "#ffcc00"
)

// Surface colors.
const (
	AppleBackground = "#1c1c1e"
	AppleGrid       = "#333333"
	White           = "#ffffff"
	Black           = "#000000"
)

// AppleCycle is the gradient order of the Apple colors. It doubles as the
// default series color cycle.
var AppleCycle = []string{
	AppleBlue,
	ApplePurple,
	AppleRed,
	AppleOrange,
	AppleYellow,
	AppleGreen,
}

// darkCycle is the dark_background series cycle.
var darkCycle = []string{
	"#8dd3c7", "#feffb3", "#bfbbd9", "#fa8174", "#81b1d2",
	"#fdb462", "#b3de69", "#bc82bd", "#ccebc4", "#ffed6f",
}
