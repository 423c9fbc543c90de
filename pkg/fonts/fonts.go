// Package fonts resolves a font family stack to a usable font face.
//
// Each family in the stack is looked up in the user and system font
// directories with go-findfont. The first file that parses as TrueType
// wins. When nothing in the stack is installed, the embedded Go Regular
// font is used, so rendering never fails for lack of fonts.
package fonts

import (
	"os"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	errs "github.com/matzehuels/botionplot/pkg/errors"
)

// FallbackFamily names the embedded font used when no family resolves.
const FallbackFamily = "Go Regular"

// Cache for parsed fonts (parsing is done once per resolved family).
var (
	cacheMu sync.Mutex
	parsed  = map[string]*truetype.Font{}

	fallback     *truetype.Font
	fallbackOnce sync.Once
)

// Fallback returns the embedded Go Regular font.
func Fallback() *truetype.Font {
	fallbackOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			panic("fonts: embedded goregular does not parse: " + err.Error())
		}
		fallback = f
	})
	return fallback
}

// candidates expands a family name into file names worth searching for,
// e.g. "DejaVu Sans" -> DejaVuSans.ttf, DejaVu-Sans.ttf, DejaVu_Sans.ttf.
func candidates(family string) []string {
	base := strings.TrimSpace(family)
	if base == "" {
		return nil
	}
	names := []string{
		strings.ReplaceAll(base, " ", "") + ".ttf",
		strings.ReplaceAll(base, " ", "-") + ".ttf",
		strings.ReplaceAll(base, " ", "_") + ".ttf",
		strings.ReplaceAll(base, " ", "-") + "-Regular.ttf",
		strings.ReplaceAll(base, " ", "") + "-Regular.ttf",
	}
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// Find returns the parsed TrueType font for family, searching installed
// font files. It fails with errors.ErrCodeFontNotFound when no candidate
// file exists or parses.
func Find(family string) (*truetype.Font, error) {
	cacheMu.Lock()
	if f, ok := parsed[family]; ok {
		cacheMu.Unlock()
		return f, nil
	}
	cacheMu.Unlock()

	for _, name := range candidates(family) {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			// Collections (.ttc) and CFF outlines are not supported by freetype.
			continue
		}
		cacheMu.Lock()
		parsed[family] = f
		cacheMu.Unlock()
		return f, nil
	}
	return nil, errs.New(errs.ErrCodeFontNotFound, "font family %q is not installed", family)
}

// Resolve walks the family stack in order and returns the first installed
// font with its family name, or the embedded fallback.
func Resolve(families []string) (*truetype.Font, string) {
	for _, fam := range families {
		if f, err := Find(fam); err == nil {
			return f, fam
		}
	}
	return Fallback(), FallbackFamily
}

// Face builds a face of the given size in points at dpi.
func Face(f *truetype.Font, points, dpi float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    points,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
