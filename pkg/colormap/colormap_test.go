package colormap

import (
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	errs "github.com/matzehuels/botionplot/pkg/errors"
)

func hexOf(t *testing.T, c color.Color) string {
	t.Helper()
	cf, ok := colorful.MakeColor(c)
	if !ok {
		t.Fatalf("color %v is fully transparent", c)
	}
	return cf.Hex()
}

func TestFromListEndpoints(t *testing.T) {
	cm, err := FromList("test", "#0071e3", "#af52de", "#34c759")
	if err != nil {
		t.Fatalf("FromList() error: %v", err)
	}
	if cm.Name() != "test" || cm.Len() != 3 {
		t.Errorf("got name=%q len=%d", cm.Name(), cm.Len())
	}

	tests := []struct {
		t    float64
		want string
	}{
		{0, "#0071e3"},
		{0.5, "#af52de"},
		{1, "#34c759"},
		{-3, "#0071e3"},
		{7, "#34c759"},
	}
	for _, tt := range tests {
		if got := hexOf(t, cm.At(tt.t)); got != tt.want {
			t.Errorf("At(%v) = %s, want %s", tt.t, got, tt.want)
		}
	}
}

func TestAtInterpolatesLinearly(t *testing.T) {
	cm := MustFromList("bw", "#000000", "#ffffff")
	r, g, b, _ := cm.At(0.5).RGBA()
	mid := float64(r>>8) / 255
	if math.Abs(mid-0.5) > 0.01 || r != g || g != b {
		t.Errorf("At(0.5) = (%d,%d,%d), want mid grey", r>>8, g>>8, b>>8)
	}
}

func TestAtNaNIsTransparent(t *testing.T) {
	cm := MustFromList("bw", "#000000", "#ffffff")
	_, _, _, a := cm.At(math.NaN()).RGBA()
	if a != 0 {
		t.Errorf("At(NaN) alpha = %d, want 0", a)
	}
}

func TestFromListErrors(t *testing.T) {
	tests := []struct {
		name   string
		cmName string
		colors []string
		code   errs.Code
	}{
		{"single stop", "one", []string{"#ffffff"}, errs.ErrCodeInvalidInput},
		{"bad hex", "bad", []string{"#ffffff", "blue"}, errs.ErrCodeInvalidInput},
		{"empty name", "", []string{"#000000", "#ffffff"}, errs.ErrCodeInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromList(tt.cmName, tt.colors...)
			if !errs.Is(err, tt.code) {
				t.Errorf("FromList() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestReversed(t *testing.T) {
	cm := MustFromList("ab", "#ff0000", "#0000ff")
	rev := cm.Reversed()
	if rev.Name() != "ab_r" {
		t.Errorf("Reversed().Name() = %q", rev.Name())
	}
	if got := hexOf(t, rev.At(0)); got != "#0000ff" {
		t.Errorf("Reversed().At(0) = %s, want #0000ff", got)
	}
	if got := hexOf(t, cm.At(0)); got != "#ff0000" {
		t.Error("Reversed() must not modify the original")
	}
}

func TestStripVertical(t *testing.T) {
	cm := MustFromList("bw", "#000000", "#ffffff")
	img := cm.Strip(2, 10, true)
	if got := hexOf(t, img.At(0, 0)); got != "#ffffff" {
		t.Errorf("top of vertical strip = %s, want high end", got)
	}
	if got := hexOf(t, img.At(0, 9)); got != "#000000" {
		t.Errorf("bottom of vertical strip = %s, want low end", got)
	}
}

func TestNorm(t *testing.T) {
	n := Norm{VMin: -2, VMax: 2}
	if got := n.Scale(0); got != 0.5 {
		t.Errorf("Scale(0) = %v, want 0.5", got)
	}
	if got := (Norm{VMin: 1, VMax: 1}).Scale(5); got != 0 {
		t.Errorf("degenerate Scale = %v, want 0", got)
	}

	data := [][]float64{{1, math.NaN(), -4}, {9, math.Inf(1)}}
	got, ok := NormFor(data)
	if !ok || got.VMin != -4 || got.VMax != 9 {
		t.Errorf("NormFor() = %+v, %v; want {-4 9}, true", got, ok)
	}
	if _, ok := NormFor([][]float64{{math.NaN()}}); ok {
		t.Error("NormFor() of all-NaN data should report !ok")
	}
}
