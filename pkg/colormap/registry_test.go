package colormap

import (
	"testing"

	errs "github.com/matzehuels/botionplot/pkg/errors"
)

func TestRegistryRegisterTwiceFails(t *testing.T) {
	r := NewRegistry()
	first := MustFromList("apple_cmap", "#0071e3", "#34c759")
	if err := r.Register(first); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}

	second := MustFromList("apple_cmap", "#000000", "#ffffff")
	err := r.Register(second)
	if !errs.Is(err, errs.ErrCodeColormapExists) {
		t.Fatalf("second Register() error = %v, want %s", err, errs.ErrCodeColormapExists)
	}

	got, err := r.Get("apple_cmap")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != first {
		t.Error("failed re-registration must keep the first colormap")
	}
}

func TestRegistryGetMissing(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("nope"); !errs.Is(err, errs.ErrCodeColormapNotFound) {
		t.Errorf("Get() error = %v, want %s", err, errs.ErrCodeColormapNotFound)
	}
	if err := r.Register(nil); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("Register(nil) error = %v", err)
	}
}

func TestDefaultRegistryNames(t *testing.T) {
	r := NewDefaultRegistry()
	got := r.Names()
	want := []string{"gray", "magma", "viridis"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Separate default registries do not share registrations.
	other := NewDefaultRegistry()
	if err := r.Register(MustFromList("extra", "#000000", "#ffffff")); err != nil {
		t.Fatal(err)
	}
	if _, err := other.Get("extra"); err == nil {
		t.Error("registries must be independent")
	}
}
