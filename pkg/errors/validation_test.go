package errors

import (
	"strings"
	"testing"
)

func TestValidateArtifactName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"png", "line_plot.png", false},
		{"gif", "animated_sine_wave.gif", false},
		{"empty", "", true},
		{"traversal", "../etc/passwd", true},
		{"nested", "a/b.png", true},
		{"backslash", `a\b.png`, true},
		{"hidden", ".secret", true},
		{"dotdot", "..", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArtifactName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateArtifactName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateColormapName(t *testing.T) {
	if err := ValidateColormapName("apple_cmap"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "two words", "tab\tname"} {
		if err := ValidateColormapName(bad); err == nil {
			t.Errorf("ValidateColormapName(%q) should fail", bad)
		}
	}
}

func TestValidateNameLength(t *testing.T) {
	long := strings.Repeat("a", maxNameLength+1)
	if err := ValidateArtifactName(long + ".png"); err == nil {
		t.Error("overlong artifact name should fail")
	}
	if err := ValidateColormapName(long); err == nil {
		t.Error("overlong colormap name should fail")
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidTheme,
		ErrCodeInvalidName,
		ErrCodeColormapExists,
		ErrCodeColormapNotFound,
		ErrCodeFontNotFound,
		ErrCodeNotFound,
		ErrCodeWrite,
		ErrCodeEncode,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
