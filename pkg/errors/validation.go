package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxNameLength bounds colormap and artifact names.
const maxNameLength = 255

// ValidateColormapName checks that a colormap name is usable as a registry key.
// Names must be non-empty, free of whitespace and control characters.
func ValidateColormapName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "colormap name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "colormap name too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidName, "colormap name %q contains whitespace or control characters", name)
		}
	}
	return nil
}

// ValidateArtifactName validates a file name inside the output directory.
// It ensures the name is a simple basename without path components, so that
// callers (including the gallery server) cannot escape the directory.
func ValidateArtifactName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "artifact name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "artifact name too long (max %d characters)", maxNameLength)
	}
	if filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return New(ErrCodeInvalidName, "artifact name must not contain path separators: %q", name)
	}
	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidName, "artifact name must not be hidden or relative: %q", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "artifact name contains invalid control characters")
		}
	}
	return nil
}
