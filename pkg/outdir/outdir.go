// Package outdir manages the directory generated figures are written to.
//
// The directory is created on demand and only ever holds flat artifact
// files: PNG images from static figures and GIF animations. Names are
// validated with [errors.ValidateArtifactName] so no caller can write or
// serve outside the directory.
//
// [errors.ValidateArtifactName]: github.com/matzehuels/botionplot/pkg/errors.ValidateArtifactName
package outdir

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	errs "github.com/matzehuels/botionplot/pkg/errors"
)

// Artifact kinds, named after their file extension.
const (
	KindPNG = "png"
	KindGIF = "gif"
)

// Dir is an existing output directory.
type Dir struct {
	path string
}

// Artifact describes one generated file.
type Artifact struct {
	Name    string    `json:"name"`
	Kind    string    `json:"kind"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Ensure creates dir (and parents) if needed. It is idempotent.
func Ensure(dir string) (Dir, error) {
	if dir == "" {
		return Dir{}, errs.New(errs.ErrCodeInvalidInput, "output directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Dir{}, errs.Wrap(errs.ErrCodeWrite, err, "create output directory %s", dir)
	}
	return Dir{path: dir}, nil
}

// String returns the directory path.
func (d Dir) String() string { return d.path }

// Path returns the file path for name with the given extension
// (without the dot), re-creating the directory if it was removed.
func (d Dir) Path(name, ext string) (string, error) {
	file := name
	if ext != "" {
		file = name + "." + ext
	}
	if err := errs.ValidateArtifactName(file); err != nil {
		return "", err
	}
	if _, err := Ensure(d.path); err != nil {
		return "", err
	}
	return filepath.Join(d.path, file), nil
}

// Open opens the artifact called name for reading.
func (d Dir) Open(name string) (*os.File, Artifact, error) {
	if err := errs.ValidateArtifactName(name); err != nil {
		return nil, Artifact{}, err
	}
	kind, ok := kindOf(name)
	if !ok {
		return nil, Artifact{}, errs.New(errs.ErrCodeNotFound, "%s is not an artifact", name)
	}
	f, err := os.Open(filepath.Join(d.path, name))
	if os.IsNotExist(err) {
		return nil, Artifact{}, errs.New(errs.ErrCodeNotFound, "artifact %s not found", name)
	}
	if err != nil {
		return nil, Artifact{}, errs.Wrap(errs.ErrCodeInternal, err, "open %s", name)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, Artifact{}, errs.Wrap(errs.ErrCodeInternal, err, "stat %s", name)
	}
	return f, Artifact{Name: name, Kind: kind, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// List returns the PNG and GIF artifacts, sorted by name. A missing
// directory lists as empty.
func (d Dir) List() ([]Artifact, error) {
	entries, err := os.ReadDir(d.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "read %s", d.path)
	}

	var out []Artifact
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		kind, ok := kindOf(e.Name())
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue // removed while listing
		}
		out = append(out, Artifact{
			Name:    e.Name(),
			Kind:    kind,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Clean removes every artifact and returns how many were deleted.
// Other files are left alone.
func (d Dir) Clean() (int, error) {
	arts, err := d.List()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, a := range arts {
		err := os.Remove(filepath.Join(d.path, a.Name))
		if err != nil && !os.IsNotExist(err) {
			return count, errs.Wrap(errs.ErrCodeWrite, err, "remove %s", a.Name)
		}
		if err == nil {
			count++
		}
	}
	return count, nil
}

func kindOf(name string) (string, bool) {
	if strings.HasPrefix(name, ".") {
		return "", false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return KindPNG, true
	case ".gif":
		return KindGIF, true
	}
	return "", false
}
