package colormap

import (
	"sort"
	"sync"

	errs "github.com/matzehuels/botionplot/pkg/errors"
)

// Built-in colormaps available from NewDefaultRegistry.
var (
	Gray    = MustFromList("gray", "#000000", "#ffffff")
	Viridis = MustFromList("viridis", "#440154", "#3b528b", "#21918c", "#5ec962", "#fde725")
	Magma   = MustFromList("magma", "#000004", "#51127c", "#b73779", "#fc8961", "#fcfdbf")
)

// Registry is a name-keyed set of colormaps. It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	maps map[string]*Colormap
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{maps: make(map[string]*Colormap)}
}

// NewDefaultRegistry returns a registry holding the built-in colormaps.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, cm := range []*Colormap{Gray, Viridis, Magma} {
		r.maps[cm.Name()] = cm
	}
	return r
}

// Register adds cm under its name. Registering a name twice fails with
// errors.ErrCodeColormapExists; the first registration is kept.
func (r *Registry) Register(cm *Colormap) error {
	if cm == nil {
		return errs.New(errs.ErrCodeInvalidInput, "cannot register nil colormap")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.maps[cm.Name()]; ok {
		return errs.New(errs.ErrCodeColormapExists, "colormap %q is already registered", cm.Name())
	}
	r.maps[cm.Name()] = cm
	return nil
}

// Get looks up a colormap by name.
func (r *Registry) Get(name string) (*Colormap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cm, ok := r.maps[name]
	if !ok {
		return nil, errs.New(errs.ErrCodeColormapNotFound, "colormap %q is not registered", name)
	}
	return cm, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
