package tint

import (
	"io"
	"log"
	"strings"
	"sync"

	"github.com/savage13/tint/palette"
)

// Registry is a mapping from color names to values, safe for concurrent
// use. Names are lower-cased on insertion and an existing entry is never
// overwritten: the first writer wins and later attempts are reported
// through Warnf.
//
// Lookups are not case-folded, so callers pass lower-case names.
type Registry struct {
	// Warnf reports names rejected by Merge and MergeColor because they
	// are already registered. Defaults to log.Printf.
	Warnf func(format string, args ...any)

	mu     sync.Mutex
	colors map[string]Color
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{colors: make(map[string]Color)}
}

// Lookup returns the color registered under name.
func (r *Registry) Lookup(name string) (Color, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.colors[name]
	return c, ok
}

// MergeColor registers a single named color.
func (r *Registry) MergeColor(name string, c Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(strings.ToLower(name), c, true)
}

// Merge registers each parsed palette entry.
func (r *Registry) Merge(entries []palette.Entry) {
	r.merge(entries, true)
}

// Names returns all registered names, in no particular order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.colors))
	for name := range r.colors {
		names = append(names, name)
	}
	return names
}

func (r *Registry) merge(entries []palette.Entry, warn bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entries {
		r.insert(strings.ToLower(e.Name), FromBytes(e.R, e.G, e.B), warn)
	}
}

// insert is called with mu held and name already lower-cased.
func (r *Registry) insert(name string, c Color, warn bool) {
	if _, exists := r.colors[name]; exists {
		if warn {
			r.warnf("tint: color already exists: %s", name)
		}
		return
	}
	r.colors[name] = c
}

func (r *Registry) warnf(format string, args ...any) {
	if r.Warnf != nil {
		r.Warnf(format, args...)
		return
	}
	log.Printf(format, args...)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry. The first call builds the
// base table from the bundled W3C basic and extended palettes; the two
// overlap, so duplicates are dropped silently during this bootstrap.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		r.merge(palette.Basic(), false)
		r.merge(palette.Extended(), false)
		defaultReg = r
	})
	return defaultReg
}

// Name resolves a color name against the default registry. Registered
// names are lower-case; the query is not folded.
func Name(name string) (Color, bool) {
	return Default().Lookup(name)
}

// Names returns all names in the default registry, in no particular order.
func Names() []string {
	return Default().Names()
}

// XKCD merges the bundled XKCD color survey database into the default
// registry. Names that are already registered keep their original color.
func XKCD() {
	Default().Merge(palette.XKCD())
}

// Load parses named colors from rd and merges them into the default
// registry.
func Load(rd io.Reader) error {
	entries, err := palette.Read(rd)
	if err != nil {
		return err
	}
	Default().Merge(entries)
	return nil
}

// LoadFile parses the named palette file and merges it into the default
// registry.
func LoadFile(path string) error {
	entries, err := palette.ReadFile(path)
	if err != nil {
		return err
	}
	Default().Merge(entries)
	return nil
}
