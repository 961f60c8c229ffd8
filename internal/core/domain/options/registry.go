package options

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Registry is the resolved, read-only view of a merged snapshot, ordered by
// the catalog it was built from.
type Registry struct {
	catalog *Catalog
	entries Snapshot
}

// NewRegistry wraps a merged snapshot. Entries whose names are not in the
// catalog are rejected.
func NewRegistry(catalog *Catalog, snap Snapshot) (*Registry, error) {
	for name := range snap {
		if _, ok := catalog.Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownOption, name)
		}
	}
	return &Registry{catalog: catalog, entries: snap.Clone()}, nil
}

// Catalog returns the catalog the registry was built from.
func (r *Registry) Catalog() *Catalog {
	return r.catalog
}

// Get returns the entry for name.
func (r *Registry) Get(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Value returns the value for name, or a null value if it is unset.
func (r *Registry) Value(name string) cty.Value {
	if e, ok := r.entries[name]; ok {
		return e.Value
	}
	if o, ok := r.catalog.Lookup(name); ok {
		return cty.NullVal(o.Type)
	}
	return cty.NilVal
}

// Entries returns all set entries in catalog order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, name := range r.catalog.order {
		if e, ok := r.entries[name]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Resolve decodes the registry into typed build options. Every catalog
// option must be set.
func (r *Registry) Resolve() (*BuildOptions, error) {
	attrs := make(map[string]cty.Value, r.catalog.Len())
	for _, name := range r.catalog.order {
		e, ok := r.entries[name]
		if !ok || e.Value.IsNull() {
			return nil, fmt.Errorf("option %s is not set", name)
		}
		attrs[name] = e.Value
	}

	var bo BuildOptions
	if err := gocty.FromCtyValue(cty.ObjectVal(attrs), &bo); err != nil {
		return nil, fmt.Errorf("failed to decode build options: %w", err)
	}
	return &bo, nil
}
