package testfixtures

import (
	"github.com/zclconf/go-cty/cty"

	"mntm.dev/fbt/internal/core/domain/options"
)

// SnapshotBuilder provides a builder pattern for creating option snapshots
type SnapshotBuilder struct {
	catalog *options.Catalog
	snap    options.Snapshot
}

// NewSnapshotBuilder creates a builder seeded with the built-in defaults
// and a fixed distribution suffix
func NewSnapshotBuilder() *SnapshotBuilder {
	b := &SnapshotBuilder{
		catalog: options.DefaultCatalog(),
		snap:    make(options.Snapshot),
	}
	for _, o := range b.catalog.All() {
		if o.Default.IsNull() {
			continue
		}
		b.snap[o.Name] = options.Entry{
			Key:        o.Name,
			Value:      o.Default,
			Source:     options.SourceDefault,
			SourcePath: "builtin",
			Priority:   options.PriorityDefault,
		}
	}
	return b.WithSuffix("mntm-dev-11223344")
}

// WithoutDefaults drops every entry added so far
func (b *SnapshotBuilder) WithoutDefaults() *SnapshotBuilder {
	b.snap = make(options.Snapshot)
	return b
}

// WithSuffix sets DIST_SUFFIX as if derived from git
func (b *SnapshotBuilder) WithSuffix(suffix string) *SnapshotBuilder {
	b.snap[options.DistSuffix] = options.Entry{
		Key:        options.DistSuffix,
		Value:      cty.StringVal(suffix),
		Source:     options.SourceVCS,
		SourcePath: "git",
		Priority:   options.PriorityVCS,
	}
	return b
}

// WithFileValue sets an option as if assigned in the local options file
func (b *SnapshotBuilder) WithFileValue(name string, val cty.Value) *SnapshotBuilder {
	b.snap[name] = options.Entry{
		Key:        name,
		Value:      val,
		Source:     options.SourceFile,
		SourcePath: "fbt_options_local.hcl:1",
		Priority:   options.PriorityFile,
	}
	return b
}

// WithCLIValue sets an option as if given with --set
func (b *SnapshotBuilder) WithCLIValue(name string, val cty.Value) *SnapshotBuilder {
	b.snap[name] = options.Entry{
		Key:        name,
		Value:      val,
		Source:     options.SourceCLI,
		SourcePath: "--set " + name,
		Priority:   options.PriorityCLI,
	}
	return b
}

// Catalog returns the catalog the builder uses
func (b *SnapshotBuilder) Catalog() *options.Catalog {
	return b.catalog
}

// Build returns a copy of the snapshot
func (b *SnapshotBuilder) Build() options.Snapshot {
	return b.snap.Clone()
}

// BuildRegistry wraps the snapshot in a registry, panicking on unknown names
func (b *SnapshotBuilder) BuildRegistry() *options.Registry {
	reg, err := options.NewRegistry(b.catalog, b.Build())
	if err != nil {
		panic(err)
	}
	return reg
}
