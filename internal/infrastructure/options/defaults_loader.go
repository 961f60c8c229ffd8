// Package optionsinfra contains the loaders that produce option layers:
// built-in defaults, the environment, the local options file and
// command-line assignments.
package optionsinfra

import (
	"context"

	"mntm.dev/fbt/internal/core/domain/options"
	optionsports "mntm.dev/fbt/internal/core/ports/options"
)

// DefaultsLoader emits every catalog option that has a built-in default.
type DefaultsLoader struct {
	catalog *options.Catalog
}

func NewDefaultsLoader(catalog *options.Catalog) *DefaultsLoader {
	return &DefaultsLoader{catalog: catalog}
}

func (l *DefaultsLoader) Name() string { return string(options.SourceDefault) }

// Load implements Loader. Options with a null default (derived values) are
// left unset.
func (l *DefaultsLoader) Load(ctx context.Context, base options.Snapshot) (options.Snapshot, error) {
	snap := make(options.Snapshot, l.catalog.Len())
	for _, o := range l.catalog.All() {
		if o.Default.IsNull() {
			continue
		}
		snap[o.Name] = options.Entry{
			Key:        o.Name,
			Value:      o.Default,
			Source:     options.SourceDefault,
			SourcePath: "builtin",
			Priority:   options.PriorityDefault,
		}
	}
	return snap, nil
}

var _ optionsports.Loader = (*DefaultsLoader)(nil)
