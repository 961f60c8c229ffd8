package appoptions

import (
	"context"
	"fmt"

	"mntm.dev/fbt/internal/core/domain/options"
	optionsports "mntm.dev/fbt/internal/core/ports/options"
	"mntm.dev/fbt/internal/ctxlog"
)

// Aggregator runs option loaders in order and merges their snapshots,
// honoring priorities.
type Aggregator struct {
	catalog *options.Catalog
	loaders []optionsports.Loader
}

func NewAggregator(catalog *options.Catalog, loaders ...optionsports.Loader) *Aggregator {
	return &Aggregator{catalog: catalog, loaders: loaders}
}

// LoadSnapshot returns the merged snapshot. Each loader sees the result of
// the loaders before it. The first loader error aborts the load.
func (a *Aggregator) LoadSnapshot(ctx context.Context) (options.Snapshot, error) {
	logger := ctxlog.FromContext(ctx)

	snap := make(options.Snapshot)
	for _, l := range a.loaders {
		s, err := l.Load(ctx, snap.Clone())
		if err != nil {
			return nil, fmt.Errorf("%s options: %w", l.Name(), err)
		}
		snap.Merge(s)
		logger.Debug("Option layer merged.", "layer", l.Name(), "entries", len(s))
	}
	return snap, nil
}

// Load builds the registry from all layers.
func (a *Aggregator) Load(ctx context.Context) (*options.Registry, error) {
	snap, err := a.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return options.NewRegistry(a.catalog, snap)
}
