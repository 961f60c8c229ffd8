package options

import (
	"context"

	"mntm.dev/fbt/internal/core/domain/options"
)

// Loader produces one layer of option entries. base holds the entries merged
// from the layers before it; loaders that do not need it ignore it.
type Loader interface {
	Load(ctx context.Context, base options.Snapshot) (options.Snapshot, error)
	Name() string
}
