package optionsinfra

import (
	"context"
	"os"

	"github.com/zclconf/go-cty/cty"

	"mntm.dev/fbt/internal/core/domain/options"
	optionsports "mntm.dev/fbt/internal/core/ports/options"
)

// EnvDistSuffix is the environment variable that overrides the derived
// distribution suffix.
const EnvDistSuffix = "DIST_SUFFIX"

type EnvLoader struct {
	getenv func(string) string
}

// NewEnvLoader reads from getenv; nil means os.Getenv.
func NewEnvLoader(getenv func(string) string) *EnvLoader {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &EnvLoader{getenv: getenv}
}

func (l *EnvLoader) Name() string { return string(options.SourceEnv) }

// Load implements Loader by returning the environment snapshot. An empty
// DIST_SUFFIX counts as unset.
func (l *EnvLoader) Load(ctx context.Context, base options.Snapshot) (options.Snapshot, error) {
	snap := make(options.Snapshot)
	if v := l.getenv(EnvDistSuffix); v != "" {
		snap[options.DistSuffix] = options.Entry{
			Key:        options.DistSuffix,
			Value:      cty.StringVal(v),
			Source:     options.SourceEnv,
			SourcePath: EnvDistSuffix,
			Priority:   options.PriorityEnv,
		}
	}
	return snap, nil
}

var _ optionsports.Loader = (*EnvLoader)(nil)
