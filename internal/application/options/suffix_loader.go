package appoptions

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"mntm.dev/fbt/internal/core/domain/options"
	optionsports "mntm.dev/fbt/internal/core/ports/options"
)

// SuffixDeriver produces a distribution suffix from version control.
type SuffixDeriver interface {
	Derive(ctx context.Context) (string, error)
}

// SuffixLoader fills DIST_SUFFIX from version control unless an earlier
// layer already set it.
type SuffixLoader struct {
	deriver SuffixDeriver
}

func NewSuffixLoader(deriver SuffixDeriver) *SuffixLoader {
	return &SuffixLoader{deriver: deriver}
}

func (l *SuffixLoader) Name() string { return string(options.SourceVCS) }

func (l *SuffixLoader) Load(ctx context.Context, base options.Snapshot) (options.Snapshot, error) {
	if _, ok := base[options.DistSuffix]; ok {
		return options.Snapshot{}, nil
	}

	suffix, err := l.deriver.Derive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to derive %s: %w", options.DistSuffix, err)
	}

	return options.Snapshot{
		options.DistSuffix: {
			Key:        options.DistSuffix,
			Value:      cty.StringVal(suffix),
			Source:     options.SourceVCS,
			SourcePath: "git",
			Priority:   options.PriorityVCS,
		},
	}, nil
}

var _ optionsports.Loader = (*SuffixLoader)(nil)
