// Package dist derives the distribution suffix from version control state,
// falling back to a placeholder branch when the merge target is unknown.
package dist

import (
	"context"
	"fmt"

	"mntm.dev/fbt/internal/core/domain/dist"
	"mntm.dev/fbt/internal/core/ports/vcs"
	"mntm.dev/fbt/internal/ctxlog"
)

// Deriver computes mntm-<merge-target>-<short-commit> suffixes.
type Deriver struct {
	client vcs.Client
}

// NewDeriver creates a deriver backed by client.
func NewDeriver(client vcs.Client) *Deriver {
	return &Deriver{client: client}
}

// Derive queries the client and builds the suffix. Failing to resolve the
// branch or its merge target falls back to dist.DetachedRef; failing to
// resolve the commit returns an error wrapping dist.ErrNoCommit.
func (d *Deriver) Derive(ctx context.Context) (string, error) {
	logger := ctxlog.FromContext(ctx)

	ref, err := d.mergeTarget(ctx)
	if err != nil {
		logger.Debug("Merge target unavailable, using placeholder.", "ref", dist.DetachedRef, "reason", err)
		ref = dist.DetachedRef
	}

	commit, err := d.client.HeadCommit(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", dist.ErrNoCommit, err)
	}

	suffix, err := dist.Suffix(ref, commit)
	if err != nil {
		return "", err
	}
	logger.Debug("Distribution suffix derived.", "ref", ref, "suffix", suffix)
	return suffix, nil
}

func (d *Deriver) mergeTarget(ctx context.Context) (string, error) {
	branch, err := d.client.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}
	return d.client.MergeTarget(ctx, branch)
}
