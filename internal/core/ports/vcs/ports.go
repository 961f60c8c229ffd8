// Package vcs defines the version control client the suffix deriver queries.
package vcs

import (
	"context"
	"fmt"
	"strings"
)

// Client answers the three queries needed to derive a distribution suffix.
type Client interface {
	// CurrentBranch resolves HEAD to a short branch name.
	CurrentBranch(ctx context.Context) (string, error)

	// MergeTarget returns the configured upstream merge ref of branch.
	MergeTarget(ctx context.Context, branch string) (string, error)

	// HeadCommit resolves HEAD to its full commit id.
	HeadCommit(ctx context.Context) (string, error)
}

// QueryError is the failure result of a single client query.
type QueryError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *QueryError) Error() string {
	msg := fmt.Sprintf("vcs query %q failed", strings.Join(e.Args, " "))
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(" (exit %d)", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
