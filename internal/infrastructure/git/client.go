// Package git implements the vcs.Client port by shelling out to the git
// executable.
package git

import (
	"context"
	"errors"
	"fmt"

	"mntm.dev/fbt/internal/core/domain/process"
	procp "mntm.dev/fbt/internal/core/ports/process"
	"mntm.dev/fbt/internal/core/ports/vcs"
)

// DefaultExecutable is the git binary looked up on PATH.
const DefaultExecutable = "git"

// Client runs git queries in a working tree.
type Client struct {
	runner     procp.Runner
	executable string
	dir        string
}

// NewClient creates a git client that runs queries in dir. An empty dir
// means the runner's working directory.
func NewClient(runner procp.Runner, dir string) *Client {
	return &Client{
		runner:     runner,
		executable: DefaultExecutable,
		dir:        dir,
	}
}

// WithExecutable returns a copy of the client that invokes executable
// instead of git from PATH.
func (c *Client) WithExecutable(executable string) *Client {
	cp := *c
	cp.executable = executable
	return &cp
}

// CurrentBranch runs `git symbolic-ref HEAD --short`.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	return c.query(ctx, "symbolic-ref", "HEAD", "--short")
}

// MergeTarget runs `git config --get branch.<branch>.merge`.
func (c *Client) MergeTarget(ctx context.Context, branch string) (string, error) {
	if branch == "" {
		return "", &vcs.QueryError{
			Args: []string{"config", "--get", "branch..merge"},
			Err:  errors.New("branch name is empty"),
		}
	}
	return c.query(ctx, "config", "--get", fmt.Sprintf("branch.%s.merge", branch))
}

// HeadCommit runs `git rev-parse HEAD`.
func (c *Client) HeadCommit(ctx context.Context) (string, error) {
	return c.query(ctx, "rev-parse", "HEAD")
}

func (c *Client) query(ctx context.Context, args ...string) (string, error) {
	cmd, err := process.NewCommand(c.executable, args...)
	if err != nil {
		return "", &vcs.QueryError{Args: args, Err: err}
	}
	if c.dir != "" {
		cmd = cmd.WithWorkingDir(c.dir)
	}
	// Untranslated stderr for QueryError.
	cmd = cmd.WithEnv("LC_ALL", "C")

	result, err := c.runner.Run(ctx, cmd)
	if err != nil {
		qerr := &vcs.QueryError{Args: args, ExitCode: result.ExitCode, Err: err}
		var exitErr *process.ExitError
		if errors.As(err, &exitErr) {
			qerr.ExitCode = exitErr.Code
			qerr.Stderr = exitErr.Stderr
		}
		return "", qerr
	}

	out := result.Output()
	if out == "" {
		return "", &vcs.QueryError{Args: args, Err: errors.New("empty output")}
	}
	return out, nil
}

var _ vcs.Client = (*Client)(nil)
