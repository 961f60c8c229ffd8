package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"mntm.dev/fbt/internal/core/domain/process"
	procp "mntm.dev/fbt/internal/core/ports/process"
)

// Executor implements the Runner interface on top of os/exec
type Executor struct {
	// Zero means no timeout.
	timeout time.Duration
	workDir string
	env     []string
}

// NewExecutor creates a new process executor
func NewExecutor() *Executor {
	return &Executor{
		workDir: "",           // Use current directory
		env:     os.Environ(), // Use current environment
	}
}

// NewExecutorWithOptions creates a new process executor with custom options
func NewExecutorWithOptions(timeout time.Duration, workDir string, env []string) *Executor {
	if env == nil {
		env = os.Environ()
	}

	return &Executor{
		timeout: timeout,
		workDir: workDir,
		env:     env,
	}
}

// Timeout returns the per-command limit; zero means none.
func (e *Executor) Timeout() time.Duration {
	return e.timeout
}

// Run executes cmd and waits for it to finish, capturing stdout and stderr.
func (e *Executor) Run(ctx context.Context, cmd process.Command) (process.Result, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	execCmd := exec.CommandContext(ctx, cmd.Executable(), cmd.Args()...)

	if cmd.WorkingDir() != "" {
		execCmd.Dir = cmd.WorkingDir()
	} else if e.workDir != "" {
		execCmd.Dir = e.workDir
	}

	execCmd.Env = e.buildEnvironment(cmd.Env())

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err := execCmd.Run()
	result := process.Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		return result, &process.ExitError{
			Command: cmd.String(),
			Code:    result.ExitCode,
			Stderr:  strings.TrimSpace(stderr.String()),
		}
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		result.ExitCode = -1
		return result, fmt.Errorf("%w: %s", process.ErrExecutableNotFound, cmd.Executable())
	default:
		result.ExitCode = -1
		return result, fmt.Errorf("failed to run %s: %w", cmd.String(), err)
	}
}

// buildEnvironment combines the base environment with command-specific environment
func (e *Executor) buildEnvironment(cmdEnv map[string]string) []string {
	env := append([]string(nil), e.env...) // Copy base environment

	for key, value := range cmdEnv {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env
}

var _ procp.Runner = (*Executor)(nil)
