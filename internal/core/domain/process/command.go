package process

import (
	"fmt"
	"strings"
)

// Command represents an external tool invocation
type Command struct {
	executable string
	args       []string
	workingDir string
	env        map[string]string
}

// NewCommand creates a new Command value object. An empty working
// directory means the runner's default.
func NewCommand(executable string, args ...string) (Command, error) {
	if executable == "" {
		return Command{}, fmt.Errorf("executable cannot be empty")
	}

	return Command{
		executable: executable,
		args:       append([]string(nil), args...), // Copy slice
		env:        make(map[string]string),
	}, nil
}

// Executable returns the command executable
func (c Command) Executable() string {
	return c.executable
}

// Args returns a copy of the command arguments
func (c Command) Args() []string {
	return append([]string(nil), c.args...)
}

// WorkingDir returns the working directory for the command
func (c Command) WorkingDir() string {
	return c.workingDir
}

// Env returns a copy of the extra environment variables
func (c Command) Env() map[string]string {
	envCopy := make(map[string]string, len(c.env))
	for k, v := range c.env {
		envCopy[k] = v
	}
	return envCopy
}

// String returns a string representation of the command
func (c Command) String() string {
	if len(c.args) == 0 {
		return c.executable
	}
	return fmt.Sprintf("%s %s", c.executable, strings.Join(c.args, " "))
}

// WithEnv returns a new Command with an additional environment variable
func (c Command) WithEnv(key, value string) Command {
	newEnv := c.Env()
	newEnv[key] = value

	return Command{
		executable: c.executable,
		args:       c.Args(),
		workingDir: c.workingDir,
		env:        newEnv,
	}
}

// WithWorkingDir returns a new Command with a different working directory
func (c Command) WithWorkingDir(workingDir string) Command {
	return Command{
		executable: c.executable,
		args:       c.Args(),
		workingDir: workingDir,
		env:        c.Env(),
	}
}
