package process

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExecutableNotFound is returned when the command's executable cannot be
// located.
var ErrExecutableNotFound = errors.New("executable not found")

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Output returns stdout with surrounding whitespace removed.
func (r Result) Output() string {
	return strings.TrimSpace(string(r.Stdout))
}

// ExitError reports a command that ran and exited with a non-zero status.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s: exit status %d", e.Command, e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}
