package process

import (
	"context"

	"mntm.dev/fbt/internal/core/domain/process"
)

// Runner runs a command to completion and captures its output.
//
// A non-zero exit is reported as *process.ExitError together with the
// captured Result. A missing executable wraps process.ErrExecutableNotFound.
type Runner interface {
	Run(ctx context.Context, cmd process.Command) (process.Result, error)
}
