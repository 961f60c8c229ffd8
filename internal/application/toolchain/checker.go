// Package toolchain verifies that the installed cross compiler is one of the
// supported releases.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"

	"mntm.dev/fbt/internal/core/domain/process"
	procp "mntm.dev/fbt/internal/core/ports/process"
	"mntm.dev/fbt/internal/ctxlog"
)

// DefaultCompiler is the compiler whose version is checked.
const DefaultCompiler = "arm-none-eabi-gcc"

var (
	ErrToolchainNotFound    = errors.New("toolchain not found")
	ErrUnsupportedToolchain = errors.New("unsupported toolchain version")
)

var semverPattern = regexp.MustCompile(`\b\d+\.\d+\.\d+\b`)

// Checker runs the compiler and matches its version against markers such
// as " 12.3.", each read as the constraint "~> 12.3.0".
type Checker struct {
	runner   procp.Runner
	compiler string
}

func NewChecker(runner procp.Runner) *Checker {
	return &Checker{runner: runner, compiler: DefaultCompiler}
}

// WithCompiler returns a copy of the checker that runs compiler instead.
func (c *Checker) WithCompiler(compiler string) *Checker {
	cp := *c
	cp.compiler = compiler
	return &cp
}

// Check returns the detected compiler version if it satisfies one of the
// markers.
func (c *Checker) Check(ctx context.Context, markers []string) (*version.Version, error) {
	constraints, err := Constraints(markers)
	if err != nil {
		return nil, err
	}

	v, err := c.Detect(ctx)
	if err != nil {
		return nil, err
	}

	for _, cs := range constraints {
		if cs.Check(v) {
			ctxlog.FromContext(ctx).Debug("Toolchain accepted.", "version", v.String(), "constraint", cs.String())
			return v, nil
		}
	}
	return v, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedToolchain, v, strings.Join(trimmed(markers), ", "))
}

// Detect runs `<compiler> --version` and parses the version from the first
// line of its output.
func (c *Checker) Detect(ctx context.Context) (*version.Version, error) {
	cmd, err := process.NewCommand(c.compiler, "--version")
	if err != nil {
		return nil, err
	}

	result, err := c.runner.Run(ctx, cmd)
	if err != nil {
		if errors.Is(err, process.ErrExecutableNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrToolchainNotFound, c.compiler)
		}
		return nil, fmt.Errorf("failed to run %s: %w", cmd, err)
	}

	return ParseVersion(result.Output())
}

// ParseVersion extracts the compiler version from `--version` output. The
// last X.Y.Z on the first line is the release; earlier ones belong to the
// vendor string.
func ParseVersion(output string) (*version.Version, error) {
	first, _, _ := strings.Cut(output, "\n")
	matches := semverPattern.FindAllString(first, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no version in %q", ErrToolchainNotFound, first)
	}
	return version.NewVersion(matches[len(matches)-1])
}

// Constraints converts version markers into pessimistic constraints.
func Constraints(markers []string) ([]version.Constraints, error) {
	out := make([]version.Constraints, 0, len(markers))
	for _, m := range trimmed(markers) {
		cs, err := version.NewConstraint(fmt.Sprintf("~> %s.0", m))
		if err != nil {
			return nil, fmt.Errorf("invalid toolchain version marker %q: %w", m, err)
		}
		out = append(out, cs)
	}
	return out, nil
}

func trimmed(markers []string) []string {
	out := make([]string, 0, len(markers))
	for _, m := range markers {
		if m = strings.Trim(m, " ."); m != "" {
			out = append(out, m)
		}
	}
	return out
}
