package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"

	procp "mntm.dev/fbt/internal/core/ports/process"
	optionsinfra "mntm.dev/fbt/internal/infrastructure/options"
	"mntm.dev/fbt/internal/interfaces/di"
	"mntm.dev/fbt/internal/logging"
)

// DefaultCommandTimeout bounds each external command run by fbt.
const DefaultCommandTimeout = 30 * time.Second

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// Options configures the command tree. Zero values select the real
// process environment.
type Options struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Runner  procp.Runner
	WorkDir string
}

// app holds the parsed persistent flags and the lazily built container.
type app struct {
	opts Options

	assignments []string
	optionsFile string
	logLevel    string
	logFormat   string
	timeout     time.Duration

	container *di.Container
}

// Container builds the dependency container from the persistent flags on
// first use.
func (a *app) Container() (*di.Container, error) {
	if a.container != nil {
		return a.container, nil
	}

	logger, err := logging.New(a.logLevel, a.logFormat, a.opts.Stderr)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	c, err := di.NewContainer(di.Settings{
		WorkDir:        a.opts.WorkDir,
		OptionsFile:    a.optionsFile,
		Assignments:    a.assignments,
		CommandTimeout: a.timeout,
		Getenv:         a.opts.Getenv,
		Runner:         a.opts.Runner,
		Logger:         logger,
	})
	if err != nil {
		return nil, err
	}
	a.container = c
	return c, nil
}

// NewRootCommand creates the fbt command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:   "fbt",
		Short: "Firmware build options, distribution suffix and help",
		Long: `fbt resolves the firmware build options from built-in defaults, the
environment, the local options file and command-line overrides, derives the
distribution suffix from git and prints the build help.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range a.assignments {
				if !strings.Contains(s, "=") {
					return &ExitError{Code: 2, Message: fmt.Sprintf("invalid --set %q: expected NAME=VALUE", s)}
				}
			}
			_, err := a.Container()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return printHelp(cmd, a)
		},
	}

	rootCmd.SetOut(opts.Stdout)
	rootCmd.SetErr(opts.Stderr)
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			defaultHelp(cmd, args)
			return
		}
		if err := printHelp(cmd, a); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	})

	rootCmd.PersistentFlags().StringArrayVar(&a.assignments, "set", nil, "Override a build option (NAME=VALUE, repeatable)")
	rootCmd.PersistentFlags().StringVar(&a.optionsFile, "options-file", optionsinfra.DefaultOptionsFile, "Local options file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: "+strings.Join(logging.Levels, ", "))
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format: "+strings.Join(logging.Formats, ", "))
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "command-timeout", DefaultCommandTimeout, "Limit for each git or compiler invocation (0 disables)")

	rootCmd.AddCommand(NewOptionsCommand(a))
	rootCmd.AddCommand(NewSuffixCommand(a))
	rootCmd.AddCommand(NewAppsCommand(a))
	rootCmd.AddCommand(NewToolchainCommand(a))

	return rootCmd
}

// printHelp writes the composed build help. It works without git or a
// valid options file; missing values are left out of the listing.
func printHelp(cmd *cobra.Command, a *app) error {
	c, err := a.Container()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), c.HelpText(ctx))
	return err
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the command tree with args. Every failure is returned as an
// *ExitError carrying the process exit code.
func Execute(ctx context.Context, args []string, opts Options) error {
	rootCmd := NewRootCommand(opts)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: 1, Message: err.Error()}
}
