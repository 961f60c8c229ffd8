// Package di wires the option registry, suffix deriver, help composer and
// toolchain checker together for one process.
package di

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	appdist "mntm.dev/fbt/internal/application/dist"
	"mntm.dev/fbt/internal/application/help"
	appoptions "mntm.dev/fbt/internal/application/options"
	"mntm.dev/fbt/internal/application/toolchain"
	"mntm.dev/fbt/internal/core/domain/options"
	procp "mntm.dev/fbt/internal/core/ports/process"
	"mntm.dev/fbt/internal/ctxlog"
	"mntm.dev/fbt/internal/infrastructure/git"
	optionsinfra "mntm.dev/fbt/internal/infrastructure/options"
	"mntm.dev/fbt/internal/infrastructure/process"
	"mntm.dev/fbt/internal/logging"
)

// Settings are the process-level inputs of the container. Zero values
// select the real environment.
type Settings struct {
	// WorkDir is the firmware checkout; empty means the current directory.
	WorkDir string
	// OptionsFile is resolved against WorkDir when relative; empty means
	// fbt_options_local.hcl.
	OptionsFile string
	// Assignments are NAME=VALUE overrides from the command line.
	Assignments []string
	// CommandTimeout bounds each git or compiler invocation of the default
	// runner; zero means no limit.
	CommandTimeout time.Duration
	Getenv         func(string) string
	Runner         procp.Runner
	Logger         *slog.Logger
}

// Container holds all application dependencies
type Container struct {
	Catalog    *options.Catalog
	Logger     *slog.Logger
	Runner     procp.Runner
	Git        *git.Client
	Deriver    *appdist.Deriver
	Aggregator *appoptions.Aggregator
	Toolchain  *toolchain.Checker

	optionsFile string

	once     sync.Once
	registry *options.Registry
	err      error
}

// NewContainer creates and configures the dependency injection container
func NewContainer(s Settings) (*Container, error) {
	workDir := s.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		workDir = wd
	}

	optionsFile := s.OptionsFile
	if optionsFile == "" {
		optionsFile = optionsinfra.DefaultOptionsFile
	}
	if !filepath.IsAbs(optionsFile) {
		optionsFile = filepath.Join(workDir, optionsFile)
	}

	c := &Container{
		Catalog:     options.DefaultCatalog(),
		Logger:      s.Logger,
		Runner:      s.Runner,
		optionsFile: optionsFile,
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	if c.Runner == nil {
		c.Runner = process.NewExecutorWithOptions(s.CommandTimeout, "", nil)
	}

	c.Git = git.NewClient(c.Runner, workDir)
	c.Deriver = appdist.NewDeriver(c.Git)
	c.Toolchain = toolchain.NewChecker(c.Runner)

	// Later layers win ties; priorities decide the rest.
	c.Aggregator = appoptions.NewAggregator(c.Catalog,
		optionsinfra.NewDefaultsLoader(c.Catalog),
		optionsinfra.NewEnvLoader(s.Getenv),
		appoptions.NewSuffixLoader(c.Deriver),
		optionsinfra.NewFileLoader(optionsFile, c.Catalog),
		optionsinfra.NewAssignmentLoader(s.Assignments, c.Catalog),
	)

	c.Logger.Debug("Container initialized.", "workdir", workDir, "options_file", optionsFile)
	return c, nil
}

// OptionsFile returns the absolute path of the local override file.
func (c *Container) OptionsFile() string {
	return c.optionsFile
}

// Context returns ctx carrying the container logger.
func (c *Container) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, c.Logger)
}

// Registry loads the options on first use and returns the same result on
// every later call.
func (c *Container) Registry(ctx context.Context) (*options.Registry, error) {
	c.once.Do(func() {
		c.registry, c.err = c.Aggregator.Load(c.Context(ctx))
	})
	return c.registry, c.err
}

// BuildOptions returns the typed options.
func (c *Container) BuildOptions(ctx context.Context) (*options.BuildOptions, error) {
	reg, err := c.Registry(ctx)
	if err != nil {
		return nil, err
	}
	return reg.Resolve()
}

// HelpText composes the help text. Values are listed when the options
// load; otherwise only names, descriptions and defaults are shown.
func (c *Container) HelpText(ctx context.Context) string {
	reg, err := c.Registry(ctx)
	if err != nil {
		c.Logger.Warn("Options unavailable, listing defaults only.", "error", err)
		reg = nil
	}
	return help.Compose(help.DescribeVariables(c.Catalog, reg))
}
