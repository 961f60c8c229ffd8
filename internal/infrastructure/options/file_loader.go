package optionsinfra

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/hclparse"

	"mntm.dev/fbt/internal/core/domain/options"
	optionsports "mntm.dev/fbt/internal/core/ports/options"
	"mntm.dev/fbt/internal/ctxlog"
)

// DefaultOptionsFile is the local override file looked up in the working
// directory.
const DefaultOptionsFile = "fbt_options_local.hcl"

// FileLoader applies an HCL attribute file over the options resolved so
// far. Each attribute must name a known option and hold a value of its type.
type FileLoader struct {
	path    string
	catalog *options.Catalog
}

func NewFileLoader(path string, catalog *options.Catalog) *FileLoader {
	return &FileLoader{path: path, catalog: catalog}
}

func (l *FileLoader) Name() string { return string(options.SourceFile) }

// Load implements Loader. A missing file yields an empty snapshot; any
// problem in an existing file fails the whole load.
func (l *FileLoader) Load(ctx context.Context, base options.Snapshot) (options.Snapshot, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("No local options file.", "path", l.path)
		return options.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read options file %s: %w", l.path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, l.path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse options file %s: %w", l.path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode options file %s: %w", l.path, diags)
	}

	evalCtx := evalContext(base)
	snap := make(options.Snapshot, len(attrs))
	for _, attr := range sortedAttributes(attrs) {
		val, valDiags := attr.Expr.Value(evalCtx)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}

		out, assignDiags := assign(l.catalog, attr.Name, attr.NameRange, attr.Expr.Range(), val)
		diags = append(diags, assignDiags...)
		if assignDiags.HasErrors() {
			continue
		}

		// Later attributes see earlier assignments.
		evalCtx.Variables[attr.Name] = out
		snap[attr.Name] = options.Entry{
			Key:        attr.Name,
			Value:      out,
			Source:     options.SourceFile,
			SourcePath: fmt.Sprintf("%s:%d", l.path, attr.NameRange.Start.Line),
			Priority:   options.PriorityFile,
		}
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid options file %s: %w", l.path, diags)
	}

	logger.Debug("Local options file applied.", "path", l.path, "count", len(snap))
	return snap, nil
}

var _ optionsports.Loader = (*FileLoader)(nil)
