package optionsinfra

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"mntm.dev/fbt/internal/core/domain/options"
	optionsports "mntm.dev/fbt/internal/core/ports/options"
)

// AssignmentLoader applies NAME=VALUE assignments given on the command line.
//
// VALUE is an HCL expression (TARGET_HW=18, EXTRA_EXT_APPS=["snake"]).
// For string options an unquoted VALUE is taken verbatim, minus surrounding
// whitespace.
type AssignmentLoader struct {
	assignments []string
	catalog     *options.Catalog
}

func NewAssignmentLoader(assignments []string, catalog *options.Catalog) *AssignmentLoader {
	return &AssignmentLoader{
		assignments: append([]string(nil), assignments...),
		catalog:     catalog,
	}
}

func (l *AssignmentLoader) Name() string { return string(options.SourceCLI) }

func (l *AssignmentLoader) Load(ctx context.Context, base options.Snapshot) (options.Snapshot, error) {
	var diags hcl.Diagnostics
	evalCtx := evalContext(base)
	snap := make(options.Snapshot, len(l.assignments))

	for i, a := range l.assignments {
		filename := fmt.Sprintf("<--set #%d>", i+1)
		rng := hcl.Range{Filename: filename, Start: hcl.InitialPos, End: hcl.InitialPos}

		name, raw, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid assignment",
				Detail:   fmt.Sprintf("Expected NAME=VALUE, got %q.", a),
				Subject:  rng.Ptr(),
			})
			continue
		}

		val, valDiags := l.value(name, strings.TrimSpace(raw), filename, evalCtx)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}

		out, assignDiags := assign(l.catalog, name, rng, rng, val)
		diags = append(diags, assignDiags...)
		if assignDiags.HasErrors() {
			continue
		}

		evalCtx.Variables[name] = out
		snap[name] = options.Entry{
			Key:        name,
			Value:      out,
			Source:     options.SourceCLI,
			SourcePath: "--set " + name,
			Priority:   options.PriorityCLI,
		}
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid option assignment: %w", diags)
	}
	return snap, nil
}

func (l *AssignmentLoader) value(name, raw, filename string, evalCtx *hcl.EvalContext) (cty.Value, hcl.Diagnostics) {
	if opt, ok := l.catalog.Lookup(name); ok && opt.Type.Equals(cty.String) && !strings.HasPrefix(raw, `"`) {
		return cty.StringVal(raw), nil
	}

	expr, diags := hclsyntax.ParseExpression([]byte(raw), filename, hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	return expr.Value(evalCtx)
}

var _ optionsports.Loader = (*AssignmentLoader)(nil)
