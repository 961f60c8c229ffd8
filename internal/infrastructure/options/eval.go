package optionsinfra

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"mntm.dev/fbt/internal/core/domain/options"
)

// evalContext exposes the options resolved so far as HCL variables, so an
// override can refer to another option: COPRO_STACK_BIN_DIR = "${COPRO_CUBE_DIR}/fw".
func evalContext(base options.Snapshot) *hcl.EvalContext {
	return &hcl.EvalContext{Variables: base.Values()}
}

// assign converts val for the named option and reports problems as
// diagnostics anchored at the given ranges.
func assign(catalog *options.Catalog, name string, nameRng, valRng hcl.Range, val cty.Value) (cty.Value, hcl.Diagnostics) {
	opt, ok := catalog.Lookup(name)
	if !ok {
		detail := fmt.Sprintf("%q is not a build option.", name)
		if suggestion := catalog.Suggest(name); suggestion != "" {
			detail += fmt.Sprintf(" Did you mean %q?", suggestion)
		}
		return cty.NilVal, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unknown option",
			Detail:   detail,
			Subject:  nameRng.Ptr(),
		}}
	}

	out, err := opt.Convert(val)
	if err != nil {
		return cty.NilVal, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid option value",
			Detail:   err.Error(),
			Subject:  valRng.Ptr(),
		}}
	}
	return out, nil
}

// sortedAttributes orders attributes by their position in the source.
func sortedAttributes(attrs hcl.Attributes) []*hcl.Attribute {
	out := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Range.Start.Byte < out[j].Range.Start.Byte
	})
	return out
}
