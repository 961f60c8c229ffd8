package help

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/zclconf/go-cty/cty"

	"mntm.dev/fbt/internal/core/domain/options"
)

// WrapWidth is the column the variable descriptions are wrapped at.
const WrapWidth = 78

const indent = "    "

// DescribeVariables lists every catalog option as
//
//	NAME: description
//	    default: VALUE
//	    actual: VALUE
//
// in declaration order. reg may be nil when the options could not be
// loaded; the actual lines are then omitted.
func DescribeVariables(catalog *options.Catalog, reg *options.Registry) string {
	var b strings.Builder
	for _, o := range catalog.All() {
		b.WriteByte('\n')
		b.WriteString(describe(o))
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%sdefault: %s\n", indent, defaultText(o))
		if reg != nil {
			fmt.Fprintf(&b, "%sactual: %s\n", indent, valueText(reg.Value(o.Name)))
		}
	}
	return b.String()
}

func describe(o options.Option) string {
	text := wordwrap.WrapString(fmt.Sprintf("%s: %s", o.Name, o.Description), WrapWidth)
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

func defaultText(o options.Option) string {
	if o.Default.IsNull() {
		return "(derived)"
	}
	return options.Literal(o.Default)
}

func valueText(val cty.Value) string {
	if val == cty.NilVal || val.IsNull() {
		return "(unset)"
	}
	return options.Literal(val)
}
