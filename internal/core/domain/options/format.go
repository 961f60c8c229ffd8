package options

import (
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Literal renders val as a single-line HCL literal that can be pasted back
// into an options file.
func Literal(val cty.Value) string {
	var b strings.Builder
	writeLiteral(&b, val)
	return b.String()
}

// Text renders val for scripts: strings are printed raw, everything else as
// an HCL literal.
func Text(val cty.Value) string {
	if !val.IsNull() && val.IsKnown() && val.Type() == cty.String {
		return val.AsString()
	}
	return Literal(val)
}

func writeLiteral(b *strings.Builder, val cty.Value) {
	if val.IsNull() {
		b.WriteString("null")
		return
	}
	if !val.IsKnown() {
		b.WriteString("(unknown)")
		return
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		b.Write(hclwrite.TokensForValue(val).Bytes())
	case ty == cty.Number:
		b.WriteString(val.AsBigFloat().Text('f', -1))
	case ty == cty.Bool:
		if val.True() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		b.WriteByte('[')
		first := true
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			if !first {
				b.WriteString(", ")
			}
			first = false
			writeLiteral(b, v)
		}
		b.WriteByte(']')
	case ty.IsMapType() || ty.IsObjectType():
		b.WriteByte('{')
		first := true
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			if !first {
				b.WriteString(", ")
			}
			first = false
			key := k.AsString()
			if hclsyntax.ValidIdentifier(key) {
				b.WriteString(key)
			} else {
				b.Write(hclwrite.TokensForValue(k).Bytes())
			}
			b.WriteString(" = ")
			writeLiteral(b, v)
		}
		b.WriteByte('}')
	default:
		b.WriteString(ty.FriendlyName())
	}
}
