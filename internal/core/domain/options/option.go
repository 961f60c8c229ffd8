package options

import (
	"fmt"
	"math"
	"math/big"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Option describes a single named build option and its built-in default.
type Option struct {
	Name        string
	Description string
	Type        cty.Type
	// Default is null for options whose value is derived at load time.
	Default cty.Value
	// Integer restricts a number option to whole values.
	Integer bool
}

// Convert coerces val to the option's declared type, rejecting nulls at
// any depth and integer options that are fractional or out of range.
func (o Option) Convert(val cty.Value) (cty.Value, error) {
	if val.IsNull() {
		return cty.NilVal, fmt.Errorf("%s: %w", o.Name, ErrNullValue)
	}
	if !val.IsWhollyKnown() {
		return cty.NilVal, fmt.Errorf("%s: value must be known", o.Name)
	}

	out, err := convert.Convert(val, o.Type)
	if err != nil {
		return cty.NilVal, fmt.Errorf("%s: %w: expected %s, got %s",
			o.Name, ErrTypeMismatch, o.Type.FriendlyName(), val.Type().FriendlyName())
	}

	nested := false
	_ = cty.Walk(out, func(_ cty.Path, v cty.Value) (bool, error) {
		if v.IsNull() {
			nested = true
		}
		return !nested, nil
	})
	if nested {
		return cty.NilVal, fmt.Errorf("%s: %w: found a null element", o.Name, ErrNullValue)
	}

	if o.Integer && out.Type() == cty.Number {
		bf := out.AsBigFloat()
		if !bf.IsInt() {
			return cty.NilVal, fmt.Errorf("%s: %w: expected a whole number, got %s",
				o.Name, ErrTypeMismatch, Literal(out))
		}
		if i, acc := bf.Int64(); acc != big.Exact || i < math.MinInt || i > math.MaxInt {
			return cty.NilVal, fmt.Errorf("%s: %w: whole number out of range", o.Name, ErrTypeMismatch)
		}
	}

	return out, nil
}

// Catalog is the ordered set of options known to the build.
type Catalog struct {
	order  []string
	byName map[string]Option
}

// NewCatalog builds a catalog from opts, keeping their order. Duplicate
// names are rejected.
func NewCatalog(opts ...Option) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Option, len(opts))}
	for _, o := range opts {
		if o.Name == "" {
			return nil, fmt.Errorf("option name cannot be empty")
		}
		if _, exists := c.byName[o.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOption, o.Name)
		}
		if o.Default == cty.NilVal {
			o.Default = cty.NullVal(o.Type)
		}
		c.order = append(c.order, o.Name)
		c.byName[o.Name] = o
	}
	return c, nil
}

// Lookup returns the option registered under name.
func (c *Catalog) Lookup(name string) (Option, bool) {
	o, ok := c.byName[name]
	return o, ok
}

// Names returns option names in declaration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// All returns the options in declaration order.
func (c *Catalog) All() []Option {
	out := make([]Option, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Len returns the number of options in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}
