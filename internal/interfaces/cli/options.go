package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mntm.dev/fbt/internal/core/domain/options"
)

// NewOptionsCommand creates the options command group
func NewOptionsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Inspect resolved build options",
	}

	cmd.AddCommand(newOptionsShowCommand(a))
	cmd.AddCommand(newOptionsGetCommand(a))

	return cmd
}

func newOptionsShowCommand(a *app) *cobra.Command {
	var withSource bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every resolved option",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.Container()
			if err != nil {
				return err
			}
			reg, err := c.Registry(cmd.Context())
			if err != nil {
				return err
			}

			table := newOptionsTable(cmd.OutOrStdout(), withSource)
			for _, e := range reg.Entries() {
				table.Add(e)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table.Render())
			return err
		},
	}

	cmd.Flags().BoolVar(&withSource, "source", false, "Show where each value came from")

	return cmd
}

func newOptionsGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Print a single option value",
		Long: `Print a single option value. Strings are printed as-is, other values
as HCL literals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.Container()
			if err != nil {
				return err
			}

			name := args[0]
			if _, ok := c.Catalog.Lookup(name); !ok {
				msg := fmt.Sprintf("%v: %s", options.ErrUnknownOption, name)
				if suggestion := c.Catalog.Suggest(name); suggestion != "" {
					msg += fmt.Sprintf(" (did you mean %s?)", suggestion)
				}
				return &ExitError{Code: 2, Message: msg}
			}

			reg, err := c.Registry(cmd.Context())
			if err != nil {
				return err
			}
			val := reg.Value(name)
			if val.IsNull() {
				return fmt.Errorf("option %s is not set", name)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), options.Text(val))
			return err
		},
	}
}
